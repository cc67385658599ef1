package scene

import (
	"math"

	"github.com/gogpu/manim"
)

// Animation is what Play drives. *animation.Animation implements it.
type Animation interface {
	Mobject() manim.Node
	RunTime() float64
	Begin() error
	Interpolate(alpha float64)
	Finish() error
}

// Option configures a Scene.
type Option func(*Scene)

// WithConfig replaces the playback settings. An invalid config is logged
// and ignored.
func WithConfig(cfg Config) Option {
	return func(s *Scene) {
		if err := cfg.Validate(); err != nil {
			manim.Logger().Warn("scene: config ignored", "err", err)
			return
		}
		s.cfg = cfg
	}
}

// WithFrameRate sets the number of steps per simulated second.
func WithFrameRate(fps int) Option {
	return func(s *Scene) {
		cfg := s.cfg
		cfg.FrameRate = fps
		WithConfig(cfg)(s)
	}
}

// WithMaxRunTime sets the run time ceiling for a single animation.
func WithMaxRunTime(seconds float64) Option {
	return func(s *Scene) {
		cfg := s.cfg
		cfg.MaxRunTime = seconds
		WithConfig(cfg)(s)
	}
}

// Scene is an ordered set of top-level nodes and a simulated clock.
// It is not safe for concurrent use.
type Scene struct {
	cfg      Config
	mobjects []manim.Node
	time     float64
}

// New creates an empty scene at time zero.
func New(opts ...Option) *Scene {
	s := &Scene{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the playback settings.
func (s *Scene) Config() Config {
	return s.cfg
}

// Time returns the simulated clock in seconds.
func (s *Scene) Time() float64 {
	return s.time
}

// Mobjects returns the top-level nodes in insertion order.
func (s *Scene) Mobjects() []manim.Node {
	return append([]manim.Node(nil), s.mobjects...)
}

// Add appends nodes that are not yet in the scene. Nil nodes, typed or
// not, are skipped.
func (s *Scene) Add(nodes ...manim.Node) *Scene {
	for _, n := range nodes {
		if isNil(n) || s.indexOf(n) >= 0 {
			continue
		}
		s.mobjects = append(s.mobjects, n)
	}
	return s
}

// Remove drops nodes from the scene. Unknown nodes are ignored.
func (s *Scene) Remove(nodes ...manim.Node) *Scene {
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		if i := s.indexOf(n); i >= 0 {
			s.mobjects = append(s.mobjects[:i], s.mobjects[i+1:]...)
		}
	}
	return s
}

func isNil(n manim.Node) bool {
	return n == nil || n.Base() == nil
}

func (s *Scene) indexOf(n manim.Node) int {
	b := n.Base()
	for i, m := range s.mobjects {
		if m.Base() == b {
			return i
		}
	}
	return -1
}

// Update advances the clock by dt and runs the updaters of every
// top-level node and its family.
func (s *Scene) Update(dt float64) {
	s.time += dt
	for _, n := range s.Mobjects() {
		n.Base().Update(dt)
	}
}

// Wait advances the clock by duration in frame steps, running updaters
// at each step. A duration Play would reject as a run time is logged and
// ignored.
func (s *Scene) Wait(duration float64) {
	if !s.validRunTime(duration) {
		manim.Logger().Warn("scene: wait skipped", "duration", duration, "max", s.cfg.MaxRunTime)
		return
	}
	s.step(duration, nil)
}

// Play runs animations together until the longest valid one completes.
//
// Animations whose run time is not finite, not positive or above the
// configured maximum do not count toward the duration and are not
// stepped; they still begin and finish. If no animation is valid the call
// is logged and does nothing. Every animation that begins is added to the
// scene. At each step an animation's progress is elapsed/runTime capped
// at 1, so shorter animations hold their final state while longer ones
// continue. Finish is called on every begun animation after the last
// step.
func (s *Scene) Play(animations ...Animation) {
	if len(animations) == 0 {
		return
	}
	log := manim.Logger()

	runTime := 0.0
	valid := make([]bool, len(animations))
	for i, a := range animations {
		rt := a.RunTime()
		if !s.validRunTime(rt) {
			log.Warn("scene: animation excluded from playback", "index", i, "runTime", rt, "max", s.cfg.MaxRunTime)
			continue
		}
		valid[i] = true
		runTime = math.Max(runTime, rt)
	}
	if runTime == 0 {
		log.Warn("scene: play skipped, no valid animations", "count", len(animations))
		return
	}

	begun := make([]bool, len(animations))
	for i, a := range animations {
		if err := a.Begin(); err != nil {
			log.Warn("scene: animation failed to begin", "index", i, "err", err)
			continue
		}
		begun[i] = true
		s.Add(a.Mobject())
	}

	log.Debug("scene: play", "animations", len(animations), "runTime", runTime, "start", s.time)
	steps := s.step(runTime, func(elapsed float64) {
		for i, a := range animations {
			if begun[i] && valid[i] {
				a.Interpolate(math.Min(elapsed/a.RunTime(), 1))
			}
		}
	})

	for i, a := range animations {
		if !begun[i] {
			continue
		}
		if err := a.Finish(); err != nil {
			log.Warn("scene: animation failed to finish", "index", i, "err", err)
		}
	}
	log.Debug("scene: play done", "steps", steps, "time", s.time)
}

// step advances the clock through duration in 1/FrameRate increments,
// clipping the last one so the total is exactly duration. frame, if set,
// sees the elapsed time before each update pass. It returns the number of
// steps taken.
func (s *Scene) step(duration float64, frame func(elapsed float64)) int {
	fps := float64(s.cfg.FrameRate)
	dt := 1 / fps
	n := max(int(math.Ceil(duration*fps-1e-9)), 1)

	prev := 0.0
	for i := 1; i <= n; i++ {
		elapsed := math.Min(float64(i)*dt, duration)
		if i == n {
			elapsed = duration
		}
		if frame != nil {
			frame(elapsed)
		}
		s.Update(elapsed - prev)
		prev = elapsed
	}
	return n
}

func (s *Scene) validRunTime(rt float64) bool {
	return !math.IsNaN(rt) && !math.IsInf(rt, 0) && rt > 0 && rt <= s.cfg.MaxRunTime
}
