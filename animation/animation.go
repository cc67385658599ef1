package animation

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/manim"
)

// DefaultRunTime is the run time of an animation created without
// WithRunTime, in seconds.
const DefaultRunTime = 1.0

// ErrInvalidState is returned when a lifecycle method is called out of
// order.
var ErrInvalidState = errors.New("animation: invalid state transition")

// State is the lifecycle stage of an Animation.
type State int

const (
	// Unstarted is the state of a new animation.
	Unstarted State = iota
	// Active is entered by Begin.
	Active
	// Finished is entered by Finish and never left.
	Finished
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Active:
		return "Active"
	case Finished:
		return "Finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Effect is the kind-specific part of an animation.
type Effect interface {
	// Begin captures whatever InterpolateMobject perturbs from and puts
	// the node into its starting state.
	Begin(n manim.Node)

	// InterpolateMobject sets the node to its state at alpha, which has
	// already been remapped by the rate function.
	InterpolateMobject(n manim.Node, alpha float64)
}

// Option configures an Animation.
type Option func(*Animation)

// WithRunTime sets the duration in seconds. Values that are not finite
// and positive are kept as given; scene.Scene.Play skips such animations.
func WithRunTime(seconds float64) Option {
	return func(a *Animation) {
		a.runTime = seconds
	}
}

// WithRateFunc sets the progress remapping. nil keeps manim.Linear.
func WithRateFunc(fn manim.RateFunc) Option {
	return func(a *Animation) {
		if fn != nil {
			a.rateFunc = fn
		}
	}
}

// Animation binds an Effect to one node.
type Animation struct {
	mobject  manim.Node
	effect   Effect
	runTime  float64
	rateFunc manim.RateFunc
	state    State
}

// New creates an animation applying effect to n.
func New(n manim.Node, effect Effect, opts ...Option) *Animation {
	a := &Animation{
		mobject:  n,
		effect:   effect,
		runTime:  DefaultRunTime,
		rateFunc: manim.Linear,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mobject returns the animated node.
func (a *Animation) Mobject() manim.Node {
	return a.mobject
}

// RunTime returns the duration in seconds.
func (a *Animation) RunTime() float64 {
	return a.runTime
}

// State returns the lifecycle stage.
func (a *Animation) State() State {
	return a.state
}

// Begin moves the animation from Unstarted to Active and lets the effect
// establish the starting state.
func (a *Animation) Begin() error {
	if a.state != Unstarted {
		return fmt.Errorf("%w: Begin called in state %v", ErrInvalidState, a.state)
	}
	a.state = Active
	a.effect.Begin(a.mobject)
	return nil
}

// Interpolate sets the node to its state at progress alpha. alpha is
// clamped to [0, 1] and passed through the rate function. Calls outside
// the Active state are ignored.
func (a *Animation) Interpolate(alpha float64) {
	if a.state != Active {
		manim.Logger().Warn("animation: interpolate ignored", "state", a.state.String())
		return
	}
	if math.IsNaN(alpha) {
		alpha = 0
	}
	alpha = min(max(alpha, 0), 1)
	a.effect.InterpolateMobject(a.mobject, a.rateFunc(alpha))
}

// Finish applies the terminal state exactly, as Interpolate(1), and moves
// the animation to Finished.
func (a *Animation) Finish() error {
	if a.state != Active {
		return fmt.Errorf("%w: Finish called in state %v", ErrInvalidState, a.state)
	}
	a.Interpolate(1)
	a.state = Finished
	return nil
}
