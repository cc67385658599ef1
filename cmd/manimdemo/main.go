// Command manimdemo builds a few shapes and plays animations on them
// headlessly, logging playback as it goes.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/manim"
	"github.com/gogpu/manim/animation"
	"github.com/gogpu/manim/geometry"
	"github.com/gogpu/manim/scene"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene config file (.toml, .yaml or .yml)")
		runTime    = flag.Float64("run-time", 1, "run time of each animation in seconds")
		verbose    = flag.Bool("verbose", false, "log every play at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	manim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := scene.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = scene.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	s := scene.New(scene.WithConfig(cfg))

	shapes, err := buildShapes()
	if err != nil {
		log.Fatalf("Failed to build shapes: %v", err)
	}

	opts := []animation.Option{animation.WithRunTime(*runTime), animation.WithRateFunc(manim.Smooth)}
	s.Play(
		animation.ShowCreation(shapes.circle, opts...),
		animation.Write(shapes.square, opts...),
	)
	s.Play(animation.FadeIn(shapes.arrow, animation.WithRunTime(*runTime/2)))
	s.Wait(0.5)
	s.Play(
		animation.Uncreate(shapes.circle, animation.WithRunTime(*runTime), animation.WithRateFunc(manim.Spring(6, 1))),
		animation.FadeOut(shapes.square, opts...),
	)

	for _, n := range s.Mobjects() {
		m := n.Base()
		log.Printf("%T: %d points, %d children, opacity %.2f, center %v",
			n, m.NumPoints(), len(m.Submobjects()), m.Opacity(), m.Center())
	}
	log.Printf("Played to t=%.3fs at %d fps", s.Time(), s.Config().FrameRate)
}

type demoShapes struct {
	circle *manim.VMobject
	square *manim.VMobject
	arrow  *manim.VMobject
}

func buildShapes() (demoShapes, error) {
	circle, err := geometry.Circle(1.5, manim.WithColor(manim.Teal))
	if err != nil {
		return demoShapes{}, err
	}
	circle.Shift(manim.Left.Mul(3))

	square, err := geometry.Square(2, manim.WithColor(manim.Orange), manim.WithFillOpacity(0.5))
	if err != nil {
		return demoShapes{}, err
	}
	square.Shift(manim.Right.Mul(3))

	arrow, err := geometry.Arrow(circle.Center(), square.Center(), manim.MedSmallBuff+1.5,
		manim.WithColor(manim.Yellow))
	if err != nil {
		return demoShapes{}, err
	}

	// Spin the square a little on every tick.
	square.AddUpdater(func(n manim.Node, dt float64) {
		n.Base().Rotate(dt*manim.Tau/8, manim.ZAxis)
	})

	return demoShapes{circle: circle, square: square, arrow: arrow}, nil
}
