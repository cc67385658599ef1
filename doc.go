// Package manim provides the object model of a mathematical-animation engine.
//
// # Overview
//
// A scene is built from mobjects: nodes of a scene graph that carry 3D point
// data with per-point RGBA colors. Mobjects can be shifted, scaled, rotated
// and recolored; every operation applies eagerly to the whole family (the
// node plus all of its descendants). A [VMobject] interprets its points as a
// chain of quadratic Bézier segments and adds path building and curve
// sampling on top of the plain [Mobject].
//
// # Quick Start
//
//	import "github.com/gogpu/manim"
//
//	v := manim.NewVMobject(manim.WithStrokeColor(manim.Blue))
//	v.StartNewPath(manim.Pt(0, 0, 0))
//	v.AddLineTo(manim.Pt(1, 0, 0))
//	v.AddQuadraticBezierCurveTo(manim.Pt(2, 1, 0), manim.Pt(1, 2, 0))
//	v.Shift(manim.Up)
//	mid := v.PointFromProportion(0.5)
//
// Animations live in the animation sub-package and are played by the
// fixed-step driver in the scene sub-package.
//
// # Architecture
//
// The module is organized into:
//   - manim: point buffer, Mobject, VMobject, curve math, colors, rate functions
//   - animation: Animation lifecycle and effects (FadeIn, ShowCreation, ...)
//   - scene: Scene with a simulated clock and the Play loop
//   - geometry: shape constructors built on the path-building API
//
// # Coordinate System
//
// Scene units, not pixels:
//   - Origin (0,0,0) at the frame center
//   - X increases right, Y increases up, Z points out of the screen
//   - Angles in radians, counter-clockwise about [Out]
//
// # Concurrency
//
// The object model is not safe for concurrent use. Scenes, animations and
// mobjects are driven synchronously from a single goroutine.
package manim

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
