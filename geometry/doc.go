// Package geometry builds common shapes as manim.VMobject paths.
//
// Every constructor uses only the path-building operations of
// manim.VMobject, so the results carry no invariants beyond those of a
// plain path: closed shapes repeat their first anchor as their last.
// Parameters that cannot produce geometry fail with
// manim.ErrInvalidParameter before any points are written.
//
// Style options are the manim ones:
//
//	sq, err := geometry.Square(2, manim.WithColor(manim.Teal), manim.WithFillOpacity(0.5))
package geometry
