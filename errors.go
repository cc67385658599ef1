package manim

import "errors"

// Structural errors. A call that fails with one of these leaves the scene
// graph unchanged; retrying with the same arguments fails again.
var (
	// ErrSelfContainment is returned when a mobject is added to itself.
	ErrSelfContainment = errors.New("manim: mobject cannot contain itself")

	// ErrCyclicFamily is returned when adding a child would make the
	// receiver reachable from itself.
	ErrCyclicFamily = errors.New("manim: mobject cannot create cyclic family relationships")
)

// ErrInvalidParameter is returned by constructors given parameters that
// cannot produce geometry (non-finite angles, non-positive sizes or
// segment counts). It is returned before any point data is written.
var ErrInvalidParameter = errors.New("manim: invalid parameter")
