// Package scene drives animations over a set of top-level nodes.
//
// A Scene keeps an insertion-ordered list of nodes and a simulated clock.
// Play advances the clock in fixed steps of 1/FrameRate seconds, moving
// every animation to its progress at each step and running the nodes'
// updaters after it:
//
//	s := scene.New()
//	c, _ := geometry.Circle(1)
//	s.Play(animation.ShowCreation(c), animation.FadeIn(c))
//	s.Wait(0.5)
//
// Nothing here runs in real time; Play returns once the last step has been
// taken.
package scene
