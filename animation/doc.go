// Package animation animates mobjects over normalized progress.
//
// An [Animation] is bound to one node and walks a strict lifecycle:
// Unstarted, Active after [Animation.Begin], Finished after
// [Animation.Finish]. While active, [Animation.Interpolate] clamps progress
// to [0, 1], remaps it with the rate function and hands it to the
// animation's [Effect], the only code that mutates the node.
//
// Effects shipped with the package:
//   - FadeIn, FadeOut: opacity
//   - ShowCreation, Uncreate: partial path reveal of every VMobject in the family
//   - Write: path reveal with the fill fading in
//
// Animations are usually driven by scene.Scene.Play, but can be stepped by
// hand:
//
//	a := animation.FadeIn(m, animation.WithRunTime(2))
//	_ = a.Begin()
//	a.Interpolate(0.5)
//	_ = a.Finish()
package animation
