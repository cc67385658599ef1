package animation

import "github.com/gogpu/manim"

// FadeIn raises the node's opacity from zero to the opacity it had when
// the animation began.
func FadeIn(n manim.Node, opts ...Option) *Animation {
	return New(n, &fade{in: true}, opts...)
}

// FadeOut lowers the node's opacity to zero.
func FadeOut(n manim.Node, opts ...Option) *Animation {
	return New(n, &fade{}, opts...)
}

// fade interpolates opacity between captured and zero.
type fade struct {
	in       bool
	captured float64
}

func (f *fade) Begin(n manim.Node) {
	m := n.Base()
	f.captured = m.Opacity()
	if f.in {
		m.SetOpacity(0)
	}
}

func (f *fade) InterpolateMobject(n manim.Node, alpha float64) {
	if f.in {
		n.Base().SetOpacity(manim.Interpolate(0, f.captured, alpha))
		return
	}
	n.Base().SetOpacity(manim.Interpolate(f.captured, 0, alpha))
}
