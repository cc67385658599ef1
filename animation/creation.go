package animation

import "github.com/gogpu/manim"

// ShowCreation draws every VMobject in the node's family from its start,
// revealing the path progressively.
func ShowCreation(n manim.Node, opts ...Option) *Animation {
	return New(n, &creation{}, opts...)
}

// Uncreate is ShowCreation in reverse: the paths shrink back to their
// starting points.
func Uncreate(n manim.Node, opts ...Option) *Animation {
	return New(n, &creation{reverse: true}, opts...)
}

// Write reveals the paths like ShowCreation while fading their fill in.
func Write(n manim.Node, opts ...Option) *Animation {
	return New(n, &creation{fill: true}, opts...)
}

// pathState is a VMobject captured by Begin.
type pathState struct {
	path        *manim.VMobject
	points      []manim.Point
	fillOpacity float64
}

type creation struct {
	reverse bool
	fill    bool
	paths   []pathState
}

func (c *creation) Begin(n manim.Node) {
	c.paths = c.paths[:0]
	for _, member := range n.Base().Family() {
		v, ok := member.(*manim.VMobject)
		if !ok {
			continue
		}
		c.paths = append(c.paths, pathState{
			path:        v,
			points:      v.Points(),
			fillOpacity: v.FillOpacity(),
		})
	}
	c.InterpolateMobject(n, 0)
}

func (c *creation) InterpolateMobject(_ manim.Node, alpha float64) {
	end := alpha
	if c.reverse {
		end = 1 - alpha
	}
	// Parents come before children, so a child's own fill wins over the
	// value its parent propagated.
	for _, p := range c.paths {
		p.path.BecomePartial(p.points, 0, end)
		if c.fill {
			p.path.SetFillOpacity(manim.Interpolate(0, p.fillOpacity, alpha))
		}
	}
}
