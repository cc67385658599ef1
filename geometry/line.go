package geometry

import (
	"fmt"

	"github.com/gogpu/manim"
)

// Line returns the straight segment from start to end, with buff trimmed
// off each end. buff is capped at half the length, so an oversized buff
// collapses the line onto its midpoint. A zero-length line has both
// anchors at start.
func Line(start, end manim.Point, buff float64, opts ...manim.Option) (*manim.VMobject, error) {
	if err := checkPoint("line start", start); err != nil {
		return nil, err
	}
	if err := checkPoint("line end", end); err != nil {
		return nil, err
	}
	if err := checkFinite("line buff", buff); err != nil {
		return nil, err
	}
	if buff < 0 {
		return nil, fmt.Errorf("%w: line buff %v is negative", manim.ErrInvalidParameter, buff)
	}

	d := end.Sub(start)
	buff = min(buff, d.Len()/2)
	u := manim.Normalize(d)

	v := manim.NewVMobject(opts...)
	v.StartNewPath(start.Add(u.Mul(buff)))
	v.AddLineTo(end.Sub(u.Mul(buff)))
	return v, nil
}

// Length returns the distance between the first and last anchor of v.
func Length(v *manim.VMobject) float64 {
	return v.End().Sub(v.Start()).Len()
}

// Arrow returns a line from start to end with a filled tip at end. The
// line stops at the base of the tip; the tip is a child of the line, so
// transforms and colors apply to both. Lines shorter than the tip get a
// tip scaled down to their length.
func Arrow(start, end manim.Point, buff float64, opts ...manim.Option) (*manim.VMobject, error) {
	line, err := Line(start, end, buff, opts...)
	if err != nil {
		return nil, err
	}
	tail, head := line.Start(), line.End()
	d := head.Sub(tail)
	length := min(DefaultTipLength, d.Len())
	if length == 0 {
		return line, nil
	}
	tipOpts := append([]manim.Option{manim.WithFillOpacity(1)}, opts...)
	tip, err := ArrowTip(length, DefaultTipWidth*length/DefaultTipLength, tipOpts...)
	if err != nil {
		return nil, err
	}
	tip.RotateAbout(manim.AngleOfVector(d), manim.ZAxis, manim.Origin)
	tip.Shift(head)

	base := head.Sub(manim.Normalize(d).Mul(length))
	line.SetPoints([]manim.Point{tail, manim.Midpoint(tail, base), base})
	if err := line.Add(tip); err != nil {
		return nil, err
	}
	return line, nil
}

// Vector returns an arrow from the origin to direction.
func Vector(direction manim.Point, opts ...manim.Option) (*manim.VMobject, error) {
	return Arrow(manim.Origin, direction, 0, opts...)
}

// ArrowTip returns a closed triangular tip of the given length and base
// width with its point at the origin, pointing along +X.
func ArrowTip(length, width float64, opts ...manim.Option) (*manim.VMobject, error) {
	if err := checkPositive("tip length", length); err != nil {
		return nil, err
	}
	if err := checkPositive("tip width", width); err != nil {
		return nil, err
	}
	return Polygon([]manim.Point{
		manim.Origin,
		manim.Pt(-length, width/2, 0),
		manim.Pt(-length, -width/2, 0),
	}, opts...)
}

// TipPoint returns the point of a tip built by ArrowTip.
func TipPoint(tip *manim.VMobject) manim.Point {
	return tip.Start()
}
