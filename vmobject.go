package manim

import (
	"fmt"
	"math"
)

// VMobject is a Mobject whose points form a chain of quadratic Bézier
// segments. Segment i uses points 2i, 2i+1 and 2i+2, so consecutive
// segments share an anchor and k segments take 2k+1 points. A segment whose
// handle sits on its start anchor and whose end lies elsewhere marks a jump
// to a new sub-path, so a quadratic drawn with its handle on the start
// anchor reads back as a move.
//
// Stroke and fill style are stored on the VMobject, not per point.
type VMobject struct {
	Mobject

	strokeColor   Color
	strokeOpacity float64
	strokeWidth   float64
	fillColor     Color
	fillOpacity   float64
}

// NewVMobject creates an empty path. Stroke and fill colors default to the
// base color; the path is stroked and unfilled.
func NewVMobject(opts ...Option) *VMobject {
	v := &VMobject{}
	o := buildOptions(opts)
	v.Mobject.init(v, o)

	v.strokeColor = o.color
	if o.strokeColor != nil {
		v.strokeColor = *o.strokeColor
	}
	v.fillColor = o.color
	if o.fillColor != nil {
		v.fillColor = *o.fillColor
	}
	v.strokeOpacity = o.strokeOpacity
	v.strokeWidth = o.strokeWidth
	v.fillOpacity = o.fillOpacity
	return v
}

// NewVGroup creates an empty path holding children.
func NewVGroup(children ...*VMobject) (*VMobject, error) {
	g := NewVMobject()
	nodes := make([]Node, len(children))
	for i, c := range children {
		nodes[i] = c
	}
	if err := g.Add(nodes...); err != nil {
		return nil, err
	}
	return g, nil
}

// Base returns the embedded Mobject, or nil when v is nil.
func (v *VMobject) Base() *Mobject {
	if v == nil {
		return nil
	}
	return &v.Mobject
}

// -------------------------------------------------------------------
// Path building
// -------------------------------------------------------------------

// StartNewPath begins a sub-path at p. On a non-empty path it appends the
// degenerate segment [last, last, p]: its handle sits on its start anchor,
// which marks a move without connecting geometry. Starting at the current
// last point records a zero-length segment and keeps the sub-path going.
func (v *VMobject) StartNewPath(p Point) *VMobject {
	if v.NumPoints() == 0 {
		v.SetPoints([]Point{p})
		return v
	}
	last := v.LastPoint()
	v.AppendPoints(last, p)
	return v
}

// AddLineTo appends a straight segment to p, stored as a quadratic whose
// handle is the midpoint of the segment. An empty path starts at the origin.
func (v *VMobject) AddLineTo(p Point) *VMobject {
	v.ensureStarted()
	v.AppendPoints(Midpoint(v.LastPoint(), p), p)
	return v
}

// AddQuadraticBezierCurveTo appends the segment [last, handle, anchor].
// An empty path starts at the origin.
func (v *VMobject) AddQuadraticBezierCurveTo(handle, anchor Point) *VMobject {
	v.ensureStarted()
	v.AppendPoints(handle, anchor)
	return v
}

// AddCubicBezierCurveTo approximates a cubic segment with one quadratic
// whose handle is the midpoint of the two cubic handles. The result passes
// through both anchors but generally not along the cubic.
func (v *VMobject) AddCubicBezierCurveTo(handle1, handle2, anchor Point) *VMobject {
	return v.AddQuadraticBezierCurveTo(Midpoint(handle1, handle2), anchor)
}

// closeTolerance is the absolute per-axis distance at which a sub-path
// counts as ending on its start.
const closeTolerance = 1e-9

// ClosePath draws a line back to the start of the current sub-path unless
// the path already ends there.
func (v *VMobject) ClosePath() *VMobject {
	if v.NumCurves() == 0 {
		return v
	}
	start := v.PointAt(v.subpathStart())
	if pointsApproxEqual(v.LastPoint(), start, closeTolerance) {
		return v
	}
	return v.AddLineTo(start)
}

// IsClosed reports whether the current sub-path ends where it starts.
func (v *VMobject) IsClosed() bool {
	if v.NumCurves() == 0 {
		return false
	}
	return pointsApproxEqual(v.LastPoint(), v.PointAt(v.subpathStart()), closeTolerance)
}

func (v *VMobject) ensureStarted() {
	if v.NumPoints() == 0 {
		v.StartNewPath(Origin)
	}
}

// subpathStart returns the index of the first anchor of the last sub-path.
func (v *VMobject) subpathStart() int {
	for i := v.NumCurves() - 1; i >= 0; i-- {
		if v.isMoveAt(i) {
			return 2*i + 2
		}
	}
	return 0
}

// isMoveAt reports whether curve i is the jump StartNewPath records: its
// handle sits on the start anchor while the end anchor lies elsewhere.
// A zero-length segment is drawn, not a move.
func (v *VMobject) isMoveAt(i int) bool {
	p := v.buf.points[2*i : 2*i+3]
	return p[0] == p[1] && p[1] != p[2]
}

// -------------------------------------------------------------------
// Curve access
// -------------------------------------------------------------------

// NumCurves returns the number of quadratic segments.
func (v *VMobject) NumCurves() int {
	n := v.NumPoints()
	if n < 3 {
		return 0
	}
	return (n - 1) / 2
}

// NthCurve returns segment i. It panics if i is out of range.
func (v *VMobject) NthCurve(i int) QuadBez {
	if n := v.NumCurves(); i < 0 || i >= n {
		panic(fmt.Sprintf("manim: curve index %d out of range [0, %d)", i, n))
	}
	p := v.buf.points[2*i : 2*i+3]
	return QuadBez{P0: p[0], P1: p[1], P2: p[2]}
}

// Curves returns every segment in order.
func (v *VMobject) Curves() []QuadBez {
	curves := make([]QuadBez, v.NumCurves())
	for i := range curves {
		curves[i] = v.NthCurve(i)
	}
	return curves
}

// Subpaths splits the points at move segments. Each sub-path is a run of
// 2k+1 points.
func (v *VMobject) Subpaths() [][]Point {
	n := v.NumCurves()
	if n == 0 {
		return nil
	}
	var paths [][]Point
	start := 0
	for i := range n {
		if v.isMoveAt(i) {
			if 2*i > start {
				paths = append(paths, append([]Point(nil), v.buf.points[start:2*i+1]...))
			}
			start = 2*i + 2
		}
	}
	if 2*n > start {
		paths = append(paths, append([]Point(nil), v.buf.points[start:2*n+1]...))
	}
	return paths
}

// LastPoint returns the final point, or the origin for an empty path.
func (v *VMobject) LastPoint() Point {
	n := v.NumPoints()
	if n == 0 {
		return Origin
	}
	return v.PointAt(n - 1)
}

// Start returns the first anchor, or the origin for an empty path.
func (v *VMobject) Start() Point {
	if v.NumPoints() == 0 {
		return Origin
	}
	return v.PointAt(0)
}

// End is an alias for LastPoint.
func (v *VMobject) End() Point {
	return v.LastPoint()
}

// Anchors returns the points at even indices.
func (v *VMobject) Anchors() []Point {
	var anchors []Point
	for i := 0; i < v.NumPoints(); i += 2 {
		anchors = append(anchors, v.PointAt(i))
	}
	return anchors
}

// PointFromProportion returns the point at alpha along the path, where
// alpha is clamped to [0, 1] and every segment covers an equal share of
// the range regardless of its length. A path without segments returns its
// only point, or the origin.
func (v *VMobject) PointFromProportion(alpha float64) Point {
	n := v.NumCurves()
	if n == 0 {
		return v.Start()
	}
	val := clamp01(alpha) * float64(n)
	idx := int(math.Floor(val))
	t := val - float64(idx)
	if idx >= n {
		idx, t = n-1, 1
	}
	return v.NthCurve(idx).Eval(t)
}

// BecomePartial sets v's points to the part of the path described by
// points between proportions a and b. The point count matches points, so
// the result can be animated against the full path; the parts outside the
// range collapse onto the range's endpoints.
func (v *VMobject) BecomePartial(points []Point, a, b float64) *VMobject {
	n := 0
	if len(points) >= 3 {
		n = (len(points) - 1) / 2
	}
	if n == 0 {
		v.SetPoints(points)
		return v
	}
	out := append([]Point(nil), points[:2*n+1]...)
	a = clamp01(a)
	b = math.Max(clamp01(b), a)
	if a <= 0 && b >= 1 {
		v.SetPoints(out)
		return v
	}

	curve := func(i int) [3]Point {
		return [3]Point{points[2*i], points[2*i+1], points[2*i+2]}
	}
	lowIdx, lowRes := IntegerInterpolate(0, n, a)
	upIdx, upRes := IntegerInterpolate(0, n, b)
	i1, i2 := 2*lowIdx, 2*upIdx

	var low, up [3]Point
	if lowIdx == upIdx {
		low = PartialQuadraticBezierPoints(curve(lowIdx), lowRes, upRes)
		up = low
	} else {
		low = PartialQuadraticBezierPoints(curve(lowIdx), lowRes, 1)
		up = PartialQuadraticBezierPoints(curve(upIdx), 0, upRes)
	}
	for j := range i1 {
		out[j] = low[0]
	}
	copy(out[i1:i1+3], low[:])
	copy(out[i2:i2+3], up[:])
	for j := i2 + 3; j < len(out); j++ {
		out[j] = up[2]
	}
	v.SetPoints(out)
	return v
}

// -------------------------------------------------------------------
// Stroke and fill
// -------------------------------------------------------------------

// StrokeColor returns the stroke color.
func (v *VMobject) StrokeColor() Color { return v.strokeColor }

// StrokeOpacity returns the stroke opacity.
func (v *VMobject) StrokeOpacity() float64 { return v.strokeOpacity }

// StrokeWidth returns the stroke width.
func (v *VMobject) StrokeWidth() float64 { return v.strokeWidth }

// FillColor returns the fill color.
func (v *VMobject) FillColor() Color { return v.fillColor }

// FillOpacity returns the fill opacity.
func (v *VMobject) FillOpacity() float64 { return v.fillOpacity }

// SetStrokeColor sets the stroke color of every VMobject in the family.
func (v *VMobject) SetStrokeColor(c Color) *VMobject {
	v.eachPath(func(p *VMobject) { p.strokeColor = c })
	return v
}

// SetStrokeOpacity sets the stroke opacity of every VMobject in the family.
func (v *VMobject) SetStrokeOpacity(opacity float64) *VMobject {
	v.eachPath(func(p *VMobject) { p.strokeOpacity = opacity })
	return v
}

// SetStrokeWidth sets the stroke width of every VMobject in the family.
func (v *VMobject) SetStrokeWidth(width float64) *VMobject {
	v.eachPath(func(p *VMobject) { p.strokeWidth = width })
	return v
}

// SetFillColor sets the fill color of every VMobject in the family.
func (v *VMobject) SetFillColor(c Color) *VMobject {
	v.eachPath(func(p *VMobject) { p.fillColor = c })
	return v
}

// SetFillOpacity sets the fill opacity of every VMobject in the family.
func (v *VMobject) SetFillOpacity(opacity float64) *VMobject {
	v.eachPath(func(p *VMobject) { p.fillOpacity = opacity })
	return v
}

// eachPath calls fn on every VMobject in v's family.
func (v *VMobject) eachPath(fn func(*VMobject)) {
	for _, n := range v.familyNodes() {
		if p, ok := n.(*VMobject); ok {
			fn(p)
		}
	}
}
