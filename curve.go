package manim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxArcComponents bounds the segment count QuadraticBezierPointsForArc
// accepts, whether requested or reached by doubling.
const MaxArcComponents = 1 << 20

// Interpolate returns the linear blend of start and end at alpha.
func Interpolate(start, end, alpha float64) float64 {
	return (1-alpha)*start + alpha*end
}

// IntegerInterpolate maps alpha onto the integer range [start, end) and
// returns the selected integer together with the fractional residue.
// alpha >= 1 selects end-1 with residue 1; alpha <= 0 selects start with
// residue 0.
func IntegerInterpolate(start, end int, alpha float64) (int, float64) {
	if alpha >= 1 {
		return end - 1, 1.0
	}
	if alpha <= 0 {
		return start, 0.0
	}
	v := Interpolate(float64(start), float64(end), alpha)
	idx := int(math.Floor(v))
	return idx, v - math.Floor(v)
}

// Choose returns the binomial coefficient n over k.
// The multiplicative formula keeps intermediate values small.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n/2 {
		k = n - k
	}
	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-i+1) / float64(i)
	}
	return res
}

// Bezier returns the Bézier curve of degree len(points)-1 defined by the
// control points. The returned function is not clamped to [0, 1].
// An empty control polygon evaluates to the origin everywhere.
func Bezier(points []Point) func(t float64) Point {
	pts := append([]Point(nil), points...)
	n := len(pts) - 1
	coeffs := make([]float64, len(pts))
	for k := range pts {
		coeffs[k] = Choose(n, k)
	}
	return func(t float64) Point {
		var result Point
		for k, p := range pts {
			w := math.Pow(1-t, float64(n-k)) * math.Pow(t, float64(k)) * coeffs[k]
			result = result.Add(p.Mul(w))
		}
		return result
	}
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 and P2 are anchors, P1 is the handle.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return q.P0.Mul(mt * mt).Add(q.P1.Mul(2 * mt * t)).Add(q.P2.Mul(t * t))
}

// Start returns the starting anchor.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns the ending anchor.
func (q QuadBez) End() Point {
	return q.P2
}

// Points returns the control points in storage order.
func (q QuadBez) Points() [3]Point {
	return [3]Point{q.P0, q.P1, q.P2}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: Midpoint(q.P0, q.P1), P2: mid},
		QuadBez{P0: mid, P1: Midpoint(q.P1, q.P2), P2: q.P2}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p := PartialQuadraticBezierPoints(q.Points(), t0, t1)
	return QuadBez{P0: p[0], P1: p[1], P2: p[2]}
}

// PartialQuadraticBezierPoints returns the control points of the quadratic
// that traces exactly the part of points between parameters a and b.
// a and b are clamped to [0, 1] and b to at least a. At a == 1 the result
// collapses onto the end anchor.
func PartialQuadraticBezierPoints(points [3]Point, a, b float64) [3]Point {
	a = clamp01(a)
	b = math.Max(clamp01(b), a)
	p0, p1, p2 := points[0], points[1], points[2]
	if a == 1 {
		return [3]Point{p2, p2, p2}
	}

	curve := QuadBez{P0: p0, P1: p1, P2: p2}
	h0 := p0
	if a > 0 {
		h0 = curve.Eval(a)
	}
	h2 := p2
	if b < 1 {
		h2 = curve.Eval(b)
	}

	// Right half of a de Casteljau split at a is [h0, h1Prime, p2];
	// its left part up to endProp is the requested range.
	h1Prime := Lerp(p1, p2, a)
	endProp := (b - a) / (1 - a)
	h1 := Lerp(h0, h1Prime, endProp)
	return [3]Point{h0, h1, h2}
}

// QuadraticBezierPointsForArc returns 2n+1 points describing n quadratic
// segments along the unit circle from angle 0 to angle (signed). Every
// handle sits at radius 1/cos(theta/2) on its segment's mid-angle, which
// makes each segment tangent to the circle at both anchors.
//
// n is doubled until every segment spans less than a half-turn. Non-finite
// angles, non-positive n and counts above MaxArcComponents fail with
// ErrInvalidParameter before anything is allocated.
func QuadraticBezierPointsForArc(angle float64, n int) ([]Point, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, fmt.Errorf("%w: arc angle %v is not finite", ErrInvalidParameter, angle)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: arc needs a positive component count, got %d", ErrInvalidParameter, n)
	}
	if n > MaxArcComponents {
		return nil, fmt.Errorf("%w: arc component count %d exceeds %d", ErrInvalidParameter, n, MaxArcComponents)
	}
	for math.Abs(angle/float64(n)) >= math.Pi {
		n *= 2
		if n > MaxArcComponents {
			return nil, fmt.Errorf("%w: arc angle %v needs more than %d components", ErrInvalidParameter, angle, MaxArcComponents)
		}
	}

	theta := angle / float64(n)
	rHandle := 1 / math.Cos(theta/2)
	points := make([]Point, 0, 2*n+1)
	points = append(points, Pt(1, 0, 0))
	for i := range n {
		start := float64(i) * theta
		end := start + theta
		mid := start + theta/2
		points = append(points,
			Pt(rHandle*math.Cos(mid), rHandle*math.Sin(mid), 0),
			Pt(math.Cos(end), math.Sin(end), 0),
		)
	}
	return points, nil
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return mgl64.Clamp(x, 0, 1)
}
