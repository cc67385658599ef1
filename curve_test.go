package manim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

// -------------------------------------------------------------------
// Scalar helpers
// -------------------------------------------------------------------

func TestChoose(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{5, 3, 10},
		{10, 4, 210},
		{52, 5, 2598960},
		{3, -1, 0},
		{3, 4, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Choose(tt.n, tt.k), epsilon, "Choose(%d, %d)", tt.n, tt.k)
	}
}

func TestChooseLargeDoesNotOverflow(t *testing.T) {
	got := Choose(100, 50)
	assert.False(t, math.IsInf(got, 0))
	assert.InEpsilon(t, 1.0089134454556417e29, got, 1e-12)
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 0.0, Interpolate(0, 10, 0))
	assert.Equal(t, 10.0, Interpolate(0, 10, 1))
	assert.InDelta(t, 2.5, Interpolate(0, 10, 0.25), epsilon)
}

func TestIntegerInterpolate(t *testing.T) {
	tests := []struct {
		name    string
		alpha   float64
		wantIdx int
		wantRes float64
	}{
		{"start", 0, 0, 0},
		{"negative", -0.5, 0, 0},
		{"inside first", 0.125, 0, 0.5},
		{"boundary", 0.5, 2, 0},
		{"inside last", 0.875, 3, 0.5},
		{"end", 1, 3, 1},
		{"past end", 1.5, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, res := IntegerInterpolate(0, 4, tt.alpha)
			assert.Equal(t, tt.wantIdx, idx)
			assert.InDelta(t, tt.wantRes, res, epsilon)
		})
	}
}

// -------------------------------------------------------------------
// Bezier
// -------------------------------------------------------------------

func TestBezierQuadratic(t *testing.T) {
	curve := Bezier([]Point{Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 0, 0)})

	assertPointInDelta(t, Pt(0, 0, 0), curve(0), epsilon)
	assertPointInDelta(t, Pt(1, 0.5, 0), curve(0.5), epsilon)
	assertPointInDelta(t, Pt(2, 0, 0), curve(1), epsilon)
}

func TestBezierIsNotClamped(t *testing.T) {
	curve := Bezier([]Point{Pt(0, 0, 0), Pt(1, 0, 0)})
	assertPointInDelta(t, Pt(2, 0, 0), curve(2), epsilon)
	assertPointInDelta(t, Pt(-1, 0, 0), curve(-1), epsilon)
}

func TestBezierMatchesQuadBez(t *testing.T) {
	q := NewQuadBez(Pt(0, 0, 1), Pt(3, 4, -2), Pt(5, -1, 0))
	pts := q.Points()
	curve := Bezier(pts[:])
	for _, tt := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
		assertPointInDelta(t, q.Eval(tt), curve(tt), epsilon, "t=%v", tt)
	}
}

func TestBezierCubic(t *testing.T) {
	curve := Bezier([]Point{Pt(0, 0, 0), Pt(0, 1, 0), Pt(1, 1, 0), Pt(1, 0, 0)})
	assertPointInDelta(t, Pt(0.5, 0.75, 0), curve(0.5), epsilon)
}

func TestBezierEmpty(t *testing.T) {
	assert.Equal(t, Origin, Bezier(nil)(0.5))
}

func TestBezierCopiesControlPoints(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 0, 0)}
	curve := Bezier(pts)
	pts[1] = Pt(9, 9, 9)
	assertPointInDelta(t, Pt(1, 0, 0), curve(1), epsilon)
}

// -------------------------------------------------------------------
// QuadBez
// -------------------------------------------------------------------

func TestQuadBezSubdivide(t *testing.T) {
	q := NewQuadBez(Pt(0, 0, 0), Pt(1, 2, 0), Pt(2, 0, 0))
	left, right := q.Subdivide()

	assert.Equal(t, q.Start(), left.Start())
	assert.Equal(t, q.End(), right.End())
	assertPointInDelta(t, left.End(), right.Start(), epsilon)
	assertPointInDelta(t, q.Eval(0.25), left.Eval(0.5), epsilon)
	assertPointInDelta(t, q.Eval(0.75), right.Eval(0.5), epsilon)
}

func TestQuadBezSubsegmentTracesOriginal(t *testing.T) {
	q := NewQuadBez(Pt(0, 0, 0), Pt(1, 3, 1), Pt(4, 0, 2))
	sub := q.Subsegment(0.2, 0.7)
	for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
		want := q.Eval(0.2 + s*0.5)
		assertPointInDelta(t, want, sub.Eval(s), epsilon, "s=%v", s)
	}
}

// -------------------------------------------------------------------
// Partial curves
// -------------------------------------------------------------------

func TestPartialQuadraticBezierPoints(t *testing.T) {
	pts := [3]Point{Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 0, 0)}

	t.Run("full range is identity", func(t *testing.T) {
		assert.Equal(t, pts, PartialQuadraticBezierPoints(pts, 0, 1))
	})

	t.Run("a=1 collapses to end anchor", func(t *testing.T) {
		got := PartialQuadraticBezierPoints(pts, 1, 1)
		assert.Equal(t, [3]Point{pts[2], pts[2], pts[2]}, got)
	})

	t.Run("handle is not the sampled midpoint", func(t *testing.T) {
		got := PartialQuadraticBezierPoints(pts, 0, 0.5)
		assertPointInDelta(t, Pt(0, 0, 0), got[0], epsilon)
		assertPointInDelta(t, Pt(0.5, 0.5, 0), got[1], epsilon)
		assertPointInDelta(t, Pt(1, 0.5, 0), got[2], epsilon)
	})

	t.Run("restricted curve is exact", func(t *testing.T) {
		a, b := 0.3, 0.8
		p := PartialQuadraticBezierPoints(pts, a, b)
		sub := NewQuadBez(p[0], p[1], p[2])
		orig := NewQuadBez(pts[0], pts[1], pts[2])
		for _, s := range []float64{0, 0.2, 0.5, 0.8, 1} {
			assertPointInDelta(t, orig.Eval(a+s*(b-a)), sub.Eval(s), epsilon, "s=%v", s)
		}
	})

	t.Run("empty range collapses", func(t *testing.T) {
		got := PartialQuadraticBezierPoints(pts, 0.5, 0.5)
		for _, p := range got {
			assertPointInDelta(t, Pt(1, 0.5, 0), p, epsilon)
		}
	})

	t.Run("out of range parameters are clamped", func(t *testing.T) {
		assert.Equal(t, pts, PartialQuadraticBezierPoints(pts, -1, 2))
	})
}

// -------------------------------------------------------------------
// Arcs
// -------------------------------------------------------------------

func TestQuadraticBezierPointsForArcQuarter(t *testing.T) {
	pts, err := QuadraticBezierPointsForArc(math.Pi/2, 1)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	assertPointInDelta(t, Pt(1, 0, 0), pts[0], epsilon)
	assertPointInDelta(t, Pt(1, 1, 0), pts[1], epsilon)
	assertPointInDelta(t, Pt(0, 1, 0), pts[2], epsilon)
}

func TestQuadraticBezierPointsForArcAnchorsOnCircle(t *testing.T) {
	pts, err := QuadraticBezierPointsForArc(-Tau*0.75, 6)
	require.NoError(t, err)
	require.Len(t, pts, 13)
	for i := 0; i < len(pts); i += 2 {
		assert.InDelta(t, 1.0, pts[i].Len(), epsilon, "anchor %d", i)
	}
	assertPointInDelta(t, Pt(0, 1, 0), pts[12], epsilon)
}

func TestQuadraticBezierPointsForArcDoublesComponents(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		n        int
		wantLen  int
		wantLast Point
	}{
		{"exact half turn", math.Pi, 1, 5, Pt(-1, 0, 0)},
		{"full turn", Tau, 1, 9, Pt(1, 0, 0)},
		{"full turn with two", Tau, 2, 9, Pt(1, 0, 0)},
		{"negative full turn", -Tau, 3, 7, Pt(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := QuadraticBezierPointsForArc(tt.angle, tt.n)
			require.NoError(t, err)
			assert.Len(t, pts, tt.wantLen)
			assertPointInDelta(t, tt.wantLast, pts[len(pts)-1], epsilon)
			for _, p := range pts {
				assert.False(t, math.IsInf(p.X(), 0) || math.IsNaN(p.X()))
			}
		})
	}
}

func TestQuadraticBezierPointsForArcAtCap(t *testing.T) {
	pts, err := QuadraticBezierPointsForArc(1, MaxArcComponents)
	require.NoError(t, err)
	assert.Len(t, pts, 2*MaxArcComponents+1)
}

func TestQuadraticBezierPointsForArcRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		n     int
	}{
		{"nan angle", math.NaN(), 4},
		{"inf angle", math.Inf(1), 4},
		{"zero components", math.Pi, 0},
		{"negative components", math.Pi, -2},
		{"unreachable angle", 1e300, 1},
		{"too many components", 1, 1 << 40},
		{"one past the cap", 1, MaxArcComponents + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := QuadraticBezierPointsForArc(tt.angle, tt.n)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, pts)
		})
	}
}
