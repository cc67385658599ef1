package geometry

import (
	"fmt"
	"math"

	"github.com/gogpu/manim"
)

// Default sizes.
const (
	DefaultDotRadius = 0.08
	DefaultTipLength = 0.35
	DefaultTipWidth  = 0.35
)

// Arc returns a circular arc of the given radius centered at the origin,
// starting at startAngle and sweeping angle radians (counterclockwise when
// positive). It uses one segment per started eighth of a turn.
func Arc(radius, startAngle, angle float64, opts ...manim.Option) (*manim.VMobject, error) {
	return ArcSegments(radius, startAngle, angle, 0, opts...)
}

// ArcSegments is Arc with an explicit segment count. Zero picks the Arc
// default; the count is doubled as needed so no segment spans a half-turn.
// Counts above manim.MaxArcComponents fail with manim.ErrInvalidParameter.
func ArcSegments(radius, startAngle, angle float64, n int, opts ...manim.Option) (*manim.VMobject, error) {
	if err := checkPositive("arc radius", radius); err != nil {
		return nil, err
	}
	if err := checkFinite("arc start angle", startAngle); err != nil {
		return nil, err
	}
	if err := checkFinite("arc angle", angle); err != nil {
		return nil, err
	}
	if n == 0 {
		k := math.Ceil(8 * math.Abs(angle) / manim.Tau)
		if k > manim.MaxArcComponents {
			return nil, fmt.Errorf("%w: arc angle %v needs more than %d segments", manim.ErrInvalidParameter, angle, manim.MaxArcComponents)
		}
		n = max(int(k), 1)
	}
	points, err := manim.QuadraticBezierPointsForArc(angle, n)
	if err != nil {
		return nil, err
	}

	rot := manim.RotationMatrix(startAngle, manim.ZAxis)
	for i, p := range points {
		points[i] = rot.Mul4x1(p.Vec4(1)).Vec3().Mul(radius)
	}
	v := manim.NewVMobject(opts...)
	v.SetPoints(points)
	return v, nil
}

// Circle returns a full circle of the given radius centered at the origin.
func Circle(radius float64, opts ...manim.Option) (*manim.VMobject, error) {
	return Arc(radius, 0, manim.Tau, opts...)
}

// Dot returns a small filled circle centered at p. Without overriding
// options it is fully opaque and has no stroke.
func Dot(p manim.Point, opts ...manim.Option) (*manim.VMobject, error) {
	opts = append([]manim.Option{manim.WithFillOpacity(1), manim.WithStrokeWidth(0)}, opts...)
	v, err := Circle(DefaultDotRadius, opts...)
	if err != nil {
		return nil, err
	}
	v.Shift(p)
	return v, nil
}

// Ellipse returns an ellipse with the given extents centered at the origin.
func Ellipse(width, height float64, opts ...manim.Option) (*manim.VMobject, error) {
	if err := checkPositive("ellipse width", width); err != nil {
		return nil, err
	}
	if err := checkPositive("ellipse height", height); err != nil {
		return nil, err
	}
	v, err := Circle(1, opts...)
	if err != nil {
		return nil, err
	}
	v.ApplyPointsFunction(func(p manim.Point) manim.Point {
		return manim.Pt(p.X()*width/2, p.Y()*height/2, p.Z())
	})
	return v, nil
}

func checkFinite(name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: %s %v is not finite", manim.ErrInvalidParameter, name, x)
	}
	return nil
}

func checkPositive(name string, x float64) error {
	if err := checkFinite(name, x); err != nil {
		return err
	}
	if x <= 0 {
		return fmt.Errorf("%w: %s %v must be positive", manim.ErrInvalidParameter, name, x)
	}
	return nil
}

func checkPoint(name string, p manim.Point) error {
	for i := range 3 {
		if err := checkFinite(name, p[i]); err != nil {
			return err
		}
	}
	return nil
}
