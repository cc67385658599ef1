package geometry

import (
	"fmt"
	"math"

	"github.com/gogpu/manim"
)

// Polygon returns the closed path through vertices. The first vertex is
// repeated at the end.
func Polygon(vertices []manim.Point, opts ...manim.Option) (*manim.VMobject, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: polygon needs at least one vertex", manim.ErrInvalidParameter)
	}
	for i, p := range vertices {
		if err := checkPoint(fmt.Sprintf("polygon vertex %d", i), p); err != nil {
			return nil, err
		}
	}

	v := manim.NewVMobject(opts...)
	v.StartNewPath(vertices[0])
	for _, p := range vertices[1:] {
		v.AddLineTo(p)
	}
	v.AddLineTo(vertices[0])
	return v, nil
}

// Vertices returns the anchors of v, without the closing repeat of the
// first one.
func Vertices(v *manim.VMobject) []manim.Point {
	anchors := v.Anchors()
	if len(anchors) > 1 && anchors[0] == anchors[len(anchors)-1] {
		anchors = anchors[:len(anchors)-1]
	}
	return anchors
}

// RegularPolygon returns an n-sided polygon inscribed in a circle of the
// given radius around the origin. Polygons with an odd number of sides
// have a vertex pointing up; even ones have a vertex on the right.
func RegularPolygon(n int, radius float64, opts ...manim.Option) (*manim.VMobject, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: regular polygon needs at least 3 sides, got %d", manim.ErrInvalidParameter, n)
	}
	if err := checkPositive("regular polygon radius", radius); err != nil {
		return nil, err
	}

	start := float64(n%2) * 90 * manim.Degrees
	vertices := make([]manim.Point, n)
	for i := range vertices {
		angle := start + float64(i)*manim.Tau/float64(n)
		vertices[i] = manim.Pt(radius*math.Cos(angle), radius*math.Sin(angle), 0)
	}
	return Polygon(vertices, opts...)
}

// Triangle returns an equilateral triangle with a vertex pointing up.
func Triangle(radius float64, opts ...manim.Option) (*manim.VMobject, error) {
	return RegularPolygon(3, radius, opts...)
}

// Rectangle returns an axis-aligned rectangle centered at the origin.
func Rectangle(width, height float64, opts ...manim.Option) (*manim.VMobject, error) {
	if err := checkPositive("rectangle width", width); err != nil {
		return nil, err
	}
	if err := checkPositive("rectangle height", height); err != nil {
		return nil, err
	}
	w, h := width/2, height/2
	return Polygon([]manim.Point{
		manim.Pt(w, h, 0),
		manim.Pt(-w, h, 0),
		manim.Pt(-w, -h, 0),
		manim.Pt(w, -h, 0),
	}, opts...)
}

// Square returns an axis-aligned square centered at the origin.
func Square(side float64, opts ...manim.Option) (*manim.VMobject, error) {
	if err := checkPositive("square side", side); err != nil {
		return nil, err
	}
	return Rectangle(side, side, opts...)
}
