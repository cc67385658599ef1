package manim

import "math"

// Box is an axis-aligned bounding box in scene space.
// Min holds the per-axis minimum, Max the per-axis maximum.
type Box struct {
	Min, Max Point
}

// emptyBox is the accumulator start for bounding box scans.
func emptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Point{inf, inf, inf},
		Max: Point{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box has not seen any point.
func (b Box) IsEmpty() bool {
	return b.Min.X() > b.Max.X()
}

// extend grows the box to include p.
func (b Box) extend(p Point) Box {
	for i := range 3 {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

// Width returns the extent along X.
func (b Box) Width() float64 {
	return b.Max.X() - b.Min.X()
}

// Height returns the extent along Y.
func (b Box) Height() float64 {
	return b.Max.Y() - b.Min.Y()
}

// Depth returns the extent along Z.
func (b Box) Depth() float64 {
	return b.Max.Z() - b.Min.Z()
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Midpoint(b.Min, b.Max)
}

// Array returns the box as [minX, minY, minZ, maxX, maxY, maxZ].
func (b Box) Array() [6]float64 {
	return [6]float64{b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2]}
}

// Contains returns true if p lies inside the box or on its boundary.
func (b Box) Contains(p Point) bool {
	for i := range 3 {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}
