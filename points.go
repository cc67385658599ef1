package manim

// PointBuffer stores positions and their per-point colors side by side.
// The two sequences always have the same length.
type PointBuffer struct {
	points []Point
	rgbas  []RGBA
}

// Len returns the number of points.
func (b *PointBuffer) Len() int {
	return len(b.points)
}

// Resize sets the number of points. Existing entries are kept; new entries
// repeat the last point and color, or are zero when the buffer was empty.
func (b *PointBuffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	cur := len(b.points)
	switch {
	case n == cur:
		return
	case n < cur:
		b.points = b.points[:n:n]
		b.rgbas = b.rgbas[:n:n]
		return
	}

	var fillP Point
	var fillC RGBA
	if cur > 0 {
		fillP = b.points[cur-1]
		fillC = b.rgbas[cur-1]
	}
	for range n - cur {
		b.points = append(b.points, fillP)
		b.rgbas = append(b.rgbas, fillC)
	}
}

// Set replaces every position. Colors of surviving indices are kept.
func (b *PointBuffer) Set(points []Point) {
	b.Resize(len(points))
	copy(b.points, points)
}

// Append adds positions at the end, colored like the current last point.
func (b *PointBuffer) Append(points ...Point) {
	start := len(b.points)
	b.Resize(start + len(points))
	copy(b.points[start:], points)
}

// Points returns a copy of the positions.
func (b *PointBuffer) Points() []Point {
	return append([]Point(nil), b.points...)
}

// RGBAs returns a copy of the per-point colors.
func (b *PointBuffer) RGBAs() []RGBA {
	return append([]RGBA(nil), b.rgbas...)
}

// At returns the i-th position.
func (b *PointBuffer) At(i int) Point {
	return b.points[i]
}

// Fill sets every point's color to c.
func (b *PointBuffer) Fill(c RGBA) {
	for i := range b.rgbas {
		b.rgbas[i] = c
	}
}

// apply replaces every position p with fn(p).
func (b *PointBuffer) apply(fn func(Point) Point) {
	for i, p := range b.points {
		b.points[i] = fn(p)
	}
}

// fillFrom colors the points at index start and beyond.
func (b *PointBuffer) fillFrom(start int, c RGBA) {
	for i := start; i < len(b.rgbas); i++ {
		b.rgbas[i] = c
	}
}
