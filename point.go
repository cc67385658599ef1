package manim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position or displacement in scene space.
type Point = mgl64.Vec3

// RGBA is a normalized color with alpha, one per point.
type RGBA = mgl64.Vec4

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{x, y, z}
}

// Direction and axis constants.
var (
	Origin = Point{0, 0, 0}
	Up     = Point{0, 1, 0}
	Down   = Point{0, -1, 0}
	Right  = Point{1, 0, 0}
	Left   = Point{-1, 0, 0}
	In     = Point{0, 0, -1}
	Out    = Point{0, 0, 1}

	XAxis = Point{1, 0, 0}
	YAxis = Point{0, 1, 0}
	ZAxis = Point{0, 0, 1}
)

// Angle constants.
const (
	Tau     = 2 * math.Pi
	Degrees = Tau / 360
)

// Frame and spacing constants for a 16:9 frame eight units tall.
const (
	FrameHeight  = 8.0
	FrameWidth   = FrameHeight * 1920 / 1080
	FrameYRadius = FrameHeight / 2
	FrameXRadius = FrameWidth / 2

	SmallBuff    = 0.1
	MedSmallBuff = 0.25
	MedLargeBuff = 0.5
	LargeBuff    = 1.0
)

// Lerp performs linear interpolation between two points.
// alpha=0 returns p, alpha=1 returns q. alpha is not clamped.
func Lerp(p, q Point, alpha float64) Point {
	return p.Mul(1 - alpha).Add(q.Mul(alpha))
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Lerp(p, q, 0.5)
}

// pointsApproxEqual reports whether two points match within eps per axis.
func pointsApproxEqual(p, q Point, eps float64) bool {
	for i := range p {
		if math.Abs(p[i]-q[i]) > eps {
			return false
		}
	}
	return true
}
