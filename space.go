package manim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Normalize returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func Normalize(v Point) Point {
	n := v.Len()
	if n == 0 {
		return Point{}
	}
	return v.Mul(1 / n)
}

// RotationMatrix returns the homogeneous matrix rotating by angle radians
// about axis, following the right-hand rule. A zero-length axis yields the
// identity.
func RotationMatrix(angle float64, axis Point) mgl64.Mat4 {
	if axis.Len() == 0 {
		return mgl64.Ident4()
	}
	return mgl64.HomogRotate3D(angle, Normalize(axis))
}

// RotateVector rotates v by angle radians about axis through the origin.
func RotateVector(v Point, angle float64, axis Point) Point {
	return RotationMatrix(angle, axis).Mul4x1(v.Vec4(1)).Vec3()
}

// AngleOfVector returns the angle of v projected onto the XY plane,
// measured counter-clockwise from [Right].
func AngleOfVector(v Point) float64 {
	return math.Atan2(v.Y(), v.X())
}
