package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Cross returns the Z component of the 3D cross product of v1 and v2
// taken with Z = 0.
func Cross(v1, v2 r2.Vec) float64 {
	return r2.Cross(v1, v2)
}

// Normalize returns v scaled to unit length.
// A zero vector is returned unchanged.
func Normalize(v r2.Vec) r2.Vec {
	length := r2.Norm(v)
	if length > 0 {
		return r2.Scale(1/length, v)
	}
	return v
}

// ClockwiseTangent rotates a direction a quarter turn clockwise on a Y-down screen.
func ClockwiseTangent(normal r2.Vec) r2.Vec {
	return r2.Vec{X: -normal.Y, Y: normal.X}
}

// FlipY mirrors v across the X axis, converting between screen (Y down) and math (Y up) space.
func FlipY(v r2.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: -v.Y}
}

// ScreenAngle returns the canonical counter-clockwise angle of a screen-space direction.
func ScreenAngle(dir r2.Vec) float64 {
	return NormalizeAngle(math.Atan2(-dir.Y, dir.X))
}

// ProjectAlong returns the point scalar units from origin along axis.
func ProjectAlong(origin, axis r2.Vec, scalar float64) r2.Vec {
	return r2.Add(origin, r2.Scale(scalar, axis))
}
