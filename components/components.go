// Package components defines ECS components for the arrows.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Arrow identifies one of the two arrows.
type Arrow struct {
	Index int    // 0 = primary (red), 1 = secondary (blue)
	Name  string // Display name used in the HUD
}

// Segment holds an arrow's screen-space endpoints (Y down).
type Segment struct {
	Start, End r2.Vec
}

// Geometry is derived from Segment every frame.
type Geometry struct {
	Normal  r2.Vec  // unit direction, zero for a zero-length arrow
	Tangent r2.Vec  // Normal rotated a quarter turn clockwise on screen
	Angle   float64 // canonical counter-clockwise angle in [0, Tau)
	Length  float64
}
