// Package renderer draws the arrows and their geometric aids with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dotcross/geom"
	"github.com/pthm-cable/dotcross/scene"
)

const (
	lineThickness = 2
	originRadius  = 4
	headSize      = 8
	tickSize      = 4
)

// ArrowRenderer draws arrows, angle arcs and projection overlays.
type ArrowRenderer struct {
	palette Palette
}

// NewArrowRenderer creates a renderer using the given palette.
func NewArrowRenderer(p Palette) *ArrowRenderer {
	return &ArrowRenderer{palette: p}
}

// Draw renders everything in world space for the current frame.
func (a *ArrowRenderer) Draw(s *scene.State, r scene.Readout) {
	a.drawArrow(s.Arrow(scene.Primary), a.palette.Arrows[0])
	if !s.SecondaryVisible() {
		return
	}
	a.drawArrow(s.Arrow(scene.Secondary), a.palette.Arrows[1])

	red := s.Arrow(scene.Primary)
	if s.Overlays.IsEnabled(scene.OverlayAngleBetween) {
		a.drawAngleBetween(red, r.Delta)
	}
	if s.Overlays.IsEnabled(scene.OverlayDotProjection) {
		// Tick runs across the normal.
		a.drawProjection(red.Start, r.DotPoint, red.Tangent, a.palette.DotProduct)
	}
	if s.Overlays.IsEnabled(scene.OverlayCrossProjection) {
		a.drawProjection(red.Start, r.CrossPoint, red.Normal, a.palette.CrossProduct)
	}
}

func (a *ArrowRenderer) drawArrow(v scene.ArrowView, color rl.Color) {
	rl.DrawCircleV(vec(v.Start), originRadius, color)

	rl.DrawLineEx(vec(v.Start), vec(v.End), lineThickness, color)
	back := r2.Scale(-headSize, v.Normal)
	side := r2.Scale(headSize, v.Tangent)
	rl.DrawLineEx(vec(v.End), vec(r2.Add(v.End, r2.Add(back, side))), lineThickness, color)
	rl.DrawLineEx(vec(v.End), vec(r2.Sub(r2.Add(v.End, back), side)), lineThickness, color)

	// Counter-clockwise arc from angle 0 to the arrow's angle.
	drawArc(v.Start, v.Length*0.5, 0, v.Angle, color)
}

func (a *ArrowRenderer) drawAngleBetween(red scene.ArrowView, delta float64) {
	radius := red.Length * 0.75
	if radius < 3*headSize {
		radius = 3 * headSize
	}
	drawArc(red.Start, radius, red.Angle, red.Angle+delta, a.palette.Delta)
}

func (a *ArrowRenderer) drawProjection(origin, point, tickAxis r2.Vec, color rl.Color) {
	rl.DrawLineEx(vec(origin), vec(point), lineThickness, color)
	tick := r2.Scale(tickSize, tickAxis)
	rl.DrawLineEx(vec(r2.Sub(point, tick)), vec(r2.Add(point, tick)), lineThickness, color)
}

// drawArc outlines the sector between two counter-clockwise angles (radians).
// raylib measures degrees clockwise on screen, so both are negated.
func drawArc(center r2.Vec, radius, from, to float64, color rl.Color) {
	start := float32(-geom.Degrees(to))
	end := float32(-geom.Degrees(from))
	if start > end {
		start, end = end, start
	}
	rl.DrawRingLines(vec(center), 0, float32(radius), start, end, 0, color)
}
