package scene

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dotcross/geom"
)

// Readout holds the numbers shown for one frame.
type Readout struct {
	Frame  int
	Angles [2]float64 // canonical angle of each arrow
	Delta  float64    // AngleBetween(Angles[0], Angles[1])

	// Products of the unit directions. Cross uses the same Y flip as the
	// angles so its sign agrees with Delta.
	Dot   float64
	Cross float64

	// Blue start relative to red start, measured along the red normal (dot)
	// and along the red clockwise tangent (cross).
	DotProjection   float64
	CrossProjection float64
	DotPoint        r2.Vec
	CrossPoint      r2.Vec
}

// Readout computes the frame's numbers from the current geometry.
func (s *State) Readout() Readout {
	red := s.Arrow(Primary)
	blue := s.Arrow(Secondary)
	rel := r2.Sub(blue.Start, red.Start)

	r := Readout{
		Frame:  s.frame,
		Angles: [2]float64{red.Angle, blue.Angle},
		Delta:  geom.AngleBetween(red.Angle, blue.Angle),
		Dot:    r2.Dot(red.Normal, blue.Normal),
		Cross:  geom.Cross(geom.FlipY(red.Normal), geom.FlipY(blue.Normal)),

		DotProjection:   r2.Dot(red.Normal, rel),
		CrossProjection: geom.Cross(red.Normal, rel),
	}
	r.DotPoint = geom.ProjectAlong(red.Start, red.Normal, r.DotProjection)
	r.CrossPoint = geom.ProjectAlong(red.Start, red.Tangent, r.CrossProjection)
	return r
}

// Role says what a line of text describes; the UI picks its color.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
	RoleDelta
	RoleDot
	RoleCross
)

// Line is one line of HUD text.
type Line struct {
	Text string
	Role Role
}

func angleLine(label string, angle float64, role Role) Line {
	return Line{
		Text: fmt.Sprintf("%s: %.0f deg (%.2f rad) cos: %.2f sin: %.2f",
			label, geom.Degrees(angle), angle, math.Cos(angle), math.Sin(angle)),
		Role: role,
	}
}

// HUDLines returns the readout text top to bottom.
func (s *State) HUDLines(r Readout) []Line {
	lines := []Line{
		angleLine(s.Arrow(Primary).Name+" angle", r.Angles[0], RolePrimary),
	}
	if !s.SecondaryVisible() {
		return lines
	}

	lines = append(lines,
		angleLine(s.Arrow(Secondary).Name+" angle", r.Angles[1], RoleSecondary),
		angleLine("Angle delta", r.Delta, RoleDelta),
	)

	if s.Overlays.IsEnabled(OverlayReadout) {
		lines = append(lines,
			Line{Text: fmt.Sprintf("Dot product: %.2f", r.Dot), Role: RoleDot},
			Line{Text: fmt.Sprintf("Cross product: %.2f", r.Cross), Role: RoleCross},
		)
	}
	return lines
}

// PromptLines returns the key legend top to bottom, or nil when prompts are off.
func (s *State) PromptLines() []Line {
	if !s.Overlays.IsEnabled(OverlayPrompts) {
		return nil
	}

	key := func(id OverlayID) string {
		desc, _ := s.Overlays.Get(id)
		return desc.Key
	}
	red, blue := s.Arrow(Primary).Name, s.Arrow(Secondary).Name
	g := s.grabs

	return []Line{
		{Text: fmt.Sprintf("%s start: [%s] %s end: [%s]", red, g[0].key, red, g[1].key), Role: RolePrimary},
		{Text: fmt.Sprintf("%s start: [%s] %s end: [%s]", blue, g[2].key, blue, g[3].key), Role: RoleSecondary},
		{Text: fmt.Sprintf("Toggle %s arrow: [%s] angle: [%s]", blue, key(OverlaySecondaryArrow), key(OverlayAngleBetween)), Role: RoleDelta},
		{Text: fmt.Sprintf("Toggle readout: [%s] prompts: [%s]", key(OverlayReadout), key(OverlayPrompts)), Role: RoleDelta},
		{Text: fmt.Sprintf("Toggle dot product projection: [%s]", key(OverlayDotProjection)), Role: RoleDot},
		{Text: fmt.Sprintf("Toggle cross product projection: [%s]", key(OverlayCrossProjection)), Role: RoleCross},
	}
}
