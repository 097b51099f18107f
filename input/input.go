// Package input provides window-free sources of per-frame input.
package input

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dotcross/geom"
)

// Recorded replays a fixed cursor position and key state.
type Recorded struct {
	Pos     r2.Vec
	Down    map[string]bool
	Pressed map[string]bool
}

// Hold returns a Recorded with the given keys held at pos.
func Hold(pos r2.Vec, keys ...string) *Recorded {
	r := &Recorded{Pos: pos, Down: make(map[string]bool)}
	for _, k := range keys {
		r.Down[k] = true
	}
	return r
}

// Press returns a Recorded with the given keys pressed this frame.
func Press(keys ...string) *Recorded {
	r := &Recorded{Pressed: make(map[string]bool)}
	for _, k := range keys {
		r.Pressed[k] = true
	}
	return r
}

// Cursor returns the recorded cursor position.
func (r *Recorded) Cursor() r2.Vec {
	return r.Pos
}

// IsKeyDown reports whether key is held.
func (r *Recorded) IsKeyDown(key string) bool {
	return r.Down[key]
}

// IsKeyPressed reports whether key went down this frame.
func (r *Recorded) IsKeyPressed(key string) bool {
	return r.Pressed[key]
}

// Sweep drives the cursor once around a circle while holding one key.
// Held on an arrow's end key with Center at its start, the arrow turns a full
// counter-clockwise revolution over Frames frames.
type Sweep struct {
	Center  r2.Vec
	Radius  float64
	Frames  int
	HoldKey string

	frame int
}

// NewSweep creates a sweep starting at angle 0 (pointing right).
func NewSweep(center r2.Vec, radius float64, frames int, holdKey string) *Sweep {
	return &Sweep{Center: center, Radius: radius, Frames: frames, HoldKey: holdKey}
}

// Angle returns the canonical angle of the current cursor around Center.
func (s *Sweep) Angle() float64 {
	return geom.NormalizeAngle(geom.Tau * float64(s.frame) / float64(s.Frames))
}

// Cursor returns the point on the circle for the current frame.
func (s *Sweep) Cursor() r2.Vec {
	a := s.Angle()
	// Counter-clockwise on screen means Y decreases.
	offset := geom.FlipY(r2.Vec{X: math.Cos(a), Y: math.Sin(a)})
	return geom.ProjectAlong(s.Center, offset, s.Radius)
}

// IsKeyDown reports true only for HoldKey.
func (s *Sweep) IsKeyDown(key string) bool {
	return key == s.HoldKey
}

// IsKeyPressed is always false; a sweep never toggles overlays.
func (s *Sweep) IsKeyPressed(string) bool {
	return false
}

// Advance moves to the next frame.
func (s *Sweep) Advance() {
	s.frame++
}

// Frame returns the current frame index.
func (s *Sweep) Frame() int {
	return s.frame
}

// Done reports whether a full revolution has been produced.
func (s *Sweep) Done() bool {
	return s.frame >= s.Frames
}
