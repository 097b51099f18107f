package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestRecorded(t *testing.T) {
	in := Hold(r2.Vec{X: 3, Y: 4}, "Q", "W")
	assert.Equal(t, r2.Vec{X: 3, Y: 4}, in.Cursor())
	assert.True(t, in.IsKeyDown("Q"))
	assert.False(t, in.IsKeyDown("E"))
	assert.False(t, in.IsKeyPressed("Q"))

	p := Press("T")
	assert.True(t, p.IsKeyPressed("T"))
	assert.False(t, p.IsKeyDown("T"))
}

func TestSweepStaysOnCircle(t *testing.T) {
	center := r2.Vec{X: 100, Y: 200}
	s := NewSweep(center, 50, 36, "R")

	for !s.Done() {
		d := r2.Norm(r2.Sub(s.Cursor(), center))
		assert.InDelta(t, 50.0, d, 1e-9, "frame %d", s.Frame())
		s.Advance()
	}
	assert.Equal(t, 36, s.Frame())
}

func TestSweepTurnsCounterClockwise(t *testing.T) {
	s := NewSweep(r2.Vec{}, 10, 4, "R")

	// Right, up (screen Y negative), left, down.
	want := []r2.Vec{{X: 10}, {Y: -10}, {X: -10}, {Y: 10}}
	for i, w := range want {
		got := s.Cursor()
		assert.InDelta(t, w.X, got.X, 1e-9, "frame %d x", i)
		assert.InDelta(t, w.Y, got.Y, 1e-9, "frame %d y", i)
		assert.InDelta(t, float64(i)*math.Pi/2, s.Angle(), 1e-9)
		s.Advance()
	}
}

func TestSweepHoldsOnlyItsKey(t *testing.T) {
	s := NewSweep(r2.Vec{}, 1, 1, "R")
	assert.True(t, s.IsKeyDown("R"))
	assert.False(t, s.IsKeyDown("W"))
	assert.False(t, s.IsKeyPressed("R"))
}
