package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

// circularDist is the wraparound-aware distance between two canonical angles.
func circularDist(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, Tau-d)
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-0.5, Tau - 0.5},
		{7.0, 7.0 - Tau},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{Tau, 0},
		{-Tau, 0},
		{3 * Tau, 0},
		{-3*Tau + 1, 1},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, NormalizeAngle(tc.in), eps, "NormalizeAngle(%v)", tc.in)
	}
}

func TestNormalizeAngleTinyNegative(t *testing.T) {
	got := NormalizeAngle(-1e-300)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, Tau)
}

func TestNormalizeAngleRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x := (rng.Float64() - 0.5) * 2000
		v := NormalizeAngle(x)
		if v < 0 || v >= Tau {
			t.Fatalf("NormalizeAngle(%v) = %v, outside [0, Tau)", x, v)
		}
		if math.Abs(math.Sin(v)-math.Sin(x)) > 1e-9 || math.Abs(math.Cos(v)-math.Cos(x)) > 1e-9 {
			t.Fatalf("NormalizeAngle(%v) = %v not congruent to input", x, v)
		}
	}
}

func TestNormalizeAnglePeriodic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5000; i++ {
		x := (rng.Float64() - 0.5) * 200
		k := float64(rng.Intn(21) - 10)
		a := NormalizeAngle(x)
		b := NormalizeAngle(x + k*Tau)
		if circularDist(a, b) > 1e-9 {
			t.Fatalf("NormalizeAngle(%v)=%v but NormalizeAngle(%v + %v*Tau)=%v", x, a, x, k, b)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"quarter ccw", 0, math.Pi / 2, math.Pi / 2},
		{"quarter cw", math.Pi / 2, 0, -math.Pi / 2},
		{"half turn forward", 0, math.Pi, math.Pi},
		{"half turn backward", math.Pi, 0, math.Pi},
		{"short way across zero", 0.1, Tau - 0.1, -0.2},
		{"short way across zero reversed", Tau - 0.1, 0.1, 0.2},
		{"same", 1.3, 1.3, 0},
		{"same after normalize", 1.3, 1.3 + Tau, 0},
		{"raw negative inputs", -math.Pi / 2, math.Pi / 4, 3 * math.Pi / 4},
		{"raw inputs", -0.25, 0.25, 0.5},
		{"wrap forward", 5.5, 0.5, 0.5 + Tau - 5.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, AngleBetween(tc.from, tc.to), eps)
		})
	}
}

func TestAngleBetweenExactHalfTurnIsPositive(t *testing.T) {
	assert.Equal(t, math.Pi, AngleBetween(0, math.Pi))
	assert.Equal(t, math.Pi, AngleBetween(math.Pi, 0))
}

func TestAngleBetweenProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20000; i++ {
		a := (rng.Float64() - 0.5) * 40
		b := (rng.Float64() - 0.5) * 40

		d := AngleBetween(a, b)
		if d <= -math.Pi || d > math.Pi {
			t.Fatalf("AngleBetween(%v, %v) = %v outside (-Pi, Pi]", a, b, d)
		}

		// Rotating a by d lands on b.
		if circularDist(NormalizeAngle(a+d), NormalizeAngle(b)) > 1e-9 {
			t.Fatalf("AngleBetween(%v, %v) = %v does not rotate a onto b", a, b, d)
		}

		if math.Pi-math.Abs(d) > 1e-9 {
			if r := AngleBetween(b, a); math.Abs(d+r) > 1e-9 {
				t.Fatalf("AngleBetween not antisymmetric: %v vs %v", d, r)
			}
		}

		if AngleBetween(a, a) != 0 {
			t.Fatalf("AngleBetween(%v, %v) != 0", a, a)
		}
	}
}

func TestDegrees(t *testing.T) {
	assert.InDelta(t, 180.0, Degrees(math.Pi), eps)
	assert.InDelta(t, -90.0, Degrees(-math.Pi/2), eps)
}

func TestNormalizeAngleNegativeZero(t *testing.T) {
	assert.False(t, math.Signbit(NormalizeAngle(math.Copysign(0, -1))))
}
