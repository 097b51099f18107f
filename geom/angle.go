// Package geom provides the angle and 2D vector math behind the visualizer.
//
// Angles are radians. A canonical angle lies in [0, Tau) and grows counter-clockwise.
// All functions expect finite input; NaN and infinities give unspecified results.
package geom

import "math"

// Tau is a full turn. Every wraparound in this package uses it.
const Tau = 2 * math.Pi

// NormalizeAngle maps angle into [0, Tau).
func NormalizeAngle(angle float64) float64 {
	// math.Mod truncates, so negative input leaves a negative remainder.
	angle = math.Mod(angle, Tau)
	if angle < 0 {
		angle += Tau
	}
	// A tiny negative remainder rounds up to Tau. Also folds -0 into 0.
	if angle >= Tau || angle == 0 {
		return 0
	}
	return angle
}

// AngleBetween returns the smallest signed rotation from angle1 to angle2,
// in (-Pi, Pi]. Positive is counter-clockwise. Inputs need not be canonical.
//
// An exact half-turn is reported as +Pi whichever way round the arguments are,
// so AngleBetween(a, b) == -AngleBetween(b, a) everywhere except there.
func AngleBetween(angle1, angle2 float64) float64 {
	angle1 = NormalizeAngle(angle1)
	angle2 = NormalizeAngle(angle2)

	var delta float64
	switch {
	case angle2 < angle1:
		positive := Tau - angle1 + angle2
		negative := angle2 - angle1
		if positive <= -negative {
			delta = positive
		} else {
			delta = negative
		}
	case angle2 > angle1:
		positive := angle2 - angle1
		negative := Tau - angle2 + angle1
		if positive <= negative {
			delta = positive
		} else {
			delta = -negative
		}
	default:
		return 0
	}

	// Rounding near a half-turn can step just outside the range.
	if delta <= -math.Pi || delta > math.Pi {
		return math.Pi
	}
	return delta
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
