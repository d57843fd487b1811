package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// Clamp constrains value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// SmoothingFactor converts a per-frame lerp factor tuned at 60 Hz into the
// factor for a step of seconds, so follow speed does not depend on frame rate.
func SmoothingFactor(perFrame, seconds float64) float64 {
	if perFrame >= 1 {
		return 1
	}
	if perFrame <= 0 {
		return 0
	}
	return 1 - math.Pow(1-perFrame, seconds*60)
}
