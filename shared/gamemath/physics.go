package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount. A remaining
// magnitude no larger than friction lands on exactly zero, so the sign
// never flips.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampFall caps downward speed at terminal. A terminal of zero or less
// means unbounded.
func ClampFall(speedY, terminal float64) float64 {
	if terminal <= 0 {
		return speedY
	}
	return math.Min(speedY, terminal)
}
