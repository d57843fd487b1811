package controller

import "time"

// Timers is the actor's bank of countdowns. Every field counts down by the
// frame delta and saturates at zero; a timer is active while it is positive.
type Timers struct {
	Coyote       time.Duration
	JumpBuffer   time.Duration
	WallJumpLock time.Duration
	DashCooldown time.Duration
	Dash         time.Duration // remaining dash duration, separate from the cooldown
}

// Reset zeroes every timer.
func (t *Timers) Reset() {
	*t = Timers{}
}

// Idle reports whether every timer has run out.
func (t Timers) Idle() bool {
	return t == Timers{}
}

// tick decrements d by dt. It reports true only on the call that takes d from
// positive to zero, so callers can react to expiry exactly once.
func tick(d *time.Duration, dt time.Duration) bool {
	if *d <= 0 {
		*d = 0
		return false
	}
	*d -= dt
	if *d <= 0 {
		*d = 0
		return true
	}
	return false
}
