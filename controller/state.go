package controller

// State is the actor's movement mode for the current frame.
type State int

const (
	Airborne State = iota
	Grounded
	AirborneGrace
	WallContact
	WallJumpLocked
	Dashing
)

var stateNames = [...]string{
	Airborne:       "airborne",
	Grounded:       "grounded",
	AirborneGrace:  "airborne-grace",
	WallContact:    "wall-contact",
	WallJumpLocked: "wall-jump-locked",
	Dashing:        "dashing",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// facts are the raw per-frame conditions a state is derived from.
type facts struct {
	grounded bool
	onWall   bool
	coyote   bool
	locked   bool
	dashing  bool
}

// resolveState is the single transition function. Timed modes entered by an
// action (dash, wall jump) outrank the contact-derived ones.
func resolveState(f facts) State {
	switch {
	case f.dashing:
		return Dashing
	case f.locked:
		return WallJumpLocked
	case f.grounded:
		return Grounded
	case f.onWall:
		return WallContact
	case f.coyote:
		return AirborneGrace
	}
	return Airborne
}

// AcceptsHorizontalInput reports whether held left/right may set velocity.
func (s State) AcceptsHorizontalInput() bool {
	return s != Dashing && s != WallJumpLocked
}
