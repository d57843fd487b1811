package controller

// Input is one frame of sampled controls. Pressed fields are edges.
type Input struct {
	Left        bool
	Right       bool
	Down        bool
	JumpPressed bool
	JumpHeld    bool
	DashPressed bool
}

// Contacts are the collision flags the substrate reported for the last integration.
type Contacts struct {
	Down  bool
	Up    bool
	Left  bool
	Right bool

	// OneWay is set when the surface under the actor is a jump-through platform.
	OneWay bool
}

// Body is the actor's handle into the physics substrate.
type Body interface {
	// Position returns the centre of the body.
	Position() (x, y float64)
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	SetGravity(enabled bool)
	Contacts() Contacts
	// DropThrough makes the substrate ignore the one-way platform currently underfoot.
	DropThrough()
}

// Context is everything the controller may touch during one frame.
type Context interface {
	Input() Input
	Body() Body
	Emit(Event)
}

// EventKind names a gameplay moment the presentation layer may react to.
type EventKind int

const (
	EventGroundJump EventKind = iota
	EventAirJump
	EventWallJump
	EventDashStart
	EventDashEnd
	EventWallSlide
	EventDropThrough
)

var eventNames = [...]string{
	EventGroundJump:  "ground-jump",
	EventAirJump:     "air-jump",
	EventWallJump:    "wall-jump",
	EventDashStart:   "dash-start",
	EventDashEnd:     "dash-end",
	EventWallSlide:   "wall-slide",
	EventDropThrough: "drop-through",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is emitted by the controller. X and Y are the actor centre, Direction
// the horizontal sign relevant to the event (jump-off side, dash heading).
type Event struct {
	Kind      EventKind
	X, Y      float64
	Direction int
}
