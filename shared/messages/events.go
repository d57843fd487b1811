package messages

import (
	"image/color"
	"time"
)

// TokenCollected is published once per token, in collection order.
type TokenCollected struct {
	Label     string
	Collected int
	Total     int
	Percent   int     // rounded collected/total, 100 only when every token is taken
	Ratio     float64 // exact collected/total
	X, Y      float64
}

// RespawnReason tells hazard contact apart from falling out of the world.
type RespawnReason string

const (
	ReasonHazard      RespawnReason = "hazard"
	ReasonOutOfBounds RespawnReason = "out-of-bounds"
	ReasonRestart     RespawnReason = "restart"
)

// Respawned is published after the actor has been put back at spawn.
type Respawned struct {
	Reason RespawnReason
	Hazard string // label of the hazard touched, if any
	X, Y   float64
}

// LevelCompleted is published once, when the goal is reached.
type LevelCompleted struct {
	Collected int
	Total     int
	Elapsed   time.Duration
	Respawns  int
}

// PlatformBounced is published when a bouncy platform launches the actor.
type PlatformBounced struct {
	X, Y     float64
	Incoming float64 // vertical speed before the bounce
}

// CameraShake asks the camera to shake. Intensity is a fraction of the view size.
type CameraShake struct {
	Duration  time.Duration
	Intensity float64
}

// CameraTint asks for a full-screen colour overlay. Flashes start opaque and
// fade out; fades start clear and fade in.
type CameraTint struct {
	Duration time.Duration
	Color    color.RGBA
	Alpha    float64
	FadeIn   bool
}

// ParticleBurst is a cosmetic spray at a world position.
type ParticleBurst struct {
	X, Y  float64
	Count int
	Color color.RGBA
}
