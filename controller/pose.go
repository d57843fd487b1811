package controller

import (
	"math"

	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/shared/gamemath"
)

// Pose is the render-only transform of the actor.
type Pose struct {
	ScaleX, ScaleY float64
	Angle          float64 // degrees
	FlipX          bool
}

var restPose = Pose{ScaleX: 1, ScaleY: 1}

// Stretch derives squash/stretch from vertical speed. Rising stretches tall,
// falling squashes wide, standing is neutral.
func Stretch(cfg *config.PlayerConfig, vy float64, grounded bool) (sx, sy float64) {
	if grounded {
		return 1, 1
	}
	s := gamemath.Clamp(math.Abs(vy)/cfg.StretchDivisor, 0, cfg.MaxStretch)
	if vy < 0 {
		return 1 - s, 1 + s
	}
	return 1 + s, 1 - s
}
