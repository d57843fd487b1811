package components

import (
	"time"

	"github.com/automoto/leapfrog/platform"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Kind platform.Kind

	// Moving platforms only.
	Oscillator *platform.Oscillator
	Elapsed    time.Duration
	VelocityX  float64
	VelocityY  float64

	// Bouncy platforms only.
	Squash *gween.Sequence
	ScaleY float64
}

var Platform = donburi.NewComponentType[PlatformData]()
