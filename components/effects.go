package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset as a fraction of the view size
	Duration  time.Duration
	Elapsed   time.Duration
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// TintData is a full-screen colour overlay on the camera.
type TintData struct {
	Color    color.RGBA
	Alpha    float64 // peak alpha
	Duration time.Duration
	Elapsed  time.Duration
	FadeIn   bool
}

// Current returns the overlay alpha for this frame.
func (t *TintData) Current() float64 {
	if t.Duration <= 0 {
		return 0
	}
	k := float64(t.Elapsed) / float64(t.Duration)
	if k > 1 {
		k = 1
	}
	if t.FadeIn {
		return t.Alpha * k
	}
	return t.Alpha * (1 - k)
}

var Tint = donburi.NewComponentType[TintData]()

// FloatingLabelData is text that drifts up and fades out.
type FloatingLabelData struct {
	Text   string
	StartY float64
	Rise   *gween.Tween
	Alpha  float64
}

var FloatingLabel = donburi.NewComponentType[FloatingLabelData]()

// ParticleData is a burst drawn as Count small squares spreading from the origin.
type ParticleData struct {
	Count    int
	Color    color.RGBA
	Age      time.Duration
	Lifespan time.Duration
}

var Particle = donburi.NewComponentType[ParticleData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	Remaining time.Duration
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
