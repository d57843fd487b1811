package level

import (
	"time"

	"github.com/automoto/leapfrog/platform"
)

// Default trigger sizes, in pixels.
const (
	TokenSize  = 24
	HazardSize = 40
	GoalSize   = 80
)

// Point is a world position. Layout positions are centres.
type Point struct {
	X, Y float64
}

// PlatformSpec describes one platform. Moving platforms sweep their velocity
// from zero to (VelocityX, VelocityY) and back, one leg per Cycle.
type PlatformSpec struct {
	Kind platform.Kind
	X, Y float64
	W, H float64

	VelocityX float64
	VelocityY float64
	Cycle     time.Duration
}

// TriggerSpec describes a token or hazard. A zero size uses the default.
type TriggerSpec struct {
	X, Y  float64
	Label string
	Size  float64
}

// SignSpec is decorative world text anchored at its top-left corner.
type SignSpec struct {
	X, Y  float64
	Text  string
	Small bool
}

// Layout is a whole level as caller-supplied data.
type Layout struct {
	Name      string
	Spawn     *Point
	Platforms []PlatformSpec
	Tokens    []TriggerSpec
	Hazards   []TriggerSpec
	Signs     []SignSpec
	Goal      *Point
}
