package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HazardData struct {
	Label string
	Spin  *gween.Tween
	Angle float64 // degrees, cosmetic
}

var Hazard = donburi.NewComponentType[HazardData]()
