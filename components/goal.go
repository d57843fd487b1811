package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type GoalData struct {
	Reached bool
	Pulse   *gween.Tween
	Scale   float64
}

var Goal = donburi.NewComponentType[GoalData]()
