package components

import (
	"github.com/automoto/leapfrog/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's held state for all actions.
// Edges are computed on demand by comparing frames.
type InputData struct {
	Pending  [config.ActionCount]bool // sampled by the driver, latched by UpdateInput
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

func (in *InputData) Held(a config.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a config.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

func (in *InputData) JustReleased(a config.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
