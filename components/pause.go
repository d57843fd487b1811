package components

import "github.com/yohamta/donburi"

// PauseData lives on the level singleton.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
