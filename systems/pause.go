package systems

import (
	"image/color"

	"github.com/automoto/leapfrog/components"
	cfg "github.com/automoto/leapfrog/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOverlay = color.RGBA{R: 15, G: 26, B: 46, A: 160}

// UpdatePause toggles pause on a fresh press of the pause action.
// Must run AFTER UpdateInput and BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := getPause(ecs)
	input := getInput(ecs)
	if pause == nil || input == nil {
		return
	}
	if input.JustPressed(cfg.ActionPause) && !IsLevelComplete(ecs) {
		pause.IsPaused = !pause.IsPaused
	}
}

// IsPaused reports whether gameplay is paused.
func IsPaused(ecs *ecs.ECS) bool {
	pause := getPause(ecs)
	return pause != nil && pause.IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, pauseOverlay, false)

	drawCenteredText(screen, "PAUSED", height/2, color.White)
	drawCenteredText(screen, "[P] resume", height/2+24, hudAccent)
}

func getPause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		return nil
	}
	return components.Pause.Get(entry)
}
