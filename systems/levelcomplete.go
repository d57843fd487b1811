package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/leapfrog/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var completeOverlay = color.RGBA{R: 15, G: 26, B: 46, A: 200}

// GetLevel returns the level singleton, or nil before it exists.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	level := GetLevel(e)
	return level != nil && level.State == components.LevelComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetLevel(e) == nil || IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system that mutates the actor or the score.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	if !IsLevelComplete(e) {
		return
	}
	level := GetLevel(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, height/2-60, width, 120, completeOverlay, false)

	drawCenteredText(screen, "COURSE COMPLETE", height/2-16, color.White)
	summary := fmt.Sprintf("%d/%d tokens  %d respawns  %.1fs",
		level.Collected, level.Total, level.Respawns, level.Elapsed.Seconds())
	drawCenteredText(screen, summary, height/2+16, hudAccent)
}
