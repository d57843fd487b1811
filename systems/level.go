package systems

import (
	cfg "github.com/automoto/leapfrog/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelClock advances level time. Elapsed stops once the level is complete.
func UpdateLevelClock(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil || IsPaused(e) {
		return
	}
	level.Clock += level.Delta
	if !IsLevelComplete(e) {
		level.Elapsed += level.Delta
	}
}

// DrawLevel clears the frame and outlines the world bounds.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Night)

	level := GetLevel(e)
	v, ok := newView(e, screen)
	if level == nil || !ok {
		return
	}
	w, h := level.Config.Level.Width, level.Config.Level.Height
	edge := cfg.Navy
	v.rect(screen, 0, 0, w, 2, edge)
	v.rect(screen, 0, 0, 2, h, edge)
	v.rect(screen, w-2, 0, 2, h, edge)
}
