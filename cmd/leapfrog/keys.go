package main

import (
	"github.com/automoto/leapfrog/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[config.ActionID][]ebiten.Key{
	config.ActionMoveLeft:  {ebiten.KeyLeft, ebiten.KeyA},
	config.ActionMoveRight: {ebiten.KeyRight, ebiten.KeyD},
	config.ActionMoveDown:  {ebiten.KeyDown, ebiten.KeyS},
	config.ActionJump:      {ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
	config.ActionDash:      {ebiten.KeyShift},
	config.ActionRestart:   {ebiten.KeyR},
	config.ActionPause:     {ebiten.KeyP},
}

// heldActions polls the keyboard once per frame.
func heldActions(buf []config.ActionID) []config.ActionID {
	buf = buf[:0]
	for action := config.ActionMoveLeft; action < config.ActionCount; action++ {
		for _, key := range keyBindings[action] {
			if ebiten.IsKeyPressed(key) {
				buf = append(buf, action)
				break
			}
		}
	}
	return buf
}
