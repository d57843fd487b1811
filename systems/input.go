package systems

import (
	"github.com/automoto/leapfrog/components"
	cfg "github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SampleInput records the actions held for the next frame.
func SampleInput(e *ecs.ECS, held ...cfg.ActionID) {
	input := getInput(e)
	if input == nil {
		return
	}
	input.Pending = [cfg.ActionCount]bool{}
	for _, a := range held {
		if a > cfg.ActionNone && a < cfg.ActionCount {
			input.Pending[a] = true
		}
	}
}

// UpdateInput latches the sampled actions and hands the player its frame of
// controls. Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getInput(ecs)
	if input == nil {
		return
	}

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = input.Pending

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Input = controller.Input{
			Left:        input.Held(cfg.ActionMoveLeft),
			Right:       input.Held(cfg.ActionMoveRight),
			Down:        input.Held(cfg.ActionMoveDown),
			JumpPressed: input.JustPressed(cfg.ActionJump),
			JumpHeld:    input.Held(cfg.ActionJump),
			DashPressed: input.JustPressed(cfg.ActionDash),
		}
	})
}

// RestartRequested reports a fresh press of the restart action.
func RestartRequested(e *ecs.ECS) bool {
	input := getInput(e)
	return input != nil && input.JustPressed(cfg.ActionRestart)
}

func getInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
