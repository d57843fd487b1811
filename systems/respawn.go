package systems

import (
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RespawnPlayer puts every player back at its spawn point with refilled
// jumps, zeroed timers and no velocity. Collected tokens stay collected.
func RespawnPlayer(ecs *ecs.ECS, reason messages.RespawnReason, hazard string) {
	level := GetLevel(ecs)
	if level == nil || level.State == components.LevelComplete {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ResetPlayerAtSpawn(e)

		player := components.Player.Get(e)
		level.Respawns++
		RespawnEvents.Publish(ecs.World, messages.Respawned{
			Reason: reason,
			Hazard: hazard,
			X:      player.SpawnX,
			Y:      player.SpawnY,
		})
	})
}

// ResetPlayerAtSpawn moves one player to its spawn point at rest.
func ResetPlayerAtSpawn(e *donburi.Entry) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	obj.X = player.SpawnX - obj.W/2
	obj.Y = player.SpawnY - obj.H/2
	obj.Update()

	physics := components.Physics.Get(e)
	physics.Stop()

	player.Controller.Reset(newPlayerBody(e))
}

// UpdateRestart respawns the player on a fresh press of the restart action.
func UpdateRestart(ecs *ecs.ECS) {
	if RestartRequested(ecs) {
		RespawnPlayer(ecs, messages.ReasonRestart, "")
	}
}
