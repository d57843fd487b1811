package factory

import (
	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/controller"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the actor centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, cfg *config.PlayerConfig, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	attachObject(ecs, player, gamemath.RectFromCenter(x, y, cfg.Width, cfg.Height), tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{
		Controller: controller.New(cfg),
		SpawnX:     x,
		SpawnY:     y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		AllowGravity: true,
	})
	return player
}
