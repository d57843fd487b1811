package factory

import (
	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/platform"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level singleton that carries the config, the
// frame clock, score and lifecycle state.
func CreateLevel(ecs *ecs.ECS, cfg *config.Config) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Config: cfg,
		Rules:  platform.NewRules(&cfg.Platform),
		State:  components.LevelInProgress,
	})
	return level
}
