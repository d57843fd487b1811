package factory

import (
	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSign places static world text.
func CreateSign(ecs *ecs.ECS, x, y float64, text string, small bool) *donburi.Entry {
	entry := archetypes.Sign.Spawn(ecs)

	components.Sign.SetValue(entry, components.SignData{
		Text:  text,
		X:     x,
		Y:     y,
		Small: small,
	})

	return entry
}
