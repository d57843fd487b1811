package factory

import (
	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateToken(ecs *ecs.ECS, r gamemath.Rect, label string) *donburi.Entry {
	token := archetypes.Token.Spawn(ecs)
	components.Token.SetValue(token, components.TokenData{Label: label})
	attachObject(ecs, token, r, tags.ResolvToken)
	return token
}
