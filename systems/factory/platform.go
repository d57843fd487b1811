package factory

import (
	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/platform"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a fixed platform of a non-moving kind.
func CreatePlatform(ecs *ecs.ECS, kind platform.Kind, r gamemath.Rect) *donburi.Entry {
	entry := archetypes.Platform.Spawn(ecs)
	components.Platform.SetValue(entry, components.PlatformData{Kind: kind, ScaleY: 1})

	switch kind {
	case platform.OneWay:
		attachObject(ecs, entry, r, tags.ResolvOneWay)
	case platform.Bouncy:
		attachObject(ecs, entry, r, tags.ResolvSolid, tags.ResolvBouncy)
	default:
		attachObject(ecs, entry, r, tags.ResolvSolid)
	}
	return entry
}

// CreateMovingPlatform creates a kinematic platform driven by osc.
func CreateMovingPlatform(ecs *ecs.ECS, r gamemath.Rect, osc *platform.Oscillator) *donburi.Entry {
	entry := archetypes.MovingPlatform.Spawn(ecs)
	vx, vy := osc.VelocityAt(0)
	components.Platform.SetValue(entry, components.PlatformData{
		Kind:       platform.Moving,
		Oscillator: osc,
		VelocityX:  vx,
		VelocityY:  vy,
		ScaleY:     1,
	})
	attachObject(ecs, entry, r, tags.ResolvSolid, tags.ResolvMoving)
	return entry
}
