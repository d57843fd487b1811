package factory

import (
	"time"

	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnFloatingLabel creates text at (x, y) that rises by rise and is gone after duration.
// Effect objects are never added to the collision space.
func SpawnFloatingLabel(ecs *ecs.ECS, x, y float64, text string, rise float64, duration time.Duration) *donburi.Entry {
	label := archetypes.FloatingLabel.Spawn(ecs)
	components.Object.SetValue(label, components.ObjectData{Object: resolv.NewObject(x, y, 0, 0)})
	components.FloatingLabel.SetValue(label, components.FloatingLabelData{
		Text:   text,
		StartY: y,
		Rise:   gween.New(0, float32(rise), float32(duration.Seconds()), ease.OutQuad),
		Alpha:  1,
	})
	components.AutoDestroy.SetValue(label, components.AutoDestroyData{Remaining: duration})
	return label
}

// SpawnParticles creates a cosmetic burst.
func SpawnParticles(ecs *ecs.ECS, burst messages.ParticleBurst, lifespan time.Duration) *donburi.Entry {
	e := archetypes.Particles.Spawn(ecs)
	components.Object.SetValue(e, components.ObjectData{Object: resolv.NewObject(burst.X, burst.Y, 0, 0)})
	components.Particle.SetValue(e, components.ParticleData{
		Count:    burst.Count,
		Color:    burst.Color,
		Lifespan: lifespan,
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{Remaining: lifespan})
	return e
}
