package archetypes

import (
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only layer; the level draws in a single pass.
const Default ecs.LayerID = 0

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		tags.Moving,
		components.Object,
		components.Platform,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Token = newArchetype(
		tags.Token,
		components.Token,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Input,
		components.Pause,
	)
	Camera = newArchetype(
		components.Camera,
	)
	FloatingLabel = newArchetype(
		tags.Effect,
		components.FloatingLabel,
		components.Object,
		components.AutoDestroy,
	)
	Sign = newArchetype(
		components.Sign,
	)
	Particles = newArchetype(
		tags.Effect,
		components.Particle,
		components.Object,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
