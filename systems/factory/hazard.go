package factory

import (
	"time"

	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates a hazard that spins a full turn every spin period.
func CreateHazard(ecs *ecs.ECS, r gamemath.Rect, label string, spin time.Duration) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	data := components.HazardData{Label: label}
	if spin > 0 {
		data.Spin = gween.New(0, 360, float32(spin.Seconds()), ease.Linear)
	}
	components.Hazard.SetValue(hazard, data)
	attachObject(ecs, hazard, r, tags.ResolvHazard)
	return hazard
}
