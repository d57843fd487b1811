package systems

import (
	"time"

	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances cosmetic animation: platform squash, hazard spin,
// goal pulse, floating labels, particles and timed destruction.
func UpdateEffects(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	dt := level.Delta
	secs := float32(dt.Seconds())

	updateSquash(ecs, secs)
	updateHazardSpin(ecs, secs)
	updateGoalPulse(ecs, level)
	updateFloatingLabels(ecs, secs, level.Config.Feedback.LabelDuration)
	updateParticles(ecs, dt)
	updateAutoDestroy(ecs, dt)
}

func updateSquash(ecs *ecs.ECS, dt float32) {
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		if p.Squash == nil {
			return
		}
		scale, _, done := p.Squash.Update(dt)
		p.ScaleY = float64(scale)
		if done {
			p.Squash = nil
			p.ScaleY = 1
		}
	})
}

func updateHazardSpin(ecs *ecs.ECS, dt float32) {
	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Hazard.Get(e)
		if h.Spin == nil {
			return
		}
		angle, done := h.Spin.Update(dt)
		h.Angle = float64(angle)
		if done {
			h.Spin.Reset()
		}
	})
}

// updateGoalPulse is a function of level time so the pulse never drifts.
func updateGoalPulse(ecs *ecs.ECS, level *components.LevelData) {
	cfg := level.Config.Platform
	period := cfg.GoalPulsePeriod
	if period <= 0 {
		return
	}
	components.Goal.Each(ecs.World, func(e *donburi.Entry) {
		g := components.Goal.Get(e)
		if g.Pulse == nil {
			g.Pulse = gween.New(1, float32(cfg.GoalPulseScale), float32(period.Seconds()), ease.InOutSine)
		}
		phase := level.Clock % (2 * period)
		if phase > period {
			phase = 2*period - phase
		}
		scale, _ := g.Pulse.Set(float32(phase.Seconds()))
		g.Scale = float64(scale)
	})
}

func updateFloatingLabels(ecs *ecs.ECS, dt float32, duration time.Duration) {
	components.FloatingLabel.Each(ecs.World, func(e *donburi.Entry) {
		label := components.FloatingLabel.Get(e)
		rise, _ := label.Rise.Update(dt)

		obj := components.Object.Get(e)
		obj.Y = label.StartY - float64(rise)

		if duration > 0 {
			remaining := components.AutoDestroy.Get(e).Remaining
			label.Alpha = float64(remaining) / float64(duration)
		}
	})
}

func updateParticles(ecs *ecs.ECS, dt time.Duration) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		components.Particle.Get(e).Age += dt
	})
}

// updateAutoDestroy handles entities that should be destroyed after a duration
func updateAutoDestroy(ecs *ecs.ECS, dt time.Duration) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				removeFromSpace(obj.Object)
			}
		}
		e.Remove()
	}
}

// TriggerSquash flattens a platform and springs it back.
func TriggerSquash(entry *donburi.Entry, cfg *config.PlatformConfig) {
	if !entry.HasComponent(components.Platform) {
		return
	}
	half := float32(cfg.BounceSquashDuration.Seconds())
	scale := float32(cfg.BounceSquashScale)

	p := components.Platform.Get(entry)
	p.Squash = gween.NewSequence(
		gween.New(1, scale, half, ease.OutQuad),
		gween.New(scale, 1, half, ease.InQuad),
	)
	p.ScaleY = 1
}
