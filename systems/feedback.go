package systems

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/controller"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/automoto/leapfrog/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// feedbackRelay turns gameplay events into camera and particle effects.
// Gameplay code never calls these effects directly.
type feedbackRelay struct {
	ecs       *ecs.ECS
	log       *logrus.Entry
	lastTrail time.Duration
	trailSeen bool
}

// RegisterFeedback subscribes the presentation relay to the gameplay events.
func RegisterFeedback(e *ecs.ECS, log *logrus.Entry) {
	r := &feedbackRelay{ecs: e, log: log}
	ActorEvents.Subscribe(e.World, r.onActor)
	BounceEvents.Subscribe(e.World, r.onBounce)
	TokenCollectedEvents.Subscribe(e.World, r.onToken)
	RespawnEvents.Subscribe(e.World, r.onRespawn)
}

func (r *feedbackRelay) config() *config.FeedbackConfig {
	level := GetLevel(r.ecs)
	if level == nil {
		return nil
	}
	return &level.Config.Feedback
}

func (r *feedbackRelay) onActor(w donburi.World, ev controller.Event) {
	cfg := r.config()
	if cfg == nil {
		return
	}
	r.log.WithFields(logrus.Fields{"event": ev.Kind.String(), "x": ev.X, "y": ev.Y}).Trace("actor")

	switch ev.Kind {
	case controller.EventGroundJump:
		r.shake(cfg.GroundJump)
		r.burst(ev.X, ev.Y+16, cfg.GroundJumpParticles, config.Teal, cfg.ParticleLifespan)
	case controller.EventAirJump:
		r.shake(cfg.AirJump)
		r.burst(ev.X, ev.Y, cfg.AirJumpParticles, config.Red, cfg.ParticleLifespan+100*time.Millisecond)
	case controller.EventWallJump:
		r.shake(cfg.WallJump)
		r.burst(ev.X, ev.Y, cfg.AirJumpParticles, config.Red, cfg.ParticleLifespan+100*time.Millisecond)
	case controller.EventDashStart:
		r.shake(cfg.Dash)
		r.burst(ev.X, ev.Y, cfg.DashParticles, config.Sandy, cfg.ParticleLifespan)
	case controller.EventWallSlide:
		r.trail(ev, cfg)
	}
}

// trail emits wall-slide particles at most once per TrailInterval.
func (r *feedbackRelay) trail(ev controller.Event, cfg *config.FeedbackConfig) {
	level := GetLevel(r.ecs)
	if r.trailSeen && level.Clock-r.lastTrail < cfg.TrailInterval {
		return
	}
	r.trailSeen = true
	r.lastTrail = level.Clock
	x := ev.X + float64(ev.Direction)*16
	r.burst(x, ev.Y, 1, config.Sandy, cfg.ParticleLifespan-100*time.Millisecond)
}

func (r *feedbackRelay) onBounce(w donburi.World, ev messages.PlatformBounced) {
	if cfg := r.config(); cfg != nil {
		r.shake(cfg.Bounce)
	}
}

func (r *feedbackRelay) onToken(w donburi.World, ev messages.TokenCollected) {
	cfg := r.config()
	if cfg == nil {
		return
	}
	TriggerTint(r.ecs, messages.CameraTint{
		Duration: cfg.CollectFlash.Duration,
		Color:    cfg.CollectFlash.Color,
		Alpha:    cfg.CollectFlash.Alpha,
	})
	label := ev.Label
	if label == "" {
		label = "SKILL UNLOCKED"
	}
	factory.SpawnFloatingLabel(r.ecs, ev.X, ev.Y, fmt.Sprintf("+ %s", label), cfg.LabelRise, cfg.LabelDuration)
}

func (r *feedbackRelay) onRespawn(w donburi.World, ev messages.Respawned) {
	cfg := r.config()
	if cfg == nil {
		return
	}
	r.shake(cfg.Failure)
	TriggerTint(r.ecs, messages.CameraTint{
		Duration: cfg.FailureFade.Duration,
		Color:    cfg.FailureFade.Color,
		Alpha:    cfg.FailureFade.Alpha,
		FadeIn:   true,
	})
}

func (r *feedbackRelay) shake(s config.ShakeConfig) {
	TriggerScreenShake(r.ecs, messages.CameraShake{Duration: s.Duration, Intensity: s.Intensity})
}

func (r *feedbackRelay) burst(x, y float64, count int, c color.RGBA, lifespan time.Duration) {
	if count <= 0 || lifespan <= 0 {
		return
	}
	factory.SpawnParticles(r.ecs, messages.ParticleBurst{X: x, Y: y, Count: count, Color: c}, lifespan)
}
