// Package course holds the built-in level layouts.
package course

import (
	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/level"
	"github.com/automoto/leapfrog/platform"
)

// Base platform sizes before per-platform scaling.
const (
	platformW = 120.0
	platformH = 24.0
	oneWayH   = 16.0
)

// builder collects a layout relative to the floor line.
type builder struct {
	floor  float64
	cfg    *config.Config
	layout level.Layout
}

func (b *builder) static(x, y, sx, sy float64) {
	b.layout.Platforms = append(b.layout.Platforms, level.PlatformSpec{
		Kind: platform.Static, X: x, Y: b.floor - y, W: platformW * sx, H: platformH * sy,
	})
}

func (b *builder) oneWay(x, y float64) {
	b.layout.Platforms = append(b.layout.Platforms, level.PlatformSpec{
		Kind: platform.OneWay, X: x, Y: b.floor - y, W: platformW, H: oneWayH,
	})
}

func (b *builder) bouncy(x, y float64) {
	b.layout.Platforms = append(b.layout.Platforms, level.PlatformSpec{
		Kind: platform.Bouncy, X: x, Y: b.floor - y, W: platformW, H: platformH,
	})
}

func (b *builder) moving(x, y, vx, vy float64) {
	b.layout.Platforms = append(b.layout.Platforms, level.PlatformSpec{
		Kind: platform.Moving, X: x, Y: b.floor - y, W: platformW, H: platformH,
		VelocityX: vx, VelocityY: vy, Cycle: b.cfg.Platform.MovingCycle,
	})
}

func (b *builder) token(x, y float64, label string) {
	b.layout.Tokens = append(b.layout.Tokens, level.TriggerSpec{X: x, Y: b.floor - y, Label: label})
}

func (b *builder) hazard(x, y float64, label string) {
	b.layout.Hazards = append(b.layout.Hazards, level.TriggerSpec{X: x, Y: b.floor - y, Label: label})
}

func (b *builder) sign(x, y float64, text string, small bool) {
	b.layout.Signs = append(b.layout.Signs, level.SignSpec{X: x, Y: b.floor - y, Text: text, Small: small})
}

// Default is the six-act résumé course. Moving platforms use the configured
// cycle; the floor sits 50px above the bottom of the world.
func Default(cfg *config.Config) level.Layout {
	b := &builder{
		floor: cfg.Level.Height - 50,
		cfg:   cfg,
		layout: level.Layout{
			Name:  "resume",
			Spawn: &level.Point{X: 150, Y: 1200},
		},
	}

	// Act 1: wall-jump training
	b.static(200, 0, 3, 1)
	b.static(500, 150, 0.5, 4)
	b.static(700, 300, 0.5, 4)
	b.oneWay(600, 450)
	b.token(600, 490, "BODYGUARD REFLEXES")

	// Act 2: moving platforms
	b.moving(1000, 200, 200, 0)
	b.moving(1300, 350, -150, 0)
	b.token(1300, 400, "CRISIS MANAGEMENT")
	b.hazard(1150, 80, "KAREN")

	// Act 3: bouncy platforms and canopy
	b.bouncy(1700, 100)
	b.bouncy(1900, 250)
	b.token(1900, 450, "EVENT MANAGEMENT")
	b.oneWay(2100, 300)
	b.oneWay(2300, 450)

	// Act 4: stepped layers
	b.static(2600, 100, 2, 0.5)
	b.static(2700, 200, 1.8, 0.5)
	b.static(2800, 300, 1.6, 0.5)
	b.token(2800, 350, "VIRAL CAMPAIGNS")
	b.token(2900, 250, "150% ENGAGEMENT")
	b.hazard(2750, 80, "LACTOSE")

	// Act 5: moving platform puzzle
	b.moving(3200, 200, 0, -200)
	b.moving(3500, 400, 200, 0)
	b.moving(3800, 300, -200, 0)
	b.token(3500, 600, "AI AUTOMATION")
	b.token(3800, 500, "N8N WORKFLOWS")

	// Act 6: wall-jump shaft
	b.static(4200, 100, 0.5, 8)
	b.static(4400, 300, 0.5, 8)
	b.static(4200, 500, 0.5, 8)
	b.hazard(4300, 200, "NOT GOOD ENOUGH")
	b.hazard(4300, 400, "FAKE IT")
	b.oneWay(4300, 650)
	b.token(4300, 700, "SELF-BELIEF")

	// Final platform and goal
	b.static(4700, 400, 3, 1)
	b.layout.Goal = &level.Point{X: 4750, Y: b.floor - 500}

	b.sign(200, 250, "ACT 1: BODYGUARD\n\"Can protect VIP, can lah!\"", false)
	b.sign(1000, 500, "ACT 2: CUSTOMER SERVICE\n\"Smile through the pain\"", false)
	b.sign(1700, 600, "ACT 3: JUNGLEWALLA\n\"From city to jungle\"", false)
	b.sign(2600, 500, "ACT 4: CHEESECAKE ERA\n\"Viral or bust!\"", false)
	b.sign(3200, 700, "ACT 5: AI AUTOMATION\n\"Robots are friends\"", false)
	b.sign(4200, 800, "BOSS: IMPOSTER SYNDROME\n\"Am I qualified? Yes lah!\"", false)
	b.sign(600, 550, "\"Wall jump training\nlike Jackie Chan\"", true)
	b.sign(1150, 150, "\"Angry customer\navoid at all costs\"", true)
	b.sign(2750, 150, "\"Too much cheesecake\n= danger\"", true)
	b.sign(4300, 250, "\"Self-doubt is\nthe real enemy\"", true)

	return b.layout
}
