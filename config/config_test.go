package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Player.MaxJumps)
	assert.Equal(t, 150*time.Millisecond, cfg.Player.CoyoteWindow)
	assert.Equal(t, 2500*time.Millisecond, cfg.Platform.MovingCycle)
	assert.Less(t, cfg.Player.JumpForce, 0.0)
	assert.Less(t, cfg.Platform.BounceImpulse, 0.0)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero max jumps", func(c *Config) { c.Player.MaxJumps = 0 }},
		{"negative coyote", func(c *Config) { c.Player.CoyoteWindow = -time.Millisecond }},
		{"zero dash duration", func(c *Config) { c.Player.DashDuration = 0 }},
		{"zero dash cooldown", func(c *Config) { c.Player.DashCooldown = 0 }},
		{"damping above one", func(c *Config) { c.Player.VariableJumpDamping = 1.5 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"zero moving cycle", func(c *Config) { c.Platform.MovingCycle = 0 }},
		{"empty level", func(c *Config) { c.Level.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := `
player:
  max_jumps: 3
  coyote_window: 90ms
  wall_jump_force:
    x: 500
platform:
  bounce_impulse: -900
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Player.MaxJumps)
	assert.Equal(t, 90*time.Millisecond, cfg.Player.CoyoteWindow)
	assert.Equal(t, 500.0, cfg.Player.WallJumpForce.X)
	assert.Equal(t, -650.0, cfg.Player.WallJumpForce.Y, "unset keys keep defaults")
	assert.Equal(t, -900.0, cfg.Platform.BounceImpulse)
	assert.Equal(t, Default().Player.JumpForce, cfg.Player.JumpForce)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platform:\n  moving_cycle: 0s\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "coyote_window: 150ms")

	cfg := &Config{}
	require.NoError(t, Overlay(cfg, data))
	assert.Equal(t, Default().Player, cfg.Player)
}

func TestParseAction(t *testing.T) {
	id, ok := ParseAction("dash")
	assert.True(t, ok)
	assert.Equal(t, ActionDash, id)

	_, ok = ParseAction("none")
	assert.False(t, ok)
	_, ok = ParseAction("attack")
	assert.False(t, ok)
}
