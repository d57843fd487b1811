package controller

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/leapfrog/config"
)

type fakeBody struct {
	x, y     float64
	vx, vy   float64
	gravity  bool
	contacts Contacts
	drops    int
}

func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(vx, vy float64)   { b.vx, b.vy = vx, vy }
func (b *fakeBody) SetGravity(enabled bool)      { b.gravity = enabled }
func (b *fakeBody) Contacts() Contacts           { return b.contacts }
func (b *fakeBody) DropThrough()                 { b.drops++ }

type fakeContext struct {
	in     Input
	body   *fakeBody
	events []Event
}

func (f *fakeContext) Input() Input { return f.in }
func (f *fakeContext) Body() Body   { return f.body }
func (f *fakeContext) Emit(e Event) { f.events = append(f.events, e) }

func (f *fakeContext) count(kind EventKind) int {
	n := 0
	for _, e := range f.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func createTestController(mutate ...func(*config.PlayerConfig)) (*Controller, *fakeContext) {
	cfg := config.Default().Player
	for _, m := range mutate {
		m(&cfg)
	}
	ctx := &fakeContext{body: &fakeBody{gravity: true}}
	return New(&cfg), ctx
}

// frame runs one Update with the given contacts and input.
func frame(c *Controller, ctx *fakeContext, dt time.Duration, contacts Contacts, in Input) {
	ctx.body.contacts = contacts
	ctx.in = in
	c.Update(dt, ctx)
}

var (
	ground   = Contacts{Down: true}
	air      = Contacts{}
	leftWall = Contacts{Left: true}
	press    = Input{JumpPressed: true, JumpHeld: true}
	hold     = Input{JumpHeld: true}
)

func TestTimerTick(t *testing.T) {
	d := 30 * time.Millisecond

	assert.False(t, tick(&d, 10*time.Millisecond))
	assert.Equal(t, 20*time.Millisecond, d)
	assert.True(t, tick(&d, 25*time.Millisecond), "expiry reported on the crossing call")
	assert.Equal(t, time.Duration(0), d, "saturates at zero")
	assert.False(t, tick(&d, 10*time.Millisecond), "expiry reported once")
}

func TestTimersReset(t *testing.T) {
	timers := Timers{Coyote: 1, JumpBuffer: 2, WallJumpLock: 3, DashCooldown: 4, Dash: 5}
	assert.False(t, timers.Idle())
	timers.Reset()
	assert.True(t, timers.Idle())
}

func TestResolveStatePrecedence(t *testing.T) {
	tests := []struct {
		name string
		f    facts
		want State
	}{
		{"nothing", facts{}, Airborne},
		{"grace", facts{coyote: true}, AirborneGrace},
		{"wall beats grace", facts{onWall: true, coyote: true}, WallContact},
		{"ground", facts{grounded: true, coyote: true}, Grounded},
		{"lock beats ground", facts{grounded: true, locked: true}, WallJumpLocked},
		{"dash beats all", facts{grounded: true, onWall: true, locked: true, dashing: true}, Dashing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveState(tt.f))
		})
	}
	assert.Equal(t, "wall-jump-locked", WallJumpLocked.String())
}

func TestJumpsRemainingStaysInRange(t *testing.T) {
	c, ctx := createTestController()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		contacts := Contacts{
			Down:  rng.Intn(3) == 0,
			Left:  rng.Intn(6) == 0,
			Right: rng.Intn(6) == 0,
		}
		in := Input{
			Left:        rng.Intn(2) == 0,
			Right:       rng.Intn(2) == 0,
			JumpPressed: rng.Intn(3) == 0,
			JumpHeld:    rng.Intn(2) == 0,
			DashPressed: rng.Intn(5) == 0,
		}
		dt := time.Duration(rng.Intn(40)) * time.Millisecond
		frame(c, ctx, dt, contacts, in)

		require.GreaterOrEqual(t, c.JumpsRemaining, 0)
		require.LessOrEqual(t, c.JumpsRemaining, c.cfg.MaxJumps)
	}
}

func TestJumpBufferOnLanding(t *testing.T) {
	tests := []struct {
		name      string
		airFrames int // 10ms frames between the press and the landing frame
		wantJump  bool
	}{
		{"pressed 100ms before landing", 9, true},
		{"pressed 140ms before landing", 13, true},
		{"pressed 200ms before landing", 19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ctx := createTestController()
			c.JumpsRemaining = 0
			dt := 10 * time.Millisecond

			frame(c, ctx, dt, air, press)
			assert.Zero(t, ctx.count(EventGroundJump)+ctx.count(EventAirJump), "no charge left in the air")
			for i := 0; i < tt.airFrames; i++ {
				frame(c, ctx, dt, air, hold)
			}

			frame(c, ctx, dt, ground, hold)
			for i := 0; i < 5; i++ {
				frame(c, ctx, dt, air, hold)
			}

			if tt.wantJump {
				assert.Equal(t, 1, ctx.count(EventGroundJump))
				assert.Equal(t, c.cfg.MaxJumps-1, c.JumpsRemaining)
			} else {
				assert.Zero(t, ctx.count(EventGroundJump))
				assert.Equal(t, c.cfg.MaxJumps, c.JumpsRemaining)
			}
		})
	}
}

func TestCoyoteWindow(t *testing.T) {
	dt := 10 * time.Millisecond

	t.Run("inside window is a ground jump", func(t *testing.T) {
		c, ctx := createTestController()
		frame(c, ctx, dt, ground, Input{})
		for i := 0; i < 9; i++ {
			frame(c, ctx, dt, air, Input{})
		}
		assert.Equal(t, AirborneGrace, c.State)

		frame(c, ctx, dt, air, press)

		assert.Equal(t, 1, ctx.count(EventGroundJump))
		assert.Zero(t, ctx.count(EventAirJump))
		assert.Equal(t, c.cfg.MaxJumps-1, c.JumpsRemaining)
		assert.Equal(t, c.cfg.JumpForce, ctx.body.vy)
		assert.Zero(t, c.Timers.Coyote)
	})

	t.Run("after window is an air jump", func(t *testing.T) {
		c, ctx := createTestController()
		frame(c, ctx, dt, ground, Input{})
		for i := 0; i < 16; i++ {
			frame(c, ctx, dt, air, Input{})
		}
		assert.Equal(t, Airborne, c.State)
		assert.Equal(t, c.cfg.MaxJumps-1, c.JumpsRemaining, "ground charge forfeited")

		frame(c, ctx, dt, air, press)

		assert.Zero(t, ctx.count(EventGroundJump))
		assert.Equal(t, 1, ctx.count(EventAirJump))
		assert.Equal(t, c.cfg.MaxJumps-2, c.JumpsRemaining)
	})
}

func TestWalkOffLedgeGraceExpired(t *testing.T) {
	c, ctx := createTestController(func(p *config.PlayerConfig) { p.MaxJumps = 1 })
	dt := time.Millisecond

	frame(c, ctx, dt, ground, Input{})
	ctx.body.vy = 0
	elapsed := time.Duration(0)
	for elapsed < c.cfg.CoyoteWindow+time.Millisecond {
		frame(c, ctx, dt, air, Input{})
		elapsed += dt
	}

	frame(c, ctx, dt, air, press)

	assert.Zero(t, ctx.count(EventGroundJump)+ctx.count(EventAirJump))
	assert.Equal(t, 0.0, ctx.body.vy)
	assert.Zero(t, c.JumpsRemaining)
}

func TestDoubleJumpThenRejected(t *testing.T) {
	c, ctx := createTestController()
	dt := 16 * time.Millisecond

	frame(c, ctx, dt, ground, Input{})
	frame(c, ctx, dt, ground, press)
	assert.Equal(t, 1, ctx.count(EventGroundJump))
	assert.Equal(t, 1, c.JumpsRemaining)

	for i := 0; i < 20; i++ {
		frame(c, ctx, dt, air, hold)
	}
	frame(c, ctx, dt, air, Input{})
	frame(c, ctx, dt, air, press)
	assert.Equal(t, 1, ctx.count(EventAirJump))
	assert.Equal(t, 0, c.JumpsRemaining)
	assert.Equal(t, c.cfg.JumpForce, ctx.body.vy, "air jump uses the same force")

	frame(c, ctx, dt, air, Input{})
	ctx.body.vy = 100
	frame(c, ctx, dt, air, press)
	assert.Equal(t, 1, ctx.count(EventAirJump), "third jump rejected")
	assert.Equal(t, 100.0, ctx.body.vy)

	for i := 0; i < 3; i++ {
		frame(c, ctx, dt, air, Input{})
	}
	frame(c, ctx, dt, ground, Input{})
	assert.Equal(t, c.cfg.MaxJumps, c.JumpsRemaining, "refilled on ground")
}

func TestWallJump(t *testing.T) {
	c, ctx := createTestController()
	dt := 16 * time.Millisecond
	c.JumpsRemaining = 0

	ctx.body.vy = 300
	frame(c, ctx, dt, leftWall, Input{Left: true, JumpPressed: true, JumpHeld: true})

	assert.Equal(t, 1, ctx.count(EventWallJump))
	assert.Equal(t, c.cfg.WallJumpForce.X, ctx.body.vx, "pushed away from the left wall")
	assert.Equal(t, c.cfg.WallJumpForce.Y, ctx.body.vy)
	assert.Equal(t, c.cfg.MaxJumps-1, c.JumpsRemaining)
	assert.Equal(t, c.cfg.WallJumpLockDuration, c.Timers.WallJumpLock)
	assert.Zero(t, c.Timers.JumpBuffer)
	assert.Equal(t, WallJumpLocked, c.State)

	// Holding back toward the wall does not cancel the impulse while locked.
	frame(c, ctx, dt, air, Input{Left: true, JumpHeld: true})
	assert.Equal(t, c.cfg.WallJumpForce.X, ctx.body.vx)

	for i := 0; i < 15; i++ {
		frame(c, ctx, dt, air, Input{Left: true, JumpHeld: true})
	}
	assert.Equal(t, -c.cfg.MoveSpeed, ctx.body.vx, "control returns after the lock")
}

func TestWallJumpOutranksGroundJump(t *testing.T) {
	c, ctx := createTestController()

	frame(c, ctx, 16*time.Millisecond, Contacts{Right: true}, press)

	assert.Equal(t, 1, ctx.count(EventWallJump))
	assert.Zero(t, ctx.count(EventGroundJump)+ctx.count(EventAirJump))
	assert.Equal(t, -c.cfg.WallJumpForce.X, ctx.body.vx)
	assert.Equal(t, config.DirectionRight, c.LastWallDirection)
}

func TestWallSlideClamp(t *testing.T) {
	c, ctx := createTestController()

	ctx.body.vy = 600
	frame(c, ctx, 16*time.Millisecond, leftWall, Input{Left: true})
	assert.Equal(t, c.cfg.WallSlideSpeed, ctx.body.vy)
	assert.Equal(t, 1, ctx.count(EventWallSlide))
	assert.Equal(t, -c.cfg.WallLean, c.Pose.Angle)
	assert.Equal(t, c.cfg.MaxJumps, c.JumpsRemaining, "sliding costs no charge")

	ctx.body.vy = 50
	frame(c, ctx, 16*time.Millisecond, leftWall, Input{Left: true})
	assert.Equal(t, 50.0, ctx.body.vy, "slower falls are untouched")

	ctx.body.vy = 600
	frame(c, ctx, 16*time.Millisecond, Contacts{Down: true, Left: true}, Input{Left: true})
	assert.Equal(t, 600.0, ctx.body.vy, "walls are ignored on the ground")
}

func TestVariableJumpHeight(t *testing.T) {
	c, ctx := createTestController()

	ctx.body.vy = -600
	frame(c, ctx, 16*time.Millisecond, air, Input{})
	assert.InDelta(t, -360.0, ctx.body.vy, 1e-9)

	ctx.body.vy = -600
	frame(c, ctx, 16*time.Millisecond, air, hold)
	assert.Equal(t, -600.0, ctx.body.vy, "held jump keeps full speed")
}

func TestDashCooldown(t *testing.T) {
	c, ctx := createTestController()
	dt := 10 * time.Millisecond
	dash := Input{Right: true, DashPressed: true}

	frame(c, ctx, dt, ground, dash)
	require.Equal(t, 1, ctx.count(EventDashStart))
	assert.Equal(t, c.cfg.DashSpeed, ctx.body.vx)
	assert.Equal(t, c.cfg.DashLift, ctx.body.vy)
	assert.False(t, ctx.body.gravity)
	assert.Equal(t, Dashing, c.State)

	for i := 0; i < 20; i++ {
		frame(c, ctx, dt, ground, Input{})
	}
	assert.False(t, c.Dashing, "dash duration elapsed")
	assert.True(t, ctx.body.gravity)
	assert.Equal(t, 1, ctx.count(EventDashEnd))
	assert.Equal(t, c.cfg.DashCooldown, c.Timers.DashCooldown)

	for i := 0; i < 9; i++ {
		frame(c, ctx, dt, ground, Input{})
	}
	vx := ctx.body.vx
	frame(c, ctx, dt, ground, Input{DashPressed: true})
	assert.Equal(t, 1, ctx.count(EventDashStart), "second press inside the cooldown is ignored")
	assert.Equal(t, vx, ctx.body.vx)

	for i := 0; i < 60; i++ {
		frame(c, ctx, dt, ground, Input{})
	}
	frame(c, ctx, dt, ground, Input{Left: true, DashPressed: true})
	assert.Equal(t, 2, ctx.count(EventDashStart))
	assert.Equal(t, -c.cfg.DashSpeed, ctx.body.vx)
}

func TestDashUsesFacingWithoutInput(t *testing.T) {
	c, ctx := createTestController()
	frame(c, ctx, 10*time.Millisecond, ground, Input{Left: true})

	frame(c, ctx, 10*time.Millisecond, ground, Input{DashPressed: true})

	assert.Equal(t, -c.cfg.DashSpeed, ctx.body.vx)
	assert.Equal(t, config.DirectionLeft, c.DashDirection)
}

func TestDashSuspendsSteering(t *testing.T) {
	c, ctx := createTestController()
	frame(c, ctx, 10*time.Millisecond, ground, Input{Right: true, DashPressed: true})

	frame(c, ctx, 10*time.Millisecond, ground, Input{Left: true})

	assert.Equal(t, c.cfg.DashSpeed, ctx.body.vx)
	assert.Equal(t, config.DirectionRight, c.Facing)
}

func TestDropThrough(t *testing.T) {
	c, ctx := createTestController()
	oneWay := Contacts{Down: true, OneWay: true}

	frame(c, ctx, 16*time.Millisecond, oneWay, Input{Down: true, JumpPressed: true, JumpHeld: true})

	assert.Equal(t, 1, ctx.body.drops)
	assert.Equal(t, 1, ctx.count(EventDropThrough))
	assert.Zero(t, ctx.count(EventGroundJump))
	assert.Zero(t, c.Timers.JumpBuffer)

	frame(c, ctx, 16*time.Millisecond, ground, Input{Down: true, JumpPressed: true, JumpHeld: true})
	assert.Equal(t, 1, ctx.body.drops, "solid ground never drops")
	assert.Equal(t, 1, ctx.count(EventGroundJump))
}

func TestReset(t *testing.T) {
	c, ctx := createTestController()
	frame(c, ctx, 10*time.Millisecond, ground, Input{Right: true, DashPressed: true})
	frame(c, ctx, 10*time.Millisecond, air, press)
	ctx.body.vx, ctx.body.vy = 300, -200

	c.Reset(ctx.body)

	assert.Equal(t, c.cfg.MaxJumps, c.JumpsRemaining)
	assert.True(t, c.Timers.Idle())
	assert.False(t, c.Dashing)
	assert.Equal(t, 0, c.LastWallDirection)
	assert.True(t, ctx.body.gravity)
	assert.Zero(t, ctx.body.vx)
	assert.Zero(t, ctx.body.vy)
}

func TestStretch(t *testing.T) {
	cfg := config.Default().Player

	tests := []struct {
		name     string
		vy       float64
		grounded bool
		sx, sy   float64
	}{
		{"grounded", -900, true, 1, 1},
		{"rising", -200, false, 0.8, 1.2},
		{"falling", 300, false, 1.3, 0.7},
		{"clamped", 5000, false, 1.4, 0.6},
		{"still", 0, false, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := Stretch(&cfg, tt.vy, tt.grounded)
			assert.InDelta(t, tt.sx, sx, 1e-9)
			assert.InDelta(t, tt.sy, sy, 1e-9)
		})
	}
}

func TestEventsCarryPosition(t *testing.T) {
	c, ctx := createTestController()
	ctx.body.x, ctx.body.y = 120, 640

	frame(c, ctx, 16*time.Millisecond, ground, press)

	require.Len(t, ctx.events, 1)
	assert.Equal(t, Event{Kind: EventGroundJump, X: 120, Y: 640, Direction: config.DirectionRight}, ctx.events[0])
	assert.Equal(t, "ground-jump", ctx.events[0].Kind.String())
}
