package controller

import (
	"math"
	"time"

	"github.com/automoto/leapfrog/config"
)

// Actor is the authoritative movement state of the player body.
type Actor struct {
	State             State
	JumpsRemaining    int
	Timers            Timers
	LastWallDirection int
	Facing            int
	Dashing           bool
	DashDirection     int
	Pose              Pose
}

// Controller advances one actor by one frame at a time.
type Controller struct {
	cfg *config.PlayerConfig
	Actor
}

// New returns a controller at spawn conditions. cfg is read every frame, so
// edits to it (live tuning) apply on the next Update.
func New(cfg *config.PlayerConfig) *Controller {
	c := &Controller{cfg: cfg}
	c.reset()
	return c
}

// Reset returns the actor to spawn conditions: jumps refilled, every timer
// zeroed, dash cleared, body at rest with gravity on.
func (c *Controller) Reset(body Body) {
	c.reset()
	body.SetVelocity(0, 0)
	body.SetGravity(true)
}

func (c *Controller) reset() {
	facing := c.Facing
	if facing == config.DirectionNone {
		facing = config.DirectionRight
	}
	c.Actor = Actor{
		State:          Airborne,
		JumpsRemaining: c.cfg.MaxJumps,
		Facing:         facing,
		Pose:           restPose,
	}
}

// CanDash reports whether a dash press this frame would be honoured.
func (c *Controller) CanDash() bool {
	return !c.Dashing && c.Timers.DashCooldown <= 0
}

// Update runs one frame: timers, state, horizontal control, jump resolution,
// dash and wall slide, then writes the resulting velocity to the body.
func (c *Controller) Update(dt time.Duration, ctx Context) {
	cfg := c.cfg
	in := ctx.Input()
	body := ctx.Body()
	contacts := body.Contacts()

	grounded := contacts.Down
	onWall := !grounded && (contacts.Left || contacts.Right)
	if onWall {
		if contacts.Left {
			c.LastWallDirection = config.DirectionLeft
		}
		if contacts.Right {
			c.LastWallDirection = config.DirectionRight
		}
	}

	jumpPressed := in.JumpPressed
	if jumpPressed && in.Down && grounded && contacts.OneWay {
		// The edge is spent on dropping, not buffered as a jump.
		jumpPressed = false
		body.DropThrough()
		c.emit(ctx, body, EventDropThrough, 0)
	}

	// 1. jump buffer
	if jumpPressed {
		c.Timers.JumpBuffer = cfg.JumpBufferWindow
	} else {
		tick(&c.Timers.JumpBuffer, dt)
	}

	// 2. coyote
	if grounded {
		c.JumpsRemaining = cfg.MaxJumps
		c.Timers.Coyote = cfg.CoyoteWindow
	} else if tick(&c.Timers.Coyote, dt) && c.JumpsRemaining == cfg.MaxJumps {
		// Grace ran out without a jump: the ground charge is gone.
		c.JumpsRemaining = cfg.MaxJumps - 1
	}

	// 3. wall-jump lock
	tick(&c.Timers.WallJumpLock, dt)

	if c.Dashing {
		if tick(&c.Timers.Dash, dt) {
			c.endDash(ctx, body)
		}
	} else {
		tick(&c.Timers.DashCooldown, dt)
	}

	c.State = c.resolve(grounded, onWall)

	vx, vy := body.Velocity()
	steered := false
	if c.State.AcceptsHorizontalInput() {
		vx, steered = c.steer(in)
	}

	// 4. wall jump, 5. ground/air jump
	switch {
	case c.Timers.JumpBuffer > 0 && onWall:
		vx = float64(-c.LastWallDirection) * cfg.WallJumpForce.X
		vy = cfg.WallJumpForce.Y
		c.JumpsRemaining = cfg.MaxJumps - 1
		c.Timers.JumpBuffer = 0
		c.Timers.WallJumpLock = cfg.WallJumpLockDuration
		c.Facing = -c.LastWallDirection
		c.emit(ctx, body, EventWallJump, -c.LastWallDirection)
	case c.Timers.JumpBuffer > 0 && c.JumpsRemaining > 0:
		kind := EventGroundJump
		if c.JumpsRemaining < cfg.MaxJumps {
			kind = EventAirJump
		}
		vy = cfg.JumpForce
		c.JumpsRemaining--
		c.Timers.JumpBuffer = 0
		c.Timers.Coyote = 0
		c.emit(ctx, body, kind, c.Facing)
	}

	// 6. variable jump height
	if vy < 0 && !in.JumpHeld {
		vy *= cfg.VariableJumpDamping
	}

	if in.DashPressed && c.CanDash() {
		dir := c.Facing
		switch {
		case in.Left:
			dir = config.DirectionLeft
		case in.Right:
			dir = config.DirectionRight
		}
		vx = float64(dir) * cfg.DashSpeed
		vy = cfg.DashLift
		c.Dashing = true
		c.DashDirection = dir
		c.Facing = dir
		c.Timers.Dash = cfg.DashDuration
		body.SetGravity(false)
		c.emit(ctx, body, EventDashStart, dir)
	}

	sliding := onWall && vy > 0
	if sliding {
		vy = math.Min(vy, cfg.WallSlideSpeed)
		c.emit(ctx, body, EventWallSlide, c.LastWallDirection)
	}

	body.SetVelocity(vx, vy)

	c.State = c.resolve(grounded, onWall)
	c.updatePose(in, vy, grounded, sliding, steered)
}

func (c *Controller) resolve(grounded, onWall bool) State {
	return resolveState(facts{
		grounded: grounded,
		onWall:   onWall,
		coyote:   c.Timers.Coyote > 0,
		locked:   c.Timers.WallJumpLock > 0,
		dashing:  c.Dashing,
	})
}

// steer maps held directions onto horizontal velocity. Left wins when both are held.
func (c *Controller) steer(in Input) (float64, bool) {
	switch {
	case in.Left:
		c.Facing = config.DirectionLeft
		return -c.cfg.MoveSpeed, true
	case in.Right:
		c.Facing = config.DirectionRight
		return c.cfg.MoveSpeed, true
	}
	return 0, true
}

func (c *Controller) endDash(ctx Context, body Body) {
	c.Dashing = false
	c.Timers.Dash = 0
	c.Timers.DashCooldown = c.cfg.DashCooldown
	body.SetGravity(true)
	c.emit(ctx, body, EventDashEnd, c.DashDirection)
}

func (c *Controller) updatePose(in Input, vy float64, grounded, sliding, steered bool) {
	sx, sy := Stretch(c.cfg, vy, grounded)
	c.Pose.ScaleX, c.Pose.ScaleY = sx, sy
	c.Pose.FlipX = c.Facing == config.DirectionLeft

	switch {
	case sliding:
		c.Pose.Angle = float64(c.LastWallDirection) * c.cfg.WallLean
	case steered && in.Left:
		c.Pose.Angle = -c.cfg.RunTilt
	case steered && in.Right:
		c.Pose.Angle = c.cfg.RunTilt
	case steered:
		c.Pose.Angle = 0
	}
}

func (c *Controller) emit(ctx Context, body Body, kind EventKind, dir int) {
	x, y := body.Position()
	ctx.Emit(Event{Kind: kind, X: x, Y: y, Direction: dir})
}
