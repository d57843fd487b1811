package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Vector is a plain 2D pair used for impulses.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig contains all actor movement tuning. Negative Y is up.
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	MoveSpeed float64 `yaml:"move_speed"`

	// Jumping
	JumpForce           float64       `yaml:"jump_force"`
	MaxJumps            int           `yaml:"max_jumps"`
	CoyoteWindow        time.Duration `yaml:"coyote_window"`
	JumpBufferWindow    time.Duration `yaml:"jump_buffer_window"`
	VariableJumpDamping float64       `yaml:"variable_jump_damping"` // applied per frame while rising without jump held

	// Walls
	WallJumpForce        Vector        `yaml:"wall_jump_force"`
	WallJumpLockDuration time.Duration `yaml:"wall_jump_lock_duration"`
	WallSlideSpeed       float64       `yaml:"wall_slide_speed"`

	// Dash
	DashSpeed    float64       `yaml:"dash_speed"`
	DashLift     float64       `yaml:"dash_lift"`
	DashDuration time.Duration `yaml:"dash_duration"`
	DashCooldown time.Duration `yaml:"dash_cooldown"`

	// Pose (degrees / scale)
	RunTilt        float64 `yaml:"run_tilt"`
	WallLean       float64 `yaml:"wall_lean"`
	MaxStretch     float64 `yaml:"max_stretch"`
	StretchDivisor float64 `yaml:"stretch_divisor"`
}

// PhysicsConfig contains the AABB substrate settings
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	DragX        float64 `yaml:"drag_x"`
	MaxStep      float64 `yaml:"max_step"` // largest sub-step per axis, guards thin platforms
	CellSize     int     `yaml:"cell_size"`
}

// PlatformConfig contains the per-kind platform behaviour values
type PlatformConfig struct {
	OneWayEpsilon        float64       `yaml:"one_way_epsilon"`
	BounceImpulse        float64       `yaml:"bounce_impulse"` // upward, stored negative
	BounceSquashScale    float64       `yaml:"bounce_squash_scale"`
	BounceSquashDuration time.Duration `yaml:"bounce_squash_duration"`
	MovingCycle          time.Duration `yaml:"moving_cycle"` // one leg of the yoyo
	HazardSpinPeriod     time.Duration `yaml:"hazard_spin_period"`
	GoalPulseScale       float64       `yaml:"goal_pulse_scale"`
	GoalPulsePeriod      time.Duration `yaml:"goal_pulse_period"`
}

// LevelConfig contains world bounds and respawn rules
type LevelConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallMargin float64 `yaml:"fall_margin"`
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	FollowSmoothing float64 `yaml:"follow_smoothing"` // per 60 Hz frame
}

// ShakeConfig is one screen shake preset. Intensity is a fraction of the viewport.
type ShakeConfig struct {
	Duration  time.Duration `yaml:"duration"`
	Intensity float64       `yaml:"intensity"`
}

// TintConfig is a coloured camera overlay (flash or fade).
type TintConfig struct {
	Duration time.Duration `yaml:"duration"`
	Color    color.RGBA    `yaml:"-"`
	Alpha    float64       `yaml:"alpha"`
}

// FeedbackConfig maps gameplay events onto presentation effects
type FeedbackConfig struct {
	GroundJump ShakeConfig `yaml:"ground_jump"`
	AirJump    ShakeConfig `yaml:"air_jump"`
	WallJump   ShakeConfig `yaml:"wall_jump"`
	Dash       ShakeConfig `yaml:"dash"`
	Bounce     ShakeConfig `yaml:"bounce"`
	Failure    ShakeConfig `yaml:"failure"`

	CollectFlash TintConfig `yaml:"collect_flash"`
	FailureFade  TintConfig `yaml:"failure_fade"`

	GroundJumpParticles int           `yaml:"ground_jump_particles"`
	AirJumpParticles    int           `yaml:"air_jump_particles"`
	DashParticles       int           `yaml:"dash_particles"`
	TrailInterval       time.Duration `yaml:"trail_interval"`
	ParticleLifespan    time.Duration `yaml:"particle_lifespan"`

	LabelRise     float64       `yaml:"label_rise"`
	LabelDuration time.Duration `yaml:"label_duration"`
}

type Config struct {
	Player   PlayerConfig   `yaml:"player"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Platform PlatformConfig `yaml:"platform"`
	Level    LevelConfig    `yaml:"level"`
	Camera   CameraConfig   `yaml:"camera"`
	Feedback FeedbackConfig `yaml:"feedback"`
}

// Colours used by feedback effects
var (
	Teal  = color.RGBA{R: 42, G: 157, B: 143, A: 255}
	Red   = color.RGBA{R: 230, G: 57, B: 70, A: 255}
	Sandy = color.RGBA{R: 244, G: 162, B: 97, A: 255}
	Navy  = color.RGBA{R: 29, G: 53, B: 87, A: 255}
	Night = color.RGBA{R: 15, G: 26, B: 46, A: 255}
)

// Direction constants for facing and wall sides
const (
	DirectionLeft  = -1
	DirectionNone  = 0
	DirectionRight = 1
)

// Default returns the tuned values the course was designed around.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Width:  32,
			Height: 32,

			MoveSpeed: 380,

			JumpForce:           -600,
			MaxJumps:            2,
			CoyoteWindow:        150 * time.Millisecond,
			JumpBufferWindow:    150 * time.Millisecond,
			VariableJumpDamping: 0.6,

			WallJumpForce:        Vector{X: 450, Y: -650},
			WallJumpLockDuration: 200 * time.Millisecond,
			WallSlideSpeed:       150,

			DashSpeed:    1100,
			DashLift:     -100,
			DashDuration: 200 * time.Millisecond,
			DashCooldown: 600 * time.Millisecond,

			RunTilt:        5,
			WallLean:       15,
			MaxStretch:     0.4,
			StretchDivisor: 1000,
		},
		Physics: PhysicsConfig{
			Gravity:      1500,
			MaxFallSpeed: 1200,
			DragX:        1500,
			MaxStep:      8,
			CellSize:     32,
		},
		Platform: PlatformConfig{
			OneWayEpsilon:        5,
			BounceImpulse:        -850,
			BounceSquashScale:    0.6,
			BounceSquashDuration: 100 * time.Millisecond,
			MovingCycle:          2500 * time.Millisecond,
			HazardSpinPeriod:     2 * time.Second,
			GoalPulseScale:       1.3,
			GoalPulsePeriod:      800 * time.Millisecond,
		},
		Level: LevelConfig{
			Width:      5000,
			Height:     1400,
			FallMargin: 100,
		},
		Camera: CameraConfig{
			Width:           960,
			Height:          540,
			FollowSmoothing: 0.1,
		},
		Feedback: FeedbackConfig{
			GroundJump: ShakeConfig{Duration: 100 * time.Millisecond, Intensity: 0.002},
			AirJump:    ShakeConfig{Duration: 150 * time.Millisecond, Intensity: 0.003},
			WallJump:   ShakeConfig{Duration: 200 * time.Millisecond, Intensity: 0.005},
			Dash:       ShakeConfig{Duration: 150 * time.Millisecond, Intensity: 0.006},
			Bounce:     ShakeConfig{Duration: 200 * time.Millisecond, Intensity: 0.008},
			Failure:    ShakeConfig{Duration: 300 * time.Millisecond, Intensity: 0.01},

			CollectFlash: TintConfig{Duration: 200 * time.Millisecond, Color: Teal, Alpha: 0.15},
			FailureFade:  TintConfig{Duration: 200 * time.Millisecond, Color: Red, Alpha: 1},

			GroundJumpParticles: 15,
			AirJumpParticles:    20,
			DashParticles:       12,
			TrailInterval:       100 * time.Millisecond,
			ParticleLifespan:    400 * time.Millisecond,

			LabelRise:     60,
			LabelDuration: time.Second,
		},
	}
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	p := c.Player
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case p.MaxJumps < 1:
		return fmt.Errorf("%w: max_jumps must be at least 1, got %d", ErrInvalidConfig, p.MaxJumps)
	case p.CoyoteWindow < 0 || p.WallJumpLockDuration < 0:
		return fmt.Errorf("%w: grace windows must not be negative", ErrInvalidConfig)
	case p.JumpBufferWindow <= 0:
		return fmt.Errorf("%w: jump_buffer_window must be positive", ErrInvalidConfig)
	case p.DashDuration <= 0 || p.DashCooldown <= 0:
		return fmt.Errorf("%w: dash duration and cooldown must be positive", ErrInvalidConfig)
	case p.VariableJumpDamping <= 0 || p.VariableJumpDamping > 1:
		return fmt.Errorf("%w: variable_jump_damping must be in (0,1], got %v", ErrInvalidConfig, p.VariableJumpDamping)
	case p.StretchDivisor <= 0:
		return fmt.Errorf("%w: stretch_divisor must be positive", ErrInvalidConfig)
	}

	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	}
	if c.Physics.MaxStep <= 0 || c.Physics.CellSize <= 0 {
		return fmt.Errorf("%w: max_step and cell_size must be positive", ErrInvalidConfig)
	}
	if c.Platform.MovingCycle <= 0 {
		return fmt.Errorf("%w: moving_cycle must be positive", ErrInvalidConfig)
	}
	if c.Platform.OneWayEpsilon < 0 {
		return fmt.Errorf("%w: one_way_epsilon must not be negative", ErrInvalidConfig)
	}
	if c.Level.Width <= 0 || c.Level.Height <= 0 {
		return fmt.Errorf("%w: level bounds must be positive", ErrInvalidConfig)
	}
	return nil
}
