// Package level assembles a playable level: it owns the ECS world, builds
// platforms and triggers from caller-supplied data and runs the frame pipeline.
package level

import (
	"fmt"
	"time"

	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/logger"
	"github.com/automoto/leapfrog/platform"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/automoto/leapfrog/systems"
	"github.com/automoto/leapfrog/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Handle refers to a platform, token, hazard or goal created by a Director.
type Handle struct {
	entity donburi.Entity
}

// Director owns one level and the world it runs in.
type Director struct {
	cfg *config.Config
	ecs *ecs.ECS
	log *logrus.Entry

	level  *donburi.Entry
	player *donburi.Entry
	goal   *donburi.Entry
}

// Option configures a Director.
type Option func(*Director)

// WithLogger replaces the default "level" logger.
func WithLogger(log *logrus.Entry) Option {
	return func(d *Director) {
		d.log = log
	}
}

// NewDirector validates cfg and prepares an empty level. The director keeps
// cfg; edits made through ApplyConfig apply on the next frame.
func NewDirector(cfg *config.Config, opts ...Option) (*Director, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Director{
		cfg: cfg,
		ecs: ecs.NewECS(donburi.NewWorld()),
		log: logger.For("level"),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.ecs.AddSystem(systems.UpdateLevelClock)
	d.ecs.AddSystem(systems.UpdateInput)
	d.ecs.AddSystem(systems.UpdatePause)

	// Gameplay freezes once the goal is reached.
	d.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRestart))
	d.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	d.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	d.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	d.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	d.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateOverlaps))

	d.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	d.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	d.ecs.AddSystem(systems.ProcessEvents)

	d.ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	d.ecs.AddRenderer(archetypes.Default, systems.DrawSigns)
	d.ecs.AddRenderer(archetypes.Default, systems.DrawWorld)
	d.ecs.AddRenderer(archetypes.Default, systems.DrawTint)
	d.ecs.AddRenderer(archetypes.Default, systems.DrawHUD)
	d.ecs.AddRenderer(archetypes.Default, systems.DrawLevelComplete)
	d.ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	d.ecs.AddRenderer(archetypes.Default, systems.DrawPause)

	d.level = factory.CreateLevel(d.ecs, cfg)
	factory.CreateSpace(d.ecs, cfg.Level.Width, cfg.Level.Height, cfg.Level.FallMargin, cfg.Physics.CellSize)
	factory.CreateCamera(d.ecs, float64(cfg.Camera.Width)/2, float64(cfg.Camera.Height)/2)

	systems.RegisterFeedback(d.ecs, d.log)
	systems.LevelCompleteEvents.Subscribe(d.ecs.World, func(w donburi.World, ev messages.LevelCompleted) {
		d.log.WithFields(logrus.Fields{
			"collected": ev.Collected,
			"total":     ev.Total,
			"elapsed":   ev.Elapsed,
			"respawns":  ev.Respawns,
		}).Info("level complete")
	})

	return d, nil
}

// Config returns the live config.
func (d *Director) Config() *config.Config {
	return d.cfg
}

// ApplyConfig swaps in new tuning values. World bounds and cell size are
// fixed when the director is created and are not resized.
func (d *Director) ApplyConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	*d.cfg = *cfg
	d.levelData().Rules = platform.NewRules(&d.cfg.Platform)
	d.log.Debug("config applied")
	return nil
}

// SetDebug toggles the collision and timer overlay.
func (d *Director) SetDebug(on bool) {
	d.levelData().Debug = on
}

// SetSpawn places the actor's spawn point, creating the actor on first use.
// Moving the spawn of an existing actor also moves the actor there.
func (d *Director) SetSpawn(x, y float64) {
	if d.player != nil && d.player.Valid() {
		player := components.Player.Get(d.player)
		player.SpawnX, player.SpawnY = x, y
		systems.ResetPlayerAtSpawn(d.player)
		systems.SnapCamera(d.ecs, x, y)
		return
	}
	d.player = factory.CreatePlayer(d.ecs, &d.cfg.Player, x, y)
	systems.SnapCamera(d.ecs, x, y)
	d.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("spawn set")
}

// AddPlatform creates a platform centred on (spec.X, spec.Y).
func (d *Director) AddPlatform(spec PlatformSpec) (Handle, error) {
	if !spec.Kind.Valid() {
		return Handle{}, fmt.Errorf("%w: %v", ErrUnknownKind, spec.Kind)
	}
	if spec.W <= 0 || spec.H <= 0 {
		return Handle{}, fmt.Errorf("%w: platform %vx%v", ErrInvalidSize, spec.W, spec.H)
	}
	r := gamemath.RectFromCenter(spec.X, spec.Y, spec.W, spec.H)

	if spec.Kind != platform.Moving {
		e := factory.CreatePlatform(d.ecs, spec.Kind, r)
		return Handle{entity: e.Entity()}, nil
	}

	osc, err := platform.NewOscillator(0, 0, spec.VelocityX, spec.VelocityY, spec.Cycle)
	if err != nil {
		return Handle{}, err
	}
	e := factory.CreateMovingPlatform(d.ecs, r, osc)
	return Handle{entity: e.Entity()}, nil
}

// AddToken creates a collectible centred on (spec.X, spec.Y).
func (d *Director) AddToken(spec TriggerSpec) (Handle, error) {
	r, err := triggerRect(spec, TokenSize)
	if err != nil {
		return Handle{}, err
	}
	e := factory.CreateToken(d.ecs, r, spec.Label)
	d.levelData().Total++
	return Handle{entity: e.Entity()}, nil
}

// AddHazard creates a hazard centred on (spec.X, spec.Y).
func (d *Director) AddHazard(spec TriggerSpec) (Handle, error) {
	r, err := triggerRect(spec, HazardSize)
	if err != nil {
		return Handle{}, err
	}
	e := factory.CreateHazard(d.ecs, r, spec.Label, d.cfg.Platform.HazardSpinPeriod)
	return Handle{entity: e.Entity()}, nil
}

// AddSign places decorative text. Signs take no part in collision.
func (d *Director) AddSign(spec SignSpec) {
	factory.CreateSign(d.ecs, spec.X, spec.Y, spec.Text, spec.Small)
}

// SetGoal creates the goal centred on (x, y). A level has at most one.
func (d *Director) SetGoal(x, y float64) (Handle, error) {
	if d.goal != nil {
		return Handle{}, ErrGoalExists
	}
	d.goal = factory.CreateGoal(d.ecs, gamemath.RectFromCenter(x, y, GoalSize, GoalSize))
	return Handle{entity: d.goal.Entity()}, nil
}

// Build creates everything in layout. It stops at the first invalid entry.
func (d *Director) Build(layout Layout) error {
	if layout.Spawn == nil {
		return ErrNoSpawn
	}
	d.SetSpawn(layout.Spawn.X, layout.Spawn.Y)

	for i, p := range layout.Platforms {
		if _, err := d.AddPlatform(p); err != nil {
			return fmt.Errorf("platform %d: %w", i, err)
		}
	}
	for i, t := range layout.Tokens {
		if _, err := d.AddToken(t); err != nil {
			return fmt.Errorf("token %d (%s): %w", i, t.Label, err)
		}
	}
	for i, h := range layout.Hazards {
		if _, err := d.AddHazard(h); err != nil {
			return fmt.Errorf("hazard %d (%s): %w", i, h.Label, err)
		}
	}
	for _, s := range layout.Signs {
		d.AddSign(s)
	}
	if layout.Goal != nil {
		if _, err := d.SetGoal(layout.Goal.X, layout.Goal.Y); err != nil {
			return err
		}
	}

	d.log.WithFields(logrus.Fields{
		"name":      layout.Name,
		"platforms": len(layout.Platforms),
		"tokens":    len(layout.Tokens),
		"hazards":   len(layout.Hazards),
	}).Info("level built")
	return nil
}

// Update advances the level by dt with the given actions held.
func (d *Director) Update(dt time.Duration, held ...config.ActionID) {
	if dt < 0 {
		dt = 0
	}
	d.levelData().Delta = dt
	systems.SampleInput(d.ecs, held...)
	d.ecs.Update()
}

// Respawn puts the actor back at spawn right away. It does nothing once the
// level is complete.
func (d *Director) Respawn() {
	systems.RespawnPlayer(d.ecs, messages.ReasonRestart, "")
	systems.ProcessEvents(d.ecs)
}

// Draw renders the level onto screen.
func (d *Director) Draw(screen *ebiten.Image) {
	d.ecs.Draw(screen)
}

// OnTokenCollected registers fn for every collected token, in order.
func (d *Director) OnTokenCollected(fn func(messages.TokenCollected)) {
	systems.TokenCollectedEvents.Subscribe(d.ecs.World, func(w donburi.World, ev messages.TokenCollected) {
		fn(ev)
	})
}

// OnRespawn registers fn for every respawn.
func (d *Director) OnRespawn(fn func(messages.Respawned)) {
	systems.RespawnEvents.Subscribe(d.ecs.World, func(w donburi.World, ev messages.Respawned) {
		fn(ev)
	})
}

// OnComplete registers fn for the single completion of the level.
func (d *Director) OnComplete(fn func(messages.LevelCompleted)) {
	systems.LevelCompleteEvents.Subscribe(d.ecs.World, func(w donburi.World, ev messages.LevelCompleted) {
		fn(ev)
	})
}

// Bounds returns the current rectangle of h.
func (d *Director) Bounds(h Handle) (gamemath.Rect, bool) {
	e, ok := d.entry(h)
	if !ok || !e.HasComponent(components.Object) {
		return gamemath.Rect{}, false
	}
	return components.Object.Get(e).Rect(), true
}

// Collected reports whether h is a token that has been collected.
func (d *Director) Collected(h Handle) bool {
	e, ok := d.entry(h)
	if !ok || !e.HasComponent(components.Token) {
		return false
	}
	return components.Token.Get(e).Collected
}

func (d *Director) entry(h Handle) (*donburi.Entry, bool) {
	if !d.ecs.World.Valid(h.entity) {
		return nil, false
	}
	return d.ecs.World.Entry(h.entity), true
}

func (d *Director) levelData() *components.LevelData {
	return components.Level.Get(d.level)
}

func triggerRect(spec TriggerSpec, fallback float64) (gamemath.Rect, error) {
	size := spec.Size
	if size == 0 {
		size = fallback
	}
	if size < 0 {
		return gamemath.Rect{}, fmt.Errorf("%w: trigger size %v", ErrInvalidSize, size)
	}
	return gamemath.RectFromCenter(spec.X, spec.Y, size, size), nil
}
