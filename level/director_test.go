package level

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/platform"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

// Spawn sits exactly on the floor: floor top is 980, actor is 32 tall.
const (
	spawnX = 100.0
	spawnY = 964.0
)

func newTestDirector(t *testing.T) *Director {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	d, err := NewDirector(config.Default(), WithLogger(logrus.NewEntry(log)))
	require.NoError(t, err)
	return d
}

func floor() PlatformSpec {
	return PlatformSpec{Kind: platform.Static, X: 1000, Y: 1000, W: 2000, H: 40}
}

func floorLayout() Layout {
	return Layout{
		Name:      "test",
		Spawn:     &Point{X: spawnX, Y: spawnY},
		Platforms: []PlatformSpec{floor()},
	}
}

// runUntil steps until done reports true or max frames pass, and returns the
// number of frames run.
func runUntil(d *Director, max int, done func() bool, held ...config.ActionID) int {
	for i := 1; i <= max; i++ {
		d.Update(frame, held...)
		if done() {
			return i
		}
	}
	return max
}

func TestCollectAllTokens(t *testing.T) {
	d := newTestDirector(t)
	layout := floorLayout()
	layout.Tokens = []TriggerSpec{
		{X: 200, Y: spawnY, Label: "ONE"},
		{X: 300, Y: spawnY, Label: "TWO"},
		{X: 400, Y: spawnY, Label: "THREE"},
	}
	require.NoError(t, d.Build(layout))

	var got []messages.TokenCollected
	d.OnTokenCollected(func(ev messages.TokenCollected) {
		got = append(got, ev)
	})

	runUntil(d, 200, func() bool { return len(got) == 3 }, config.ActionMoveRight)
	require.Len(t, got, 3)

	for i, ev := range got {
		assert.Equal(t, i+1, ev.Collected)
		assert.Equal(t, 3, ev.Total)
		assert.Equal(t, layout.Tokens[i].Label, ev.Label)
	}
	assert.Equal(t, []int{33, 67, 100}, []int{got[0].Percent, got[1].Percent, got[2].Percent})

	snap := d.Snapshot()
	assert.Equal(t, 3, snap.Collected)
	assert.Equal(t, 100, snap.Percent)
	assert.False(t, snap.Complete())

	// Walking back over the same spots collects nothing more.
	runUntil(d, 120, func() bool { return false }, config.ActionMoveLeft)
	assert.Len(t, got, 3)
}

func TestHazardRespawnKeepsTokens(t *testing.T) {
	d := newTestDirector(t)
	layout := floorLayout()
	require.NoError(t, d.Build(layout))

	token, err := d.AddToken(TriggerSpec{X: 200, Y: spawnY, Label: "KEEP"})
	require.NoError(t, err)
	_, err = d.AddHazard(TriggerSpec{X: 400, Y: spawnY, Label: "KAREN"})
	require.NoError(t, err)

	var respawns []messages.Respawned
	d.OnRespawn(func(ev messages.Respawned) { respawns = append(respawns, ev) })

	runUntil(d, 200, func() bool { return len(respawns) > 0 }, config.ActionMoveRight)
	require.Len(t, respawns, 1)
	assert.Equal(t, messages.ReasonHazard, respawns[0].Reason)
	assert.Equal(t, "KAREN", respawns[0].Hazard)

	snap := d.Snapshot()
	assert.Equal(t, spawnX, snap.Actor.X)
	assert.Equal(t, spawnY, snap.Actor.Y)
	assert.Zero(t, snap.Actor.VX)
	assert.Zero(t, snap.Actor.VY)
	assert.Equal(t, 2, snap.Actor.JumpsRemaining)
	assert.True(t, snap.Actor.Timers.Idle())
	assert.False(t, snap.Actor.Dashing)
	assert.Equal(t, 1, snap.Respawns)

	assert.Equal(t, 1, snap.Collected)
	assert.True(t, d.Collected(token))
}

func TestHazardMidAir(t *testing.T) {
	d := newTestDirector(t)
	layout := floorLayout()
	layout.Hazards = []TriggerSpec{{X: spawnX, Y: 880, Label: "FAKE IT"}}
	require.NoError(t, d.Build(layout))

	respawned := 0
	d.OnRespawn(func(messages.Respawned) { respawned++ })

	runUntil(d, 5, func() bool { return false })
	require.True(t, d.Snapshot().Actor.Contacts.Down)

	var before Snapshot
	runUntil(d, 60, func() bool {
		if respawned == 0 {
			before = d.Snapshot()
		}
		return respawned > 0
	}, config.ActionJump)
	require.Equal(t, 1, respawned)

	assert.False(t, before.Actor.Contacts.Down)
	assert.Equal(t, 1, before.Actor.JumpsRemaining)

	after := d.Snapshot()
	assert.Equal(t, 2, after.Actor.JumpsRemaining)
	assert.Equal(t, spawnY, after.Actor.Y)
}

func TestFallingOutOfWorldRespawns(t *testing.T) {
	d := newTestDirector(t)
	require.NoError(t, d.Build(Layout{Spawn: &Point{X: 100, Y: 100}}))

	var respawns []messages.Respawned
	d.OnRespawn(func(ev messages.Respawned) { respawns = append(respawns, ev) })

	runUntil(d, 400, func() bool { return len(respawns) > 0 })
	require.Len(t, respawns, 1)
	assert.Equal(t, messages.ReasonOutOfBounds, respawns[0].Reason)

	snap := d.Snapshot()
	assert.Equal(t, 100.0, snap.Actor.X)
	assert.Equal(t, 100.0, snap.Actor.Y)
	assert.Equal(t, 1, snap.Respawns)
}

func TestGoalIsTerminal(t *testing.T) {
	d := newTestDirector(t)
	layout := floorLayout()
	layout.Goal = &Point{X: 300, Y: spawnY}
	layout.Hazards = []TriggerSpec{{X: 500, Y: spawnY, Label: "LACTOSE"}}
	layout.Tokens = []TriggerSpec{{X: 700, Y: spawnY, Label: "MISSED"}}
	require.NoError(t, d.Build(layout))

	completed := 0
	var done messages.LevelCompleted
	d.OnComplete(func(ev messages.LevelCompleted) {
		completed++
		done = ev
	})
	respawned := 0
	d.OnRespawn(func(messages.Respawned) { respawned++ })

	runUntil(d, 200, func() bool { return completed > 0 }, config.ActionMoveRight)
	require.Equal(t, 1, completed)
	assert.Equal(t, 0, done.Collected)
	assert.Equal(t, 1, done.Total)

	snap := d.Snapshot()
	require.True(t, snap.Complete())

	// Nothing moves, no hazard fires and the clock stops.
	runUntil(d, 120, func() bool { return false }, config.ActionMoveRight, config.ActionJump, config.ActionDash)
	d.Respawn()
	runUntil(d, 10, func() bool { return false }, config.ActionRestart)

	later := d.Snapshot()
	assert.Equal(t, snap.Actor.X, later.Actor.X)
	assert.Equal(t, snap.Actor.Y, later.Actor.Y)
	assert.Equal(t, snap.Elapsed, later.Elapsed)
	assert.Equal(t, 1, completed)
	assert.Zero(t, respawned)
	assert.Zero(t, later.Collected)
}

func TestRestartAction(t *testing.T) {
	d := newTestDirector(t)
	require.NoError(t, d.Build(floorLayout()))

	var reasons []messages.RespawnReason
	d.OnRespawn(func(ev messages.Respawned) { reasons = append(reasons, ev.Reason) })

	runUntil(d, 30, func() bool { return false }, config.ActionMoveRight)
	require.Greater(t, d.Snapshot().Actor.X, spawnX)

	// Held restart counts once.
	runUntil(d, 5, func() bool { return false }, config.ActionRestart)
	assert.Equal(t, []messages.RespawnReason{messages.ReasonRestart}, reasons)
	assert.Equal(t, spawnX, d.Snapshot().Actor.X)

	d.Respawn()
	assert.Len(t, reasons, 2)
}

func TestOneWayPlatform(t *testing.T) {
	d := newTestDirector(t)
	layout := floorLayout()
	layout.Platforms = append(layout.Platforms, PlatformSpec{Kind: platform.OneWay, X: spawnX, Y: 908, W: 120, H: 16})
	require.NoError(t, d.Build(layout))

	runUntil(d, 5, func() bool { return false })

	// Jump up through it from below and land on top.
	landed := func() bool {
		s := d.Snapshot()
		return s.Actor.Contacts.Down && s.Actor.Y < 900
	}
	runUntil(d, 120, landed, config.ActionJump)
	require.True(t, landed())
	assert.InDelta(t, 884, d.Snapshot().Actor.Y, 0.01)

	runUntil(d, 3, func() bool { return false })
	assert.InDelta(t, 884, d.Snapshot().Actor.Y, 0.01)

	// Down+jump drops through to the floor.
	onFloor := func() bool {
		s := d.Snapshot()
		return s.Actor.Contacts.Down && s.Actor.Y > 900
	}
	runUntil(d, 120, onFloor, config.ActionMoveDown, config.ActionJump)
	require.True(t, onFloor())
	assert.InDelta(t, spawnY, d.Snapshot().Actor.Y, 0.01)
}

func TestBouncyPlatform(t *testing.T) {
	d := newTestDirector(t)
	require.NoError(t, d.Build(Layout{
		Spawn: &Point{X: 100, Y: 800},
		Platforms: []PlatformSpec{
			{Kind: platform.Bouncy, X: 100, Y: 1000, W: 120, H: 24},
		},
	}))

	rising := func() bool { return d.Snapshot().Actor.VY < 0 }
	runUntil(d, 120, rising)
	require.True(t, rising())

	snap := d.Snapshot()
	assert.Equal(t, d.Config().Platform.BounceImpulse, snap.Actor.VY)
	assert.True(t, snap.Actor.Contacts.Down)

	d.Update(frame)
	assert.Less(t, d.Snapshot().Actor.Y, snap.Actor.Y)
	assert.False(t, d.Snapshot().Actor.Contacts.Down)
}

func TestBounceRefillsJumps(t *testing.T) {
	d := newTestDirector(t)
	require.NoError(t, d.Build(Layout{
		Spawn: &Point{X: 100, Y: 800},
		Platforms: []PlatformSpec{
			{Kind: platform.Bouncy, X: 100, Y: 1000, W: 120, H: 24},
		},
	}))
	cfg := d.Config()

	// Spend every jump in the air, one press per pair of frames.
	for i := 0; i < cfg.Player.MaxJumps; i++ {
		d.Update(frame, config.ActionJump)
		d.Update(frame)
	}
	require.Zero(t, d.Snapshot().Actor.JumpsRemaining)

	bounced := func() bool {
		s := d.Snapshot()
		return s.Actor.Contacts.Down && s.Actor.VY < 0
	}
	runUntil(d, 240, bounced)
	require.True(t, bounced())
	assert.Equal(t, cfg.Platform.BounceImpulse, d.Snapshot().Actor.VY)

	d.Update(frame)
	assert.Equal(t, cfg.Player.MaxJumps, d.Snapshot().Actor.JumpsRemaining)

	d.Update(frame, config.ActionJump)
	snap := d.Snapshot()
	assert.Equal(t, cfg.Player.MaxJumps-1, snap.Actor.JumpsRemaining)
	assert.InDelta(t, cfg.Player.JumpForce+cfg.Physics.Gravity*frame.Seconds(), snap.Actor.VY, 0.01)
}

func TestMovingPlatformCarriesActor(t *testing.T) {
	d := newTestDirector(t)
	require.NoError(t, d.Build(Layout{Spawn: &Point{X: 300, Y: 972}}))
	h, err := d.AddPlatform(PlatformSpec{
		Kind: platform.Moving, X: 300, Y: 1000, W: 120, H: 24,
		VelocityX: 200, Cycle: 2500 * time.Millisecond,
	})
	require.NoError(t, err)

	start, ok := d.Bounds(h)
	require.True(t, ok)

	runUntil(d, 90, func() bool { return false })

	now, _ := d.Bounds(h)
	assert.Greater(t, now.X-start.X, 20.0)

	snap := d.Snapshot()
	cx, _ := now.Center()
	assert.True(t, snap.Actor.Contacts.Down)
	assert.InDelta(t, cx, snap.Actor.X, 0.5)
	assert.InDelta(t, now.Y-16, snap.Actor.Y, 0.01)
}

func TestMovingPlatformPushesActor(t *testing.T) {
	d := newTestDirector(t)
	require.NoError(t, d.Build(floorLayout()))

	// Hovers just above the floor at the actor's height, sliding left into it.
	h, err := d.AddPlatform(PlatformSpec{
		Kind: platform.Moving, X: 220, Y: 960, W: 120, H: 24,
		VelocityX: -200, Cycle: 2500 * time.Millisecond,
	})
	require.NoError(t, err)

	halfW := d.Config().Player.Width / 2
	reached := func() bool {
		b, _ := d.Bounds(h)
		return b.X < spawnX+halfW
	}
	runUntil(d, 120, reached)
	require.True(t, reached())

	pushedFar := func() bool {
		b, _ := d.Bounds(h)
		return b.X < 60
	}
	runUntil(d, 120, pushedFar)
	require.True(t, pushedFar())

	b, _ := d.Bounds(h)
	snap := d.Snapshot()
	assert.InDelta(t, b.X-halfW, snap.Actor.X, 0.01)
	assert.InDelta(t, spawnY, snap.Actor.Y, 0.01)
	assert.True(t, snap.Actor.Contacts.Right)
	assert.True(t, snap.Actor.Contacts.Down)
	assert.Zero(t, snap.Respawns)
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name   string
		layout func() Layout
		want   error
	}{
		{"no spawn", func() Layout { return Layout{} }, ErrNoSpawn},
		{"zero cycle", func() Layout {
			l := floorLayout()
			l.Platforms = append(l.Platforms, PlatformSpec{Kind: platform.Moving, X: 10, Y: 10, W: 120, H: 24, VelocityX: 100})
			return l
		}, ErrInvalidCycle},
		{"negative cycle", func() Layout {
			l := floorLayout()
			l.Platforms = append(l.Platforms, PlatformSpec{Kind: platform.Moving, X: 10, Y: 10, W: 120, H: 24, Cycle: -time.Second})
			return l
		}, ErrInvalidCycle},
		{"zero width", func() Layout {
			l := floorLayout()
			l.Platforms = append(l.Platforms, PlatformSpec{Kind: platform.Static, X: 10, Y: 10, H: 24})
			return l
		}, ErrInvalidSize},
		{"unknown kind", func() Layout {
			l := floorLayout()
			l.Platforms = append(l.Platforms, PlatformSpec{Kind: platform.Kind(12), X: 10, Y: 10, W: 10, H: 10})
			return l
		}, ErrUnknownKind},
		{"negative token", func() Layout {
			l := floorLayout()
			l.Tokens = []TriggerSpec{{X: 10, Y: 10, Size: -4}}
			return l
		}, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDirector(t)
			err := d.Build(tt.layout())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSecondGoalRejected(t *testing.T) {
	d := newTestDirector(t)
	_, err := d.SetGoal(100, 100)
	require.NoError(t, err)
	_, err = d.SetGoal(200, 100)
	assert.ErrorIs(t, err, ErrGoalExists)
}

func TestUpdateWithoutActor(t *testing.T) {
	d := newTestDirector(t)
	assert.NotPanics(t, func() {
		runUntil(d, 10, func() bool { return false }, config.ActionJump)
	})
	snap := d.Snapshot()
	assert.False(t, snap.HasActor)
	assert.Equal(t, 10*frame, snap.Elapsed)
}

func TestApplyConfig(t *testing.T) {
	d := newTestDirector(t)

	bad := config.Default()
	bad.Player.MaxJumps = 0
	assert.ErrorIs(t, d.ApplyConfig(bad), config.ErrInvalidConfig)

	tuned := config.Default()
	tuned.Platform.BounceImpulse = -1200
	tuned.Player.MoveSpeed = 500
	require.NoError(t, d.ApplyConfig(tuned))
	assert.Equal(t, 500.0, d.Config().Player.MoveSpeed)
	assert.Equal(t, -1200.0, d.levelData().Rules.BounceImpulse)
}

func TestPauseFreezesGameplay(t *testing.T) {
	d := newTestDirector(t)
	require.NoError(t, d.Build(floorLayout()))
	runUntil(d, 10, func() bool { return false }, config.ActionMoveRight)

	d.Update(frame, config.ActionPause)
	paused := d.Snapshot()
	require.True(t, paused.Paused)

	runUntil(d, 30, func() bool { return false }, config.ActionMoveRight, config.ActionRestart)
	still := d.Snapshot()
	assert.Equal(t, paused.Actor.X, still.Actor.X)
	assert.Equal(t, paused.Elapsed, still.Elapsed)
	assert.Zero(t, still.Respawns)

	d.Update(frame, config.ActionPause)
	assert.False(t, d.Snapshot().Paused)
	runUntil(d, 10, func() bool { return false }, config.ActionMoveRight)
	assert.Greater(t, d.Snapshot().Actor.X, still.Actor.X)
}
