package level

import (
	"time"

	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/controller"
	"github.com/automoto/leapfrog/systems"
)

// ActorSnapshot is a copy of the actor's state after the last frame.
type ActorSnapshot struct {
	controller.Actor

	X, Y     float64 // centre
	VX, VY   float64
	Contacts components.ContactData
	Gravity  bool
}

// Snapshot is a read-only copy of the level for HUDs, tests and the simulator.
type Snapshot struct {
	State     components.LevelState
	Paused    bool
	Collected int
	Total     int
	Percent   int
	Respawns  int
	Elapsed   time.Duration

	HasActor bool
	Actor    ActorSnapshot

	CameraX, CameraY float64
}

// Complete reports whether the goal has been reached.
func (s Snapshot) Complete() bool {
	return s.State == components.LevelComplete
}

// Snapshot copies the current state. It is safe to keep.
func (d *Director) Snapshot() Snapshot {
	level := d.levelData()
	s := Snapshot{
		State:     level.State,
		Paused:    systems.IsPaused(d.ecs),
		Collected: level.Collected,
		Total:     level.Total,
		Percent:   level.Percent(),
		Respawns:  level.Respawns,
		Elapsed:   level.Elapsed,
	}

	if d.player != nil && d.player.Valid() {
		player := components.Player.Get(d.player)
		physics := components.Physics.Get(d.player)
		x, y := components.Object.Get(d.player).Center()
		s.HasActor = true
		s.Actor = ActorSnapshot{
			Actor:    player.Controller.Actor,
			X:        x,
			Y:        y,
			VX:       physics.SpeedX,
			VY:       physics.SpeedY,
			Contacts: physics.Blocked,
			Gravity:  physics.AllowGravity,
		}
	}

	if entry, ok := components.Camera.First(d.ecs.World); ok {
		pos := components.Camera.Get(entry).Position
		s.CameraX, s.CameraY = pos.X, pos.Y
	}
	return s
}
