package systems

import (
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms drives kinematic platforms from their oscillators, carries
// anything standing on them and pushes players they run into. Runs before
// UpdateCollisions so the actor resolves against this frame's platform positions.
func UpdatePlatforms(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	dt := level.Delta

	tags.Moving.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		obj := components.Object.Get(e)

		p.Elapsed += dt
		p.VelocityX, p.VelocityY = p.Oscillator.VelocityAt(p.Elapsed)
		dx, dy := p.VelocityX*dt.Seconds(), p.VelocityY*dt.Seconds()
		if dx == 0 && dy == 0 {
			return
		}

		obj.X += dx
		obj.Y += dy
		obj.Update()

		carryRiders(ecs.World, obj, dx, dy)
		tags.Player.Each(ecs.World, func(pe *donburi.Entry) {
			pushActor(ecs.World, level, obj, components.Object.Get(pe), components.Physics.Get(pe), dx, dy)
		})
	})
}

// carryRiders moves every body grounded on platform by the platform's displacement.
func carryRiders(w donburi.World, platform *components.ObjectData, dx, dy float64) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.OnGround != platform.Object {
			return
		}
		rider := components.Object.Get(e)
		rider.X += dx
		rider.Y += dy
		rider.Update()
	})
}

// pushActor moves an actor out of a platform that moved into it, along the
// axis of the move that caused the overlap. The contact is kept in Pushed and
// reported by the next collision pass. Walls and world edges still stop the
// actor, which can leave it pinned against the platform.
func pushActor(w donburi.World, level *components.LevelData, platform, actor *components.ObjectData, physics *components.PhysicsData, dx, dy float64) {
	r, a := platform.Rect(), actor.Rect()
	if !r.Overlaps(a) {
		return
	}

	if pushesHorizontally(r, a, dx, dy) {
		push := r.X - a.Right()
		if dx > 0 {
			push = r.Right() - a.X
			physics.Pushed.Left = true
		} else {
			physics.Pushed.Right = true
		}
		sweepX(level, actor, physics, push)
		return
	}

	if dy > 0 {
		physics.Pushed.Up = true
		if physics.SpeedY < 0 {
			physics.SpeedY = 0
		}
		sweepY(w, level, actor, physics, r.Bottom()-a.Y)
		return
	}
	physics.Pushed.Down = true
	sweepY(w, level, actor, physics, r.Y-a.Bottom())
}

// pushesHorizontally reports whether the horizontal part of the platform's
// move produced the overlap with a.
func pushesHorizontally(r, a gamemath.Rect, dx, dy float64) bool {
	switch {
	case dy == 0:
		return true
	case dx == 0:
		return false
	}
	return !r.Translate(-dx, 0).Overlaps(a)
}
