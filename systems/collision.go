package systems

import (
	"math"

	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/platform"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/automoto/leapfrog/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every player by its velocity, one axis at a time in
// sub-steps no longer than Physics.MaxStep, resolving contacts with platforms
// and the world edges. The bottom edge is open so falls can be detected.
func UpdateCollisions(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		moveActor(ecs.World, level, components.Object.Get(e), components.Physics.Get(e))
	})
}

func moveActor(w donburi.World, level *components.LevelData, obj *components.ObjectData, physics *components.PhysicsData) {
	dt := level.Delta.Seconds()
	dx := physics.SpeedX * dt
	dy := physics.SpeedY * dt

	physics.Blocked = physics.Pushed
	physics.Pushed = components.ContactData{}
	physics.OnGround = nil

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / level.Config.Physics.MaxStep))
	if steps < 1 {
		steps = 1
	}
	stepX, stepY := dx/float64(steps), dy/float64(steps)

	stopX, stopY := stepX == 0, stepY == 0
	for i := 0; i < steps && !(stopX && stopY); i++ {
		if !stopX {
			stopX = sweepX(level, obj, physics, stepX)
		}
		if !stopY {
			stopY = sweepY(w, level, obj, physics, stepY)
		}
	}

	releaseDroppedPlatform(obj, physics)
}

// sweepX moves the actor horizontally and reports whether it was blocked.
func sweepX(level *components.LevelData, obj *components.ObjectData, physics *components.PhysicsData, d float64) bool {
	from := obj.Rect()
	to := from.Translate(d, 0)
	right := d > 0
	hit := false

	if check := obj.Check(d, 0, tags.ResolvSolid); check != nil {
		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			r := rectOf(o)
			if !to.Overlaps(r) || from.Overlaps(r) {
				continue
			}
			hit = true
			if d > 0 {
				d = math.Min(d, r.X-from.Right())
			} else {
				d = math.Max(d, r.Right()-from.X)
			}
		}
	}

	switch width := level.Config.Level.Width; {
	case from.X+d < 0:
		d, hit = -from.X, true
	case from.Right()+d > width:
		d, hit = width-from.Right(), true
	}

	obj.X += d
	obj.Update()

	if !hit {
		return false
	}
	if right {
		physics.Blocked.Right = true
	} else {
		physics.Blocked.Left = true
	}
	physics.SpeedX = 0
	return true
}

// sweepY moves the actor vertically and reports whether it was stopped,
// either by landing, by a bounce or by hitting something overhead.
func sweepY(w donburi.World, level *components.LevelData, obj *components.ObjectData, physics *components.PhysicsData, d float64) bool {
	from := obj.Rect()
	to := from.Translate(0, d)

	var landed *resolv.Object
	hitUp := false

	if check := obj.Check(0, d, tags.ResolvSolid, tags.ResolvOneWay); check != nil {
		for _, o := range candidates(check) {
			r := rectOf(o)
			if !to.Overlaps(r) {
				continue
			}
			oneWay := !platformKind(o.Data).TwoSided()

			if d > 0 {
				if oneWay {
					admitted := level.Rules.Admit(platform.OneWay, platform.Contact{
						ActorBottom: from.Bottom(),
						ActorVelY:   physics.SpeedY,
						PlatformTop: r.Y,
						DropThrough: o == physics.IgnorePlatform,
					})
					if !admitted {
						continue
					}
				} else if from.Overlaps(r) && from.Bottom() > r.Y+r.H/2 {
					// Already buried past the middle; let it pass rather than teleport.
					continue
				}
				if top := r.Y - from.Bottom(); top < d {
					d, landed = top, o
				}
				continue
			}

			if oneWay || from.Overlaps(r) {
				continue
			}
			d, hitUp = math.Max(d, r.Bottom()-from.Y), true
		}
	}

	if landed == nil && from.Y+d < 0 {
		d, hitUp = -from.Y, true
	}

	obj.Y += d
	obj.Update()

	switch {
	case landed != nil:
		land(w, level, obj, physics, landed)
		return true
	case hitUp:
		physics.Blocked.Up = true
		if physics.SpeedY < 0 {
			physics.SpeedY = 0
		}
		return true
	}
	return false
}

// land resolves an admitted downward contact. A bouncy platform still counts
// as ground for the frame, then replaces the velocity with its impulse.
func land(w donburi.World, level *components.LevelData, obj *components.ObjectData, physics *components.PhysicsData, surface *resolv.Object) {
	kind := platformKind(surface.Data)
	incoming := physics.SpeedY
	physics.Land(surface)

	if vy, bounced := level.Rules.Bounce(kind, incoming); bounced {
		physics.SpeedY = vy
		if entry, ok := surface.Data.(*donburi.Entry); ok {
			TriggerSquash(entry, &level.Config.Platform)
		}
		x, y := obj.Center()
		BounceEvents.Publish(w, messages.PlatformBounced{X: x, Y: y, Incoming: incoming})
		return
	}

	if physics.SpeedY > 0 {
		physics.SpeedY = 0
	}
}

// releaseDroppedPlatform forgets the platform being dropped through once the
// actor is fully clear of it.
func releaseDroppedPlatform(obj *components.ObjectData, physics *components.PhysicsData) {
	p := physics.IgnorePlatform
	if p == nil {
		return
	}
	a, r := obj.Rect(), rectOf(p)
	if !a.Overlaps(r) && (a.Y >= r.Bottom() || a.Bottom() <= r.Y) {
		physics.IgnorePlatform = nil
	}
}

func candidates(check *resolv.Collision) []*resolv.Object {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	return append(solids, check.ObjectsByTags(tags.ResolvOneWay)...)
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
