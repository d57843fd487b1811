package systems

import (
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/controller"
	"github.com/automoto/leapfrog/platform"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerBody exposes the player's physics entry to the controller.
type playerBody struct {
	obj     *components.ObjectData
	physics *components.PhysicsData
	oneWay  bool
}

func (b *playerBody) Position() (float64, float64) { return b.obj.Center() }

func (b *playerBody) Velocity() (float64, float64) { return b.physics.SpeedX, b.physics.SpeedY }

func (b *playerBody) SetVelocity(vx, vy float64) {
	b.physics.SpeedX, b.physics.SpeedY = vx, vy
}

func (b *playerBody) SetGravity(enabled bool) { b.physics.AllowGravity = enabled }

func (b *playerBody) Contacts() controller.Contacts {
	blocked := b.physics.Blocked
	return controller.Contacts{
		Down:   blocked.Down,
		Up:     blocked.Up,
		Left:   blocked.Left,
		Right:  blocked.Right,
		OneWay: b.oneWay,
	}
}

func (b *playerBody) DropThrough() {
	b.physics.IgnorePlatform = b.physics.OnGround
	b.physics.OnGround = nil
	b.physics.Blocked.Down = false
}

// playerContext is the controller's view of the world for one frame.
type playerContext struct {
	world donburi.World
	input controller.Input
	body  *playerBody
}

func (c *playerContext) Input() controller.Input { return c.input }

func (c *playerContext) Body() controller.Body { return c.body }

func (c *playerContext) Emit(ev controller.Event) { ActorEvents.Publish(c.world, ev) }

// UpdatePlayer runs the movement controller for every player entity.
func UpdatePlayer(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := newPlayerBody(e)
		player.Controller.Update(level.Delta, &playerContext{
			world: ecs.World,
			input: player.Input,
			body:  body,
		})
	})
}

func newPlayerBody(e *donburi.Entry) *playerBody {
	physics := components.Physics.Get(e)
	return &playerBody{
		obj:     components.Object.Get(e),
		physics: physics,
		oneWay:  physics.OnGround != nil && platformKind(physics.OnGround.Data) == platform.OneWay,
	}
}

// platformKind reads the kind of the platform entry stored on a resolv object.
func platformKind(data interface{}) platform.Kind {
	entry, ok := data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Platform) {
		return platform.Static
	}
	return components.Platform.Get(entry).Kind
}
