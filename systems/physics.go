package systems

import (
	"math"

	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and horizontal drag into velocity.
// Positions are moved afterwards by UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	cfg := level.Config.Physics
	dt := level.Delta.Seconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, cfg.DragX*dt)

		if physics.AllowGravity {
			physics.SpeedY += cfg.Gravity * dt
		}
		physics.SpeedY = math.Min(physics.SpeedY, cfg.MaxFallSpeed)
	})
}
