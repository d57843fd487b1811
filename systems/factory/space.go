package factory

import (
	"math"

	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace sizes the collision space to the level plus a band below it,
// so bodies that fall out can still be tracked until they are respawned.
func CreateSpace(ecs *ecs.ECS, width, height, margin float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(math.Ceil(width)),
		int(math.Ceil(height+2*margin)),
		cellSize, cellSize,
	)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives entry a rectangular collision object registered in the space.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, r gamemath.Rect, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
