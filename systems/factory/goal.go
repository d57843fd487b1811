package factory

import (
	"github.com/automoto/leapfrog/archetypes"
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/gamemath"
	"github.com/automoto/leapfrog/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoal creates the goal trigger region
func CreateGoal(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)
	components.Goal.SetValue(goal, components.GoalData{Scale: 1})
	attachObject(ecs, goal, r, tags.ResolvGoal)
	return goal
}
