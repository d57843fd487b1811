package systems

import (
	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/automoto/leapfrog/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlaps applies the level's trigger rules to the player after it has
// moved: tokens are collected, the goal completes the level, and a hazard or
// a fall below the world sends the player back to spawn.
func UpdateOverlaps(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	for _, token := range overlapping(obj, tags.ResolvToken) {
		collectToken(ecs, level, token)
	}

	for _, goal := range overlapping(obj, tags.ResolvGoal) {
		if reachGoal(ecs, level, playerEntry, goal) {
			return
		}
	}

	if hazards := overlapping(obj, tags.ResolvHazard); len(hazards) > 0 {
		label := ""
		if entry := hazards[0]; entry.HasComponent(components.Hazard) {
			label = components.Hazard.Get(entry).Label
		}
		RespawnPlayer(ecs, messages.ReasonHazard, label)
		return
	}

	if obj.Y > level.Config.Level.Height+level.Config.Level.FallMargin {
		RespawnPlayer(ecs, messages.ReasonOutOfBounds, "")
	}
}

// overlapping returns the entries tagged tag whose bounds intersect obj.
func overlapping(obj *components.ObjectData, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	bounds := obj.Rect()
	var hits []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		if !bounds.Overlaps(rectOf(o)) {
			continue
		}
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			hits = append(hits, entry)
		}
	}
	return hits
}

func collectToken(ecs *ecs.ECS, level *components.LevelData, entry *donburi.Entry) {
	token := components.Token.Get(entry)
	if token.Collected {
		return
	}
	token.Collected = true
	level.Collected++

	obj := components.Object.Get(entry)
	removeFromSpace(obj.Object)

	x, y := obj.Center()
	TokenCollectedEvents.Publish(ecs.World, messages.TokenCollected{
		Label:     token.Label,
		Collected: level.Collected,
		Total:     level.Total,
		Percent:   level.Percent(),
		Ratio:     float64(level.Collected) / float64(level.Total),
		X:         x,
		Y:         y,
	})
}

// reachGoal completes the level on the first overlap and freezes the player.
func reachGoal(ecs *ecs.ECS, level *components.LevelData, playerEntry, entry *donburi.Entry) bool {
	goal := components.Goal.Get(entry)
	if goal.Reached {
		return false
	}
	goal.Reached = true
	level.State = components.LevelComplete

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.AllowGravity = false

	LevelCompleteEvents.Publish(ecs.World, messages.LevelCompleted{
		Collected: level.Collected,
		Total:     level.Total,
		Elapsed:   level.Elapsed,
		Respawns:  level.Respawns,
	})
	return true
}

func removeFromSpace(obj *resolv.Object) {
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
}
