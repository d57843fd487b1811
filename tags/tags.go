package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Moving   = donburi.NewTag().SetName("Moving")
	Token    = donburi.NewTag().SetName("Token")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Goal     = donburi.NewTag().SetName("Goal")
	Effect   = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"    // blocks from every side
	ResolvOneWay = "platform" // blocks a falling actor from above only
	ResolvPlayer = "player"
	ResolvToken  = "token"
	ResolvHazard = "hazard"
	ResolvGoal   = "goal"
	ResolvBouncy = "bouncy"
	ResolvMoving = "moving"
)
