package systems

import (
	"github.com/automoto/leapfrog/controller"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Event types published during a frame. Subscribers run when ProcessEvents
// drains the queues at the end of the frame.
var (
	ActorEvents          = events.NewEventType[controller.Event]()
	TokenCollectedEvents = events.NewEventType[messages.TokenCollected]()
	RespawnEvents        = events.NewEventType[messages.Respawned]()
	LevelCompleteEvents  = events.NewEventType[messages.LevelCompleted]()
	BounceEvents         = events.NewEventType[messages.PlatformBounced]()
)

// ProcessEvents delivers everything published this frame.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
