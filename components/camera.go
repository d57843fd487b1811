package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // centre of the view in world space
	Shake    math.Vec2 // offset added while a shake is running
}

// View returns the centre the renderer should use.
func (c *CameraData) View() math.Vec2 {
	return c.Position.Add(c.Shake)
}

var Camera = donburi.NewComponentType[CameraData]()
