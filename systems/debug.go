package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/leapfrog/components"
	"github.com/automoto/leapfrog/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// DrawDebug outlines every collision object in view and prints the actor's timers.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(ecs)
	if level == nil || !level.Debug {
		return
	}
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < v.offX || obj.X > v.offX+width || obj.Y+obj.H < v.offY || obj.Y > v.offY+height {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvOneWay):
				c = color.RGBA{0, 255, 0, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvHazard):
				c = color.RGBA{255, 0, 0, 255}
			}

			x, y := float32(obj.X-v.offX), float32(obj.Y-v.offY)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Player.Get(player).Controller
	physics := components.Physics.Get(player)
	lines := []string{
		fmt.Sprintf("vel %.0f,%.0f  blocked %+v", physics.SpeedX, physics.SpeedY, physics.Blocked),
		fmt.Sprintf("coyote %v  buffer %v  lock %v", c.Timers.Coyote, c.Timers.JumpBuffer, c.Timers.WallJumpLock),
		fmt.Sprintf("dash %v  cooldown %v  wall %d", c.Timers.Dash, c.Timers.DashCooldown, c.LastWallDirection),
	}
	y := screen.Bounds().Dy() - 12*len(lines)
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, hudMargin, y+12*i, color.White)
	}
}
