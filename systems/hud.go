package systems

import (
	"fmt"

	"github.com/automoto/leapfrog/components"
	cfg "github.com/automoto/leapfrog/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const hudMargin = 20

// DrawHUD renders score progress and the controls line in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(e)
	if level == nil {
		return
	}
	progress := fmt.Sprintf("PROGRESS: %d%%  (%d/%d)", level.Percent(), level.Collected, level.Total)
	text.Draw(screen, progress, basicfont.Face7x13, hudMargin, hudMargin+10, cfg.Red)
	text.Draw(screen, "[SPACE] jump x2  [SHIFT] dash  [DOWN+SPACE] drop  [R] restart", basicfont.Face7x13, hudMargin, hudMargin+30, hudAccent)

	if player, ok := components.Player.First(e.World); ok {
		c := components.Player.Get(player).Controller
		state := fmt.Sprintf("%s  jumps:%d", c.State, c.JumpsRemaining)
		text.Draw(screen, state, basicfont.Face7x13, hudMargin, hudMargin+50, cfg.Teal)
	}
}
