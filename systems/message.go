package systems

import (
	"strings"

	"github.com/automoto/leapfrog/components"
	cfg "github.com/automoto/leapfrog/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const signLineHeight = 16

// DrawSigns renders layout text in world space, one line per newline.
func DrawSigns(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Sign.Each(ecs.World, func(entry *donburi.Entry) {
		sign := components.Sign.Get(entry)
		clr := cfg.Sandy
		if sign.Small {
			clr = cfg.Teal
		}
		for i, line := range strings.Split(sign.Text, "\n") {
			v.text(screen, line, sign.X, sign.Y+float64(i*signLineHeight), clr)
		}
	})
}
