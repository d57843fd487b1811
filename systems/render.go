package systems

import (
	"image/color"
	"math"

	"github.com/automoto/leapfrog/components"
	cfg "github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/platform"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // basicfont is a font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	pixel  *ebiten.Image

	oneWayColor = color.RGBA{R: 42, G: 157, B: 143, A: 180}
	hudAccent   = color.RGBA{R: 244, G: 162, B: 97, A: 255}
)

// view is the world-to-screen offset for the current frame.
type view struct {
	offX, offY float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	c := components.Camera.Get(cameraEntry).View()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return view{offX: c.X - float64(w)/2, offY: c.Y - float64(h)/2}, true
}

func (v view) rect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen, float32(x-v.offX), float32(y-v.offY), float32(w), float32(h), clr, false)
}

// box draws a w*h box centred on (cx, cy), scaled and rotated about its centre.
func (v view) box(screen *ebiten.Image, cx, cy, w, h, sx, sy, degrees float64, clr color.Color) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-0.5, -0.5)
	drawOp.GeoM.Scale(w*sx, h*sy)
	drawOp.GeoM.Rotate(degrees * math.Pi / 180)
	drawOp.GeoM.Translate(cx-v.offX, cy-v.offY)
	drawOp.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel, drawOp)
}

func (v view) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, int(x-v.offX), int(y-v.offY), clr)
}

// DrawWorld renders platforms, triggers, the player and cosmetic effects.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		o := components.Object.Get(entry)
		// Squash keeps the top edge in place.
		h := o.H * p.ScaleY
		v.rect(screen, o.X, o.Y, o.W, h, platformColor(p.Kind))
	})

	components.Token.Each(e.World, func(entry *donburi.Entry) {
		if components.Token.Get(entry).Collected {
			return
		}
		cx, cy := components.Object.Get(entry).Center()
		r := components.Object.Get(entry).W / 2
		vector.DrawFilledCircle(screen, float32(cx-v.offX), float32(cy-v.offY), float32(r), cfg.Teal, true)
	})

	components.Hazard.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hazard.Get(entry)
		o := components.Object.Get(entry)
		cx, cy := o.Center()
		v.box(screen, cx, cy, o.W, o.H, 1, 1, h.Angle, cfg.Red)
		v.text(screen, h.Label, o.X, o.Y+o.H+14, cfg.Red)
	})

	components.Goal.Each(e.World, func(entry *donburi.Entry) {
		g := components.Goal.Get(entry)
		o := components.Object.Get(entry)
		cx, cy := o.Center()
		v.box(screen, cx, cy, o.W, o.H, g.Scale, g.Scale, 0, hudAccent)
	})

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		pose := components.Player.Get(entry).Controller.Pose
		o := components.Object.Get(entry)
		cx, cy := o.Center()
		v.box(screen, cx, cy, o.W, o.H, pose.ScaleX, pose.ScaleY, pose.Angle, cfg.Red)
	})

	drawParticles(e, screen, v)

	components.FloatingLabel.Each(e.World, func(entry *donburi.Entry) {
		l := components.FloatingLabel.Get(entry)
		o := components.Object.Get(entry)
		c := color.NRGBA{R: cfg.Teal.R, G: cfg.Teal.G, B: cfg.Teal.B, A: uint8(255 * clamp01(l.Alpha))}
		v.text(screen, l.Text, o.X, o.Y, c)
	})
}

// drawParticles spreads each burst on a ring that grows and fades with age.
func drawParticles(e *ecs.ECS, screen *ebiten.Image, v view) {
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Lifespan <= 0 || p.Count <= 0 {
			return
		}
		o := components.Object.Get(entry)
		k := clamp01(float64(p.Age) / float64(p.Lifespan))
		radius := 4 + 40*k
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(220 * (1 - k))}
		for i := 0; i < p.Count; i++ {
			a := 2 * math.Pi * float64(i) / float64(p.Count)
			v.box(screen, o.X+math.Cos(a)*radius, o.Y+math.Sin(a)*radius, 4, 4, 1-k, 1-k, 0, c)
		}
	})
}

// DrawTint renders the camera flash or fade overlay.
func DrawTint(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || !cameraEntry.HasComponent(components.Tint) {
		return
	}
	t := components.Tint.Get(cameraEntry)
	c := color.NRGBA{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: uint8(255 * clamp01(t.Current()))}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

func platformColor(k platform.Kind) color.Color {
	switch k {
	case platform.OneWay:
		return oneWayColor
	case platform.Bouncy:
		return cfg.Sandy
	case platform.Moving:
		return cfg.Teal
	}
	return cfg.Navy
}

func drawCenteredText(screen *ebiten.Image, s string, y float32, clr color.Color) {
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	x := (screen.Bounds().Dx() - w) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, int(y), clr)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
