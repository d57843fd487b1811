package main

import (
	"errors"
	"time"

	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/level"
	"github.com/automoto/leapfrog/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagWatch bool
	flagDebug bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the course in a window",
	Long: `Open a window and play the default course.

Controls: arrows/WASD move, space/up jump (double jump, wall jump),
down+jump drops through one-way platforms, shift dashes, R restarts, P pauses, Esc quits.

With --watch the tuning file is reloaded whenever it is saved.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collision boxes and timers")
}

// Game adapts a director to ebiten's fixed-rate loop.
type Game struct {
	director *level.Director
	watcher  *config.Watcher
	log      *logrus.Entry
	held     []config.ActionID
	frame    time.Duration
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.reload()

	g.held = heldActions(g.held)
	g.director.Update(g.frame, g.held...)
	return nil
}

// reload applies any config the watcher has delivered since the last frame.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg := <-g.watcher.Configs:
		if err := g.director.ApplyConfig(cfg); err != nil {
			g.log.WithError(err).Warn("tuning rejected")
			return
		}
		g.log.Info("tuning reloaded")
	case err := <-g.watcher.Errors:
		g.log.WithError(err).Warn("tuning reload failed")
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	cam := g.director.Config().Camera
	return cam.Width, cam.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	d, err := newCourse()
	if err != nil {
		return err
	}
	d.SetDebug(flagDebug)
	log := logger.For("play")

	g := &Game{
		director: d,
		log:      log,
		frame:    time.Second / time.Duration(ebiten.TPS()),
	}

	if flagWatch {
		path := flagConfig
		if path == "" {
			path = config.LocalFile
		}
		w, err := config.Watch(path)
		if err != nil {
			return err
		}
		defer w.Close()
		g.watcher = w
		log.WithField("path", path).Info("watching tuning file")
	}

	cam := d.Config().Camera
	ebiten.SetWindowSize(cam.Width, cam.Height)
	ebiten.SetWindowTitle("leapfrog")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
