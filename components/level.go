package components

import (
	"math"
	"time"

	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/platform"
	"github.com/yohamta/donburi"
)

// LevelState is in-progress until the goal is reached; complete is terminal.
type LevelState int

const (
	LevelInProgress LevelState = iota
	LevelComplete
)

func (s LevelState) String() string {
	if s == LevelComplete {
		return "complete"
	}
	return "in-progress"
}

type LevelData struct {
	Config *config.Config
	Rules  platform.Rules

	State     LevelState
	Collected int
	Total     int
	Respawns  int
	Debug     bool // draw collision boxes and timers

	Delta   time.Duration // length of the frame being simulated
	Clock   time.Duration // time since the level was built
	Elapsed time.Duration // time spent in progress
}

// Percent is the rounded share of tokens collected. It only reads 100 once
// every token is taken.
func (l *LevelData) Percent() int {
	if l.Total == 0 {
		return 0
	}
	p := int(math.Round(float64(l.Collected) * 100 / float64(l.Total)))
	if p >= 100 && l.Collected < l.Total {
		p = 99
	}
	return p
}

var Level = donburi.NewComponentType[LevelData]()
