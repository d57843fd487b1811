package platform

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidCycle is returned for oscillators that could never complete a leg.
var ErrInvalidCycle = errors.New("moving platform cycle must be positive")

// Oscillator drives a kinematic platform's velocity back and forth between
// two endpoints. Each leg lasts Cycle and is eased with InOutSine; the value
// is a function of elapsed time only.
type Oscillator struct {
	From  math.Vec2
	To    math.Vec2
	Cycle time.Duration

	progress *gween.Tween
}

// NewOscillator sweeps velocity from (fromX,fromY) to (toX,toY) and back.
func NewOscillator(fromX, fromY, toX, toY float64, cycle time.Duration) (*Oscillator, error) {
	if cycle <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCycle, cycle)
	}
	return &Oscillator{
		From:     math.Vec2{X: fromX, Y: fromY},
		To:       math.Vec2{X: toX, Y: toY},
		Cycle:    cycle,
		progress: gween.New(0, 1, float32(cycle.Seconds()), ease.InOutSine),
	}, nil
}

// Phase folds elapsed time onto one leg: 0 at From, Cycle at To.
func (o *Oscillator) Phase(elapsed time.Duration) time.Duration {
	period := 2 * o.Cycle
	p := elapsed % period
	if p < 0 {
		p += period
	}
	if p > o.Cycle {
		p = period - p
	}
	return p
}

// VelocityAt returns the platform velocity after elapsed time.
func (o *Oscillator) VelocityAt(elapsed time.Duration) (vx, vy float64) {
	t, _ := o.progress.Set(float32(o.Phase(elapsed).Seconds()))
	k := float64(t)
	return o.From.X + (o.To.X-o.From.X)*k, o.From.Y + (o.To.Y-o.From.Y)*k
}
