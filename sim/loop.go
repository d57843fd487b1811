package sim

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/leapfrog/config"
	"github.com/automoto/leapfrog/level"
	"github.com/automoto/leapfrog/shared/messages"
	"github.com/sirupsen/logrus"
)

// Result is what happened during one run.
type Result struct {
	Frames    int
	Tokens    []messages.TokenCollected
	Respawns  []messages.Respawned
	Completed *messages.LevelCompleted
	Final     level.Snapshot
}

// Runner feeds a script into a director, either as fast as possible or paced
// by a ticker at the script's frame rate.
type Runner struct {
	director *level.Director
	log      *logrus.Entry

	result   Result
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewRunner subscribes to d's events. Use one runner per director.
func NewRunner(d *level.Director, log *logrus.Entry) *Runner {
	r := &Runner{
		director: d,
		log:      log,
		stopChan: make(chan struct{}),
	}

	d.OnTokenCollected(func(ev messages.TokenCollected) {
		r.result.Tokens = append(r.result.Tokens, ev)
		r.log.WithFields(logrus.Fields{
			"frame":   r.result.Frames,
			"label":   ev.Label,
			"percent": ev.Percent,
		}).Info("token collected")
	})
	d.OnRespawn(func(ev messages.Respawned) {
		r.result.Respawns = append(r.result.Respawns, ev)
		r.log.WithFields(logrus.Fields{
			"frame":  r.result.Frames,
			"reason": ev.Reason,
			"hazard": ev.Hazard,
		}).Info("respawned")
	})
	d.OnComplete(func(ev messages.LevelCompleted) {
		done := ev
		r.result.Completed = &done
		r.log.WithFields(logrus.Fields{
			"frame":   r.result.Frames,
			"elapsed": ev.Elapsed,
		}).Info("goal reached")
	})
	return r
}

// Run plays s without pacing. It returns early if ctx is cancelled or Stop is called.
func (r *Runner) Run(ctx context.Context, s *Script) (Result, error) {
	return r.run(ctx, s, nil)
}

// RunRealtime plays s at one frame per tick of a wall-clock ticker.
func (r *Runner) RunRealtime(ctx context.Context, s *Script) (Result, error) {
	ticker := time.NewTicker(frameOf(s))
	defer ticker.Stop()
	return r.run(ctx, s, ticker.C)
}

// Stop ends a run in progress. It is safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
}

func (r *Runner) run(ctx context.Context, s *Script, tick <-chan time.Time) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	r.result = Result{}
	frame := frameOf(s)

	r.log.WithFields(logrus.Fields{
		"script": s.Name,
		"frames": s.Frames(),
		"frame":  frame,
	}).Info("simulation started")

	var err error
loop:
	for _, held := range s.inputs() {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break loop
		case <-r.stopChan:
			break loop
		default:
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				break loop
			case <-r.stopChan:
				break loop
			case <-tick:
			}
		}

		if r.step(frame, held) && s.StopOnComplete {
			break
		}
	}

	r.result.Final = r.director.Snapshot()
	r.log.WithFields(logrus.Fields{
		"frames":    r.result.Frames,
		"collected": r.result.Final.Collected,
		"respawns":  r.result.Final.Respawns,
		"complete":  r.result.Final.Complete(),
	}).Info("simulation finished")
	return r.result, err
}

// step advances one frame and reports whether the level is complete.
func (r *Runner) step(frame time.Duration, held []config.ActionID) bool {
	r.result.Frames++
	r.director.Update(frame, held...)
	return r.result.Completed != nil
}

func frameOf(s *Script) time.Duration {
	if s.Frame <= 0 {
		return DefaultFrame
	}
	return s.Frame
}
