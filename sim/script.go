// Package sim drives a level headlessly from a scripted sequence of inputs.
package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/automoto/leapfrog/config"
	"gopkg.in/yaml.v3"
)

// DefaultFrame is used when a script does not set one.
const DefaultFrame = time.Second / 60

var (
	ErrEmptyScript   = errors.New("script has no steps")
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidStep   = errors.New("invalid step")
)

// Step holds a set of actions for a number of frames.
type Step struct {
	Frames int      `yaml:"frames"`
	Hold   []string `yaml:"hold"`
}

// Script is a recorded run: a frame length and the inputs for each stretch.
//
//	frame: 16ms
//	steps:
//	  - {frames: 30, hold: [right]}
//	  - {frames: 1, hold: [right, jump]}
type Script struct {
	Name  string        `yaml:"name"`
	Frame time.Duration `yaml:"frame"`
	Steps []Step        `yaml:"steps"`

	// StopOnComplete ends the run on the frame the goal is reached.
	StopOnComplete bool `yaml:"stop_on_complete"`
}

// LoadScript reads and validates a YAML script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Frame == 0 {
		s.Frame = DefaultFrame
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks frame counts and action names.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	if s.Frame < 0 {
		return fmt.Errorf("%w: negative frame %v", ErrInvalidStep, s.Frame)
	}
	for i, step := range s.Steps {
		if step.Frames <= 0 {
			return fmt.Errorf("%w: step %d has %d frames", ErrInvalidStep, i, step.Frames)
		}
		if _, err := parseActions(step.Hold); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Frames is the total length of the script.
func (s *Script) Frames() int {
	n := 0
	for _, step := range s.Steps {
		n += step.Frames
	}
	return n
}

// Duration is the simulated time the script covers.
func (s *Script) Duration() time.Duration {
	return time.Duration(s.Frames()) * s.Frame
}

// inputs expands the script into one action set per frame.
func (s *Script) inputs() [][]config.ActionID {
	out := make([][]config.ActionID, 0, s.Frames())
	for _, step := range s.Steps {
		held, _ := parseActions(step.Hold)
		for i := 0; i < step.Frames; i++ {
			out = append(out, held)
		}
	}
	return out
}

func parseActions(names []string) ([]config.ActionID, error) {
	held := make([]config.ActionID, 0, len(names))
	for _, name := range names {
		a, ok := config.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownAction, name)
		}
		held = append(held, a)
	}
	return held, nil
}
