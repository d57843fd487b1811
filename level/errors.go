package level

import (
	"errors"

	"github.com/automoto/leapfrog/platform"
)

// Construction errors. Build calls wrap them with the offending entry.
var (
	ErrInvalidSize  = errors.New("size must be positive")
	ErrInvalidCycle = platform.ErrInvalidCycle
	ErrUnknownKind  = errors.New("unknown platform kind")
	ErrGoalExists   = errors.New("level already has a goal")
	ErrNoSpawn      = errors.New("level has no spawn point")
)
