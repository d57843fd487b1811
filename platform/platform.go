// Package platform holds the per-kind collision rules of level platforms.
package platform

import (
	"fmt"

	"github.com/automoto/leapfrog/config"
)

// Kind is fixed when a platform is created.
type Kind int

const (
	Static Kind = iota
	OneWay
	Bouncy
	Moving
)

var kindNames = [...]string{
	Static: "static",
	OneWay: "one-way",
	Bouncy: "bouncy",
	Moving: "moving",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) Valid() bool {
	return k >= Static && k <= Moving
}

// TwoSided reports whether the kind blocks from every side. One-way
// platforms only ever stop a falling actor.
func (k Kind) TwoSided() bool {
	return k != OneWay
}

// Contact describes an actor about to land on a platform.
type Contact struct {
	ActorBottom float64 // lower edge before the step that produced the contact
	ActorVelY   float64
	PlatformTop float64
	DropThrough bool // the actor asked to fall through this platform
}

// Rules evaluates the admission predicate and bounce override for each kind.
type Rules struct {
	OneWayEpsilon float64
	BounceImpulse float64
}

func NewRules(cfg *config.PlatformConfig) Rules {
	return Rules{
		OneWayEpsilon: cfg.OneWayEpsilon,
		BounceImpulse: cfg.BounceImpulse,
	}
}

// Admit decides whether a downward contact is resolved as a collision.
func (r Rules) Admit(kind Kind, c Contact) bool {
	switch kind {
	case OneWay:
		return !c.DropThrough &&
			c.ActorVelY >= 0 &&
			c.ActorBottom <= c.PlatformTop+r.OneWayEpsilon
	case Static, Bouncy, Moving:
		return true
	}
	return false
}

// Bounce returns the actor's vertical velocity after an admitted contact.
// Only bouncy platforms hit from above change it.
func (r Rules) Bounce(kind Kind, vy float64) (float64, bool) {
	if kind != Bouncy || vy <= 0 {
		return vy, false
	}
	return r.BounceImpulse, true
}
