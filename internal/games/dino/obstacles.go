package dino

import (
	"github.com/vovakirdan/pocketdino/internal/core"
)

// Kind identifies an obstacle variant.
type Kind int

const (
	KindGround Kind = iota
	KindAerial
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindAerial:
		return "aerial"
	default:
		return "unknown"
	}
}

// Obstacle is a closed sum type: GroundObstacle or AerialObstacle.
// Code that needs per-kind behavior switches on the concrete type.
type Obstacle interface {
	Kind() Kind
	Rect() core.Rect
	obstacle()
}

// GroundObstacle rests on the ground line (a cactus).
type GroundObstacle struct {
	Box core.Rect
}

// AerialObstacle flies in the fixed elevated band (a bird).
type AerialObstacle struct {
	Box core.Rect
}

func (GroundObstacle) Kind() Kind        { return KindGround }
func (o GroundObstacle) Rect() core.Rect { return o.Box }
func (GroundObstacle) obstacle()         {}

func (AerialObstacle) Kind() Kind        { return KindAerial }
func (o AerialObstacle) Rect() core.Rect { return o.Box }
func (AerialObstacle) obstacle()         {}
