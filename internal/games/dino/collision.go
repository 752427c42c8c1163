package dino

import (
	"fmt"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
)

// Detector is the shape-aware hit test. The zero value uses the classic
// ground policy.
type Detector struct {
	groundFullBand bool
}

// NewDetector creates a detector for the configured policies.
func NewDetector(cfg config.CollisionConfig) Detector {
	return Detector{groundFullBand: cfg.GroundPolicy == config.GroundPolicyFullBand}
}

// Collides tests the player's hitbox against the active obstacle.
//
// Both kinds use the same inclusive horizontal test. Ground obstacles then
// only check that the player's feet reached the obstacle's top, so the
// player's top is never bounded: under the classic policy only clearing
// the obstacle horizontally avoids a hit. Aerial obstacles check the full
// vertical band, which is what lets a crouching player pass underneath.
func (d Detector) Collides(player core.Rect, o Obstacle) bool {
	switch o := o.(type) {
	case GroundObstacle:
		if !player.TouchesX(o.Box) {
			return false
		}
		if d.groundFullBand {
			return player.OverlapsY(o.Box)
		}
		return player.Bottom() >= o.Box.Y
	case AerialObstacle:
		return player.TouchesX(o.Box) && player.OverlapsY(o.Box)
	default:
		panic(fmt.Sprintf("dino: unhandled obstacle type %T", o))
	}
}
