package dino

import (
	"fmt"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
)

// Rand supplies uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawner chooses obstacle kinds and positions and moves the active
// obstacle at a score-derived speed.
type Spawner struct {
	field   config.FieldConfig
	cfg     config.ObstaclesConfig
	scaling *config.SpeedScaling
	rng     Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.DinoConfig, rng Rand) *Spawner {
	return &Spawner{
		field:   cfg.Field,
		cfg:     cfg.Obstacles,
		scaling: config.NewSpeedScaling(cfg.Difficulty),
		rng:     rng,
	}
}

// Initial returns the obstacle a fresh run starts with: a ground obstacle
// exactly at the right edge, no randomness involved.
func (s *Spawner) Initial() Obstacle {
	return s.ground(s.field.Width)
}

// Spawn creates the next obstacle for the given score.
//
// Below the unlock score the result is always a ground obstacle and no kind
// is drawn. From the unlock score on, a percentage is drawn and values below
// the aerial chance produce a bird. The x position is the right edge plus a
// random extra offset in [0, jitter).
func (s *Spawner) Spawn(score int) Obstacle {
	aerial := score >= s.cfg.AerialUnlockScore && s.rng.Intn(100) < s.cfg.AerialChance
	x := s.field.Width + s.rng.Intn(s.cfg.SpawnJitter)

	if aerial {
		return s.aerial(x)
	}
	return s.ground(x)
}

func (s *Spawner) ground(x int) GroundObstacle {
	g := s.cfg.Ground
	return GroundObstacle{Box: core.NewRect(x, s.field.GroundY-g.Height, g.Width, g.Height)}
}

func (s *Spawner) aerial(x int) AerialObstacle {
	a := s.cfg.Aerial
	return AerialObstacle{Box: core.NewRect(x, a.Top, a.Width, a.Height)}
}

// SpeedBonus returns the score-keyed extra speed shared by both kinds.
func (s *Spawner) SpeedBonus(score int) int {
	return s.scaling.Bonus(score)
}

// Speed returns how many pixels o moves left per tick at score.
func (s *Spawner) Speed(o Obstacle, score int) int {
	return s.kindConfig(o).BaseSpeed + s.SpeedBonus(score)
}

// Advance moves o one tick to the left. passed reports that it crossed the
// despawn boundary for its kind and should be replaced.
func (s *Spawner) Advance(o Obstacle, score int) (moved Obstacle, passed bool) {
	dx := -s.Speed(o, score)

	switch o := o.(type) {
	case GroundObstacle:
		o.Box = o.Box.Translate(dx, 0)
		moved = o
	case AerialObstacle:
		o.Box = o.Box.Translate(dx, 0)
		moved = o
	default:
		panic(fmt.Sprintf("dino: unhandled obstacle type %T", o))
	}

	return moved, moved.Rect().X < s.kindConfig(moved).DespawnX
}

func (s *Spawner) kindConfig(o Obstacle) config.ObstacleKindConfig {
	if o.Kind() == KindAerial {
		return s.cfg.Aerial
	}
	return s.cfg.Ground
}
