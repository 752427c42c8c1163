package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the stock handheld tuning.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Field: FieldConfig{
			Width:   128,
			Height:  64,
			GroundY: 60,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpImpulse:  -8,
			MaxFallSpeed: 8,
		},
		Player: PlayerConfig{
			X:            10,
			Width:        16,
			StandHeight:  14,
			CrouchHeight: 11,
		},
		Obstacles: ObstaclesConfig{
			Ground: ObstacleKindConfig{
				Width:     8,
				Height:    16,
				BaseSpeed: 4,
				DespawnX:  -10,
			},
			Aerial: ObstacleKindConfig{
				Width:     16,
				Height:    9,
				Top:       40, // standing player is hit, crouching passes under
				BaseSpeed: 5,
				DespawnX:  -20,
			},
			SpawnJitter:       100,
			AerialUnlockScore: 15,
			AerialChance:      40,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			Threshold: 30,
			Interval:  20,
		},
		Collision: CollisionConfig{
			GroundPolicy: GroundPolicyClassic,
		},
		Timing: TimingConfig{
			TickMS:       30,
			FlapMS:       150,
			ResetGuardMS: 250,
		},
		Input: InputConfig{
			JumpHoldMS:   80,
			CrouchHoldMS: 550,
		},
		Display: DisplayConfig{
			Panel: "white",
			Scale: 6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
