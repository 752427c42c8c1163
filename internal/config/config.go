// Package config provides YAML/TOML game configuration loading and
// difficulty scaling for pocketdino.
package config

import "time"

// DinoConfig contains all tunables of the runner. Units are display pixels,
// pixels per tick and milliseconds.
type DinoConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Display    DisplayConfig    `yaml:"display" toml:"display"`
}

// FieldConfig is the visible playfield.
type FieldConfig struct {
	Width   int `yaml:"width" toml:"width"`
	Height  int `yaml:"height" toml:"height"`
	GroundY int `yaml:"ground_y" toml:"ground_y"` // y of the walking surface
}

// PhysicsConfig defines the integer Euler integration constants.
type PhysicsConfig struct {
	Gravity      int `yaml:"gravity" toml:"gravity"`
	JumpImpulse  int `yaml:"jump_impulse" toml:"jump_impulse"` // negative = up
	MaxFallSpeed int `yaml:"max_fall_speed" toml:"max_fall_speed"`
}

// PlayerConfig defines the player's hitbox. X never changes.
type PlayerConfig struct {
	X            int `yaml:"x" toml:"x"`
	Width        int `yaml:"width" toml:"width"`
	StandHeight  int `yaml:"stand_height" toml:"stand_height"`
	CrouchHeight int `yaml:"crouch_height" toml:"crouch_height"`
}

// ObstacleKindConfig holds per-kind geometry and motion.
type ObstacleKindConfig struct {
	Width     int `yaml:"width" toml:"width"`
	Height    int `yaml:"height" toml:"height"`
	Top       int `yaml:"top,omitempty" toml:"top,omitempty"` // aerial only: fixed band top
	BaseSpeed int `yaml:"base_speed" toml:"base_speed"`
	DespawnX  int `yaml:"despawn_x" toml:"despawn_x"` // replaced once x drops below this
}

// ObstaclesConfig defines the spawner.
type ObstaclesConfig struct {
	Ground            ObstacleKindConfig `yaml:"ground" toml:"ground"`
	Aerial            ObstacleKindConfig `yaml:"aerial" toml:"aerial"`
	SpawnJitter       int                `yaml:"spawn_jitter" toml:"spawn_jitter"`               // extra offset drawn from [0, jitter)
	AerialUnlockScore int                `yaml:"aerial_unlock_score" toml:"aerial_unlock_score"` // aerial obstacles appear from this score
	AerialChance      int                `yaml:"aerial_chance" toml:"aerial_chance"`             // percent
}

// DifficultyConfig defines the score-keyed speed bonus.
type DifficultyConfig struct {
	Enabled   bool `yaml:"enabled" toml:"enabled"`
	Threshold int  `yaml:"threshold" toml:"threshold"` // score at which the bonus becomes 1
	Interval  int  `yaml:"interval" toml:"interval"`   // further points per +1
}

// Ground collision policies.
const (
	GroundPolicyClassic  = "classic"   // bottom-vs-top only, player top unbounded
	GroundPolicyFullBand = "full_band" // same vertical band test as aerial obstacles
)

// CollisionConfig selects hit-test policies.
type CollisionConfig struct {
	GroundPolicy string `yaml:"ground_policy" toml:"ground_policy"`
}

// TimingConfig holds the loop timing.
type TimingConfig struct {
	TickMS       int `yaml:"tick_ms" toml:"tick_ms"`
	FlapMS       int `yaml:"flap_ms" toml:"flap_ms"`
	ResetGuardMS int `yaml:"reset_guard_ms" toml:"reset_guard_ms"`
}

// TickInterval returns the simulation step interval.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// FlapPeriod returns the wing animation period.
func (t TimingConfig) FlapPeriod() time.Duration {
	return time.Duration(t.FlapMS) * time.Millisecond
}

// ResetGuardTicks converts the reset guard into whole ticks, rounding up.
func (t TimingConfig) ResetGuardTicks() int {
	if t.TickMS <= 0 || t.ResetGuardMS <= 0 {
		return 0
	}
	return (t.ResetGuardMS + t.TickMS - 1) / t.TickMS
}

// InputConfig tunes how key-press-only terminals emulate held buttons.
type InputConfig struct {
	JumpHoldMS   int `yaml:"jump_hold_ms" toml:"jump_hold_ms"`
	CrouchHoldMS int `yaml:"crouch_hold_ms" toml:"crouch_hold_ms"`
}

// DisplayConfig selects the panel look.
type DisplayConfig struct {
	Panel string `yaml:"panel" toml:"panel"`
	Scale int    `yaml:"scale" toml:"scale"` // window pixels per display pixel
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty means "keep config".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
