package config

// SpeedScaling computes the score-keyed obstacle speed bonus.
// The curve is a step function of cumulative score only, so it is
// independent of frame rate and wall-clock time.
type SpeedScaling struct {
	cfg DifficultyConfig
}

// NewSpeedScaling creates a scaling from config.
func NewSpeedScaling(cfg DifficultyConfig) *SpeedScaling {
	return &SpeedScaling{cfg: cfg}
}

// IsEnabled returns whether the bonus can ever be non-zero.
func (s *SpeedScaling) IsEnabled() bool {
	return s.cfg.Enabled
}

// Bonus returns the extra pixels per tick at the given score:
// 0 below the threshold, then 1 + (score-threshold)/interval.
func (s *SpeedScaling) Bonus(score int) int {
	if !s.cfg.Enabled || score < s.cfg.Threshold {
		return 0
	}
	interval := s.cfg.Interval
	if interval <= 0 {
		return 1
	}
	return 1 + (score-s.cfg.Threshold)/interval
}

// ApplyPreset modifies the difficulty section for a preset.
// Normal restores the stock curve.
func ApplyPreset(cfg *DinoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty = DifficultyConfig{Enabled: true, Threshold: 45, Interval: 30}
	case DifficultyNormal:
		cfg.Difficulty = DifficultyConfig{Enabled: true, Threshold: 30, Interval: 20}
	case DifficultyHard:
		cfg.Difficulty = DifficultyConfig{Enabled: true, Threshold: 15, Interval: 10}
	}
}
