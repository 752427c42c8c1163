package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Source names where a config was loaded from.
const SourceEmbedded = "embedded"

// Load loads the runner configuration.
// Search order: customPath -> ~/.pocketdino/dino.{yaml,toml} -> ./configs/dino.{yaml,toml} -> embedded default.
// A broken custom file is an error; broken files found by the search are skipped.
// The returned source is the file that was used.
func Load(customPath string) (DinoConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, Validate(cfg)
	}

	for _, candidate := range searchPaths() {
		cfg, err := loadFile(candidate)
		if err != nil {
			continue
		}
		if Validate(cfg) != nil {
			continue
		}
		return cfg, candidate, nil
	}

	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(defaultDinoYAML, &cfg); err != nil {
		return DefaultDinoConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile decodes a single file on top of the defaults, so partial files
// only override what they mention.
func loadFile(path string) (DinoConfig, error) {
	cfg := DefaultDinoConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *DinoConfig) error {
	if isTOML(path) {
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".pocketdino")
		paths = append(paths, filepath.Join(dir, "dino.yaml"), filepath.Join(dir, "dino.toml"))
	}
	return append(paths, filepath.Join("configs", "dino.yaml"), filepath.Join("configs", "dino.toml"))
}

// Encode writes cfg in the given format ("yaml" or "toml").
func Encode(w io.Writer, cfg DinoConfig, format string) error {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// Validate rejects configurations the simulation cannot honor.
func Validate(cfg DinoConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	f, p, o := cfg.Field, cfg.Player, cfg.Obstacles
	check(f.Width > 0 && f.Height > 0, "field must have positive size, got %dx%d", f.Width, f.Height)
	check(f.GroundY > 0 && f.GroundY <= f.Height, "ground_y %d outside field height %d", f.GroundY, f.Height)
	check(p.Width > 0, "player width must be positive")
	check(p.CrouchHeight > 0 && p.CrouchHeight < p.StandHeight,
		"crouch_height %d must be positive and below stand_height %d", p.CrouchHeight, p.StandHeight)
	check(p.StandHeight <= f.GroundY, "stand_height %d does not fit above ground_y %d", p.StandHeight, f.GroundY)
	check(cfg.Physics.Gravity > 0, "gravity must be positive")
	check(cfg.Physics.JumpImpulse < 0, "jump_impulse must be negative (up)")
	check(cfg.Physics.MaxFallSpeed > 0, "max_fall_speed must be positive")
	check(o.Ground.Width > 0 && o.Ground.Height > 0, "ground obstacle must have positive size")
	check(o.Aerial.Width > 0 && o.Aerial.Height > 0, "aerial obstacle must have positive size")
	check(o.Ground.BaseSpeed > 0 && o.Aerial.BaseSpeed > 0, "obstacle base speeds must be positive")
	check(o.SpawnJitter > 0, "spawn_jitter must be positive")
	check(o.AerialChance >= 0 && o.AerialChance <= 100, "aerial_chance %d outside [0,100]", o.AerialChance)

	// The aerial band must hit a standing player and clear a crouching one.
	aerialBottom := o.Aerial.Top + o.Aerial.Height
	check(aerialBottom > f.GroundY-p.StandHeight && aerialBottom <= f.GroundY-p.CrouchHeight,
		"aerial band bottom %d must lie in (%d, %d]", aerialBottom, f.GroundY-p.StandHeight, f.GroundY-p.CrouchHeight)

	check(cfg.Collision.GroundPolicy == GroundPolicyClassic || cfg.Collision.GroundPolicy == GroundPolicyFullBand,
		"unknown ground_policy %q", cfg.Collision.GroundPolicy)
	check(cfg.Timing.TickMS > 0, "tick_ms must be positive")
	check(cfg.Timing.FlapMS >= 0 && cfg.Timing.ResetGuardMS >= 0, "timings must not be negative")

	return errors.Join(errs...)
}
