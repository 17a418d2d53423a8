package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeInvaders(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return InvadersConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "invaders.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (InvadersConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, false
	}
	cfg, err := decodeInvaders(data)
	if err != nil || cfg.Validate() != nil {
		return InvadersConfig{}, false
	}
	return cfg, true
}

func decodeInvaders(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports the first value that would make the simulation misbehave.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Field.HalfWidth <= 0 || c.Field.HalfHeight <= 0:
		return errors.New("field: half_width and half_height must be positive")
	case c.Paddle.Mass <= 0:
		return errors.New("paddle: mass must be positive")
	case c.Paddle.Drag < 0:
		return errors.New("paddle: drag must not be negative")
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return errors.New("paddle: width and height must be positive")
	case c.Paddle.Width >= 2*c.Field.HalfWidth:
		return errors.New("paddle: wider than the field")
	case c.Paddle.Restitution < 0 || c.Paddle.Restitution > 1:
		return errors.New("paddle: restitution must be within [0, 1]")
	case c.Paddle.ShotDelay < 0:
		return errors.New("paddle: shot_delay must not be negative")
	case c.Swarm.Columns < 1 || c.Swarm.Rows < 1:
		return errors.New("swarm: needs at least one column and one row")
	case c.Swarm.Area.MaxX <= c.Swarm.Area.MinX || c.Swarm.Area.MaxY <= c.Swarm.Area.MinY:
		return errors.New("swarm: area is empty")
	case c.Swarm.MoveInterval <= 0:
		return errors.New("swarm: move_interval must be positive")
	case c.Swarm.FireChance < 0 || c.Swarm.FireChance > 1:
		return errors.New("swarm: fire_chance must be within [0, 1]")
	case c.Scoring.DecayInterval <= 0:
		return errors.New("scoring: decay_interval must be positive")
	case c.Scoring.Kill < 0 || c.Scoring.ShotCost < 0 || c.Scoring.Decay < 0:
		return errors.New("scoring: deltas must not be negative")
	case c.Pacing.Numerator <= 0 || c.Pacing.Base <= 0:
		return errors.New("pacing: numerator and base must be positive")
	}
	if c.Difficulty.Preset != "" {
		if _, ok := ParsePreset(string(c.Difficulty.Preset)); !ok {
			return fmt.Errorf("difficulty: unknown preset %q", c.Difficulty.Preset)
		}
	}
	return nil
}
