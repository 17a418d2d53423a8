package config

// ShootThreshold returns the minimum seconds between swarm shot attempts
// at the given play time. The threshold shrinks as the run goes on.
func (p PacingConfig) ShootThreshold(playTime float64) float64 {
	if p.Frozen || p.TimeScale <= 0 {
		playTime = 0
	}
	denom := p.Base
	if p.TimeScale > 0 {
		denom += playTime / p.TimeScale
	}
	if denom <= 0 {
		return p.Numerator
	}
	return p.Numerator / denom
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Values are scaled relative to what was loaded so custom files keep their shape.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Pacing.Frozen = IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Pacing.Numerator *= 4.0 / 3.0
		cfg.Scoring.ShotCost /= 2
		cfg.Projectiles.SwarmSpeed *= 0.8
	case DifficultyHard:
		cfg.Pacing.Numerator *= 2.0 / 3.0
		cfg.Projectiles.SwarmSpeed *= 1.4
		cfg.Paddle.Width = clampF(cfg.Paddle.Width*0.75, 20, cfg.Paddle.Width)
	}
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
