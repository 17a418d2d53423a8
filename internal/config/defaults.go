package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hard-coded invaders configuration.
// It matches the embedded YAML and is used when that cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			HalfWidth:  640,
			HalfHeight: 420,
			LoseLine:   -350,
		},
		Paddle: PaddleConfig{
			Y:           -360,
			Width:       80,
			Height:      20,
			Mass:        1,
			Drag:        1,
			Force:       100,
			Restitution: 0.7,
			ShotDelay:   1.5,
		},
		Swarm: SwarmConfig{
			Columns:      11,
			Rows:         6,
			Area:         AreaXY{MinX: -640, MinY: -100, MaxX: 460, MaxY: 400},
			MoveInterval: 1.0,
			ShootRange:   200,
			FireChance:   0.5,
		},
		Projectiles: ProjectileConfig{
			PaddleSpeed:  100,
			PaddleOffset: 20,
			SwarmSpeed:   150,
		},
		Scoring: ScoringConfig{
			Kill:          30,
			ShotCost:      10,
			Decay:         2,
			DecayInterval: 1.0,
		},
		Pacing: PacingConfig{
			Numerator: 9,
			Base:      3,
			TimeScale: 10,
		},
		Difficulty: DifficultySection{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
