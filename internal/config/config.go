// Package config provides YAML-based configuration loading and difficulty
// presets for the invaders game.
package config

// InvadersConfig contains all tunable parameters of the invaders simulation.
// Distances are world units on a 1280x840 field centered at the origin,
// times are seconds of play clock.
type InvadersConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Paddle      PaddleConfig      `yaml:"paddle"`
	Swarm       SwarmConfig       `yaml:"swarm"`
	Projectiles ProjectileConfig  `yaml:"projectiles"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Pacing      PacingConfig      `yaml:"pacing"`
	Difficulty  DifficultySection `yaml:"difficulty"`
}

// FieldConfig defines the visible play field.
type FieldConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	LoseLine   float64 `yaml:"lose_line"` // swarm bottom edge at or below this loses the run
}

// PaddleConfig defines the player paddle's body and gun.
type PaddleConfig struct {
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Mass        float64 `yaml:"mass"`
	Drag        float64 `yaml:"drag"`
	Force       float64 `yaml:"force"`
	Restitution float64 `yaml:"restitution"` // velocity kept (and reversed) on a wall hit
	ShotDelay   float64 `yaml:"shot_delay"`
}

// SwarmConfig defines the formation and its behavior.
type SwarmConfig struct {
	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	Area         AreaXY  `yaml:"area"`
	MoveInterval float64 `yaml:"move_interval"`
	ShootRange   float64 `yaml:"shoot_range"` // max horizontal distance between shooter and paddle
	FireChance   float64 `yaml:"fire_chance"` // probability a due shot is actually fired
}

// AreaXY is the rectangle the formation is laid out in at spawn.
type AreaXY struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// ProjectileConfig defines shot speeds and spawn offsets.
type ProjectileConfig struct {
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	PaddleOffset float64 `yaml:"paddle_offset"` // spawn height above the paddle center
	SwarmSpeed   float64 `yaml:"swarm_speed"`
}

// ScoringConfig defines the score deltas.
type ScoringConfig struct {
	Kill          int     `yaml:"kill"`
	ShotCost      int     `yaml:"shot_cost"`
	Decay         int     `yaml:"decay"`
	DecayInterval float64 `yaml:"decay_interval"`
}

// PacingConfig defines the swarm shoot threshold curve:
// threshold = numerator / (base + playTime / time_scale).
type PacingConfig struct {
	Numerator float64 `yaml:"numerator"`
	Base      float64 `yaml:"base"`
	TimeScale float64 `yaml:"time_scale"`
	Frozen    bool    `yaml:"frozen"` // keep the threshold at its playTime=0 value
}

// DifficultySection selects the preset applied on top of the loaded values.
type DifficultySection struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyFixed,
}

// ParsePreset converts a user string to a preset. Empty selects normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// IsFixedPreset returns true if the preset disables pacing progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
