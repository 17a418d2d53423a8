package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded defaults differ from DefaultInvadersConfig:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadInvadersFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadInvadersCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("paddle:\n  force: 250\nscoring:\n  kill: 50\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.Paddle.Force != 250 || cfg.Scoring.Kill != 50 {
		t.Errorf("overrides not applied: force=%v kill=%v", cfg.Paddle.Force, cfg.Scoring.Kill)
	}
	if cfg.Paddle.Mass != 1 || cfg.Swarm.Columns != 11 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadInvadersLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "invaders.yaml"), []byte("swarm:\n  rows: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.Swarm.Rows != 3 {
		t.Errorf("rows = %d, expected 3 from ./configs", cfg.Swarm.Rows)
	}
}

func TestLoadInvadersCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("paddle: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(broken); err == nil {
		t.Error("unparsable custom file should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("paddle:\n  mass: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(invalid); err == nil {
		t.Error("invalid custom file should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"zero mass", func(c *InvadersConfig) { c.Paddle.Mass = 0 }},
		{"negative drag", func(c *InvadersConfig) { c.Paddle.Drag = -1 }},
		{"paddle too wide", func(c *InvadersConfig) { c.Paddle.Width = 1280 }},
		{"restitution above one", func(c *InvadersConfig) { c.Paddle.Restitution = 1.5 }},
		{"no columns", func(c *InvadersConfig) { c.Swarm.Columns = 0 }},
		{"empty area", func(c *InvadersConfig) { c.Swarm.Area.MaxX = c.Swarm.Area.MinX }},
		{"zero move interval", func(c *InvadersConfig) { c.Swarm.MoveInterval = 0 }},
		{"fire chance above one", func(c *InvadersConfig) { c.Swarm.FireChance = 2 }},
		{"zero decay interval", func(c *InvadersConfig) { c.Scoring.DecayInterval = 0 }},
		{"negative kill", func(c *InvadersConfig) { c.Scoring.Kill = -30 }},
		{"zero pacing base", func(c *InvadersConfig) { c.Pacing.Base = 0 }},
		{"unknown preset", func(c *InvadersConfig) { c.Difficulty.Preset = "nightmare" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestShootThreshold(t *testing.T) {
	p := DefaultInvadersConfig().Pacing

	tests := []struct {
		playTime float64
		expected float64
	}{
		{0, 3.0},
		{27, 2.25},
		{30, 1.5},
		{60, 1.0},
	}
	for _, tt := range tests {
		if got := p.ShootThreshold(tt.playTime); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("ShootThreshold(%v) = %v, expected %v", tt.playTime, got, tt.expected)
		}
	}

	// Threshold never grows with play time
	prev := p.ShootThreshold(0)
	for ts := 1.0; ts < 600; ts += 7 {
		cur := p.ShootThreshold(ts)
		if cur > prev {
			t.Fatalf("threshold grew at t=%v: %v > %v", ts, cur, prev)
		}
		prev = cur
	}
}

func TestShootThresholdFrozen(t *testing.T) {
	p := DefaultInvadersConfig().Pacing
	p.Frozen = true

	if got := p.ShootThreshold(120); got != 3.0 {
		t.Errorf("frozen threshold = %v, expected 3.0", got)
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	base := DefaultInvadersConfig()

	normal := base
	ApplyInvadersPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the defaults")
	}

	easy := base
	ApplyInvadersPreset(&easy, DifficultyEasy)
	if easy.Pacing.ShootThreshold(0) <= base.Pacing.ShootThreshold(0) {
		t.Error("easy should slow swarm shots")
	}
	if easy.Scoring.ShotCost != base.Scoring.ShotCost/2 {
		t.Errorf("easy shot cost = %d, expected %d", easy.Scoring.ShotCost, base.Scoring.ShotCost/2)
	}

	hard := base
	ApplyInvadersPreset(&hard, DifficultyHard)
	if hard.Pacing.ShootThreshold(0) >= base.Pacing.ShootThreshold(0) {
		t.Error("hard should speed up swarm shots")
	}
	if hard.Paddle.Width >= base.Paddle.Width {
		t.Error("hard should narrow the paddle")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should validate: %v", err)
	}

	fixed := base
	ApplyInvadersPreset(&fixed, DifficultyFixed)
	if !fixed.Pacing.Frozen {
		t.Error("fixed preset should freeze pacing")
	}
	if fixed.Difficulty.Preset != DifficultyFixed {
		t.Errorf("preset = %q, expected fixed", fixed.Difficulty.Preset)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tt.in, got, ok, tt.expected, tt.ok)
		}
	}
}
