package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScoresTopAndAll(t *testing.T) {
	store := openTestStore(t)
	for i := range 12 {
		store.SaveRound(storage.Round{GameID: "invaders:hard", Player: "ada", Score: (i + 1) * 100, PlayTime: 60})
	}

	var top bytes.Buffer
	if err := printScores(&top, store, config.DifficultyHard, false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if strings.Count(top.String(), "ada") != 10 {
		t.Errorf("top listing should have 10 rows:\n%s", top.String())
	}
	if !strings.Contains(top.String(), "Best: 1200  Rounds: 12") {
		t.Errorf("missing stats line:\n%s", top.String())
	}

	var all bytes.Buffer
	if err := printScores(&all, store, config.DifficultyHard, true); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if strings.Count(all.String(), "ada") != 12 {
		t.Errorf("--all should list every round:\n%s", all.String())
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveRound(storage.Round{GameID: "invaders:easy", Score: 100})
	store.SaveRound(storage.Round{GameID: "invaders:normal", Score: 200})

	var out bytes.Buffer
	if err := clearScores(&out, store, config.DifficultyEasy); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "invaders:easy") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	printScores(&out, store, config.DifficultyEasy, false)
	if !strings.Contains(out.String(), "No scores recorded yet") {
		t.Errorf("easy board should be empty:\n%s", out.String())
	}

	normal, _ := store.TopScores("invaders:normal", 10)
	if len(normal) != 1 {
		t.Error("clearing easy should not touch normal")
	}
}

func TestChoosePreset(t *testing.T) {
	withPreset := func(p config.DifficultyPreset) config.InvadersConfig {
		cfg := config.DefaultInvadersConfig()
		cfg.Difficulty.Preset = p
		return cfg
	}

	tests := []struct {
		name     string
		flag     string
		cfg      config.InvadersConfig
		expected config.DifficultyPreset
		wantErr  bool
	}{
		{"flag wins", "easy", withPreset(config.DifficultyHard), config.DifficultyEasy, false},
		{"config preset", "", withPreset(config.DifficultyHard), config.DifficultyHard, false},
		{"empty config", "", withPreset(""), config.DifficultyNormal, false},
		{"unknown flag", "brutal", withPreset(config.DifficultyHard), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := choosePreset(tt.flag, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("choosePreset() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("choosePreset() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
