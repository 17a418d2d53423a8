package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestScoreTrackerFloorsAtZero(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		apply    func(s *ScoreTracker)
		expected int
	}{
		{"kill from zero", 0, func(s *ScoreTracker) { s.Kill() }, 30},
		{"shot from five", 5, func(s *ScoreTracker) { s.ShotFired() }, 0},
		{"shot from forty", 40, func(s *ScoreTracker) { s.ShotFired() }, 30},
		{"large negative", 10, func(s *ScoreTracker) { s.Add(-1000) }, 0},
		{"kill after floor", 0, func(s *ScoreTracker) { s.ShotFired(); s.Kill() }, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoreTracker(config.DefaultInvadersConfig().Scoring)
			s.Add(tt.start)
			tt.apply(&s)
			if s.Value() != tt.expected {
				t.Errorf("score = %d, expected %d", s.Value(), tt.expected)
			}
		})
	}
}

func TestScoreTrackerDecay(t *testing.T) {
	s := NewScoreTracker(config.DefaultInvadersConfig().Scoring)
	s.Add(10)

	if s.Decay(0.5) {
		t.Error("decay should wait a full interval")
	}
	if !s.Decay(1.0) || s.Value() != 8 {
		t.Errorf("after one second score = %d, expected 8", s.Value())
	}
	if s.Decay(1.9) {
		t.Error("decay should not repeat within the interval")
	}
	s.Decay(2.0)
	s.Decay(3.0)
	s.Decay(4.0)
	s.Decay(5.0)
	if s.Value() != 0 {
		t.Errorf("score = %d, expected decay to floor at 0", s.Value())
	}

	s.Reset()
	if s.Value() != 0 || s.Decay(0.5) {
		t.Error("reset should restart the decay timer")
	}
}

func TestPlayClock(t *testing.T) {
	var c PlayClock
	c.Advance(0.5)
	c.Advance(-3)
	c.Advance(0.25)
	if c.Now() != 0.75 {
		t.Errorf("Now() = %v, expected 0.75", c.Now())
	}
	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Now() after reset = %v", c.Now())
	}
}

func TestTimerFire(t *testing.T) {
	var tm Timer
	if tm.Fire(0.99, 1) {
		t.Error("timer fired early")
	}
	if !tm.Fire(1, 1) {
		t.Error("timer should fire exactly at the interval")
	}
	if tm.Last != 1 {
		t.Errorf("Last = %v, expected 1", tm.Last)
	}
	if tm.Fire(1.5, 1) {
		t.Error("timer should wait a full interval after firing")
	}
}
