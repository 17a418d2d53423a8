package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// ScoreTracker accumulates score deltas. The total never drops below zero.
type ScoreTracker struct {
	cfg   config.ScoringConfig
	value int
	decay Timer
}

// NewScoreTracker creates a tracker starting at zero.
func NewScoreTracker(cfg config.ScoringConfig) ScoreTracker {
	return ScoreTracker{cfg: cfg}
}

// Value returns the current score.
func (s *ScoreTracker) Value() int {
	return s.value
}

// Add applies a delta and floors the result at zero.
func (s *ScoreTracker) Add(delta int) {
	s.value = max(s.value+delta, 0)
}

// Kill awards the reward for a destroyed target.
func (s *ScoreTracker) Kill() {
	s.Add(s.cfg.Kill)
}

// ShotFired charges the cost of a paddle shot.
func (s *ScoreTracker) ShotFired() {
	s.Add(-s.cfg.ShotCost)
}

// Decay charges the passive penalty once per decay interval of play time.
// Returns true when a penalty was applied.
func (s *ScoreTracker) Decay(now float64) bool {
	if !s.decay.Fire(now, s.cfg.DecayInterval) {
		return false
	}
	s.Add(-s.cfg.Decay)
	return true
}

// Reset zeroes the score and restarts the decay timer.
func (s *ScoreTracker) Reset() {
	s.value = 0
	s.decay = Timer{}
}
