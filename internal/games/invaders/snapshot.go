package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TargetView is a live target as seen by the renderer.
type TargetView struct {
	ID  TargetID
	Box core.Box
}

// ProjectileView is a projectile in flight as seen by the renderer.
type ProjectileView struct {
	Pos   core.Vec2
	Owner Owner
}

// Snapshot is a read-only copy of everything the presentation needs.
// It shares no memory with the session.
type Snapshot struct {
	Phase    Phase
	Overlay  bool
	Score    int
	PlayTime float64

	HasPaddle bool
	Paddle    core.Box

	Area        core.Box
	Step        float64
	Live        int
	Total       int
	Targets     []TargetView
	Projectiles []ProjectileView
}

// Snapshot returns the current state for rendering and tests.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    s.Phase(),
		Overlay:  s.Phase().Overlay(),
		Score:    s.score.Value(),
		PlayTime: s.clock.Now(),
	}

	if s.paddle != nil {
		snap.HasPaddle = true
		snap.Paddle = s.paddle.Box()
	}

	if s.swarm != nil {
		snap.Area = s.swarm.Area
		snap.Step = s.swarm.Step
		snap.Live = s.swarm.Live()
		snap.Total = s.swarm.Total()
		ids := s.swarm.LiveIDs()
		snap.Targets = make([]TargetView, 0, len(ids))
		for _, id := range ids {
			box, _ := s.swarm.TargetBox(id)
			snap.Targets = append(snap.Targets, TargetView{ID: id, Box: box})
		}
	}

	snap.Projectiles = make([]ProjectileView, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		if p.Alive {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{Pos: p.Pos, Owner: p.Owner})
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Live)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayTime)
	h = h*31 + math.Float64bits(snap.Step)
	h = hashBox(h, snap.Area)

	if snap.HasPaddle {
		h = hashBox(h*31+1, snap.Paddle)
	}

	for _, t := range snap.Targets {
		h = h*31 + uint64(t.ID) //#nosec G115 -- hash computation
		h = hashBox(h, t.Box)
	}

	for _, p := range snap.Projectiles {
		h = h*31 + uint64(p.Owner) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(p.Pos.X)
		h = h*31 + math.Float64bits(p.Pos.Y)
	}

	return h
}

func hashBox(h uint64, b core.Box) uint64 {
	h = h*31 + math.Float64bits(b.Min.X)
	h = h*31 + math.Float64bits(b.Min.Y)
	h = h*31 + math.Float64bits(b.Max.X)
	h = h*31 + math.Float64bits(b.Max.Y)
	return h
}
