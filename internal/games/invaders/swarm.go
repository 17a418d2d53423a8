package invaders

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TargetID addresses a target slot in the swarm. IDs stay valid for the
// whole run; a killed target keeps its slot with Alive cleared.
type TargetID int

// Target is one member of the swarm. Local is relative to the swarm offset.
type Target struct {
	Local core.Vec2
	Size  float64
	Alive bool
}

// MoveKind describes what a movement tick did.
type MoveKind int

const (
	MoveNone       MoveKind = iota // timer not due, or nothing to move
	MoveHorizontal                 // shifted sideways by the step
	MoveDown                       // dropped one step and reversed
)

// String returns a human-readable name for the move.
func (m MoveKind) String() string {
	switch m {
	case MoveHorizontal:
		return "horizontal"
	case MoveDown:
		return "down"
	default:
		return "none"
	}
}

// Swarm moves all live targets as one formation.
type Swarm struct {
	Area   core.Box  // union of live target boxes, refreshed on each movement tick
	Step   float64   // signed horizontal step; the sign is the travel direction
	Offset core.Vec2 // world position of the formation origin

	LastMove Timer
	LastShot Timer

	cfg       config.SwarmConfig
	halfField float64
	targets   []Target
	live      int
}

// SpawnSwarm lays out a full formation inside the configured area.
//
// Cells are square with size = width / (2*columns - 1), so each column is
// followed by a gap of one cell. Rows spread the leftover height evenly.
// The formation origin sits at the area center and the first step is a
// third of a cell, moving right.
func SpawnSwarm(cfg config.SwarmConfig, halfField float64) *Swarm {
	area := core.Box{
		Min: core.Vec2{X: cfg.Area.MinX, Y: cfg.Area.MinY},
		Max: core.Vec2{X: cfg.Area.MaxX, Y: cfg.Area.MaxY},
	}
	w, h := area.Width(), area.Height()
	size := w / float64(2*cfg.Columns-1)

	rowPitch := size
	if cfg.Rows > 1 {
		rowPitch += (h - float64(cfg.Rows)*size) / float64(cfg.Rows-1)
	}

	s := &Swarm{
		Step:      size / 3,
		Offset:    area.Center(),
		cfg:       cfg,
		halfField: halfField,
		targets:   make([]Target, 0, cfg.Columns*cfg.Rows),
	}

	for row := range cfg.Rows {
		for col := range cfg.Columns {
			local := core.Vec2{
				X: -w/2 + float64(col)*2*size + size/2,
				Y: h/2 - float64(row)*rowPitch - size/2,
			}
			s.targets = append(s.targets, Target{Local: local, Size: size, Alive: true})
		}
	}
	s.live = len(s.targets)
	s.RecomputeArea()
	return s
}

// Live returns the number of live targets.
func (s *Swarm) Live() int {
	if s == nil {
		return 0
	}
	return s.live
}

// Total returns the number of slots the swarm spawned with.
func (s *Swarm) Total() int {
	if s == nil {
		return 0
	}
	return len(s.targets)
}

// Empty reports whether every target has been destroyed.
// A missing swarm is not empty; it is simply absent.
func (s *Swarm) Empty() bool {
	return s != nil && s.live == 0
}

// Alive reports whether id names a live target.
func (s *Swarm) Alive(id TargetID) bool {
	if s == nil || id < 0 || int(id) >= len(s.targets) {
		return false
	}
	return s.targets[id].Alive
}

// Pos returns the world position of a live target.
func (s *Swarm) Pos(id TargetID) (core.Vec2, bool) {
	if !s.Alive(id) {
		return core.Vec2{}, false
	}
	return s.targets[id].Local.Add(s.Offset), true
}

// TargetBox returns the world box of a live target.
func (s *Swarm) TargetBox(id TargetID) (core.Box, bool) {
	pos, ok := s.Pos(id)
	if !ok {
		return core.Box{}, false
	}
	size := s.targets[id].Size
	return core.BoxFromCenterSize(pos, core.Vec2{X: size, Y: size}), true
}

// Muzzle returns where a live target's shot starts: half a cell below its center.
func (s *Swarm) Muzzle(id TargetID) (core.Vec2, bool) {
	pos, ok := s.Pos(id)
	if !ok {
		return core.Vec2{}, false
	}
	return core.Vec2{X: pos.X, Y: pos.Y - s.targets[id].Size/2}, true
}

// LiveIDs returns the IDs of all live targets in slot order.
func (s *Swarm) LiveIDs() []TargetID {
	if s == nil {
		return nil
	}
	ids := make([]TargetID, 0, s.live)
	for i := range s.targets {
		if s.targets[i].Alive {
			ids = append(ids, TargetID(i))
		}
	}
	return ids
}

// Kill removes a live target. Returns false for a stale or unknown ID.
func (s *Swarm) Kill(id TargetID) bool {
	if !s.Alive(id) {
		return false
	}
	s.targets[id].Alive = false
	s.live--
	return true
}

// KillAll removes every live target and returns how many were removed.
func (s *Swarm) KillAll() int {
	if s == nil {
		return 0
	}
	n := s.live
	for i := range s.targets {
		s.targets[i].Alive = false
	}
	s.live = 0
	return n
}

// RecomputeArea rebuilds Area from scratch as the union of live target boxes.
// An empty swarm keeps its last area.
func (s *Swarm) RecomputeArea() {
	if s == nil || s.live == 0 {
		return
	}
	var area core.Box
	for i := range s.targets {
		if box, ok := s.TargetBox(TargetID(i)); ok {
			area = area.Union(box)
		}
	}
	s.Area = area
}

// Move runs one movement tick if the move interval has elapsed at play time now.
//
// The boundary test uses the area recomputed at the start of the tick,
// before this tick's translation. The swarm therefore bounces one tick
// after its box would visually touch the wall.
func (s *Swarm) Move(now float64) MoveKind {
	if s == nil || s.live == 0 {
		return MoveNone
	}
	if !s.LastMove.Fire(now, s.cfg.MoveInterval) {
		return MoveNone
	}

	s.RecomputeArea()

	var blocked bool
	if s.Step > 0 {
		blocked = s.Area.Max.X >= s.halfField-s.Step
	} else {
		blocked = s.Area.Min.X <= -s.halfField-s.Step
	}

	if !blocked {
		s.Offset.X += s.Step
		return MoveHorizontal
	}
	s.Offset.Y -= math.Abs(s.Step)
	s.Step = -s.Step
	return MoveDown
}

// ShootDue fires the shoot timer if threshold seconds passed since the last attempt.
func (s *Swarm) ShootDue(now, threshold float64) bool {
	if s == nil || s.live == 0 {
		return false
	}
	return s.LastShot.Fire(now, threshold)
}

// PickShooter chooses uniformly among live targets whose horizontal distance
// to x is below the configured shoot range. Returns false when none qualify.
func (s *Swarm) PickShooter(x float64, rng *rand.Rand) (TargetID, bool) {
	if s == nil || rng == nil {
		return 0, false
	}
	var candidates []TargetID
	for i := range s.targets {
		pos, ok := s.Pos(TargetID(i))
		if ok && math.Abs(pos.X-x) < s.cfg.ShootRange {
			candidates = append(candidates, TargetID(i))
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
