package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Owner tells who fired a projectile. It selects the collision rule.
type Owner int

const (
	OwnerPaddle Owner = iota
	OwnerSwarm
)

// String returns a human-readable name for the owner.
func (o Owner) String() string {
	if o == OwnerSwarm {
		return "swarm"
	}
	return "paddle"
}

// Projectile is a shot in flight.
type Projectile struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Owner Owner
	Alive bool
}

// ShootRequest asks the session to spawn a projectile during this tick.
// Swarm requests name their shooter and take the origin from it at spawn time.
type ShootRequest struct {
	Owner    Owner
	Origin   core.Vec2
	Velocity core.Vec2
	Source   TargetID
}

// HitKind distinguishes the two collision pairs.
type HitKind int

const (
	HitTarget HitKind = iota // paddle shot inside a target box
	HitPaddle                // swarm shot inside the paddle box
)

// Hit is a collision candidate found during detection.
// Resolution may still reject it as stale.
type Hit struct {
	Kind       HitKind
	Projectile int
	Target     TargetID
}

// advanceProjectiles moves every live projectile by its velocity.
func advanceProjectiles(ps []Projectile, dt float64) {
	for i := range ps {
		if ps[i].Alive {
			ps[i].Pos = ps[i].Pos.Add(ps[i].Vel.Scale(dt))
		}
	}
}

// detectHits collects every collision candidate without changing anything.
// Paddle shots are tested against live targets, swarm shots against the
// paddle. No other pair interacts.
func detectHits(ps []Projectile, swarm *Swarm, paddle *Paddle) []Hit {
	var hits []Hit
	var ids []TargetID
	if swarm != nil {
		ids = swarm.LiveIDs()
	}
	paddleBox := paddle.Box()

	for i := range ps {
		p := &ps[i]
		if !p.Alive {
			continue
		}
		switch p.Owner {
		case OwnerPaddle:
			for _, id := range ids {
				box, ok := swarm.TargetBox(id)
				if ok && box.Contains(p.Pos) {
					hits = append(hits, Hit{Kind: HitTarget, Projectile: i, Target: id})
				}
			}
		case OwnerSwarm:
			if paddle != nil && paddleBox.Contains(p.Pos) {
				hits = append(hits, Hit{Kind: HitPaddle, Projectile: i})
			}
		}
	}
	return hits
}

// retireProjectiles drops dead projectiles and those outside the viewport,
// compacting the slice in place. Returns the kept slice and how many left the field.
func retireProjectiles(ps []Projectile, halfW, halfH float64) ([]Projectile, int) {
	kept := ps[:0]
	left := 0
	for _, p := range ps {
		if !p.Alive {
			continue
		}
		if p.Pos.X < -halfW || p.Pos.X > halfW || p.Pos.Y < -halfH || p.Pos.Y > halfH {
			left++
			continue
		}
		kept = append(kept, p)
	}
	clear(ps[len(kept):])
	return kept, left
}
