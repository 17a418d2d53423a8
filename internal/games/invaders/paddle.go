package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Paddle is the player's body. It slides along a fixed row, pushed by
// a force from the move keys and slowed by linear drag.
type Paddle struct {
	X, Y float64 // center
	V    float64 // horizontal velocity
	F    float64 // force applied this frame

	Mass        float64
	Drag        float64
	Force       float64
	Restitution float64
	Width       float64
	Height      float64

	ShotDelay float64
	LastShot  float64
}

// NewPaddle places a paddle at rest at the field center.
// LastShot starts one delay in the past so the first shot of a run is allowed.
func NewPaddle(cfg config.PaddleConfig) *Paddle {
	return &Paddle{
		Y:           cfg.Y,
		Mass:        cfg.Mass,
		Drag:        cfg.Drag,
		Force:       cfg.Force,
		Restitution: cfg.Restitution,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShotDelay:   cfg.ShotDelay,
		LastShot:    -cfg.ShotDelay,
	}
}

// ApplyInput sets the applied force from the held move actions.
// Holding both directions cancels out.
func (p *Paddle) ApplyInput(in core.Input) {
	if p == nil {
		return
	}
	p.F = 0
	if in.Held(core.ActionMoveRight) {
		p.F += p.Force
	}
	if in.Held(core.ActionMoveLeft) {
		p.F -= p.Force
	}
}

// Integrate advances velocity and position by dt and keeps the paddle
// inside [-halfField+width/2, halfField-width/2]. On a wall hit the
// velocity is reversed and scaled by the restitution factor.
// Returns true when the paddle was clamped.
func (p *Paddle) Integrate(dt, halfField float64) bool {
	if p == nil || dt <= 0 {
		return false
	}

	p.V += dt * (p.F - p.V*p.Drag) / p.Mass
	p.X += dt * p.V

	limit := halfField - p.Width/2
	x, clamped := core.ClampF(p.X, -limit, limit)
	if clamped {
		p.X = x
		p.V = -p.V * p.Restitution
	}
	return clamped
}

// CanShoot reports whether the gun has cooled down at play time now.
func (p *Paddle) CanShoot(now float64) bool {
	return p != nil && now-p.LastShot >= p.ShotDelay
}

// TryShoot records a shot at now if the gun is ready.
func (p *Paddle) TryShoot(now float64) bool {
	if !p.CanShoot(now) {
		return false
	}
	p.LastShot = now
	return true
}

// Box returns the paddle's collision box in world space.
func (p *Paddle) Box() core.Box {
	if p == nil {
		return core.Box{}
	}
	return core.BoxFromCenterSize(core.Vec2{X: p.X, Y: p.Y}, core.Vec2{X: p.Width, Y: p.Height})
}

// Pos returns the paddle center.
func (p *Paddle) Pos() core.Vec2 {
	if p == nil {
		return core.Vec2{}
	}
	return core.Vec2{X: p.X, Y: p.Y}
}
