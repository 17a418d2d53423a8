// Package core provides fundamental types shared by the simulation and the
// terminal platform: world-space geometry, the input facade and the screen
// buffer. It has no Bubble Tea dependency so game logic stays pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world space.
// World space is centered on the playfield with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned world-space rectangle given by its min and max corners.
// The zero Box is empty.
type Box struct {
	Min, Max Vec2
}

// BoxFromCenterSize builds a box of the given size around center.
func BoxFromCenterSize(center, size Vec2) Box {
	half := size.Scale(0.5)
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// IsEmpty reports whether the box encloses no area.
func (b Box) IsEmpty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Union returns the smallest box containing both b and o.
// An empty operand is ignored.
func (b Box) Union(o Box) Box {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box{
		Min: Vec2{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Vec2{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Translate shifts the box by d.
func (b Box) Translate(d Vec2) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies inside the box. All four edges are inclusive.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Rect is an integer cell rectangle on the terminal screen.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}

// ClampF restricts val to [lo, hi] and reports whether it had to move.
func ClampF(val, lo, hi float64) (float64, bool) {
	if val < lo {
		return lo, true
	}
	if val > hi {
		return hi, true
	}
	return val, false
}
