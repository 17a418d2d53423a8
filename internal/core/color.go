package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the invaders renderer, mapped onto ANSI 256 in the platform.
const (
	ColorDefault Color = iota
	ColorSand          // background text, overlay frame
	ColorSteel         // projectiles
	ColorSlate         // targets, HUD
	ColorOrange        // paddle
	ColorAlert         // win / game over titles
	ColorDim           // hints
)
