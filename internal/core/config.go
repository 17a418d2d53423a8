package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and to seed its random source.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickRate   int           // Frames per second requested from the host
	Seed       int64         // RNG seed for deterministic gameplay
	HoldWindow time.Duration // How long a key counts as held after its last repeat
	Cheats     bool          // Enables debug key bindings
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		HoldWindow: 300 * time.Millisecond,
	}
}

// FrameDelta returns the nominal frame duration in seconds for the tick rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
