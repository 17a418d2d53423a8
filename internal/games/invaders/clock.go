// Package invaders implements the invaders simulation: a descending swarm of
// targets, a paddle that fires back, the projectiles between them, scoring,
// pacing and the phase machine tying it together.
//
// All state is owned by a Session and advanced by Session.Tick. Nothing here
// touches the terminal; Render draws a Snapshot into a core.Screen.
package invaders

// PlayClock counts seconds of active play. It only advances while the
// session is Playing, so pauses and menus do not age the run.
type PlayClock struct {
	elapsed float64
}

// Now returns the elapsed play time in seconds.
func (c *PlayClock) Now() float64 {
	return c.elapsed
}

// Advance moves the clock forward. Negative deltas are ignored so the
// clock never runs backwards.
func (c *PlayClock) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Reset rewinds the clock to zero for a new run.
func (c *PlayClock) Reset() {
	c.elapsed = 0
}

// Timer remembers when something last happened on the play clock.
type Timer struct {
	Last float64
}

// Due reports whether at least interval seconds passed since Last.
func (t Timer) Due(now, interval float64) bool {
	return now-t.Last >= interval
}

// Fire marks the timer at now if it is due and reports whether it was.
// Late frames are not caught up: the next interval counts from now.
func (t *Timer) Fire(now, interval float64) bool {
	if !t.Due(now, interval) {
		return false
	}
	t.Last = now
	return true
}
