package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyTracker turns the terminal's stream of key events into held and
// just-pressed facts. Terminals report presses and auto-repeats but no
// releases, so an action counts as held until no event for it has arrived
// within the hold window.
//
// Reset latches every action that is still held: it reports nothing until
// its key goes quiet for a full window and is pressed again.
type KeyTracker struct {
	holdWindow time.Duration
	now        func() time.Time
	lastSeen   map[core.Action]time.Time
	pressed    map[core.Action]bool
	latched    map[core.Action]bool
}

// NewKeyTracker creates a tracker with the given hold window.
func NewKeyTracker(holdWindow time.Duration) *KeyTracker {
	if holdWindow <= 0 {
		holdWindow = core.DefaultConfig().HoldWindow
	}
	return &KeyTracker{
		holdWindow: holdWindow,
		now:        time.Now,
		lastSeen:   make(map[core.Action]time.Time),
		pressed:    make(map[core.Action]bool),
		latched:    make(map[core.Action]bool),
	}
}

// Observe records a key event for the action.
func (k *KeyTracker) Observe(a core.Action) {
	if a == core.ActionNone {
		return
	}
	t := k.now()
	fresh := !k.live(a, t)
	k.lastSeen[a] = t

	if k.latched[a] {
		if !fresh {
			return
		}
		delete(k.latched, a)
	}
	if fresh {
		k.pressed[a] = true
	}
}

// live reports whether an event for a arrived within the hold window.
func (k *KeyTracker) live(a core.Action, t time.Time) bool {
	last, ok := k.lastSeen[a]
	return ok && t.Sub(last) <= k.holdWindow
}

// Held implements core.Input.
func (k *KeyTracker) Held(a core.Action) bool {
	return !k.latched[a] && k.live(a, k.now())
}

// JustPressed implements core.Input.
func (k *KeyTracker) JustPressed(a core.Action) bool {
	return k.pressed[a] && !k.latched[a]
}

// Reset implements core.Input.
func (k *KeyTracker) Reset() {
	t := k.now()
	for a := range k.lastSeen {
		if k.live(a, t) {
			k.latched[a] = true
		}
	}
	clear(k.pressed)
}

// EndFrame drops the edge-triggered facts and forgets keys that went quiet.
func (k *KeyTracker) EndFrame() {
	clear(k.pressed)
	t := k.now()
	for a := range k.lastSeen {
		if !k.live(a, t) {
			delete(k.lastSeen, a)
			delete(k.latched, a)
		}
	}
}

var _ core.Input = (*KeyTracker)(nil)
