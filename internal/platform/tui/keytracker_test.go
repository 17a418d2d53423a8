package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker() (*KeyTracker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	k := NewKeyTracker(300 * time.Millisecond)
	k.now = clock.now
	return k, clock
}

func TestKeyTrackerPressAndHold(t *testing.T) {
	k, clock := newTestTracker()

	k.Observe(core.ActionShoot)
	if !k.JustPressed(core.ActionShoot) || !k.Held(core.ActionShoot) {
		t.Fatal("first event should be a press and a hold")
	}
	k.EndFrame()

	// Auto-repeat keeps the key held without new presses
	for range 10 {
		clock.advance(30 * time.Millisecond)
		k.Observe(core.ActionShoot)
		if k.JustPressed(core.ActionShoot) {
			t.Fatal("auto-repeat should not count as a new press")
		}
		if !k.Held(core.ActionShoot) {
			t.Fatal("key should stay held while repeating")
		}
		k.EndFrame()
	}

	clock.advance(301 * time.Millisecond)
	if k.Held(core.ActionShoot) {
		t.Error("key should be released after the hold window")
	}
}

func TestKeyTrackerNewPressAfterRelease(t *testing.T) {
	k, clock := newTestTracker()

	k.Observe(core.ActionPause)
	k.EndFrame()
	clock.advance(500 * time.Millisecond)
	k.EndFrame()

	k.Observe(core.ActionPause)
	if !k.JustPressed(core.ActionPause) {
		t.Error("event after a quiet window should be a new press")
	}
}

func TestKeyTrackerResetLatchesHeldKeys(t *testing.T) {
	k, clock := newTestTracker()

	k.Observe(core.ActionMoveLeft)
	k.Reset()

	if k.Held(core.ActionMoveLeft) || k.JustPressed(core.ActionMoveLeft) {
		t.Fatal("reset should hide keys that are still down")
	}

	// Repeats of the same physical hold stay hidden
	clock.advance(50 * time.Millisecond)
	k.Observe(core.ActionMoveLeft)
	if k.Held(core.ActionMoveLeft) || k.JustPressed(core.ActionMoveLeft) {
		t.Fatal("latched key should not report repeats")
	}
	k.EndFrame()

	// Releasing and pressing again clears the latch
	clock.advance(400 * time.Millisecond)
	k.EndFrame()
	k.Observe(core.ActionMoveLeft)
	if !k.JustPressed(core.ActionMoveLeft) || !k.Held(core.ActionMoveLeft) {
		t.Error("a fresh press after reset should be reported")
	}
}

func TestKeyTrackerFreshPressWhileLatched(t *testing.T) {
	k, clock := newTestTracker()

	k.Observe(core.ActionShoot)
	k.Reset()

	// Quiet for longer than the window but EndFrame never ran in between
	clock.advance(time.Second)
	k.Observe(core.ActionShoot)
	if !k.JustPressed(core.ActionShoot) {
		t.Error("a press after a quiet window should unlatch the key")
	}
}

func TestKeyTrackerIgnoresNone(t *testing.T) {
	k, _ := newTestTracker()
	k.Observe(core.ActionNone)
	if len(k.lastSeen) != 0 {
		t.Error("ActionNone should not be tracked")
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		last     time.Time
		now      time.Time
		expected float64
	}{
		{"first tick", time.Time{}, base, 1.0 / 60},
		{"normal", base, base.Add(20 * time.Millisecond), 0.02},
		{"stall", base, base.Add(2 * time.Second), maxFrameDelta},
		{"backwards", base, base.Add(-time.Second), 1.0 / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.last, tt.now, 1.0/60); got != tt.expected {
				t.Errorf("frameDelta = %v, expected %v", got, tt.expected)
			}
		})
	}
}
