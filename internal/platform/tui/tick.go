// Package tui provides the Bubble Tea integration for the invaders game.
// It handles the terminal UI loop, key tracking, menus and the SSH host.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps a single simulation step after a stall (suspend, slow SSH link).
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks.
// The first tick, a clock step backwards, or a long stall fall back to sane values.
func frameDelta(last, now time.Time, nominal float64) float64 {
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last).Seconds()
	switch {
	case dt <= 0:
		return nominal
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}
