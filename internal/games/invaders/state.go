package invaders

import "fmt"

// Phase is the session's game state. Exactly one is active at a time and
// it only changes through StateMachine.Fire.
type Phase int

const (
	PhaseIdle     Phase = iota // no session
	PhaseStarting              // resetting, immediately followed by Playing
	PhasePlaying
	PhasePaused
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStarting:
		return "starting"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Overlay reports whether the menu overlay covers the field in this phase.
func (p Phase) Overlay() bool {
	switch p {
	case PhaseStarting, PhasePaused, PhaseWon, PhaseLost:
		return true
	default:
		return false
	}
}

// Finished reports whether the run is over.
func (p Phase) Finished() bool {
	return p == PhaseWon || p == PhaseLost
}

// Trigger is an event that may move the state machine.
type Trigger int

const (
	TriggerEnterGame    Trigger = iota // host starts a session
	TriggerStarted                     // reset done
	TriggerPause                       // pause pressed while playing
	TriggerResume                      // pause menu closed
	TriggerSwarmCleared                // last target destroyed
	TriggerInvaded                     // swarm reached the lose line
	TriggerPaddleHit                   // paddle struck by a swarm shot
	TriggerQuit                        // quit chosen from a menu
	TriggerRestart                     // new run after a win or loss
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerEnterGame:
		return "enter-game"
	case TriggerStarted:
		return "started"
	case TriggerPause:
		return "pause"
	case TriggerResume:
		return "resume"
	case TriggerSwarmCleared:
		return "swarm-cleared"
	case TriggerInvaded:
		return "invaded"
	case TriggerPaddleHit:
		return "paddle-hit"
	case TriggerQuit:
		return "quit"
	case TriggerRestart:
		return "restart"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// Transition records one phase change.
type Transition struct {
	From    Phase
	To      Phase
	Trigger Trigger
}

// transitions is the complete table of allowed phase changes.
var transitions = map[Phase]map[Trigger]Phase{
	PhaseIdle: {
		TriggerEnterGame: PhaseStarting,
	},
	PhaseStarting: {
		TriggerStarted: PhasePlaying,
		TriggerQuit:    PhaseIdle,
	},
	PhasePlaying: {
		TriggerPause:        PhasePaused,
		TriggerSwarmCleared: PhaseWon,
		TriggerInvaded:      PhaseLost,
		TriggerPaddleHit:    PhaseLost,
	},
	PhasePaused: {
		TriggerResume: PhasePlaying,
		TriggerQuit:   PhaseIdle,
	},
	PhaseWon: {
		TriggerRestart: PhaseStarting,
		TriggerQuit:    PhaseIdle,
	},
	PhaseLost: {
		TriggerRestart: PhaseStarting,
		TriggerQuit:    PhaseIdle,
	},
}

// StateMachine holds the current phase. The zero value is Idle.
type StateMachine struct {
	phase Phase
}

// Phase returns the current phase.
func (m *StateMachine) Phase() Phase {
	return m.phase
}

// Can reports whether t is allowed in the current phase.
func (m *StateMachine) Can(t Trigger) bool {
	_, ok := transitions[m.phase][t]
	return ok
}

// Fire applies a trigger. Triggers not allowed in the current phase are
// ignored and reported with ok=false.
func (m *StateMachine) Fire(t Trigger) (Transition, bool) {
	to, ok := transitions[m.phase][t]
	if !ok {
		return Transition{}, false
	}
	tr := Transition{From: m.phase, To: to, Trigger: t}
	m.phase = to
	return tr, true
}
