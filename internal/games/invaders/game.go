package invaders

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game adapts a Session to the terminal host: it owns the runtime settings,
// builds a fresh session on Reset and draws it on Render.
type Game struct {
	cfg     config.InvadersConfig
	logger  *log.Logger
	runtime core.RuntimeConfig
	session *Session
}

// New creates a game with the given configuration. A nil logger discards output.
func New(cfg config.InvadersConfig, logger *log.Logger) *Game {
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the identifier used for score storage, e.g. "invaders:normal".
func (g *Game) ID() string {
	return GameID(g.cfg.Difficulty.Preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	preset := string(g.cfg.Difficulty.Preset)
	if preset == "" {
		return "Invaders"
	}
	return "Invaders (" + strings.ToUpper(preset[:1]) + preset[1:] + ")"
}

// GameID returns the score table identifier for a preset.
func GameID(preset config.DifficultyPreset) string {
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return "invaders:" + string(preset)
}

// Reset discards any current run and enters a new one.
// The seed in runtime must already be resolved; zero is a valid seed here.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = NewSession(g.cfg,
		WithLogger(g.logger),
		WithRand(rand.New(rand.NewSource(runtime.Seed))), //#nosec G404 -- gameplay randomness
	)
	g.session.EnterGame()
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.Input) TickResult {
	if g.session == nil {
		return TickResult{Phase: PhaseIdle}
	}
	return g.session.Tick(dt, in)
}

// Render draws the current state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	Render(dst, g.session.Snapshot(), g.cfg.Field, string(g.cfg.Difficulty.Preset))
}

// Snapshot returns the current state of the session.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}

// ClearSwarm destroys every target. Only bound when cheats are enabled.
func (g *Game) ClearSwarm() int {
	if g.session == nil {
		return 0
	}
	return g.session.ClearSwarm()
}

// Session returns the running session, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}
