package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// helpRows is the number of rows below the playfield reserved for the key help.
const helpRows = 1

// GameModel is the Bubble Tea model that hosts one invaders game.
// It feeds key events into a KeyTracker, steps the game on every tick and
// records finished rounds in the score store.
type GameModel struct {
	game       *invaders.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	input      *KeyTracker
	lastTick   time.Time
	status     string
	standalone bool // quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a game model. A zero seed is replaced by a time-based one.
func NewGameModel(game *invaders.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:  store,
		config: cfg,
		player: player,
		logger: logger,
		keys:   DefaultGameKeyMap(cfg.Cheats),
		help:   h,
		input:  NewKeyTracker(cfg.HoldWindow),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("round started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the terminal, so the round survives a resize
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Cheat):
		n := m.game.ClearSwarm()
		m.logger.Debug("swarm cleared by cheat", "targets", n)
		return m, nil
	}

	m.input.Observe(m.keys.Action(msg))
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.FrameDelta())
	m.lastTick = now

	res := m.game.Step(dt, m.input)
	m.input.EndFrame()

	switch {
	case res.Entered(invaders.PhaseWon):
		m.saveRound(storage.OutcomeWon)
	case res.Entered(invaders.PhaseLost):
		m.saveRound(storage.OutcomeLost)
	case res.Entered(invaders.PhaseStarting):
		m.scoreSaved = false
		m.status = ""
	}

	if res.Exit {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound records the finished round once. Zero scores are not kept.
func (m *GameModel) saveRound(outcome string) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	snap := m.game.Snapshot()
	m.logger.Info("round finished",
		"game", m.game.ID(),
		"outcome", outcome,
		"score", snap.Score,
		"time", fmt.Sprintf("%.1fs", snap.PlayTime),
	)

	if m.store == nil || snap.Score <= 0 {
		return
	}
	_, err := m.store.SaveRound(storage.Round{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    snap.Score,
		PlayTime: snap.PlayTime,
		Outcome:  outcome,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", screenshotName(m.game.ID()), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// screenshotName makes a game ID safe for use in a file name.
func screenshotName(id string) string {
	b := []byte(id)
	for i, c := range b {
		if c == ':' || c == '/' {
			b[i] = '_'
		}
	}
	return string(b)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MaxWidth(m.config.ScreenW)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the round was left through the in-game menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
// Leaving the game from its menu ends the program.
func Run(game *invaders.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, player, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
