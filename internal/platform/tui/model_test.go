package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	keyEsc    = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyTab    = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlC  = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlZ  = tea.KeyMsg{Type: tea.KeyCtrlZ}
	keyQuit   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyRetry  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyLeft   = tea.KeyMsg{Type: tea.KeyLeft}
	keyLetter = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
)

func testRuntime(cheats bool) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	cfg.Cheats = cheats
	return cfg
}

func newTestGameModel(t *testing.T, store *storage.Store, cheats bool) GameModel {
	t.Helper()
	game := invaders.New(config.DefaultInvadersConfig(), nil)
	m := NewGameModel(game, store, testRuntime(cheats), "tester", nil)
	if m.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}
	return m
}

// send feeds a message to a tea.Model and returns the updated GameModel.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) (GameModel, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap(false)
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{keyLeft, core.ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionShoot},
		{keyEsc, core.ActionPause},
		{keyQuit, core.ActionQuit},
		{keyEnter, core.ActionConfirm},
		{keyRetry, core.ActionRestart},
		{keyLetter, core.ActionNone},
		{keyCtrlC, core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.expected {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}

	if keys.Cheat.Enabled() {
		t.Error("cheat binding should be disabled without cheats")
	}
	if !DefaultGameKeyMap(true).Cheat.Enabled() {
		t.Error("cheat binding should be enabled with cheats")
	}
}

func TestGameModelPauseAndLeave(t *testing.T) {
	m := newTestGameModel(t, nil, false)

	// First Playing tick clears input
	m, _ = tick(t, m)
	if m.game.Snapshot().Phase != invaders.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", m.game.Snapshot().Phase)
	}

	m, _ = send(t, m, keyEsc)
	m, _ = tick(t, m)
	if m.game.Snapshot().Phase != invaders.PhasePaused {
		t.Fatalf("phase = %v, expected paused", m.game.Snapshot().Phase)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the overlay")
	}

	m, _ = send(t, m, keyQuit)
	m, cmd := tick(t, m)
	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("quit from the pause menu should go back to the menu (back=%v quit=%v)", m.BackToMenu(), m.IsQuitting())
	}
	if cmd == nil {
		t.Error("leaving the round should end the program loop")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestGameModelForceQuit(t *testing.T) {
	m := newTestGameModel(t, nil, false)
	m, cmd := send(t, m, keyCtrlC)
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestGameModelResizeKeepsRound(t *testing.T) {
	m := newTestGameModel(t, nil, false)
	m, _ = tick(t, m)
	before := m.game.Session()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.game.Session() != before {
		t.Error("resize should not restart the round")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if rows := strings.Count(m.View(), "\n") + 1; rows != 40 {
		t.Errorf("view has %d rows, expected 40", rows)
	}
}

func TestGameModelCheatClearWins(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGameModel(t, store, true)
	m, _ = tick(t, m)

	m, _ = send(t, m, keyCtrlZ)
	m, _ = tick(t, m)
	if m.game.Snapshot().Phase != invaders.PhaseWon {
		t.Fatalf("phase = %v, expected won", m.game.Snapshot().Phase)
	}
	if !m.scoreSaved {
		t.Error("finished round should be marked as recorded")
	}

	// A cleared swarm awards nothing, and zero scores are not kept
	scores, err := store.TopScores(m.game.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score should not be stored, got %v", scores)
	}

	// Restart opens a new round that can be recorded again
	m, _ = send(t, m, keyRetry)
	m, _ = tick(t, m)
	if m.game.Snapshot().Phase != invaders.PhasePlaying || m.scoreSaved {
		t.Errorf("restart: phase = %v, scoreSaved = %v", m.game.Snapshot().Phase, m.scoreSaved)
	}
}

func TestGameModelCheatDisabled(t *testing.T) {
	m := newTestGameModel(t, nil, false)
	m, _ = tick(t, m)
	m, _ = send(t, m, keyCtrlZ)
	m, _ = tick(t, m)
	if m.game.Snapshot().Phase != invaders.PhasePlaying {
		t.Errorf("ctrl+z without cheats should do nothing, phase = %v", m.game.Snapshot().Phase)
	}
}

func TestMenuSelectsPreset(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(false))
	if item := m.items[m.cursor]; item.Preset != config.DifficultyNormal {
		t.Fatalf("menu should open on normal, got %q", item.Preset)
	}

	next, _ := m.Update(keyDown)
	next, cmd := next.Update(keyEnter)
	menu := next.(MenuModel)

	if menu.Selected() == nil || menu.Selected().Preset != config.DifficultyHard {
		t.Fatalf("selected = %+v, expected hard", menu.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the menu")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRound(storage.Round{GameID: invaders.GameID(config.DifficultyEasy), Score: 1234})

	m := NewMenuModel(store, testRuntime(false))
	if !strings.Contains(m.View(), "1234") {
		t.Errorf("menu should show the best easy score:\n%s", m.View())
	}
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(nil, config.DefaultInvadersConfig(), testRuntime(false), "tester", nil)

	// Menu -> scoreboard -> menu
	next, _ := s.Update(keyTab)
	s = next.(SessionModel)
	if s.view != viewScores {
		t.Fatalf("view = %v, expected scores", s.view)
	}
	next, cmd := s.Update(keyEsc)
	s = next.(SessionModel)
	if s.view != viewMenu || s.quitting {
		t.Fatalf("esc on the scoreboard should return to the menu (view=%v)", s.view)
	}
	if cmd != nil {
		t.Error("returning to the menu should not quit the program")
	}

	// Menu -> game
	next, _ = s.Update(keyEnter)
	s = next.(SessionModel)
	if s.view != viewGame || s.gameModel == nil {
		t.Fatalf("enter should start a game (view=%v)", s.view)
	}
	if s.gameModel.game.ID() != "invaders:normal" {
		t.Errorf("game = %q", s.gameModel.game.ID())
	}

	// Pause, then quit back to the menu without ending the session
	for _, msg := range []tea.Msg{TickMsg(time.Now()), keyEsc, TickMsg(time.Now()), keyQuit, TickMsg(time.Now())} {
		next, _ = s.Update(msg)
		s = next.(SessionModel)
	}
	if s.view != viewMenu || s.quitting {
		t.Errorf("quitting a round should return to the menu (view=%v quitting=%v)", s.view, s.quitting)
	}

	// q in the menu ends the session
	next, cmd = s.Update(keyQuit)
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestScoreboardCyclesBoards(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	start := m.cursor

	for range len(m.boards) {
		next, _ := m.Update(keyTab)
		m = next.(ScoreboardModel)
	}
	if m.cursor != start {
		t.Errorf("cycling through every board should wrap, cursor = %d", m.cursor)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.cursor != (start+len(m.boards)-1)%len(m.boards) {
		t.Errorf("shift+tab should move back, cursor = %d", m.cursor)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty board should say so")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'A', core.ColorOrange)
	s.Set(1, 0, 'B')

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Errorf("rendered output lost cells: %q", out)
	}
}

func TestSessionModelKeepsSeed(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"fixed", 42},
		{"random", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testRuntime(false)
			cfg.Seed = tt.seed
			s := NewSessionModel(nil, config.DefaultInvadersConfig(), cfg, "tester", nil)

			next, _ := s.Update(keyEnter)
			s = next.(SessionModel)
			if s.gameModel == nil {
				t.Fatal("enter should start a game")
			}
			got := s.gameModel.config.Seed
			if tt.seed != 0 && got != tt.seed {
				t.Errorf("seed = %d, expected %d", got, tt.seed)
			}
			if got == 0 {
				t.Error("a zero seed should be replaced")
			}
		})
	}
}
