package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round",
	Long: `Start a round directly, skipping the menu.

Controls:
  Left/A, Right/D  - Move the paddle
  Space/W/Up       - Shoot
  Esc/P            - Pause, close the pause menu
  R/Enter          - Restart after a win or loss
  Q                - Leave from the pause or end menu
  Ctrl+S           - Save a text screenshot
  Ctrl+C           - Exit immediately

Difficulty options:
  easy   - Swarm shoots less often, shots cost half
  normal - Default pacing
  hard   - Faster swarm shots, narrower paddle
  fixed  - Swarm fire rate never speeds up

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --seed 42 --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default: from config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	preset, err := choosePreset(flagDifficulty, cfg)
	if err != nil {
		return err
	}
	config.ApplyInvadersPreset(&cfg, preset)

	logger, closer, err := newLogger("invaders")
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := invaders.New(cfg, logger)
	if err := tui.Run(game, store, runtimeConfig(), playerName(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// choosePreset returns the --difficulty preset, or the one named by the
// loaded config when the flag is not set.
func choosePreset(flag string, cfg config.InvadersConfig) (config.DifficultyPreset, error) {
	name := flag
	if name == "" {
		name = string(cfg.Difficulty.Preset)
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (run 'invaders list')", name)
	}
	return preset, nil
}
