package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagInteractive bool
	flagAllScores   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a difficulty preset (default: normal).

With --interactive the scoreboard opens in the terminal UI and lets you switch
between presets. --all lists every recorded round and --clear deletes the
preset's scores.

Examples:
  invaders scores
  invaders scores hard --all
  invaders scores easy --clear
  invaders scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded round instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the preset")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "all", "clear")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (run 'invaders list')", name)
	}

	if flagClearScores {
		return clearScores(os.Stdout, store, preset)
	}
	return printScores(os.Stdout, store, preset, flagAllScores)
}

// clearScores deletes every round recorded for the preset.
func clearScores(w io.Writer, store *storage.Store, preset config.DifficultyPreset) error {
	gameID := invaders.GameID(preset)
	if err := store.ClearScores(gameID); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	fmt.Fprintf(w, "Cleared scores for %s\n", gameID)
	return nil
}

// printScores writes the preset's top 10 table, or every round when all is set.
func printScores(w io.Writer, store *storage.Store, preset config.DifficultyPreset, all bool) error {
	gameID := invaders.GameID(preset)

	var scores []storage.ScoreEntry
	var err error
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", gameID)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'invaders play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Time", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-8s  %-6s  %s\n", "----", "------", "-----", "----", "------", "----")

	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-12s  %-7d  %-8s  %-6s  %s\n",
			i+1, e.Player, e.Score, fmt.Sprintf("%.1fs", e.PlayTime), e.Outcome,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d  Rounds: %d  Cleared: %d", stats.HighScore, stats.GamesCount, stats.Wins)
		if stats.BestTime > 0 {
			fmt.Fprintf(w, "  Fastest clear: %.1fs", stats.BestTime)
		}
		fmt.Fprintln(w)
	}
	return nil
}
