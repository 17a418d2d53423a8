package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long: `Shows every difficulty preset with the values it derives from the
loaded config: the swarm's shot interval at the start and after one minute,
the cost of a paddle shot and the paddle width.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	base, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-16s  %-9s  %-9s  %-9s  %s\n", "Preset", "ID", "Fire@0s", "Fire@60s", "ShotCost", "Paddle")
	fmt.Printf("  %-8s  %-16s  %-9s  %-9s  %-9s  %s\n", "------", "--", "-------", "--------", "--------", "------")

	for _, p := range config.Presets {
		cfg := base
		config.ApplyInvadersPreset(&cfg, p)
		fmt.Printf("  %-8s  %-16s  %-9s  %-9s  %-9d  %.0f\n",
			p,
			invaders.GameID(p),
			fmt.Sprintf("%.2fs", cfg.Pacing.ShootThreshold(0)),
			fmt.Sprintf("%.2fs", cfg.Pacing.ShootThreshold(60)),
			cfg.Scoring.ShotCost,
			cfg.Paddle.Width,
		)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play --difficulty <preset>' to play.")
	return nil
}
