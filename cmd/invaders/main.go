// invaders is a terminal arcade shooter: clear the descending swarm before it
// reaches the lose line or shoots your paddle.
//
// Usage:
//
//	invaders                    - Start the menu (pick a difficulty, view scores)
//	invaders play               - Play one round directly
//	invaders list               - List difficulty presets
//	invaders serve              - Start SSH server for remote play
//	invaders scores [preset]    - Show high scores
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--config <path>    - Use a custom game config YAML
//	--hold <ms>        - How long a key counts as held after its last repeat
//	--cheats           - Enable debug key bindings
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Write logs to a file during play
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagHoldMS   int
	flagCheats   bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - clear the swarm in your terminal",
	Long: `Invaders is a terminal arcade shooter. A swarm of targets sweeps across
the field and steps down at every wall; shoot them all before they reach the
lose line, and dodge their shots.

Without a subcommand the interactive menu starts.

Available commands:
  play     - Play one round directly
  list     - Show difficulty presets
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  invaders
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores easy`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagHoldMS, "hold", 300, "Milliseconds a key counts as held after its last repeat")
	rootCmd.PersistentFlags().BoolVar(&flagCheats, "cheats", false, "Enable debug keys (ctrl+z clears the swarm)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file during play")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime settings from the global flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.HoldWindow = time.Duration(flagHoldMS) * time.Millisecond
	cfg.Cheats = flagCheats
	return cfg
}

// newLogger returns a logger for interactive play. The alt-screen owns the
// terminal, so output goes to --log-file or nowhere. The returned closer must
// be called on exit.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: open %s: %w", flagLogFile, err)
		}
		w, closer = f, f
	}

	logger, err := newLoggerTo(w, prefix)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}

// newLoggerTo creates a timestamped logger at the --log-level level.
func newLoggerTo(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openStore opens the score database, or returns nil with a warning so the
// game still works without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
		return nil
	}
	return store
}

// playerName is recorded with every local score.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("invaders")
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, base, runtimeConfig(), playerName(), logger)
}
