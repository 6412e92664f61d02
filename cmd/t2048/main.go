// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 variants           - List board variants
//	t2048 play [variant]     - Play a board directly
//	t2048 menu               - Pick boards and view scores interactively
//	t2048 serve              - Start SSH server and spectator stream
//	t2048 scores [variant]   - Show high scores for a board
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default from config)
//	--backend <name>      - Best score store: sqlite, redis or none
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/backend"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagBackend    string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal. Slide the board with the
arrow keys; equal tiles merge into their sum. Reach the target tile, then
keep going until the board locks up.

Available commands:
  variants - Show the board variants
  play     - Play a board directly
  menu     - Interactive board picker and scoreboard
  serve    - Start SSH server for remote play with a spectator stream
  scores   - View high scores

Examples:
  t2048 play
  t2048 play mini --difficulty hard
  t2048 menu
  t2048 serve --ssh :2222 --http :8080
  t2048 scores big`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Best score store: sqlite, redis, none (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig() (config.T2048Config, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyT2048Preset(&cfg, preset)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	return cfg, cfg.Validate()
}

// openBackend connects the services cfg asks for, logging to w.
func openBackend(cfg config.T2048Config, w io.Writer) (*backend.Backend, error) {
	return backend.Open(cfg, config.NewLogger(cfg.Log, w))
}

// playLogOutput returns where logs go while a full-screen program runs.
// The terminal belongs to the game, so logs are dropped unless --log-file is set.
func playLogOutput() (io.Writer, func()) {
	if flagLogFile == "" {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Warn("cannot open log file, logging disabled", "path", flagLogFile, "error", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// runtimeConfig builds the tick and screen settings from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playerName returns the local user name shown with published results.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
