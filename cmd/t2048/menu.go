package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a board and Tab to
open the scoreboard. Leaving a game with B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Scoreboard
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	logOut, closeLog := playLogOutput()
	defer closeLog()

	b, err := openBackend(cfg, logOut)
	if err != nil {
		exitf("%v", err)
	}
	defer b.Close()

	if err := tui.RunSession(b.Registry(), b.Store(), runtimeConfig(), playerName()); err != nil {
		b.Close()
		exitf("%v", err)
	}
}
