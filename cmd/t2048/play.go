package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagSize   int
	flagTarget int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant, or the configured one.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game (any time)
  P                - Pause
  B/Esc            - Leave
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options change how often a 4 spawns:
  easy   - 5% fours
  normal - 10% fours
  hard   - 25% fours

Examples:
  t2048 play
  t2048 play mini
  t2048 play --size 8 --target 65536
  t2048 play big --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Override the board size")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Override the target tile")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	if len(args) == 1 {
		v, ok := t2048.FindVariant(args[0])
		if !ok {
			exitf("unknown board %q\nRun 't2048 variants' to see available boards.", args[0])
		}
		cfg.Board.Variant = v.ID
	}
	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if flagTarget != 0 {
		cfg.Board.Threshold = flagTarget
	}

	logOut, closeLog := playLogOutput()
	defer closeLog()

	b, err := openBackend(cfg, logOut)
	if err != nil {
		exitf("%v", err)
	}
	defer b.Close()

	game, err := b.NewGame(b.DefaultVariant(), registry.Env{Player: playerName()})
	if err != nil {
		exitf("creating game: %v", err)
	}

	if err := tui.Run(game, runtimeConfig()); err != nil {
		b.Close()
		exitf("running game: %v", err)
	}
}
