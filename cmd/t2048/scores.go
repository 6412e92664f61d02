package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresReset bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a board",
	Long: `Display the top high scores for the given board, or the classic one.

Examples:
  t2048 scores
  t2048 scores mini
  t2048 scores --all
  t2048 scores big --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show summary statistics for every board")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the board's score history and best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	v := t2048.DefaultVariant()
	if len(args) == 1 {
		var ok bool
		v, ok = t2048.FindVariant(args[0])
		if !ok {
			exitf("unknown board %q\nRun 't2048 variants' to see available boards.", args[0])
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresAll:
		printAllStats(store)
	case flagScoresReset:
		if err := store.ClearScores(v.Key); err != nil {
			store.Close()
			exitf("clearing scores: %v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", v.Name)
	default:
		printScores(store, v)
	}
}

func printScores(store *storage.Store, v t2048.Variant) {
	scores, err := store.TopScores(v.Key, flagScoresLimit)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", v.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", v.ID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Max", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "---", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Steps, dateStr)
	}

	fmt.Println()
	if best, err := store.Best(v.Key); err == nil && best > 0 {
		fmt.Printf("Best: %d\n", best)
	} else if high, err := store.HighScore(v.Key); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

func printAllStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		store.Close()
		exitf("retrieving stats: %v", err)
	}

	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-6s  %s\n", "Board", "Games", "Best", "Average", "Tile", "Last played")
	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-6s  %s\n", "-----", "-----", "----", "-------", "----", "-----------")
	for _, v := range t2048.Variants {
		s, ok := stats[v.Key]
		if !ok {
			fmt.Printf("  %-12s  %-6d  %-8s  %-8s  %-6s  %s\n", v.Name, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-8d  %-8.0f  %-6d  %s\n",
			v.Name, s.GamesCount, s.HighScore, s.AvgScore, s.BestTile, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
