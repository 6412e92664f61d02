package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"list"},
	Short:   "List the board variants",
	Long:    `Shows every board variant with its size, target tile and score key.`,
	Run:     runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	fmt.Println("Available boards:")
	fmt.Println()

	fmt.Printf("  %-8s  %-12s  %-5s  %-6s  %s\n", "ID", "Name", "Size", "Target", "Score key")
	fmt.Printf("  %-8s  %-12s  %-5s  %-6s  %s\n", "--", "----", "----", "------", "---------")

	for _, v := range t2048.Variants {
		size := fmt.Sprintf("%dx%d", v.Size, v.Size)
		fmt.Printf("  %-8s  %-12s  %-5s  %-6d  %s\n", v.ID, v.Name, size, v.Target, v.Key)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a board.")
}
