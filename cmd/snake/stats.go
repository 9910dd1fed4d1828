package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if stats.TotalGames == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	played := stats.TotalPlayTimeSeconds
	fmt.Printf("Games played:   %d\n", stats.TotalGames)
	fmt.Printf("Best score:     %d\n", stats.BestScore)
	fmt.Printf("Average score:  %.1f\n", stats.AverageScore)
	fmt.Printf("Longest snake:  %d\n", stats.LongestSnake)
	fmt.Printf("Time played:    %dh %02dm %02ds\n", played/3600, played/60%60, played%60)
	fmt.Printf("Last played:    %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
}
