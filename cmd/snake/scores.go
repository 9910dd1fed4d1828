package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagTUI   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores, highest first. Equal scores keep the
order they were recorded in.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --tui
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLeaderboardSize, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Show the interactive leaderboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return

	case flagTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.Leaderboard(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-7s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Length", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-6s  %-6s  %s\n", "----", "------", "-----", "------", "----", "----")

	for _, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-7d  %-6d  %-6s  %s\n",
			e.Rank,
			truncate(e.PlayerName, 16),
			e.Score,
			e.SnakeLength,
			fmt.Sprintf("%d:%02d", e.DurationSeconds/60, e.DurationSeconds%60),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
