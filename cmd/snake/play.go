package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/report"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL - Steer
  Space/Enter      - Start, or play again after game over
  P/Esc            - Pause
  Tab              - Leaderboard
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start and slower top speed
  normal - Configured speeds
  hard   - Faster start and faster top speed
  fixed  - Configured starting speed, never speeds up

Examples:
  snake play
  snake play --difficulty easy
  snake play --player ann --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your scores")
}

func defaultPlayer() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return snake.DefaultPlayerName
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadWithPreset(flagConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open score storage (optional - game works without it)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Scores will not be saved.")
		store = nil
	} else {
		defer store.Close()
	}

	opts := []snake.Option{
		snake.WithReporter(report.ForStore(store, logger)),
		snake.WithPlayerName(flagPlayer),
		snake.WithLogger(logger),
	}
	if flagSeed != 0 {
		opts = append(opts, snake.WithSeed(flagSeed))
	}

	ctrl, err := snake.New(cfg.Engine(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(ctrl, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
