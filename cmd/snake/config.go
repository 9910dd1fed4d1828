package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.snake/configs/snake.yaml or ./configs/snake.yaml to
override the defaults, or pass a file with --config.

Examples:
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	os.Stdout.Write(config.GetDefaultYAML())

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Difficulty presets:")
	for _, p := range config.Presets {
		fmt.Fprintf(os.Stderr, "  %s\n", p)
	}
}
