// wordsearch is a terminal word search puzzle with mouse selection.
//
// Usage:
//
//	wordsearch list              - List available puzzle presets
//	wordsearch play              - Play a puzzle
//	wordsearch menu              - Pick presets interactively
//	wordsearch generate          - Print a generated grid
//	wordsearch serve             - Start SSH server for remote play
//
// Global flags:
//
//	--preset <id>       - Puzzle preset (default: easy)
//	--config <path>     - Custom puzzle YAML, overrides the preset lookup
//	--seed <value>      - RNG seed for a reproducible grid
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagPreset   string
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Word search - find hidden words in a letter grid",
	Long: `Word search hides a list of words in a grid of random letters.
Drag across a word with the mouse, or click its letters one by one in
manual mode, to mark it found.

Available commands:
  list      - Show the puzzle presets
  play      - Play a puzzle directly
  menu      - Interactive preset picker
  generate  - Print a grid without playing
  serve     - Start SSH server for remote play

Examples:
  wordsearch play
  wordsearch play --preset hard --seed 42
  wordsearch play --config ./my-words.yaml
  wordsearch generate --seed 7 --solution
  wordsearch serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "easy", "Puzzle preset id")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}
