package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
	"github.com/vovakirdan/tui-wordsearch/internal/wordsearch"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle",
	Long: `Generate a grid from the chosen preset and play it.

Mouse:
  Drag mode    - press on the first letter, drag to the last, release
  Manual mode  - click letters one at a time, then press Enter

Keys:
  Arrows/hjkl  - Move the cursor
  Space        - Select the letter under the cursor
  Enter        - Check the selection
  Tab          - Switch drag/manual mode
  Esc          - Clear the selection
  N            - New grid
  Q/Ctrl+C     - Quit

Examples:
  wordsearch play
  wordsearch play --preset hard
  wordsearch play --mode manual --seed 42
  wordsearch play --config ./my-words.yaml --log-file ws.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Starting mode: drag or manual (default from preset)")
}

// terminalConfig builds a runtime config from the terminal size and --seed.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// loadPreset loads --preset, or --config when given, and applies --mode.
func loadPreset() (config.PuzzleConfig, error) {
	preset, err := config.Load(flagPreset, flagConfig)
	if err != nil {
		return preset, err
	}
	if flagMode != "" {
		if _, ok := wordsearch.ParseMode(flagMode); !ok {
			return preset, fmt.Errorf("unknown --mode %q", flagMode)
		}
		preset.Mode = flagMode
	}
	return preset, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "wordsearch")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	preset, err := loadPreset()
	if err != nil {
		return fmt.Errorf("%w (run 'wordsearch list' to see available presets)", err)
	}

	result, err := tui.RunPuzzle(preset, terminalConfig(), logger)
	if err != nil {
		return err
	}
	if result.Solved {
		fmt.Fprintln(cmd.OutOrStdout(), "All words found. Well done!")
	}
	return nil
}
