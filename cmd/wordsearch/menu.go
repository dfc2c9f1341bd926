package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a puzzle preset interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a preset, Enter to play it.
Press B during a puzzle to return to the menu.

A --config file is listed after the shipped presets.

Examples:
  wordsearch menu
  wordsearch menu --config ./my-words.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "wordsearch")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	presets, err := menuPresets()
	if err != nil {
		return err
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(presets, cfg)
		if err != nil {
			return err
		}

		cfg = menuResult.Config
		if menuResult.Quit {
			break
		}

		result, err := tui.RunPuzzle(menuResult.Preset, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		cfg = result.Config
		cfg.Seed = flagSeed

		if !result.BackToMenu {
			break
		}
	}
	return nil
}

// menuPresets returns the shipped presets plus --config, if set.
func menuPresets() ([]config.PuzzleConfig, error) {
	presets, err := config.LoadAll()
	if err != nil {
		return nil, err
	}
	if flagConfig != "" {
		custom, err := config.Load("custom", flagConfig)
		if err != nil {
			return nil, err
		}
		presets = append(presets, custom)
	}
	return presets, nil
}
