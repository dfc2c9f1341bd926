package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/wordsearch"
)

var flagSolution bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated grid",
	Long: `Generate a grid from the chosen preset and print it with its word list.

With --solution, filler letters are hidden and each word's position and
direction are listed. The seed used is always printed so the same grid
can be played with 'wordsearch play --seed'.

Examples:
  wordsearch generate
  wordsearch generate --preset hard --seed 42 --solution`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagSolution, "solution", false, "Show word positions instead of filler letters")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "wordsearch")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	preset, err := config.Load(flagPreset, flagConfig)
	if err != nil {
		return err
	}
	params, err := preset.Params()
	if err != nil {
		return err
	}

	rt := core.RuntimeConfig{Seed: flagSeed}
	puzzle, err := wordsearch.Generate(params, rt.NewRand())
	if err != nil {
		logger.Error("generation failed", "preset", preset.ID, "seed", rt.Seed, "error", err)
		return err
	}
	for _, pl := range puzzle.Placements {
		if pl.Scanned {
			logger.Warn("random placement exhausted, used scan", "word", pl.Word, "attempts", pl.Attempts)
		}
	}

	writePuzzle(cmd.OutOrStdout(), preset, puzzle, rt.Seed, flagSolution)
	return nil
}

// writePuzzle prints the grid, one spaced row per line, followed by the word list.
func writePuzzle(w io.Writer, preset config.PuzzleConfig, puzzle *wordsearch.Puzzle, seed int64, solution bool) {
	g := puzzle.Grid

	onWord := mapset.New[wordsearch.Coord]()
	if solution {
		for _, pl := range puzzle.Placements {
			for _, c := range pl.Cells() {
				onWord.Put(c)
			}
		}
	}

	fmt.Fprintf(w, "%s (%dx%d, seed %d)\n\n", preset.Title, g.Rows(), g.Cols(), seed)

	for r := 0; r < g.Rows(); r++ {
		letters := make([]string, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			cell := wordsearch.C(r, c)
			if solution && !onWord.Has(cell) {
				letters[c] = "."
				continue
			}
			letters[c] = string(g.At(cell))
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(letters, " "))
	}

	fmt.Fprintln(w)
	for i, pl := range puzzle.Placements {
		label := preset.Label(pl.Word)
		if solution {
			fmt.Fprintf(w, "  %2d. %-20s %-10s at %v\n", i+1, label, pl.Direction, pl.Anchor)
		} else {
			fmt.Fprintf(w, "  %2d. %s\n", i+1, label)
		}
	}
}
