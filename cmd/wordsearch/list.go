package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the puzzle presets",
	Long:  `Shows every shipped puzzle preset with its grid size and word count.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	presets, err := config.LoadAll()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Available presets:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Words", "Title")
	fmt.Fprintf(w, "  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-----")

	for _, p := range presets {
		size := fmt.Sprintf("%dx%d", p.Rows, p.Cols)
		fmt.Fprintf(w, "  %-*s  %-7s  %-5d  %s\n", maxIDLen, p.ID, size, len(p.Words), p.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'wordsearch play --preset <id>' to play.")
	return nil
}
