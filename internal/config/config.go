// Package config provides YAML-based puzzle presets for the word search.
// Every difficulty variant is one PuzzleConfig fed to the same generator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordsearch/internal/wordsearch"
)

// PuzzleConfig describes one puzzle preset.
type PuzzleConfig struct {
	ID               string      `yaml:"id"`
	Title            string      `yaml:"title"`
	Rows             int         `yaml:"rows"`
	Cols             int         `yaml:"cols"`
	HorizontalPrefix int         `yaml:"horizontal_prefix"` // First N words are forced horizontal
	MaxAttempts      int         `yaml:"max_attempts"`      // Random placement attempts per word
	Mode             string      `yaml:"mode"`              // "drag" or "manual"
	Words            []WordEntry `yaml:"words"`
}

// WordEntry is one word to hide, with its presentation text.
type WordEntry struct {
	Word        string        `yaml:"word"`
	Display     string        `yaml:"display,omitempty"`     // Defaults to Word as written
	Explanation string        `yaml:"explanation,omitempty"` // Shown once the word is found
	Direction   string        `yaml:"direction,omitempty"`   // horizontal, vertical, diagonal or empty
	Anchor      *AnchorConfig `yaml:"anchor,omitempty"`      // Pins the first letter
}

// AnchorConfig is a grid position in YAML form.
type AnchorConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Preset names a shipped puzzle configuration.
type Preset string

const (
	PresetEasy Preset = "easy"
	PresetHard Preset = "hard"
)

// Presets returns the shipped presets in display order.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetHard}
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid puzzle config")

// Label returns the text shown for the entry in word lists.
func (w WordEntry) Label() string {
	if w.Display != "" {
		return w.Display
	}
	return strings.ToUpper(strings.TrimSpace(w.Word))
}

// Validate checks the config without generating a grid.
func (c PuzzleConfig) Validate() error {
	_, err := c.Params()
	return err
}

// Params converts the config into generator parameters.
func (c PuzzleConfig) Params() (wordsearch.Params, error) {
	p := wordsearch.Params{
		Rows:        c.Rows,
		Cols:        c.Cols,
		MaxAttempts: c.MaxAttempts,
	}

	if c.Rows <= 0 || c.Cols <= 0 {
		return p, fmt.Errorf("%w: %s: rows and cols must be positive, got %dx%d", ErrInvalidConfig, c.ID, c.Rows, c.Cols)
	}
	if len(c.Words) == 0 {
		return p, fmt.Errorf("%w: %s: no words", ErrInvalidConfig, c.ID)
	}
	if c.HorizontalPrefix < 0 || c.HorizontalPrefix > len(c.Words) {
		return p, fmt.Errorf("%w: %s: horizontal_prefix %d out of range", ErrInvalidConfig, c.ID, c.HorizontalPrefix)
	}
	if _, ok := wordsearch.ParseMode(c.Mode); !ok {
		return p, fmt.Errorf("%w: %s: unknown mode %q", ErrInvalidConfig, c.ID, c.Mode)
	}

	seen := make(map[string]bool, len(c.Words))
	p.Words = make([]wordsearch.Request, len(c.Words))
	for i, entry := range c.Words {
		word, err := wordsearch.NormalizeWord(entry.Word)
		if err != nil {
			return p, fmt.Errorf("%w: %s: word %d: %w", ErrInvalidConfig, c.ID, i+1, err)
		}
		if seen[word] {
			return p, fmt.Errorf("%w: %s: duplicate word %s", ErrInvalidConfig, c.ID, word)
		}
		seen[word] = true

		dir, ok := wordsearch.ParseDirection(entry.Direction)
		if !ok {
			return p, fmt.Errorf("%w: %s: word %s: unknown direction %q", ErrInvalidConfig, c.ID, word, entry.Direction)
		}
		if i < c.HorizontalPrefix && dir == wordsearch.DirNone {
			dir = wordsearch.DirHorizontal
		}

		req := wordsearch.Request{Word: word, Direction: dir}
		if entry.Anchor != nil {
			anchor := wordsearch.C(entry.Anchor.Row, entry.Anchor.Col)
			if anchor.Row < 0 || anchor.Row >= c.Rows || anchor.Col < 0 || anchor.Col >= c.Cols {
				return p, fmt.Errorf("%w: %s: word %s: anchor %v outside grid", ErrInvalidConfig, c.ID, word, anchor)
			}
			req.Anchor = &anchor
		}
		p.Words[i] = req
	}

	return p, nil
}

// InteractionMode returns the configured starting mode.
func (c PuzzleConfig) InteractionMode() wordsearch.Mode {
	m, _ := wordsearch.ParseMode(c.Mode)
	return m
}

// Entry returns the word entry whose grid form equals word.
func (c PuzzleConfig) Entry(word string) (WordEntry, bool) {
	for _, e := range c.Words {
		if norm, err := wordsearch.NormalizeWord(e.Word); err == nil && norm == word {
			return e, true
		}
	}
	return WordEntry{}, false
}

// Label returns the display label for a grid word, falling back to the word.
func (c PuzzleConfig) Label(word string) string {
	if e, ok := c.Entry(word); ok {
		return e.Label()
	}
	return word
}
