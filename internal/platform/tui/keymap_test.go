package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runeKey("j"), core.ActionDown},
		{"vim left", runeKey("h"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space selects", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionSelect},
		{"enter checks", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionCheck},
		{"tab toggles mode", tea.KeyMsg{Type: tea.KeyTab}, core.ActionToggleMode},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"n new puzzle", runeKey("n"), core.ActionNewPuzzle},
		{"? help", runeKey("?"), core.ActionHelp},
		{"b back", runeKey("b"), core.ActionBack},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys.Action(tc.msg))
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()

	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	assert.Equal(t, 12, n, "every binding should appear in full help")
	assert.NotEmpty(t, keys.ShortHelp())
}
