// Package tui provides the Bubble Tea front end for the word search.
// It handles the terminal UI loop, mouse and key mapping, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a status message stays on screen.
const flashDuration = 3 * time.Second

// clearFlashMsg expires the status message with the given id.
type clearFlashMsg int

// clearFlashCmd returns a command that expires a status message after d.
// Newer messages carry a higher id, so stale expiries are ignored.
func clearFlashCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearFlashMsg(id)
	})
}
