package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordsearch/internal/wordsearch"
)

// Panel layout constants
const (
	panelWidth     = 36 // Width of the word list column
	panelGap       = 2  // Columns between board and panel
	wordColWidth   = 22
	statusColWidth = 7
)

var (
	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	panelBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	explanationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Italic(true).
				Width(panelWidth - 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	panelHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// WordPanel lists the puzzle words and marks the ones already found.
type WordPanel struct {
	table table.Model
}

// NewWordPanel creates an empty word list.
func NewWordPanel() WordPanel {
	columns := []table.Column{
		{Title: "Word", Width: wordColWidth},
		{Title: "Found", Width: statusColWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // the list is read-only
	t.SetStyles(s)

	return WordPanel{table: t}
}

// Sync rebuilds the rows from the session in list order.
func (p *WordPanel) Sync(sess *wordsearch.Session, label func(string) string) {
	words := sess.Words()
	rows := make([]table.Row, len(words))
	for i, w := range words {
		mark := ""
		if sess.IsWordFound(w) {
			mark = "✔"
		}
		rows[i] = table.Row{label(w), mark}
	}
	p.table.SetRows(rows)
	p.table.SetHeight(len(rows) + 2) // header and its border
	p.table.GotoTop()
}

// Rows returns the rendered rows, mainly for tests.
func (p WordPanel) Rows() []table.Row {
	return p.table.Rows()
}

// panelInfo is the per-frame text shown around the word list.
type panelInfo struct {
	Found       int
	Total       int
	Explanation string
	Status      string
	Help        string
}

// View renders the panel.
func (p WordPanel) View(info panelInfo) string {
	var b strings.Builder

	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("Words %d/%d", info.Found, info.Total)))
	b.WriteString("\n")
	b.WriteString(panelBoxStyle.Render(p.table.View()))
	b.WriteString("\n")

	if info.Explanation != "" {
		b.WriteString(explanationStyle.Render(info.Explanation))
		b.WriteString("\n")
	}
	if info.Status != "" {
		b.WriteString(statusStyle.Render(info.Status))
		b.WriteString("\n")
	}

	b.WriteString(panelHelpStyle.Render(info.Help))
	return b.String()
}
