package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/wordsearch"
)

// boardTop is the screen row of the board frame; row 0 holds the title.
const boardTop = 1

// titleSuffixWidth reserves room for the mode and solved markers after the title.
const titleSuffixWidth = len("  [manual]  SOLVED")

// Model is the Bubble Tea model for one puzzle.
type Model struct {
	preset    config.PuzzleConfig
	params    wordsearch.Params
	runtime   core.RuntimeConfig
	session   *wordsearch.Session
	screen    *core.Screen
	layout    BoardLayout
	panel     WordPanel
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	cursor    wordsearch.Coord
	status    string
	statusID  int
	lastFound string
	quitting  bool
	back      bool
}

// NewModel generates a puzzle from preset and wraps it in a model.
// A nil logger discards output.
func NewModel(preset config.PuzzleConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	params, err := preset.Params()
	if err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		preset:  preset,
		params:  params,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger.With("preset", preset.ID),
		panel:   NewWordPanel(),
	}
	if err := m.generate(preset.InteractionMode()); err != nil {
		return Model{}, err
	}
	return m, nil
}

// generate builds a fresh grid and session, starting in the given mode.
func (m *Model) generate(mode wordsearch.Mode) error {
	seed := m.runtime.ResolveSeed()
	puzzle, err := wordsearch.Generate(m.params, m.runtime.NewRand())
	if err != nil {
		return fmt.Errorf("generate %s puzzle with seed %d: %w", m.preset.ID, seed, err)
	}

	for _, pl := range puzzle.Placements {
		m.logger.Debug("word placed",
			"word", pl.Word,
			"anchor", pl.Anchor,
			"direction", pl.Direction,
			"attempts", pl.Attempts,
			"scanned", pl.Scanned,
		)
	}
	m.logger.Info("puzzle generated",
		"seed", seed,
		"rows", m.params.Rows,
		"cols", m.params.Cols,
		"words", len(puzzle.Placements),
	)

	m.session = wordsearch.NewSession(puzzle)
	m.session.SetMode(mode)
	m.layout = NewBoardLayout(0, boardTop, m.params.Rows, m.params.Cols)
	width := max(m.layout.Frame.Right(), lipgloss.Width(m.preset.Title)+titleSuffixWidth)
	m.screen = core.NewScreen(width, m.layout.Frame.Bottom())
	m.cursor = wordsearch.C(0, 0)
	m.lastFound = ""
	m.panel.Sync(m.session, m.preset.Label)
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = panelWidth
		return m, nil

	case clearFlashMsg:
		if int(msg) == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleMouse maps left-button gestures on the board to the session.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cell, onBoard := m.layout.CellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onBoard {
			return m, nil
		}
		m.cursor = cell
		m.session.Press(cell)

	case tea.MouseActionMotion:
		if onBoard && m.session.Pressed() {
			m.cursor = cell
			m.session.Drag(cell)
		}

	case tea.MouseActionRelease:
		if !onBoard && m.session.Pressed() {
			// Letting go off the board abandons the drag.
			m.session.Cancel()
			return m, nil
		}
		attempted := m.session.Pressed() && m.session.Selection().State == wordsearch.StateDirected
		return m.finish(m.session.Release(), attempted)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.back = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dr, dc := action.Delta()
		m.cursor = wordsearch.C(
			core.Clamp(m.cursor.Row+dr, 0, m.params.Rows-1),
			core.Clamp(m.cursor.Col+dc, 0, m.params.Cols-1),
		)

	case core.ActionSelect:
		m.session.Touch(m.cursor)

	case core.ActionCheck:
		attempted := m.session.Selection().State == wordsearch.StateDirected
		return m.finish(m.session.Check(), attempted)

	case core.ActionCancel:
		m.session.Cancel()

	case core.ActionToggleMode:
		next := wordsearch.ModeManual
		if m.session.Mode() == wordsearch.ModeManual {
			next = wordsearch.ModeDrag
		}
		m.session.SetMode(next)
		m.logger.Debug("mode changed", "mode", next)
		return m.flash(fmt.Sprintf("%s mode", next))

	case core.ActionNewPuzzle:
		m.runtime.Seed = time.Now().UnixNano()
		if err := m.generate(m.session.Mode()); err != nil {
			m.logger.Error("new puzzle failed", "error", err)
			return m.flash("Could not build a new grid")
		}
		return m.flash("New grid")

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// finish reports the outcome of a finalized selection.
// attempted is true when a multi-cell selection was checked.
func (m Model) finish(res wordsearch.MatchResult, attempted bool) (tea.Model, tea.Cmd) {
	switch {
	case res.Matched:
		m.lastFound = res.Word
		m.panel.Sync(m.session, m.preset.Label)
		m.logger.Info("word found", "word", res.Word, "remaining", len(m.session.Remaining()))
		if res.Solved {
			m.logger.Info("puzzle solved", "seed", m.runtime.Seed)
			return m.flash("All words found! Press n for a new grid")
		}
		return m.flash("Found " + m.preset.Label(res.Word))

	case attempted:
		return m.flash("Not a word")
	}
	return m, nil
}

// flash shows a status message that expires after flashDuration.
func (m Model) flash(text string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	return m, clearFlashCmd(m.statusID, flashDuration)
}

// View renders the board beside the word panel, or above it on narrow terminals.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	title := fmt.Sprintf("%s  [%s]", m.preset.Title, m.session.Mode())
	if m.session.Solved() {
		title += "  SOLVED"
	}
	m.screen.DrawTextColored(0, 0, title, core.ColorTitle)
	DrawBoard(m.screen, m.layout, m.session, m.cursor)
	board := RenderScreen(m.screen)

	side := m.panel.View(panelInfo{
		Found:       len(m.session.Found()),
		Total:       len(m.session.Words()),
		Explanation: m.explanation(),
		Status:      m.status,
		Help:        m.help.View(m.keys),
	})

	if m.runtime.ScreenW > 0 && m.runtime.ScreenW < m.screen.Width()+panelGap+panelWidth {
		return lipgloss.JoinVertical(lipgloss.Left, board, side)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side)
}

// explanation returns the note for the most recently found word.
func (m Model) explanation() string {
	if m.lastFound == "" {
		return ""
	}
	entry, ok := m.preset.Entry(m.lastFound)
	if !ok || entry.Explanation == "" {
		return ""
	}
	return entry.Label() + ": " + entry.Explanation
}

// Session returns the underlying puzzle session.
func (m Model) Session() *wordsearch.Session {
	return m.session
}

// Status returns the current status message.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.runtime
}

// PuzzleResult holds the result of running a puzzle.
type PuzzleResult struct {
	Config     core.RuntimeConfig
	BackToMenu bool
	Solved     bool
}

// RunPuzzle runs one puzzle in the terminal with mouse support.
func RunPuzzle(preset config.PuzzleConfig, rt core.RuntimeConfig, logger *log.Logger) (PuzzleResult, error) {
	model, err := NewModel(preset, rt, logger)
	if err != nil {
		return PuzzleResult{Config: rt}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // press, drag and release events
	)

	finalModel, err := p.Run()
	if err != nil {
		return PuzzleResult{Config: rt}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return PuzzleResult{Config: rt}, nil
	}

	return PuzzleResult{
		Config:     m.Config(),
		BackToMenu: m.BackToMenu(),
		Solved:     m.Session().Solved(),
	}, nil
}
