package wordsearch

import (
	"github.com/zyedidia/generic/mapset"
)

// Mode selects how pointer gestures map onto selections.
type Mode uint8

const (
	// ModeDrag starts a fresh selection on press, extends it while the
	// pointer moves and finalizes it on release.
	ModeDrag Mode = iota
	// ModeManual extends one selection with every click until Check is called.
	ModeManual
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDrag:
		return "drag"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "drag", "":
		return ModeDrag, true
	case "manual", "click":
		return ModeManual, true
	default:
		return ModeDrag, false
	}
}

// MatchResult is the outcome of finalizing a selection.
type MatchResult struct {
	Matched bool
	Word    string
	Cells   []Coord
	Solved  bool // The match emptied the required set
}

// Session owns one puzzle: its grid, the required and found word sets, the
// cells of solved words and the in-progress selection.
//
// A Session is not safe for concurrent use; it expects its events serialized
// in arrival order, as a single UI loop delivers them.
type Session struct {
	puzzle     *Puzzle
	words      []string
	required   mapset.Set[string]
	found      mapset.Set[string]
	foundOrder []string
	foundCells mapset.Set[Coord]
	tracker    Tracker
	mode       Mode
	pressed    bool
}

// NewSession starts a session on a generated puzzle. Every placed word is
// required.
func NewSession(p *Puzzle) *Session {
	s := &Session{
		puzzle:     p,
		words:      p.Words(),
		required:   mapset.New[string](),
		found:      mapset.New[string](),
		foundCells: mapset.New[Coord](),
	}
	for _, w := range s.words {
		s.required.Put(w)
	}
	return s
}

// Puzzle returns the generated puzzle.
func (s *Session) Puzzle() *Puzzle {
	return s.puzzle
}

// Grid returns the puzzle grid.
func (s *Session) Grid() *Grid {
	return s.puzzle.Grid
}

// LetterAt returns the letter at c, or 0 outside the grid.
func (s *Session) LetterAt(c Coord) rune {
	return s.puzzle.Grid.At(c)
}

// IsFound reports whether c belongs to a solved word.
func (s *Session) IsFound(c Coord) bool {
	return s.foundCells.Has(c)
}

// IsSelected reports whether c is part of the current selection.
func (s *Session) IsSelected(c Coord) bool {
	return s.tracker.Contains(c)
}

// Selection returns a snapshot of the current selection.
func (s *Session) Selection() Snapshot {
	return s.tracker.Snapshot()
}

// Touch feeds one cell into the selection.
func (s *Session) Touch(c Coord) Snapshot {
	return s.tracker.Touch(c, s.LetterAt, s.IsFound)
}

// Reset discards the current selection. Calling it repeatedly is harmless.
func (s *Session) Reset() {
	s.tracker.Reset()
	s.pressed = false
}

// Finalize checks the selection against the required words and resets it.
//
// A match needs at least two aligned cells whose letters spell a word that
// is still required. On a match the cells become found, the word moves from
// required to found and Solved reports whether any words remain.
func (s *Session) Finalize() MatchResult {
	defer s.Reset()

	text := s.tracker.Text()
	if s.tracker.Len() < 2 || !s.tracker.Aligned() || !s.required.Has(text) {
		return MatchResult{}
	}

	cells := s.tracker.Snapshot().Cells
	for _, c := range cells {
		s.foundCells.Put(c)
	}
	s.required.Remove(text)
	s.found.Put(text)
	s.foundOrder = append(s.foundOrder, text)

	return MatchResult{
		Matched: true,
		Word:    text,
		Cells:   cells,
		Solved:  s.required.Size() == 0,
	}
}

// Solved reports whether every word has been found.
func (s *Session) Solved() bool {
	return s.required.Size() == 0
}

// IsRequired reports whether word still has to be found.
func (s *Session) IsRequired(word string) bool {
	return s.required.Has(word)
}

// IsWordFound reports whether word has been found.
func (s *Session) IsWordFound(word string) bool {
	return s.found.Has(word)
}

// Words returns every puzzle word in list order.
func (s *Session) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Remaining returns the required words in list order.
func (s *Session) Remaining() []string {
	out := make([]string, 0, s.required.Size())
	for _, w := range s.words {
		if s.required.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Found returns the found words in the order they were found.
func (s *Session) Found() []string {
	out := make([]string, len(s.foundOrder))
	copy(out, s.foundOrder)
	return out
}

// Mode returns the interaction mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode and discards any selection.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.Reset()
}

// Pressed reports whether a drag gesture is in progress.
func (s *Session) Pressed() bool {
	return s.pressed
}

// Press handles a pointer press on c. In drag mode it starts a new
// selection anchored at c; in manual mode it extends the current one.
// Presses on found cells are ignored.
func (s *Session) Press(c Coord) Snapshot {
	if s.LetterAt(c) == 0 || s.IsFound(c) {
		return s.Selection()
	}
	if s.mode == ModeDrag {
		s.tracker.Reset()
		s.pressed = true
	}
	return s.Touch(c)
}

// Drag handles pointer motion over c while a drag gesture is in progress.
func (s *Session) Drag(c Coord) Snapshot {
	if s.mode != ModeDrag || !s.pressed {
		return s.Selection()
	}
	return s.Touch(c)
}

// Release ends a drag gesture and finalizes its selection. In manual mode
// the selection is kept until Check.
func (s *Session) Release() MatchResult {
	if s.mode != ModeDrag || !s.pressed {
		return MatchResult{}
	}
	return s.Finalize()
}

// Check finalizes the current selection regardless of mode.
func (s *Session) Check() MatchResult {
	return s.Finalize()
}

// Cancel abandons the current gesture without finalizing it.
func (s *Session) Cancel() {
	s.Reset()
}
