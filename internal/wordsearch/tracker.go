package wordsearch

// State is the phase of an in-progress selection.
type State uint8

const (
	StateEmpty    State = iota // No cell selected
	StateAnchored              // Anchor chosen, direction unset
	StateDirected              // Direction locked by a second distinct cell
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAnchored:
		return "anchored"
	case StateDirected:
		return "directed"
	default:
		return "unknown"
	}
}

// LetterFunc returns the letter at a cell, or 0 when the cell does not exist.
type LetterFunc func(Coord) rune

// FoundFunc reports whether a cell belongs to an already solved word.
type FoundFunc func(Coord) bool

// Snapshot is a copy of the selection state.
type Snapshot struct {
	Cells     []Coord
	Direction Direction
	Text      string
	State     State
}

// Anchor returns the first selected cell.
func (s Snapshot) Anchor() (Coord, bool) {
	if len(s.Cells) == 0 {
		return Coord{}, false
	}
	return s.Cells[0], true
}

// Tracker accumulates touched cells into a single straight selection.
// The zero value is an empty tracker ready for use.
//
// Invariant: cells[i] == anchor + i*step for every i, so the selection is
// always contiguous and ordered away from the anchor.
type Tracker struct {
	cells  []Coord
	text   []rune
	dir    Direction
	stepR  int
	stepC  int
	state  State
	lookup map[Coord]struct{}
}

// State returns the current phase.
func (t *Tracker) State() State {
	return t.state
}

// Len returns the number of selected cells.
func (t *Tracker) Len() int {
	return len(t.cells)
}

// Text returns the concatenated letters of the selection.
func (t *Tracker) Text() string {
	return string(t.text)
}

// Contains reports whether c is part of the selection.
func (t *Tracker) Contains(c Coord) bool {
	_, ok := t.lookup[c]
	return ok
}

// Snapshot returns a copy of the selection state.
func (t *Tracker) Snapshot() Snapshot {
	cells := make([]Coord, len(t.cells))
	copy(cells, t.cells)
	return Snapshot{
		Cells:     cells,
		Direction: t.dir,
		Text:      string(t.text),
		State:     t.state,
	}
}

// Reset clears the selection back to StateEmpty.
func (t *Tracker) Reset() {
	t.cells = t.cells[:0]
	t.text = t.text[:0]
	t.dir = DirNone
	t.stepR, t.stepC = 0, 0
	t.state = StateEmpty
	for c := range t.lookup {
		delete(t.lookup, c)
	}
}

// Touch feeds one touched cell into the selection.
//
// The first touch anchors the selection. The first later touch whose delta
// from the anchor is horizontal, vertical or 45-degree diagonal locks the
// direction and the step sign; other deltas are ignored. Once locked, only
// cells on the anchor's ray are accepted, and cells skipped between the last
// selected cell and the touched one are backfilled. A found cell on the way
// halts the backfill and the touched cell is not added. Touching a found
// cell, a missing cell or an already selected cell changes nothing.
func (t *Tracker) Touch(c Coord, letterAt LetterFunc, isFound FoundFunc) Snapshot {
	letter := letterAt(c)
	if letter == 0 || isFound(c) || t.Contains(c) {
		return t.Snapshot()
	}

	switch t.state {
	case StateEmpty:
		t.add(c, letter)
		t.state = StateAnchored
		return t.Snapshot()

	case StateAnchored:
		dr, dc := t.cells[0].Delta(c)
		d := Classify(dr, dc)
		if d == DirNone {
			return t.Snapshot()
		}
		t.dir, t.stepR, t.stepC = d, sign(dr), sign(dc)
		if t.extend(c, letterAt, isFound) == 0 {
			// Blocked before any cell was added; keep the direction open.
			t.dir, t.stepR, t.stepC = DirNone, 0, 0
			return t.Snapshot()
		}
		t.state = StateDirected
		return t.Snapshot()

	default:
		if t.onRay(c) {
			t.extend(c, letterAt, isFound)
		}
		return t.Snapshot()
	}
}

// Aligned reports whether the selection has at least two cells that lie on
// one straight line with a constant unit step.
func (t *Tracker) Aligned() bool {
	return aligned(t.cells)
}

func aligned(cells []Coord) bool {
	if len(cells) < 2 {
		return false
	}
	dr, dc := cells[0].Delta(cells[1])
	if Classify(dr, dc) == DirNone || abs(dr) > 1 || abs(dc) > 1 {
		return false
	}
	for i := 2; i < len(cells); i++ {
		r, c := cells[i-1].Delta(cells[i])
		if r != dr || c != dc {
			return false
		}
	}
	return true
}

// onRay reports whether c lies beyond the anchor along the locked step.
func (t *Tracker) onRay(c Coord) bool {
	dr, dc := t.cells[0].Delta(c)
	k := max(abs(dr), abs(dc))
	return k > 0 && dr == k*t.stepR && dc == k*t.stepC
}

// extend walks from the last selected cell toward target, adding each cell
// until target is reached or a found or missing cell blocks the way.
// It returns the number of cells added.
func (t *Tracker) extend(target Coord, letterAt LetterFunc, isFound FoundFunc) int {
	added := 0
	cur := t.cells[len(t.cells)-1]
	for cur != target {
		cur = cur.Add(t.stepR, t.stepC)
		letter := letterAt(cur)
		if letter == 0 || isFound(cur) {
			break
		}
		t.add(cur, letter)
		added++
	}
	return added
}

func (t *Tracker) add(c Coord, letter rune) {
	if t.lookup == nil {
		t.lookup = make(map[Coord]struct{})
	}
	t.cells = append(t.cells, c)
	t.text = append(t.text, letter)
	t.lookup[c] = struct{}{}
}
