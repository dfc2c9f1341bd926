package wordsearch

import "testing"

// board is a fixed letter layout for tracker tests.
type board struct {
	rows  []string
	found map[Coord]bool
}

func newBoard(rows ...string) *board {
	return &board{rows: rows, found: make(map[Coord]bool)}
}

func (b *board) letterAt(c Coord) rune {
	if c.Row < 0 || c.Row >= len(b.rows) || c.Col < 0 || c.Col >= len(b.rows[c.Row]) {
		return 0
	}
	return rune(b.rows[c.Row][c.Col])
}

func (b *board) isFound(c Coord) bool {
	return b.found[c]
}

func (b *board) touch(t *Tracker, cells ...Coord) Snapshot {
	var snap Snapshot
	for _, c := range cells {
		snap = t.Touch(c, b.letterAt, b.isFound)
	}
	return snap
}

func sameCells(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var testRows = []string{
	"CATXY",
	"QOWER",
	"ZXGTY",
	"ABCDE",
	"FGHIJ",
}

func TestTrackerStates(t *testing.T) {
	b := newBoard(testRows...)
	var tr Tracker

	if tr.State() != StateEmpty {
		t.Fatalf("zero tracker state = %v, want empty", tr.State())
	}

	b.touch(&tr, C(0, 0))
	if tr.State() != StateAnchored {
		t.Errorf("after first touch state = %v, want anchored", tr.State())
	}

	b.touch(&tr, C(0, 1))
	if tr.State() != StateDirected {
		t.Errorf("after second touch state = %v, want directed", tr.State())
	}

	tr.Reset()
	if tr.State() != StateEmpty || tr.Len() != 0 || tr.Text() != "" {
		t.Errorf("after reset: state=%v len=%d text=%q", tr.State(), tr.Len(), tr.Text())
	}
}

func TestTrackerDirectionLock(t *testing.T) {
	tests := []struct {
		name  string
		touch []Coord
		dir   Direction
		cells []Coord
		text  string
	}{
		{
			name:  "horizontal",
			touch: []Coord{C(0, 0), C(0, 1), C(0, 2)},
			dir:   DirHorizontal,
			cells: []Coord{C(0, 0), C(0, 1), C(0, 2)},
			text:  "CAT",
		},
		{
			name:  "vertical",
			touch: []Coord{C(0, 0), C(1, 0), C(2, 0)},
			dir:   DirVertical,
			cells: []Coord{C(0, 0), C(1, 0), C(2, 0)},
			text:  "CQZ",
		},
		{
			name:  "diagonal",
			touch: []Coord{C(0, 0), C(1, 1), C(2, 2)},
			dir:   DirDiagonal,
			cells: []Coord{C(0, 0), C(1, 1), C(2, 2)},
			text:  "COG",
		},
		{
			name:  "anti-diagonal",
			touch: []Coord{C(2, 0), C(1, 1), C(0, 2)},
			dir:   DirDiagonal,
			cells: []Coord{C(2, 0), C(1, 1), C(0, 2)},
			text:  "ZOT",
		},
		{
			name:  "knight move ignored before lock",
			touch: []Coord{C(0, 0), C(1, 2)},
			dir:   DirNone,
			cells: []Coord{C(0, 0)},
			text:  "C",
		},
		{
			name:  "anchor retouch ignored",
			touch: []Coord{C(0, 0), C(0, 0), C(1, 0)},
			dir:   DirVertical,
			cells: []Coord{C(0, 0), C(1, 0)},
			text:  "CQ",
		},
		{
			name:  "off-line cell ignored after lock",
			touch: []Coord{C(0, 0), C(1, 1), C(0, 2)},
			dir:   DirDiagonal,
			cells: []Coord{C(0, 0), C(1, 1)},
			text:  "CO",
		},
		{
			name:  "opposite side of anchor ignored",
			touch: []Coord{C(0, 2), C(0, 3), C(0, 0)},
			dir:   DirHorizontal,
			cells: []Coord{C(0, 2), C(0, 3)},
			text:  "TX",
		},
		{
			name:  "out of bounds ignored",
			touch: []Coord{C(0, 0), C(0, -1), C(-1, 0)},
			dir:   DirNone,
			cells: []Coord{C(0, 0)},
			text:  "C",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(testRows...)
			var tr Tracker
			snap := b.touch(&tr, tc.touch...)

			if snap.Direction != tc.dir {
				t.Errorf("direction = %v, want %v", snap.Direction, tc.dir)
			}
			if !sameCells(snap.Cells, tc.cells) {
				t.Errorf("cells = %v, want %v", snap.Cells, tc.cells)
			}
			if snap.Text != tc.text {
				t.Errorf("text = %q, want %q", snap.Text, tc.text)
			}
		})
	}
}

func TestTrackerLockedCellsStayOnLine(t *testing.T) {
	b := newBoard(testRows...)
	var tr Tracker
	b.touch(&tr, C(1, 1), C(1, 2))

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			before := tr.Snapshot()
			after := tr.Touch(C(r, c), b.letterAt, b.isFound)
			for _, cell := range after.Cells {
				if cell.Row != 1 {
					t.Fatalf("touch %v accepted off-row cell %v", C(r, c), cell)
				}
			}
			if r != 1 && !sameCells(before.Cells, after.Cells) {
				t.Errorf("touch %v off the locked row changed the selection", C(r, c))
			}
		}
	}
	if !tr.Aligned() {
		t.Error("selection should stay aligned")
	}
}

func TestTrackerBackfill(t *testing.T) {
	b := newBoard(testRows...)
	var tr Tracker
	snap := b.touch(&tr, C(0, 0), C(0, 4))

	want := []Coord{C(0, 0), C(0, 1), C(0, 2), C(0, 3), C(0, 4)}
	if !sameCells(snap.Cells, want) {
		t.Errorf("cells = %v, want %v", snap.Cells, want)
	}
	if snap.Text != "CATXY" {
		t.Errorf("text = %q, want CATXY", snap.Text)
	}
}

func TestTrackerBackfillAfterLock(t *testing.T) {
	b := newBoard(testRows...)
	var tr Tracker
	snap := b.touch(&tr, C(0, 0), C(1, 1), C(4, 4))

	want := []Coord{C(0, 0), C(1, 1), C(2, 2), C(3, 3), C(4, 4)}
	if !sameCells(snap.Cells, want) {
		t.Errorf("cells = %v, want %v", snap.Cells, want)
	}
}

func TestTrackerBackfillHaltsAtFoundCell(t *testing.T) {
	b := newBoard(testRows...)
	b.found[C(0, 2)] = true

	var tr Tracker
	snap := b.touch(&tr, C(0, 0), C(0, 4))

	want := []Coord{C(0, 0), C(0, 1)}
	if !sameCells(snap.Cells, want) {
		t.Errorf("cells = %v, want %v", snap.Cells, want)
	}
	if tr.Contains(C(0, 4)) {
		t.Error("target beyond a found cell must not be selected")
	}
}

func TestTrackerBlockedFirstStepKeepsDirectionOpen(t *testing.T) {
	b := newBoard(testRows...)
	b.found[C(0, 1)] = true

	var tr Tracker
	snap := b.touch(&tr, C(0, 0), C(0, 3))

	if snap.State != StateAnchored || snap.Direction != DirNone {
		t.Errorf("state=%v dir=%v, want anchored with no direction", snap.State, snap.Direction)
	}

	snap = b.touch(&tr, C(2, 0))
	if snap.Direction != DirVertical || snap.Text != "CQZ" {
		t.Errorf("after vertical touch: dir=%v text=%q, want vertical CQZ", snap.Direction, snap.Text)
	}
}

func TestTrackerIgnoresFoundAndSelectedCells(t *testing.T) {
	b := newBoard(testRows...)
	b.found[C(3, 3)] = true

	var tr Tracker
	snap := b.touch(&tr, C(3, 3))
	if snap.State != StateEmpty {
		t.Errorf("touching a found cell should not anchor, state = %v", snap.State)
	}

	b.touch(&tr, C(0, 0), C(0, 1), C(0, 2))
	snap = b.touch(&tr, C(0, 1))
	if snap.Text != "CAT" {
		t.Errorf("re-touching a selected cell changed text to %q", snap.Text)
	}
}

func TestTrackerSnapshotIsCopy(t *testing.T) {
	b := newBoard(testRows...)
	var tr Tracker
	snap := b.touch(&tr, C(0, 0), C(0, 1))
	snap.Cells[0] = C(4, 4)

	if tr.Snapshot().Cells[0] != C(0, 0) {
		t.Error("mutating a snapshot must not affect the tracker")
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		name  string
		cells []Coord
		want  bool
	}{
		{"empty", nil, false},
		{"single", []Coord{C(0, 0)}, false},
		{"row", []Coord{C(2, 1), C(2, 2), C(2, 3)}, true},
		{"column upward", []Coord{C(3, 1), C(2, 1), C(1, 1)}, true},
		{"diagonal", []Coord{C(0, 0), C(1, 1), C(2, 2)}, true},
		{"gap", []Coord{C(0, 0), C(0, 2)}, false},
		{"bend", []Coord{C(0, 0), C(0, 1), C(1, 2)}, false},
		{"reversal", []Coord{C(0, 1), C(0, 2), C(0, 1)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := aligned(tc.cells); got != tc.want {
				t.Errorf("aligned(%v) = %v, want %v", tc.cells, got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		dr, dc int
		want   Direction
	}{
		{0, 0, DirNone},
		{0, 3, DirHorizontal},
		{0, -1, DirHorizontal},
		{2, 0, DirVertical},
		{-4, 0, DirVertical},
		{2, 2, DirDiagonal},
		{-3, 3, DirDiagonal},
		{1, 2, DirNone},
	}

	for _, tc := range tests {
		if got := Classify(tc.dr, tc.dc); got != tc.want {
			t.Errorf("Classify(%d, %d) = %v, want %v", tc.dr, tc.dc, got, tc.want)
		}
	}
}
