package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/wordsearch"
)

func TestBoardLayoutCellAtRoundTrip(t *testing.T) {
	l := NewBoardLayout(3, 2, 4, 6)

	for r := 0; r < 4; r++ {
		for c := 0; c < 6; c++ {
			want := wordsearch.C(r, c)
			x, y := l.LetterPos(want)
			got, ok := l.CellAt(x, y)
			assert.True(t, ok, "letter of %v should be on the board", want)
			assert.Equal(t, want, got)

			// The column right of a letter belongs to the same cell.
			got, ok = l.CellAt(x+1, y)
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}
	}
}

func TestBoardLayoutCellAtEdges(t *testing.T) {
	l := NewBoardLayout(0, 1, 3, 3)

	tests := []struct {
		name string
		x, y int
		ok   bool
		want wordsearch.Coord
	}{
		{"frame corner", 0, 1, false, wordsearch.Coord{}},
		{"title row", 4, 0, false, wordsearch.Coord{}},
		{"left padding", 1, 2, true, wordsearch.C(0, 0)},
		{"right padding", 7, 4, true, wordsearch.C(2, 2)},
		{"right frame", 8, 2, false, wordsearch.Coord{}},
		{"bottom frame", 3, 5, false, wordsearch.Coord{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.CellAt(tc.x, tc.y)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestDrawBoardHighlights(t *testing.T) {
	m := newTestModel(t)
	sess := m.Session()

	sess.Touch(wordsearch.C(0, 0))
	sess.Touch(wordsearch.C(0, 2))
	sess.Finalize()
	sess.Touch(wordsearch.C(2, 0))
	sess.Touch(wordsearch.C(2, 1))

	s := core.NewScreen(m.layout.Frame.Right(), m.layout.Frame.Bottom())
	DrawBoard(s, m.layout, sess, wordsearch.C(4, 4))

	cellColor := func(c wordsearch.Coord) core.Color {
		x, y := m.layout.LetterPos(c)
		return s.GetCell(x, y).Color
	}

	assert.Equal(t, core.ColorFound, cellColor(wordsearch.C(0, 1)))
	assert.Equal(t, core.ColorSelected, cellColor(wordsearch.C(2, 1)))
	assert.Equal(t, core.ColorCursor, cellColor(wordsearch.C(4, 4)))
	assert.Equal(t, core.ColorLetter, cellColor(wordsearch.C(3, 3)))

	x, y := m.layout.LetterPos(wordsearch.C(0, 0))
	assert.Equal(t, 'C', s.GetCell(x, y).Rune)
	assert.Equal(t, '┌', s.GetCell(m.layout.Frame.X, m.layout.Frame.Y).Rune)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "CAT", core.ColorFound)
	s.DrawTextColored(4, 0, "DOG", core.ColorDefault)
	s.DrawTextColored(0, 1, "EEL", core.ColorSelected)

	out := RenderScreen(s)
	assert.Contains(t, out, "CAT")
	assert.Contains(t, out, "DOG")
	assert.Contains(t, out, "EEL")
	assert.Contains(t, out, "\n")
}
