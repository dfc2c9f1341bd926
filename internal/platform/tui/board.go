package tui

import (
	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/wordsearch"
)

// cellWidth is the number of terminal columns one grid cell occupies.
const cellWidth = 2

// BoardLayout places a grid on the screen and maps mouse positions back to cells.
//
// The frame holds one padding column on the left, then each cell as a letter
// followed by a space. A cell owns its letter and the space after it; the
// left padding belongs to the first column.
type BoardLayout struct {
	Frame core.Rect
	Rows  int
	Cols  int
}

// NewBoardLayout positions a rows x cols board with its frame corner at (x, y).
func NewBoardLayout(x, y, rows, cols int) BoardLayout {
	return BoardLayout{
		Frame: core.NewRect(x, y, cols*cellWidth+3, rows+2),
		Rows:  rows,
		Cols:  cols,
	}
}

// CellAt returns the grid cell under screen position (x, y).
func (l BoardLayout) CellAt(x, y int) (wordsearch.Coord, bool) {
	in := l.Frame.Inset(1)
	if !in.Contains(x, y) {
		return wordsearch.Coord{}, false
	}
	col := min(max(x-in.X-1, 0)/cellWidth, l.Cols-1)
	return wordsearch.C(y-in.Y, col), true
}

// LetterPos returns the screen position where the letter of c is drawn.
func (l BoardLayout) LetterPos(c wordsearch.Coord) (x, y int) {
	in := l.Frame.Inset(1)
	return in.X + c.Col*cellWidth + 1, in.Y + c.Row
}

// DrawBoard draws the framed grid with found, selected and cursor highlights.
func DrawBoard(s *core.Screen, l BoardLayout, sess *wordsearch.Session, cursor wordsearch.Coord) {
	s.DrawBox(l.Frame, core.ColorFrame)

	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			cell := wordsearch.C(r, c)
			color := core.ColorLetter
			switch {
			case cell == cursor:
				color = core.ColorCursor
			case sess.IsSelected(cell):
				color = core.ColorSelected
			case sess.IsFound(cell):
				color = core.ColorFound
			}
			x, y := l.LetterPos(cell)
			s.SetColored(x, y, sess.LetterAt(cell), color)
		}
	}
}
