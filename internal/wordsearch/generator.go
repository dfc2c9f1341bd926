package wordsearch

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// DefaultMaxAttempts is the number of random anchors tried per word before
// the generator falls back to scanning every anchor.
const DefaultMaxAttempts = 100

// Request asks the generator to place one word.
type Request struct {
	Word      string
	Direction Direction // DirNone picks uniformly among the placement directions
	Anchor    *Coord    // Pins the first letter; nil means random
}

// Params configures grid generation.
type Params struct {
	Rows        int
	Cols        int
	Words       []Request
	MaxAttempts int // Random attempts per word (default DefaultMaxAttempts)
}

// DefaultParams returns a 20x20 grid with the default attempt budget.
func DefaultParams() Params {
	return Params{
		Rows:        20,
		Cols:        20,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Words builds unconstrained requests for a plain word list.
// The first horizontalPrefix words are forced horizontal.
func Words(words []string, horizontalPrefix int) []Request {
	reqs := make([]Request, len(words))
	for i, w := range words {
		reqs[i] = Request{Word: w}
		if i < horizontalPrefix {
			reqs[i].Direction = DirHorizontal
		}
	}
	return reqs
}

// Placement records where a word was written.
type Placement struct {
	Word      string
	Anchor    Coord
	Direction Direction
	Attempts  int  // Random attempts used, including the successful one
	Scanned   bool // Placed by the exhaustive fallback scan
}

// Cells returns the coordinates the word occupies, in reading order.
func (p Placement) Cells() []Coord {
	dr, dc := p.Direction.Step()
	cells := make([]Coord, len(p.Word))
	for i := range cells {
		cells[i] = p.Anchor.Add(i*dr, i*dc)
	}
	return cells
}

// End returns the coordinate of the last letter.
func (p Placement) End() Coord {
	dr, dc := p.Direction.Step()
	n := len(p.Word) - 1
	return p.Anchor.Add(n*dr, n*dc)
}

// Puzzle is a generated grid together with the placement of every word.
type Puzzle struct {
	Grid       *Grid
	Placements []Placement // Same order as the requested words
}

// Words returns the placed words in request order.
func (p *Puzzle) Words() []string {
	words := make([]string, len(p.Placements))
	for i, pl := range p.Placements {
		words[i] = pl.Word
	}
	return words
}

// Placement returns the placement of word, if present.
func (p *Puzzle) Placement(word string) (Placement, bool) {
	for _, pl := range p.Placements {
		if pl.Word == word {
			return pl, true
		}
	}
	return Placement{}, false
}

// NormalizeWord uppercases w and strips spaces and punctuation so that
// multi-word terms like "problem analysis" become "PROBLEMANALYSIS".
func NormalizeWord(w string) (string, error) {
	var sb strings.Builder
	for _, r := range w {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyWord
	}
	return sb.String(), nil
}

// Generate builds a fully populated grid containing every requested word.
//
// Words with a pinned anchor are placed first, then the rest in request
// order. Each word gets MaxAttempts random anchors; if none fits, every anchor
// of every allowed direction is scanned in row-major order. Words that still
// cannot be placed are reported together in an *UnplacedWordError. Placed words
// never share a cell, even where their letters would agree. Remaining cells
// are filled with uniformly random letters A-Z.
func Generate(p Params, rng *rand.Rand) (*Puzzle, error) {
	reqs, err := p.normalize()
	if err != nil {
		return nil, err
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}

	grid := NewGrid(p.Rows, p.Cols)
	placements := make([]Placement, len(reqs))
	placed := make([]bool, len(reqs))

	for _, pinned := range []bool{true, false} {
		for i, req := range reqs {
			if (req.Anchor != nil) != pinned {
				continue
			}
			pl, ok := placeWord(grid, req, p.MaxAttempts, rng)
			if ok {
				placements[i] = pl
				placed[i] = true
			}
		}
	}

	var unplaced []string
	for i, ok := range placed {
		if !ok {
			unplaced = append(unplaced, reqs[i].Word)
		}
	}
	if len(unplaced) > 0 {
		return nil, &UnplacedWordError{Words: unplaced, Rows: p.Rows, Cols: p.Cols}
	}

	fillEmpty(grid, rng)

	return &Puzzle{Grid: grid, Placements: placements}, nil
}

// normalize validates the parameters and returns uppercase requests.
func (p Params) normalize() ([]Request, error) {
	if p.Rows <= 0 || p.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Rows, p.Cols)
	}
	if len(p.Words) == 0 {
		return nil, ErrNoWords
	}

	seen := make(map[string]bool, len(p.Words))
	reqs := make([]Request, len(p.Words))
	for i, req := range p.Words {
		word, err := NormalizeWord(req.Word)
		if err != nil {
			return nil, err
		}
		if seen[word] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWord, word)
		}
		seen[word] = true

		if !fitsDimensions(len(word), p.Rows, p.Cols, req.Direction) {
			return nil, fmt.Errorf("%w: %s (%d letters, %s) in %dx%d",
				ErrWordTooLong, word, len(word), req.Direction, p.Rows, p.Cols)
		}

		req.Word = word
		reqs[i] = req
	}
	return reqs, nil
}

// fitsDimensions reports whether a word of length n fits an empty grid in
// direction d, or in any placement direction when d is DirNone.
func fitsDimensions(n, rows, cols int, d Direction) bool {
	switch d {
	case DirHorizontal:
		return n <= cols
	case DirVertical:
		return n <= rows
	case DirDiagonal:
		return n <= rows && n <= cols
	default:
		return n <= rows || n <= cols
	}
}

// allowedDirections lists the directions a request may be placed in.
func allowedDirections(req Request) []Direction {
	if req.Direction != DirNone {
		return []Direction{req.Direction}
	}
	return placementDirections[:]
}

// placeWord tries to write one word into the grid.
func placeWord(g *Grid, req Request, budget int, rng *rand.Rand) (Placement, bool) {
	dirs := allowedDirections(req)

	if req.Anchor != nil {
		for _, d := range dirs {
			if fits(g, req.Word, *req.Anchor, d) {
				write(g, req.Word, *req.Anchor, d)
				return Placement{Word: req.Word, Anchor: *req.Anchor, Direction: d, Attempts: 1}, true
			}
		}
		return Placement{}, false
	}

	for attempt := 1; attempt <= budget; attempt++ {
		d := req.Direction
		if d == DirNone {
			d = placementDirections[rng.Intn(len(placementDirections))]
		}
		anchor := C(rng.Intn(g.rows), rng.Intn(g.cols))
		if fits(g, req.Word, anchor, d) {
			write(g, req.Word, anchor, d)
			return Placement{Word: req.Word, Anchor: anchor, Direction: d, Attempts: attempt}, true
		}
	}

	// Random attempts exhausted; scan deterministically so a word is only
	// reported unplaced when no anchor can hold it.
	for _, d := range dirs {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				anchor := C(r, c)
				if fits(g, req.Word, anchor, d) {
					write(g, req.Word, anchor, d)
					return Placement{Word: req.Word, Anchor: anchor, Direction: d, Attempts: budget, Scanned: true}, true
				}
			}
		}
	}

	return Placement{}, false
}

// fits reports whether word can be written at anchor along d.
// Bounds are checked before occupancy; any written cell is a conflict.
func fits(g *Grid, word string, anchor Coord, d Direction) bool {
	dr, dc := d.Step()
	if dr == 0 && dc == 0 {
		return false
	}
	n := len(word) - 1
	if !g.InBounds(anchor) || !g.InBounds(anchor.Add(n*dr, n*dc)) {
		return false
	}
	for i := range word {
		if !g.IsEmpty(anchor.Add(i*dr, i*dc)) {
			return false
		}
	}
	return true
}

func write(g *Grid, word string, anchor Coord, d Direction) {
	dr, dc := d.Step()
	for i, r := range word {
		g.set(anchor.Add(i*dr, i*dc), r)
	}
}

// fillEmpty assigns a random uppercase letter to every unwritten cell.
func fillEmpty(g *Grid, rng *rand.Rand) {
	for i, r := range g.cells {
		if r == 0 {
			g.cells[i] = rune('A' + rng.Intn(26))
		}
	}
}
