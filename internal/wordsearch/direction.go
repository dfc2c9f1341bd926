package wordsearch

import "strings"

// Direction is the geometry of a run of cells.
type Direction uint8

const (
	DirNone Direction = iota
	DirHorizontal
	DirVertical
	DirDiagonal
)

// placementDirections are the directions the generator chooses from.
var placementDirections = [...]Direction{DirHorizontal, DirVertical, DirDiagonal}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirHorizontal:
		return "horizontal"
	case DirVertical:
		return "vertical"
	case DirDiagonal:
		return "diagonal"
	default:
		return "none"
	}
}

// ParseDirection parses a direction name. An empty string, "any" and "none"
// all parse to DirNone, meaning unconstrained.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "none":
		return DirNone, true
	case "horizontal", "h":
		return DirHorizontal, true
	case "vertical", "v":
		return DirVertical, true
	case "diagonal", "d":
		return DirDiagonal, true
	default:
		return DirNone, false
	}
}

// Step returns the unit step the generator writes words along.
// Words always read left-to-right, top-to-bottom.
func (d Direction) Step() (dr, dc int) {
	switch d {
	case DirHorizontal:
		return 0, 1
	case DirVertical:
		return 1, 0
	case DirDiagonal:
		return 1, 1
	default:
		return 0, 0
	}
}

// Classify returns the direction of a delta from an anchor.
// Only axis-aligned and 45-degree deltas have a direction; a zero delta or
// any other slope yields DirNone.
func Classify(dr, dc int) Direction {
	switch {
	case dr == 0 && dc == 0:
		return DirNone
	case dr == 0:
		return DirHorizontal
	case dc == 0:
		return DirVertical
	case abs(dr) == abs(dc):
		return DirDiagonal
	default:
		return DirNone
	}
}
