package wordsearch

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by Generate before any placement is attempted.
var (
	ErrInvalidDimensions = errors.New("wordsearch: grid dimensions must be positive")
	ErrNoWords           = errors.New("wordsearch: word list is empty")
	ErrEmptyWord         = errors.New("wordsearch: empty word")
	ErrInvalidWord       = errors.New("wordsearch: word must contain only letters A-Z")
	ErrDuplicateWord     = errors.New("wordsearch: duplicate word")
	ErrWordTooLong       = errors.New("wordsearch: word does not fit the grid")
)

// UnplacedWordError reports words the generator could not place after its
// random attempts and a full scan of every anchor were exhausted.
// A puzzle with an unplaced word is unsolvable, so no grid is returned.
type UnplacedWordError struct {
	Words []string
	Rows  int
	Cols  int
}

func (e *UnplacedWordError) Error() string {
	return fmt.Sprintf("wordsearch: could not place %d word(s) in %dx%d grid: %s",
		len(e.Words), e.Rows, e.Cols, strings.Join(e.Words, ", "))
}
