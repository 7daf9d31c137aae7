package model

import (
	"errors"
	"fmt"
)

// PositionCount is the size of the three-wheel search space.
const PositionCount = AlphabetSize * AlphabetSize * AlphabetSize

// Position holds the three wheel positions, left to right, each 0..25.
type Position [3]int

// PositionAt returns the index-th position of the odometer, where the
// rightmost wheel moves fastest.
func PositionAt(index int) Position {
	return Position{
		Mod(index / (AlphabetSize * AlphabetSize)),
		Mod(index / AlphabetSize),
		Mod(index),
	}
}

// Index is the inverse of PositionAt.
func (p Position) Index() int {
	return Mod(p[0])*AlphabetSize*AlphabetSize + Mod(p[1])*AlphabetSize + Mod(p[2])
}

// String renders the position as three letters, e.g. "adt".
func (p Position) String() string {
	return string([]rune{Unpos(p[0]), Unpos(p[1]), Unpos(p[2])})
}

// ParsePosition reads a three-letter position string.
func ParsePosition(s string) (Position, error) {
	letters := []rune(s)
	if len(letters) != 3 {
		return Position{}, fmt.Errorf("position %q: %w", s, errBadPosition)
	}

	var p Position

	for i, r := range letters {
		n, ok := Pos(r)
		if !ok {
			return Position{}, fmt.Errorf("position %q: %w", s, errBadPosition)
		}

		p[i] = n
	}

	return p, nil
}

var errBadPosition = errors.New("expected three letters")
