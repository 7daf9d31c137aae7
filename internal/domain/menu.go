package domain

import (
	"errors"
	"fmt"

	m "bombe.dev/pkg/bombe/internal/model"
)

// ErrInvalidMenu is returned for menus that cannot drive a bombe.
var ErrInvalidMenu = errors.New("invalid menu")

// MakeMenu aligns a crib with the start of the ciphertext.
func MakeMenu(crib, ciphertext string) (m.Menu, error) {
	return MakeMenuAt(crib, ciphertext, 0)
}

// MakeMenuAt aligns a crib with the ciphertext starting at offset (0-based).
// Both texts are cleaned first. Item numbers are 1-based message positions.
func MakeMenuAt(crib, ciphertext string, offset int) (m.Menu, error) {
	plain := []rune(m.Clean(crib))
	cipher := []rune(m.Clean(ciphertext))

	if len(plain) == 0 {
		return nil, fmt.Errorf("%w: empty crib", ErrInvalidMenu)
	}

	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidMenu, offset)
	}

	if offset+len(plain) > len(cipher) {
		return nil, fmt.Errorf("%w: crib of %d letters at offset %d exceeds ciphertext of %d letters",
			ErrInvalidMenu, len(plain), offset, len(cipher))
	}

	menu := make(m.Menu, 0, len(plain))
	for i, p := range plain {
		menu = append(menu, m.MenuItem{Before: p, After: cipher[offset+i], Number: offset + i + 1})
	}

	return menu, nil
}

// CribAlignments lists the offsets where the crib could sit in the
// ciphertext: a rotor machine never enciphers a letter to itself, so any
// offset where a crib letter meets the same ciphertext letter is ruled out.
func CribAlignments(crib, ciphertext string) []int {
	plain := m.Clean(crib)
	cipher := m.Clean(ciphertext)

	if len(plain) == 0 || len(plain) > len(cipher) {
		return nil
	}

	var offsets []int

	for offset := 0; offset+len(plain) <= len(cipher); offset++ {
		clash := false

		for i := range len(plain) {
			if plain[i] == cipher[offset+i] {
				clash = true
				break
			}
		}

		if !clash {
			offsets = append(offsets, offset)
		}
	}

	return offsets
}

// DefaultStartSignal picks the most connected menu letter L and returns
// the signal (L, L). Ties go to the letter seen first, counting before
// letters ahead of after letters.
func DefaultStartSignal(menu m.Menu) (m.Signal, error) {
	if len(menu) == 0 {
		return m.Signal{}, fmt.Errorf("%w: empty menu", ErrInvalidMenu)
	}

	counts := map[rune]int{}
	for _, item := range menu {
		counts[item.Before]++
		counts[item.After]++
	}

	best := rune(0)
	for _, letter := range menu.Letters() {
		if best == 0 || counts[letter] > counts[best] {
			best = letter
		}
	}

	return m.Signal{Bank: best, Wire: best}, nil
}

func validateMenu(menu m.Menu) error {
	if len(menu) == 0 {
		return fmt.Errorf("%w: empty menu", ErrInvalidMenu)
	}

	for _, item := range menu {
		if _, ok := m.Pos(item.Before); !ok {
			return fmt.Errorf("%w: item %d has non-letter %q", ErrInvalidMenu, item.Number, item.Before)
		}

		if _, ok := m.Pos(item.After); !ok {
			return fmt.Errorf("%w: item %d has non-letter %q", ErrInvalidMenu, item.Number, item.After)
		}

		if item.Number < 1 {
			return fmt.Errorf("%w: item number %d is not 1-based", ErrInvalidMenu, item.Number)
		}
	}

	return nil
}
