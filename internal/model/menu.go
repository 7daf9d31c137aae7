package model

import "fmt"

// MenuItem links a plaintext letter to the ciphertext letter it became at a
// 1-based message position.
type MenuItem struct {
	Before rune
	After  rune
	Number int
}

// Menu is the ordered list of crib/ciphertext links that wires up a bombe.
type Menu []MenuItem

// Letters returns every letter appearing in the menu, before letters first,
// in order of first appearance.
func (m Menu) Letters() []rune {
	seen := map[rune]bool{}
	letters := make([]rune, 0, AlphabetSize)

	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			letters = append(letters, r)
		}
	}

	for _, item := range m {
		add(item.Before)
	}

	for _, item := range m {
		add(item.After)
	}

	return letters
}

// Signal is a node of the bombe's propagation graph: a wire inside a bank.
type Signal struct {
	Bank rune
	Wire rune
}

func (s Signal) String() string {
	return fmt.Sprintf("%c%c", s.Bank, s.Wire)
}

// Pair is an implied plugboard connection, stored with A <= B.
// A == B means the letter is unplugged.
type Pair struct {
	A rune
	B rune
}

// NewPair orders the two letters.
func NewPair(a, b rune) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

func (p Pair) String() string {
	return string([]rune{p.A, p.B})
}
