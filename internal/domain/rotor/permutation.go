// Package rotor implements the letter transforms of a three-wheel rotor
// cipher machine: permutations, plugboards, reflectors, wheels, the machine
// itself and the plugboard-less scrambler used by the bombe.
package rotor

import (
	"errors"
	"fmt"
	"strings"

	m "bombe.dev/pkg/bombe/internal/model"
)

// ErrInvalidSpecification is returned when a wiring, plugboard or reflector
// specification does not describe a valid transform.
var ErrInvalidSpecification = errors.New("invalid specification")

// Transformer is anything that maps letters in both directions.
type Transformer interface {
	Forward(letter rune) (rune, bool)
	Backward(letter rune) (rune, bool)
}

// Permutation is an immutable bijection over the alphabet together with
// its inverse. Plugboards and reflectors are permutations built by their
// own validating constructors.
type Permutation struct {
	forward  [m.AlphabetSize]int
	backward [m.AlphabetSize]int
}

// Identity returns the permutation that maps every letter to itself.
func Identity() Permutation {
	var p Permutation

	for i := range m.AlphabetSize {
		p.forward[i] = i
		p.backward[i] = i
	}

	return p
}

// NewPermutation builds a permutation from a 26-letter substitution string:
// the i-th letter is the image of the i-th letter of the alphabet.
// Non-letters in the specification are ignored.
func NewPermutation(spec string) (Permutation, error) {
	letters := m.Clean(spec)
	pairs := make([][2]rune, 0, len(letters))

	for i, r := range letters {
		pairs = append(pairs, [2]rune{m.Unpos(i), r})
	}

	return NewPermutationFromPairs(pairs)
}

// NewPermutationFromPairs builds a permutation from 26 (from, to) pairs.
func NewPermutationFromPairs(pairs [][2]rune) (Permutation, error) {
	if len(pairs) != m.AlphabetSize {
		return Permutation{}, fmt.Errorf("%w: transform has %d pairs, requires %d",
			ErrInvalidSpecification, len(pairs), m.AlphabetSize)
	}

	var (
		p        Permutation
		fromSeen [m.AlphabetSize]bool
		toSeen   [m.AlphabetSize]bool
	)

	for _, pair := range pairs {
		from, okFrom := m.Pos(pair[0])
		to, okTo := m.Pos(pair[1])

		if !okFrom || !okTo {
			return Permutation{}, fmt.Errorf("%w: pair %q is not two letters",
				ErrInvalidSpecification, string(pair[:]))
		}

		if fromSeen[from] {
			return Permutation{}, fmt.Errorf("%w: origin letter %c listed twice", ErrInvalidSpecification, m.Unpos(from))
		}

		if toSeen[to] {
			return Permutation{}, fmt.Errorf("%w: destination letter %c listed twice", ErrInvalidSpecification, m.Unpos(to))
		}

		fromSeen[from] = true
		toSeen[to] = true
		p.forward[from] = to
		p.backward[to] = from
	}

	return p, nil
}

// NewPlugboard builds a self-inverse permutation from space-separated
// letter pairs such as "ua pf rq". Letters not mentioned map to themselves.
func NewPlugboard(spec string) (Permutation, error) {
	pairs, err := parsePairs(spec)
	if err != nil {
		return Permutation{}, err
	}

	return fromSwaps(pairs), nil
}

// NewReflector builds a fixed-point-free involution from exactly 13
// disjoint letter pairs covering the whole alphabet.
func NewReflector(spec string) (Permutation, error) {
	pairs, err := parsePairs(spec)
	if err != nil {
		return Permutation{}, err
	}

	if len(pairs) != m.AlphabetSize/2 {
		return Permutation{}, fmt.Errorf("%w: reflector has %d pairs, requires %d",
			ErrInvalidSpecification, len(pairs), m.AlphabetSize/2)
	}

	return fromSwaps(pairs), nil
}

// parsePairs reads whitespace-separated two-letter tokens and rejects
// malformed tokens, self-pairs and letters used twice.
func parsePairs(spec string) ([][2]int, error) {
	tokens := strings.Fields(spec)
	pairs := make([][2]int, 0, len(tokens))

	var used [m.AlphabetSize]bool

	for _, token := range tokens {
		letters := []rune(m.Clean(token))
		if len(letters) != 2 {
			return nil, fmt.Errorf("%w: malformed pair %q", ErrInvalidSpecification, token)
		}

		a, _ := m.Pos(letters[0])
		b, _ := m.Pos(letters[1])

		if a == b {
			return nil, fmt.Errorf("%w: letter %c paired with itself", ErrInvalidSpecification, m.Unpos(a))
		}

		for _, n := range []int{a, b} {
			if used[n] {
				return nil, fmt.Errorf("%w: letter %c appears in more than one pair", ErrInvalidSpecification, m.Unpos(n))
			}

			used[n] = true
		}

		pairs = append(pairs, [2]int{a, b})
	}

	return pairs, nil
}

func fromSwaps(pairs [][2]int) Permutation {
	p := Identity()

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		p.forward[a], p.forward[b] = b, a
		p.backward[a], p.backward[b] = b, a
	}

	return p
}

// Forward maps a letter through the permutation. Non-letters yield false.
func (p Permutation) Forward(letter rune) (rune, bool) {
	i, ok := m.Pos(letter)
	if !ok {
		return 0, false
	}

	return m.Unpos(p.forward[i]), true
}

// Backward maps a letter through the inverse permutation.
func (p Permutation) Backward(letter rune) (rune, bool) {
	i, ok := m.Pos(letter)
	if !ok {
		return 0, false
	}

	return m.Unpos(p.backward[i]), true
}

// ForwardIndex is Forward on alphabet indices.
func (p Permutation) ForwardIndex(i int) int {
	return p.forward[i]
}

// BackwardIndex is Backward on alphabet indices.
func (p Permutation) BackwardIndex(i int) int {
	return p.backward[i]
}

// ForwardMap returns a copy of the forward table.
func (p Permutation) ForwardMap() [m.AlphabetSize]int {
	return p.forward
}

// BackwardMap returns a copy of the backward table.
func (p Permutation) BackwardMap() [m.AlphabetSize]int {
	return p.backward
}

// IsInvolution reports whether the permutation is its own inverse.
func (p Permutation) IsInvolution() bool {
	return p.forward == p.backward
}

// FixedPoints counts letters that map to themselves.
func (p Permutation) FixedPoints() int {
	n := 0

	for i, v := range p.forward {
		if i == v {
			n++
		}
	}

	return n
}

// String renders the forward map as 26 letters.
func (p Permutation) String() string {
	letters := make([]rune, m.AlphabetSize)
	for i, v := range p.forward {
		letters[i] = m.Unpos(v)
	}

	return string(letters)
}
