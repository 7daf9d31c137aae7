// Package model defines the data structures shared by the rotor machine,
// the bombe and the command-line tool.
package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AlphabetSize is the number of symbols every transform works over.
const AlphabetSize = 26

// Alphabet lists the symbols in index order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Pos returns the alphabet index of a letter in either case.
// The second result is false for anything outside a-z/A-Z.
func Pos(letter rune) (int, bool) {
	switch {
	case letter >= 'a' && letter <= 'z':
		return int(letter - 'a'), true
	case letter >= 'A' && letter <= 'Z':
		return int(letter - 'A'), true
	default:
		return 0, false
	}
}

// Unpos returns the lower-case letter for an index, reduced mod 26.
func Unpos(n int) rune {
	return rune('a' + Mod(n))
}

// Mod reduces n into 0..25, also for negative n.
func Mod(n int) int {
	n %= AlphabetSize
	if n < 0 {
		n += AlphabetSize
	}

	return n
}

// Clean keeps only ASCII letters and lower-cases them.
func Clean(text string) string {
	var b strings.Builder

	b.Grow(len(text))

	for _, r := range text {
		if i, ok := Pos(r); ok {
			b.WriteRune(Unpos(i))
		}
	}

	return b.String()
}

// Fold strips diacritics so accented letters survive Clean
// ("Müller" becomes "Muller").
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}

	return folded
}

// Group splits text into space-separated blocks of size letters.
func Group(text string, size int) string {
	if size <= 0 || len(text) <= size {
		return text
	}

	var b strings.Builder

	for i := 0; i < len(text); i += size {
		if i > 0 {
			b.WriteByte(' ')
		}

		end := min(i+size, len(text))
		b.WriteString(text[i:end])
	}

	return b.String()
}
