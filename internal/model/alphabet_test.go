package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosUnpos(t *testing.T) {
	for i, r := range Alphabet {
		n, ok := Pos(r)
		require.True(t, ok)
		assert.Equal(t, i, n)
		assert.Equal(t, r, Unpos(n))
	}

	n, ok := Pos('Q')
	require.True(t, ok)
	assert.Equal(t, 16, n)

	_, ok = Pos('!')
	assert.False(t, ok)

	assert.Equal(t, 'z', Unpos(-1))
	assert.Equal(t, 'a', Unpos(26))
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lower", "abc", "abc"},
		{"mixed case and punctuation", "Very Long, test!", "verylongtest"},
		{"digits dropped", "a1b2c3", "abc"},
		{"non ascii dropped", "Müller", "mller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "Muller", Fold("Müller"))
	assert.Equal(t, "muller", Clean(Fold("Müller")))
	assert.Equal(t, "Ecole", Fold("École"))
}

func TestGroup(t *testing.T) {
	assert.Equal(t, "abcde fghij kl", Group("abcdefghijkl", 5))
	assert.Equal(t, "abc", Group("abc", 5))
	assert.Equal(t, "abcdef", Group("abcdef", 0))
}

func TestPositionRoundTrip(t *testing.T) {
	for _, index := range []int{0, 1, 25, 26, 675, 676, 17575} {
		p := PositionAt(index)
		assert.Equal(t, index, p.Index())
	}

	assert.Equal(t, Position{0, 3, 19}, PositionAt(3*26+19))
	assert.Equal(t, "adt", Position{0, 3, 19}.String())

	p, err := ParsePosition("IZD")
	require.NoError(t, err)
	assert.Equal(t, Position{8, 25, 3}, p)

	_, err = ParsePosition("ab")
	require.Error(t, err)

	_, err = ParsePosition("a1c")
	require.Error(t, err)
}

func TestMenuLetters(t *testing.T) {
	menu := Menu{
		{Before: 'a', After: 'b', Number: 1},
		{Before: 'c', After: 'a', Number: 2},
		{Before: 'a', After: 'd', Number: 3},
	}

	assert.Equal(t, []rune{'a', 'c', 'b', 'd'}, menu.Letters())
}

func TestPair(t *testing.T) {
	assert.Equal(t, Pair{A: 'c', B: 'q'}, NewPair('q', 'c'))
	assert.Equal(t, "cq", NewPair('q', 'c').String())
	assert.Equal(t, "ee", NewPair('e', 'e').String())
}
