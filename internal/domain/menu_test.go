package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bombe.dev/pkg/bombe/internal/model"
)

func TestMakeMenu(t *testing.T) {
	menu, err := MakeMenu("Wet ter", "snmkgg stz")
	require.NoError(t, err)

	assert.Equal(t, m.Menu{
		{Before: 'w', After: 's', Number: 1},
		{Before: 'e', After: 'n', Number: 2},
		{Before: 't', After: 'm', Number: 3},
		{Before: 't', After: 'k', Number: 4},
		{Before: 'e', After: 'g', Number: 5},
		{Before: 'r', After: 'g', Number: 6},
	}, menu)
}

func TestMakeMenuAt(t *testing.T) {
	menu, err := MakeMenuAt("ab", "xyzw", 2)
	require.NoError(t, err)

	assert.Equal(t, m.Menu{
		{Before: 'a', After: 'z', Number: 3},
		{Before: 'b', After: 'w', Number: 4},
	}, menu)
}

func TestMakeMenuAt_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		crib       string
		ciphertext string
		offset     int
	}{
		{name: "empty crib", crib: "123", ciphertext: "abc"},
		{name: "negative offset", crib: "a", ciphertext: "abc", offset: -1},
		{name: "crib too long", crib: "abcd", ciphertext: "abc"},
		{name: "offset past end", crib: "ab", ciphertext: "abc", offset: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeMenuAt(tt.crib, tt.ciphertext, tt.offset)
			require.ErrorIs(t, err, ErrInvalidMenu)
		})
	}
}

func TestCribAlignments(t *testing.T) {
	// The crib's a meets a ciphertext a at offsets 0 and 3.
	assert.Equal(t, []int{1, 2}, CribAlignments("ab", "axcab"))
	assert.Nil(t, CribAlignments("abcdef", "abc"))
	assert.Nil(t, CribAlignments("", "abc"))
}

func TestDefaultStartSignal(t *testing.T) {
	menu, err := MakeMenu("wetter", "snmkgg")
	require.NoError(t, err)

	start, err := DefaultStartSignal(menu)
	require.NoError(t, err)

	// e, t and g each appear twice; e is the first of them.
	assert.Equal(t, m.Signal{Bank: 'e', Wire: 'e'}, start)

	_, err = DefaultStartSignal(nil)
	require.ErrorIs(t, err, ErrInvalidMenu)
}

func TestDefaultStartSignal_AfterLetterWins(t *testing.T) {
	menu := m.Menu{
		{Before: 'a', After: 'z', Number: 1},
		{Before: 'b', After: 'z', Number: 2},
	}

	start, err := DefaultStartSignal(menu)
	require.NoError(t, err)
	assert.Equal(t, m.Signal{Bank: 'z', Wire: 'z'}, start)
}

func TestValidateMenu(t *testing.T) {
	require.ErrorIs(t, validateMenu(nil), ErrInvalidMenu)
	require.ErrorIs(t, validateMenu(m.Menu{{Before: '1', After: 'a', Number: 1}}), ErrInvalidMenu)
	require.ErrorIs(t, validateMenu(m.Menu{{Before: 'a', After: 'b', Number: 0}}), ErrInvalidMenu)
	require.NoError(t, validateMenu(m.Menu{{Before: 'a', After: 'b', Number: 1}}))
}
