package rotor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "beta", "gamma"}, catalog.WheelNames())
	assert.Equal(t, []string{"A", "B", "C"}, catalog.ReflectorNames())

	for _, name := range catalog.ReflectorNames() {
		reflector, err := catalog.Reflector(name)
		require.NoError(t, err)
		assert.True(t, reflector.IsInvolution(), name)
		assert.Zero(t, reflector.FixedPoints(), name)
	}

	spec, err := catalog.WheelSpec("VI")
	require.NoError(t, err)
	assert.Equal(t, "zm", spec.Pegs)
}

// Reflector A as a 26-letter substitution table.
func TestDefaultCatalog_ReflectorA(t *testing.T) {
	reflector, err := DefaultCatalog().Reflector("A")
	require.NoError(t, err)
	assert.Equal(t, "ejmzalyxvbwfcrquontspikhgd", reflector.String())
}

func TestCatalog_Unknown(t *testing.T) {
	catalog := DefaultCatalog()

	_, err := catalog.WheelWiring("IX")
	require.ErrorIs(t, err, ErrUnknownWheel)

	_, err = catalog.Wheel("IX", 1)
	require.ErrorIs(t, err, ErrUnknownWheel)

	_, err = catalog.WheelSpec("IX")
	require.ErrorIs(t, err, ErrUnknownWheel)

	_, err = catalog.Reflector("D")
	require.ErrorIs(t, err, ErrUnknownReflector)

	_, err = catalog.ReflectorSpec("D")
	require.ErrorIs(t, err, ErrUnknownReflector)
}

func TestCatalog_Machine_Invalid(t *testing.T) {
	catalog := DefaultCatalog()

	_, err := catalog.Machine(Settings{Reflector: "B", Wheels: [3]string{"I", "II", "III"}, Rings: [3]int{1, 1, 0}})
	require.ErrorIs(t, err, ErrInvalidSpecification)

	_, err = catalog.Machine(Settings{Reflector: "B", Wheels: [3]string{"I", "II", "III"}, Rings: [3]int{1, 1, 1}, Plugboard: "ab ac"})
	require.ErrorIs(t, err, ErrInvalidSpecification)

	_, err = catalog.Machine(Settings{Reflector: "Z", Wheels: [3]string{"I", "II", "III"}, Rings: [3]int{1, 1, 1}})
	require.ErrorIs(t, err, ErrUnknownReflector)
}

func TestParseCatalog(t *testing.T) {
	doc := []byte(`
wheels:
  - name: I
    wiring: EKMFLGDQVZNTOWYHXUSPAIBRCJ
    pegs: q
  - name: X
    wiring: bcdefghijklmnopqrstuvwxyza
reflectors:
  - name: B
    pairs: ay br cu dh eq fs gl ip jx kn mo tz vw
`)

	catalog, err := ParseCatalog(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "X"}, catalog.WheelNames())

	wiring, err := catalog.WheelWiring("X")
	require.NoError(t, err)
	assert.Equal(t, "bcdefghijklmnopqrstuvwxyza", wiring.String())
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad wiring", "wheels:\n  - name: I\n    wiring: abc\n"},
		{"bad reflector", "reflectors:\n  - name: B\n    pairs: ab cd\n"},
		{"duplicate wheel", "wheels:\n  - name: I\n    wiring: abcdefghijklmnopqrstuvwxyz\n  - name: I\n    wiring: abcdefghijklmnopqrstuvwxyz\n"},
		{"bad peg", "wheels:\n  - name: I\n    wiring: abcdefghijklmnopqrstuvwxyz\n    pegs: '1'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalidSpecification)
		})
	}

	_, err := ParseCatalog([]byte("wheels: [unterminated"))
	require.Error(t, err)
}
