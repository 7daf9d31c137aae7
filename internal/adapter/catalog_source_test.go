package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

func TestLocalCatalogSource_Default(t *testing.T) {
	catalog, err := NewLocalCatalogSource().Load("")
	require.NoError(t, err)
	assert.Equal(t, rotor.DefaultCatalog().WheelNames(), catalog.WheelNames())
}

func TestLocalCatalogSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `wheels:
  - name: X
    wiring: ekmflgdqvzntowyhxuspaibrcj
    pegs: q
reflectors:
  - name: R
    pairs: ay br cu dh eq fs gl ip jx kn mo tz vw
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	catalog, err := NewLocalCatalogSource().Load(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, catalog.WheelNames())
	assert.Equal(t, []string{"R"}, catalog.ReflectorNames())
}

func TestLocalCatalogSource_Errors(t *testing.T) {
	_, err := NewLocalCatalogSource().Load(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wheels:\n  - name: X\n    wiring: abc\n"), 0o600))

	_, err = NewLocalCatalogSource().Load(m.Path(path))
	require.ErrorIs(t, err, rotor.ErrInvalidSpecification)
}
