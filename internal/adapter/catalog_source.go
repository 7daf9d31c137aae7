package adapter

import (
	"fmt"
	"log/slog"
	"os"

	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

// CatalogSource resolves the wiring catalog a command should use.
type CatalogSource interface {
	// Load reads a catalog file, or returns the built-in catalog when path
	// is empty.
	Load(path m.Path) (*rotor.Catalog, error)
}

// LocalCatalogSource reads catalogs from disk.
type LocalCatalogSource struct{}

// NewLocalCatalogSource constructs a LocalCatalogSource.
func NewLocalCatalogSource() *LocalCatalogSource {
	return &LocalCatalogSource{}
}

// Load implements CatalogSource.
func (s *LocalCatalogSource) Load(path m.Path) (*rotor.Catalog, error) {
	if path == "" {
		return rotor.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	catalog, err := rotor.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	slog.Debug("Loaded catalog", "path", path, "wheels", len(catalog.WheelNames()),
		"reflectors", len(catalog.ReflectorNames()))

	return catalog, nil
}
