// Package controller provides the output adapters for the bombe commands.
package controller

import (
	"context"

	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeText StartMode = iota
	ModeCrack
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	cancel context.CancelFunc
}

// WithTextMode sets the UI to print-and-exit mode.
func WithTextMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeText
	}
}

// WithCrackMode sets the UI to follow a running search.
func WithCrackMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCrack
	}
}

// WithCancel lets an interactive UI abort the running search.
func WithCancel(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.cancel = cancel
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// SearchInfo describes a crack run before it starts.
type SearchInfo struct {
	Threads     int
	ShardIndex  int
	TotalShards int
	Orders      int
	Positions   int
	Start       m.Signal
}

// CatalogEntry is one wheel or reflector row of the catalog listing.
type CatalogEntry struct {
	Kind   string
	Name   string
	Wiring string
	Pegs   string
}

// UI defines how command results and search progress are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayText(ctx context.Context, text string)
	DisplayDiff(ctx context.Context, diff string)
	DisplayMenu(ctx context.Context, menu m.Menu, start m.Signal)
	DisplayAlignments(ctx context.Context, crib string, offsets []int)
	DisplayCatalog(ctx context.Context, entries []CatalogEntry)
	DisplaySearchInfo(ctx context.Context, info SearchInfo)
	DisplayOrderStarted(ctx context.Context, reflector string, order m.WheelOrder)
	DisplayProgress(ctx context.Context, tested, total int)
	DisplayOrderCompleted(ctx context.Context, reflector string, order m.WheelOrder, matches int)
	DisplayReport(ctx context.Context, report m.Report)
	DisplayReports(ctx context.Context, reports []m.Report)
}

// CatalogEntries flattens a catalog into listing rows, wheels first.
func CatalogEntries(catalog *rotor.Catalog) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(catalog.WheelNames())+len(catalog.ReflectorNames()))

	for _, name := range catalog.WheelNames() {
		spec, err := catalog.WheelSpec(name)
		if err != nil {
			continue
		}

		entries = append(entries, CatalogEntry{Kind: "wheel", Name: name, Wiring: spec.Wiring, Pegs: spec.Pegs})
	}

	for _, name := range catalog.ReflectorNames() {
		spec, err := catalog.ReflectorSpec(name)
		if err != nil {
			continue
		}

		entries = append(entries, CatalogEntry{Kind: "reflector", Name: name, Wiring: spec.Pairs})
	}

	return entries
}
