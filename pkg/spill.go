// Package pkg holds reusable helpers that do not depend on the bombe domain.
package pkg

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Spill is an append-only, gob-encoded log of items kept on disk so that
// result sets of unbounded size do not have to live in memory.
type Spill[T any] interface {
	Len() uint64
	Path() string
	AppendBatch(items []T) error
	Range(f func(index uint64, item T) error) error
	Close() error
}

type spill[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// NewSpill creates a spill file under dir, or under the system temp
// directory when dir is empty. Close removes the file.
func NewSpill[T any](dir string) (Spill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "bombe-spill")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("Failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.gob")
	if err != nil {
		slog.Error("Failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	slog.Debug("Created spill", "path", file.Name())

	return &spill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (s *spill[T]) Path() string {
	return s.path
}

func (s *spill[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

func (s *spill[T]) AppendBatch(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if err := s.appendLocked(item); err != nil {
			return err
		}
	}

	return nil
}

func (s *spill[T]) appendLocked(item T) error {
	if s.closed {
		return fmt.Errorf("append to closed spill %s", s.path)
	}

	if err := s.encoder.Encode(item); err != nil {
		slog.Error("Failed to encode spill item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("encode item %d: %w", s.length, err)
	}

	s.length++

	return nil
}

// Range decodes the items in append order. It stops at the first error
// returned by f.
func (s *spill[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("range over closed spill %s", s.path)
	}

	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close spill reader", "path", s.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range s.length {
		var item T

		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("decode item %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

func (s *spill[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	if err := s.file.Close(); err != nil {
		slog.Error("Failed to close spill", "path", s.path, "error", err)
		return err
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove spill: %w", err)
	}

	slog.Debug("Closed spill", "path", s.path, "length", s.length)

	return nil
}
