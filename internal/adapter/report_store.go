// Package adapter contains the filesystem adapters used by the bombe workflow.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	m "bombe.dev/pkg/bombe/internal/model"
)

const (
	reportPrefix    = "report-"
	reportExtension = ".yaml"
	shardDirPrefix  = "shard_"
)

// ReportStore persists crack reports as YAML documents in a directory.
type ReportStore interface {
	// SaveReport writes report into dir, assigning an ID and creation time
	// when they are missing, and returns the file written.
	SaveReport(dir m.Path, report m.Report) (m.Path, error)

	// LoadReports reads every report in dir, oldest first. A missing
	// directory holds no reports.
	LoadReports(dir m.Path) ([]m.Report, error)

	// ShardDir returns the directory that shard index writes to under root.
	ShardDir(root m.Path, index int) m.Path

	// ShardDirs lists the shard directories under root in index order.
	ShardDirs(root m.Path) ([]m.Path, error)
}

// LocalReportStore is the on-disk ReportStore.
type LocalReportStore struct {
	now func() time.Time
}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{now: time.Now}
}

// SaveReport implements ReportStore.
func (s *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if report.ID == "" {
		report.ID = uuid.Must(uuid.NewV7()).String()
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = s.now().UTC()
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report %s: %w", report.ID, err)
	}

	path := filepath.Join(string(dir), reportPrefix+report.ID+reportExtension)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	slog.Info("Saved report", "path", path, "candidates", len(report.Candidates))

	return m.Path(path), nil
}

// LoadReports implements ReportStore.
func (s *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, reportPrefix) || !strings.HasSuffix(name, reportExtension) {
			continue
		}

		path := filepath.Join(string(dir), name)

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	slices.SortStableFunc(reports, func(a, b m.Report) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	slog.Debug("Loaded reports", "dir", dir, "count", len(reports))

	return reports, nil
}

// ShardDir implements ReportStore.
func (s *LocalReportStore) ShardDir(root m.Path, index int) m.Path {
	return m.Path(filepath.Join(string(root), shardDirPrefix+strconv.Itoa(index)))
}

// ShardDirs implements ReportStore.
func (s *LocalReportStore) ShardDirs(root m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(root))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	type shard struct {
		index int
		path  m.Path
	}

	var shards []shard

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), shardDirPrefix) {
			continue
		}

		index, err := strconv.Atoi(strings.TrimPrefix(entry.Name(), shardDirPrefix))
		if err != nil || index < 0 {
			slog.Warn("Skipping malformed shard directory", "name", entry.Name())
			continue
		}

		shards = append(shards, shard{index: index, path: m.Path(filepath.Join(string(root), entry.Name()))})
	}

	slices.SortFunc(shards, func(a, b shard) int { return a.index - b.index })

	paths := make([]m.Path, 0, len(shards))
	for _, s := range shards {
		paths = append(paths, s.path)
	}

	return paths, nil
}
