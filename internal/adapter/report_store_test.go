package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bombe.dev/pkg/bombe/internal/model"
)

func sampleReport() m.Report {
	return m.Report{
		Crib:            "wettervorhersage",
		Ciphertext:      "snmkggstzzuggarlv",
		Reflector:       "B",
		Orders:          []m.WheelOrder{{"I", "II", "III"}},
		Start:           "ee",
		DiagonalBoard:   true,
		VerifyPlugboard: true,
		TotalShards:     1,
		Tested:          m.PositionCount,
		Complete:        true,
		Candidates: []m.Candidate{
			{Reflector: "B", Wheels: m.WheelOrder{"I", "II", "III"}, Position: "qfx", Plugboard: []string{"ey", "tx"}},
			{Reflector: "B", Wheels: m.WheelOrder{"I", "II", "III"}, Position: "zzz"},
		},
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewLocalReportStore()

	path, err := store.SaveReport(dir, sampleReport())
	require.NoError(t, err)
	assert.FileExists(t, string(path))

	reports, err := store.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	got := reports[0]

	id, err := uuid.Parse(got.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.False(t, got.CreatedAt.IsZero())

	want := sampleReport()
	want.ID = got.ID
	want.CreatedAt = got.CreatedAt
	assert.Equal(t, want, got)
}

func TestLocalReportStore_KeepsGivenID(t *testing.T) {
	dir := m.Path(t.TempDir())
	store := NewLocalReportStore()

	report := sampleReport()
	report.ID = "fixed"
	report.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	path, err := store.SaveReport(dir, report)
	require.NoError(t, err)
	assert.Equal(t, "report-fixed.yaml", filepath.Base(string(path)))

	reports, err := store.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, report.CreatedAt.Equal(reports[0].CreatedAt))
}

func TestLocalReportStore_LoadOrdersByCreation(t *testing.T) {
	dir := m.Path(t.TempDir())
	store := NewLocalReportStore()

	times := []time.Time{
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	for i, created := range times {
		report := sampleReport()
		report.ID = []string{"b", "a"}[i]
		report.CreatedAt = created

		_, err := store.SaveReport(dir, report)
		require.NoError(t, err)
	}

	require.NoError(t, os.WriteFile(filepath.Join(string(dir), "notes.txt"), []byte("ignored"), 0o600))

	reports, err := store.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "a", reports[0].ID)
	assert.Equal(t, "b", reports[1].ID)
}

func TestLocalReportStore_LoadMissingDir(t *testing.T) {
	reports, err := NewLocalReportStore().LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestLocalReportStore_LoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report-bad.yaml"), []byte("candidates: [\n"), 0o600))

	_, err := NewLocalReportStore().LoadReports(m.Path(dir))
	require.Error(t, err)
}

func TestLocalReportStore_ShardDirs(t *testing.T) {
	root := m.Path(t.TempDir())
	store := NewLocalReportStore()

	for _, index := range []int{10, 2, 0} {
		require.NoError(t, os.MkdirAll(string(store.ShardDir(root, index)), 0o750))
	}

	require.NoError(t, os.MkdirAll(filepath.Join(string(root), "shard_x"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(string(root), "other"), 0o750))

	dirs, err := store.ShardDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		store.ShardDir(root, 0),
		store.ShardDir(root, 2),
		store.ShardDir(root, 10),
	}, dirs)

	dirs, err = store.ShardDirs(m.Path(filepath.Join(string(root), "missing")))
	require.NoError(t, err)
	assert.Empty(t, dirs)
}
