package domain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bombe.dev/pkg/bombe/internal/adapter"
	"bombe.dev/pkg/bombe/internal/controller"
	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

func newTestWorkflow(t *testing.T) (Workflow, *bytes.Buffer, adapter.ReportStore) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	store := adapter.NewLocalReportStore()

	return NewWorkflow(store, adapter.NewLocalCatalogSource(), controller.NewSimpleUI(cmd)), &out, store
}

func plainSettings() rotor.Settings {
	return rotor.Settings{Reflector: "B", Wheels: [3]string{"I", "II", "III"}, Rings: [3]int{1, 1, 1}}
}

func TestWorkflow_Encipher(t *testing.T) {
	w, out, _ := newTestWorkflow(t)

	err := w.Encipher(context.Background(), EncipherArgs{
		Settings: plainSettings(),
		Text:     "Hello, World!",
	})
	require.NoError(t, err)

	ciphertext := bytes.TrimSpace(out.Bytes())
	assert.Len(t, ciphertext, 10)

	out.Reset()

	err = w.Encipher(context.Background(), EncipherArgs{
		Settings: plainSettings(),
		Text:     string(ciphertext),
		Decipher: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "helloworld\n", out.String())
}

func TestWorkflow_EncipherGroupsAndExpect(t *testing.T) {
	w, out, _ := newTestWorkflow(t)

	settings := rotor.Settings{
		Reflector: "B",
		Wheels:    [3]string{"I", "V", "III"},
		Rings:     [3]int{6, 20, 24},
		Plugboard: "ua pf rq so ni ey bg hl tx zj",
	}

	err := w.Encipher(context.Background(), EncipherArgs{
		Settings:  settings,
		Positions: "AAA",
		Text:      "aaaaa aaaaa",
		Groups:    5,
	})
	require.NoError(t, err)

	grouped := bytes.TrimSpace(out.Bytes())
	require.Len(t, grouped, 11)
	assert.Equal(t, byte(' '), grouped[5])

	out.Reset()

	err = w.Encipher(context.Background(), EncipherArgs{
		Settings:  settings,
		Positions: "aaa",
		Text:      "aaaaaaaaaa",
		Expect:    string(grouped),
	})
	require.NoError(t, err)
}

func TestWorkflow_EncipherExpectMismatch(t *testing.T) {
	w, out, _ := newTestWorkflow(t)

	err := w.Encipher(context.Background(), EncipherArgs{
		Settings: plainSettings(),
		Text:     "aaaaaaaaaa",
		Expect:   "zzzzz zzzzz",
	})
	require.ErrorIs(t, err, ErrMismatch)

	text := out.String()
	assert.Contains(t, text, "--- expected")
	assert.Contains(t, text, "+++ actual")
	assert.Contains(t, text, "-zzzzz")
}

func TestWorkflow_EncipherInvalid(t *testing.T) {
	w, _, _ := newTestWorkflow(t)

	err := w.Encipher(context.Background(), EncipherArgs{Settings: plainSettings(), Positions: "ab"})
	require.ErrorIs(t, err, rotor.ErrInvalidSpecification)

	settings := plainSettings()
	settings.Wheels[1] = "IX"

	err = w.Encipher(context.Background(), EncipherArgs{Settings: settings})
	require.ErrorIs(t, err, rotor.ErrUnknownWheel)
}

func TestExpectDiff(t *testing.T) {
	diff, err := expectDiff("abcdefghij", "abcdefghik")
	require.NoError(t, err)
	assert.Equal(t, "--- expected\n+++ actual\n@@ -1,2 +1,2 @@\n abcde\n-fghij\n+fghik\n", diff)
}

func TestWorkflow_Menu(t *testing.T) {
	w, out, _ := newTestWorkflow(t)

	require.NoError(t, w.Menu(context.Background(), MenuArgs{Crib: "wetter", Ciphertext: "snmkgg"}))
	assert.Contains(t, out.String(), "Start signal: ee")

	out.Reset()

	require.NoError(t, w.Menu(context.Background(), MenuArgs{Crib: "ab", Ciphertext: "axcab", Scan: true}))
	assert.Equal(t, "Feasible offsets for crib \"ab\": 1 2\n", out.String())

	err := w.Menu(context.Background(), MenuArgs{Crib: "abcdef", Ciphertext: "abc"})
	require.ErrorIs(t, err, ErrInvalidMenu)
}

func TestWorkflow_Wheels(t *testing.T) {
	w, out, _ := newTestWorkflow(t)

	require.NoError(t, w.Wheels(context.Background(), WheelsArgs{}))
	assert.Contains(t, out.String(), "ekmflgdqvzntowyhxuspaibrcj")

	err := w.Wheels(context.Background(), WheelsArgs{Catalog: m.Path(filepath.Join(t.TempDir(), "missing.yaml"))})
	require.Error(t, err)
}

func TestWorkflow_Crack(t *testing.T) {
	tc := newCrackCase(t, [3]int{1, 1, 1}, "ua pf rq so ni ey bg hl tx zj", "qfw")
	w, out, store := newTestWorkflow(t)
	reports := m.Path(t.TempDir())

	ciphertext := string(collectAfters(tc.menu))

	err := w.Crack(context.Background(), CrackArgs{
		Crib:            testCrib,
		Ciphertext:      ciphertext,
		Reflector:       "B",
		Orders:          []m.WheelOrder{{"I", "II", "III"}, {"II", "I", "III"}},
		Start:           tc.cfg.StartSignal,
		DiagonalBoard:   true,
		VerifyPlugboard: true,
		Threads:         2,
		Reports:         reports,
	})
	require.NoError(t, err)

	saved, err := store.LoadReports(reports)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	report := saved[0]
	assert.True(t, report.Complete)
	assert.Equal(t, 2*m.PositionCount, report.Tested)
	assert.Equal(t, testCrib, report.Crib)
	assert.Equal(t, tc.cfg.StartSignal.String(), report.Start)

	want := m.Candidate{Reflector: "B", Wheels: m.WheelOrder{"I", "II", "III"}, Position: tc.want.String()}
	found := false

	for _, candidate := range report.Candidates {
		if candidate.Key() == want.Key() {
			found = true

			assert.NotEmpty(t, candidate.Plugboard)
		}
	}

	assert.True(t, found, "true setting missing from report")
	assert.Contains(t, out.String(), "Finished reflector B wheels II-I-III")
	assert.Contains(t, out.String(), "(complete)")
}

func TestWorkflow_CrackMaxMatches(t *testing.T) {
	tc := newCrackCase(t, [3]int{1, 1, 1}, "", "aaw")
	w, _, store := newTestWorkflow(t)
	reports := m.Path(t.TempDir())

	err := w.Crack(context.Background(), CrackArgs{
		Crib:            testCrib,
		Ciphertext:      string(collectAfters(tc.menu)),
		Reflector:       "B",
		Orders:          []m.WheelOrder{{"I", "II", "III"}, {"III", "II", "I"}},
		VerifyPlugboard: true,
		DiagonalBoard:   true,
		Start:           tc.cfg.StartSignal,
		Threads:         2,
		MaxMatches:      1,
		Reports:         reports,
	})
	require.NoError(t, err)

	saved, err := store.LoadReports(reports)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Len(t, saved[0].Candidates, 1)
	assert.False(t, saved[0].Complete)
}

func TestWorkflow_CrackShardsAndMerge(t *testing.T) {
	tc := newCrackCase(t, [3]int{1, 1, 1}, "", "aaw")
	w, out, store := newTestWorkflow(t)
	reports := m.Path(t.TempDir())

	args := CrackArgs{
		Crib:            testCrib,
		Ciphertext:      string(collectAfters(tc.menu)),
		Reflector:       "B",
		Orders:          []m.WheelOrder{{"I", "II", "III"}},
		Start:           tc.cfg.StartSignal,
		DiagonalBoard:   true,
		VerifyPlugboard: true,
		Threads:         2,
		TotalShards:     2,
		Reports:         reports,
	}

	for shard := range 2 {
		args.ShardIndex = shard
		require.NoError(t, w.Crack(context.Background(), args))
	}

	shards, err := store.ShardDirs(reports)
	require.NoError(t, err)
	require.Len(t, shards, 2)

	out.Reset()
	require.NoError(t, w.Merge(context.Background(), MergeArgs{Reports: reports}))

	merged, err := store.LoadReports(reports)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.True(t, merged[0].Complete)
	assert.Equal(t, m.PositionCount, merged[0].Tested)
	assert.Contains(t, out.String(), tc.want.String())

	out.Reset()
	require.NoError(t, w.View(context.Background(), ViewArgs{Reports: reports}))
	assert.NotContains(t, out.String(), "No reports found")
}

func TestWorkflow_CrackInvalid(t *testing.T) {
	w, _, _ := newTestWorkflow(t)

	err := w.Crack(context.Background(), CrackArgs{Crib: "abc", Ciphertext: "xyz", Reflector: "Q", Reports: m.Path(t.TempDir())})
	require.ErrorIs(t, err, rotor.ErrUnknownReflector)

	err = w.Crack(context.Background(), CrackArgs{Crib: "", Ciphertext: "xyz", Reflector: "B"})
	require.ErrorIs(t, err, ErrInvalidMenu)

	err = w.Crack(context.Background(), CrackArgs{Crib: "abc", Ciphertext: "xyz", Reflector: "B", ShardIndex: 2, TotalShards: 2})
	require.ErrorIs(t, err, ErrInvalidShard)
}

func TestWorkflow_CrackCancelled(t *testing.T) {
	tc := newCrackCase(t, [3]int{1, 1, 1}, "", "aaw")
	w, out, _ := newTestWorkflow(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Crack(ctx, CrackArgs{
		Crib:       testCrib,
		Ciphertext: string(collectAfters(tc.menu)),
		Reflector:  "B",
		Threads:    1,
		Reports:    m.Path(t.TempDir()),
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestWorkflow_ViewAndMergeEmpty(t *testing.T) {
	w, out, _ := newTestWorkflow(t)
	reports := m.Path(t.TempDir())

	require.NoError(t, w.View(context.Background(), ViewArgs{Reports: reports}))
	assert.Equal(t, "No reports found\n", out.String())

	err := w.Merge(context.Background(), MergeArgs{Reports: reports})
	require.ErrorIs(t, err, ErrIncompatibleReports)

	require.NoError(t, os.MkdirAll(filepath.Join(string(reports), "shard_0"), 0o750))

	err = w.Merge(context.Background(), MergeArgs{Reports: reports})
	require.ErrorIs(t, err, ErrIncompatibleReports)
}

func collectAfters(menu m.Menu) []rune {
	letters := make([]rune, 0, len(menu))
	for _, item := range menu {
		letters = append(letters, item.After)
	}

	return letters
}
