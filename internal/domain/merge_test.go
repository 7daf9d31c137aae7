package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bombe.dev/pkg/bombe/internal/model"
)

func shardReport(index int, complete bool, positions ...string) m.Report {
	report := m.Report{
		ID:          "shard",
		Crib:        "wetter",
		Ciphertext:  "snmkgg",
		Reflector:   "B",
		Orders:      []m.WheelOrder{{"I", "II", "III"}, {"II", "I", "III"}},
		Start:       "ee",
		ShardIndex:  index,
		TotalShards: 2,
		Tested:      100,
		Complete:    complete,
	}

	for _, position := range positions {
		report.Candidates = append(report.Candidates, m.Candidate{
			Reflector: "B",
			Wheels:    m.WheelOrder{"II", "I", "III"},
			Position:  position,
		})
	}

	return report
}

func TestMergeReports(t *testing.T) {
	first := shardReport(0, true, "zzz", "abc")
	second := shardReport(1, true, "abc", "mmm")
	second.Candidates = append(second.Candidates, m.Candidate{Reflector: "B", Wheels: m.WheelOrder{"I", "II", "III"}, Position: "yyy"})

	merged, err := MergeReports([]m.Report{first, second})
	require.NoError(t, err)

	assert.Empty(t, merged.ID)
	assert.True(t, merged.CreatedAt.IsZero())
	assert.True(t, merged.Complete)
	assert.Equal(t, 200, merged.Tested)
	assert.Equal(t, 1, merged.TotalShards)

	var got []string
	for _, candidate := range merged.Candidates {
		got = append(got, candidate.Wheels[0]+":"+candidate.Position)
	}

	assert.Equal(t, []string{"I:yyy", "II:abc", "II:mmm", "II:zzz"}, got)
}

func TestMergeReports_MissingOrPartialShard(t *testing.T) {
	merged, err := MergeReports([]m.Report{shardReport(0, true)})
	require.NoError(t, err)
	assert.False(t, merged.Complete)
	assert.Equal(t, 100, merged.Tested)

	merged, err = MergeReports([]m.Report{shardReport(0, true), shardReport(1, false)})
	require.NoError(t, err)
	assert.False(t, merged.Complete)
}

func TestMergeReports_LatestShardReportWins(t *testing.T) {
	old := shardReport(0, false, "aaa")
	old.Tested = 10

	merged, err := MergeReports([]m.Report{old, shardReport(0, true, "bbb"), shardReport(1, true)})
	require.NoError(t, err)

	assert.True(t, merged.Complete)
	assert.Equal(t, 200, merged.Tested)
	assert.Len(t, merged.Candidates, 2)
}

func TestMergeReports_Incompatible(t *testing.T) {
	_, err := MergeReports(nil)
	require.ErrorIs(t, err, ErrIncompatibleReports)

	tests := []struct {
		name   string
		modify func(*m.Report)
	}{
		{name: "crib", modify: func(r *m.Report) { r.Crib = "other" }},
		{name: "reflector", modify: func(r *m.Report) { r.Reflector = "C" }},
		{name: "orders", modify: func(r *m.Report) { r.Orders = r.Orders[:1] }},
		{name: "diagonal board", modify: func(r *m.Report) { r.DiagonalBoard = true }},
		{name: "shard count", modify: func(r *m.Report) { r.TotalShards = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := shardReport(1, true)
			tt.modify(&other)

			_, err := MergeReports([]m.Report{shardReport(0, true), other})
			require.ErrorIs(t, err, ErrIncompatibleReports)
		})
	}
}
