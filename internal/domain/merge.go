package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	m "bombe.dev/pkg/bombe/internal/model"
)

// ErrIncompatibleReports is returned when reports from different runs are merged.
var ErrIncompatibleReports = errors.New("incompatible reports")

// MergeReports unions the candidates of shard reports of the same run. The
// newest report of each shard supplies its tested count, and the merged
// report is complete only when every shard is present and complete.
func MergeReports(reports []m.Report) (m.Report, error) {
	if len(reports) == 0 {
		return m.Report{}, fmt.Errorf("%w: nothing to merge", ErrIncompatibleReports)
	}

	first := reports[0]
	for _, report := range reports[1:] {
		if err := sameRun(first, report); err != nil {
			return m.Report{}, err
		}
	}

	latest := map[int]m.Report{}
	seen := map[string]bool{}

	var candidates []m.Candidate

	for _, report := range reports {
		latest[report.ShardIndex] = report

		for _, candidate := range report.Candidates {
			if seen[candidate.Key()] {
				continue
			}

			seen[candidate.Key()] = true
			candidates = append(candidates, candidate)
		}
	}

	SortCandidates(candidates, first.Orders)

	merged := first
	merged.ID = ""
	merged.CreatedAt = time.Time{}
	merged.ShardIndex = 0
	merged.TotalShards = 1
	merged.Tested = 0
	merged.Complete = true
	merged.Candidates = candidates

	for shard := range max(first.TotalShards, 1) {
		report, ok := latest[shard]
		if !ok {
			merged.Complete = false
			continue
		}

		merged.Tested += report.Tested
		merged.Complete = merged.Complete && report.Complete
	}

	return merged, nil
}

func sameRun(a, b m.Report) error {
	switch {
	case a.Crib != b.Crib, a.Ciphertext != b.Ciphertext, a.Offset != b.Offset:
		return fmt.Errorf("%w: reports %s and %s use different messages", ErrIncompatibleReports, a.ID, b.ID)
	case a.Reflector != b.Reflector, !slices.Equal(a.Orders, b.Orders):
		return fmt.Errorf("%w: reports %s and %s test different wheels", ErrIncompatibleReports, a.ID, b.ID)
	case a.Start != b.Start, a.DiagonalBoard != b.DiagonalBoard, a.VerifyPlugboard != b.VerifyPlugboard:
		return fmt.Errorf("%w: reports %s and %s use different bombe settings", ErrIncompatibleReports, a.ID, b.ID)
	case a.TotalShards != b.TotalShards:
		return fmt.Errorf("%w: reports %s and %s split the search differently", ErrIncompatibleReports, a.ID, b.ID)
	}

	return nil
}

// SortCandidates orders candidates by wheel order, as listed in orders,
// then by position.
func SortCandidates(candidates []m.Candidate, orders []m.WheelOrder) {
	rank := func(order m.WheelOrder) int {
		if i := slices.Index(orders, order); i >= 0 {
			return i
		}

		return len(orders)
	}

	slices.SortStableFunc(candidates, func(a, b m.Candidate) int {
		if c := rank(a.Wheels) - rank(b.Wheels); c != 0 {
			return c
		}

		if c := strings.Compare(a.Reflector, b.Reflector); c != 0 {
			return c
		}

		if c := strings.Compare(strings.Join(a.Wheels[:], "-"), strings.Join(b.Wheels[:], "-")); c != 0 {
			return c
		}

		return strings.Compare(a.Position, b.Position)
	})
}
