package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync/atomic"

	m "bombe.dev/pkg/bombe/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidShard is returned when a shard index does not fit the shard count.
var ErrInvalidShard = errors.New("invalid shard")

// partitionSize is the number of positions a worker claims at a time:
// one full turn of the fast wheel.
const partitionSize = m.AlphabetSize

const partitionCount = m.PositionCount / partitionSize

// SearchOptions controls how the position space is split across workers
// and processes.
type SearchOptions struct {
	Threads     int
	MaxMatches  int
	ShardIndex  int
	TotalShards int
	// Progress receives the running count of tested positions. It is called
	// from worker goroutines.
	Progress func(tested int)
}

// Match is one accepted base position with the plugboard pairs it implies.
type Match struct {
	Position  m.Position
	Plugboard []m.Pair
}

// SearchResult collects the matches of one search.
type SearchResult struct {
	Matches  []Match
	Tested   int
	Total    int
	Complete bool
}

// ShardPositions returns how many positions the given shard covers.
func ShardPositions(shardIndex, totalShards int) (int, error) {
	if err := validateShard(shardIndex, totalShards); err != nil {
		return 0, err
	}

	total := max(totalShards, 1)
	count := 0

	for partition := range partitionCount {
		if partition%total == shardIndex {
			count += partitionSize
		}
	}

	return count, nil
}

func validateShard(shardIndex, totalShards int) error {
	if totalShards < 0 || shardIndex < 0 {
		return fmt.Errorf("%w: %d/%d", ErrInvalidShard, shardIndex, totalShards)
	}

	if shardIndex >= max(totalShards, 1) {
		return fmt.Errorf("%w: index %d must be below count %d", ErrInvalidShard, shardIndex, max(totalShards, 1))
	}

	return nil
}

// Search tests every base position of the shard against the bombe described
// by cfg, spreading partitions of the space over a pool of workers that each
// own a Bombe. Matches are returned sorted by position. When MaxMatches is
// reached the search stops early and the result is marked incomplete.
func Search(ctx context.Context, cfg BombeConfig, opts SearchOptions) (SearchResult, error) {
	total, err := ShardPositions(opts.ShardIndex, opts.TotalShards)
	if err != nil {
		return SearchResult{}, err
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	bombes := make([]*Bombe, threads)
	for i := range bombes {
		bombes[i], err = NewBombe(cfg)
		if err != nil {
			return SearchResult{}, err
		}
	}

	slog.Debug("Starting search", "threads", threads, "shard", opts.ShardIndex, "shards", opts.TotalShards,
		"positions", total)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tested atomic.Int64

	partitions := partitionChannel(searchCtx, opts.ShardIndex, max(opts.TotalShards, 1))
	matches := make(chan Match, threads)
	done := make(chan error, 1)

	group, groupCtx := errgroup.WithContext(searchCtx)

	for _, bombe := range bombes {
		group.Go(func() error {
			return searchPartitions(groupCtx, bombe, partitions, matches, &tested, opts.Progress)
		})
	}

	go func() {
		done <- group.Wait()

		close(matches)
	}()

	result := SearchResult{Total: total}
	stopped := false

	for match := range matches {
		if stopped {
			continue
		}

		result.Matches = append(result.Matches, match)

		if opts.MaxMatches > 0 && len(result.Matches) >= opts.MaxMatches {
			slog.Debug("Match limit reached", "matches", len(result.Matches))

			stopped = true

			cancel()
		}
	}

	err = <-done
	result.Tested = int(tested.Load())

	slices.SortFunc(result.Matches, func(a, b Match) int {
		return a.Position.Index() - b.Position.Index()
	})

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	if err != nil && !(stopped && errors.Is(err, context.Canceled)) {
		return result, err
	}

	result.Complete = !stopped && result.Tested == total

	slog.Debug("Search finished", "tested", result.Tested, "matches", len(result.Matches), "complete", result.Complete)

	return result, nil
}

// partitionChannel streams the partitions that belong to the shard.
func partitionChannel(ctx context.Context, shardIndex, totalShards int) <-chan int {
	ch := make(chan int)

	go func() {
		defer close(ch)

		for partition := range partitionCount {
			if partition%totalShards != shardIndex {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case ch <- partition:
			}
		}
	}()

	return ch
}

func searchPartitions(
	ctx context.Context,
	bombe *Bombe,
	partitions <-chan int,
	matches chan<- Match,
	tested *atomic.Int64,
	progress func(int),
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case partition, ok := <-partitions:
			if !ok {
				return nil
			}

			first := partition * partitionSize

			for index := first; index < first+partitionSize; index++ {
				position := m.PositionAt(index)
				if !bombe.Check(position) {
					continue
				}

				match := Match{Position: position}
				if bombe.verifyPlugboard {
					match.Plugboard = bombe.PossiblePlugboards()
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				case matches <- match:
				}
			}

			count := tested.Add(partitionSize)
			if progress != nil {
				progress(int(count))
			}
		}
	}
}

// RunMultiBombe searches the whole space with the given number of workers
// and returns the accepted positions as sorted three-letter strings.
func RunMultiBombe(ctx context.Context, cfg BombeConfig, threads int) ([]string, error) {
	result, err := Search(ctx, cfg, SearchOptions{Threads: threads})
	if err != nil {
		return nil, err
	}

	positions := make([]string, 0, len(result.Matches))
	for _, match := range result.Matches {
		positions = append(positions, match.Position.String())
	}

	return positions, nil
}
