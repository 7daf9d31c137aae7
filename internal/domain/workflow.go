package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"bombe.dev/pkg/bombe/internal/adapter"
	"bombe.dev/pkg/bombe/internal/controller"
	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
	"bombe.dev/pkg/bombe/pkg"
)

// ErrMismatch is returned when enciphered output differs from the expected text.
var ErrMismatch = errors.New("output does not match expected text")

const diffGroupSize = 5

// EncipherArgs configures a machine and the text to pass through it.
type EncipherArgs struct {
	Catalog   m.Path
	Settings  rotor.Settings
	Positions string
	Text      string
	Decipher  bool
	Groups    int
	Expect    string
}

// MenuArgs selects a crib placement to show as a menu.
type MenuArgs struct {
	Crib       string
	Ciphertext string
	Offset     int
	Scan       bool
}

// CrackArgs contains the arguments for a bombe search.
type CrackArgs struct {
	Catalog         m.Path
	Crib            string
	Ciphertext      string
	Offset          int
	Reflector       string
	Orders          []m.WheelOrder
	Start           *m.Signal
	DiagonalBoard   bool
	VerifyPlugboard bool
	Threads         int
	MaxMatches      int
	ShardIndex      int
	TotalShards     int
	Reports         m.Path
}

// WheelsArgs selects the catalog to list.
type WheelsArgs struct {
	Catalog m.Path
}

// ViewArgs locates saved reports.
type ViewArgs struct {
	Reports m.Path
}

// MergeArgs locates the shard reports to merge.
type MergeArgs struct {
	Reports m.Path
}

// Workflow is what the command line drives.
type Workflow interface {
	Encipher(ctx context.Context, args EncipherArgs) error
	Menu(ctx context.Context, args MenuArgs) error
	Crack(ctx context.Context, args CrackArgs) error
	Wheels(ctx context.Context, args WheelsArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.CatalogSource
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(reportStore adapter.ReportStore, catalogSource adapter.CatalogSource, ui controller.UI) Workflow {
	return &workflow{
		ReportStore:   reportStore,
		CatalogSource: catalogSource,
		UI:            ui,
	}
}

func (w *workflow) Encipher(ctx context.Context, args EncipherArgs) error {
	catalog, err := w.Load(args.Catalog)
	if err != nil {
		return err
	}

	machine, err := catalog.Machine(args.Settings)
	if err != nil {
		return fmt.Errorf("build machine: %w", err)
	}

	positions := args.Positions
	if positions == "" {
		positions = "aaa"
	}

	window := []rune(m.Clean(positions))
	if len(window) != 3 {
		return fmt.Errorf("%w: positions %q need three letters", rotor.ErrInvalidSpecification, positions)
	}

	machine.SetWheels(window[0], window[1], window[2])

	text := m.Fold(args.Text)

	var out string
	if args.Decipher {
		out = machine.Decipher(text)
	} else {
		out = machine.Encipher(text)
	}

	slog.Debug("Enciphered text", "letters", len(out), "decipher", args.Decipher,
		"finalPositions", machine.DisplayedPositions())

	shown := out
	if args.Groups > 0 {
		shown = m.Group(out, args.Groups)
	}

	if err := w.Start(ctx, controller.WithTextMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayText(ctx, shown)

	if args.Expect == "" {
		return nil
	}

	want := m.Clean(m.Fold(args.Expect))
	if want == out {
		return nil
	}

	diff, err := expectDiff(want, out)
	if err != nil {
		return fmt.Errorf("diff output: %w", err)
	}

	w.DisplayDiff(ctx, diff)

	return ErrMismatch
}

// expectDiff renders a unified diff of two letter streams, one group of
// letters per line.
func expectDiff(want, got string) (string, error) {
	lines := func(text string) []string {
		if text == "" {
			return nil
		}

		return difflib.SplitLines(strings.ReplaceAll(m.Group(text, diffGroupSize), " ", "\n"))
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        lines(want),
		B:        lines(got),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	})
}

func (w *workflow) Menu(ctx context.Context, args MenuArgs) error {
	if err := w.Start(ctx, controller.WithTextMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	if args.Scan {
		w.DisplayAlignments(ctx, m.Clean(args.Crib), CribAlignments(args.Crib, args.Ciphertext))
		return nil
	}

	menu, err := MakeMenuAt(args.Crib, args.Ciphertext, args.Offset)
	if err != nil {
		return err
	}

	start, err := DefaultStartSignal(menu)
	if err != nil {
		return err
	}

	w.DisplayMenu(ctx, menu, start)

	return nil
}

func (w *workflow) Wheels(ctx context.Context, args WheelsArgs) error {
	catalog, err := w.Load(args.Catalog)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithTextMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayCatalog(ctx, controller.CatalogEntries(catalog))

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	shards, err := w.ShardDirs(args.Reports)
	if err != nil {
		return fmt.Errorf("list shards: %w", err)
	}

	for _, dir := range shards {
		shardReports, err := w.LoadReports(dir)
		if err != nil {
			return fmt.Errorf("load reports from %s: %w", dir, err)
		}

		reports = append(reports, shardReports...)
	}

	if err := w.Start(ctx, controller.WithTextMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayReports(ctx, reports)

	return nil
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	shards, err := w.ShardDirs(args.Reports)
	if err != nil {
		return fmt.Errorf("list shards: %w", err)
	}

	if len(shards) == 0 {
		return fmt.Errorf("%w: no shard directories under %s", ErrIncompatibleReports, args.Reports)
	}

	var reports []m.Report

	for _, dir := range shards {
		shardReports, err := w.LoadReports(dir)
		if err != nil {
			return fmt.Errorf("load reports from %s: %w", dir, err)
		}

		reports = append(reports, shardReports...)
	}

	merged, err := MergeReports(reports)
	if err != nil {
		return err
	}

	if _, err := w.SaveReport(args.Reports, merged); err != nil {
		return fmt.Errorf("save merged report: %w", err)
	}

	if err := w.Start(ctx, controller.WithTextMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayReport(ctx, merged)

	return nil
}

func (w *workflow) Crack(ctx context.Context, args CrackArgs) error {
	catalog, err := w.Load(args.Catalog)
	if err != nil {
		return err
	}

	menu, err := MakeMenuAt(args.Crib, args.Ciphertext, args.Offset)
	if err != nil {
		return err
	}

	orders := args.Orders
	if len(orders) == 0 {
		orders = []m.WheelOrder{{"I", "II", "III"}}
	}

	configs := make([]BombeConfig, 0, len(orders))

	for _, order := range orders {
		cfg, err := BombeConfigFor(catalog, args.Reflector, order, menu)
		if err != nil {
			return err
		}

		cfg.StartSignal = args.Start
		cfg.UseDiagonalBoard = args.DiagonalBoard
		cfg.VerifyPlugboard = args.VerifyPlugboard
		configs = append(configs, cfg)
	}

	start, err := DefaultStartSignal(menu)
	if err != nil {
		return err
	}

	if args.Start != nil {
		start, err = normalizeSignal(*args.Start)
		if err != nil {
			return err
		}
	}

	perOrder, err := ShardPositions(args.ShardIndex, args.TotalShards)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	candidates, err := pkg.NewSpill[m.Candidate]("")
	if err != nil {
		return fmt.Errorf("create candidate spill: %w", err)
	}

	defer func() {
		if err := candidates.Close(); err != nil {
			slog.Error("Failed to close candidate spill", "error", err)
		}
	}()

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, controller.WithCrackMode(), controller.WithCancel(cancel)); err != nil {
		return err
	}

	w.DisplaySearchInfo(ctx, controller.SearchInfo{
		Threads:     threads,
		ShardIndex:  args.ShardIndex,
		TotalShards: max(args.TotalShards, 1),
		Orders:      len(orders),
		Positions:   perOrder,
		Start:       start,
	})

	slog.Info("Starting crack", "orders", len(orders), "reflector", args.Reflector, "threads", threads,
		"shard", args.ShardIndex, "shards", args.TotalShards, "menu", len(menu))

	tested, complete, searchErr := w.searchOrders(searchCtx, configs, orders, args, threads, perOrder, candidates)

	w.Close(ctx)

	report := m.Report{
		Crib:            m.Clean(args.Crib),
		Ciphertext:      m.Clean(args.Ciphertext),
		Offset:          args.Offset,
		Reflector:       args.Reflector,
		Orders:          orders,
		Start:           start.String(),
		DiagonalBoard:   args.DiagonalBoard,
		VerifyPlugboard: args.VerifyPlugboard,
		ShardIndex:      args.ShardIndex,
		TotalShards:     max(args.TotalShards, 1),
		Tested:          tested,
		Complete:        complete && searchErr == nil,
	}

	err = candidates.Range(func(_ uint64, candidate m.Candidate) error {
		report.Candidates = append(report.Candidates, candidate)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read candidates: %w", err)
	}

	SortCandidates(report.Candidates, orders)

	dir := args.Reports
	if report.TotalShards > 1 {
		dir = w.ShardDir(args.Reports, args.ShardIndex)
	}

	if _, err := w.SaveReport(dir, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplayReport(ctx, report)

	if searchErr != nil {
		return fmt.Errorf("search: %w", searchErr)
	}

	return nil
}

// searchOrders runs one search per wheel order, spilling the candidates,
// and returns how many positions were tested and whether every order was
// searched to the end.
func (w *workflow) searchOrders(
	ctx context.Context,
	configs []BombeConfig,
	orders []m.WheelOrder,
	args CrackArgs,
	threads int,
	perOrder int,
	candidates pkg.Spill[m.Candidate],
) (int, bool, error) {
	total := perOrder * len(orders)
	tested := 0
	complete := true

	for i, cfg := range configs {
		remaining := 0

		if args.MaxMatches > 0 {
			remaining = args.MaxMatches - int(candidates.Len())
			if remaining <= 0 {
				return tested, false, nil
			}
		}

		order := orders[i]
		base := tested

		w.DisplayOrderStarted(ctx, args.Reflector, order)

		result, err := Search(ctx, cfg, SearchOptions{
			Threads:     threads,
			MaxMatches:  remaining,
			ShardIndex:  args.ShardIndex,
			TotalShards: args.TotalShards,
			Progress: func(done int) {
				w.DisplayProgress(ctx, base+done, total)
			},
		})

		tested += result.Tested

		batch := make([]m.Candidate, 0, len(result.Matches))
		for _, match := range result.Matches {
			batch = append(batch, newCandidate(args.Reflector, order, match))
		}

		if err := candidates.AppendBatch(batch); err != nil {
			return tested, false, err
		}

		w.DisplayOrderCompleted(ctx, args.Reflector, order, len(result.Matches))

		if err != nil {
			return tested, false, err
		}

		complete = complete && result.Complete
	}

	return tested, complete, nil
}

func newCandidate(reflector string, order m.WheelOrder, match Match) m.Candidate {
	candidate := m.Candidate{
		Reflector: reflector,
		Wheels:    order,
		Position:  match.Position.String(),
	}

	for _, pair := range match.Plugboard {
		candidate.Plugboard = append(candidate.Plugboard, pair.String())
	}

	return candidate
}
