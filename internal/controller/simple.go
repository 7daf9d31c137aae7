package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "bombe.dev/pkg/bombe/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayText prints a line of command output.
func (s *SimpleUI) DisplayText(ctx context.Context, text string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", text)
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s", diff)
}

// DisplayMenu prints the menu as a table followed by the start signal.
func (s *SimpleUI) DisplayMenu(ctx context.Context, menu m.Menu, start m.Signal) {
	if ctx.Err() != nil {
		return
	}

	rows := make([][]string, 0, len(menu))
	for _, item := range menu {
		rows = append(rows, []string{strconv.Itoa(item.Number), string(item.Before), string(item.After)})
	}

	s.printf("\n%s", renderTable(
		[]string{"Number", "Before", "After"},
		[]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER},
		rows,
		[]string{"Letters", strconv.Itoa(len(menu.Letters())), ""},
	))
	s.printf("Start signal: %s\n", start)
}

// DisplayAlignments prints the crib offsets that survive the no-self-encipherment rule.
func (s *SimpleUI) DisplayAlignments(ctx context.Context, crib string, offsets []int) {
	if ctx.Err() != nil {
		return
	}

	if len(offsets) == 0 {
		s.printf("No feasible offsets for crib %q\n", crib)
		return
	}

	values := make([]string, 0, len(offsets))
	for _, offset := range offsets {
		values = append(values, strconv.Itoa(offset))
	}

	s.printf("Feasible offsets for crib %q: %s\n", crib, strings.Join(values, " "))
}

// DisplayCatalog prints the wheels and reflectors that can be named on the command line.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, entries []CatalogEntry) {
	if ctx.Err() != nil {
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Kind, entry.Name, entry.Wiring, entry.Pegs})
	}

	s.printf("\n%s", renderTable(
		[]string{"Kind", "Name", "Wiring", "Pegs"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER},
		rows,
		nil,
	))
}

// DisplaySearchInfo shows the size and concurrency of a crack run.
func (s *SimpleUI) DisplaySearchInfo(ctx context.Context, info SearchInfo) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Testing %d positions for %d wheel order(s) with %d worker(s) (shard %d/%d), start signal %s\n",
		info.Positions, info.Orders, info.Threads, info.ShardIndex, max(info.TotalShards, 1), info.Start)
}

// DisplayOrderStarted announces the wheel order being tested.
func (s *SimpleUI) DisplayOrderStarted(ctx context.Context, reflector string, order m.WheelOrder) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Testing %s\n", formatOrder(reflector, order))
}

// DisplayProgress is a no-op: plain output only reports finished orders.
func (s *SimpleUI) DisplayProgress(_ context.Context, _, _ int) {}

// DisplayOrderCompleted reports the candidates found for one wheel order.
func (s *SimpleUI) DisplayOrderCompleted(ctx context.Context, reflector string, order m.WheelOrder, matches int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Finished %s: %d candidate(s)\n", formatOrder(reflector, order), matches)
}

// DisplayReport prints the candidates of one report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) {
	if ctx.Err() != nil {
		return
	}

	rows := make([][]string, 0, len(report.Candidates))
	for _, candidate := range report.Candidates {
		rows = append(rows, []string{
			candidate.Reflector,
			strings.Join(candidate.Wheels[:], "-"),
			candidate.Position,
			strings.Join(candidate.Plugboard, " "),
		})
	}

	s.printf("\n%s", renderTable(
		[]string{"Reflector", "Wheels", "Position", "Plugboard"},
		[]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT},
		rows,
		[]string{"Candidates", strconv.Itoa(len(report.Candidates)), "", ""},
	))

	status := "complete"
	if !report.Complete {
		status = "partial"
	}

	s.printf("Tested %d positions (%s)\n", report.Tested, status)
}

// DisplayReports lists saved reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) {
	if ctx.Err() != nil {
		return
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return
	}

	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, []string{
			shortID(report.ID),
			report.CreatedAt.Format("2006-01-02 15:04:05"),
			report.Crib,
			strconv.Itoa(len(report.Candidates)),
			strconv.FormatBool(report.Complete),
		})
	}

	s.printf("\n%s", renderTable(
		[]string{"ID", "Created", "Crib", "Candidates", "Complete"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER},
		rows,
		nil,
	))
}

func renderTable(header []string, alignment []int, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}

func formatOrder(reflector string, order m.WheelOrder) string {
	return fmt.Sprintf("reflector %s wheels %s", reflector, strings.Join(order[:], "-"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
