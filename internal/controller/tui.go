package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "bombe.dev/pkg/bombe/internal/model"
)

const (
	defaultProgressWidth = 60
	progressPadding      = 4
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hitStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI follows a running search with Bubble Tea. Everything that is not a
// search is printed like SimpleUI.
type TUI struct {
	*SimpleUI

	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// Start launches the progress view in crack mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeCrack {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	model := newCrackModel(cfg.cancel, t.width())
	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			_, _ = fmt.Fprintf(t.output, "progress view failed: %v\n", err)
		}
	}(t.program, t.done)

	return nil
}

// Close ends the progress view and waits for it to restore the terminal.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})
	<-done
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplaySearchInfo implements UI.
func (t *TUI) DisplaySearchInfo(ctx context.Context, info SearchInfo) {
	if !t.send(searchInfoMsg(info)) {
		t.SimpleUI.DisplaySearchInfo(ctx, info)
	}
}

// DisplayOrderStarted implements UI.
func (t *TUI) DisplayOrderStarted(ctx context.Context, reflector string, order m.WheelOrder) {
	if !t.send(orderStartedMsg{reflector: reflector, order: order}) {
		t.SimpleUI.DisplayOrderStarted(ctx, reflector, order)
	}
}

// DisplayProgress implements UI.
func (t *TUI) DisplayProgress(_ context.Context, tested, total int) {
	t.send(progressMsg{tested: tested, total: total})
}

// DisplayOrderCompleted implements UI.
func (t *TUI) DisplayOrderCompleted(ctx context.Context, reflector string, order m.WheelOrder, matches int) {
	if !t.send(orderCompletedMsg{reflector: reflector, order: order, matches: matches}) {
		t.SimpleUI.DisplayOrderCompleted(ctx, reflector, order, matches)
	}
}

func (t *TUI) width() int {
	if f, ok := t.output.(*os.File); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > progressPadding {
			return min(width-progressPadding, defaultProgressWidth)
		}
	}

	return defaultProgressWidth
}

type (
	searchInfoMsg   SearchInfo
	orderStartedMsg struct {
		reflector string
		order     m.WheelOrder
	}
	progressMsg struct {
		tested int
		total  int
	}
	orderCompletedMsg struct {
		reflector string
		order     m.WheelOrder
		matches   int
	}
	finishedMsg struct{}
)

// crackModel is the Bubble Tea model of a running search.
type crackModel struct {
	cancel   context.CancelFunc
	spinner  spinner.Model
	progress progress.Model
	info     SearchInfo
	current  string
	tested   int
	total    int
	finished []string
	quitting bool
}

func newCrackModel(cancel context.CancelFunc, width int) crackModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = width

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return crackModel{cancel: cancel, spinner: spin, progress: bar}
}

func (cm crackModel) Init() tea.Cmd {
	return cm.spinner.Tick
}

func (cm crackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return cm.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		cm.progress.Width = min(max(msg.Width-progressPadding, 10), defaultProgressWidth)
		return cm, nil

	case searchInfoMsg:
		cm.info = SearchInfo(msg)
		return cm, nil

	case orderStartedMsg:
		cm.current = formatOrder(msg.reflector, msg.order)
		return cm, nil

	case progressMsg:
		cm.tested, cm.total = msg.tested, msg.total
		return cm, nil

	case orderCompletedMsg:
		line := fmt.Sprintf("%s: %d candidate(s)", formatOrder(msg.reflector, msg.order), msg.matches)
		cm.finished = append(cm.finished, line)
		cm.current = ""

		return cm, nil

	case finishedMsg:
		cm.quitting = true
		return cm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		cm.spinner, cmd = cm.spinner.Update(msg)

		return cm, cmd
	}

	return cm, nil
}

func (cm crackModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Only the quit keys matter while a search runs.
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return cm.abort()
	default:
	}

	if msg.String() == "q" {
		return cm.abort()
	}

	return cm, nil
}

func (cm crackModel) abort() (tea.Model, tea.Cmd) {
	if cm.cancel != nil {
		cm.cancel()
	}

	cm.quitting = true

	return cm, tea.Quit
}

func (cm crackModel) percent() float64 {
	if cm.total <= 0 {
		return 0
	}

	return float64(cm.tested) / float64(cm.total)
}

func (cm crackModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bombe"))
	b.WriteString("\n")

	if cm.info.Threads > 0 {
		fmt.Fprintf(&b, "  %d wheel order(s), %d worker(s), shard %d/%d, start %s\n",
			cm.info.Orders, cm.info.Threads, cm.info.ShardIndex, max(cm.info.TotalShards, 1), cm.info.Start)
	}

	for _, line := range cm.finished {
		b.WriteString("  ")

		if strings.HasSuffix(line, ": 0 candidate(s)") {
			b.WriteString(doneStyle.Render("✓ " + line))
		} else {
			b.WriteString(hitStyle.Render("★ " + line))
		}

		b.WriteString("\n")
	}

	if cm.current != "" && !cm.quitting {
		fmt.Fprintf(&b, "  %s %s\n", cm.spinner.View(), cm.current)
	}

	fmt.Fprintf(&b, "  %s %d/%d\n", cm.progress.ViewAs(cm.percent()), cm.tested, cm.total)

	if !cm.quitting {
		b.WriteString(helpStyle.Render("  q: abort"))
		b.WriteString("\n")
	}

	return b.String()
}
