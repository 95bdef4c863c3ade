package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// fetchStep is one store call. Steps of the same fetch run concurrently.
type fetchStep struct {
	name string
	call func(context.Context) error
}

func step(name string, call func(context.Context) error) fetchStep {
	return fetchStep{name: name, call: call}
}

type stepDoneMsg struct {
	name string
}

type fetchFinishedMsg struct {
	err error
}

type fetchProgressModel struct {
	spinner spinner.Model
	title   string
	pending []string
	total   int
	updates <-chan tea.Msg
	err     error
	done    bool
}

func newFetchProgressModel(title string, steps []fetchStep, updates <-chan tea.Msg) fetchProgressModel {
	pending := make([]string, 0, len(steps))
	for _, s := range steps {
		pending = append(pending, s.name)
	}

	return fetchProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		title:   title,
		pending: pending,
		total:   len(steps),
		updates: updates,
	}
}

func waitForUpdate(updates <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m fetchProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForUpdate(m.updates))
}

func (m fetchProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stepDoneMsg:
		m.pending = slices.DeleteFunc(m.pending, func(name string) bool { return name == msg.name })
		return m, waitForUpdate(m.updates)
	case fetchFinishedMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchProgressModel) View() string {
	if m.done {
		return ""
	}
	if m.total <= 1 {
		return fmt.Sprintf("%s %s...", m.spinner.View(), m.title)
	}

	return fmt.Sprintf("%s %s (%d/%d, waiting on %s)",
		m.spinner.View(), m.title, m.total-len(m.pending), m.total, strings.Join(m.pending, ", "))
}

// runSteps runs every step concurrently; the first failure cancels the others.
func runSteps(ctx context.Context, steps []fetchStep, onDone func(name string)) error {
	group, ctx := errgroup.WithContext(ctx)
	for _, s := range steps {
		group.Go(func() error {
			if err := s.call(ctx); err != nil {
				return err
			}
			if onDone != nil {
				onDone(s.name)
			}
			return nil
		})
	}
	return group.Wait()
}

func runFetchProgress(ctx context.Context, output io.Writer, title string, steps []fetchStep) error {
	// Buffered so the workers never block once the program has quit.
	updates := make(chan tea.Msg, len(steps)+1)
	go func() {
		err := runSteps(ctx, steps, func(name string) { updates <- stepDoneMsg{name: name} })
		updates <- fetchFinishedMsg{err: err}
	}()

	p := tea.NewProgram(
		newFetchProgressModel(title, steps, updates),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(fetchProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}

// fetch runs one store call behind a spinner on stderr.
func fetch(cmd *cobra.Command, title string, call func(context.Context) error) error {
	return fetchAll(cmd, title, step(title, call))
}

// fetchAll runs the steps together, showing which are still pending. JSON output skips the spinner.
func fetchAll(cmd *cobra.Command, title string, steps ...fetchStep) error {
	if asJSON(cmd) {
		return runSteps(cmd.Context(), steps, nil)
	}
	return runFetchProgress(cmd.Context(), cmd.ErrOrStderr(), title, steps)
}
