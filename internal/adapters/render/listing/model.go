package listing

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// sectionRenderedMsg carries one laid-out view back into the program.
type sectionRenderedMsg struct {
	index  int
	output string
}

// pageModel lays out a page of views, one section per view, and quits once all are ready.
type pageModel struct {
	views    []View
	styles   styles
	sections []string
	ready    int
}

func newPageModel(views []View) pageModel {
	return pageModel{
		views:    views,
		styles:   newStyles(),
		sections: make([]string, len(views)),
	}
}

func (m pageModel) Init() tea.Cmd {
	if len(m.views) == 0 {
		return tea.Quit
	}

	cmds := make([]tea.Cmd, 0, len(m.views))
	for i, view := range m.views {
		s := m.styles
		cmds = append(cmds, func() tea.Msg {
			return sectionRenderedMsg{index: i, output: strings.TrimRight(renderView(view, s), "\n")}
		})
	}
	return tea.Sequence(cmds...)
}

func (m pageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rendered, ok := msg.(sectionRenderedMsg)
	if !ok {
		return m, nil
	}

	m.sections[rendered.index] = rendered.output
	m.ready++
	if m.ready == len(m.views) {
		return m, tea.Quit
	}
	return m, nil
}

func (m pageModel) View() string {
	return strings.Join(m.sections, "\n\n")
}

// Render lays out the views as consecutive sections, the same way an interactive program would,
// without touching the terminal.
func Render(views ...View) (string, error) {
	p := tea.NewProgram(
		newPageModel(views),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	page, ok := finalModel.(pageModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return page.View(), nil
}
