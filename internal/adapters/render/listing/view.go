package listing

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Tone int

const (
	ToneNormal Tone = iota
	TonePositive
	ToneWarning
	ToneMuted
)

type Cell struct {
	Text string
	Tone Tone
	// Progress, when set, renders a bar followed by the percentage instead of Text.
	Progress *int
}

func Text(value string) Cell { return Cell{Text: value} }

func Toned(value string, tone Tone) Cell { return Cell{Text: value, Tone: tone} }

func Progress(percent int) Cell { return Cell{Progress: &percent} }

// View is either a table (Columns and Rows) or a list of key/value Fields.
type View struct {
	Title   string
	Noun    string
	Columns []string
	Rows    [][]Cell
	Fields  []Field
	Footer  string
	Empty   string
}

type Field struct {
	Key   string
	Value Cell
}

const progressBarWidth = 20

func renderView(view View, s styles) string {
	lines := []string{s.title.Render(view.Title)}

	if len(view.Fields) > 0 {
		lines = append(lines, renderFields(view.Fields, s))
		return joinWithFooter(lines, view.Footer, s)
	}

	noun := view.Noun
	if noun == "" {
		noun = "items"
	}
	lines = append(lines, s.header.Render(fmt.Sprintf("%s: %d", noun, len(view.Rows))))

	if len(view.Rows) == 0 {
		empty := view.Empty
		if empty == "" {
			empty = "Nothing to show."
		}
		lines = append(lines, s.empty.Render(empty))
		return joinWithFooter(lines, view.Footer, s)
	}

	lines = append(lines, renderTable(view.Columns, view.Rows, s)...)
	return joinWithFooter(lines, view.Footer, s)
}

func joinWithFooter(lines []string, footer string, s styles) string {
	if footer != "" {
		lines = append(lines, s.footer.Render(footer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTable(columns []string, rows [][]Cell, s styles) []string {
	rendered := make([][]string, len(rows))
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = lipgloss.Width(column)
	}

	for r, row := range rows {
		rendered[r] = make([]string, len(columns))
		for c := range columns {
			if c >= len(row) {
				continue
			}
			text := renderCell(row[c], s)
			rendered[r][c] = text
			if w := lipgloss.Width(text); w > widths[c] {
				widths[c] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = pad(s.column.Render(column), widths[i])
	}
	lines = append(lines, strings.TrimRight(strings.Join(header, "  "), " "))

	for _, row := range rendered {
		cells := make([]string, len(columns))
		for i := range columns {
			cells[i] = pad(row[i], widths[i])
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	return lines
}

func renderFields(fields []Field, s styles) string {
	width := 0
	for _, field := range fields {
		if w := lipgloss.Width(field.Key); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		key := pad(s.key.Render(field.Key+":"), width+1)
		lines = append(lines, key+" "+renderCell(field.Value, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCell(cell Cell, s styles) string {
	if cell.Progress != nil {
		percent := *cell.Progress
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderProgressBar(float64(percent), progressBarWidth, s),
			" ",
			s.cell.Render(fmt.Sprintf("%3d%%", percent)),
		)
	}

	switch cell.Tone {
	case TonePositive:
		return s.positive.Render(cell.Text)
	case ToneWarning:
		return s.warning.Render(cell.Text)
	case ToneMuted:
		return s.muted.Render(cell.Text)
	default:
		return s.cell.Render(cell.Text)
	}
}

func pad(text string, width int) string {
	gap := width - lipgloss.Width(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

func renderProgressBar(donePercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	done := clampPercent(donePercent)
	filled := int(math.Round(float64(width) * done / 100.0))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
