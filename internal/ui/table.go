package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/tutordesk/internal/tutorials"
	"github.com/five82/tutordesk/internal/view"
)

// syncSelection keeps the selection on the same record across reloads and
// clamps it when that record is gone.
func (m *Model) syncSelection() {
	count := len(m.snapshot.Tutorials)
	if count == 0 {
		m.selectedRow = 0
		m.selectedID = 0
		return
	}
	if m.selectedID != 0 {
		for i, t := range m.snapshot.Tutorials {
			if t.ID == m.selectedID {
				m.selectedRow = i
				return
			}
		}
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	m.selectedID = m.snapshot.Tutorials[m.selectedRow].ID
}

// moveSelection moves the cursor by delta rows, clamped to the list.
func (m *Model) moveSelection(delta int) {
	count := len(m.snapshot.Tutorials)
	if count == 0 {
		return
	}
	m.selectedRow = min(max(m.selectedRow+delta, 0), count-1)
	m.selectedID = m.snapshot.Tutorials[m.selectedRow].ID
	m.refreshDetail()
}

// selected returns the record under the cursor.
func (m Model) selected() (tutorials.Tutorial, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Tutorials) {
		return tutorials.Tutorial{}, false
	}
	return m.snapshot.Tutorials[m.selectedRow], true
}

// tableHeight is the number of rows visible in the table pane.
func (m Model) tableHeight() int {
	return max(m.contentHeight()-3, 1) // borders and column header
}

// visibleRange returns the window of rows that keeps the cursor on screen.
func (m Model) visibleRange(total int) (int, int) {
	height := m.tableHeight()
	if total <= height {
		return 0, total
	}
	start := 0
	if m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}
	return start, min(start+height, total)
}

// renderTable renders the list pane: column header plus one line per row,
// or the empty-state placeholder.
func (m Model) renderTable(width, height int, focused bool) string {
	page := view.Build(m.snapshot.Tutorials)
	styles := m.theme.Styles()

	title := fmt.Sprintf("Tutorials (%s)", m.snapshot.Query.Label())
	if page.Empty() {
		msg := "No tutorials found."
		if !m.snapshot.Loaded {
			msg = "Loading tutorials…"
		}
		empty := lipgloss.Place(width-2, height-2, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Background(lipgloss.Color(m.theme.SurfaceAlt)).Render(msg),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.SurfaceAlt)))
		return m.renderTitledBox(title, empty, width, height, focused)
	}

	inner := width - 2
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	cols := newColumns(inner)

	lines := []string{m.renderColumnHeader(cols, bgColor)}
	start, end := m.visibleRange(len(page.Rows))
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(page.Rows[i], cols, i == m.selectedRow, bgColor))
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, focused)
}

// columns holds the cell widths of the table.
type columns struct {
	id, title, description, status int
}

func newColumns(width int) columns {
	c := columns{id: 6, status: 11}
	rest := max(width-c.id-c.status-3, 10)
	c.title = max(rest*2/5, 8)
	c.description = max(rest-c.title, 0)
	return c
}

func (m Model) renderColumnHeader(c columns, bgColor string) string {
	bg := NewBgStyle(bgColor)
	style := m.theme.Styles().FaintText.Bold(true)
	cell := func(text string, w int) string { return bg.Render(padRight(text, w), style) }
	return bg.FillLine(
		cell("ID", c.id)+bg.Space()+
			cell("TITLE", c.title)+bg.Space()+
			cell("DESCRIPTION", c.description)+bg.Space()+
			cell("STATUS", c.status),
		c.id+c.title+c.description+c.status+3)
}

// renderRow renders one row. Title is bold; the status is a badge chip.
func (m Model) renderRow(row view.Row, c columns, selected bool, bgColor string) string {
	styles := m.theme.Styles()

	var idStyle, titleStyle, descStyle lipgloss.Style
	if selected {
		bgColor = m.theme.SelectionBg
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle, titleStyle, descStyle = sel, sel.Bold(true), sel
	} else {
		idStyle, titleStyle, descStyle = styles.MutedText, styles.Text.Bold(true), styles.MutedText
	}
	bg := NewBgStyle(bgColor)

	cell := func(text string, w int, style lipgloss.Style) string {
		return bg.Render(padRight(truncate(text, w), w), style)
	}
	badge := styles.BadgeStyle(row.Published).Render(row.Badge.Label)
	if gap := c.status - ansi.StringWidth(badge); gap > 0 {
		badge += bg.Spaces(gap)
	}

	return bg.FillLine(
		cell(fmt.Sprintf("#%d", row.ID), c.id, idStyle)+bg.Space()+
			cell(sanitizeLine(row.Title), c.title, titleStyle)+bg.Space()+
			cell(sanitizeLine(row.Description), c.description, descStyle)+bg.Space()+
			badge,
		c.id+c.title+c.description+c.status+3)
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := ansi.StringWidth(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColor))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, top)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\n")
}
