package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownCache keeps one glamour renderer per width and style.
type markdownCache struct {
	width    int
	style    string
	renderer *glamour.TermRenderer
}

func (c *markdownCache) render(text string, width int, style string) string {
	if c == nil {
		return text
	}
	if c.renderer == nil || c.width != width || c.style != style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		c.renderer, c.width, c.style = r, width, style
	}
	out, err := c.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// detailWidth is the width of the detail pane when it is open.
func (m Model) detailWidth() int {
	if !m.showDetail {
		return 0
	}
	if m.width >= 160 {
		return m.width * 45 / 100
	}
	return m.width * 50 / 100
}

func (m *Model) resizeDetail() {
	m.detail.Width = max(m.detailWidth()-4, 0)
	m.detail.Height = max(m.contentHeight()-2, 0)
	m.detailID = 0
	m.refreshDetail()
}

// refreshDetail renders the selected record into the detail viewport.
func (m *Model) refreshDetail() {
	if !m.showDetail {
		return
	}
	t, ok := m.selected()
	if !ok {
		m.detail.SetContent(m.theme.Styles().MutedText.Render("Select a tutorial"))
		m.detailID = 0
		return
	}

	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(sanitizeLine(t.Title)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("#%d", t.ID)))
	b.WriteString("  ")
	b.WriteString(styles.BadgeStyle(t.Published).Render(t.StatusLabel()))
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(sanitizeBlock(t.Description)); desc != "" {
		b.WriteString(m.markdown.render(desc, max(m.detail.Width-2, 20), m.theme.Markdown))
	} else {
		b.WriteString(styles.FaintText.Render("No description."))
	}

	m.detail.SetContent(b.String())
	if t.ID != m.detailID {
		m.detail.GotoTop()
		m.detailID = t.ID
	}
}

func (m *Model) toggleDetail() {
	m.showDetail = !m.showDetail
	m.resizeDetail()
}

func (m Model) renderDetail(width, height int) string {
	return m.renderTitledBox("Details", m.detail.View(), width, height, false)
}
