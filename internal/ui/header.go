package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutordesk/internal/tutorials"
	"github.com/five82/tutordesk/internal/view"
)

// renderHeader renders the status bar: connection, counts and filter.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("tutordesk", styles.Logo)}

	switch {
	case !m.snapshot.Loaded && m.snapshot.LastError == nil:
		parts = append(parts, bg.Render("Connecting…", styles.WarningText.Bold(true)))
	case m.snapshot.IsOffline():
		parts = append(parts, bg.Render("● "+classifyError(m.snapshot.LastError), styles.DangerText))
	case m.snapshot.LastError != nil:
		parts = append(parts, bg.Render("● "+classifyError(m.snapshot.LastError), styles.WarningText.Bold(true)))
	default:
		parts = append(parts, bg.Render("● ONLINE", styles.SuccessText))
	}

	stats := m.snapshot.Stats()
	parts = append(parts,
		bg.Render("Total:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprint(stats.Total), styles.Text),
		bg.Render("Published:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprint(stats.Published), styles.SuccessText),
		bg.Render("Drafts:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprint(stats.Unpublished), styles.WarningText),
	)

	if m.width >= 100 && m.apiURL != "" {
		parts = append(parts, bg.Render(truncate(m.apiURL, 40), styles.FaintText))
	}
	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.MutedText))
	}
	if m.inflight > 0 {
		parts = append(parts, bg.Render(m.spinner.View(), styles.AccentText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// classifyError turns a fetch error into a short header label.
func classifyError(err error) string {
	if err == nil {
		return "ONLINE"
	}
	var reqErr *tutorials.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("HTTP %d", reqErr.Status)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderSearchBar renders the search box, the published toggle and the theme.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = bg.Render("/", styles.AccentText) + bg.Space() + bg.Render("Search titles", styles.FaintText)
	}

	box := "[ ]"
	if m.publishedOnly {
		box = "[x]"
	}
	toggle := bg.Render("P", styles.AccentText) + bg.Render(":", styles.FaintText) +
		bg.Render(box+" Published only", styles.MutedText)
	theme := bg.Render("T", styles.AccentText) + bg.Render(":", styles.FaintText) +
		bg.Render(m.theme.Name, styles.FaintText)

	return styles.Header.Width(m.width).Render(search + bg.Spaces(3) + toggle + bg.Spaces(3) + theme)
}

// renderCommandBar renders key hints for the selected row.
func (m Model) renderCommandBar() string {
	bindings := m.keys.ShortHelp()
	if t, ok := m.selected(); ok {
		row := view.NewRow(t)
		toggle := key.NewBinding(
			key.WithKeys(m.keys.TogglePublic.Keys()...),
			key.WithHelp(m.keys.TogglePublic.Help().Key, row.Actions[1].Label),
		)
		for i, b := range bindings {
			if b.Help().Key == toggle.Help().Key {
				bindings[i] = toggle
			}
		}
	}

	h := m.help
	h.Width = max(m.width-2, 0)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Padding(0, 1).
		Render(h.ShortHelpView(bindings))
}
