package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tutordesk/internal/tutorials"
)

const deleteAllPrompt = "Delete ALL tutorials? This cannot be undone."

// requestDelete asks for confirmation before deleting id.
func (m *Model) requestDelete(id int64) {
	m.confirm.Request(id)
}

// requestDeleteAll opens the bulk delete prompt. An empty list is a no-op.
func (m *Model) requestDeleteAll() {
	if len(m.snapshot.Tutorials) == 0 {
		return
	}
	m.confirmAll = true
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes), key.Matches(msg, m.keys.Confirm):
		id, ok := m.confirm.Confirm()
		if !ok {
			return nil
		}
		return m.deleteOne(id)
	case key.Matches(msg, m.keys.No):
		m.confirm.Cancel()
	}
	return nil
}

func (m *Model) handleDeleteAllKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.confirmAll = false
		return m.deleteAll()
	case key.Matches(msg, m.keys.No):
		m.confirmAll = false
	}
	return nil
}

func (m Model) renderConfirm() string {
	styles := m.theme.Styles()
	id, _ := m.confirm.Pending()

	subject := fmt.Sprintf("#%d", id)
	if t, ok := tutorials.Find(m.snapshot.Tutorials, id); ok {
		subject = fmt.Sprintf("#%d %q", id, truncate(sanitizeLine(t.Title), 40))
	}

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete Tutorial"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Delete " + subject + "?"))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y/Enter: Delete  •  n/Esc: Cancel"))

	return m.placeModal(styles.DangerModal.Width(50).Render(b.String()))
}

func (m Model) renderDeleteAll() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete All"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(deleteAllPrompt))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d tutorials are shown.", len(m.snapshot.Tutorials))))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y: Delete all  •  n/Esc: Cancel"))

	return m.placeModal(styles.DangerModal.Width(50).Render(b.String()))
}
