package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastDanger
	toastWarning
	toastInfo
)

const maxToasts = 4

func (k toastKind) icon() string {
	switch k {
	case toastSuccess:
		return "✔"
	case toastDanger:
		return "✖"
	case toastWarning:
		return "!"
	default:
		return "i"
	}
}

type toast struct {
	id   int
	kind toastKind
	text string
}

// toastExpiredMsg dismisses the toast with id.
type toastExpiredMsg struct{ id int }

// pushToast appends a toast and schedules its dismissal. The oldest toast
// is dropped once maxToasts are showing.
func (m *Model) pushToast(kind toastKind, text string) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toasts = append(m.toasts, toast{id: id, kind: kind, text: sanitizeLine(text)})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) dismissToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

func (m Model) toastColor(kind toastKind) string {
	switch kind {
	case toastSuccess:
		return m.theme.Success
	case toastDanger:
		return m.theme.Danger
	case toastWarning:
		return m.theme.Warning
	default:
		return m.theme.Info
	}
}

// renderToasts renders the stack newest last, right aligned.
func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	width := min(max(m.width/3, 30), 60)
	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		text := ansi.Truncate(t.kind.icon()+" "+t.text, width-2, "…")
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Background)).
			Background(lipgloss.Color(m.toastColor(t.kind))).
			Bold(true).
			Padding(0, 1).
			Width(width).
			Render(text))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, strings.Join(lines, "\n"))
}
