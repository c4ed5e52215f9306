package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tutordesk/internal/logtail"
)

const logTailLines = 500

type logLinesMsg struct {
	lines []string
	err   error
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// openLogs shows the client log overlay and loads the file tail.
func (m *Model) openLogs() tea.Cmd {
	m.showLogs = true
	m.logView.Width = max(m.width-8, 10)
	m.logView.Height = max(m.height-8, 3)
	if m.logFile == "" {
		m.logView.SetContent(m.theme.Styles().MutedText.Render("Logging is disabled. Set log_file in config.toml."))
		return nil
	}
	m.logView.SetContent(m.theme.Styles().MutedText.Render("Reading " + m.logFile + "…"))
	return readLogCmd(m.logFile)
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	if !m.showLogs {
		return
	}
	styles := m.theme.Styles()
	switch {
	case msg.err != nil:
		m.logView.SetContent(styles.DangerText.Render(msg.err.Error()))
	case len(msg.lines) == 0:
		m.logView.SetContent(styles.MutedText.Render("Log is empty."))
	default:
		lines := make([]string, len(msg.lines))
		for i, line := range msg.lines {
			line = truncate(sanitizeLine(line), m.logView.Width)
			switch logtail.Classify(line) {
			case logtail.SeverityError:
				lines[i] = styles.DangerText.Render(line)
			case logtail.SeverityWarn:
				lines[i] = styles.WarningText.Render(line)
			default:
				lines[i] = styles.Text.Render(line)
			}
		}
		m.logView.SetContent(strings.Join(lines, "\n"))
		m.logView.GotoBottom()
	}
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.Text.Bold(true).Render("Client Log")
	hint := styles.FaintText.Render("j/k: Scroll  •  r: Reload  •  Esc: Close")
	content := title + "\n" + m.logView.View() + "\n" + hint
	return m.placeModal(styles.Modal.Width(max(m.width-4, 20)).Render(content))
}
