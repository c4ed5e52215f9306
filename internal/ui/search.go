package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchDebounceMsg fires when the search box has been quiet for the
// debounce window. Only the newest seq triggers a fetch.
type searchDebounceMsg struct{ seq int }

func newSearchInput() textinput.Model {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "Search titles…"
	in.CharLimit = 200
	in.Width = 30
	return in
}

// handleSearchKey handles input while the search box has focus. Every edit
// restarts the debounce timer.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		if m.search.Value() == "" {
			return nil
		}
		m.search.SetValue("")
		return m.scheduleSearch()
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.scheduleSearch())
}

func (m *Model) scheduleSearch() tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m *Model) handleSearchDebounce(msg searchDebounceMsg) tea.Cmd {
	if msg.seq != m.searchSeq {
		return nil
	}
	return m.reload()
}

// togglePublishedFilter flips the published-only filter and reloads at once.
func (m *Model) togglePublishedFilter() tea.Cmd {
	m.publishedOnly = !m.publishedOnly
	return m.reload()
}
