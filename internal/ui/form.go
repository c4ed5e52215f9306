package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutordesk/internal/state"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldPublished
	fieldCount
)

// formState holds the widgets of the add/edit modal.
type formState struct {
	title       textinput.Model
	description textarea.Model
	published   bool
	focus       formField
}

func newForm() formState {
	title := textinput.New()
	title.Placeholder = "Tutorial title"
	title.CharLimit = 255
	title.Width = 44

	desc := textarea.New()
	desc.Placeholder = "Optional description (markdown)"
	desc.Prompt = ""
	desc.CharLimit = 4096
	desc.ShowLineNumbers = false
	desc.SetWidth(46)
	desc.SetHeight(5)
	desc.Blur()

	return formState{title: title, description: desc}
}

// load resets the widgets to fields and focuses the title.
func (f *formState) load(fields state.Fields) tea.Cmd {
	f.title.SetValue(fields.Title)
	f.title.CursorEnd()
	f.description.SetValue(fields.Description)
	f.published = fields.Published
	return f.setFocus(fieldTitle)
}

func (f formState) values() state.Fields {
	return state.Fields{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Published:   f.published,
	}
}

func (f *formState) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.title.Blur()
	f.description.Blur()
	switch field {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.description.Focus()
	}
	return nil
}

func (m *Model) openCreate() tea.Cmd {
	if !m.editor.OpenCreate() {
		return nil
	}
	return m.form.load(m.editor.Fields())
}

func (m *Model) openEdit(id int64) tea.Cmd {
	if !m.editor.OpenEdit(id, m.snapshot.Tutorials) {
		return nil
	}
	return m.form.load(m.editor.Fields())
}

// saveForm validates the modal and dispatches the write. A blank title keeps
// the modal open and sends nothing.
func (m *Model) saveForm() tea.Cmd {
	sub, ok := m.editor.Save(m.form.values())
	if !ok {
		return m.form.setFocus(fieldTitle)
	}
	m.form.title.Blur()
	m.form.description.Blur()
	return m.submit(sub)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editor.Close()
		m.form.title.Blur()
		m.form.description.Blur()
		return nil

	case key.Matches(msg, m.keys.Save):
		return m.saveForm()

	case key.Matches(msg, m.keys.Confirm) && m.form.focus != fieldDescription:
		return m.saveForm()

	case key.Matches(msg, m.keys.NextField):
		return m.form.setFocus((m.form.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.Check) && m.form.focus == fieldPublished:
		m.form.published = !m.form.published
		return nil
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case fieldDescription:
		m.form.description, cmd = m.form.description.Update(msg)
	}
	return cmd
}

// renderForm renders the add/edit modal.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	title := "Add Tutorial"
	if m.editor.State() == state.ModalEdit {
		title = "Edit Tutorial"
	}

	label := func(text string, field formField) string {
		if m.form.focus == field {
			return styles.AccentText.Render(text)
		}
		return styles.MutedText.Render(text)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 48)))
	b.WriteString("\n\n")

	b.WriteString(label("Title *", fieldTitle))
	b.WriteString("\n")
	b.WriteString(m.form.title.View())
	b.WriteString("\n")
	if m.editor.TitleInvalid() {
		b.WriteString(styles.DangerText.Render("Title is required."))
	}
	b.WriteString("\n")

	b.WriteString(label("Description", fieldDescription))
	b.WriteString("\n")
	b.WriteString(m.form.description.View())
	b.WriteString("\n\n")

	box := "[ ]"
	if m.form.published {
		box = "[x]"
	}
	b.WriteString(label(box+" Published", fieldPublished))
	b.WriteString("\n\n")

	b.WriteString(styles.FaintText.Render("Tab: Next field  •  Ctrl+S: Save  •  Esc: Cancel"))

	return m.placeModal(styles.Modal.Width(56).Render(b.String()))
}

// placeModal centers a rendered modal over the screen.
func (m Model) placeModal(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
