package state

import (
	"strings"

	"github.com/five82/tutordesk/internal/tutorials"
)

// ModalState enumerates the add/edit modal lifecycle.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalCreate
	ModalEdit
)

func (s ModalState) String() string {
	switch s {
	case ModalCreate:
		return "create"
	case ModalEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Fields are the form values of the modal.
type Fields struct {
	Title       string
	Description string
	Published   bool
}

// Submission is what a valid save dispatches. Create is false for updates,
// in which case ID names the record.
type Submission struct {
	Create bool
	ID     int64
	Draft  tutorials.Draft
}

// Editor drives the add/edit modal. The zero value is closed.
type Editor struct {
	state        ModalState
	editingID    int64
	fields       Fields
	titleInvalid bool
}

// State returns the modal state.
func (e *Editor) State() ModalState { return e.state }

// IsOpen reports whether the modal is showing.
func (e *Editor) IsOpen() bool { return e.state != ModalClosed }

// EditingID returns the editing cursor. ok is false in create mode or when closed.
func (e *Editor) EditingID() (id int64, ok bool) {
	if e.state != ModalEdit {
		return 0, false
	}
	return e.editingID, true
}

// Fields returns the values the form was opened with.
func (e *Editor) Fields() Fields { return e.fields }

// TitleInvalid reports whether the last save was rejected for a blank title.
func (e *Editor) TitleInvalid() bool { return e.titleInvalid }

// OpenCreate opens the modal for a new record with reset fields.
func (e *Editor) OpenCreate() bool {
	if e.state != ModalClosed {
		return false
	}
	e.state = ModalCreate
	e.editingID = 0
	e.fields = Fields{}
	e.titleInvalid = false
	return true
}

// OpenEdit opens the modal for record id, populated from list. When id is
// not in list the modal still opens with reset fields.
func (e *Editor) OpenEdit(id int64, list []tutorials.Tutorial) bool {
	if e.state != ModalClosed {
		return false
	}
	e.state = ModalEdit
	e.editingID = id
	e.fields = Fields{}
	e.titleInvalid = false
	if t, ok := tutorials.Find(list, id); ok {
		e.fields = Fields{Title: t.Title, Description: t.Description, Published: t.Published}
	}
	return true
}

// Save validates current. A blank title marks the field invalid and keeps
// the modal open. A valid save closes the modal and returns the submission.
func (e *Editor) Save(current Fields) (Submission, bool) {
	if e.state == ModalClosed {
		return Submission{}, false
	}
	title := strings.TrimSpace(current.Title)
	if title == "" {
		e.titleInvalid = true
		return Submission{}, false
	}

	sub := Submission{
		Create: e.state == ModalCreate,
		Draft: tutorials.Draft{
			Title:       title,
			Description: strings.TrimSpace(current.Description),
			Published:   current.Published,
		},
	}
	if !sub.Create {
		sub.ID = e.editingID
	}
	e.Close()
	return sub, true
}

// Close dismisses the modal and clears the invalid marker.
func (e *Editor) Close() {
	e.state = ModalClosed
	e.titleInvalid = false
}
