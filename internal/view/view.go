// Package view maps the tutorial list to a typed view model that both the
// terminal UI and the markup exporter render from.
package view

import (
	"github.com/five82/tutordesk/internal/state"
	"github.com/five82/tutordesk/internal/tutorials"
)

// ActionKind names a per-row control.
type ActionKind int

const (
	ActionEdit ActionKind = iota
	ActionTogglePublished
	ActionDelete
)

// Action is one control rendered in a row.
type Action struct {
	Kind    ActionKind
	Label   string
	Icon    string
	Variant string
}

// Badge is the published/draft marker of a row.
type Badge struct {
	Label string
	Class string
}

// Row is the view model of one tutorial.
type Row struct {
	ID          int64
	Title       string
	Description string
	Published   bool
	Badge       Badge
	Actions     []Action
}

// Page is everything the table area shows for one list.
type Page struct {
	Rows  []Row
	Stats state.Stats
}

// Empty reports whether the empty-state placeholder replaces the table.
func (p Page) Empty() bool { return len(p.Rows) == 0 }

// Build returns the page for list, in list order.
func Build(list []tutorials.Tutorial) Page {
	return Page{Rows: Rows(list), Stats: state.ComputeStats(list)}
}

// Rows maps each tutorial to its row.
func Rows(list []tutorials.Tutorial) []Row {
	if len(list) == 0 {
		return nil
	}
	rows := make([]Row, 0, len(list))
	for _, t := range list {
		rows = append(rows, NewRow(t))
	}
	return rows
}

// NewRow builds the row for a single tutorial.
func NewRow(t tutorials.Tutorial) Row {
	badge := Badge{Label: "Draft", Class: "badge-draft"}
	toggle := Action{Kind: ActionTogglePublished, Label: "Publish", Icon: "eye", Variant: "success"}
	if t.Published {
		badge = Badge{Label: "Published", Class: "badge-published"}
		toggle = Action{Kind: ActionTogglePublished, Label: "Unpublish", Icon: "eye-slash", Variant: "warning"}
	}
	return Row{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Published:   t.Published,
		Badge:       badge,
		Actions: []Action{
			{Kind: ActionEdit, Label: "Edit", Icon: "pencil", Variant: "primary"},
			toggle,
			{Kind: ActionDelete, Label: "Delete", Icon: "trash", Variant: "danger"},
		},
	}
}

func (k ActionKind) String() string {
	switch k {
	case ActionEdit:
		return "edit"
	case ActionTogglePublished:
		return "toggle-published"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}
