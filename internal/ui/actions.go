package ui

import (
	"context"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tutordesk/internal/state"
	"github.com/five82/tutordesk/internal/tutorials"
)

// mutation names a write the UI can issue.
type mutation int

const (
	opCreate mutation = iota
	opUpdate
	opDelete
	opDeleteAll
)

func (op mutation) String() string {
	switch op {
	case opCreate:
		return "create"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	default:
		return "delete all"
	}
}

func (op mutation) successText() string {
	switch op {
	case opCreate:
		return "Tutorial created!"
	case opUpdate:
		return "Tutorial updated!"
	case opDelete:
		return "Tutorial deleted."
	default:
		return "All tutorials deleted."
	}
}

func (op mutation) failurePrefix() string {
	switch op {
	case opCreate:
		return "Create failed: "
	case opUpdate:
		return "Update failed: "
	case opDelete:
		return "Delete failed: "
	default:
		return "Delete all failed: "
	}
}

// Messages

// listLoadedMsg reports a finished list fetch. applied is false when a newer
// fetch had been issued before this one returned.
type listLoadedMsg struct {
	seq     uint64
	query   tutorials.Query
	err     error
	applied bool
}

type mutationMsg struct {
	op  mutation
	err error
}

// Commands

func fetchCmd(ctx context.Context, svc tutorials.Service, store *state.Store, seq uint64, q tutorials.Query) tea.Cmd {
	return func() tea.Msg {
		list, err := svc.List(ctx, q)
		if err != nil {
			return listLoadedMsg{seq: seq, query: q, err: err, applied: store.Fail(seq, err)}
		}
		return listLoadedMsg{seq: seq, query: q, applied: store.Apply(seq, q, list)}
	}
}

func mutateCmd(ctx context.Context, op mutation, do func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{op: op, err: do(ctx)}
	}
}

// currentQuery reads the search box and the published toggle.
func (m *Model) currentQuery() tutorials.Query {
	return tutorials.Query{
		Title:         strings.TrimSpace(m.search.Value()),
		PublishedOnly: m.publishedOnly,
	}
}

// reload issues a list fetch for the current controls.
func (m *Model) reload() tea.Cmd {
	if m.svc == nil || m.store == nil {
		return nil
	}
	q := m.currentQuery()
	seq := m.store.Begin(q)
	m.inflight++
	return tea.Batch(fetchCmd(m.ctx, m.svc, m.store, seq, q), m.spinner.Tick)
}

func (m *Model) handleListLoaded(msg listLoadedMsg) tea.Cmd {
	if m.inflight > 0 {
		m.inflight--
	}
	m.snapshot = m.store.Snapshot()
	m.syncSelection()
	m.refreshDetail()

	if msg.err == nil {
		return nil
	}
	if !msg.applied {
		log.Printf("list tutorials (%s) superseded: %v", msg.query.Label(), msg.err)
		return nil
	}
	log.Printf("list tutorials (%s) failed: %v", msg.query.Label(), msg.err)
	return m.pushToast(toastDanger, "Failed to load tutorials: "+msg.err.Error())
}

func (m *Model) handleMutation(msg mutationMsg) tea.Cmd {
	if m.inflight > 0 {
		m.inflight--
	}
	if msg.err != nil {
		log.Printf("%s tutorial failed: %v", msg.op, msg.err)
		return m.pushToast(toastDanger, msg.op.failurePrefix()+msg.err.Error())
	}
	return tea.Batch(m.pushToast(toastSuccess, msg.op.successText()), m.reload())
}

func (m *Model) mutate(op mutation, do func(context.Context, tutorials.Service) error) tea.Cmd {
	if m.svc == nil {
		return nil
	}
	svc := m.svc
	m.inflight++
	return tea.Batch(
		mutateCmd(m.ctx, op, func(ctx context.Context) error { return do(ctx, svc) }),
		m.spinner.Tick,
	)
}

// submit dispatches a validated form.
func (m *Model) submit(sub state.Submission) tea.Cmd {
	if sub.Create {
		return m.mutate(opCreate, func(ctx context.Context, svc tutorials.Service) error {
			return svc.Create(ctx, sub.Draft)
		})
	}
	return m.mutate(opUpdate, func(ctx context.Context, svc tutorials.Service) error {
		return svc.Update(ctx, sub.ID, sub.Draft)
	})
}

// togglePublished flips the published flag of id, keeping title and
// description as they are in the displayed list. displayed is the flag the row
// showed when the user acted.
func (m *Model) togglePublished(id int64, displayed bool) tea.Cmd {
	t, ok := tutorials.Find(m.snapshot.Tutorials, id)
	if !ok {
		return nil
	}
	draft := tutorials.Draft{Title: t.Title, Description: t.Description, Published: !displayed}
	return m.mutate(opUpdate, func(ctx context.Context, svc tutorials.Service) error {
		return svc.Update(ctx, id, draft)
	})
}

func (m *Model) deleteOne(id int64) tea.Cmd {
	return m.mutate(opDelete, func(ctx context.Context, svc tutorials.Service) error {
		return svc.Delete(ctx, id)
	})
}

func (m *Model) deleteAll() tea.Cmd {
	return m.mutate(opDeleteAll, func(ctx context.Context, svc tutorials.Service) error {
		return svc.DeleteAll(ctx)
	})
}
