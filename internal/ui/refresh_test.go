package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/tutordesk/internal/state"
	"github.com/five82/tutordesk/internal/tutorials"
)

// backgroundPoll mimics the app poller: it reuses the latest sequence
// number instead of issuing a new one.
func backgroundPoll(store *state.Store) (uint64, tutorials.Query) {
	return store.Latest()
}

func TestReload_SurvivesFailedBackgroundPoll(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "old"}}}
	m := newTestModel(t, svc)

	svc.list = []tutorials.Tutorial{{ID: 1, Title: "old"}, {ID: 2, Title: "new"}}
	m, cmd := press(t, m, "r")
	pollSeq, _ := backgroundPoll(m.store)
	m = settle(t, m, cmd)

	if len(m.snapshot.Tutorials) != 2 {
		t.Fatalf("displayed %d tutorials after reload, want 2", len(m.snapshot.Tutorials))
	}

	m.store.Fail(pollSeq, errors.New("timeout"))
	m = settle(t, m, fetchSnapshotCmd(m.store))

	if len(m.snapshot.Tutorials) != 2 {
		t.Fatalf("displayed %d tutorials after failed poll, want 2", len(m.snapshot.Tutorials))
	}
	if len(m.toasts) != 0 {
		t.Fatalf("poll failure should not toast: %q", toastTexts(m))
	}
}

func TestReload_WinsOverEarlierBackgroundPoll(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "old"}}}
	m := newTestModel(t, svc)

	pollSeq, q := backgroundPoll(m.store)
	svc.list = []tutorials.Tutorial{{ID: 1, Title: "old"}, {ID: 2, Title: "new"}}
	m, cmd := press(t, m, "r")

	if m.store.Apply(pollSeq, q, []tutorials.Tutorial{{ID: 1, Title: "old"}}) {
		t.Fatalf("poll begun before the reload was applied over it")
	}
	m = settle(t, m, cmd)
	if len(m.snapshot.Tutorials) != 2 {
		t.Fatalf("displayed %d tutorials, want 2", len(m.snapshot.Tutorials))
	}
}

func TestSnapshotMsg_IgnoredWhileFetchInFlight(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "a"}}}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "r")
	if m.inflight != 1 {
		t.Fatalf("inflight = %d, want 1", m.inflight)
	}
	polled := state.Snapshot{Loaded: true, Tutorials: []tutorials.Tutorial{{ID: 7}, {ID: 8}, {ID: 9}}}
	m, _ = update(t, m, snapshotMsg(polled))

	if len(m.snapshot.Tutorials) != 1 || m.snapshot.Tutorials[0].ID != 1 {
		t.Fatalf("snapshot = %#v, want the list shown before the poll", m.snapshot.Tutorials)
	}
}

func TestSnapshotMsg_AppliedWhenIdle(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}}
	m := newTestModel(t, svc)
	m, _ = press(t, m, "j")

	polled := state.Snapshot{Loaded: true, Tutorials: []tutorials.Tutorial{{ID: 2, Title: "b"}, {ID: 3, Title: "c"}}}
	m, _ = update(t, m, snapshotMsg(polled))

	if len(m.snapshot.Tutorials) != 2 || m.snapshot.Tutorials[1].ID != 3 {
		t.Fatalf("snapshot = %#v, want the polled list", m.snapshot.Tutorials)
	}
	if m.selectedRow != 0 || m.selectedID != 2 {
		t.Fatalf("selection = row %d id %d, want row 0 id 2", m.selectedRow, m.selectedID)
	}
}

func TestRefreshTick_PicksUpStoreWhenIdle(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "a"}}}
	m := newTestModel(t, svc)
	m.refreshEvery = time.Millisecond

	seq, q := backgroundPoll(m.store)
	if !m.store.Apply(seq, q, []tutorials.Tutorial{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}) {
		t.Fatalf("background result not applied to the store")
	}

	m, cmd := update(t, m, refreshTickMsg(time.Now()))
	var found bool
	for _, msg := range collect(cmd) {
		if snap, ok := msg.(snapshotMsg); ok {
			found = true
			m, _ = update(t, m, snap)
		}
	}
	if !found {
		t.Fatalf("idle refresh tick did not read the store")
	}
	if len(m.snapshot.Tutorials) != 2 {
		t.Fatalf("displayed %d tutorials, want 2", len(m.snapshot.Tutorials))
	}
}

func TestRefreshTick_SkipsStoreWhileFetchInFlight(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	m.refreshEvery = time.Millisecond

	m, _ = press(t, m, "r")
	m, cmd := update(t, m, refreshTickMsg(time.Now()))
	for _, msg := range collect(cmd) {
		if _, ok := msg.(snapshotMsg); ok {
			t.Fatalf("refresh tick read the store while a fetch was in flight")
		}
	}
}

func TestTogglePublished_UsesDisplayedList(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 3, Title: "Intro", Description: "Basics"}}}
	m := newTestModel(t, svc)

	// The store moves on before the UI has copied it.
	seq, q := backgroundPoll(m.store)
	m.store.Apply(seq, q, nil)

	m, cmd := press(t, m, "p")
	if cmd == nil {
		t.Fatalf("toggle on a displayed row returned no command")
	}
	m = settle(t, m, cmd)

	want := updateCall{id: 3, draft: tutorials.Draft{Title: "Intro", Description: "Basics", Published: true}}
	if len(svc.updates) != 1 || svc.updates[0] != want {
		t.Fatalf("updates = %#v, want [%#v]", svc.updates, want)
	}
}
