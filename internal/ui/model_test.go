package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/tutordesk/internal/prefs"
	"github.com/five82/tutordesk/internal/state"
	"github.com/five82/tutordesk/internal/tutorials"
)

type updateCall struct {
	id    int64
	draft tutorials.Draft
}

// fakeService records every call and serves list from memory.
type fakeService struct {
	mu        sync.Mutex
	list      []tutorials.Tutorial
	listErr   error
	writeErr  error
	queries   []tutorials.Query
	created   []tutorials.Draft
	updates   []updateCall
	deleted   []int64
	deleteAll int
}

func (f *fakeService) List(_ context.Context, q tutorials.Query) ([]tutorials.Tutorial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []tutorials.Tutorial{}
	for _, t := range f.list {
		switch {
		case q.PublishedOnly && !t.Published:
			continue
		case !q.PublishedOnly && q.Title != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(q.Title)):
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeService) Create(_ context.Context, d tutorials.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, d)
	return f.writeErr
}

func (f *fakeService) Update(_ context.Context, id int64, d tutorials.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{id: id, draft: d})
	return f.writeErr
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.writeErr
}

func (f *fakeService) DeleteAll(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteAll++
	return f.writeErr
}

func (f *fakeService) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func newTestModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	m := New(Options{
		Service:        svc,
		Store:          &state.Store{},
		APIURL:         "http://api.test",
		SearchDebounce: time.Millisecond,
		ToastDuration:  time.Millisecond,
		PrefsPath:      filepath.Join(t.TempDir(), "prefs.toml"),
		Copy:           func(string) error { return nil },
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return settle(t, m, m.Init())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys one by one and returns the command of the last one.
// Commands of earlier keys (cursor blinks, focus) are discarded.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(t, m, keyMsg(k))
	}
	return m, cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle runs cmd and feeds the resulting messages back through Update
// until no work is left. Spinner frames and toast expiry are skipped so the
// toasts stay visible to assertions.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := collect(cmd)
	for i := 0; len(queue) > 0; i++ {
		if i > 100 {
			t.Fatalf("settle did not converge")
		}
		msg := queue[0]
		queue = queue[1:]
		switch msg.(type) {
		case spinner.TickMsg, toastExpiredMsg, refreshTickMsg:
			continue
		}
		var next tea.Cmd
		m, next = update(t, m, msg)
		queue = append(queue, collect(next)...)
	}
	return m
}

func toastTexts(m Model) []string {
	out := make([]string, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = t.text
	}
	return out
}

func hasToast(m Model, text string) bool {
	for _, got := range toastTexts(m) {
		if got == text {
			return true
		}
	}
	return false
}

func TestInit_LoadsFullList(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{
		{ID: 1, Title: "Go basics", Published: true},
		{ID: 2, Title: "Channels"},
	}}
	m := newTestModel(t, svc)

	if len(svc.queries) != 1 || svc.queries[0] != (tutorials.Query{}) {
		t.Fatalf("queries = %#v, want one unfiltered fetch", svc.queries)
	}
	if len(m.snapshot.Tutorials) != 2 {
		t.Fatalf("snapshot has %d tutorials, want 2", len(m.snapshot.Tutorials))
	}
	out := m.View()
	for _, want := range []string{"Go basics", "Channels", "Published", "Draft", "Total: 2", "Published: 1", "Drafts: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	if m.inflight != 0 {
		t.Fatalf("inflight = %d, want 0", m.inflight)
	}
}

func TestView_EmptyState(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	if !strings.Contains(m.View(), "No tutorials found.") {
		t.Fatalf("empty list should render placeholder:\n%s", m.View())
	}
}

func TestView_StripsControlSequencesFromUserText(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{
		{ID: 1, Title: "\x1b[31mred\x1b[0m title", Description: "line\x07bell"},
	}}
	m := newTestModel(t, svc)
	out := m.View()
	if strings.Contains(out, "\x1b") || strings.Contains(out, "\x07") {
		t.Fatalf("view leaked control characters: %q", out)
	}
	if !strings.Contains(out, "red title") {
		t.Fatalf("view missing sanitized title:\n%s", out)
	}
}

func TestLoadFailure_KeepsListAndToasts(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "Keep me"}}}
	m := newTestModel(t, svc)

	svc.listErr = errors.New("boom")
	m, cmd := press(t, m, "r")
	m = settle(t, m, cmd)

	if len(m.snapshot.Tutorials) != 1 || m.snapshot.Tutorials[0].Title != "Keep me" {
		t.Fatalf("list after failed fetch = %#v, want previous list", m.snapshot.Tutorials)
	}
	if !hasToast(m, "Failed to load tutorials: boom") {
		t.Fatalf("toasts = %q, want load failure", toastTexts(m))
	}
	if !strings.Contains(m.View(), "Keep me") {
		t.Fatalf("previous rendering should stay visible")
	}
}

func TestSave_BlankTitleIssuesNoRequest(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "a", " ", " ", " ")
	m, cmd := press(t, m, "ctrl+s")
	_ = cmd // refocuses the title only

	if len(svc.created) != 0 || len(svc.updates) != 0 {
		t.Fatalf("blank title sent a request: created=%v updates=%v", svc.created, svc.updates)
	}
	if !m.editor.IsOpen() || !m.editor.TitleInvalid() {
		t.Fatalf("modal open=%v invalid=%v, want open and invalid", m.editor.IsOpen(), m.editor.TitleInvalid())
	}
	if !strings.Contains(m.View(), "Title is required.") {
		t.Fatalf("form should show the invalid marker:\n%s", m.View())
	}

	m, _ = press(t, m, "esc")
	if m.editor.IsOpen() || m.editor.TitleInvalid() {
		t.Fatalf("esc should close the modal and clear the marker")
	}
}

func TestCreate_TrimsAndReloads(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "a")
	if !strings.Contains(m.View(), "Add Tutorial") {
		t.Fatalf("create modal title missing:\n%s", m.View())
	}
	m, _ = press(t, m, " ", "N", "e", "w", " ", "tab", "d", "tab", " ")
	m, cmd := press(t, m, "ctrl+s")
	m = settle(t, m, cmd)

	want := tutorials.Draft{Title: "New", Description: "d", Published: true}
	if len(svc.created) != 1 || svc.created[0] != want {
		t.Fatalf("created = %#v, want [%#v]", svc.created, want)
	}
	if !hasToast(m, "Tutorial created!") {
		t.Fatalf("toasts = %q, want created", toastTexts(m))
	}
	if svc.queryCount() != 2 {
		t.Fatalf("list fetched %d times, want reload after create", svc.queryCount())
	}
	if m.editor.IsOpen() {
		t.Fatalf("modal should close after a valid save")
	}
}

func TestEdit_SaveUnchangedSendsSameFields(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 5, Title: "T", Description: "D", Published: true}}}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "e")
	if !strings.Contains(m.View(), "Edit Tutorial") {
		t.Fatalf("edit modal title missing:\n%s", m.View())
	}
	m, cmd := press(t, m, "ctrl+s")
	m = settle(t, m, cmd)

	want := updateCall{id: 5, draft: tutorials.Draft{Title: "T", Description: "D", Published: true}}
	if len(svc.updates) != 1 || svc.updates[0] != want {
		t.Fatalf("updates = %#v, want [%#v]", svc.updates, want)
	}
	if !hasToast(m, "Tutorial updated!") {
		t.Fatalf("toasts = %q, want updated", toastTexts(m))
	}
}

func TestTogglePublished_FlipsFlagOnly(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 3, Title: "Intro", Description: "Basics", Published: false}}}
	m := newTestModel(t, svc)

	m, cmd := press(t, m, "p")
	m = settle(t, m, cmd)

	want := updateCall{id: 3, draft: tutorials.Draft{Title: "Intro", Description: "Basics", Published: true}}
	if len(svc.updates) != 1 || svc.updates[0] != want {
		t.Fatalf("updates = %#v, want [%#v]", svc.updates, want)
	}
}

func TestTogglePublished_MissingRecordIsNoop(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)

	if cmd := m.togglePublished(42, false); cmd != nil {
		t.Fatalf("togglePublished on missing id returned a command")
	}
	if len(svc.updates) != 0 {
		t.Fatalf("updates = %#v, want none", svc.updates)
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 7, Title: "Doomed"}}}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "d")
	if !strings.Contains(m.View(), "Delete Tutorial") {
		t.Fatalf("confirm dialog missing:\n%s", m.View())
	}
	m, _ = press(t, m, "n")
	if _, pending := m.confirm.Pending(); pending || len(svc.deleted) != 0 {
		t.Fatalf("cancel should clear the pending delete without deleting")
	}

	m, _ = press(t, m, "d")
	m, cmd := press(t, m, "y")
	m = settle(t, m, cmd)

	if len(svc.deleted) != 1 || svc.deleted[0] != 7 {
		t.Fatalf("deleted = %v, want [7]", svc.deleted)
	}
	if !hasToast(m, "Tutorial deleted.") {
		t.Fatalf("toasts = %q, want deleted", toastTexts(m))
	}
}

func TestDeleteAll(t *testing.T) {
	t.Run("empty list is a no-op", func(t *testing.T) {
		svc := &fakeService{}
		m := newTestModel(t, svc)
		m, _ = press(t, m, "D")
		if m.confirmAll {
			t.Fatalf("prompt opened for an empty list")
		}
		m, _ = press(t, m, "y")
		if svc.deleteAll != 0 {
			t.Fatalf("deleteAll = %d, want 0", svc.deleteAll)
		}
	})

	t.Run("declined", func(t *testing.T) {
		svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "a"}}}
		m := newTestModel(t, svc)
		m, _ = press(t, m, "D", "n")
		if m.confirmAll || svc.deleteAll != 0 {
			t.Fatalf("declining should close the prompt without deleting")
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}}
		m := newTestModel(t, svc)
		m, _ = press(t, m, "D")
		if !strings.Contains(m.View(), deleteAllPrompt) {
			t.Fatalf("prompt text missing:\n%s", m.View())
		}
		m, cmd := press(t, m, "y")
		m = settle(t, m, cmd)
		if svc.deleteAll != 1 {
			t.Fatalf("deleteAll = %d, want 1", svc.deleteAll)
		}
		if !hasToast(m, "All tutorials deleted.") {
			t.Fatalf("toasts = %q, want all deleted", toastTexts(m))
		}
	})
}

func TestWriteFailure_ToastsWithoutReload(t *testing.T) {
	svc := &fakeService{writeErr: &tutorials.RequestError{Status: 400, Message: "title taken"}}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "a", "x")
	m, cmd := press(t, m, "enter")
	m = settle(t, m, cmd)

	if !hasToast(m, "Create failed: title taken") {
		t.Fatalf("toasts = %q, want create failure", toastTexts(m))
	}
	if svc.queryCount() != 1 {
		t.Fatalf("list fetched %d times, want no reload after failure", svc.queryCount())
	}
}

func TestSearch_DebouncesToOneFetch(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "Go"}, {ID: 2, Title: "Rust"}}}
	m := newTestModel(t, svc)
	m.search.Cursor.SetMode(cursor.CursorStatic)

	m, _ = press(t, m, "/")
	var ticks []tea.Cmd
	for _, k := range []string{"g", "o"} {
		var cmd tea.Cmd
		m, cmd = press(t, m, k)
		if cmd == nil {
			t.Fatalf("edit %q scheduled no debounce", k)
		}
		ticks = append(ticks, cmd)
	}

	// Both timers fire; only the one from the last keystroke may fetch.
	m = settle(t, m, tea.Batch(ticks...))

	if svc.queryCount() != 2 {
		t.Fatalf("list fetched %d times, want initial load plus one search", svc.queryCount())
	}
	if got := svc.queries[1]; got.Title != "go" || got.PublishedOnly {
		t.Fatalf("search query = %#v, want title go", got)
	}
	if len(m.snapshot.Tutorials) != 1 || m.snapshot.Tutorials[0].Title != "Go" {
		t.Fatalf("snapshot = %#v, want only Go", m.snapshot.Tutorials)
	}
}

func TestPublishedToggle_ReloadsImmediately(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "Go", Published: true}, {ID: 2, Title: "Rust"}}}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "/", "r", "enter")
	m, cmd := press(t, m, "P")
	m = settle(t, m, cmd)

	last := svc.queries[len(svc.queries)-1]
	if !last.PublishedOnly || last.Title != "r" {
		t.Fatalf("query = %#v, want published-only carrying the title", last)
	}
	if last.URL().Path != "/api/tutorials/published" {
		t.Fatalf("published-only should win over title, got %s", last.URL())
	}
	if len(m.snapshot.Tutorials) != 1 || m.snapshot.Tutorials[0].ID != 1 {
		t.Fatalf("snapshot = %#v, want published only", m.snapshot.Tutorials)
	}
}

func TestStaleListResponseIsDropped(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 1, Title: "Go", Published: true}, {ID: 2, Title: "Rust"}}}
	m := newTestModel(t, svc)

	m, first := press(t, m, "P")  // published only
	m, second := press(t, m, "P") // back to all

	m = settle(t, m, second)
	if len(m.snapshot.Tutorials) != 2 {
		t.Fatalf("newest response not applied: %#v", m.snapshot.Tutorials)
	}

	svc.listErr = errors.New("late failure")
	m = settle(t, m, first)
	if len(m.snapshot.Tutorials) != 2 {
		t.Fatalf("stale response overwrote the list: %#v", m.snapshot.Tutorials)
	}
	if len(m.toasts) != 0 {
		t.Fatalf("stale failure should not toast: %q", toastTexts(m))
	}
}

func TestCopyTitle(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 4, Title: "Clip me"}}}
	m := newTestModel(t, svc)

	var copied string
	m.copy = func(s string) error { copied = s; return nil }
	m, _ = press(t, m, "y")
	if copied != "Clip me" {
		t.Fatalf("copied = %q, want %q", copied, "Clip me")
	}
	if !hasToast(m, "Copied title of #4") {
		t.Fatalf("toasts = %q, want copy confirmation", toastTexts(m))
	}
}

func TestCycleThemePersistsPrefs(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	m, _ = press(t, m, "T")
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath); got.Theme != "Slate" {
		t.Fatalf("saved theme = %q, want Slate", got.Theme)
	}
}

func TestDetailPaneShowsDescription(t *testing.T) {
	svc := &fakeService{list: []tutorials.Tutorial{{ID: 8, Title: "Generics", Description: "Type parameters"}}}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "enter")
	if !m.showDetail {
		t.Fatalf("enter should open the detail pane")
	}
	out := m.View()
	if !strings.Contains(out, "Details") || !strings.Contains(out, "parameters") {
		t.Fatalf("detail pane missing content:\n%s", out)
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	m, _ = press(t, m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay missing")
	}
	m, cmd := press(t, m, "a")
	if m.showHelp || m.editor.IsOpen() || cmd != nil {
		t.Fatalf("key should only close help")
	}
}
