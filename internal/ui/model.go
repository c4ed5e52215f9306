package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutordesk/internal/prefs"
	"github.com/five82/tutordesk/internal/state"
	"github.com/five82/tutordesk/internal/tutorials"
)

const (
	defaultSearchDebounce = 300 * time.Millisecond
	defaultToastDuration  = 3500 * time.Millisecond
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Service tutorials.Service
	Store   *state.Store
	APIURL  string

	SearchDebounce  time.Duration
	ToastDuration   time.Duration
	RefreshInterval time.Duration

	ThemeName  string
	ShowDetail bool
	PrefsPath  string
	LogFile    string

	// Copy writes to the system clipboard; nil uses atotto/clipboard.
	Copy func(string) error
}

// Model is the root application state for Bubble Tea. It owns the modal and
// delete cursors; the list itself lives in the shared store.
type Model struct {
	ctx       context.Context
	svc       tutorials.Service
	store     *state.Store
	apiURL    string
	prefsPath string
	logFile   string
	copy      func(string) error

	debounce     time.Duration
	toastTTL     time.Duration
	refreshEvery time.Duration

	keys  keyMap
	help  help.Model
	theme Theme

	width  int
	height int
	ready  bool

	snapshot    state.Snapshot
	selectedRow int
	selectedID  int64
	inflight    int
	spinner     spinner.Model

	search        textinput.Model
	searching     bool
	searchSeq     int
	publishedOnly bool

	editor     state.Editor
	form       formState
	confirm    state.DeleteConfirm
	confirmAll bool

	toasts   []toast
	toastSeq int

	showDetail bool
	detail     viewport.Model
	detailID   int64
	markdown   *markdownCache

	showHelp bool
	showLogs bool
	logView  viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	debounce := opts.SearchDebounce
	if debounce <= 0 {
		debounce = defaultSearchDebounce
	}
	toastTTL := opts.ToastDuration
	if toastTTL <= 0 {
		toastTTL = defaultToastDuration
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:          ctx,
		svc:          opts.Service,
		store:        store,
		apiURL:       opts.APIURL,
		prefsPath:    prefsPath,
		logFile:      opts.LogFile,
		copy:         copyFn,
		debounce:     debounce,
		toastTTL:     toastTTL,
		refreshEvery: opts.RefreshInterval,
		keys:         DefaultKeyMap(),
		help:         newHelpModel(theme),
		theme:        theme,
		snapshot:     store.Snapshot(),
		spinner:      spin,
		search:       newSearchInput(),
		form:         newForm(),
		showDetail:   opts.ShowDetail,
		detail:       viewport.New(0, 0),
		markdown:     &markdownCache{},
		logView:      viewport.New(0, 0),
	}
}

// refreshTickMsg drives the optional background reload.
type refreshTickMsg time.Time

func refreshTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// snapshotMsg carries the store contents after a background refresh.
type snapshotMsg state.Snapshot

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// reloadMsg asks Update to issue a fetch for the current controls.
type reloadMsg struct{}

func requestReload() tea.Msg { return reloadMsg{} }

// Init implements tea.Model. It requests the initial unfiltered load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{requestReload}
	if m.refreshEvery > 0 {
		cmds = append(cmds, refreshTickCmd(m.refreshEvery))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case reloadMsg:
		cmd := m.reload()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resizeDetail()
		return m, nil

	case listLoadedMsg:
		cmd := m.handleListLoaded(msg)
		return m, cmd

	case mutationMsg:
		cmd := m.handleMutation(msg)
		return m, cmd

	case searchDebounceMsg:
		cmd := m.handleSearchDebounce(msg)
		return m, cmd

	case toastExpiredMsg:
		m.dismissToast(msg.id)
		return m, nil

	case refreshTickMsg:
		// The poller refreshes the store in the background; pick it up
		// unless a foreground fetch is still running.
		cmds := []tea.Cmd{refreshTickCmd(m.refreshEvery)}
		if m.inflight == 0 {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		if m.inflight == 0 {
			m.snapshot = state.Snapshot(msg)
			m.syncSelection()
			m.refreshDetail()
		}
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch {
	case m.showHelp:
		return m.renderHelp()
	case m.showLogs:
		return m.renderLogs()
	case m.editor.IsOpen():
		return m.renderForm()
	case m.confirmAll:
		return m.renderDeleteAll()
	}
	if _, pending := m.confirm.Pending(); pending {
		return m.renderConfirm()
	}

	return m.renderMain()
}

// handleKey routes a key press to whichever layer is on top: overlays,
// then modals and prompts, then the search box, then the list.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return nil
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}
	if m.editor.IsOpen() {
		return m.handleFormKey(msg)
	}
	if m.confirmAll {
		return m.handleDeleteAllKey(msg)
	}
	if _, pending := m.confirm.Pending(); pending {
		return m.handleConfirmKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(m.snapshot.Tutorials))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(m.snapshot.Tutorials))
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.tableHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.tableHeight())

	case key.Matches(msg, m.keys.Add):
		return m.openCreate()

	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			return m.openEdit(t.ID)
		}

	case key.Matches(msg, m.keys.TogglePublic):
		if t, ok := m.selected(); ok {
			return m.togglePublished(t.ID, t.Published)
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.requestDelete(t.ID)
		}

	case key.Matches(msg, m.keys.DeleteAll):
		m.requestDeleteAll()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m.search.Focus()

	case key.Matches(msg, m.keys.Published):
		return m.togglePublishedFilter()

	case key.Matches(msg, m.keys.Reload):
		return m.reload()

	case key.Matches(msg, m.keys.Detail):
		m.toggleDetail()
		m.savePrefs()

	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedTitle()

	case key.Matches(msg, m.keys.Escape):
		if m.showDetail {
			m.toggleDetail()
			m.savePrefs()
		}
	}
	return nil
}

func (m *Model) handleLogsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Quit):
		m.showLogs = false
		return nil
	case key.Matches(msg, m.keys.Reload):
		return m.openLogs()
	}
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return cmd
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.help = newHelpModel(m.theme)
	m.help.Width = m.width
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.detailID = 0
	m.refreshDetail()
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, ShowDetail: m.showDetail}); err != nil {
		log.Printf("save prefs failed: %v", err)
	}
}

func (m *Model) copySelectedTitle() tea.Cmd {
	t, ok := m.selected()
	if !ok {
		return nil
	}
	if err := m.copy(t.Title); err != nil {
		log.Printf("copy to clipboard failed: %v", err)
		return m.pushToast(toastWarning, "Copy failed: "+err.Error())
	}
	return m.pushToast(toastInfo, fmt.Sprintf("Copied title of #%d", t.ID))
}

// contentHeight is the height left for the list and detail panes.
func (m Model) contentHeight() int {
	return max(m.height-3-len(m.toasts), 3) // header, search bar, command bar
}

// renderMain renders the full screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")

	height := m.contentHeight()
	if m.showDetail {
		detailWidth := m.detailWidth()
		tableWidth := m.width - detailWidth
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderTable(tableWidth, height, true),
			m.renderDetail(detailWidth, height),
		))
	} else {
		b.WriteString(m.renderTable(m.width, height, true))
	}
	b.WriteString("\n")

	if toasts := m.renderToasts(); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
