// Package ui implements the stylus terminal interface on Bubble Tea.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/cache"
	"stylus/internal/config"
	"stylus/internal/crate"
	"stylus/internal/pager"
	"stylus/internal/prefs"
	"stylus/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewCollection View = iota
	ViewHistory
	ViewSellers
	ViewReleases
	ViewSuggestions
	ViewNotifications
)

var viewNames = map[View]string{
	ViewCollection:    "collection",
	ViewHistory:       "history",
	ViewSellers:       "sellers",
	ViewReleases:      "releases",
	ViewSuggestions:   "suggestions",
	ViewNotifications: "notifications",
}

// ViewFromName maps a stored view name to a View, defaulting to collection.
func ViewFromName(name string) View {
	for v, n := range viewNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return v
		}
	}
	return ViewCollection
}

// listState tracks cursor and load state for one list view.
type listState struct {
	pager    *pager.Controller
	selected int
	loading  bool
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *crate.Client
	Store     *state.Store
	Cache     *cache.Cache
	Config    config.Config
	ThemeName string
	StartView string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *crate.Client
	store     *state.Store
	cache     *cache.Cache
	config    config.Config
	prefsPath string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Paginated list views
	collection  listState
	albums      []crate.Album
	history     listState
	plays       []crate.PlayEntry
	releases    listState
	releaseRows []crate.Release

	// Unpaginated views
	suggestions         []crate.Suggestion
	suggestionsLoading  bool
	suggestionsSelected int
	sellersSelected     int
	notifSelected       int

	// Search and quick filter share one input widget
	searchInput textinput.Model
	searching   bool
	filtering   bool
	filterQuery string

	// Modal dialog, nil when none is open
	modal Modal

	// Help overlay
	showHelp bool

	// Transient action feedback
	notice    string
	noticeErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	newPager := func(sortBy string) *pager.Controller {
		return pager.New(pager.Options{
			PerPage:  opts.Config.PerPage,
			SortBy:   sortBy,
			Debounce: opts.Config.Debounce,
		})
	}

	input := textinput.New()
	input.CharLimit = 120
	input.Width = 40

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		cache:       opts.Cache,
		config:      opts.Config,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		currentView: ViewFromName(opts.StartView),
		collection:  listState{pager: newPager("artist")},
		history:     listState{pager: newPager("date")},
		releases:    listState{pager: newPager("releaseDate")},
		searchInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.config.PollInterval),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if cmd := m.fetchCurrentView(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		prev := m.snapshot
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampSelections()
		return m, m.refetchCompleted(prev)

	case albumsMsg:
		return m.handleAlbums(msg)

	case playsMsg:
		return m.handlePlays(msg)

	case releasesMsg:
		return m.handleReleases(msg)

	case suggestionsMsg:
		m.suggestionsLoading = false
		if msg.err != nil {
			m.setNotice(msg.err.Error(), true)
			return m, nil
		}
		m.suggestions = msg.items
		return m, nil

	case searchDebouncedMsg:
		return m.handleSearchDebounced(msg)

	case actionMsg:
		return m.handleAction(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.renderModalOverlay()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		return m.handleModalKey(msg)
	}

	if m.searching || m.filtering {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "tab":
		return m.setView((m.currentView + 1) % 6)

	case "shift+tab":
		return m.setView((m.currentView + 5) % 6)

	case "1":
		return m.setView(ViewCollection)
	case "2":
		return m.setView(ViewHistory)
	case "3":
		return m.setView(ViewSellers)
	case "4":
		return m.setView(ViewReleases)
	case "5":
		return m.setView(ViewSuggestions)
	case "6":
		return m.setView(ViewNotifications)

	case "/":
		if m.pagerFor(m.currentView) != nil {
			m.searching = true
			m.searchInput.SetValue(m.pagerFor(m.currentView).SearchInput())
			m.searchInput.Focus()
		}
		return m, nil

	case "f":
		m.filtering = true
		m.searchInput.SetValue(m.filterQuery)
		m.searchInput.Focus()
		return m, nil

	case "esc":
		if m.filterQuery != "" {
			m.filterQuery = ""
			return m, nil
		}
		if p := m.pagerFor(m.currentView); p != nil && p.Search() != "" {
			p.ClearSearch()
			return m, m.fetchCurrentView()
		}
		return m, nil

	case "]":
		return m.changePage(func(p *pager.Controller) bool { return p.NextPage() })
	case "[":
		return m.changePage(func(p *pager.Controller) bool { return p.PrevPage() })
	case "}":
		return m.changePage(func(p *pager.Controller) bool { return p.LastPage() })
	case "{":
		return m.changePage(func(p *pager.Controller) bool { return p.FirstPage() })

	case "j", "down":
		m.moveSelection(1)
		return m, nil
	case "k", "up":
		m.moveSelection(-1)
		return m, nil
	case "g", "home":
		m.setSelection(0)
		return m, nil
	case "G", "end":
		m.setSelection(m.rowCount(m.currentView) - 1)
		return m, nil

	case "r":
		return m, tea.Batch(m.fetchCurrentView(), fetchSnapshotCmd(m.store))
	}

	switch m.currentView {
	case ViewCollection:
		return m.handleCollectionKey(msg)
	case ViewHistory:
		return m.handleHistoryKey(msg)
	case ViewSellers:
		return m.handleSellersKey(msg)
	case ViewReleases:
		return m.handleReleasesKey(msg)
	case ViewSuggestions:
		return m.handleSuggestionsKey(msg)
	case ViewNotifications:
		return m.handleNotificationsKey(msg)
	}

	return m, nil
}

// setView switches views, persisting the choice and fetching fresh data.
func (m Model) setView(v View) (tea.Model, tea.Cmd) {
	if v == m.currentView {
		return m, nil
	}
	m.currentView = v
	m.filterQuery = ""
	m.savePrefs()
	return m, m.fetchCurrentView()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:       m.theme.Name,
		DefaultView: viewNames[m.currentView],
	})
}

// changePage applies a pagination move and refetches when it changed the page.
func (m Model) changePage(move func(*pager.Controller) bool) (tea.Model, tea.Cmd) {
	p := m.pagerFor(m.currentView)
	if p == nil || !move(p) {
		return m, nil
	}
	m.setSelection(0)
	return m, m.fetchCurrentView()
}

// pagerFor returns the pager for a paginated view, nil otherwise.
func (m *Model) pagerFor(v View) *pager.Controller {
	switch v {
	case ViewCollection:
		return m.collection.pager
	case ViewHistory:
		return m.history.pager
	case ViewReleases:
		return m.releases.pager
	}
	return nil
}

func (m *Model) rowCount(v View) int {
	switch v {
	case ViewCollection:
		return len(m.visibleAlbums())
	case ViewHistory:
		return len(m.visiblePlays())
	case ViewSellers:
		return len(m.snapshot.Sellers)
	case ViewReleases:
		return len(m.visibleReleases())
	case ViewSuggestions:
		return len(m.visibleSuggestions())
	case ViewNotifications:
		return len(m.snapshot.Notifications)
	}
	return 0
}

func (m *Model) selection(v View) *int {
	switch v {
	case ViewCollection:
		return &m.collection.selected
	case ViewHistory:
		return &m.history.selected
	case ViewSellers:
		return &m.sellersSelected
	case ViewReleases:
		return &m.releases.selected
	case ViewSuggestions:
		return &m.suggestionsSelected
	case ViewNotifications:
		return &m.notifSelected
	}
	return nil
}

func (m *Model) moveSelection(delta int) {
	sel := m.selection(m.currentView)
	if sel == nil {
		return
	}
	m.setSelectionValue(sel, *sel+delta)
}

func (m *Model) setSelection(index int) {
	sel := m.selection(m.currentView)
	if sel == nil {
		return
	}
	m.setSelectionValue(sel, index)
}

func (m *Model) setSelectionValue(sel *int, index int) {
	count := m.rowCount(m.currentView)
	if count == 0 {
		*sel = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	*sel = index
}

// clampSelections keeps cursors in range as polled data changes size.
func (m *Model) clampSelections() {
	for _, v := range []View{ViewSellers, ViewNotifications} {
		sel := m.selection(v)
		count := m.rowCount(v)
		if count == 0 {
			*sel = 0
		} else if *sel >= count {
			*sel = count - 1
		}
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.config.PollInterval)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewCollection:
		return m.renderCollection()
	case ViewHistory:
		return m.renderHistory()
	case ViewSellers:
		return m.renderSellers()
	case ViewReleases:
		return m.renderReleases()
	case ViewSuggestions:
		return m.renderSuggestions()
	case ViewNotifications:
		return m.renderNotifications()
	default:
		return ""
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type searchDebouncedMsg struct {
	view View
	gen  int
}

type actionMsg struct {
	notice string
	err    error
	reload bool
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
