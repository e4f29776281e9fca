package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filmlog/internal/config"
	"filmlog/internal/eventbus"
	"filmlog/internal/logging"
	"filmlog/internal/logic"
	"filmlog/internal/ui/handlers"
	"filmlog/internal/ui/input"
	"filmlog/internal/ui/lists"
	inputtypes "filmlog/internal/ui/input/types"
	uilogic "filmlog/internal/ui/logic"
	"filmlog/internal/ui/services/drawer"
	"filmlog/internal/ui/services/events"
	"filmlog/internal/ui/services/filterform"
	"filmlog/internal/ui/services/navigation"
	"filmlog/internal/ui/services/query"
	"filmlog/internal/ui/services/search"
	"filmlog/internal/ui/services/sorting"
	"filmlog/internal/ui/state"
	"filmlog/internal/ui/views"
)

// statusTTL is how long a status message stays on screen
const statusTTL = 3 * time.Second

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	uiBus  *events.Bus
	config *config.Config

	tabs   []ListView
	active int

	width            int
	height           int
	showHelp         bool
	helpScrollOffset int
	detail           string
	sortIndex        int
	statusMessage    string
	statusIsError    bool
	inPagerMode      bool

	searchState    search.State
	searchSelected int

	// Handlers
	inputHandler *input.Handler
	events       *handlers.EventHandler
	rows         *query.Service
	navigator    *navigation.Service
	sorting      *sorting.Service
	form         *filterform.Form
	document     *document
	drawer       *drawer.Service
	search       *search.Service
	renderer     *views.Renderer
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over loaded content. searchSvc backs the
// search modal.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, content *logic.Content, searchSvc *search.Service) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	uiBus := events.NewBus()

	m := &Model{
		ctx:          ctx,
		bus:          bus,
		uiBus:        uiBus,
		config:       cfg,
		tabs:         NewLists(content, bus, cfg.Lists.PageSize),
		inputHandler: input.New(),
		rows:         query.NewService(uiBus),
		navigator:    navigation.NewService(uiBus),
		form:         filterform.New(),
		search:       searchSvc,
		renderer:     views.NewRenderer(),
		pager:        NewPager(),
	}
	if searchSvc != nil {
		m.searchState = searchSvc.State()
	}

	m.events = handlers.NewEventHandler(searchSvc, func(name string) (string, bool) {
		if t := m.tabByName(name); t != nil {
			return t.Title(), true
		}
		return "", false
	})
	m.navigator.SetQueryFunctions(m.rows.GetMaxIndex, m.rows.GroupStarts)
	m.sorting = sorting.NewService(uiBus, func(list string, value uilogic.SortValue) {
		if t := m.tabByName(list); t != nil {
			t.Dispatch(state.SortAction{Value: value})
		}
	})
	for _, t := range m.tabs {
		m.sorting.Register(t.Name(), t.SortOptions(), t.Sort())
	}

	m.document = newDocument(m.form)
	m.drawer = drawer.NewService(uiBus, m.document, func(action state.Action) {
		m.activeTab().Dispatch(action)
	})
	uiBus.Subscribe(events.TypeOf(drawer.DrawerClosedEvent{}), func(e interface{}) {
		m.onDrawerClosed(e.(drawer.DrawerClosedEvent))
	})

	m.refreshRows()
	return m
}

// SetProgram sets the program reference used by the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command. The search index loads on the first
// search rather than here.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.navigator.SetViewportHeight(msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.showHelp {
			return m, m.handleHelpKey(msg)
		}
		if m.detail != "" {
			return m, m.handleDetailKey(msg)
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	t := m.activeTab()
	vs := views.ViewState{
		Width:            m.width,
		Height:           m.height,
		ActiveTab:        m.active,
		Rows:             m.rows.Rows(),
		Cursor:           m.navigator.GetCursor(),
		ViewportOffset:   m.navigator.GetViewportOffset(),
		ViewportHeight:   m.navigator.GetViewportHeight(),
		Highlight:        t.Highlight(),
		Summary:          t.Summary(),
		EmptyMessage:     t.EmptyMessage(),
		FilterCount:      t.ActiveFilterCount(),
		SortLabel:        t.SortLabel(),
		StatusMessage:    m.statusMessage,
		StatusIsError:    m.statusIsError,
		Detail:           m.detail,
		ShowHelp:         m.showHelp,
		HelpScrollOffset: m.helpScrollOffset,
	}
	for _, tab := range m.tabs {
		vs.Tabs = append(vs.Tabs, tab.Title())
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSort:
		vs.SortMode = true
		for _, o := range t.SortOptions() {
			vs.SortOptions = append(vs.SortOptions, o.Label)
		}
		vs.SortIndex = max(0, min(m.sortIndex, len(vs.SortOptions)-1))
	case inputtypes.ModeSearch:
		vs.Search = &views.SearchView{
			Input:    m.inputHandler.TextInput().View(),
			State:    m.searchState,
			Selected: m.searchSelected,
			PageSize: m.searchPageSize(),
		}
	}

	if m.drawer.IsOpen() {
		dv := &views.DrawerView{
			Title:        "Filter " + t.Title(),
			Form:         m.form,
			PendingCount: t.PendingCount(),
		}
		if m.focusedControl() == inputtypes.ControlText {
			dv.TextInput = m.inputHandler.TextInput().View()
		}
		vs.Drawer = dv
	}
	return vs
}

func (m *Model) inputContext() *input.ModelContext {
	t := m.activeTab()
	return &input.ModelContext{
		Rows:        m.rows,
		Navigator:   m.navigator,
		Sort:        string(t.Sort()),
		Sorts:       m.sorting.Values(t.Name()),
		More:        t.HasMore(),
		Control:     m.focusedControl(),
		CanLoadMore: m.searchState.CanLoadMore(),
	}
}

func (m *Model) activeTab() ListView {
	return m.tabs[m.active]
}

func (m *Model) tabByName(name string) ListView {
	for _, t := range m.tabs {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// focusedControl names the kind of the focused drawer control
func (m *Model) focusedControl() string {
	if !m.drawer.IsOpen() {
		return ""
	}
	field, ok := m.form.Focused()
	if !ok {
		return ""
	}
	return field.KindName()
}

// refreshRows rebuilds the rows of the active list, keeping the cursor on
// screen
func (m *Model) refreshRows() {
	t := m.activeTab()
	m.rows.SetRows(t.Name(), t.Rows())
	m.navigator.Clamp()
}

// syncForm reloads the drawer fields from the pending filters
func (m *Model) syncForm() {
	m.form.SetFields(m.activeTab().Fields())
}

// syncText loads a focused text control's value into the text input
func (m *Model) syncText() {
	field, ok := m.form.Focused()
	if !ok || field.Kind != lists.ControlText {
		m.inputHandler.SetText("")
		return
	}
	value := ""
	if field.Value != nil {
		value = field.Value.String()
	}
	m.inputHandler.SetText(value)
}

func (m *Model) onDrawerClosed(e drawer.DrawerClosedEvent) {
	if m.inputHandler.CurrentMode() == inputtypes.ModeDrawer {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal)
	}
	if e.Applied {
		m.navigator.Reset()
	}
	m.refreshRows()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.SwitchListAction:
		n := len(m.tabs)
		m.active = ((m.active+a.Delta)%n + n) % n
		m.refreshRows()
		m.navigator.Reset()

	case inputtypes.ShowMoreAction:
		m.activeTab().Dispatch(state.ShowMoreAction{})
		m.refreshRows()

	case inputtypes.OpenItemAction:
		row, ok := m.rows.RowAt(m.navigator.GetCursor())
		if !ok || row.Kind != query.RowItem {
			return nil
		}
		m.detail = m.activeTab().Detail(row.Index)

	case inputtypes.ToggleDrawerAction:
		wasOpen := m.drawer.IsOpen()
		m.drawer.Toggle()
		if !wasOpen && !m.drawer.IsOpen() {
			// no drawer on this screen
			m.inputHandler.ChangeMode(inputtypes.ModeNormal)
		}
		if m.drawer.IsOpen() {
			m.syncForm()
			return m.document.paintCmd()
		}

	case inputtypes.CloseDrawerAction:
		m.drawer.HandleKey("esc")

	case inputtypes.ViewResultsAction:
		m.drawer.ViewResults()

	case inputtypes.ClearFiltersAction:
		m.drawer.Clear()
		m.syncForm()
		m.syncText()

	case inputtypes.FocusControlAction:
		m.form.Move(a.Delta)
		m.syncText()

	case inputtypes.AdjustControlAction:
		if change, ok := m.form.Adjust(a.Delta); ok {
			m.activeTab().Dispatch(change)
		}
		m.syncForm()

	case inputtypes.ToggleOptionAction:
		if change, ok := m.form.Toggle(); ok {
			m.activeTab().Dispatch(change)
		}
		m.syncForm()

	case inputtypes.EditTextAction:
		if change, ok := m.form.Edit(a.Text); ok {
			m.activeTab().Dispatch(change)
		}
		m.syncForm()

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch && m.search != nil {
			m.search.SetQuery(a.Text)
			m.searchSelected = 0
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch && m.search != nil {
			m.search.Clear()
			m.searchState = m.search.State()
			m.searchSelected = 0
		}

	case inputtypes.SearchSelectAction:
		if n := len(m.searchState.Results); n > 0 {
			m.searchSelected = max(0, min(m.searchSelected+a.Delta, n-1))
		}

	case inputtypes.LoadMoreAction:
		return m.loadMore()

	case inputtypes.OpenResultAction:
		results := m.searchState.Results
		if m.searchSelected < len(results) {
			m.detail = describeDocument(results[m.searchSelected])
		}

	case inputtypes.SortByAction:
		t := m.activeTab()
		if m.sorting.SetSort(t.Name(), uilogic.SortValue(a.Value)) {
			m.refreshRows()
			m.navigator.Reset()
		}

	case inputtypes.UpdateSortIndexAction:
		m.sortIndex = a.Index

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
		m.helpScrollOffset = 0

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "?", "q":
		m.showHelp = false
		m.helpScrollOffset = 0
	case "j", "down":
		m.helpScrollOffset++
	case "k", "up":
		m.helpScrollOffset = max(m.helpScrollOffset-1, 0)
	case "P":
		return m.openPager(m.renderer.HelpText())
	}
	return nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		m.detail = ""
	case "P":
		return m.openPager(m.detail)
	}
	return nil
}

// handleMouse closes the drawer on a click outside of it
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.drawer.IsOpen() {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.renderer.DrawerBox(m.viewState()).Contains(msg.X, msg.Y) {
		return nil
	}
	m.drawer.BackdropClick()
	return nil
}

// openPager returns a command that shows content using ov pager
func (m *Model) openPager(content string) tea.Cmd {
	if !m.pager.Available() {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

func (m *Model) loadMore() tea.Cmd {
	if m.search == nil {
		return nil
	}
	return func() tea.Msg {
		return loadMoreMsg{err: m.search.LoadMore(m.ctx)}
	}
}

func (m *Model) searchPageSize() int {
	if m.search == nil {
		return search.DefaultPageSize
	}
	return m.search.PageSize()
}

func (m *Model) quit() tea.Cmd {
	if m.search != nil {
		if err := m.search.Destroy(m.ctx); err != nil {
			log := logging.Logger()
			log.Warn().Err(err).Msg("failed to release search index")
		}
	}
	return tea.Quit
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg handles all non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case paintedMsg:
		m.document.painted()
		m.syncText()
		return m, nil

	case loadMoreMsg:
		if msg.err != nil && !search.IsAborted(msg.err) {
			log := logging.Logger()
			log.Debug().Err(msg.err).Msg("load more failed")
		}
		if m.search != nil {
			m.searchState = m.search.State()
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log only, the popup stays open
			log := logging.Logger()
			log.Warn().Err(msg.err).Msg("pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	default:
		return m, nil
	}
}

// handleEvent applies a domain event forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	out := m.events.HandleEvent(event)
	if out.SearchState != nil {
		m.searchState = *out.SearchState
		if n := len(m.searchState.Results); m.searchSelected >= n {
			m.searchSelected = max(n-1, 0)
		}
	}
	if out.Status != "" {
		return m.setStatus(out.Status, out.StatusIsError)
	}
	return nil
}

// Run starts the browser and blocks until it exits. Domain events published
// on bus are forwarded to the program.
func Run(ctx context.Context, bus *eventbus.Bus, cfg *config.Config, content *logic.Content, searchSvc *search.Service) error {
	model := NewModel(ctx, bus, cfg, content, searchSvc)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// UI is behind; the next state event carries the latest state
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStateChanged,
		eventbus.EventSearchUnavailable,
		eventbus.EventFiltersApplied,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case e := <-eventChan:
				p.Send(EventMsg{Event: e})
			case <-done:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
