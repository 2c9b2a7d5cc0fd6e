package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"meetlottery/internal/config"
	"meetlottery/internal/domain"
	"meetlottery/internal/eventbus"
	"meetlottery/internal/lottery"
	"meetlottery/internal/roster"
	"meetlottery/internal/scrape"
	"meetlottery/internal/ui/input"
	inputtypes "meetlottery/internal/ui/input/types"
	"meetlottery/internal/ui/views"
)

// statusTimeout is how long a status message stays visible
const statusTimeout = 4 * time.Second

// errorMessages maps stable error ids to the text shown under the add input
var errorMessages = map[string]string{
	domain.ErrorIDEmptyInput:      "Enter a name to add.",
	domain.ErrorIDDuplicateMember: "That member is already on the list.",
}

// errorOrder fixes the display order of error messages
var errorOrder = []string{domain.ErrorIDEmptyInput, domain.ErrorIDDuplicateMember}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	roster *roster.Store
	engine *lottery.Engine
	bridge *scrape.Bridge
	ctx    context.Context

	width   int
	height  int
	help    help.Model
	spinner spinner.Model

	selectedIndex  int
	viewportOffset int
	viewportHeight int

	errors       map[string]string // add-form errors keyed by error id
	status       string
	statusKind   views.StatusKind
	statusID     int
	showHelp     bool
	inPagerMode  bool
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *roster.Store, engine *lottery.Engine, bridge *scrape.Bridge) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		bus:            bus,
		config:         cfg,
		roster:         store,
		engine:         engine,
		bridge:         bridge,
		ctx:            context.Background(),
		help:           help.New(),
		spinner:        s,
		viewportHeight: 20, // Will be updated on first WindowSizeMsg
		errors:         make(map[string]string),
		renderer:       views.NewRenderer(cfg.UISettings.ShowPresence, cfg.UISettings.ShowAvatars),
		helpRenderer:   NewHelpRenderer(inputtypes.Keys),
		inputHandler:   input.New(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetContext sets the context participant requests run under
func (m *Model) SetContext(ctx context.Context) {
	m.ctx = ctx
}

// Init requests the participant list and starts the spinner
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.requestMembers(), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			// Any key closes the inline help
			m.showHelp = false
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

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

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		// Cursor blink and other messages for the text input
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	visible := m.roster.VisibleMembers()
	excluded := m.roster.ExcludedMembers()
	excludedNames := make([]string, len(excluded))
	for i, member := range excluded {
		excludedNames[i] = member.Name
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Members:        visible,
		Total:          m.roster.Len(),
		Eligible:       m.roster.Len() - len(excluded),
		Excluded:       excludedNames,
		SelectedIndex:  m.selectedIndex,
		ViewportOffset: m.viewportOffset,
		ViewportHeight: m.viewportHeight,
		SearchQuery:    m.roster.Query(),
		InputMode:      m.inputHandler.CurrentMode().String(),
		InputPrompt:    m.inputHandler.Prompt(),
		Errors:         m.errorList(),
		StatusMessage:  m.status,
		StatusKind:     m.statusKind,
		Syncing:        m.loading(),
		SyncSpinner:    m.spinner.View(),
		Thinking:       m.config.ThinkingSeconds,
		ShowHelp:       m.showHelp,
		HelpModel:      m.help,
		Keys:           m.keys(),
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = ti.View()
	}
	if m.showHelp {
		state.HelpContent = m.helpRenderer.RenderHelpContent()
	}
	if m.inputHandler.CurrentMode() == inputtypes.ModeLottery {
		selection := m.engine.State()
		state.Lottery = views.LotteryView{
			Open:       true,
			Phase:      selection.Phase,
			Winner:     selection.Winner,
			Candidates: len(m.roster.EligibleMembers()),
			Thinking:   m.config.ThinkingSeconds,
			Spinner:    m.spinner.View(),
			Draws:      m.engine.Draws(),
		}
	}

	return m.renderer.Render(state)
}

func (m *Model) keys() help.KeyMap {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeNormal:
		return inputtypes.Keys
	case inputtypes.ModeLottery:
		return inputtypes.LotteryKeys{KeyMap: inputtypes.Keys}
	default:
		return nil
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleEligibilityAction:
		if !m.roster.ToggleEligibility(a.Name) {
			return nil
		}
		// The excluded section may have appeared or gone
		m.updateViewportHeight()
		if member, ok := m.roster.Get(a.Name); ok && !member.Eligible {
			return m.setStatus(fmt.Sprintf("%s excluded from the lottery", a.Name), views.StatusInfo)
		}
		return m.setStatus(fmt.Sprintf("%s included in the lottery", a.Name), views.StatusInfo)

	case inputtypes.ClearSearchAction:
		m.applySearch("")

	case inputtypes.ResyncAction:
		return m.requestMembers()

	case inputtypes.OpenLotteryAction:
		return m.openLottery()

	case inputtypes.RedrawAction:
		return m.startDraw()

	case inputtypes.CloseLotteryAction:
		m.engine.CancelPending()
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, "", &modelContext{m: m})

	case inputtypes.UpdateTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.applySearch(a.Text)
		case inputtypes.ModeAdd:
			m.clearErrors()
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.applySearch(a.Text)
		case inputtypes.ModeAdd:
			return m.addMember(a.Text)
		case inputtypes.ModeDuration:
			return m.setThinking(a.Text)
		}

	case inputtypes.CancelTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.applySearch("")
		case inputtypes.ModeAdd:
			m.clearErrors()
		}

	case inputtypes.ShowHelpAction:
		if m.program == nil {
			m.showHelp = true
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		m.engine.CancelPending()
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles messages that are not key presses
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case membersFetchedMsg:
		return m, m.applyMembers(msg.resp)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline help
			log.Printf("Help pager failed: %v", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	default:
		return m, nil
	}
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.SelectionCompletedEvent:
		// The modal reads the engine state on render; nothing to copy here
		log.Printf("UI: draw %s completed", e.DrawID)
	case domain.ScrapeUnavailableEvent:
		log.Printf("UI: participant list unavailable: %v", e.Err)
	case domain.ConfigSavedEvent:
		return m.setStatus("Settings saved", views.StatusSuccess)
	case domain.ErrorEvent:
		return m.setStatus(e.Message, views.StatusError)
	}
	return nil
}

// requestMembers asks the bridge for the participant list
func (m *Model) requestMembers() tea.Cmd {
	if m.bridge == nil {
		return nil
	}
	reply, err := m.bridge.Request(m.ctx)
	if errors.Is(err, scrape.ErrFetchInProgress) {
		return m.setStatus("Already loading members", views.StatusInfo)
	}
	return func() tea.Msg {
		return membersFetchedMsg{resp: <-reply}
	}
}

// loading reports whether a participant request is outstanding
func (m *Model) loading() bool {
	return m.bridge != nil && m.bridge.InFlight()
}

// applyMembers replaces the roster with a scrape reply
func (m *Model) applyMembers(resp scrape.Response) tea.Cmd {
	count := m.roster.Load(resp.Members())
	m.updateViewportHeight()
	m.clampSelection()

	if count == 0 {
		return m.setStatus("No participants found. Open the people panel of the meeting and press R.", views.StatusWarning)
	}
	return m.setStatus(fmt.Sprintf("Loaded %d members", count), views.StatusSuccess)
}

func (m *Model) applySearch(query string) {
	m.roster.ApplySearch(query)
	m.clampSelection()
}

func (m *Model) addMember(name string) tea.Cmd {
	if err := m.roster.AddMember(name); err != nil {
		m.clearErrors()
		if id := domain.ErrorID(err); id != "" {
			m.errors[id] = errorMessages[id]
		} else {
			return m.setStatus(err.Error(), views.StatusError)
		}
		return nil
	}

	m.clearErrors()
	m.inputHandler.ClearText()
	// New members are prepended, show them
	m.selectedIndex = 0
	m.viewportOffset = 0
	m.updateViewportHeight()
	return m.setStatus(fmt.Sprintf("Added %s", name), views.StatusSuccess)
}

func (m *Model) setThinking(text string) tea.Cmd {
	seconds := config.CoerceThinkingSeconds(text)
	m.config.ThinkingSeconds = seconds
	if m.bus != nil {
		m.bus.Publish(domain.ConfigChangedEvent{ThinkingSeconds: seconds})
	}
	return m.setStatus(fmt.Sprintf("Thinking time set to %ss", views.FormatSeconds(seconds)), views.StatusInfo)
}

func (m *Model) openLottery() tea.Cmd {
	if !m.roster.HasEligible() {
		return m.setStatus("No eligible members to draw from ("+describe(inputtypes.Keys.Toggle)+")", views.StatusWarning)
	}
	m.inputHandler.ChangeMode(inputtypes.ModeLottery, "", &modelContext{m: m})
	return m.startDraw()
}

func (m *Model) startDraw() tea.Cmd {
	if _, err := m.engine.StartFromRoster(m.roster, m.config.ThinkingSeconds); err != nil {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, "", &modelContext{m: m})
		return m.setStatus(err.Error(), views.StatusWarning)
	}
	return nil
}

func (m *Model) errorList() []string {
	var list []string
	for _, id := range errorOrder {
		if msg, ok := m.errors[id]; ok {
			list = append(list, msg)
		}
	}
	return list
}

// ErrorIDs returns the ids of the errors currently shown
func (m *Model) ErrorIDs() []string {
	var ids []string
	for _, id := range errorOrder {
		if _, ok := m.errors[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m *Model) clearErrors() {
	for id := range m.errors {
		delete(m.errors, id)
	}
}

// setStatus shows msg and schedules its removal
func (m *Model) setStatus(msg string, kind views.StatusKind) tea.Cmd {
	m.statusID++
	m.status = msg
	m.statusKind = kind
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
