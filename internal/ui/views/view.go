package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"meetlottery/internal/domain"
)

// StatusKind selects the color of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// LotteryView is the state of the lottery modal
type LotteryView struct {
	Open       bool
	Phase      domain.SelectionPhase
	Winner     domain.Member
	Candidates int
	Thinking   float64
	Spinner    string
	Draws      int
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Members        []domain.Member // visible members in roster order
	Total          int
	Eligible       int
	Excluded       []string
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	SearchQuery    string
	InputMode      string
	InputPrompt    string
	TextInput      string
	Errors         []string
	StatusMessage  string
	StatusKind     StatusKind
	Syncing        bool
	SyncSpinner    string
	Thinking       float64
	Lottery        LotteryView
	ShowHelp       bool
	HelpContent    string
	HelpModel      help.Model
	Keys           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	memberRender *MemberRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showPresence, showAvatars bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		memberRender: NewMemberRenderer(styles, showPresence, showAvatars),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderModal(state.HelpContent, state.Width, state.Height, r.styles.Modal.Align(lipgloss.Left))
	}
	if state.Lottery.Open {
		return r.popupRender.RenderModal(r.renderLottery(state), state.Width, state.Height, r.styles.Modal)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	content.WriteString(r.renderMembers(state))

	if excluded := r.memberRender.RenderExcluded(state.Excluded, state.Width-4); excluded != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("Excluded from the lottery (%d)", len(state.Excluded))))
		content.WriteString("\n")
		content.WriteString(excluded)
	}

	if state.TextInput != "" || state.InputPrompt != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Prompt.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
	}
	for _, msg := range state.Errors {
		content.WriteString("\n")
		content.WriteString(r.styles.StatusError.Render(msg))
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))

	if state.Keys != nil {
		content.WriteString("\n")
		content.WriteString(state.HelpModel.View(state.Keys))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("meetlottery")

	indicators := []string{}
	if state.Syncing {
		indicators = append(indicators, fmt.Sprintf("%s Loading members", state.SyncSpinner))
	}
	indicators = append(indicators, fmt.Sprintf("%d/%d eligible", state.Eligible, state.Total))
	indicators = append(indicators, fmt.Sprintf("thinking %ss", FormatSeconds(state.Thinking)))

	right := r.styles.Dim.Render(strings.Join(indicators, " | "))
	if state.SearchQuery != "" {
		right = fmt.Sprintf("%s  %s", right, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderMembers(state ViewState) string {
	if state.Total == 0 {
		if state.Syncing {
			return r.styles.Dim.Render("Waiting for the participant list...")
		}
		return r.styles.Dim.Render("No participants. Open the people panel of the meeting and press R, or press a to add someone.")
	}
	if len(state.Members) == 0 {
		return r.styles.Dim.Render("No participants match the search.")
	}

	start := state.ViewportOffset
	if start < 0 || start >= len(state.Members) {
		start = 0
	}
	end := len(state.Members)
	if state.ViewportHeight > 0 && start+state.ViewportHeight < end {
		end = start + state.ViewportHeight
	}

	terms := searchTerms(state.SearchQuery)
	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.memberRender.RenderMember(state.Members[i], i == state.SelectedIndex, terms, state.Width-4))
	}
	if end < len(state.Members) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Members)-end)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	style := r.styles.Status
	switch state.StatusKind {
	case StatusSuccess:
		style = style.Inherit(r.styles.StatusSuccess)
	case StatusWarning:
		style = style.Inherit(r.styles.StatusWarning)
	case StatusError:
		style = style.Inherit(r.styles.StatusError)
	}
	return style.Render(state.StatusMessage)
}

func (r *Renderer) renderLottery(state ViewState) string {
	lottery := state.Lottery
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Lottery"))
	b.WriteString("\n")

	switch lottery.Phase {
	case domain.PhaseInProgress:
		b.WriteString(fmt.Sprintf("%s Thinking...\n\n", lottery.Spinner))
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("drawing from %d members", lottery.Candidates)))
	case domain.PhaseCompleted:
		b.WriteString("The winner is\n\n")
		b.WriteString(r.styles.Winner.Render(lottery.Winner.Name))
		b.WriteString("\n\n")
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("draw #%d", lottery.Draws)))
	default:
		b.WriteString(r.styles.Dim.Render("No draw yet"))
	}

	b.WriteString("\n\n")
	if state.Keys != nil {
		b.WriteString(state.HelpModel.View(state.Keys))
	}
	return b.String()
}

// FormatSeconds renders a thinking time without trailing zeros
func FormatSeconds(seconds float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", seconds), "0"), ".")
}
