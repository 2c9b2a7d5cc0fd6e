package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Roster actions
type ToggleEligibilityAction struct {
	Name string // empty for the member under the cursor
}

func (a ToggleEligibilityAction) Type() string { return "toggle_eligibility" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type ResyncAction struct{}

func (a ResyncAction) Type() string { return "resync" }

// Lottery actions
type OpenLotteryAction struct{}

func (a OpenLotteryAction) Type() string { return "open_lottery" }

type RedrawAction struct{}

func (a RedrawAction) Type() string { return "redraw" }

type CloseLotteryAction struct{}

func (a CloseLotteryAction) Type() string { return "close_lottery" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Other actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
