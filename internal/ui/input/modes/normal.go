package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"meetlottery/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys

	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case msg.Type == tea.KeyEsc:
		// Esc clears an active search, otherwise nothing to do
		if ctx.SearchQuery() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, false

	case key.Matches(msg, keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, keys.Toggle):
		if name := ctx.CurrentMemberName(); name != "" {
			return []types.Action{types.ToggleEligibilityAction{Name: name}}, true
		}
		return nil, true

	case key.Matches(msg, keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case key.Matches(msg, keys.Add):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeAdd}}, true

	case key.Matches(msg, keys.Thinking):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDuration, Data: ctx.ThinkingText()}}, true

	case key.Matches(msg, keys.Draw):
		// The model refuses to open the lottery without eligible members
		return []types.Action{types.OpenLotteryAction{}}, true

	case key.Matches(msg, keys.Resync):
		return []types.Action{types.ResyncAction{}}, true

	case key.Matches(msg, keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
