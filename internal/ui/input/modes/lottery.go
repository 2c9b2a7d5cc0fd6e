package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"meetlottery/internal/ui/input/types"
)

// LotteryMode is active while the lottery modal is shown
type LotteryMode struct{}

func NewLotteryMode() *LotteryMode {
	return &LotteryMode{}
}

func (m *LotteryMode) Name() string {
	return "lottery"
}

func (m *LotteryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LotteryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LotteryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, types.Keys.Redraw):
		return []types.Action{types.RedrawAction{}}, true
	case key.Matches(msg, types.Keys.Close), msg.Type == tea.KeyEnter:
		return []types.Action{types.CloseLotteryAction{}}, true
	}
	// Swallow everything else so the roster cannot change behind the modal
	return nil, true
}
