package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"meetlottery/internal/ui/input/types"
)

// AddMode collects names of members to add by hand. It stays open after a
// submit so several names can be entered in a row.
type AddMode struct {
	TextInputMode
}

func NewAddMode(ti *textinput.Model) *AddMode {
	return &AddMode{
		TextInputMode: NewTextInputMode(types.ModeAdd, "add", "Add member: ", ti),
	}
}

func (m *AddMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyEnter {
		return []types.Action{types.SubmitTextAction{Text: m.value(), Mode: types.ModeAdd}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
