package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"meetlottery/internal/ui/input/types"
)

type DurationMode struct {
	TextInputMode
}

func NewDurationMode(ti *textinput.Model) *DurationMode {
	return &DurationMode{
		TextInputMode: NewTextInputMode(types.ModeDuration, "duration", "Thinking time (seconds): ", ti),
	}
}
