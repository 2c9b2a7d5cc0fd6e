package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"meetlottery/internal/ui/input/types"
)

// SearchMode filters the roster while typing. Terms are separated by commas.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
