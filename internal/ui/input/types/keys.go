package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings shared by the modes and the help footer
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Search   key.Binding
	Add      key.Binding
	Thinking key.Binding
	Draw     key.Binding
	Redraw   key.Binding
	Close    key.Binding
	Resync   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
	Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "include/exclude")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add member")),
	Thinking: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "thinking time")),
	Draw:     key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter/s", "draw")),
	Redraw:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "draw again")),
	Close:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
	Resync:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload members")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Search, k.Add, k.Draw, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Toggle, k.Search, k.Add, k.Thinking, k.Resync},
		{k.Draw, k.Redraw, k.Close, k.Help, k.Quit},
	}
}

// LotteryKeys is the key map shown while the lottery is open
type LotteryKeys struct {
	KeyMap
}

// ShortHelp implements help.KeyMap
func (k LotteryKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Redraw, k.Close}
}
