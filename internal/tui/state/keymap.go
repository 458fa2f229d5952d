package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key press asks the widget to do.
type Action string

const (
	ActionNone      Action = ""
	ActionNextTab   Action = "next_tab"
	ActionPrevTab   Action = "prev_tab"
	ActionJumpTab   Action = "jump_tab"
	ActionUp        Action = "up"
	ActionDown      Action = "down"
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionPrevPage  Action = "prev_page"
	ActionNextPage  Action = "next_page"
	ActionFirstPage Action = "first_page"
	ActionLastPage  Action = "last_page"
	ActionSelect    Action = "select"
	ActionCopy      Action = "copy"
	ActionReload    Action = "reload"
	ActionHelp      Action = "help"
	ActionQuit      Action = "quit"
)

// KeymapData contains all key bindings for the widget.
type KeymapData struct {
	// Tabs
	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding

	// Grid navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Actions
	Select key.Binding
	Copy   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev tab")),
		JumpTab: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to tab")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		PrevPage: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("gg", "first page")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),

		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open item")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Left, k.Right, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeymapData) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevPage, k.NextPage, k.Top, k.Bottom},
		{k.Select, k.Copy, k.Reload, k.Help, k.Quit},
	}
}

// KeyState tracks multi-key sequences (like 'gg').
type KeyState struct {
	WaitingG bool
}

// HandleKey resolves a key press to an action.
// Returns the action and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km KeymapData) (Action, bool) {
	keyStr := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if keyStr == "g" {
			return ActionFirstPage, true
		}
		// If not 'g', fall through and process normally
	}

	if keyStr == "g" {
		ks.WaitingG = true
		return ActionNone, true
	}

	switch {
	case key.Matches(msg, km.Quit):
		return ActionQuit, true
	case key.Matches(msg, km.NextTab):
		return ActionNextTab, true
	case key.Matches(msg, km.PrevTab):
		return ActionPrevTab, true
	case key.Matches(msg, km.JumpTab):
		return ActionJumpTab, true
	case key.Matches(msg, km.Up):
		return ActionUp, true
	case key.Matches(msg, km.Down):
		return ActionDown, true
	case key.Matches(msg, km.Left):
		return ActionLeft, true
	case key.Matches(msg, km.Right):
		return ActionRight, true
	case key.Matches(msg, km.PrevPage):
		return ActionPrevPage, true
	case key.Matches(msg, km.NextPage):
		return ActionNextPage, true
	case key.Matches(msg, km.Top):
		return ActionFirstPage, true
	case key.Matches(msg, km.Bottom):
		return ActionLastPage, true
	case key.Matches(msg, km.Select):
		return ActionSelect, true
	case key.Matches(msg, km.Copy):
		return ActionCopy, true
	case key.Matches(msg, km.Reload):
		return ActionReload, true
	case key.Matches(msg, km.Help):
		return ActionHelp, true
	}

	return ActionNone, false
}

// JumpTabIndex returns the zero-based tab a digit key refers to.
func JumpTabIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
