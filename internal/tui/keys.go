package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search    key.Binding
	Focus     key.Binding
	Back      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Reload    key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
		Back:      key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "chip")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("space/1-9", "toggle")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Up:        key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/↓", "scroll")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "pgdown")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Focus, k.Left, k.Toggle, k.SelectAll, k.Reload, k.Up, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
