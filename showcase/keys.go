package showcase

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding of the showcase. It implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Filter   key.Binding
	Theme    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Toggle   key.Binding
	Activate key.Binding
	Left     key.Binding
	Right    key.Binding
	Disable  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Disable:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "enable/disable")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// listKeys are the bindings active on the demo list.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Theme, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, {k.Filter, k.Theme, k.Help, k.Quit}}
}

// pageKeys are the bindings active inside a demo page.
type pageKeys struct{ keyMap }

func (k pageKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Activate, k.Left, k.Right, k.Back, k.Quit}
}

func (k pageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle, k.Activate},
		{k.Left, k.Right, k.Disable},
		{k.Theme, k.Back, k.Help, k.Quit},
	}
}
