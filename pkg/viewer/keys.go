package viewer

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the viewer's bindings. The list bindings apply while the
// overlay is closed, the overlay bindings while it is open.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Filter   key.Binding
	Groups   key.Binding
	Quit     key.Binding

	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Close  key.Binding
	Help   key.Binding

	Copy         key.Binding
	CopyMarkdown key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Groups: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "groups"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/l", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←/h", "prev"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space", "c"),
		key.WithHelp("space", "controls"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy src"),
	),
	CopyMarkdown: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy markdown"),
	),
}

// listKeys is shown under the page list
type listKeys struct{ k keyMap }

func (l listKeys) ShortHelp() []key.Binding {
	return []key.Binding{l.k.Up, l.k.Down, l.k.Activate, l.k.Filter, l.k.Groups, l.k.Help, l.k.Quit}
}

func (l listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{l.k.Up, l.k.Down, l.k.Activate},
		{l.k.Filter, l.k.Groups, l.k.Copy, l.k.CopyMarkdown},
		{l.k.Help, l.k.Quit},
	}
}

// overlayKeys is shown in the help modal while the overlay is open
type overlayKeys struct{ k keyMap }

func (o overlayKeys) ShortHelp() []key.Binding {
	return []key.Binding{o.k.Next, o.k.Prev, o.k.Toggle, o.k.Close, o.k.Help}
}

func (o overlayKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{o.k.Next, o.k.Prev},
		{o.k.Toggle, o.k.Close, o.k.Help},
		{o.k.Copy, o.k.CopyMarkdown},
	}
}
