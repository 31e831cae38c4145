package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the explorer's bindings; the help bubble renders the
// short and full footers from it.
type keyMap struct {
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Reset    key.Binding
	Repaint  key.Binding
	Cancel   key.Binding
	Scheme   key.Binding
	Snapshot key.Binding
	Landmark key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ZoomIn: key.NewBinding(
			key.WithKeys("i", "+", "="),
			key.WithHelp("i/+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("o", "-"),
			key.WithHelp("o/-", "zoom out"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Repaint: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "rescan"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c", "esc"),
			key.WithHelp("c", "cancel"),
		),
		Scheme: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "scheme"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snapshot"),
		),
		Landmark: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "landmark"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Reset, k.Repaint},
		{k.Cancel, k.Scheme, k.Snapshot, k.Landmark},
		{k.Help, k.Quit},
	}
}
