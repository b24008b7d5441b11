package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the browser. Printable keys go to
// the search input, so every action rides on a control chord or a
// navigation key.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	PrevPage        key.Binding
	NextPage        key.Binding
	ViewDetails     key.Binding
	NewCustomer     key.Binding
	EditCustomer    key.Binding
	Deactivate      key.Binding
	GrantMembership key.Binding
	CopyBarcode     key.Binding
	Back            key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next row"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next page"),
		),
		ViewDetails: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view details"),
		),
		NewCustomer: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add customer"),
		),
		EditCustomer: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit customer"),
		),
		Deactivate: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "deactivate"),
		),
		GrantMembership: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "grant membership"),
		),
		CopyBarcode: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy barcode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.ViewDetails, k.NewCustomer, k.EditCustomer},
		{k.Deactivate, k.GrantMembership, k.CopyBarcode},
		{k.Back, k.Quit},
	}
}

// ShortHelp returns the bindings shown on the footer line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ViewDetails, k.NextPage, k.Deactivate, k.GrantMembership, k.Quit}
}
