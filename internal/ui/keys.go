package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the player.
type keyMap struct {
	// Card navigation
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding

	// Presentation
	Flip       key.Binding
	PlayPause  key.Binding
	JumpSearch key.Binding
	Reload     key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Search/input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next card"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous card"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First card"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last card"),
		),

		Flip: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("Space", "Flip card"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Play/pause"),
		),
		JumpSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Jump to card"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload deck"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.PlayPause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.First, k.Last},
		{k.Flip, k.PlayPause, k.JumpSearch, k.Reload},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
