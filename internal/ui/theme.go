package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used by the player.
type Theme struct {
	Name string

	Background string
	Surface    string

	Border      string
	BorderFlip  string // card border while the back face is showing
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),

		HeaderMuted: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		CardFront: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 3),

		CardBack: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFlip)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 3),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Playing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Paused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		CommandBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles holds the pre-built lipgloss styles for rendering.
type Styles struct {
	Header      lipgloss.Style
	HeaderMuted lipgloss.Style
	CardFront   lipgloss.Style
	CardBack    lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Faint       lipgloss.Style
	Playing     lipgloss.Style
	Paused      lipgloss.Style
	CommandBar  lipgloss.Style
}

var themes = map[string]Theme{
	"Indigo":  indigoTheme(),
	"Dracula": draculaTheme(),
	"Paper":   paperTheme(),
}

var themeOrder = []string{"Indigo", "Dracula", "Paper"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return indigoTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func indigoTheme() Theme {
	return Theme{
		Name: "Indigo",

		Background: "#171528",
		Surface:    "#201d3a",

		Border:      "#463f77",
		BorderFlip:  "#8a7bdc",
		BorderFocus: "#a99bf0",

		Text:    "#d8d4f2",
		Muted:   "#8d87b3",
		Faint:   "#5a5480",
		Accent:  "#a99bf0",
		Success: "#7fd88f",
		Warning: "#e8c57a",
	}
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com
	return Theme{
		Name: "Dracula",

		Background: "#282a36",
		Surface:    "#343746",

		Border:      "#44475a",
		BorderFlip:  "#bd93f9",
		BorderFocus: "#ff79c6",

		Text:    "#f8f8f2",
		Muted:   "#9aa0b9",
		Faint:   "#6272a4",
		Accent:  "#8be9fd",
		Success: "#50fa7b",
		Warning: "#f1fa8c",
	}
}

func paperTheme() Theme {
	// Light theme for bright terminals.
	return Theme{
		Name: "Paper",

		Background: "#f4f0e8",
		Surface:    "#e8e2d6",

		Border:      "#b5ab99",
		BorderFlip:  "#7a5ec2",
		BorderFocus: "#5a45a0",

		Text:    "#2c2a26",
		Muted:   "#6e6859",
		Faint:   "#a39c8a",
		Accent:  "#5a45a0",
		Success: "#2f7d3f",
		Warning: "#9c6a12",
	}
}
