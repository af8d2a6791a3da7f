package ui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles every style the resolver renders with. Styles are built
// once up front the same way the rest of the model state is.
type Theme struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	HeaderDim  lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Resolved   lipgloss.Style
	Marker     lipgloss.Style
	CurrentBg  lipgloss.Style
	IncomingBg lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
	Action     lipgloss.Style
}

// NewTheme builds the palette for a catppuccin flavor; unknown names
// fall back to mocha.
func NewTheme(flavor string) Theme {
	var f catppuccin.Flavour = catppuccin.Mocha
	switch flavor {
	case "latte":
		f = catppuccin.Latte
	case "frappe":
		f = catppuccin.Frappe
	case "macchiato":
		f = catppuccin.Macchiato
	}

	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Mauve().Hex)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Sky().Hex)).
			Bold(true),

		HeaderDim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Overlay1().Hex)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(f.Sky().Hex)).
			Foreground(lipgloss.Color(f.Crust().Hex)).
			Bold(true),

		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Subtext0().Hex)),

		Resolved: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Green().Hex)),

		Marker: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Red().Hex)).
			Bold(true),

		CurrentBg: lipgloss.NewStyle().
			Background(lipgloss.Color(f.Surface1().Hex)).
			Foreground(lipgloss.Color(f.Sky().Hex)),

		IncomingBg: lipgloss.NewStyle().
			Background(lipgloss.Color(f.Surface1().Hex)).
			Foreground(lipgloss.Color(f.Peach().Hex)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Overlay1().Hex)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Red().Hex)).
			Bold(true),

		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.Yellow().Hex)).
			Bold(true),
	}
}
