// Package styles renders dockyard's terminal output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a Theme is derived from.
type Palette struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Warning        lipgloss.Color
	Error          lipgloss.Color
}

// DockPalette is the dark palette used by the demo and the CLI.
var DockPalette = Palette{
	Background:     "#0a0a0b",
	Surface:        "#1a1a1b",
	SurfaceVariant: "#2d2d2d",
	Text:           "#ffffff",
	Muted:          "#909090",
	Accent:         "#4ade80",
	Border:         "#333333",
	Warning:        "#f59e0b",
	Error:          "#ef4444",
}

// Theme is a Palette plus the text styles built from it.
type Theme struct {
	Palette

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style

	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	BadgeMuted lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style

	// Button and ButtonFocused draw dialog choices.
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Box           lipgloss.Style

	cells map[CellStyle]lipgloss.Style
}

// NewTheme builds the theme for DockPalette.
func NewTheme() *Theme {
	return NewThemeFromPalette(DockPalette)
}

// NewThemeFromPalette builds every style from p.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t := &Theme{
		Palette:   p,
		Title:     fg(p.Text).Bold(true),
		Subtitle:  fg(p.Muted).Bold(true),
		Subtle:    fg(p.Muted),
		Highlight: fg(p.Accent).Bold(true),

		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Accent),

		BadgeMuted: fg(p.Text).Background(p.SurfaceVariant).Padding(0, 1),
		HelpKey:    fg(p.Accent),
		HelpDesc:   fg(p.Muted),

		Button:        fg(p.Muted).Background(p.Surface).Padding(0, 2),
		ButtonFocused: fg(p.Background).Background(p.Accent).Padding(0, 2).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
	}
	t.buildCellStyles()
	return t
}
