package datatable

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/widgetkit/internal/tui/theme"
)

// Styles holds the lipgloss styles used to render a table.
type Styles struct {
	Header         lipgloss.Style
	HeaderSortable lipgloss.Style
	HeaderFocused  lipgloss.Style
	Cell           lipgloss.Style
	Cursor         lipgloss.Style
	Selected       lipgloss.Style
	Border         lipgloss.Style
	Placeholder    lipgloss.Style
}

// NewStyles derives table styles from a palette.
func NewStyles(p *theme.Palette) Styles {
	if p == nil {
		p = theme.NewPalette(nil)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(p.Fg).
		Background(p.BgHighlight)

	return Styles{
		Header:         header,
		HeaderSortable: header.Underline(true),
		HeaderFocused:  header.Underline(true).Foreground(p.Accent),
		Cell:           lipgloss.NewStyle().Padding(0, 1).Foreground(p.Fg),
		Cursor: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.TextOnSelection).
			Background(p.BgSelection),
		Selected:      lipgloss.NewStyle().Padding(0, 1).Foreground(p.Accent),
		Border:        lipgloss.NewStyle().Foreground(p.Border),
		Placeholder:   lipgloss.NewStyle().Padding(1, 2).Foreground(p.FgMuted),
	}
}
