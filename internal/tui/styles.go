// Package tui provides the component catalog for widgetkit.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/widgetkit/internal/tui/datatable"
	"github.com/javiermolinar/widgetkit/internal/tui/textfield"
	"github.com/javiermolinar/widgetkit/internal/tui/theme"
	"github.com/javiermolinar/widgetkit/internal/tui/view"
)

// Sidebar width including padding.
const sidebarWidth = 26

// Styles holds all lipgloss styles for the catalog, derived from a theme.
type Styles struct {
	colorBg     lipgloss.Color
	colorFg     lipgloss.Color
	colorMuted  lipgloss.Color
	colorAccent lipgloss.Color
	colorDanger lipgloss.Color

	// Title bar
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style

	// Story list
	Sidebar view.SidebarStyles

	// Story body
	StoryTitleStyle lipgloss.Style
	StoryBodyStyle  lipgloss.Style

	// Actions log
	ActionsTitleStyle lipgloss.Style
	ActionEntryStyle  lipgloss.Style
	ActionEmptyStyle  lipgloss.Style

	// Search prompt
	SearchStyle lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	Help        help.Styles

	// Widget styles shared by every story
	Table datatable.Styles
	Field textfield.Styles
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorFg = palette.Fg
	s.colorMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorDanger = palette.Danger

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Padding(0, 1)

	s.SubtitleStyle = lipgloss.NewStyle().
		Foreground(s.colorMuted)

	s.Sidebar = view.SidebarStyles{
		Group: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorFg),
		Item: lipgloss.NewStyle().
			Foreground(s.colorMuted),
		Active: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorAccent),
		Box: lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(palette.Border),
	}

	s.StoryTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		MarginBottom(1)

	s.StoryBodyStyle = lipgloss.NewStyle().
		MarginBottom(1)

	s.ActionsTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorMuted)

	s.ActionEntryStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.ActionEmptyStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(s.colorMuted)

	s.SearchStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Padding(0, 1)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorDanger).
		Padding(0, 1)

	s.Help = help.New().Styles
	s.Help.ShortKey = s.Help.ShortKey.Foreground(s.colorAccent)
	s.Help.FullKey = s.Help.FullKey.Foreground(s.colorAccent)
	s.Help.ShortDesc = s.Help.ShortDesc.Foreground(s.colorMuted)
	s.Help.FullDesc = s.Help.FullDesc.Foreground(s.colorMuted)

	s.Table = datatable.NewStyles(palette)
	s.Field = textfield.NewStyles(palette)

	return s
}
