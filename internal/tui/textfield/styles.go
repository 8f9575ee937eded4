package textfield

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/widgetkit/internal/tui/theme"
)

// sizeSpec holds box padding and text width per size.
type sizeSpec struct {
	padY  int
	padX  int
	width int
}

var sizeSpecs = map[Size]sizeSpec{
	Small:  {padY: 0, padX: 1, width: 20},
	Medium: {padY: 0, padX: 2, width: 30},
	Large:  {padY: 1, padX: 3, width: 40},
}

// Styles holds the lipgloss styles used to render a field.
type Styles struct {
	Label    lipgloss.Style
	Helper   lipgloss.Style
	Error    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Control  lipgloss.Style
	Cursor   lipgloss.Style
	Disabled lipgloss.Style

	Outlined lipgloss.Style
	Filled   lipgloss.Style
	Ghost    lipgloss.Style

	FocusBorder   lipgloss.TerminalColor
	InvalidBorder lipgloss.TerminalColor
}

// NewStyles derives field styles from a palette.
func NewStyles(p *theme.Palette) Styles {
	if p == nil {
		p = theme.NewPalette(nil)
	}

	return Styles{
		Label:    lipgloss.NewStyle().Bold(true).Foreground(p.Fg),
		Helper:   lipgloss.NewStyle().Foreground(p.FgMuted),
		Error:    lipgloss.NewStyle().Foreground(p.Danger),
		Text:     lipgloss.NewStyle().Foreground(p.Fg),
		Muted:    lipgloss.NewStyle().Foreground(p.FgMuted),
		Control:  lipgloss.NewStyle().Foreground(p.FgMuted),
		Cursor:   lipgloss.NewStyle().Foreground(p.Accent),
		Disabled: lipgloss.NewStyle().Foreground(p.DisabledFg).Background(p.DisabledBg),

		Outlined: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Filled: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Background(p.InputBg),
		Ghost: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()),

		FocusBorder:   p.Accent,
		InvalidBorder: p.Danger,
	}
}

// box returns the input box style for the field state.
func (s Styles) box(props Props, focused bool) lipgloss.Style {
	var style lipgloss.Style
	switch props.Variant {
	case Filled:
		style = s.Filled
	case Ghost:
		style = s.Ghost
	default:
		style = s.Outlined
	}

	spec := sizeSpecs[props.Size]
	style = style.Padding(spec.padY, spec.padX)

	switch {
	case props.Invalid:
		style = style.BorderForeground(s.InvalidBorder)
	case focused && props.Variant != Ghost:
		style = style.BorderForeground(s.FocusBorder)
	}
	if props.Disabled {
		style = style.Inherit(s.Disabled)
	}
	return style
}
