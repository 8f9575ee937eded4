package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return ClipLines(placed, w, h)
}

// ClipLines cuts content to at most width cells and height lines.
func ClipLines(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Cut(line, 0, width) + ansi.ResetStyle
		}
	}
	return strings.Join(lines, "\n")
}

// Line renders content in style, truncated to width.
func Line(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	if width > 0 {
		style = style.Width(contentWidth)
		content = ansi.Truncate(content, contentWidth, "…")
	}
	return style.Render(content)
}
