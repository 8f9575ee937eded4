// Package view provides view composition helpers for the catalog TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ViewState contains pre-rendered sections of the catalog screen.
type ViewState struct {
	Width            int
	Height           int
	Header           string
	Sidebar          string
	Body             string
	Footer           string
	Bg               lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, state.Sidebar, "  ", state.Body)
	bodyH := state.Height - lipgloss.Height(state.Header) - lipgloss.Height(state.Footer)
	if bodyH < 1 {
		bodyH = 1
	}
	main = PlaceBox(state.Width, bodyH, lipgloss.Top, main, state.Bg)

	return lipgloss.JoinVertical(lipgloss.Left, state.Header, main, state.Footer)
}
