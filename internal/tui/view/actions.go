package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoActionsText is shown when no callback has fired yet.
const NoActionsText = "no actions yet"

// ActionsViewState holds the callback log shown under a story.
type ActionsViewState struct {
	Title   string
	Entries []string // Oldest first
	Max     int
	Width   int
	TitleSt lipgloss.Style
	EntrySt lipgloss.Style
	EmptySt lipgloss.Style
}

// RenderActions renders the newest Max entries, newest last.
func RenderActions(state ActionsViewState) string {
	lines := []string{state.TitleSt.Render(state.Title)}

	entries := state.Entries
	if state.Max > 0 && len(entries) > state.Max {
		entries = entries[len(entries)-state.Max:]
	}
	if len(entries) == 0 {
		lines = append(lines, state.EmptySt.Render(NoActionsText))
	}
	for _, e := range entries {
		lines = append(lines, Line(state.Width, state.EntrySt, e))
	}
	return strings.Join(lines, "\n")
}
