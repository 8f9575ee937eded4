package textfield

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Control labels rendered inside the input box.
const (
	ClearControl = "✕"
	ShowControl  = "show"
	HideControl  = "hide"
)

// View renders the label, the input box with its controls and the message line.
func (m Model) View() string {
	var lines []string

	if m.props.Label != "" {
		lines = append(lines, m.Styles.Label.Render(m.props.Label))
	}

	content := m.styledInput().View()
	if controls := m.controls(); controls != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", controls)
	}
	lines = append(lines, m.Styles.box(m.props, m.input.Focused()).Render(content))

	switch text, kind := m.Message(); kind {
	case MessageError:
		lines = append(lines, m.Styles.Error.Render(text))
	case MessageHelper:
		lines = append(lines, m.Styles.Helper.Render(text))
	}

	return strings.Join(lines, "\n")
}

func (m Model) controls() string {
	var parts []string
	if m.RevealVisible() {
		label := ShowControl
		if m.showSecret {
			label = HideControl
		}
		parts = append(parts, m.Styles.Control.Render(label))
	}
	if m.ClearVisible() {
		parts = append(parts, m.Styles.Control.Render(ClearControl))
	}
	return strings.Join(parts, " ")
}

// styledInput returns a copy of the textinput with the current styles applied.
func (m Model) styledInput() textinput.Model {
	ti := m.input
	text := m.Styles.Text
	if m.props.Disabled {
		text = m.Styles.Disabled
	}
	ti.TextStyle = text
	ti.PromptStyle = text
	ti.PlaceholderStyle = m.Styles.Muted
	ti.Cursor.Style = m.Styles.Cursor
	ti.Cursor.TextStyle = text
	return ti
}
