package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/widgetkit/internal/tui/commands"
	"github.com/javiermolinar/widgetkit/internal/tui/input"
)

// KeyMap holds catalog-level bindings. Everything else goes to the active story.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Search key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default catalog bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next story"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev story"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "find story"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy actions"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys combines catalog bindings with the active story's bindings.
type helpKeys struct {
	global KeyMap
	story  []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{h.global.Next, h.global.Quit}, h.story...)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.global.Next, h.global.Prev, h.global.Search, h.global.Copy, h.global.Help, h.global.Quit},
		h.story,
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		cmd := m.selectStory(m.active + 1)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.selectStory(m.active - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Copy):
		if len(m.actions.Entries()) == 0 {
			m.statusMsg = "nothing to copy"
			return m, commands.ClearStatusAfter()
		}
		return m, commands.CopyToClipboard(strings.Join(m.actions.Entries(), "\n"))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	active := m.activeStory()
	if msg.String() == "q" && active.QuitOnQ() {
		return m, tea.Quit
	}
	return m, active.Update(msg)
}

// handleSearchKeys handles keys while the story search prompt is open.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		idx, ok := input.First(m.search.Value(), m.entries())
		if !ok {
			m.statusMsg = "no story matches " + m.search.Value()
			return m, nil
		}
		cmd := m.selectStory(idx)
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}
