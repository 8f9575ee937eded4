package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/widgetkit/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, s := range m.stories {
			if ts, ok := s.(*tableStory); ok {
				ts.setWidth(m.bodyWidth())
			}
		}
		return m, nil

	case commands.UsersLoadedMsg:
		m.loading = false
		for _, s := range m.stories {
			if ts, ok := s.(*tableStory); ok {
				ts.setUsers(msg.Users)
			}
		}
		LogEvent("USERS_LOADED", zap.Int("count", len(msg.Users)))
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		if m.loading {
			m.loading = false
			for _, s := range m.stories {
				if ts, ok := s.(*tableStory); ok {
					ts.stopLoading()
				}
			}
		}
		LogError("load", msg.Err)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		return m, commands.ClearStatusAfter()

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	// Cursor blink and other component messages go to the active story.
	return m, m.activeStory().Update(msg)
}

// bodyWidth is the width left for the active story next to the sidebar.
func (m Model) bodyWidth() int {
	w := m.width - sidebarWidth - 4
	if w < 0 {
		return 0
	}
	return w
}
