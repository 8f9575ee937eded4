// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/widgetkit/internal/user"
)

// UsersLoadedMsg is sent when users are loaded from the repository.
type UsersLoadedMsg struct {
	Users []user.User
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// statusDuration is how long a status message stays visible.
const statusDuration = 3 * time.Second

// LoadUsers loads all users from repo.
func LoadUsers(repo user.Repository) tea.Cmd {
	return func() tea.Msg {
		users, err := repo.ListUsers(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading users: %w", err)}
		}
		return UsersLoadedMsg{Users: users}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied to clipboard"}
	}
}
