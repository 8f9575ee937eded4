package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/widgetkit/internal/config"
	"github.com/javiermolinar/widgetkit/internal/tui/commands"
	"github.com/javiermolinar/widgetkit/internal/tui/datatable"
	"github.com/javiermolinar/widgetkit/internal/tui/theme"
	"github.com/javiermolinar/widgetkit/internal/user"
)

// BrowseModel shows stored users in a single table and collects a selection.
type BrowseModel struct {
	repo     user.Repository
	styles   *Styles
	table    datatable.Model[user.User]
	help     help.Model
	done     key.Binding
	quit     key.Binding
	selected []user.User
	accepted bool
	err      error
}

// NewBrowseModel creates a browser over repo using the given selection mode.
func NewBrowseModel(repo user.Repository, cfg *config.Config, mode datatable.SelectionMode) BrowseModel {
	if cfg == nil {
		cfg = config.Default()
	}
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("dark")
	}
	styles := NewStyles(t)

	m := BrowseModel{
		repo:   repo,
		styles: styles,
		help:   help.New(),
		done: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "done"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
	m.help.Styles = styles.Help
	m.table = datatable.New(datatable.Props[user.User]{
		Columns:       user.Columns(),
		Loading:       true,
		SelectionMode: mode,
	}, datatable.WithStyles[user.User](styles.Table))
	return m
}

// Init loads the users.
func (m BrowseModel) Init() tea.Cmd {
	return commands.LoadUsers(m.repo)
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		switch {
		case key.Matches(msg, m.quit):
			return m, tea.Quit
		case key.Matches(msg, m.done):
			m.accepted = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case commands.UsersLoadedMsg:
		props := m.table.Props()
		props.Data = msg.Users
		props.Loading = false
		m.table.SetProps(props)
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("browse", msg.Err)
		return m, tea.Quit
	}
	return m, nil
}

// View renders the table and key help.
func (m BrowseModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.TitleStyle.Render("users"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	bindings := append(m.table.KeyMap.ShortHelp(), m.done, m.quit)
	b.WriteString(m.help.ShortHelpView(bindings))
	b.WriteString("\n")
	return b.String()
}

// Selection returns the selection as displayed when the browser closed. Aborted
// sessions return nil.
func (m BrowseModel) Selection() []user.User {
	if !m.accepted {
		return nil
	}
	return m.table.Selection()
}

// Err returns the load error, if any.
func (m BrowseModel) Err() error {
	return m.err
}

// RunBrowse runs the user browser and returns the accepted selection.
func RunBrowse(repo user.Repository, cfg *config.Config, mode datatable.SelectionMode, debug bool) ([]user.User, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := InitDebugLogger(debug || cfg.Debug.Enabled, cfg.Debug.LogPath); err != nil {
		return nil, err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(NewBrowseModel(repo, cfg, mode), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running browser: %w", err)
	}
	m, ok := final.(BrowseModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model %T", final)
	}
	if m.Err() != nil {
		return nil, m.Err()
	}
	return m.Selection(), nil
}
