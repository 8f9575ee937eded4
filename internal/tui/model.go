package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/widgetkit/internal/config"
	"github.com/javiermolinar/widgetkit/internal/tui/commands"
	"github.com/javiermolinar/widgetkit/internal/tui/input"
	"github.com/javiermolinar/widgetkit/internal/tui/theme"
	"github.com/javiermolinar/widgetkit/internal/user"
)

// Number of action log entries shown under a story.
const maxActions = 8

// Model is the catalog TUI model.
type Model struct {
	// Dependencies
	repo   user.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Stories
	stories []story
	active  int
	actions *actionLog
	loading bool // True while users load from the repository

	// Components
	keys   KeyMap
	help   help.Model
	search textinput.Model

	searching bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string
	err       error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithStory makes the story with the given "Group/Name" title active.
func WithStory(title string) ModelOption {
	return func(m *Model) {
		if idx, ok := input.First(title, m.entries()); ok {
			m.active = idx
		}
	}
}

// New creates a new catalog model. A nil repo shows the built-in sample users.
func New(repo user.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("dark")
	}
	styles := NewStyles(t)

	search := textinput.New()
	search.Prompt = "find: "
	search.Placeholder = "Group/Name"
	search.CharLimit = 64

	h := help.New()
	h.Styles = styles.Help

	actions := &actionLog{}
	m := &Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  styles,
		actions: actions,
		loading: repo != nil,
		keys:    DefaultKeyMap(),
		help:    h,
		search:  search,
	}
	m.stories = buildStories(styles, actions, m.loading)

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.activeStory().Focus()}
	if m.repo != nil {
		cmds = append(cmds, commands.LoadUsers(m.repo))
	}
	return tea.Batch(cmds...)
}

// ActiveStory returns the "Group/Name" title of the active story.
func (m Model) ActiveStory() string {
	return m.activeStory().Entry().Title()
}

// Actions returns the recorded widget callbacks, oldest first.
func (m Model) Actions() []string {
	return m.actions.Entries()
}

func (m Model) activeStory() story {
	return m.stories[m.active]
}

func (m Model) entries() []input.Entry {
	entries := make([]input.Entry, len(m.stories))
	for i, s := range m.stories {
		entries[i] = s.Entry()
	}
	return entries
}

// selectStory activates the story at idx, wrapping around both ends.
func (m *Model) selectStory(idx int) tea.Cmd {
	n := len(m.stories)
	idx = ((idx % n) + n) % n
	if idx == m.active {
		return nil
	}
	m.activeStory().Blur()
	m.active = idx
	return m.activeStory().Focus()
}

// Run starts the catalog TUI.
func Run(repo user.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the catalog TUI with optional debug logging.
func RunWithDebug(repo user.Repository, cfg *config.Config, debug bool) error {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := InitDebugLogger(debug || cfg.Debug.Enabled, cfg.Debug.LogPath); err != nil {
		return err
	}
	defer CloseDebugLogger()

	if repo == nil {
		opened, err := existingRepo(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		if opened != nil {
			defer func() { _ = opened.Close() }()
			repo = opened
		}
	}

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
