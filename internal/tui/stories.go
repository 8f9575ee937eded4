package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/widgetkit/internal/tui/datatable"
	"github.com/javiermolinar/widgetkit/internal/tui/input"
	"github.com/javiermolinar/widgetkit/internal/tui/textfield"
	"github.com/javiermolinar/widgetkit/internal/tui/theme"
	"github.com/javiermolinar/widgetkit/internal/user"
)

// Story groups.
const (
	GroupTable = "Table"
	GroupField = "Field"
)

// story is one catalog entry hosting a single widget.
type story interface {
	Entry() input.Entry
	Update(msg tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
	Bindings() []key.Binding
	// QuitOnQ reports whether a bare "q" may quit while this story is active.
	QuitOnQ() bool
}

// actionLog records widget callbacks in invocation order.
type actionLog struct {
	entries []string
}

func (l *actionLog) add(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

func (l *actionLog) Entries() []string {
	return l.entries
}

// tableStory hosts a users table.
type tableStory struct {
	name  string
	live  bool // Receives users loaded from the repository
	table datatable.Model[user.User]
}

func newTableStory(name string, props datatable.Props[user.User], live bool, styles *Styles, log *actionLog) *tableStory {
	s := &tableStory{name: name, live: live}
	if props.SelectionMode != datatable.SelectNone {
		props.OnSelectionChange = func(selected []user.User) {
			log.add("onSelectionChange(%s)", userNames(selected))
			LogEvent("SELECTION_CHANGE",
				zap.String("story", s.Entry().Title()),
				zap.Int("selected", len(selected)),
			)
		}
	}
	s.table = datatable.New(props, datatable.WithStyles[user.User](styles.Table))
	return s
}

func (s *tableStory) Entry() input.Entry {
	return input.Entry{Group: GroupTable, Name: s.name}
}

func (s *tableStory) Update(msg tea.Msg) tea.Cmd {
	before, hadSort := s.table.Sort()
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	if after, ok := s.table.Sort(); ok && (!hadSort || after != before) {
		LogEvent("SORT_CHANGE",
			zap.String("story", s.Entry().Title()),
			zap.String("key", after.Key),
			zap.String("direction", after.Direction.String()),
		)
	}
	return cmd
}

func (s *tableStory) View() string {
	return s.table.View()
}

func (s *tableStory) Focus() tea.Cmd {
	return nil
}

func (s *tableStory) Blur() {}

func (s *tableStory) Bindings() []key.Binding {
	return s.table.KeyMap.ShortHelp()
}

func (s *tableStory) QuitOnQ() bool {
	return true
}

// setUsers replaces the table data, leaving sort and selection untouched.
func (s *tableStory) setUsers(users []user.User) {
	if !s.live {
		return
	}
	props := s.table.Props()
	props.Data = users
	props.Loading = false
	s.table.SetProps(props)
}

// stopLoading leaves the current data in place after a failed load.
func (s *tableStory) stopLoading() {
	if !s.live {
		return
	}
	props := s.table.Props()
	props.Loading = false
	s.table.SetProps(props)
}

func (s *tableStory) setWidth(w int) {
	s.table.SetWidth(w)
}

// fieldStory hosts a text field.
type fieldStory struct {
	name  string
	field textfield.Model
}

func newFieldStory(name string, props textfield.Props, styles textfield.Styles, log *actionLog) *fieldStory {
	s := &fieldStory{name: name}
	props.OnChange = func(value string) {
		log.add("onChange(%q)", value)
		LogEvent("VALUE_CHANGE",
			zap.String("story", s.Entry().Title()),
			zap.Int("length", len(value)),
		)
	}
	s.field = textfield.New(props, textfield.WithStyles(styles))
	return s
}

func (s *fieldStory) Entry() input.Entry {
	return input.Entry{Group: GroupField, Name: s.name}
}

func (s *fieldStory) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return cmd
}

func (s *fieldStory) View() string {
	return s.field.View()
}

func (s *fieldStory) Focus() tea.Cmd {
	return s.field.Focus()
}

func (s *fieldStory) Blur() {
	s.field.Blur()
}

func (s *fieldStory) Bindings() []key.Binding {
	return s.field.HelpKeys().ShortHelp()
}

func (s *fieldStory) QuitOnQ() bool {
	return false
}

// buildStories creates the catalog entries. Table stories backed by a repository
// start loading until users arrive.
func buildStories(styles *Styles, log *actionLog, loading bool) []story {
	users := user.Samples()
	columns := user.Columns()
	tableProps := func(mode datatable.SelectionMode) datatable.Props[user.User] {
		return datatable.Props[user.User]{
			Data:          users,
			Columns:       columns,
			Loading:       loading,
			SelectionMode: mode,
		}
	}

	field := func(p textfield.Props) textfield.Props {
		if p.Label == "" {
			p.Label = "Username"
		}
		if p.Placeholder == "" {
			p.Placeholder = "Enter your username"
		}
		return p
	}

	darkStyles := styles.Field
	if t, err := theme.Load("dark"); err == nil {
		darkStyles = textfield.NewStyles(theme.NewPalette(t))
	}

	return []story{
		newTableStory("Default", tableProps(datatable.SelectNone), true, styles, log),
		newTableStory("Sortable", tableProps(datatable.SelectNone), true, styles, log),
		newTableStory("SelectableSingle", tableProps(datatable.SelectSingle), true, styles, log),
		newTableStory("SelectableMultiple", tableProps(datatable.SelectMultiple), true, styles, log),
		newTableStory("Loading", datatable.Props[user.User]{Columns: columns, Loading: true}, false, styles, log),
		newTableStory("Empty", datatable.Props[user.User]{Columns: columns}, false, styles, log),

		newFieldStory("Default", field(textfield.Props{}), styles.Field, log),
		newFieldStory("Invalid", field(textfield.Props{
			Invalid:      true,
			ErrorMessage: "This field is required",
		}), styles.Field, log),
		newFieldStory("Disabled", field(textfield.Props{Disabled: true}), styles.Field, log),
		newFieldStory("FilledVariant", field(textfield.Props{Variant: textfield.Filled}), styles.Field, log),
		newFieldStory("GhostVariant", field(textfield.Props{Variant: textfield.Ghost}), styles.Field, log),
		newFieldStory("LargeSize", field(textfield.Props{Size: textfield.Large}), styles.Field, log),
		newFieldStory("Clearable", field(textfield.Props{
			Clearable:   true,
			Placeholder: "Type something...",
		}), styles.Field, log),
		newFieldStory("PasswordToggle", field(textfield.Props{
			Kind:           textfield.Password,
			PasswordToggle: true,
			Placeholder:    "Enter your password",
		}), styles.Field, log),
		newFieldStory("DarkMode", textfield.Props{
			Label:       "Email",
			Placeholder: "Enter your email",
			HelperText:  "This is a helper text",
		}, darkStyles, log),
	}
}

// StoryTitles returns "Group/Name" for every catalog story, in display order.
func StoryTitles() []string {
	stories := buildStories(NewStyles(nil), &actionLog{}, false)
	titles := make([]string, len(stories))
	for i, s := range stories {
		titles[i] = s.Entry().Title()
	}
	return titles
}

func userNames(users []user.User) string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}
