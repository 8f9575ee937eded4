package textfield

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const echoChar = '•'

// Model is a text input with optional clear and password-reveal controls.
type Model struct {
	KeyMap KeyMap
	Styles Styles

	props      Props
	input      textinput.Model
	showSecret bool
}

// Option configures optional model behavior.
type Option func(*Model)

// WithStyles sets the field styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// WithCharLimit limits the text length. Zero means no limit.
func WithCharLimit(n int) Option {
	return func(m *Model) {
		m.input.CharLimit = n
	}
}

// New creates a field whose text is seeded from props.Value.
func New(props Props, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.SetValue(props.Value)

	m := Model{
		KeyMap: DefaultKeyMap(),
		Styles: NewStyles(nil),
		props:  props,
		input:  ti,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.sync()
	return m
}

// Props returns the current props.
func (m Model) Props() Props {
	return m.props
}

// SetProps replaces the props. The field text is left untouched; props.Value only
// seeds a newly created field.
func (m *Model) SetProps(props Props) {
	m.props = props
	m.sync()
}

// Value returns the field text.
func (m Model) Value() string {
	return m.input.Value()
}

// Focus focuses the input. A disabled field cannot be focused.
func (m *Model) Focus() tea.Cmd {
	if m.props.Disabled {
		return nil
	}
	return m.input.Focus()
}

// Blur removes focus from the input.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// ClearVisible reports whether the clear control is shown.
func (m Model) ClearVisible() bool {
	return m.props.Clearable && m.input.Value() != "" && !m.props.Disabled
}

// RevealVisible reports whether the password reveal control is shown.
func (m Model) RevealVisible() bool {
	return m.props.PasswordToggle && m.props.Kind == Password && !m.props.Disabled
}

// Masked reports whether the text is rendered masked.
func (m Model) Masked() bool {
	return m.props.Kind == Password && !m.showSecret
}

// SecretShown reports whether the password reveal is active.
func (m Model) SecretShown() bool {
	return m.showSecret
}

// Message returns the helper or error line shown under the input.
func (m Model) Message() (string, MessageKind) {
	return m.props.message()
}

// Input replaces the text as a user edit would. It is ignored when the field is
// disabled and reports whether the text changed.
func (m *Model) Input(value string) bool {
	if m.props.Disabled {
		return false
	}
	before := m.input.Value()
	m.input.SetValue(value)
	return m.changed(before)
}

// Clear empties the field and notifies OnChange. It only acts while the clear
// control is visible.
func (m *Model) Clear() bool {
	if !m.ClearVisible() {
		return false
	}
	m.input.SetValue("")
	m.notify("")
	return true
}

// ToggleReveal flips the password reveal. The text itself is unchanged.
func (m *Model) ToggleReveal() bool {
	if !m.RevealVisible() {
		return false
	}
	m.showSecret = !m.showSecret
	m.sync()
	return true
}

// HelpKeys returns the key map with bindings enabled only for visible controls.
func (m Model) HelpKeys() KeyMap {
	k := m.KeyMap
	k.Clear.SetEnabled(m.ClearVisible())
	k.Reveal.SetEnabled(m.RevealVisible())
	return k
}

// Update handles messages. Key presses are dropped while disabled.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.props.Disabled {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, m.KeyMap.Clear):
			m.Clear()
			return m, nil
		case key.Matches(keyMsg, m.KeyMap.Reveal):
			m.ToggleReveal()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.changed(before)
	return m, cmd
}

func (m *Model) changed(before string) bool {
	after := m.input.Value()
	if after == before {
		return false
	}
	m.notify(after)
	return true
}

func (m *Model) notify(value string) {
	if m.props.OnChange != nil {
		m.props.OnChange(value)
	}
}

// sync pushes props and reveal state into the wrapped textinput.
func (m *Model) sync() {
	m.input.Placeholder = m.props.Placeholder
	m.input.Width = sizeSpecs[m.props.Size].width

	if m.Masked() {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = echoChar
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}

	if m.props.Disabled {
		m.input.Blur()
	}
}
