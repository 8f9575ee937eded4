package textfield

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// changes captures OnChange invocations.
type changes struct {
	values []string
}

func (c *changes) record(v string) {
	c.values = append(c.values, v)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSeedValue(t *testing.T) {
	assert.Equal(t, "", New(Props{}).Value())
	assert.Equal(t, "hello", New(Props{Value: "hello"}).Value())
}

func TestKeystrokeUpdatesValueAndNotifies(t *testing.T) {
	c := &changes{}
	m := New(Props{OnChange: c.record})
	m.Focus()

	m = typeText(m, "hi")
	assert.Equal(t, "hi", m.Value())
	assert.Equal(t, []string{"h", "hi"}, c.values)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "h", m.Value())
	assert.Equal(t, []string{"h", "hi", "h"}, c.values)
}

func TestNonEditingKeyDoesNotNotify(t *testing.T) {
	c := &changes{}
	m := New(Props{Value: "abc", OnChange: c.record})
	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Empty(t, c.values)
	assert.Equal(t, "abc", m.Value())
}

func TestInput(t *testing.T) {
	c := &changes{}
	m := New(Props{OnChange: c.record})

	assert.True(t, m.Input("typed"))
	assert.False(t, m.Input("typed"), "same text is not a change")
	assert.Equal(t, "typed", m.Value())
	assert.Equal(t, []string{"typed"}, c.values)
}

func TestClear(t *testing.T) {
	c := &changes{}
	m := New(Props{Value: "hello", Clearable: true, OnChange: c.record})

	require.True(t, m.ClearVisible())
	require.True(t, m.Clear())
	assert.Equal(t, "", m.Value())
	assert.Equal(t, []string{""}, c.values)

	assert.False(t, m.ClearVisible(), "clear hidden once empty")
	assert.False(t, m.Clear())
	assert.Len(t, c.values, 1)
}

func TestClearKey(t *testing.T) {
	c := &changes{}
	m := New(Props{Value: "hello", Clearable: true, OnChange: c.record})
	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "", m.Value())
	assert.Equal(t, []string{""}, c.values)
}

func TestClearRequiresClearable(t *testing.T) {
	m := New(Props{Value: "hello"})
	assert.False(t, m.ClearVisible())
	assert.False(t, m.Clear())
	assert.Equal(t, "hello", m.Value())
	assert.NotContains(t, ansi.Strip(m.View()), ClearControl)
}

func TestReveal(t *testing.T) {
	m := New(Props{Value: "secret", Kind: Password, PasswordToggle: true})

	assert.True(t, m.Masked())
	assert.NotContains(t, ansi.Strip(m.View()), "secret")
	assert.Contains(t, ansi.Strip(m.View()), ShowControl)

	require.True(t, m.ToggleReveal())
	assert.False(t, m.Masked())
	assert.True(t, m.SecretShown())
	assert.Equal(t, "secret", m.Value())
	assert.Contains(t, ansi.Strip(m.View()), "secret")
	assert.Contains(t, ansi.Strip(m.View()), HideControl)

	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.Masked())
}

func TestRevealRequiresPasswordKind(t *testing.T) {
	m := New(Props{Value: "plain", PasswordToggle: true})
	assert.False(t, m.RevealVisible())
	assert.False(t, m.ToggleReveal())
	assert.False(t, m.Masked())

	m = New(Props{Value: "secret", Kind: Password})
	assert.False(t, m.RevealVisible())
	assert.True(t, m.Masked())
}

func TestDisabledSuppressesControlsAndInput(t *testing.T) {
	c := &changes{}
	m := New(Props{
		Value:          "hello",
		Disabled:       true,
		Clearable:      true,
		PasswordToggle: true,
		Kind:           Password,
		OnChange:       c.record,
	})

	assert.False(t, m.ClearVisible())
	assert.False(t, m.RevealVisible())

	out := ansi.Strip(m.View())
	assert.NotContains(t, out, ClearControl)
	assert.NotContains(t, out, ShowControl)

	assert.Nil(t, m.Focus())
	assert.False(t, m.Focused())
	m = typeText(m, "x")
	assert.False(t, m.Input("other"))
	assert.False(t, m.Clear())
	assert.False(t, m.ToggleReveal())
	assert.Equal(t, "hello", m.Value())
	assert.Empty(t, c.values)
}

func TestMessageExclusivity(t *testing.T) {
	tests := []struct {
		name     string
		props    Props
		wantText string
		wantKind MessageKind
		absent   string
	}{
		{
			name:     "error wins when invalid",
			props:    Props{Invalid: true, ErrorMessage: "Required", HelperText: "Info"},
			wantText: "Required",
			wantKind: MessageError,
			absent:   "Info",
		},
		{
			name:     "helper when valid",
			props:    Props{ErrorMessage: "Required", HelperText: "Info"},
			wantText: "Info",
			wantKind: MessageHelper,
			absent:   "Required",
		},
		{
			name:     "helper when invalid without error message",
			props:    Props{Invalid: true, HelperText: "Info"},
			wantText: "Info",
			wantKind: MessageHelper,
		},
		{
			name:     "nothing",
			props:    Props{Invalid: true},
			wantKind: MessageNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.props)
			text, kind := m.Message()
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantKind, kind)

			out := ansi.Strip(m.View())
			if tt.wantText != "" {
				assert.Contains(t, out, tt.wantText)
			}
			if tt.absent != "" {
				assert.NotContains(t, out, tt.absent)
			}
		})
	}
}

func TestSetPropsKeepsValue(t *testing.T) {
	m := New(Props{Value: "seed"})
	m.Input("edited")

	m.SetProps(Props{Value: "external", Label: "Name"})
	assert.Equal(t, "edited", m.Value())
	assert.Contains(t, ansi.Strip(m.View()), "Name")
}

func TestSetPropsDisabledBlurs(t *testing.T) {
	m := New(Props{})
	m.Focus()
	require.True(t, m.Focused())

	m.SetProps(Props{Disabled: true})
	assert.False(t, m.Focused())
}

func TestViewLabelAndPlaceholder(t *testing.T) {
	m := New(Props{Label: "Username", Placeholder: "Enter your username"})
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Username")
	assert.Contains(t, out, "Enter")
}

func TestVariantsAndSizesRender(t *testing.T) {
	for _, v := range []Variant{Outlined, Filled, Ghost} {
		for _, s := range []Size{Small, Medium, Large} {
			m := New(Props{Value: "abc", Variant: v, Size: s})
			assert.Contains(t, ansi.Strip(m.View()), "abc", "variant %s size %s", v, s)
		}
	}
}

func TestHelpKeys(t *testing.T) {
	m := New(Props{Value: "x", Clearable: true})
	k := m.HelpKeys()
	assert.True(t, k.Clear.Enabled())
	assert.False(t, k.Reveal.Enabled())
}

func TestParse(t *testing.T) {
	v, err := ParseVariant("ghost")
	require.NoError(t, err)
	assert.Equal(t, Ghost, v)
	_, err = ParseVariant("dotted")
	assert.Error(t, err)

	s, err := ParseSize("lg")
	require.NoError(t, err)
	assert.Equal(t, Large, s)
	_, err = ParseSize("xl")
	assert.Error(t, err)
}
