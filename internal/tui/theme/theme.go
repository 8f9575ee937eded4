// Package theme provides color themes for the widgets.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Auto selects dark or light from the terminal background.
const Auto = "auto"

// Theme holds all colors for a widget theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header row, filled inputs
	BgSelection string `toml:"bg_selection"` // Cursor row, selected rows
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Placeholders, helper text
	Accent      string `toml:"accent"`       // Focus ring, sort indicator
	Danger      string `toml:"danger"`       // Invalid state, error text
	Border      string `toml:"border"`       // Table and input borders
	InputBg     string `toml:"input_bg"`     // Filled variant background
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// "auto" resolves to dark or light from the terminal background.
// Unknown names fall back to dark.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == Auto {
		name = Resolve(termenv.HasDarkBackground())
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != "dark" {
			return Load("dark")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// Resolve maps a dark-background flag to a theme name.
func Resolve(darkBackground bool) string {
	if darkBackground {
		return "dark"
	}
	return "light"
}

func (t *Theme) applyDefaults() {
	if t.BgHighlight == "" {
		t.BgHighlight = t.Bg
	}
	if t.BgSelection == "" {
		t.BgSelection = coalesce(t.BgHighlight, t.Accent)
	}
	if t.FgMuted == "" {
		t.FgMuted = t.Fg
	}
	if t.Border == "" {
		t.Border = coalesce(t.FgMuted, t.Fg)
	}
	if t.InputBg == "" {
		t.InputBg = t.BgHighlight
	}
	if t.Danger == "" {
		t.Danger = "#dc2626"
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of theme names accepted by Load.
func Available() []string {
	return []string{Auto, "dark", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
