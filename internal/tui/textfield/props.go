// Package textfield provides a labeled text input component for bubbletea programs.
//
// The field keeps its own copy of the text. Props.Value seeds that copy when the field
// is created; later props never overwrite what the user typed.
package textfield

import (
	"fmt"
	"strings"
)

// Variant selects the visual treatment of the input box.
type Variant int

const (
	Outlined Variant = iota
	Filled
	Ghost
)

func (v Variant) String() string {
	switch v {
	case Filled:
		return "filled"
	case Ghost:
		return "ghost"
	default:
		return "outlined"
	}
}

// Size selects padding and width of the input box.
type Size int

const (
	Medium Size = iota
	Small
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "sm"
	case Large:
		return "lg"
	default:
		return "md"
	}
}

// Kind is the input type.
type Kind int

const (
	Text Kind = iota
	Password
)

func (k Kind) String() string {
	if k == Password {
		return "password"
	}
	return "text"
}

// ParseVariant parses "filled", "outlined" or "ghost".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "outlined":
		return Outlined, nil
	case "filled":
		return Filled, nil
	case "ghost":
		return Ghost, nil
	default:
		return Outlined, fmt.Errorf("invalid variant %q", s)
	}
}

// ParseSize parses "sm", "md" or "lg" (or small, medium, large).
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "medium":
		return Medium, nil
	case "sm", "small":
		return Small, nil
	case "lg", "large":
		return Large, nil
	default:
		return Medium, fmt.Errorf("invalid size %q", s)
	}
}

// Props configures a text field.
type Props struct {
	// Value seeds the field text once, when the field is created.
	Value string

	// OnChange is called synchronously with the new text after every edit and clear.
	OnChange func(value string)

	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string

	Disabled       bool
	Invalid        bool
	Clearable      bool
	PasswordToggle bool

	Variant Variant
	Size    Size
	Kind    Kind
}

// MessageKind identifies the text shown under the input.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageHelper
	MessageError
)

// message picks the single line shown under the input. The error wins only when the
// field is invalid and has an error message.
func (p Props) message() (string, MessageKind) {
	switch {
	case p.Invalid && p.ErrorMessage != "":
		return p.ErrorMessage, MessageError
	case p.HelperText != "":
		return p.HelperText, MessageHelper
	default:
		return "", MessageNone
	}
}
