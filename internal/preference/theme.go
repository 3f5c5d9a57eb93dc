package preference

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the persisted display preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the single preference key shared by every backend.
const Key = "preferred-theme"

// ErrUnknownTheme is returned when a stored or supplied value is neither
// "light" nor "dark".
var ErrUnknownTheme = errors.New("unknown theme")

// ParseTheme converts s to a Theme. Matching ignores case and surrounding space.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// FromDark maps the ambient "prefers dark" signal to a Theme.
func FromDark(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == Dark }

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }
