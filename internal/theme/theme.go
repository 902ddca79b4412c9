// Package theme owns the visitor's light/dark preference: where it is
// persisted, how the host's color-scheme hint feeds into it, and how every
// change is pushed to the presentation layer.
package theme

import "fmt"

// Theme is the presentation mode of the site.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used when neither a persisted preference nor a system hint is
// available.
const Default = Dark

// PreferenceKey is the key the theme is persisted under.
const PreferenceKey = "theme"

// Parse converts a stored or transmitted string into a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be one of light, dark", s)
	}
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Complement returns the opposite theme.
func (t Theme) Complement() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// ClassName is the root element class marking the theme.
func (t Theme) ClassName() string {
	if t == Light {
		return "light-mode"
	}
	return "dark-mode"
}

// Color is the browser chrome color advertised through the theme-color meta tag.
func (t Theme) Color() string {
	if t == Light {
		return "#f6f7f9"
	}
	return "#171a1f"
}

func (t Theme) String() string { return string(t) }
