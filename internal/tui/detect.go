package tui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the user's choice for styled output.
type ColorMode string

const (
	// ColorAuto styles output only when a human is at the terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output even when piped.
	ColorAlways ColorMode = "always"
	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a --color value. An empty value selects ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (expected auto, always or never)", s)
	}
}

// UseColor decides whether output written to f should be styled.
//
// With ColorAuto it returns false if:
//   - NO_COLOR is set (https://no-color.org)
//   - CI is set (common CI/CD convention)
//   - f is nil or not a terminal
func UseColor(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
