package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// Styles for the text report.
type Styles struct {
	Summary    lipgloss.Style
	Heading    lipgloss.Style
	LineNumber lipgloss.Style
	Finding    lipgloss.Style
	Success    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. When force is true the
// renderer emits ANSI colors even if w is not a terminal.
func NewRenderer(w io.Writer, force bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// NewStyles builds the report styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Summary: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Heading: r.NewStyle().
			Bold(true).
			Foreground(ColorError),
		LineNumber: r.NewStyle().
			Foreground(ColorSecondary),
		Finding: r.NewStyle().
			Foreground(ColorError),
		Success: r.NewStyle().
			Foreground(ColorSuccess),
	}
}
