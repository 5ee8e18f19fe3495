package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/linkaudit/internal/tui"
	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a --format value. An empty value selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, json or yaml): %w", s, linkaudit.ErrUsage)
	}
}

// Renderer writes a result to w.
type Renderer interface {
	Render(w io.Writer, result linkaudit.Result) error
}

// New returns the renderer for format. styled only affects the text format.
func New(format Format, styled bool) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &TextRenderer{Styled: styled}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: %w", format, linkaudit.ErrUsage)
	}
}

const (
	errorsHeading = "Errors found:"
	noErrorsLine  = "No obvious data errors found."
)

// TextRenderer prints the summary lines followed by the findings.
type TextRenderer struct {
	// Styled forces ANSI styling regardless of w.
	Styled bool
}

func (t *TextRenderer) Render(w io.Writer, result linkaudit.Result) error {
	var b strings.Builder
	if t.Styled {
		writeStyled(&b, tui.NewStyles(tui.NewRenderer(w, true)), result)
	} else {
		writePlain(&b, result)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func summaryLines(result linkaudit.Result) (string, string) {
	return fmt.Sprintf("Total %s found: %d", result.PrimaryField, result.PrimaryCount),
		fmt.Sprintf("Total %s in %s: %d", result.ViolationLabel, result.PrimaryField, result.ViolationCount)
}

func writePlain(b *strings.Builder, result linkaudit.Result) {
	total, violations := summaryLines(result)
	fmt.Fprintln(b, total)
	fmt.Fprintln(b, violations)

	if !result.HasFindings() {
		fmt.Fprintln(b, noErrorsLine)
		return
	}
	fmt.Fprintln(b, errorsHeading)
	for _, f := range result.Findings {
		fmt.Fprintln(b, f.String())
	}
}

func writeStyled(b *strings.Builder, st tui.Styles, result linkaudit.Result) {
	total, violations := summaryLines(result)
	fmt.Fprintln(b, st.Summary.Render(total))
	fmt.Fprintln(b, st.Summary.Render(violations))

	if !result.HasFindings() {
		fmt.Fprintln(b, st.Success.Render(tui.SymbolCheck+" "+noErrorsLine))
		return
	}
	fmt.Fprintln(b, st.Heading.Render(tui.SymbolCross+" "+errorsHeading))
	for _, f := range result.Findings {
		fmt.Fprintln(b, st.LineNumber.Render(fmt.Sprintf("Line %d:", f.Line))+" "+st.Finding.Render(f.Message))
	}
}

// JSONRenderer writes the result as an indented JSON document.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, result linkaudit.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// YAMLRenderer writes the result as a YAML document.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, result linkaudit.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return enc.Close()
}

var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = JSONRenderer{}
	_ Renderer = YAMLRenderer{}
)
