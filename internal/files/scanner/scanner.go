package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// Scanner runs the line-based checks.
// Scanner holds no state between scans and is safe for concurrent use.
type Scanner struct{}

// NewScanner creates a line scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan checks every line of src against rules. Findings are returned in
// detection order: by line, and within a line primary checks come before
// secondary checks.
func (s *Scanner) Scan(src linkaudit.Source, rules linkaudit.Rules) linkaudit.Result {
	result := linkaudit.Result{
		Source:         src.Path,
		Mode:           linkaudit.ModeLine,
		PrimaryField:   rules.PrimaryField,
		ViolationLabel: rules.ViolationLabel(),
		Findings:       []linkaudit.Finding{},
	}

	primary := rules.PrimaryMarker()
	secondary := rules.SecondaryMarker()

	for i, line := range src.Lines {
		stripped := strings.TrimSpace(line.Text)

		if strings.Contains(stripped, primary) {
			result.PrimaryCount++
			col := column(line.Text, primary)

			if d, ok := rules.MatchForbidden(stripped); ok {
				result.ViolationCount++
				result.Findings = append(result.Findings, linkaudit.Finding{
					Line:    line.Number,
					Column:  col,
					Kind:    linkaudit.KindForbiddenDomain,
					Field:   rules.PrimaryField,
					Text:    stripped,
					Message: linkaudit.ForbiddenMessage(rules.PrimaryField, d, stripped),
				})
			}

			if !strings.HasSuffix(stripped, rules.Separator) && i+1 < len(src.Lines) {
				next := strings.TrimSpace(src.Lines[i+1].Text)
				if !strings.HasPrefix(next, secondary) && !strings.HasPrefix(next, rules.ClosingBrace) {
					result.Findings = append(result.Findings, linkaudit.Finding{
						Line:    line.Number,
						Column:  col,
						Kind:    linkaudit.KindMissingSeparator,
						Field:   rules.PrimaryField,
						Text:    stripped,
						Message: linkaudit.MissingSeparatorMessage(rules.PrimaryField, stripped),
					})
				}
			}
		}

		if strings.Contains(stripped, secondary) {
			if d, ok := rules.MatchForbidden(stripped); ok {
				result.Findings = append(result.Findings, linkaudit.Finding{
					Line:    line.Number,
					Column:  column(line.Text, secondary),
					Kind:    linkaudit.KindForbiddenDomain,
					Field:   rules.SecondaryField,
					Text:    stripped,
					Message: linkaudit.ForbiddenMessage(rules.SecondaryField, d, stripped),
				})
			}
		}
	}

	return result
}

// column is the 1-based rune column of marker in text.
func column(text, marker string) int {
	return utf8.RuneCountInString(text[:strings.Index(text, marker)]) + 1
}

// Verify Scanner implements the interface at compile time
var _ linkaudit.Engine = (*Scanner)(nil)
