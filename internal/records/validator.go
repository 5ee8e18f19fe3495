package records

import (
	"sort"
	"strings"

	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// Validator runs the product-link checks on parsed records.
// Validator holds no state between scans and is safe for concurrent use.
type Validator struct{}

// NewValidator creates a structural validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Scan parses src and validates every record against rules.
//
// Checks, per record:
//   - each non-optional primary property is counted
//   - a primary or secondary string value containing a forbidden host is a finding;
//     only primary ones increment the violation counter
//   - an unterminated primary property that is not the last property of its
//     record is a missing-separator finding
//
// Syntax errors become findings too. Findings are ordered by line.
func (v *Validator) Scan(src linkaudit.Source, rules linkaudit.Rules) linkaudit.Result {
	result := linkaudit.Result{
		Source:         src.Path,
		Mode:           linkaudit.ModeStructural,
		PrimaryField:   rules.PrimaryField,
		ViolationLabel: rules.ViolationLabel(),
		Findings:       []linkaudit.Finding{},
	}

	doc := Parse(string(src.Content), rules.Separator)
	text := func(line int) string {
		if line >= 1 && line <= len(src.Lines) {
			return strings.TrimSpace(src.Lines[line-1].Text)
		}
		return ""
	}

	for _, rec := range doc.Records {
		for i, prop := range rec.Properties {
			switch prop.Key {
			case rules.PrimaryField:
				if prop.Optional {
					continue
				}
				result.PrimaryCount++
				stripped := text(prop.Line)

				if d, ok := matchValue(rules, prop); ok {
					result.ViolationCount++
					result.Findings = append(result.Findings, linkaudit.Finding{
						Line:    prop.Line,
						Column:  prop.Column,
						Kind:    linkaudit.KindForbiddenDomain,
						Field:   rules.PrimaryField,
						Text:    stripped,
						Message: linkaudit.ForbiddenMessage(rules.PrimaryField, d, stripped),
					})
				}

				if !prop.Terminated && i < len(rec.Properties)-1 {
					result.Findings = append(result.Findings, linkaudit.Finding{
						Line:    prop.Line,
						Column:  prop.Column,
						Kind:    linkaudit.KindMissingSeparator,
						Field:   rules.PrimaryField,
						Text:    stripped,
						Message: linkaudit.MissingSeparatorMessage(rules.PrimaryField, stripped),
					})
				}

			case rules.SecondaryField:
				if d, ok := matchValue(rules, prop); ok {
					stripped := text(prop.Line)
					result.Findings = append(result.Findings, linkaudit.Finding{
						Line:    prop.Line,
						Column:  prop.Column,
						Kind:    linkaudit.KindForbiddenDomain,
						Field:   rules.SecondaryField,
						Text:    stripped,
						Message: linkaudit.ForbiddenMessage(rules.SecondaryField, d, stripped),
					})
				}
			}
		}
	}

	for _, serr := range doc.Errors {
		result.Findings = append(result.Findings, linkaudit.Finding{
			Line:    serr.Line,
			Column:  serr.Column,
			Kind:    linkaudit.KindSyntax,
			Text:    text(serr.Line),
			Message: serr.Error(),
		})
	}

	sort.SliceStable(result.Findings, func(i, j int) bool {
		return result.Findings[i].Line < result.Findings[j].Line
	})

	return result
}

// matchValue checks a string-valued property against the forbidden domains.
func matchValue(rules linkaudit.Rules, prop Property) (linkaudit.ForbiddenDomain, bool) {
	if !prop.IsString {
		return linkaudit.ForbiddenDomain{}, false
	}
	return rules.MatchForbidden(prop.Value)
}

// Verify Validator implements the interface at compile time
var _ linkaudit.Engine = (*Validator)(nil)
