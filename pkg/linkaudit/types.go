package linkaudit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Line is one line of the data file with its 1-based position.
type Line struct {
	Number int
	Text   string
}

// FindingKind classifies a suspected data problem.
type FindingKind string

const (
	// KindForbiddenDomain marks a URL field whose value points to a forbidden host.
	KindForbiddenDomain FindingKind = "forbidden-domain"

	// KindMissingSeparator marks a primary field that is probably not followed by a separator.
	KindMissingSeparator FindingKind = "missing-separator"

	// KindSyntax marks content the structural parser could not tokenize.
	KindSyntax FindingKind = "syntax"
)

// Finding is a suspected data-quality issue. Findings are created during a
// scan and never mutated; report order is detection order.
type Finding struct {
	ID      uuid.UUID   `json:"id" yaml:"id"`
	Line    int         `json:"line" yaml:"line"`
	Column  int         `json:"column,omitempty" yaml:"column,omitempty"`
	Kind    FindingKind `json:"kind" yaml:"kind"`
	Field   string      `json:"field,omitempty" yaml:"field,omitempty"`
	Text    string      `json:"text" yaml:"text"`
	Message string      `json:"message" yaml:"message"`
}

// String renders the finding the way the text report prints it.
func (f Finding) String() string {
	return fmt.Sprintf("Line %d: %s", f.Line, f.Message)
}

// findingNamespace scopes finding IDs so they never collide with other UUIDv5 users.
var findingNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vvka-141/linkaudit/finding"))

// FindingID derives a stable identifier for a finding from where it was
// found and what it is. Identical inputs always produce the same ID, so
// repeated runs over an unchanged file report identical IDs. Column keeps
// same-line findings of one kind apart.
func FindingID(source string, f Finding) uuid.UUID {
	name := strings.Join([]string{source, strconv.Itoa(f.Line), strconv.Itoa(f.Column), string(f.Kind), f.Field}, "\x00")
	return uuid.NewSHA1(findingNamespace, []byte(name))
}

// Mode selects the scanning engine.
type Mode string

const (
	// ModeLine treats the data file as plain lines and matches substrings.
	ModeLine Mode = "line"

	// ModeStructural tokenizes the data file and validates parsed records.
	ModeStructural Mode = "structural"
)

// ParseMode converts a user-supplied mode name. An empty name selects ModeLine.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLine:
		return ModeLine, nil
	case ModeStructural:
		return ModeStructural, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q): %w", s, ModeLine, ModeStructural, ErrUsage)
	}
}

// ForbiddenDomain is a host that must not appear in a URL field, with the
// name reports use for it.
type ForbiddenDomain struct {
	Host  string `yaml:"host" json:"host"`
	Label string `yaml:"label" json:"label"`
}

// DisplayName returns Label, or Host when no label is set.
func (d ForbiddenDomain) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Host
}

// Rules describes which fields are checked and what counts as a violation.
type Rules struct {
	PrimaryField     string
	SecondaryField   string
	ForbiddenDomains []ForbiddenDomain
	Separator        string
	ClosingBrace     string
}

// DefaultRules returns the rules for product-link data files.
func DefaultRules() Rules {
	return Rules{
		PrimaryField:   DefaultPrimaryField,
		SecondaryField: DefaultSecondaryField,
		ForbiddenDomains: []ForbiddenDomain{
			{Host: DefaultForbiddenHost, Label: DefaultForbiddenLabel},
		},
		Separator:    DefaultSeparator,
		ClosingBrace: DefaultClosingBrace,
	}
}

// Validate checks that every rule is usable.
// It returns a multi-error if multiple validation failures occur.
func (r Rules) Validate() error {
	var errs []error

	if strings.TrimSpace(r.PrimaryField) == "" {
		errs = append(errs, fmt.Errorf("primary field is required: %w", ErrInvalidConfig))
	}
	if strings.TrimSpace(r.SecondaryField) == "" {
		errs = append(errs, fmt.Errorf("secondary field is required: %w", ErrInvalidConfig))
	}
	if r.PrimaryField != "" && r.PrimaryField == r.SecondaryField {
		errs = append(errs, fmt.Errorf("primary and secondary field must differ (both %q): %w", r.PrimaryField, ErrInvalidConfig))
	}
	if len(r.ForbiddenDomains) == 0 {
		errs = append(errs, fmt.Errorf("at least one forbidden domain is required: %w", ErrInvalidConfig))
	}
	for i, d := range r.ForbiddenDomains {
		if strings.TrimSpace(d.Host) == "" {
			errs = append(errs, fmt.Errorf("forbidden domain %d has an empty host: %w", i, ErrInvalidConfig))
		}
	}
	if r.Separator == "" {
		errs = append(errs, fmt.Errorf("separator is required: %w", ErrInvalidConfig))
	}
	if r.ClosingBrace == "" {
		errs = append(errs, fmt.Errorf("closing brace is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// PrimaryMarker is the substring that identifies a primary field line.
func (r Rules) PrimaryMarker() string { return r.PrimaryField + ":" }

// SecondaryMarker is the substring that identifies a secondary field line.
func (r Rules) SecondaryMarker() string { return r.SecondaryField + ":" }

// MatchForbidden returns the first forbidden domain whose host occurs in s.
func (r Rules) MatchForbidden(s string) (ForbiddenDomain, bool) {
	for _, d := range r.ForbiddenDomains {
		if d.Host != "" && strings.Contains(s, d.Host) {
			return d, true
		}
	}
	return ForbiddenDomain{}, false
}

// ViolationLabel names the forbidden domains in summary lines.
func (r Rules) ViolationLabel() string {
	names := make([]string, 0, len(r.ForbiddenDomains))
	for _, d := range r.ForbiddenDomains {
		names = append(names, d.DisplayName())
	}
	return strings.Join(names, " or ")
}

// ForbiddenMessage is the finding message for a field pointing to a forbidden domain.
func ForbiddenMessage(field string, d ForbiddenDomain, text string) string {
	return fmt.Sprintf("%s points to %s! %s", field, d.DisplayName(), text)
}

// MissingSeparatorMessage is the finding message for a field that probably lacks a separator.
func MissingSeparatorMessage(field, text string) string {
	return fmt.Sprintf("%s missing comma? %s", field, text)
}

// Result is the outcome of one scan. Counters and findings belong to the
// scan that produced them.
type Result struct {
	Source          string    `json:"source" yaml:"source"`
	Mode            Mode      `json:"mode" yaml:"mode"`
	Checksum        string    `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	ContentChecksum string    `json:"content_checksum,omitempty" yaml:"content_checksum,omitempty"`
	PrimaryField    string    `json:"primary_field" yaml:"primary_field"`
	PrimaryCount    int       `json:"primary_count" yaml:"primary_count"`
	ViolationLabel  string    `json:"violation_label" yaml:"violation_label"`
	ViolationCount  int       `json:"violation_count" yaml:"violation_count"`
	Findings        []Finding `json:"findings" yaml:"findings"`
}

// HasFindings reports whether the scan recorded any finding.
func (r Result) HasFindings() bool {
	return len(r.Findings) > 0
}

// Source is a loaded data file.
type Source struct {
	Path    string
	Content []byte
	Lines   []Line
}

// SourceLoader reads a data file in full and splits it into lines.
// Implementations must return an error wrapping ErrUnreadableInput when the
// file cannot be read.
type SourceLoader interface {
	Load(path string) (Source, error)
}

// Engine scans a loaded source and returns counters and findings.
// Engines never fail on content: malformed input yields findings, not errors.
type Engine interface {
	Scan(src Source, rules Rules) Result
}

// Auditor runs a complete audit of one data file.
type Auditor interface {
	Audit(ctx context.Context, path string) (Result, error)
}
