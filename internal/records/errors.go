package records

import "fmt"

// SyntaxError describes content the lexer or parser could not make sense
// of. Parsing continues after a SyntaxError; it never aborts a scan.
type SyntaxError struct {
	Line    int    // Line number (1-based)
	Column  int    // Column number (1-based, 0 if unknown)
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var location string
	if e.Column > 0 {
		location = fmt.Sprintf("line %d, col %d", e.Line, e.Column)
	} else {
		location = fmt.Sprintf("line %d", e.Line)
	}

	msg := fmt.Sprintf("syntax error (%s): %s", location, e.Message)
	if e.Hint != "" {
		msg += " (hint: " + e.Hint + ")"
	}
	return msg
}
