// Package scanner implements the line-based product-link check.
//
// The scanner treats a data file purely as lines of text. It trims each
// line and looks for field markers:
//   - primary field lines are counted, checked for forbidden domains and
//     checked for a trailing separator
//   - secondary field lines are checked for forbidden domains only
//
// The separator check is a heuristic: an unterminated primary field is
// accepted when the next line starts with the secondary field or a closing
// brace. Use the records package when field order is not guaranteed.
package scanner
