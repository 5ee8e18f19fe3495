// Package loader reads a data file into an ordered sequence of lines.
//
// The loader package is responsible for:
//   - Reading the whole file in one call, so the handle is released before scanning
//   - Rejecting content that is not valid UTF-8
//   - Splitting content into 1-based numbered lines
//
// Every failure wraps linkaudit.ErrUnreadableInput; there is no partial result.
package loader
