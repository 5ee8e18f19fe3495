// Package logging provides concrete implementations of the linkaudit.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Reports go to stdout; loggers never write there, so stdout stays
// machine-consumable.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
