// Package filesystem provides a small file access abstraction.
//
// The audit reads exactly one data file, so the abstraction only covers
// reading a file in full and inspecting its metadata. Tests swap the OS
// implementation for an in-memory one.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
