// Package checksum provides file content hashing with normalization support.
//
// Reports carry two digests of the audited file:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after normalizing line endings and trailing
//     whitespace, so a file re-saved by an editor with different line endings
//     keeps the same content identity
//
// # Normalization Strategy
//
//  1. Convert CRLF and lone CR line endings to LF
//  2. Trim trailing spaces and tabs from every line
//  3. Drop trailing blank lines
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
