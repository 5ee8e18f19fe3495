// Package services orchestrates an audit: load the data file, run the
// engine selected by mode, and stamp the result with checksums and
// finding IDs.
package services
