// Package logging constructs the slog loggers used across pdfsqueeze.
//
// It supports console (text) and JSON output with lenient level parsing, and
// can mirror output into the configured log directory.
package logging
