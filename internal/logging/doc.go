// Package logging assembles structured slog loggers and formatting helpers used
// across voiceconv.
//
// It owns the configurable console/JSON handlers, routes output to stderr and
// an optional size-rotated log file, and exposes context-aware helpers so
// conversion code can tag log lines with correlation IDs and profile names.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
package logging
