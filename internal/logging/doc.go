// Package logging assembles the structured slog loggers used across
// lstmosaic commands.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes typed attribute helpers so command code emits key/value pairs with
// a consistent shape. A no-op logger is provided for tests and wiring code
// that cannot fail.
package logging
