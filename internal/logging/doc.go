// Package logging builds the slog loggers used across sieve.
//
// Two handlers are provided: a console handler that prints a header line and
// one indented line per field, and a JSON handler for machine consumption.
// Each CLI run tags its logger with a correlation ID taken from the context.
//
// Logs go to stderr by default so report output on stdout stays
// machine-readable.
package logging
