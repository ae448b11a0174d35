// Package logging builds the structured loggers used across the module.
// Loggers are log/slog based, JSON by default and key=value text on request,
// and can be bridged to go-logr for consumers that expect a logr.Logger.
package logging
