package logger

import "log/slog"

// Current exposes the package logger so tests can restore it.
func Current() *slog.Logger {
	return defaultLogger
}
