package types

// Logger defines methods for structured logging.
//
// All methods accept a message followed by alternating key-value pairs, the
// convention log/slog uses for its sugared call sites. The engine and the
// roster store log only through this interface, so callers can plug in any
// backend or silence output entirely with a no-op implementation.
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(msg string, keysAndValues ...any)

	// Info logs normal operational events: runs starting, files loaded,
	// assignments produced.
	Info(msg string, keysAndValues ...any)

	// Warn logs recoverable oddities, such as skipped history rows or a
	// missing previous-assignments file.
	Warn(msg string, keysAndValues ...any)

	// Error logs failures that abort the current operation.
	Error(msg string, keysAndValues ...any)

	// Fatal logs an unrecoverable failure and then calls os.Exit(1).
	// Library code never calls Fatal; it exists for binaries that treat
	// certain failures as unconditionally terminal.
	Fatal(msg string, keysAndValues ...any)
}
