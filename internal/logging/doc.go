// Package logging builds the slog loggers used by SourceHub commands.
//
// A command logs to a file under the data directory in console or JSON
// format and echoes warnings to stderr. Lines carry the owning component, the
// collection being worked on, and a per-command correlation id.
package logging
