package logging

import "log/slog"

type Attr = slog.Attr

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger tags logger with the component that owns its lines.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

const (
	// FieldEventType classifies a warning for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to do next.
	FieldErrorHint = "error_hint"
	// FieldImpact says what the user loses because of the warning.
	FieldImpact = "impact"
)

// WarnWithContext logs a warning that always carries event_type, error_hint,
// and impact. Hint and impact fall back to generic text when attrs omit them.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	fields := map[string]bool{}
	for _, a := range attrs {
		fields[a.Key] = true
	}
	if !fields[FieldEventType] {
		attrs = append(attrs, String(FieldEventType, eventType))
	}
	if !fields[FieldErrorHint] {
		attrs = append(attrs, String(FieldErrorHint, "check the log file for details"))
	}
	if !fields[FieldImpact] {
		attrs = append(attrs, String(FieldImpact, "the command continued with defaults"))
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	logger.Warn(msg, args...)
}
