package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Function records the name of a guarded function under the key "function".
// An empty name yields an empty Attr.
func Function(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("function", name)
}

// GuardPosition groups the position ("argument" or "result") and index of a
// guard under the key "guard".
func GuardPosition(position string, index int) slog.Attr {
	return slog.Group("guard",
		slog.String("position", position),
		slog.Int("index", index),
	)
}

// Value records a validated value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Command records the CLI command under the key "command".
// An empty name yields an empty Attr.
func Command(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("command", name)
}
