package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// View records which derived view was computed ("summary", "breakdown").
func View(name string) slog.Attr {
	return slog.String("view", name)
}

// Rule records a rule name under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Rules records the size of a rule pipeline under "rules".
func Rules(n int) slog.Attr {
	return slog.Int("rules", n)
}

// Success records a verdict outcome under "success".
func Success(ok bool) slog.Attr {
	return slog.Bool("success", ok)
}

// ValueLength records the byte length of an observed value.
// Values themselves are not logged.
func ValueLength(value string) slog.Attr {
	return slog.Int("value_len", len(value))
}

// RequestID records the request identifier under "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
