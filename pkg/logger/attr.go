package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// maxInputAttrLen caps how much of a calculator input ends up in a log line.
const maxInputAttrLen = 256

// Input records a calculator input under the key "input", truncated to a
// bounded length so that large payloads do not flood the logs.
func Input(s string) slog.Attr {
	if len(s) > maxInputAttrLen {
		s = s[:maxInputAttrLen] + "..."
	}
	return slog.String("input", s)
}

// Sum records a computed sum under the key "sum".
func Sum(n int) slog.Attr {
	return slog.Int("sum", n)
}

// ErrorKind records the class of a rejected input under the key "error_kind".
func ErrorKind(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("error_kind", kind)
}

// CacheHit records whether a result was served from cache.
func CacheHit(hit bool) slog.Attr {
	return slog.Bool("cache_hit", hit)
}

// BatchSize records the number of items in a batch request.
func BatchSize(n int) slog.Attr {
	return slog.Int("batch_size", n)
}
