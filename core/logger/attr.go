package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit
// nil checks, following the principle of making zero values useful.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Notice creates an attribute for notification template names.
func Notice(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("notice", name)
}

// Recipient creates an attribute for notification recipients.
func Recipient(address string) slog.Attr {
	if address == "" {
		return slog.Attr{}
	}
	return slog.String("recipient", address)
}

// Tag creates an attribute for message tags.
func Tag(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("tag", tag)
}
