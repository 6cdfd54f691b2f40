// Package logger provides structured logging utilities built on Go's
// standard slog package: a small factory with environment presets and
// pre-built attributes for the notification pipeline.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/notifykit/core/logger"
//
//	log := logger.New(logger.WithProduction("notifykit"))
//
//	log.Info("notice handed off",
//		logger.Notice("config_file_deprecation"),
//		logger.Recipient("admin@example.com"),
//		logger.Count("projects", 2),
//	)
//
// Attribute helpers return an empty Attr for zero values, so they can be
// passed unconditionally without nil checks.
package logger
