// Package logging provides structured logging for segstrip.
//
// This package wraps a zap logger with convenience functions for the logging
// patterns used throughout the module. It provides both general logging
// functions and specialized functions for strip events (gestures, selection
// changes and layout passes).
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Per-sample gesture tracking, layout passes, settle frames
//   - Info: Selection changes, configuration loads, replay runs
//   - Warn: Ignored input (out-of-range indices, stale segments)
//   - Error: Startup failures
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.Info("Strip configured",
//	    zap.Int("segments", 12),
//	    zap.Float64("segment_width", 26.5),
//	)
//
// # Specialized Logging
//
//	logging.LogGesture("tracking", 12.0, 4.5)
//	logging.LogSelection(3, "user")
//	logging.LogLayout(12, 3, 26.5, 0)
//
// # Configuration
//
// Logging is silent unless SEGSTRIP_LOG_LEVEL is set. The interactive demo owns
// the terminal, so output can be redirected with SEGSTRIP_LOG_FILE:
//
//	SEGSTRIP_LOG_LEVEL=debug SEGSTRIP_LOG_FILE=/tmp/segstrip.log segstrip demo
//
// Initialize once at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
