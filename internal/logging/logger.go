package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SEGSTRIP_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output instead of stderr.
const LogFileEnvVar = "SEGSTRIP_LOG_FILE"

// Initialize creates a new logger with the specified level, writing to output.
// If level is empty, it checks the SEGSTRIP_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
// An empty output falls back to SEGSTRIP_LOG_FILE, then to stderr.
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if output == "" {
		output = os.Getenv(LogFileEnvVar)
	}
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from SEGSTRIP_LOG_LEVEL and
// SEGSTRIP_LOG_FILE. This keeps CLI commands silent by default.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogGesture logs a pan gesture transition or sample.
func LogGesture(phase string, x, offset float64) {
	Debug("Pan gesture",
		zap.String("phase", phase),
		zap.Float64("x", x),
		zap.Float64("scroll_offset", offset),
	)
}

// LogSelection logs a selection change. Source is "user" for click-confirmed
// changes and "programmatic" for SelectSegment calls.
func LogSelection(index int, source string) {
	Info("Segment selected",
		zap.Int("index", index),
		zap.String("source", source),
	)
}

// LogLayout logs a layout pass.
func LogLayout(segments, displayCount int, segmentWidth, offset float64) {
	Debug("Strip layout",
		zap.Int("segments", segments),
		zap.Int("display_count", displayCount),
		zap.Float64("segment_width", segmentWidth),
		zap.Float64("scroll_offset", offset),
	)
}

// LogIgnored logs input that was rejected without changing state.
func LogIgnored(what string, fields ...zap.Field) {
	Warn("Ignored "+what, fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
