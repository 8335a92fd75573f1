package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Cleanup(func() { SetLogger(nil) })

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is set")
	}
}

func TestInitializeWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segstrip.log")
	t.Setenv(LogLevelEnvVar, "debug")
	t.Setenv(LogFileEnvVar, path)
	t.Cleanup(func() { SetLogger(nil) })

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	LogLayout(5, 3, 30, 0)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Strip layout") {
		t.Errorf("log file missing layout entry:\n%s", data)
	}
}

func TestDomainHelpers(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogGesture("began", 12.5, 0)
	LogSelection(2, "user")
	LogIgnored("selection", zap.Int("index", 9))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	if entries[0].Message != "Pan gesture" || entries[0].ContextMap()["phase"] != "began" {
		t.Errorf("gesture entry = %+v", entries[0])
	}
	if entries[1].Level != zapcore.InfoLevel || entries[1].ContextMap()["index"] != int64(2) {
		t.Errorf("selection entry = %+v", entries[1])
	}
	if entries[2].Level != zapcore.WarnLevel || entries[2].Message != "Ignored selection" {
		t.Errorf("ignored entry = %+v", entries[2])
	}
}

func TestGetLoggerFallback(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil")
	}
	Info("not recorded")
}
