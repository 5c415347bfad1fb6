package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetModeSwitchesLevel(t *testing.T) {
	SetMode("debug")
	if Level() != zap.DebugLevel {
		t.Fatalf("expected debug level, got %v", Level())
	}
	SetMode("release")
	if Level() != zap.InfoLevel {
		t.Fatalf("expected info level, got %v", Level())
	}
}

func TestDefaultLoggerIsSafe(t *testing.T) {
	if Log == nil {
		t.Fatalf("expected default logger")
	}
	Log.Info("no-op logger accepts writes", zap.String("k", "v"))
}
