package logger

import (
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"warn", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"error", zapcore.ErrorLevel},
		{"FATAL", zapcore.FatalLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.InfoLevel},
		{"INVALID", zapcore.InfoLevel}, // Should default to INFO
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result := parseLevel(test.input)
			if result != test.expected {
				t.Errorf("parseLevel(%q): expected %v, got %v", test.input, test.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	log := New("test")
	if log == nil {
		t.Fatal("Expected logger to be created")
	}

	if log.Desugar().Name() != "test" {
		t.Errorf("Expected logger name 'test', got %q", log.Desugar().Name())
	}
}

func TestNewWithLogLevelEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "DEBUG")
	defer os.Unsetenv("LOG_LEVEL")

	log := New("test")
	if log == nil {
		t.Fatal("Expected logger to be created")
	}

	if !log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected DEBUG level to be enabled when LOG_LEVEL=DEBUG")
	}
}
