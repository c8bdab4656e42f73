package logger

import (
	"fmt"
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-kit")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.component != "test-kit" {
		t.Errorf("expected component 'test-kit', got %q", l.component)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-kit")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.component != "my-kit" {
		t.Errorf("expected component 'my-kit', got %q", l.component)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-kit")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("singleton")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.component != "singleton" {
		t.Errorf("expected component 'singleton', got %q", cl.component)
	}
}

func TestWithFields(t *testing.T) {
	l := NewDefault("test")
	fl := l.WithFields(map[string]interface{}{"provider": "db"})
	if fl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithError(t *testing.T) {
	l := NewDefault("test")
	el := l.WithError(fmt.Errorf("boom"))
	if el == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestGlobalLogger(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}

	custom := NewDefault("custom")
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected the custom global logger")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"invalid level", Config{Level: "loud", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("provider", "db", "count", 1)
	if m["provider"] != "db" {
		t.Errorf("expected provider 'db', got %v", m["provider"])
	}
	if m["count"] != 1 {
		t.Errorf("expected count 1, got %v", m["count"])
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("provider", "db", "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key to be dropped, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("construct", fmt.Errorf("boom"))
	if m[FieldOperation] != "construct" {
		t.Errorf("expected operation 'construct', got %v", m[FieldOperation])
	}
	if m[FieldError] != "boom" {
		t.Errorf("expected error 'boom', got %v", m[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("construct", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestLogMethods(t *testing.T) {
	l := NewDefault("test")
	// Should not panic.
	l.Debug("debug msg", Fields("k", "v"))
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")
}
