package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

var envKeys = []string{"PORT", "GIN_MODE", "LOCALE", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT", "CORS_ORIGIN"}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.GinMode != DefaultGinMode {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, DefaultGinMode)
	}
	if cfg.Locale != DefaultLocale {
		t.Errorf("Locale = %q, want %q", cfg.Locale, DefaultLocale)
	}
	if cfg.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":8000")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := writeTempFile(t, `
PORT=9001
GIN_MODE=debug
LOCALE=EN
LOG_LEVEL=debug
LOG_FORMAT=json
SHUTDOWN_TIMEOUT=3s
CORS_ORIGIN=http://localhost:5173
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9001 {
		t.Errorf("Port = %d, want 9001", cfg.Port)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
	if cfg.CORSOrigin != "http://localhost:5173" {
		t.Errorf("CORSOrigin = %q", cfg.CORSOrigin)
	}

	logger := cfg.NewLogger()
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("logger level = %v, want debug", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", logger.Formatter)
	}
}

func TestEnvironmentOverridesEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	cfg, err := Load(writeTempFile(t, "PORT=9001\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 7000 {
		t.Errorf("Port = %d, want 7000", cfg.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"bad port", "PORT=abc\n"},
		{"port out of range", "PORT=70000\n"},
		{"bad gin mode", "GIN_MODE=fast\n"},
		{"unsupported locale", "LOCALE=fr\n"},
		{"bad log level", "LOG_LEVEL=loud\n"},
		{"bad log format", "LOG_FORMAT=xml\n"},
		{"bad timeout", "SHUTDOWN_TIMEOUT=soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, err := Load(writeTempFile(t, tt.env)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
