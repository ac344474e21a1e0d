package logger

import (
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output stderr, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{"valid json", Config{Level: "debug", Format: "json"}, false, ""},
		{"valid console", Config{Level: "warn", Format: "console"}, false, ""},
		{"bad level", Config{Level: "verbose", Format: "json"}, true, "logging.level must be one of"},
		{"bad format", Config{Level: "info", Format: "xml"}, true, "logging.format must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	log := New(&Config{Level: "nonsense", Format: "json"}, "test")
	if log == nil {
		t.Fatal("expected logger")
	}
	// Must not panic.
	log.Debug("dropped", nil)
	log.Info("kept", map[string]interface{}{"k": "v"})
}

func TestNopLoggerIsSafe(t *testing.T) {
	log := Nop()
	log.Debug("msg", nil)
	log.Info("msg", map[string]interface{}{"a": 1})
	log.Warn("msg", nil)
	log.Error("msg", nil, nil)
	log.WithComponent("sub").Info("msg", nil)
}
