package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Passcode != DefaultPasscode {
		t.Errorf("expected default passcode %q, got %q", DefaultPasscode, cfg.Passcode)
	}
	if cfg.GateErrorDisplay != 2*time.Second {
		t.Errorf("expected gate_error_display 2s, got %v", cfg.GateErrorDisplay)
	}
	if cfg.Ladder.Unit != 7 {
		t.Errorf("expected ladder unit 7, got %v", cfg.Ladder.Unit)
	}
	if cfg.Orbit.RadiusX != 35 || cfg.Orbit.RadiusY != 32 {
		t.Errorf("unexpected orbit radii %v/%v", cfg.Orbit.RadiusX, cfg.Orbit.RadiusY)
	}
	if cfg.LogFormat != LogFormatConsole {
		t.Errorf("expected console log format, got %q", cfg.LogFormat)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.Passcode = "1234"
	original.ContentDir = "content"
	original.Orbit.Speed = 0.5
	original.Ladder.RunIdleAfter = 250 * time.Millisecond
	original.LogFormat = LogFormatJSON

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Passcode != original.Passcode {
		t.Errorf("passcode: got %q, want %q", loaded.Passcode, original.Passcode)
	}
	if loaded.ContentDir != original.ContentDir {
		t.Errorf("content_dir: got %q, want %q", loaded.ContentDir, original.ContentDir)
	}
	if loaded.Orbit.Speed != original.Orbit.Speed {
		t.Errorf("orbit.speed: got %v, want %v", loaded.Orbit.Speed, original.Orbit.Speed)
	}
	if loaded.Ladder.RunIdleAfter != original.Ladder.RunIdleAfter {
		t.Errorf("ladder.run_idle_after: got %v, want %v", loaded.Ladder.RunIdleAfter, original.Ladder.RunIdleAfter)
	}
	if loaded.LogFormat != original.LogFormat {
		t.Errorf("log_format: got %q, want %q", loaded.LogFormat, original.LogFormat)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PORTFOLIO_PASSCODE", "9999")
	t.Setenv("PORTFOLIO_PORT", "7070")
	t.Setenv("PORTFOLIO_ORBIT__SPEED", "0.25")
	t.Setenv("PORTFOLIO_GATE_ERROR_DISPLAY", "3s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Passcode != "9999" {
		t.Errorf("passcode override failed: got %q", loaded.Passcode)
	}
	if loaded.Port != 7070 {
		t.Errorf("port override failed: got %d", loaded.Port)
	}
	if loaded.Orbit.Speed != 0.25 {
		t.Errorf("nested override failed: got %v", loaded.Orbit.Speed)
	}
	if loaded.GateErrorDisplay != 3*time.Second {
		t.Errorf("duration override failed: got %v", loaded.GateErrorDisplay)
	}
}

func TestLoadYAMLDurations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")
	writeFile(t, path, "patch_duration: 750ms\nladder:\n  run_idle_after: 1s\n")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.PatchDuration != 750*time.Millisecond {
		t.Errorf("patch_duration: got %v", loaded.PatchDuration)
	}
	if loaded.Ladder.RunIdleAfter != time.Second {
		t.Errorf("ladder.run_idle_after: got %v", loaded.Ladder.RunIdleAfter)
	}
	// Keys absent from the file keep their defaults.
	if loaded.Ladder.Unit != 7 {
		t.Errorf("ladder.unit: got %v, want default 7", loaded.Ladder.Unit)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty passcode", func(c *Config) { c.Passcode = "" }},
		{"zero gate display", func(c *Config) { c.GateErrorDisplay = 0 }},
		{"zero patch duration", func(c *Config) { c.PatchDuration = 0 }},
		{"zero frame interval", func(c *Config) { c.FrameInterval = 0 }},
		{"zero orbit radius", func(c *Config) { c.Orbit.RadiusY = 0 }},
		{"zero ladder unit", func(c *Config) { c.Ladder.Unit = 0 }},
		{"inverted ladder bounds", func(c *Config) { c.Ladder.MinX = 99 }},
		{"rest outside bounds", func(c *Config) { c.Ladder.RestX = 1 }},
		{"zero damping", func(c *Config) { c.Ladder.Damping = 0 }},
		{"zero idle after", func(c *Config) { c.Ladder.RunIdleAfter = 0 }},
		{"zero preview timeout", func(c *Config) { c.Preview.Timeout = 0 }},
		{"relative preview url", func(c *Config) { c.Preview.BaseURL = "/search" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{"0", false},
		{"65536", true},
		{"eighty", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
