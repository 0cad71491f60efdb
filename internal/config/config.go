package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a
// double underscore: PORTFOLIO_ORBIT__SPEED -> orbit.speed.
const EnvPrefix = "PORTFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[LogFormat]bool{
	LogFormatJSON:    true,
	LogFormatConsole: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Passcode == "" {
		return fmt.Errorf("passcode is required")
	}
	if c.GateErrorDisplay <= 0 {
		return fmt.Errorf("gate_error_display must be positive")
	}
	if c.PatchDuration <= 0 {
		return fmt.Errorf("patch_duration must be positive")
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive")
	}

	if c.Orbit.RadiusX <= 0 || c.Orbit.RadiusY <= 0 {
		return fmt.Errorf("orbit radii must be positive")
	}

	l := c.Ladder
	if l.Unit <= 0 {
		return fmt.Errorf("ladder.unit must be positive")
	}
	if l.MinX >= l.MaxX {
		return fmt.Errorf("ladder.min_x (%v) must be below ladder.max_x (%v)", l.MinX, l.MaxX)
	}
	if l.RestX < l.MinX || l.RestX > l.MaxX {
		return fmt.Errorf("ladder.rest_x %v outside [%v, %v]", l.RestX, l.MinX, l.MaxX)
	}
	if l.StiffnessX <= 0 || l.StiffnessY <= 0 || l.Damping <= 0 {
		return fmt.Errorf("ladder spring stiffness and damping must be positive")
	}
	if l.RunIdleAfter <= 0 {
		return fmt.Errorf("ladder.run_idle_after must be positive")
	}

	if c.Preview.Timeout <= 0 {
		return fmt.Errorf("preview.timeout must be positive")
	}
	u, err := url.Parse(c.Preview.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid preview.base_url %q", c.Preview.BaseURL)
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log_format %q: must be json or console", c.LogFormat)
	}

	return nil
}
