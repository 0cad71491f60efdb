package config

import "time"

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// Config is the top-level portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	Port             int           `yaml:"port" koanf:"port"`
	ContentDir       string        `yaml:"content_dir" koanf:"content_dir"`
	Passcode         string        `yaml:"passcode" koanf:"passcode"`
	GateErrorDisplay time.Duration `yaml:"gate_error_display" koanf:"gate_error_display"`
	PatchDuration    time.Duration `yaml:"patch_duration" koanf:"patch_duration"`
	FrameInterval    time.Duration `yaml:"frame_interval" koanf:"frame_interval"`
	Orbit            OrbitConfig   `yaml:"orbit" koanf:"orbit"`
	Ladder           LadderConfig  `yaml:"ladder" koanf:"ladder"`
	Preview          PreviewConfig `yaml:"preview" koanf:"preview"`
	AllowAllOrigins  bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel         string        `yaml:"log_level" koanf:"log_level"`
	LogFormat        LogFormat     `yaml:"log_format" koanf:"log_format"`
}

// OrbitConfig positions the producer credits on an ellipse. Centre and radii
// are percentages of the stage; Speed is degrees per 16ms frame.
type OrbitConfig struct {
	CenterX float64 `yaml:"center_x" koanf:"center_x"`
	CenterY float64 `yaml:"center_y" koanf:"center_y"`
	RadiusX float64 `yaml:"radius_x" koanf:"radius_x"`
	RadiusY float64 `yaml:"radius_y" koanf:"radius_y"`
	Speed   float64 `yaml:"speed" koanf:"speed"`
}

// LadderConfig drives the side-project climber. Unit is the vh offset per
// score point; X values are percentages of the scene width.
type LadderConfig struct {
	Unit         float64       `yaml:"unit" koanf:"unit"`
	RestX        float64       `yaml:"rest_x" koanf:"rest_x"`
	MinX         float64       `yaml:"min_x" koanf:"min_x"`
	MaxX         float64       `yaml:"max_x" koanf:"max_x"`
	StiffnessX   float64       `yaml:"stiffness_x" koanf:"stiffness_x"`
	StiffnessY   float64       `yaml:"stiffness_y" koanf:"stiffness_y"`
	Damping      float64       `yaml:"damping" koanf:"damping"`
	RunIdleAfter time.Duration `yaml:"run_idle_after" koanf:"run_idle_after"`
}

// PreviewConfig points at the music catalog used for outro previews.
type PreviewConfig struct {
	BaseURL string        `yaml:"base_url" koanf:"base_url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
	Media   string        `yaml:"media" koanf:"media"`
	Entity  string        `yaml:"entity" koanf:"entity"`
}
