package config

import "time"

// DefaultPasscode is the archive passcode shipped with the site. It is
// readable by anyone who views the page source.
const DefaultPasscode = "4242"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		Passcode:         DefaultPasscode,
		GateErrorDisplay: 2 * time.Second,
		PatchDuration:    1500 * time.Millisecond,
		FrameInterval:    16 * time.Millisecond,
		Orbit: OrbitConfig{
			CenterX: 50,
			CenterY: 50,
			RadiusX: 35,
			RadiusY: 32,
			Speed:   0.03,
		},
		Ladder: LadderConfig{
			Unit:         7,
			RestX:        10,
			MinX:         2,
			MaxX:         98,
			StiffnessX:   120,
			StiffnessY:   80,
			Damping:      20,
			RunIdleAfter: 100 * time.Millisecond,
		},
		Preview: PreviewConfig{
			BaseURL: "https://itunes.apple.com/search",
			Timeout: 8 * time.Second,
			Media:   "music",
			Entity:  "song",
		},
		LogLevel:  "info",
		LogFormat: LogFormatConsole,
	}
}
