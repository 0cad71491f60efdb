package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Passcode.
	passPrompt := promptui.Prompt{
		Label:   "Archive passcode",
		Default: cfg.Passcode,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("passcode must not be empty")
			}
			return nil
		},
	}
	cfg.Passcode, err = passPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("passcode: %w", err)
	}

	// 3. Content directory.
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (leave blank for bundled content)",
		Default: "",
	}
	cfg.ContentDir, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if cfg.ContentDir != "" {
		if fi, statErr := os.Stat(cfg.ContentDir); statErr != nil || !fi.IsDir() {
			fmt.Printf("\nNote: %s does not exist yet; create it before running portfolio serve.\n", cfg.ContentDir)
		}
	}

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console — human readable",
			"json    — one JSON object per line",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.LogFormat = []LogFormat{LogFormatConsole, LogFormatJSON}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if p < 0 || p > 65535 {
		return fmt.Errorf("port out of range")
	}
	return nil
}
