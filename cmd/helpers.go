package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/config"
	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/logging"
	"github.com/ziadkadry99/portfolio/internal/preview"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, string(cfg.LogFormat))
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// loadContent reads the configured content directory, or the bundled content
// when none is set.
func loadContent(cfg *config.Config, logger *zap.Logger) (*content.Store, error) {
	store, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	source := cfg.ContentDir
	if source == "" {
		source = "bundled"
	}
	counts := store.Counts()
	logger.Info("content loaded",
		zap.String("source", source),
		zap.Int("episodes", counts[content.KindEpisodes]),
		zap.Int("credits", counts[content.KindCredits]),
		zap.Int("ladders", counts[content.KindLadders]),
	)
	return store, nil
}

func newSearcher(cfg *config.Config) (*preview.Client, error) {
	client, err := preview.New(cfg.Preview.BaseURL, cfg.Preview.Timeout,
		preview.WithFilter(cfg.Preview.Media, cfg.Preview.Entity))
	if err != nil {
		return nil, fmt.Errorf("creating preview client: %w", err)
	}
	return client, nil
}
