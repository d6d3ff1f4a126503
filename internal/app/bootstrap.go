package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ahitagnied/lotus-app/internal/config"
	"github.com/ahitagnied/lotus-app/internal/logger"
)

// Bootstrap loads .env, reads and validates configuration and builds the
// logger. Overrides run before validation.
func Bootstrap(verbose bool, overrides ...func(*config.Config)) (*config.Config, *zap.Logger, error) {
	envPath, err := config.LoadEnv()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(verbose || !cfg.Server.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if envPath != "" {
		log.Debug("Loaded environment file", zap.String("path", envPath))
	}

	return cfg, log, nil
}
