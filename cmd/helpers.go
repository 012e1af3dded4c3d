package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/flowbridge/flowbridge/internal/config"
)

// loadConfig loads and validates the configuration from the --config path.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildLogger returns a production zap logger, or a development one
// when --verbose is set.
func buildLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
