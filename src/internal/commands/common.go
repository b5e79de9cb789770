package commands

import (
	"fmt"

	"github.com/maksimkurb/keen-menu/src/internal/config"
	apperrors "github.com/maksimkurb/keen-menu/src/internal/errors"
	"github.com/maksimkurb/keen-menu/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
// Overrides are applied between loading and validation.
func loadAndValidateConfigOrFail(configPath string, overrides ...func(cfg *config.Config)) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, apperrors.NewValidationError("configuration validation failed", err)
	}

	return cfg, nil
}

// applyLogLevel sets the level from general.log_level. The -verbose flag wins.
func applyLogLevel(cfg *config.Config, ctx *AppContext) error {
	if ctx.Verbose {
		log.SetVerbose(true)
		return nil
	}

	level, err := log.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
