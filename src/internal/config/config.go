package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/maksimkurb/keen-menu/src/internal/errors"
	"github.com/maksimkurb/keen-menu/src/internal/log"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{General: &GeneralConfig{}}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads the TOML file at configPath. An empty path yields DefaultConfig.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		log.Debugf("No configuration file given, using defaults")
		return DefaultConfig(), nil
	}

	configFile := filepath.Clean(configPath)
	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, apperrors.NewConfigError("configuration file not found: "+configFile, err)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read config file", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, apperrors.NewConfigError("failed to parse config file", err)
	}

	config.applyDefaults()
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

// applyDefaults fills settings that were left out of the file.
func (c *Config) applyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}

	g := c.General
	if g.ListenAddr == "" {
		g.ListenAddr = DefaultListenAddr
	}
	if g.LogLevel == "" {
		g.LogLevel = DefaultLogLevel
	}
	if g.RequestLogFormat == "" {
		g.RequestLogFormat = DefaultRequestLogFormat
	}
	if g.IDStrategy == "" {
		g.IDStrategy = DefaultIDStrategy
	}
	if g.UpdateMode == "" {
		g.UpdateMode = DefaultUpdateMode
	}
	if g.MetricsEnabled == nil {
		enabled := true
		g.MetricsEnabled = &enabled
	}
}

// SerializeConfig encodes the configuration as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WithMenu returns a copy of the configuration whose [[menu_item]] tables hold items.
func (c *Config) WithMenu(items []menu.MenuItem) *Config {
	general := *c.General
	out := &Config{
		General:            &general,
		MenuItems:          make([]*MenuItemSeed, 0, len(items)),
		_absConfigFilePath: c._absConfigFilePath,
	}
	for _, item := range items {
		out.MenuItems = append(out.MenuItems, NewMenuItemSeed(item))
	}
	return out
}
