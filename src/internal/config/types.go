package config

import (
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

const (
	DefaultListenAddr       = ":3000"
	DefaultLogLevel         = "info"
	DefaultRequestLogFormat = "Incoming request: timestamp={{timestamp}} method={{method}} url={{url}} request_id={{request_id}}"
	DefaultIDStrategy       = string(menu.IDSequence)
	DefaultUpdateMode       = UpdateModeReplace

	UpdateModeReplace = "replace"
	UpdateModeMerge   = "merge"
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// MenuItems replaces the built-in menu when not empty.
	MenuItems []*MenuItemSeed `toml:"menu_item,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// ListenAddr is the HTTP bind address (default: ":3000").
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"required,hostname_port"`
	// LogLevel is one of debug, info, warn, error (default: info).
	LogLevel string `toml:"log_level" json:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// RequestLogFormat is the request log line. Available variables: {{timestamp}}, {{method}}, {{url}}, {{request_id}}. POST and PUT bodies are logged on a separate line.
	RequestLogFormat string `toml:"request_log_format" json:"request_log_format" validate:"required,log_template"`
	// IDStrategy selects id assignment for created items: "sequence" or "length" (default: sequence).
	IDStrategy string `toml:"id_strategy" json:"id_strategy" validate:"required,oneof=sequence length"`
	// UpdateMode selects PUT semantics: "replace" or "merge" (default: replace).
	UpdateMode string `toml:"update_mode" json:"update_mode" validate:"required,oneof=replace merge"`
	// MetricsEnabled exposes Prometheus metrics on /metrics (default: true).
	MetricsEnabled *bool `toml:"metrics_enabled" json:"metrics_enabled"`
	// CORSEnabled adds permissive CORS headers (default: false).
	CORSEnabled bool `toml:"cors_enabled" json:"cors_enabled"`
}

// MenuItemSeed is a [[menu_item]] table. Available defaults to true.
type MenuItemSeed struct {
	ID          int      `toml:"id" json:"id" validate:"required,gt=0"`
	Name        string   `toml:"name" json:"name"`
	Description string   `toml:"description" json:"description"`
	Price       float64  `toml:"price" json:"price"`
	Category    string   `toml:"category" json:"category"`
	Ingredients []string `toml:"ingredients" json:"ingredients"`
	Available   *bool    `toml:"available,omitempty" json:"available,omitempty"`
}

// ToMenuItem converts the seed table into a menu item.
func (s *MenuItemSeed) ToMenuItem() menu.MenuItem {
	available := true
	if s.Available != nil {
		available = *s.Available
	}
	return menu.MenuItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Category:    menu.Category(s.Category),
		Ingredients: append([]string(nil), s.Ingredients...),
		Available:   available,
	}
}

// NewMenuItemSeed converts a menu item into a seed table.
func NewMenuItemSeed(item menu.MenuItem) *MenuItemSeed {
	available := item.Available
	return &MenuItemSeed{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
		Ingredients: append([]string(nil), item.Ingredients...),
		Available:   &available,
	}
}

// IsMetricsEnabled returns whether /metrics is served.
func (g *GeneralConfig) IsMetricsEnabled() bool {
	return g.MetricsEnabled == nil || *g.MetricsEnabled
}

// GetIDStrategy returns the configured id strategy.
func (g *GeneralConfig) GetIDStrategy() menu.IDStrategy {
	return menu.IDStrategy(g.IDStrategy)
}

// IsMergeUpdate returns true if PUT keeps attributes missing from the body.
func (g *GeneralConfig) IsMergeUpdate() bool {
	return g.UpdateMode == UpdateModeMerge
}

// SeedItems returns the configured menu, or the built-in one when none is configured.
func (c *Config) SeedItems() []menu.MenuItem {
	if len(c.MenuItems) == 0 {
		return menu.DefaultItems()
	}

	items := make([]menu.MenuItem, 0, len(c.MenuItems))
	for _, seed := range c.MenuItems {
		items = append(items, seed.ToMenuItem())
	}
	return items
}

// GetConfigPath returns the absolute path of the loaded file, or "" for defaults.
func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}
