package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/maksimkurb/keen-menu/src/internal/errors"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "keen-menu.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.General.ListenAddr != ":3000" {
		t.Errorf("ListenAddr = %q, want :3000", cfg.General.ListenAddr)
	}
	if cfg.General.GetIDStrategy() != menu.IDSequence {
		t.Errorf("IDStrategy = %q", cfg.General.IDStrategy)
	}
	if cfg.General.IsMergeUpdate() {
		t.Errorf("Expected replace update mode by default")
	}
	if !cfg.General.IsMetricsEnabled() {
		t.Errorf("Expected metrics to be enabled by default")
	}
	if cfg.GetConfigPath() != "" {
		t.Errorf("Expected no config path, got %q", cfg.GetConfigPath())
	}
	if len(cfg.SeedItems()) != 6 {
		t.Errorf("Expected built-in menu, got %d items", len(cfg.SeedItems()))
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Default configuration must be valid, got: %v", err)
	}
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if !errors.Is(err, apperrors.ErrConfig) {
		t.Errorf("Expected a config error, got: %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, `[general
	listen_addr = ":3000"`)

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, `[general]
listen_addr = "127.0.0.1:8080"
id_strategy = "length"
update_mode = "merge"
metrics_enabled = false

[[menu_item]]
id = 10
name = "Tomato Soup"
description = "Slow cooked tomatoes with basil and cream"
price = 6.5
category = "appetizer"
ingredients = ["tomato", "basil", "cream"]

[[menu_item]]
id = 11
name = "Iced Tea"
description = "Black tea over ice with a slice of lemon"
price = 2.5
category = "beverage"
ingredients = ["tea", "lemon"]
available = false`)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("Expected valid configuration, got: %v", err)
	}

	if cfg.General.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("ListenAddr = %q", cfg.General.ListenAddr)
	}
	if cfg.General.GetIDStrategy() != menu.IDLength {
		t.Errorf("IDStrategy = %q", cfg.General.IDStrategy)
	}
	if !cfg.General.IsMergeUpdate() {
		t.Errorf("Expected merge update mode")
	}
	if cfg.General.IsMetricsEnabled() {
		t.Errorf("Expected metrics to be disabled")
	}
	if cfg.General.RequestLogFormat != DefaultRequestLogFormat {
		t.Errorf("Expected default request log format, got %q", cfg.General.RequestLogFormat)
	}
	if !filepath.IsAbs(cfg.GetConfigPath()) {
		t.Errorf("Expected absolute config path, got %q", cfg.GetConfigPath())
	}

	items := cfg.SeedItems()
	if len(items) != 2 {
		t.Fatalf("Expected 2 seeded items, got %d", len(items))
	}
	if !items[0].Available {
		t.Errorf("Expected available to default to true")
	}
	if items[1].Available {
		t.Errorf("Expected explicit available = false to be kept")
	}
	if items[0].Category != menu.CategoryAppetizer {
		t.Errorf("Category = %q", items[0].Category)
	}
}

func TestValidateConfig_InvalidGeneral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.ListenAddr = "no-port"
	cfg.General.IDStrategy = "random"
	cfg.General.LogLevel = "loud"
	cfg.General.RequestLogFormat = "{{method}} {{user_agent}}"

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected validation error")
	}

	validationErrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}

	fields := map[string]bool{}
	for _, e := range validationErrs {
		fields[e.FieldPath] = true
	}
	for _, want := range []string{"general.listen_addr", "general.id_strategy", "general.log_level", "general.request_log_format"} {
		if !fields[want] {
			t.Errorf("Expected error for %s, got: %v", want, err)
		}
	}
}

func TestValidateConfig_MissingGeneral(t *testing.T) {
	cfg := &Config{}

	if err := cfg.ValidateConfig(); err == nil {
		t.Error("Expected error for missing general config")
	}
}

func TestValidateConfig_InvalidMenuItems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MenuItems = []*MenuItemSeed{
		{ID: 1, Name: "Burger", Description: "A very good burger", Price: 5, Category: "entree", Ingredients: []string{"beef"}},
		{ID: 1, Name: "Fries", Description: "Crispy potato fries", Price: 3, Category: "side", Ingredients: []string{"potato"}},
		{ID: 0, Name: "Pie", Description: "Apple pie, warm", Price: 0, Category: "dessert", Ingredients: []string{"apple"}},
	}

	err := cfg.ValidateConfig()
	if err == nil {
		t.Fatal("Expected validation error")
	}

	text := err.Error()
	for _, want := range []string{
		"[menu_item[id=1]] id: duplicate menu item id: 1",
		"[menu_item[id=1]] category: Category must be one of: appetizer, entree, dessert, beverage.",
		"[menu_item[2]] id: field is required",
		"[menu_item[2]] price: Price must be a number greater than 0.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in:\n%s", want, text)
		}
	}
}

func TestSerializeConfig_RoundTrip(t *testing.T) {
	cfg := DefaultConfig().WithMenu(menu.DefaultItems())

	buf, err := cfg.SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig() error: %v", err)
	}

	loaded, err := LoadConfig(writeConfig(t, buf.String()))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v\n%s", err, buf.String())
	}
	if err := loaded.ValidateConfig(); err != nil {
		t.Fatalf("ValidateConfig() error: %v", err)
	}

	items := loaded.SeedItems()
	if len(items) != 6 {
		t.Fatalf("Expected 6 items, got %d", len(items))
	}
	if items[5].Name != "Fish and Chips" || items[5].Available {
		t.Errorf("Unexpected last item: %+v", items[5])
	}
}

func TestValidateRequestLogFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{DefaultRequestLogFormat, false},
		{"{{method}} {{url}}", false},
		{"plain text", false},
		{"{{method}", true},
		{"{{host}}", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateRequestLogFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequestLogFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}
