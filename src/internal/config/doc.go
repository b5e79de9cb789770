// Package config handles configuration file parsing and validation for keen-menu.
//
// The configuration is an optional TOML file. Without one the service listens
// on :3000 and serves the built-in six item menu.
//
// # Configuration Structure
//
//	[general]
//	listen_addr = ":3000"
//	log_level = "info"
//	request_log_format = "{{timestamp}} {{method}} {{url}} id={{request_id}}"
//	id_strategy = "sequence"   # or "length"
//	update_mode = "replace"    # or "merge"
//	metrics_enabled = true
//	cors_enabled = false
//
//	[[menu_item]]
//	id = 1
//	name = "Classic Burger"
//	description = "Beef patty with lettuce, tomato, and cheese on a sesame seed bun"
//	price = 12.99
//	category = "entree"
//	ingredients = ["beef", "lettuce", "tomato", "cheese", "bun"]
//
// When [[menu_item]] tables are present they replace the built-in menu.
// Seeded items go through the same rules as created ones.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/keen-menu/keen-menu.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	store := menu.NewStore(cfg.SeedItems(), cfg.General.GetIDStrategy())
package config
