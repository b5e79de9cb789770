package commands

import (
	"bytes"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/maksimkurb/keen-menu/src/internal/components"
	"github.com/maksimkurb/keen-menu/src/internal/config"
	apperrors "github.com/maksimkurb/keen-menu/src/internal/errors"
	"github.com/maksimkurb/keen-menu/src/internal/log"
)

const customMenu = `
[general]
id_strategy = "length"
update_mode = "merge"

[[menu_item]]
id = 10
name = "Tomato Soup"
description = "Slow cooked tomatoes with basil and cream"
price = 6.5
category = "appetizer"
ingredients = ["tomato", "basil", "cream"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "keen-menu.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func quietLogs(t *testing.T) {
	t.Helper()
	log.DisableLogs()
	t.Cleanup(func() {
		log.EnableLogs()
		log.SetLevel(log.LevelInfo)
	})
}

func freeAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve a port: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func TestCheckConfigCommand_Defaults(t *testing.T) {
	quietLogs(t)

	var out bytes.Buffer
	cmd := CreateCheckConfigCommand()
	cmd.out = &out

	if err := cmd.Init(nil, &AppContext{}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{
		"built-in defaults",
		"Listen address:     :3000",
		"ID strategy:        sequence",
		"Menu items:         6 (built-in)",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCheckConfigCommand_InvalidConfig(t *testing.T) {
	quietLogs(t)

	configFile := writeConfig(t, `
[general]
id_strategy = "random"
`)

	cmd := CreateCheckConfigCommand()
	err := cmd.Init(nil, &AppContext{ConfigPath: configFile})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Expected a validation error, got: %v", err)
	}
}

func TestDumpMenuCommand_RoundTrip(t *testing.T) {
	quietLogs(t)

	var out bytes.Buffer
	cmd := CreateDumpMenuCommand()
	cmd.out = &out

	if err := cmd.Init(nil, &AppContext{ConfigPath: writeConfig(t, customMenu)}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "[[menu_item]]") {
		t.Fatalf("output has no menu tables:\n%s", out.String())
	}

	cfg, err := config.LoadConfig(writeConfig(t, out.String()))
	if err != nil {
		t.Fatalf("dumped config does not load: %v", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("dumped config is invalid: %v", err)
	}

	items := cfg.SeedItems()
	if len(items) != 1 || items[0].ID != 10 || items[0].Name != "Tomato Soup" {
		t.Errorf("unexpected items: %+v", items)
	}
	if !items[0].Available {
		t.Errorf("available should default to true")
	}
	if !cfg.General.IsMergeUpdate() {
		t.Errorf("update mode was not preserved")
	}
}

func TestServiceCommand_InvalidListenOverride(t *testing.T) {
	quietLogs(t)

	cmd := CreateServiceCommand()
	if err := cmd.Init([]string{"-listen", "not-an-address"}, &AppContext{}); err == nil {
		t.Fatal("Expected error for invalid listen address")
	}
}

func TestServiceCommand_Run(t *testing.T) {
	quietLogs(t)

	addr := freeAddr(t)
	cmd := CreateServiceCommand()
	if err := cmd.Init([]string{"-listen", addr}, &AppContext{ConfigPath: writeConfig(t, customMenu)}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if cmd.store.Len() != 1 {
		t.Fatalf("store should be seeded from config, got %d items", cmd.store.Len())
	}

	server, ok := cmd.components[0].(*components.APIServer)
	if !ok {
		t.Fatalf("first component is %T, want *components.APIServer", cmd.components[0])
	}

	sigChan := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- cmd.run(sigChan) }()

	deadline := time.Now().Add(2 * time.Second)
	for !server.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("API server did not start")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get("http://" + addr + "/api/menu/10")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /api/menu/10 status = %d, want 200", resp.StatusCode)
	}

	sigChan <- unix.SIGUSR1
	sigChan <- unix.SIGTERM

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("service did not stop after SIGTERM")
	}

	if server.IsRunning() {
		t.Error("API server still running after shutdown")
	}
}

func TestServiceCommand_StartFailure(t *testing.T) {
	quietLogs(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve a port: %v", err)
	}
	defer ln.Close()

	cmd := CreateServiceCommand()
	if err := cmd.Init([]string{"-listen", ln.Addr().String()}, &AppContext{}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	err = cmd.run(make(chan os.Signal))
	if err == nil || !strings.Contains(err.Error(), "failed to start API server") {
		t.Errorf("run() error = %v, want start failure", err)
	}
}

func TestApplyLogLevel(t *testing.T) {
	quietLogs(t)

	cfg := config.DefaultConfig()
	cfg.General.LogLevel = "warn"
	if err := applyLogLevel(cfg, &AppContext{}); err != nil {
		t.Fatalf("applyLogLevel() error = %v", err)
	}
	if log.IsVerbose() {
		t.Error("warn level must not be verbose")
	}

	if err := applyLogLevel(cfg, &AppContext{Verbose: true}); err != nil {
		t.Fatalf("applyLogLevel() error = %v", err)
	}
	if !log.IsVerbose() {
		t.Error("-verbose must enable debug logs")
	}
}
