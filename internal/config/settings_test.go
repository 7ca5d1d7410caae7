package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stagehand/internal/store"
	"stagehand/internal/types"
)

func TestDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := loadConfigFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("loadConfigFromPath: %v", err)
	}
	if cfg.LiveEndpoint() != defaultLiveEndpoint {
		t.Fatalf("endpoint = %q", cfg.LiveEndpoint())
	}
	if cfg.DispatchTimeout() != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.DispatchTimeout())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel())
	}
	if cfg.StoreBackend() != store.BackendFile {
		t.Fatalf("backend = %q", cfg.StoreBackend())
	}
	if cfg.Audience() != types.AudienceCustomers {
		t.Fatalf("audience = %q", cfg.Audience())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[live]
endpoint = "http://demo.internal:9000/"
timeout_ms = 1500

[logging]
level = "debug"

[store]
backend = "bbolt"

[demo]
audience = "investors"
industry = "retail"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadConfigFromPath(path)
	if err != nil {
		t.Fatalf("loadConfigFromPath: %v", err)
	}
	if cfg.LiveEndpoint() != "http://demo.internal:9000" {
		t.Fatalf("endpoint = %q, want trailing slash trimmed", cfg.LiveEndpoint())
	}
	if cfg.DispatchTimeout() != 1500*time.Millisecond {
		t.Fatalf("timeout = %v", cfg.DispatchTimeout())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel())
	}
	if cfg.StoreBackend() != store.BackendBbolt {
		t.Fatalf("backend = %q", cfg.StoreBackend())
	}
	if cfg.Audience() != types.AudienceInvestors {
		t.Fatalf("audience = %q", cfg.Audience())
	}
	if cfg.Industry() != "retail" {
		t.Fatalf("industry = %q", cfg.Industry())
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	cfg := Config{
		Live:    LiveConfig{TimeoutMS: -10},
		Logging: LoggingConfig{Level: "  "},
		Demo:    DemoConfig{Audience: "press"},
	}
	if cfg.DispatchTimeout() != 5*time.Second {
		t.Fatalf("negative timeout should fall back, got %v", cfg.DispatchTimeout())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("blank level should fall back, got %q", cfg.LogLevel())
	}
	if cfg.Audience() != types.AudienceCustomers {
		t.Fatalf("unknown audience should fall back, got %q", cfg.Audience())
	}
}

func TestStorePathResolution(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "session.db")
	cfg := Config{Store: StoreConfig{Backend: store.BackendBbolt, Path: abs}}
	got, err := cfg.StorePath()
	if err != nil {
		t.Fatalf("StorePath: %v", err)
	}
	if got != abs {
		t.Fatalf("absolute path rewritten: %q", got)
	}

	cfg = Config{Store: StoreConfig{Backend: store.BackendMemory}}
	got, err = cfg.StorePath()
	if err != nil {
		t.Fatalf("StorePath: %v", err)
	}
	if got != "" {
		t.Fatalf("memory backend should have no path, got %q", got)
	}
}
