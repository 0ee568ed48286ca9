package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base_url %q, got %q", DefaultBaseURL, cfg.API.BaseURL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %s", cfg.API.Timeout)
	}
	if cfg.API.FallbackTotal != 0 {
		t.Errorf("expected unknown total by default, got fallback %d", cfg.API.FallbackTotal)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.postboard.yml")

	original := DefaultConfig()
	original.API.BaseURL = "http://localhost:3000"
	original.API.Timeout = 3 * time.Second
	original.API.FallbackTotal = LegacyFallbackTotal
	original.Server.Port = 9090
	original.UI.Title = "Feed"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.API.BaseURL != original.API.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.API.BaseURL, original.API.BaseURL)
	}
	if loaded.API.Timeout != original.API.Timeout {
		t.Errorf("timeout: got %s, want %s", loaded.API.Timeout, original.API.Timeout)
	}
	if loaded.API.FallbackTotal != original.API.FallbackTotal {
		t.Errorf("fallback_total: got %d, want %d", loaded.API.FallbackTotal, original.API.FallbackTotal)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.UI.Title != original.UI.Title {
		t.Errorf("title: got %q, want %q", loaded.UI.Title, original.UI.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base_url, got %q", cfg.API.BaseURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("POSTBOARD_API__BASE_URL", "http://api.internal:8000")
	t.Setenv("POSTBOARD_SERVER__PORT", "9191")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.API.BaseURL != "http://api.internal:8000" {
		t.Errorf("env override failed: got %q", loaded.API.BaseURL)
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("env override failed: got port %d", loaded.Server.Port)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("POSTBOARD_UI__TITLE=From dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("POSTBOARD_UI__TITLE") })

	if err := LoadEnvFile(envPath); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}

	cfg, err := Load(filepath.Join(dir, "missing.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Title != "From dotenv" {
		t.Errorf("expected title from .env, got %q", cfg.UI.Title)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/posts" }},
		{"ftp base url", func(c *Config) { c.API.BaseURL = "ftp://example.com" }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"huge port", func(c *Config) { c.Server.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }},
		{"negative fallback", func(c *Config) { c.API.FallbackTotal = -1 }},
		{"negative rpm", func(c *Config) { c.API.RequestsPerMinute = -5 }},
		{"sample ratio above one", func(c *Config) { c.Telemetry.SampleRatio = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{"1", false},
		{"0", true},
		{"65536", true},
		{"abc", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
