package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/react-guide/internal/nav"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Theme.Default != "dark" {
		t.Errorf("expected default theme %q, got %q", "dark", cfg.Theme.Default)
	}
	if cfg.Export.OutputDir != "public" {
		t.Errorf("expected default export.output_dir %q, got %q", "public", cfg.Export.OutputDir)
	}
	if cfg.SessionTTL() != 24*time.Hour {
		t.Errorf("expected default session ttl 24h, got %v", cfg.SessionTTL())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.reactguide.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Server.SessionTTL = "2h"
	original.Theme.Default = "light"
	original.Site.Title = "Hooks Handbook"
	original.Storage.Path = ""

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.SessionTTL() != 2*time.Hour {
		t.Errorf("session ttl: got %v, want 2h", loaded.SessionTTL())
	}
	if loaded.Theme.Default != "light" {
		t.Errorf("theme: got %q, want %q", loaded.Theme.Default, "light")
	}
	if loaded.Site.Title != "Hooks Handbook" {
		t.Errorf("title: got %q, want %q", loaded.Site.Title, "Hooks Handbook")
	}
	if loaded.Storage.Path != "" {
		t.Errorf("storage path: got %q, want empty", loaded.Storage.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.Site.Title != "React Guide" {
		t.Errorf("expected default title, got %q", cfg.Site.Title)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("server: [port"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	t.Setenv("REACTGUIDE_SERVER_PORT", "3000")
	t.Setenv("REACTGUIDE_SERVER_SESSION_TTL", "30m")
	t.Setenv("REACTGUIDE_THEME_DEFAULT", "light")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.SessionTTL != "30m" {
		t.Errorf("session ttl: got %q, want 30m", cfg.Server.SessionTTL)
	}
	if cfg.Theme.Default != "light" {
		t.Errorf("theme: got %q, want light", cfg.Theme.Default)
	}
}

func TestLoadNavItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nav.yml")
	data := `site:
  title: Mini
  nav:
    - id: home
      label: Home
      kind: link
      path: /
    - id: hooks
      label: Hooks
      kind: dropdown
      children:
        - label: useState
          path: /usestate
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	items := cfg.NavItems()
	if len(items) != 2 {
		t.Fatalf("nav items = %d, want 2", len(items))
	}
	if items[1].Kind != nav.KindDropdown || items[1].Children[0].Path != "/usestate" {
		t.Errorf("unexpected dropdown: %+v", items[1])
	}
}

func TestNavItemsDefault(t *testing.T) {
	if got, want := len(DefaultConfig().NavItems()), len(nav.DefaultItems()); got != want {
		t.Errorf("nav items = %d, want %d", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"invalid theme", func(c *Config) { c.Theme.Default = "sepia" }, "Default"},
		{"invalid log level", func(c *Config) { c.Log.Level = "loud" }, "Level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "Format"},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "Port"},
		{"empty title", func(c *Config) { c.Site.Title = "" }, "Title"},
		{"empty output dir", func(c *Config) { c.Export.OutputDir = "" }, "OutputDir"},
		{"bad ttl", func(c *Config) { c.Server.SessionTTL = "soon" }, "session_ttl"},
		{"negative ttl", func(c *Config) { c.Server.SessionTTL = "-1h" }, "session_ttl"},
		{"bad nav", func(c *Config) {
			c.Site.Nav = []nav.Item{{ID: "x", Label: "X", Kind: nav.KindDropdown}}
		}, "site.nav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"REACTGUIDE_SERVER_PORT":        "server.port",
		"REACTGUIDE_SERVER_SESSION_TTL": "server.session_ttl",
		"REACTGUIDE_EXPORT_OUTPUT_DIR":  "export.output_dir",
		"REACTGUIDE_LOG_LEVEL":          "log.level",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"0", "8080", " 65535 "} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "http", "-1", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q): expected error", bad)
		}
	}
}
