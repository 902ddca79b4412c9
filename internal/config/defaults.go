package config

import (
	"time"

	"github.com/ziadkadry99/react-guide/internal/nav"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = ".reactguide.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       8080,
			SessionTTL: "24h",
		},
		Storage: StorageConfig{
			Path: ".reactguide/preferences.db",
		},
		Theme: ThemeConfig{
			Default: "dark",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Site: SiteConfig{
			Title: "React Guide",
		},
		Export: ExportConfig{
			OutputDir: "public",
		},
	}
}

// SessionTTL returns the parsed idle lifetime of a visitor session.
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// NavItems returns the configured navigation bar, or the built-in one.
func (c *Config) NavItems() []nav.Item {
	if len(c.Site.Nav) > 0 {
		return c.Site.Nav
	}
	return nav.DefaultItems()
}
