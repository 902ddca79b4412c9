package config

import "github.com/ziadkadry99/react-guide/internal/nav"

// Config is the top-level React Guide configuration, corresponding to .reactguide.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Storage StorageConfig `yaml:"storage" koanf:"storage"`
	Theme   ThemeConfig   `yaml:"theme" koanf:"theme"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Export  ExportConfig  `yaml:"export" koanf:"export"`
}

// ServerConfig controls the HTTP server and visitor sessions.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port" validate:"min=0,max=65535"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SecureCookies   bool   `yaml:"secure_cookies" koanf:"secure_cookies"`
	SessionTTL      string `yaml:"session_ttl" koanf:"session_ttl" validate:"required"`
}

// StorageConfig locates the preference database. An empty path keeps
// preferences in memory only.
type StorageConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// ThemeConfig holds the theme used when a visitor has no preference and
// their browser reports no color scheme.
type ThemeConfig struct {
	Default string `yaml:"default" koanf:"default" validate:"oneof=light dark"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" koanf:"format" validate:"oneof=console json"`
}

// SiteConfig holds presentation settings. Nav replaces the built-in
// navigation bar when set.
type SiteConfig struct {
	Title string     `yaml:"title" koanf:"title" validate:"required"`
	Nav   []nav.Item `yaml:"nav,omitempty" koanf:"nav"`
}

// ExportConfig controls static exports.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir" validate:"required"`
}
