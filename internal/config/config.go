package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/react-guide/internal/nav"
)

// EnvPrefix marks environment variables that override configuration.
const EnvPrefix = "REACTGUIDE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (REACTGUIDE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: REACTGUIDE_SERVER_PORT -> server.port,
	// REACTGUIDE_SERVER_SESSION_TTL -> server.session_ttl.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps an environment variable to a config key. The first segment
// after the prefix names the section.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ttl, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil {
		return fmt.Errorf("invalid server.session_ttl %q: %w", c.Server.SessionTTL, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("server.session_ttl must be positive")
	}

	if len(c.Site.Nav) > 0 {
		if err := nav.ValidateItems(c.Site.Nav); err != nil {
			return fmt.Errorf("invalid site.nav: %w", err)
		}
	}
	return nil
}
