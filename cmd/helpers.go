package cmd

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/react-guide/internal/config"
	"github.com/ziadkadry99/react-guide/internal/db"
	"github.com/ziadkadry99/react-guide/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `reactguide init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. --verbose forces debug.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Options{Level: level, Format: cfg.Log.Format})
}

// openDatabase opens the preference database. Preferences are not critical,
// so a database that cannot be opened is replaced by an in-memory one.
func openDatabase(path string, logger zerolog.Logger) (*db.DB, error) {
	if path != "" {
		database, err := db.Open(path)
		if err == nil {
			return database, nil
		}
		logger.Warn().Err(err).Str("path", path).Msg("preference database unavailable, keeping preferences in memory")
	}
	database, err := db.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	return database, nil
}
