// Package config loads escrowctl's configuration from file and environment.
package config

import (
	"fmt"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/spf13/viper"
)

// Config holds all configuration for the escrow tooling.
type Config struct {
	// Store locates the local copy of the contract state.
	Store StoreConfig `mapstructure:"store"`

	// Logging configuration.
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig selects the database holding the contract's root state cell.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Name    string `mapstructure:"name"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults() {
	viper.SetDefault("store.backend", string(dbm.GoLevelDBBackend))
	viper.SetDefault("store.dir", ".")
	viper.SetDefault("store.name", "escrow")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// Load reads configuration from configPath (or the default search path when
// empty) and ESCROW_* environment variables.
func Load(configPath string) (*Config, error) {
	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.escrowctl")
	}

	viper.SetEnvPrefix("ESCROW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file falls back to defaults; anything else is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// OpenStore opens the configured state database.
func (c *Config) OpenStore() (dbm.DB, error) {
	return dbm.NewDB(c.Store.Name, dbm.BackendType(c.Store.Backend), c.Store.Dir)
}
