// Package config holds the CLI configuration, loaded through Viper from
// flags, an optional YAML file and VANITYFORGE_-prefixed environment
// variables.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Errors returned by Validate.
var (
	ErrNoPattern      = errors.New("must specify a pattern")
	ErrUnknownNetwork = errors.New("unknown network (want ethereum, solana, bitcoin or tron)")
)

// Networks the CLI can mine for.
var Networks = []string{"ethereum", "solana", "bitcoin", "tron"}

// Config holds the application configuration.
type Config struct {
	Network     string `mapstructure:"network"`
	Pattern     string `mapstructure:"pattern"`
	Workers     int    `mapstructure:"workers"`
	IntervalMS  int    `mapstructure:"interval_ms"`
	SaveDir     string `mapstructure:"save_dir"`
	AddressType string `mapstructure:"address_type"` // bitcoin only: taproot|legacy
	LogFile     string `mapstructure:"log_file"`
	Verbose     bool   `mapstructure:"verbose"`
}

// New creates a configuration with default values.
func New() *Config {
	return &Config{
		Network:    "ethereum",
		Workers:    runtime.NumCPU(),
		IntervalMS: 250,
	}
}

// Load builds the configuration from Viper's merged sources.
func Load() (*Config, error) {
	cfg := New()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.IntervalMS <= 0 {
		cfg.IntervalMS = 250
	}
	return cfg, nil
}

// SetupViper wires defaults, the env prefix and the optional config file.
func SetupViper(configFile string) error {
	viper.SetDefault("network", "ethereum")
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("interval_ms", 250)

	viper.SetEnvPrefix("VANITYFORGE")
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// Validate checks the configuration before a search starts.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return ErrNoPattern
	}
	network := strings.ToLower(c.Network)
	for _, n := range Networks {
		if network == n {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownNetwork, c.Network)
}

// Interval returns the progress cadence as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}
