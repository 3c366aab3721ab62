// Package config loads the traitkit CLI configuration from traitkit.yml.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/traitkit/traitkit/introspect"
)

// Config represents the traitkit configuration.
type Config struct {
	Format  string                  `mapstructure:"format"`
	NoColor bool                    `mapstructure:"no_color"`
	Classes []introspect.Definition `mapstructure:"classes"`
}

// Load reads traitkit.yml (or traitkit.yaml) from the working directory.
// A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads the configuration from the given directory.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", "table")
	v.SetDefault("no_color", false)

	v.SetConfigName("traitkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Format != "table" && config.Format != "json" {
		return nil, fmt.Errorf("invalid format: %s (want table or json)", config.Format)
	}

	return &config, nil
}

// BuildRegistry creates a registry holding the configured class
// definitions, in declaration order.
func (c *Config) BuildRegistry() (*introspect.Registry, error) {
	r := introspect.NewRegistry()
	if err := introspect.LoadDefinitions(c.Classes, r); err != nil {
		return nil, err
	}
	return r, nil
}
