// Package config provides Viper-based configuration loading for the
// content extraction tool.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SourceConfig names the legacy authoring text to extract from.
type SourceConfig struct {
	// Path is the location of the source text file.
	Path string `mapstructure:"path"`
}

// OutputConfig holds settings for the generated content tree.
type OutputConfig struct {
	// Dir is the root directory the item, monster, and scene documents are
	// written under.
	Dir string `mapstructure:"dir"`
	// Format is the document serialization: "json" or "yaml".
	Format string `mapstructure:"format"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Source.Path == "" {
		errs = append(errs, "source.path must not be empty")
	}
	if c.Output.Dir == "" {
		errs = append(errs, "output.dir must not be empty")
	}
	validFormats := map[string]bool{"json": true, "yaml": true}
	if !validFormats[c.Output.Format] {
		errs = append(errs, fmt.Sprintf("output.format must be one of [json, yaml], got %q", c.Output.Format))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance carrying the default values and the
// ZORK_ environment override wiring, ready for flag binding.
func Defaults() *viper.Viper {
	return newViper()
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with ZORK_ prefix
	v.SetEnvPrefix("ZORK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("source.path", "reference/dung_mud_source.txt")
	v.SetDefault("output.dir", "data")
	v.SetDefault("output.format", "json")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	return v
}
