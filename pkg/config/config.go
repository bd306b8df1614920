// Package config loads optional defaults for the textpart CLI from a config
// file or environment variables. Command-line flags always take precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the tool-wide defaults.
type Config struct {
	Debug  bool         `mapstructure:"debug"`  // Enable development logging
	Split  SplitConfig  `mapstructure:"split"`  // Defaults for the split command
	Concat ConcatConfig `mapstructure:"concat"` // Defaults for the concat command
}

// SplitConfig holds split command defaults.
type SplitConfig struct {
	Extension string `mapstructure:"extension"` // Extension for output parts
}

// ConcatConfig holds concat command defaults.
type ConcatConfig struct {
	Delimiter string `mapstructure:"delimiter"` // Header delimiter string
}

// Default returns the built-in configuration used when no config file exists.
func Default() Config {
	return Config{
		Debug:  false,
		Split:  SplitConfig{Extension: ".txt"},
		Concat: ConcatConfig{Delimiter: "==="},
	}
}

// Load reads textpart.yaml from the working directory or ~/.textpart/, then
// applies TEXTPART_* environment variables on top. A missing config file is
// not an error; a malformed one is returned alongside the defaults so the
// caller can warn and continue.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("textpart")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".textpart"))
	}

	v.SetEnvPrefix("TEXTPART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("split.extension", cfg.Split.Extension)
	v.SetDefault("concat.delimiter", cfg.Concat.Delimiter)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
