package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jchantrell/camel2snake/internal/rename"
	"github.com/spf13/viper"
)

type Config struct {
	Root       string   `mapstructure:"root"`
	Extensions []string `mapstructure:"extensions"`
	SkipDirs   []string `mapstructure:"skip_dirs"`
	LogLevel   string   `mapstructure:"log_level"`
	LogFormat  string   `mapstructure:"log_format"`
}

// Load reads configuration from file and environment on top of the defaults.
// A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("root", ".")
	v.SetDefault("extensions", rename.DefaultExtensions)
	v.SetDefault("skip_dirs", rename.DefaultSkipDirs)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("CAMEL2SNAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Config file handling
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName("camel2snake")
		v.SetConfigType("yaml")
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration and normalises extensions to a leading dot.
// It should be called once command line overrides have been applied.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root directory cannot be empty")
	}

	exts, err := normalizeExtensions(c.Extensions)
	if err != nil {
		return fmt.Errorf("invalid extension configuration: %w", err)
	}
	c.Extensions = exts

	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if err := validateLogFormat(c.LogFormat); err != nil {
		return err
	}

	return nil
}
