// Package config provides Viper-based hierarchical configuration: defaults,
// an optional YAML file, then environment variables, each layer overriding
// the last.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Host           string `mapstructure:"host" yaml:"host"`
		Port           int    `mapstructure:"port" yaml:"port"`
		AllowedOrigins string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
		MaxUploadMB    int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	} `mapstructure:"server" yaml:"server"`

	Categories struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"categories" yaml:"categories"`

	Export struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"export" yaml:"export"`
}

var loadEnvOnce sync.Once

// Load builds the configuration: defaults, then an optional config.yaml in
// the standard locations, then FINCOACH_* environment variables.
func Load() (*Config, error) {
	LoadEnv()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/fincoach")
	v.AddConfigPath(".fincoach")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINCOACH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults and env vars carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// LoadEnv loads variables from a .env file in the working directory or its
// parent, if one exists. Missing files are not an error.
func LoadEnv() {
	loadEnvOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			parent := filepath.Join("..", ".env")
			if _, err := os.Stat(parent); err == nil {
				envFile = parent
			} else {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", "*")
	v.SetDefault("server.max_upload_mb", 16)

	v.SetDefault("categories.rules_file", "categories.yaml")

	v.SetDefault("export.directory", "exports")
}

func validate(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.Server.MaxUploadMB)
	}
	return nil
}
