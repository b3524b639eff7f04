package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Version is the application version, overridable at build time.
var Version = "0.1.0"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds MCP transport configuration.
type ServerConfig struct {
	Transport string `mapstructure:"transport"` // "stdio" or "http"
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
}

// TMDBConfig holds TMDB API configuration.
type TMDBConfig struct {
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
	Timeout  int    `mapstructure:"timeout"` // seconds
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ErrAPIKeyMissing is returned by Validate when no TMDB API key is configured.
var ErrAPIKeyMissing = errors.New("TMDB API key is not configured (set MOVIEHALL_TMDB_API_KEY or TMDB_API_KEY)")

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.moviehall")
	}

	v.SetEnvPrefix("MOVIEHALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Most TMDB tooling uses a bare TMDB_API_KEY, so accept it alongside the
	// prefixed form.
	_ = v.BindEnv("tmdb.api_key", "MOVIEHALL_TMDB_API_KEY", "TMDB_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults + env vars
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return ErrAPIKeyMissing
	}
	if c.Server.Transport != "stdio" && c.Server.Transport != "http" {
		return fmt.Errorf("unknown transport %q (want \"stdio\" or \"http\")", c.Server.Transport)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)

	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.timeout", 30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)
	v.SetDefault("logging.compress", true)
}

// Address returns the server address string.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
