package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the upstream World Bank Documents & Reports API. The API is
// public and unauthenticated; these rarely need to change outside of tests.
const (
	DefaultBaseURL        = "https://search.worldbank.org/api/v3/wds"
	DefaultTimeout        = 30 * time.Second
	DefaultCharacterLimit = 25000
	DefaultListenAddr     = ":8002"
)

// Config holds all settings for the wbdocs server. It is loaded once at
// startup and read-only afterwards.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Render RenderConfig `mapstructure:"render"`
	Server ServerConfig `mapstructure:"server"`
}

// APIConfig configures the upstream HTTP client.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RenderConfig configures text output rendering.
type RenderConfig struct {
	CharacterLimit int `mapstructure:"character_limit"`
}

// ServerConfig identifies this MCP server and sets the HTTP listen address.
type ServerConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Address string `mapstructure:"address"`
	Debug   bool   `mapstructure:"debug"`
}

// Load reads configuration from an optional YAML file and WBDOCS_* environment
// variables. Every key has a working default, so a missing config file is not
// an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("wbdocs")
	v.SetConfigType("yaml")

	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("render.character_limit", DefaultCharacterLimit)
	v.SetDefault("server.name", "worldbank-docs")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("server.address", DefaultListenAddr)
	v.SetDefault("server.debug", false)

	if path == "" {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("WBDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that loaded values are usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be greater than zero")
	}
	if c.Render.CharacterLimit <= 0 {
		return fmt.Errorf("render.character_limit must be greater than zero")
	}
	return nil
}
