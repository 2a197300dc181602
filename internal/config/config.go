// Package config loads the service configuration from an optional YAML file
// and GENLINGO_-prefixed environment variables. Oracle provider settings
// live separately in internal/llm's own env config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service-level configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Quota   QuotaConfig   `mapstructure:"quota"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	RateLimitMax    int      `mapstructure:"rate_limit_max"`
	RateLimitWindow int      `mapstructure:"rate_limit_window_sec"`
}

// StorageConfig holds the database location.
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwt_secret"`
	TokenTTLMin int    `mapstructure:"token_ttl_min"`
}

// QuotaConfig holds the outbound oracle call budget.
type QuotaConfig struct {
	MaxCalls  int `mapstructure:"max_calls"`
	WindowSec int `mapstructure:"window_sec"`
}

// LogConfig selects the logger mode.
type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// Load reads configuration from the given file (optional) plus GENLINGO_
// environment variables, falling back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("genlingo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("GENLINGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine; defaults plus env carry the config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RateLimitMax < 1 {
		return fmt.Errorf("server.rate_limit_max must be positive")
	}
	if c.Quota.MaxCalls < 1 {
		return fmt.Errorf("quota.max_calls must be positive")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	return nil
}

// Window returns the inbound limiter window as a duration.
func (c *ServerConfig) Window() time.Duration {
	return time.Duration(c.RateLimitWindow) * time.Second
}

// Window returns the quota window as a duration.
func (c *QuotaConfig) Window() time.Duration {
	return time.Duration(c.WindowSec) * time.Second
}

// TokenTTL returns the session token lifetime as a duration.
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMin) * time.Minute
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.rate_limit_max", 30)
	v.SetDefault("server.rate_limit_window_sec", 60)

	v.SetDefault("storage.db_path", "./data/genlingo.db")

	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl_min", 24*60)

	v.SetDefault("quota.max_calls", 10)
	v.SetDefault("quota.window_sec", 60)

	v.SetDefault("log.mode", "dev")
}
