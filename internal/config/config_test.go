package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.RateLimitMax != 30 || cfg.Server.Window() != time.Minute {
		t.Errorf("rate limit = %d/%v, want 30/1m", cfg.Server.RateLimitMax, cfg.Server.Window())
	}
	if cfg.Quota.MaxCalls != 10 || cfg.Quota.Window() != time.Minute {
		t.Errorf("quota = %d/%v, want 10/1m", cfg.Quota.MaxCalls, cfg.Quota.Window())
	}
	if cfg.Auth.TokenTTL() != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.Auth.TokenTTL())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GENLINGO_SERVER_PORT", "9090")
	t.Setenv("GENLINGO_QUOTA_MAX_CALLS", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Quota.MaxCalls != 5 {
		t.Errorf("MaxCalls = %d, want env override 5", cfg.Quota.MaxCalls)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080, RateLimitMax: 30, RateLimitWindow: 60},
			Quota:  QuotaConfig{MaxCalls: 10, WindowSec: 60},
			Auth:   AuthConfig{JWTSecret: "s", TokenTTLMin: 60},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"zero rate limit", func(c *Config) { c.Server.RateLimitMax = 0 }, true},
		{"zero quota", func(c *Config) { c.Quota.MaxCalls = 0 }, true},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}
