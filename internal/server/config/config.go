// Package config handles configuration for the development backend:
// defaults, an optional JSON file, the environment and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings of the WanderGenie development backend.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - AccessTokenValidityDuration: lifetime of issued access tokens.
//   - DatabaseName: reported by /health.
//   - LogLevel: zap level of the request log.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	DatabaseName                string
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.DatabaseName = "wandergenie"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// then the environment and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("secret key is empty")
	}
	if cfg.AccessTokenValidityDuration <= 0 {
		return nil, fmt.Errorf("token validity must be positive, got %v", cfg.AccessTokenValidityDuration)
	}
	return cfg, nil
}
