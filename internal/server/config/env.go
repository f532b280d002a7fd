package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

const envPrefix = "WANDERGENIE_SERVER_"

type envConfig struct {
	EndpointAddr                string        `env:"ADDRESS"`
	SecretKey                   string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"TOKEN_TTL"`
	DatabaseName                string        `env:"DATABASE_NAME"`
	LogLevel                    string        `env:"LOG_LEVEL"`
}

// parseEnv overlays config with WANDERGENIE_SERVER_* variables. Loading a
// .env file is left to main.
func parseEnv(config *Config) error {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: envPrefix}); err != nil {
		return err
	}

	if ec.EndpointAddr != "" {
		config.EndpointAddr = ec.EndpointAddr
	}
	if ec.SecretKey != "" {
		config.SecretKey = ec.SecretKey
	}
	if ec.AccessTokenValidityDuration != 0 {
		config.AccessTokenValidityDuration = ec.AccessTokenValidityDuration
	}
	if ec.DatabaseName != "" {
		config.DatabaseName = ec.DatabaseName
	}
	if ec.LogLevel != "" {
		config.LogLevel = ec.LogLevel
	}
	return nil
}
