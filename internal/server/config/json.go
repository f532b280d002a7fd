package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wandergenie/internal/flagx"
	"github.com/dmitrijs2005/wandergenie/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept "30m" or integer nanoseconds; absent keys keep earlier values.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	DatabaseName                string         `json:"database_name"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson overlays config with the JSON file named by -c/-config, if any.
func parseJson(config *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.DatabaseName != "" {
		config.DatabaseName = c.DatabaseName
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	return nil
}
