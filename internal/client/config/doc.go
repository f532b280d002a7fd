// Package config loads runtime configuration for the WanderGenie CLI.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A config file given with -c or -config; YAML when the name ends in
//     .yaml or .yml, JSON otherwise.
//  3. Environment variables prefixed WANDERGENIE_ (SERVER_URL, DB_PATH,
//     REQUEST_TIMEOUT, LOG_LEVEL, LOG_FORMAT), including those from a .env
//     file in the working directory.
//  4. Flags -a (server URL), -d (database path), -t (timeout seconds) and
//     -l (log level).
//
// A JSON config file looks like:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "database_path": "wandergenie.db",
//	  "request_timeout": "60s",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
package config
