// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the logbook
// server and terminal client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, log level and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the database, static dataset and local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the PostgreSQL connection settings of the server.
	DB DB `envPrefix:"DB_"`

	// Datasets holds the locations of the static airport and aircraft
	// directories and how long a parsed copy is kept.
	Datasets Datasets `envPrefix:"DATASETS_"`

	// Cache holds the client-side preferences snapshot store.
	Cache Cache `envPrefix:"CACHE_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client appends its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MetricsPath is where Prometheus metrics are served. "-" disables them.
	// Env: SERVER_METRICS_PATH
	MetricsPath string `env:"METRICS_PATH"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the connection pool. Zero means unlimited.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Datasets holds the static directory files served by the server.
type Datasets struct {
	// AirportsPath points at airports.json.
	// Env: STORAGE_DATASETS_AIRPORTS_PATH
	AirportsPath string `env:"AIRPORTS_PATH"`

	// AircraftPath points at aircraft.json.
	// Env: STORAGE_DATASETS_AIRCRAFT_PATH
	AircraftPath string `env:"AIRCRAFT_PATH"`

	// CacheTTL is how long a parsed directory is reused before the file is
	// read again.
	// Env: STORAGE_DATASETS_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Cache holds the terminal client's local snapshot store.
type Cache struct {
	// DSN is the sqlite file holding the preferences snapshot.
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the client's outbound HTTP settings.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the logbook server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries is the number of extra attempts on transient failures.
	// Env: ADAPTER_MAX_RETRIES
	MaxRetries uint64 `env:"MAX_RETRIES"`

	// RetryBaseDelay is the first backoff step of those attempts.
	// Env: ADAPTER_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PreferencesRefreshInterval is how often the client re-reads its
	// preferences from the server after the first background refresh.
	// Env: WORKERS_PREFERENCES_REFRESH_INTERVAL
	PreferencesRefreshInterval time.Duration `env:"PREFERENCES_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
