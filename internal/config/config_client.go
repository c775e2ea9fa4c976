package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the file the client appends its log to.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the logbook server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// MaxRetries is the number of extra attempts on transient failures.
	MaxRetries uint64
	// RetryBaseDelay is the first backoff step.
	RetryBaseDelay time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// CacheDSN is the sqlite file holding the preferences snapshot.
	CacheDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PreferencesRefreshInterval defines how often preferences are re-read.
	PreferencesRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the layers the same way as [GetStructuredConfig] but with the
// client flag set, maps only the fields relevant to the client runtime, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withClientFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			MaxRetries:     cfg.Adapter.MaxRetries,
			RetryBaseDelay: cfg.Adapter.RetryBaseDelay,
		},
		Storage: ClientStorage{
			CacheDSN: cfg.Storage.Cache.DSN,
		},
		Workers: ClientWorkers{
			PreferencesRefreshInterval: cfg.Workers.PreferencesRefreshInterval,
		},
	}
}
