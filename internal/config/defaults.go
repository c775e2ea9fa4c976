package config

import "time"

// defaultConfig returns the lowest-priority layer of the configuration.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-pilot-logbook",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 10,
			},
			Datasets: Datasets{
				AirportsPath: "data/airports.json",
				AircraftPath: "data/aircraft.json",
				CacheTTL:     time.Hour,
			},
			Cache: Cache{
				DSN: "logbook-cache.db",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MetricsPath:     "/metrics",
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
			MaxRetries:     3,
			RetryBaseDelay: 200 * time.Millisecond,
		},
		Workers: Workers{
			PreferencesRefreshInterval: 5 * time.Minute,
		},
	}
}
