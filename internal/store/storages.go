package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
)

// Storages groups the PostgreSQL repositories of the server.
type Storages struct {
	UserRepository        UserRepository
	PreferencesRepository PreferencesRepository
	LogRepository         LogRepository
	FleetRepository       FleetRepository
	CrewRepository        CrewRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// every repository to the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		PreferencesRepository: NewPreferencesRepository(db, logger),
		LogRepository:         NewLogRepository(db, logger),
		FleetRepository:       NewFleetRepository(db, logger),
		CrewRepository:        NewCrewRepository(db, logger),
		db:                    db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
