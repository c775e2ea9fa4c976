// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
)

// ClientStorages groups the storage the terminal client keeps on the device.
type ClientStorages struct {
	// PreferencesCache holds the last confirmed preferences snapshot.
	PreferencesCache PreferencesCache

	db *DB
}

// NewClientStorages opens the sqlite file named by cfg.CacheDSN and wires the
// snapshot cache to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.CacheDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		PreferencesCache: NewPreferencesCache(db, logger),
		db:               db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
