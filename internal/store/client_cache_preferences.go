package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/models"
	sq "github.com/Masterminds/squirrel"
)

const preferencesSnapshotKey = "user_preferences"

// preferencesCache stores the snapshot as one row of the snapshots table.
// It decodes but does not validate: callers decide what a usable snapshot is.
type preferencesCache struct {
	db     *DB
	logger *logger.Logger
}

func NewPreferencesCache(db *DB, logger *logger.Logger) PreferencesCache {
	return &preferencesCache{
		db:     db,
		logger: logger,
	}
}

// Get returns the stored snapshot, [ErrSnapshotNotFound] when there is none
// and [ErrCorruptedSnapshot] when the payload is not a preferences document.
func (c *preferencesCache) Get(ctx context.Context) (models.UserPreferences, error) {
	query, args, err := sq.Select("payload").
		From("snapshots").
		Where(sq.Eq{"key": preferencesSnapshotKey}).
		ToSql()
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	if err = c.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserPreferences{}, ErrSnapshotNotFound
		}
		c.logger.Err(err).Str("func", "*preferencesCache.Get").Msg("failed to read snapshot")
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var prefs models.UserPreferences
	if err = json.Unmarshal([]byte(payload), &prefs); err != nil {
		c.logger.Warn().Err(err).Str("func", "*preferencesCache.Get").Msg("snapshot is not valid json")
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrCorruptedSnapshot, err)
	}

	return prefs, nil
}

// Put overwrites the snapshot.
func (c *preferencesCache) Put(ctx context.Context, prefs models.UserPreferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := sq.Insert("snapshots").
		Columns("key", "payload").
		Values(preferencesSnapshotKey, string(payload)).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "*preferencesCache.Put").Msg("failed to write snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Invalidate removes the snapshot. Removing a missing snapshot is not an error.
func (c *preferencesCache) Invalidate(ctx context.Context) error {
	query, args, err := sq.Delete("snapshots").
		Where(sq.Eq{"key": preferencesSnapshotKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		c.logger.Err(err).Str("func", "*preferencesCache.Invalidate").Msg("failed to delete snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
