package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

// preferencesRepository keeps one user_preferences row per user.
type preferencesRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	logger.Debug().Msg("creating preferences repository")
	return &preferencesRepository{
		db:     db,
		logger: logger,
	}
}

// GetPreferences returns the stored JSON document or [ErrPreferencesNotFound].
func (r *preferencesRepository) GetPreferences(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPreferencesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferencesNotFound
		}
		log.Err(err).
			Str("func", "*preferencesRepository.GetPreferences").
			Str("user_id", userID.String()).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to read preferences row")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return raw, nil
}

func (r *preferencesRepository) InsertPreferences(ctx context.Context, userID uuid.UUID, prefs models.UserPreferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := buildInsertPreferencesQuery(userID, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*preferencesRepository.InsertPreferences", userID, query, args)
}

// UpdatePreferences replaces the document of an existing row. A missing row
// is reported as [ErrPreferencesNotSaved].
func (r *preferencesRepository) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs models.UserPreferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := buildUpdatePreferencesQuery(userID, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*preferencesRepository.UpdatePreferences", userID, query, args)
}

func (r *preferencesRepository) UpsertPreferences(ctx context.Context, userID uuid.UUID, prefs models.UserPreferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := buildUpsertPreferencesQuery(userID, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*preferencesRepository.UpsertPreferences", userID, query, args)
}

// GetFavoriteAirports returns the user's favourite ICAO codes. A user without
// a preferences row has no favourites.
func (r *preferencesRepository) GetFavoriteAirports(ctx context.Context, userID uuid.UUID) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoriteAirportsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var favorites models.StringList
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&favorites); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		log.Err(err).
			Str("func", "*preferencesRepository.GetFavoriteAirports").
			Str("user_id", userID.String()).
			Msg("failed to read favourite airports")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if favorites == nil {
		return []string{}, nil
	}
	return favorites, nil
}

func (r *preferencesRepository) SetFavoriteAirports(ctx context.Context, userID uuid.UUID, icaos []string) error {
	query, args, err := buildUpsertFavoriteAirportsQuery(userID, models.StringList(icaos))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*preferencesRepository.SetFavoriteAirports", userID, query, args)
}

func (r *preferencesRepository) exec(ctx context.Context, fn string, userID uuid.UUID, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("user_id", userID.String()).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to write preferences row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", fn).Str("user_id", userID.String()).Msg("no preferences row was written")
		return ErrPreferencesNotSaved
	}

	return nil
}
