package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

type fleetRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFleetRepository(db *DB, logger *logger.Logger) FleetRepository {
	logger.Debug().Msg("creating fleet repository")
	return &fleetRepository{
		db:     db,
		logger: logger,
	}
}

// FetchFleet returns one page of the user's fleet ordered by registration
// together with the number of rows matching the search.
func (r *fleetRepository) FetchFleet(ctx context.Context, userID uuid.UUID, query models.ListQuery) ([]models.Asset, int, error) {
	query = query.WithDefaults()

	countQuery, countArgs, err := buildCountFleetQuery(userID, query.SearchQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	total, err := countRows(ctx, r.db, "*fleetRepository.FetchFleet", countQuery, countArgs)
	if err != nil {
		return nil, 0, err
	}

	selectQuery, args, err := buildSelectFleetQuery(userID, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	assets, err := r.queryAssets(ctx, "*fleetRepository.FetchFleet", selectQuery, args)
	if err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

func (r *fleetRepository) GetAsset(ctx context.Context, userID, id uuid.UUID) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAssetQuery(userID, id)
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var asset models.Asset
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(assetScanTargets(&asset)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrAssetNotFound
		}
		log.Err(err).Str("func", "*fleetRepository.GetAsset").Str("id", id.String()).Msg("failed to read asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return asset, nil
}

func (r *fleetRepository) GetAssetsByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Asset, error) {
	if len(ids) == 0 {
		return []models.Asset{}, nil
	}

	query, args, err := buildSelectAssetsByIDsQuery(userID, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryAssets(ctx, "*fleetRepository.GetAssetsByIDs", query, args)
}

func (r *fleetRepository) queryAssets(ctx context.Context, fn, query string, args []any) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Bool("retryable", r.db.retryable(err)).Msg("failed to query fleet")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		var a models.Asset
		if err = rows.Scan(assetScanTargets(&a)...); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan fleet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		assets = append(assets, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assets, nil
}

// countRows runs a single-value COUNT query.
func countRows(ctx context.Context, db *DB, fn, query string, args []any) (int, error) {
	var total int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

func assetScanTargets(a *models.Asset) []any {
	return []any{
		&a.ID,
		&a.UserID,
		&a.Registration,
		&a.IsSimulator,
		&a.Type,
		&a.Model,
		&a.Manufacturer,
		&a.Category,
		&a.EngineCount,
		&a.EngineType,
		&a.PassengerSeats,
		&a.Operator,
		&a.Status,
		&a.Note,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}
