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

type crewRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCrewRepository(db *DB, logger *logger.Logger) CrewRepository {
	logger.Debug().Msg("creating crew repository")
	return &crewRepository{
		db:     db,
		logger: logger,
	}
}

// FetchCrew returns one page of crew members sorted by the name order the
// user prefers, together with the number of matching rows.
func (r *crewRepository) FetchCrew(ctx context.Context, userID uuid.UUID, query models.ListQuery, order models.NameDisplay) ([]models.CrewMember, int, error) {
	log := logger.FromContext(ctx)
	query = query.WithDefaults()

	countQuery, countArgs, err := buildCountCrewQuery(userID, query.SearchQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	total, err := countRows(ctx, r.db, "*crewRepository.FetchCrew", countQuery, countArgs)
	if err != nil {
		return nil, 0, err
	}

	selectQuery, args, err := buildSelectCrewQuery(userID, query, order)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, selectQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*crewRepository.FetchCrew").Bool("retryable", r.db.retryable(err)).Msg("failed to query crew")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	crew := make([]models.CrewMember, 0)
	for rows.Next() {
		var m models.CrewMember
		if err = rows.Scan(crewScanTargets(&m)...); err != nil {
			log.Err(err).Str("func", "*crewRepository.FetchCrew").Msg("failed to scan crew row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		crew = append(crew, m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return crew, total, nil
}

func (r *crewRepository) GetCrewMember(ctx context.Context, userID, id uuid.UUID) (models.CrewMember, error) {
	query, args, err := buildSelectCrewMemberQuery(userID, id)
	if err != nil {
		return models.CrewMember{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var m models.CrewMember
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(crewScanTargets(&m)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CrewMember{}, ErrCrewMemberNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*crewRepository.GetCrewMember").Msg("failed to read crew member")
		return models.CrewMember{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return m, nil
}

func crewScanTargets(m *models.CrewMember) []any {
	return []any{
		&m.ID,
		&m.UserID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.LicenseNumber,
		&m.Company,
		&m.CompanyID,
		&m.Note,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}
