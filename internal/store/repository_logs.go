package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

type logRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLogRepository(db *DB, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating log repository")
	return &logRepository{
		db:     db,
		logger: logger,
	}
}

func (r *logRepository) FetchFlights(ctx context.Context, userID uuid.UUID, search string) ([]models.Flight, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFlightsQuery(userID, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*logRepository.FetchFlights").
			Str("user_id", userID.String()).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to query flights")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	flights := make([]models.Flight, 0)
	for rows.Next() {
		var f models.Flight
		if err = rows.Scan(flightScanTargets(&f)...); err != nil {
			log.Err(err).Str("func", "*logRepository.FetchFlights").Msg("failed to scan flight row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		flights = append(flights, f)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*logRepository.FetchFlights").Msg("error iterating flight rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return flights, nil
}

func (r *logRepository) FetchSimulatorSessions(ctx context.Context, userID uuid.UUID, search string) ([]models.SimulatorSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSimulatorSessionsQuery(userID, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*logRepository.FetchSimulatorSessions").
			Str("user_id", userID.String()).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to query simulator sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.SimulatorSession, 0)
	for rows.Next() {
		var s models.SimulatorSession
		targets := append(logBaseScanTargets(&s.LogBase), &s.InstructorID, &s.SessionMinutes)
		if err = rows.Scan(targets...); err != nil {
			log.Err(err).Str("func", "*logRepository.FetchSimulatorSessions").Msg("failed to scan simulator session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

func (r *logRepository) CountDepartures(ctx context.Context, userID uuid.UUID, icao string) (int, error) {
	return r.countMovements(ctx, userID, "departure_airport_code", icao)
}

func (r *logRepository) CountArrivals(ctx context.Context, userID uuid.UUID, icao string) (int, error) {
	return r.countMovements(ctx, userID, "destination_airport_code", icao)
}

func (r *logRepository) countMovements(ctx context.Context, userID uuid.UUID, column, icao string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountMovementsQuery(userID, column, icao)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*logRepository.countMovements").
			Str("column", column).
			Str("icao", icao).
			Msg("failed to count flights")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// logBaseScanTargets lists destinations in the order of logBaseColumns.
func logBaseScanTargets(b *models.LogBase) []any {
	return []any{
		&b.ID,
		&b.UserID,
		&b.Date,
		&b.AircraftID,
		&b.DutyStart,
		&b.DutyEnd,
		&b.DutyTimeMinutes,
		&b.HobbsStart,
		&b.HobbsEnd,
		&b.Remarks,
		&b.TrainingDescription,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

// flightScanTargets lists destinations in the order of flightColumns.
func flightScanTargets(f *models.Flight) []any {
	return append(logBaseScanTargets(&f.LogBase),
		&f.PicID,
		&f.DepartureAirportCode,
		&f.DepartureRunway,
		&f.DestinationAirportCode,
		&f.DestinationRunway,
		&f.BlockStart,
		&f.BlockEnd,
		&f.FlightStart,
		&f.FlightEnd,
		&f.ScheduledStart,
		&f.ScheduledEnd,
		&f.TotalBlockMinutes,
		&f.TotalAirMinutes,
		&f.NightMinutes,
		&f.IFRMinutes,
		&f.XCMinutes,
		&f.PICMinutes,
		&f.DualMinutes,
		&f.CopilotMinutes,
		&f.InstructorMinutes,
		&f.DayTakeoffs,
		&f.DayLandings,
		&f.NightTakeoffs,
		&f.NightLandings,
		&f.GoArounds,
		&f.Approaches,
		&f.IsPIC,
		&f.IsSolo,
		&f.IsSPIC,
		&f.IsPICUS,
		&f.PilotFlying,
		&f.TachStart,
		&f.TachEnd,
		&f.Fuel,
		&f.Passengers,
		&f.FlightNumber,
	)
}
