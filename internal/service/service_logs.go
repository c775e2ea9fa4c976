// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type logService struct {
	repository store.LogRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewLogService(repository store.LogRepository, validator validators.Validator, logger *logger.Logger) LogService {
	return &logService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// FetchLogs loads both tables in full, merges them and slices the page out of
// the merged list. A failure of either query fails the whole call.
func (s *logService) FetchLogs(ctx context.Context, userID uuid.UUID, query models.LogsQuery) (models.LogsPage, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*logService.FetchLogs").
		Str("user_id", userID.String()).
		Logger()

	query = query.WithDefaults()
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.LogsPage{}, fmt.Errorf("%w: %w", ErrInvalidLogsQuery, err)
	}
	search := strings.TrimSpace(query.SearchQuery)

	var (
		flights  []models.Flight
		sessions []models.SimulatorSession
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flights, err = s.repository.FetchFlights(gctx, userID, search)
		if err != nil {
			return fmt.Errorf("error fetching flights: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sessions, err = s.repository.FetchSimulatorSessions(gctx, userID, search)
		if err != nil {
			return fmt.Errorf("error fetching simulator sessions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Err(err).Msg("failed to fetch logs")
		return models.LogsPage{}, fmt.Errorf("%w: %w", ErrFetchLogs, err)
	}

	logs := MergeLogs(flights, sessions, query.SortBy)
	return Paginate(logs, query.Page, query.PageSize), nil
}

// MergeLogs tags and concatenates flights and sessions and sorts them by date
// in the direction of sortBy. Entries that compare equal keep their relative
// order, flights first.
func MergeLogs(flights []models.Flight, sessions []models.SimulatorSession, sortBy models.LogsSortBy) []models.Log {
	logs := make([]models.Log, 0, len(flights)+len(sessions))
	for _, f := range flights {
		logs = append(logs, models.FlightLog(f))
	}
	for _, s := range sessions {
		logs = append(logs, models.SimulatorLog(s))
	}

	if sortBy == models.LogsSortDateAsc {
		slices.SortStableFunc(logs, compareLogsAsc)
	} else {
		slices.SortStableFunc(logs, compareLogsDesc)
	}

	return logs
}

// compareLogsDesc orders by date descending. On the same day two flights are
// ordered by block start descending and a simulator session goes after a
// flight.
func compareLogsDesc(a, b models.Log) int {
	if c := b.Base().Date.Compare(a.Base().Date.Time); c != 0 {
		return c
	}

	switch {
	case a.Type == models.LogTypeFlight && b.Type == models.LogTypeFlight:
		return strings.Compare(b.Flight.BlockStart, a.Flight.BlockStart)
	case a.Type == models.LogTypeSimulator && b.Type == models.LogTypeFlight:
		return 1
	case a.Type == models.LogTypeFlight && b.Type == models.LogTypeSimulator:
		return -1
	default:
		return 0
	}
}

// compareLogsAsc orders by date ascending. On the same day only two flights
// are ordered, by block start ascending; any pair involving a simulator
// session compares equal.
func compareLogsAsc(a, b models.Log) int {
	if c := a.Base().Date.Compare(b.Base().Date.Time); c != 0 {
		return c
	}

	if a.Type == models.LogTypeFlight && b.Type == models.LogTypeFlight {
		return strings.Compare(a.Flight.BlockStart, b.Flight.BlockStart)
	}
	return 0
}

// Paginate returns the 1-based page of logs. Pages past the end are empty.
func Paginate(logs []models.Log, page, pageSize int) models.LogsPage {
	total := len(logs)
	page = max(page, 1)
	pageSize = max(pageSize, 1)

	// (page-1)*pageSize is only formed when it cannot exceed total
	from := total
	if page-1 <= total/pageSize {
		from = min((page-1)*pageSize, total)
	}
	to := from + min(pageSize, total-from)

	return models.LogsPage{
		Logs:       logs[from:to],
		TotalCount: total,
		HasMore:    total-from > pageSize,
	}
}
