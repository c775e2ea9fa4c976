// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogRepo(t *testing.T) (*logRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &logRepository{db: db, logger: logger.Nop()}, mock
}

func logBaseRow(id, userID uuid.UUID, date string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id.String(),
		userID.String(),
		date,
		uuid.NewString(),
		"08:00:00",
		nil,
		int64(120),
		1012.5,
		nil,
		"checkride",
		nil,
		now,
		now,
	}
}

// flightRow follows the order of flightColumns.
func flightRow(id, userID uuid.UUID, date, blockStart string) []driver.Value {
	return append(logBaseRow(id, userID, date),
		nil, "EDDF", "25C", "EGLL", nil,
		blockStart, "11:05:00", nil, nil, nil, nil,
		int64(95), int64(80), int64(0), int64(30), int64(80), int64(95), int64(0), int64(0), int64(0),
		int64(1), int64(1), int64(0), int64(0), int64(0),
		[]byte(`["ILS 27L"]`),
		true, false, false, false, true,
		nil, nil, nil, int64(2), "LH900",
	)
}

func TestLogRepository_FetchFlights(t *testing.T) {
	repo, mock := newTestLogRepo(t)
	userID := uuid.New()
	id := uuid.New()

	rows := sqlmock.NewRows(flightColumns).AddRow(flightRow(id, userID, "2024-05-01", "09:30:00")...)
	mock.ExpectQuery("SELECT .* FROM flights WHERE").
		WithArgs(userID.String(), "%EDDF%", "%EDDF%", "%EDDF%", "%EDDF%", "%EDDF%").
		WillReturnRows(rows)

	flights, err := repo.FetchFlights(context.Background(), userID, "EDDF")
	require.NoError(t, err)
	require.Len(t, flights, 1)

	f := flights[0]
	assert.Equal(t, id, f.ID)
	assert.Equal(t, "2024-05-01", f.Date.String())
	assert.Equal(t, "09:30:00", f.BlockStart)
	assert.Equal(t, "EDDF", f.DepartureAirportCode)
	require.NotNil(t, f.DepartureRunway)
	assert.Equal(t, "25C", *f.DepartureRunway)
	assert.Nil(t, f.DestinationRunway)
	assert.Nil(t, f.PicID)
	assert.Equal(t, []string{"ILS 27L"}, []string(f.Approaches))
	assert.True(t, f.IsPIC)
	assert.True(t, f.PilotFlying)
	require.NotNil(t, f.Passengers)
	assert.Equal(t, 2, *f.Passengers)
	require.NotNil(t, f.HobbsStart)
	assert.InDelta(t, 1012.5, *f.HobbsStart, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogRepository_FetchFlights_Empty(t *testing.T) {
	repo, mock := newTestLogRepo(t)

	mock.ExpectQuery("SELECT .* FROM flights").
		WillReturnRows(sqlmock.NewRows(flightColumns))

	flights, err := repo.FetchFlights(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}

func TestLogRepository_FetchFlights_QueryError(t *testing.T) {
	repo, mock := newTestLogRepo(t)

	mock.ExpectQuery("SELECT .* FROM flights").WillReturnError(errors.New("connection reset"))

	_, err := repo.FetchFlights(context.Background(), uuid.New(), "")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLogRepository_FetchFlights_ScanError(t *testing.T) {
	repo, mock := newTestLogRepo(t)

	row := flightRow(uuid.New(), uuid.New(), "not-a-date", "09:30:00")
	mock.ExpectQuery("SELECT .* FROM flights").
		WillReturnRows(sqlmock.NewRows(flightColumns).AddRow(row...))

	_, err := repo.FetchFlights(context.Background(), uuid.New(), "")
	require.ErrorIs(t, err, ErrScanningRow)
}

func TestLogRepository_FetchSimulatorSessions(t *testing.T) {
	repo, mock := newTestLogRepo(t)
	userID := uuid.New()
	instructor := uuid.New()

	row := append(logBaseRow(uuid.New(), userID, "2024-04-30"), instructor.String(), int64(90))
	mock.ExpectQuery("SELECT .* FROM simulator_sessions").
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows(simulatorColumns).AddRow(row...))

	sessions, err := repo.FetchSimulatorSessions(context.Background(), userID, "")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 90, sessions[0].SessionMinutes)
	require.NotNil(t, sessions[0].InstructorID)
	assert.Equal(t, instructor, *sessions[0].InstructorID)
}

func TestLogRepository_CountMovements(t *testing.T) {
	repo, mock := newTestLogRepo(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM flights WHERE departure_airport_code").
		WithArgs("EDDF", userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM flights WHERE destination_airport_code").
		WithArgs("EDDF", userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	departures, err := repo.CountDepartures(context.Background(), userID, "eddf")
	require.NoError(t, err)
	arrivals, err := repo.CountArrivals(context.Background(), userID, "EDDF")
	require.NoError(t, err)

	assert.Equal(t, 7, departures)
	assert.Equal(t, 5, arrivals)
}
