// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCrewRepo(t *testing.T) (*crewRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &crewRepository{db: db, logger: logger.Nop()}, mock
}

func crewRow(first, last string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		uuid.NewString(), uuid.NewString(), first, last,
		nil, nil, nil, "LIC-1", "Lufthansa", nil, nil, now, now,
	}
}

func TestCrewRepository_FetchCrew_LastFirstOrder(t *testing.T) {
	repo, mock := newTestCrewRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM crew").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("ORDER BY last_name ASC, first_name ASC").
		WillReturnRows(sqlmock.NewRows(crewColumns).AddRow(crewRow("Chuck", "Yeager")...))

	crew, total, err := repo.FetchCrew(context.Background(), uuid.New(), models.ListQuery{}, models.NameDisplayLastFirst)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, crew, 1)
	assert.Equal(t, "Yeager", crew[0].LastName)
	require.NotNil(t, crew[0].Company)
	assert.Equal(t, "Lufthansa", *crew[0].Company)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrewRepository_FetchCrew_QueryError(t *testing.T) {
	repo, mock := newTestCrewRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM crew").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .* FROM crew").WillReturnError(sql.ErrConnDone)

	_, _, err := repo.FetchCrew(context.Background(), uuid.New(), models.ListQuery{}, models.NameDisplayFirstLast)
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCrewRepository_GetCrewMember_Missing(t *testing.T) {
	repo, mock := newTestCrewRepo(t)

	mock.ExpectQuery("SELECT .* FROM crew WHERE").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCrewMember(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrCrewMemberNotFound)
}
