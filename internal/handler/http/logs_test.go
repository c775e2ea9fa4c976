package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

func TestFetchLogs(t *testing.T) {
	userID := uuid.New()

	flight := models.FlightLog(models.Flight{
		LogBase:                models.LogBase{ID: uuid.New(), UserID: userID, Date: models.NewDate(2026, time.March, 4)},
		DepartureAirportCode:   "EDDF",
		DestinationAirportCode: "LOWI",
		BlockStart:             "08:15",
		BlockEnd:               "09:20",
	})
	session := models.SimulatorLog(models.SimulatorSession{
		LogBase:        models.LogBase{ID: uuid.New(), UserID: userID, Date: models.NewDate(2026, time.March, 6)},
		SessionMinutes: 120,
	})

	t.Run("query parameters reach the service", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.logs.EXPECT().
			FetchLogs(gomock.Any(), userID, models.LogsQuery{
				SearchQuery: "EDDF",
				Page:        2,
				PageSize:    25,
				SortBy:      models.LogsSortDateAsc,
			}).
			Return(models.LogsPage{Logs: []models.Log{session, flight}, TotalCount: 27, HasMore: false}, nil)

		rr := serve(t, h, http.MethodGet, "/api/logs?search=EDDF&page=2&pageSize=25&sortBy=date-asc", nil, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		result := decodeBody[models.LogsResult](t, rr)
		assert.Empty(t, result.Error)
		assert.Equal(t, 27, result.TotalCount)
		assert.False(t, result.HasMore)
		require.Len(t, result.Logs, 2)
		assert.Equal(t, models.LogTypeSimulator, result.Logs[0].Type)
		assert.Equal(t, models.LogTypeFlight, result.Logs[1].Type)
		assert.Equal(t, "LOWI", result.Logs[1].Flight.DestinationAirportCode)
	})

	t.Run("missing parameters are left to the defaults", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.logs.EXPECT().
			FetchLogs(gomock.Any(), userID, models.LogsQuery{}).
			Return(models.LogsPage{Logs: []models.Log{}}, nil)

		rr := serve(t, h, http.MethodGet, "/api/logs", nil, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"logs":[],"totalCount":0,"hasMore":false}`, rr.Body.String())
	})

	t.Run("store failure is reported in the body with its cause", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.logs.EXPECT().
			FetchLogs(gomock.Any(), userID, gomock.Any()).
			Return(models.LogsPage{}, fmt.Errorf("%w: simulator sessions: timeout", service.ErrFetchLogs))

		rr := serve(t, h, http.MethodGet, "/api/logs", nil, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"logs":[],"totalCount":0,"hasMore":false,"error":"Failed to fetch logs: simulator sessions: timeout"}`, rr.Body.String())
	})

	t.Run("bare store failure keeps the generic message", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.logs.EXPECT().
			FetchLogs(gomock.Any(), userID, gomock.Any()).
			Return(models.LogsPage{}, service.ErrFetchLogs)

		rr := serve(t, h, http.MethodGet, "/api/logs", nil, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, app.MsgFailedToFetchLogs, decodeBody[models.LogsResult](t, rr).Error)
	})

	t.Run("invalid query from the service", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.logs.EXPECT().
			FetchLogs(gomock.Any(), userID, gomock.Any()).
			Return(models.LogsPage{}, fmt.Errorf("%w: pageSize must be at most 500", service.ErrInvalidLogsQuery))

		rr := serve(t, h, http.MethodGet, "/api/logs?pageSize=900", nil, testToken)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid logs query: pageSize must be at most 500", decodeBody[errorResponse](t, rr).Error)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)

		rr := serve(t, h, http.MethodGet, "/api/logs?page=two", nil, testToken)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid query parameter: page must be an integer", decodeBody[errorResponse](t, rr).Error)
	})

	t.Run("anonymous caller gets an empty list", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rr := serve(t, h, http.MethodGet, "/api/logs?page=3", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		result := decodeBody[models.LogsResult](t, rr)
		assert.Equal(t, app.MsgAuthenticationRequired, result.Error)
		assert.Empty(t, result.Logs)
		assert.Zero(t, result.TotalCount)
	})
}
