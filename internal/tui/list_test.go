package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testFlight(date models.Date, dep, dest string, blockMinutes int) models.Log {
	return models.FlightLog(models.Flight{
		LogBase:                models.LogBase{Date: date, Remarks: strPtr("pattern work")},
		DepartureAirportCode:   dep,
		DestinationAirportCode: dest,
		TotalBlockMinutes:      blockMinutes,
	})
}

func testSimulator(date models.Date, minutes int) models.Log {
	return models.SimulatorLog(models.SimulatorSession{
		LogBase:        models.LogBase{Date: date},
		SessionMinutes: minutes,
	})
}

// loadedList returns a list that already shows page.
func loadedList(t *testing.T, logs *stubLogs, page models.LogsPage, copyFn func(string) error) logsListModel {
	t.Helper()

	logs.fetch = func(models.LogsQuery) (models.LogsPage, error) { return page, nil }
	m := newLogsListModel(context.Background(), logs, copyFn)

	loaded := findMsg[logsLoadedMsg](t, runCmd(m.Init()))
	m, _ = m.Update(loaded)
	require.False(t, m.loading)
	return m
}

func TestLogsList_InitLoadsFirstPage(t *testing.T) {
	logs := &stubLogs{}
	page := models.LogsPage{
		Logs:       []models.Log{testFlight(models.NewDate(2026, time.March, 2), "EDDF", "LOWW", 95)},
		TotalCount: 1,
	}

	m := loadedList(t, logs, page, nil)

	require.Len(t, logs.queries, 1)
	assert.Equal(t, models.LogsQuery{Page: 1, PageSize: logsPageSize, SortBy: models.LogsSortDateDesc}, logs.queries[0])
	assert.Equal(t, page, m.page)
	assert.Contains(t, m.View(), "EDDF-LOWW")
	assert.Contains(t, m.View(), "1:35")
}

func TestLogsList_IgnoresStaleResult(t *testing.T) {
	m := newLogsListModel(context.Background(), &stubLogs{}, nil)

	stale := m.query
	stale.Page = 7
	m, _ = m.Update(logsLoadedMsg{query: stale, page: models.LogsPage{TotalCount: 99}})

	assert.True(t, m.loading)
	assert.Zero(t, m.page.TotalCount)
}

func TestLogsList_LoadError(t *testing.T) {
	m := newLogsListModel(context.Background(), &stubLogs{}, nil)

	m, _ = m.Update(logsLoadedMsg{query: m.query, err: service.ErrFetchLogs})
	assert.False(t, m.loading)
	assert.Equal(t, "Failed to fetch logs", m.errMsg)
	assert.False(t, m.sessionExpired)

	m, _ = m.Update(logsLoadedMsg{query: m.query, err: service.ErrTokenIsExpired})
	assert.True(t, m.sessionExpired)
}

func TestLogsList_Paging(t *testing.T) {
	logs := &stubLogs{}
	m := loadedList(t, logs, models.LogsPage{TotalCount: 30, HasMore: true}, nil)

	// назад с первой страницы нельзя
	m, cmd := m.Update(keyRunes("h"))
	assert.Nil(t, cmd)

	m, cmd = m.Update(keyRunes("l"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.query.Page)
	assert.True(t, m.loading)

	loaded := findMsg[logsLoadedMsg](t, runCmd(cmd))
	assert.Equal(t, 2, loaded.query.Page)

	m, _ = m.Update(logsLoadedMsg{query: m.query, page: models.LogsPage{TotalCount: 30}})
	m, cmd = m.Update(keyRunes("l"))
	assert.Nil(t, cmd)

	m, cmd = m.Update(keyType(tea.KeyLeft))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.query.Page)
}

func TestLogsList_SortToggle(t *testing.T) {
	logs := &stubLogs{}
	m := loadedList(t, logs, models.LogsPage{}, nil)
	m.query.Page = 3

	m, cmd := m.Update(keyRunes("s"))
	require.NotNil(t, cmd)

	assert.Equal(t, models.LogsSortDateAsc, m.query.SortBy)
	assert.Equal(t, 1, m.query.Page)
	assert.Contains(t, m.View(), "oldest first")

	m, _ = m.Update(keyRunes("s"))
	assert.Equal(t, models.LogsSortDateDesc, m.query.SortBy)
}

func TestLogsList_Search(t *testing.T) {
	logs := &stubLogs{}
	m := loadedList(t, logs, models.LogsPage{}, nil)

	m, _ = m.Update(keyRunes("/"))
	require.True(t, m.capturesKeys())

	m, _ = m.Update(keyRunes("EDDF"))
	m, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)

	assert.False(t, m.searching)
	assert.Equal(t, "EDDF", m.query.SearchQuery)
	assert.Equal(t, 1, m.query.Page)

	loaded := findMsg[logsLoadedMsg](t, runCmd(cmd))
	assert.Equal(t, "EDDF", loaded.query.SearchQuery)
}

func TestLogsList_SearchCancel(t *testing.T) {
	m := loadedList(t, &stubLogs{}, models.LogsPage{}, nil)

	m, _ = m.Update(keyRunes("/"))
	m, _ = m.Update(keyRunes("LOWW"))
	m, cmd := m.Update(keyType(tea.KeyEsc))

	assert.Nil(t, cmd)
	assert.False(t, m.searching)
	assert.Empty(t, m.query.SearchQuery)
	assert.Empty(t, m.search.Value())
}

func TestLogsList_CopyRoute(t *testing.T) {
	var copied string
	copyFn := func(s string) error {
		copied = s
		return nil
	}
	page := models.LogsPage{Logs: []models.Log{
		testSimulator(models.NewDate(2026, time.March, 3), 120),
		testFlight(models.NewDate(2026, time.March, 2), "EDDF", "LOWW", 95),
	}}
	m := loadedList(t, &stubLogs{}, page, copyFn)

	// у сессии на тренажёре нет маршрута
	m, cmd := m.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Simulator sessions have no route", m.status)
	assert.Empty(t, copied)

	m, _ = m.Update(keyType(tea.KeyDown))
	m, cmd = m.Update(keyRunes("c"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(routeCopiedMsg)
	require.True(t, ok)
	assert.Equal(t, "EDDF-LOWW", copied)

	m, _ = m.Update(msg)
	assert.Equal(t, "Copied EDDF-LOWW", m.status)

	m, _ = m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestLogsList_CopyRouteError(t *testing.T) {
	page := models.LogsPage{Logs: []models.Log{testFlight(models.NewDate(2026, time.March, 2), "EDDF", "LOWW", 95)}}
	m := loadedList(t, &stubLogs{}, page, func(string) error { return errors.New("no clipboard") })

	m, cmd := m.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestLogsList_SelectionClampedAfterReload(t *testing.T) {
	date := models.NewDate(2026, time.March, 2)
	page := models.LogsPage{Logs: []models.Log{
		testFlight(date, "EDDF", "LOWW", 60),
		testFlight(date, "LOWW", "EDDF", 60),
	}}
	m := loadedList(t, &stubLogs{}, page, nil)
	m, _ = m.Update(keyType(tea.KeyDown))
	require.Equal(t, 1, m.idx)

	m, _ = m.Update(logsLoadedMsg{query: m.query, page: models.LogsPage{Logs: page.Logs[:1]}})
	assert.Equal(t, 0, m.idx)
}

func TestRenderLogRow(t *testing.T) {
	date := models.NewDate(2026, time.March, 2)

	flight := renderLogRow(testFlight(date, "EDDF", "LOWW", 95))
	assert.Contains(t, flight, "2026-03-02")
	assert.Contains(t, flight, "FLT")
	assert.Contains(t, flight, "EDDF-LOWW")
	assert.Contains(t, flight, "pattern work")

	sim := renderLogRow(testSimulator(date, 120))
	assert.Contains(t, sim, "SIM")
	assert.Contains(t, sim, "2:00")
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, "0:00", formatMinutes(-5))
	assert.Equal(t, "10:05", formatMinutes(605))

	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))

	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash(strPtr("")))
	assert.Equal(t, "x", valueOrDash(strPtr("x")))
}
