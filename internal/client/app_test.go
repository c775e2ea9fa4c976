package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/tui"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	logins   []error
	logouts  []bool
	mainErr  error
	userID   uuid.UUID
	loginN   int
	mainN    int
	mainSeen []uuid.UUID
}

func (s *stubUI) LoginFlow(context.Context) (uuid.UUID, error) {
	err := s.logins[s.loginN]
	s.loginN++
	if err != nil {
		return uuid.Nil, err
	}
	return s.userID, nil
}

func (s *stubUI) MainLoop(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mainSeen = append(s.mainSeen, userID)
	logout := s.logouts[s.mainN]
	s.mainN++
	return logout, s.mainErr
}

type stubProvider struct {
	service.PreferencesProvider
	initCalls int
	initErr   error
}

func (s *stubProvider) Init(context.Context, *models.UserPreferences) error {
	s.initCalls++
	return s.initErr
}

type stubRefreshJob struct {
	starts   int
	stops    int
	interval time.Duration
}

func (s *stubRefreshJob) Start(_ context.Context, interval time.Duration) {
	s.starts++
	s.interval = interval
}

func (s *stubRefreshJob) Stop() { s.stops++ }

func newTestApp(t *testing.T, ui UI) (*App, *stubProvider, *stubRefreshJob) {
	t.Helper()

	provider := &stubProvider{}
	job := &stubRefreshJob{}
	services := &service.ClientServices{PreferencesProvider: provider, RefreshJob: job}

	app, err := NewApp(services, ui, config.ClientWorkers{PreferencesRefreshInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)
	return app, provider, job
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, nil, config.ClientWorkers{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run_QuitAtLogin(t *testing.T) {
	ui := &stubUI{logins: []error{tui.ErrUserQuit}}
	app, provider, job := newTestApp(t, ui)

	require.NoError(t, app.run(context.Background()))
	assert.Zero(t, provider.initCalls)
	assert.Zero(t, job.starts)
}

func TestApp_Run_LoginError(t *testing.T) {
	ui := &stubUI{logins: []error{errors.New("terminal gone")}}
	app, _, _ := newTestApp(t, ui)

	err := app.run(context.Background())
	assert.ErrorContains(t, err, "terminal gone")
}

func TestApp_Run_SessionLifecycle(t *testing.T) {
	userID := uuid.New()
	ui := &stubUI{logins: []error{nil}, logouts: []bool{false}, userID: userID}
	app, provider, job := newTestApp(t, ui)

	require.NoError(t, app.run(context.Background()))

	assert.Equal(t, 1, provider.initCalls)
	assert.Equal(t, 1, job.starts)
	assert.Equal(t, 1, job.stops)
	assert.Equal(t, time.Minute, job.interval)
	assert.Equal(t, []uuid.UUID{userID}, ui.mainSeen)
}

func TestApp_Run_LogoutReturnsToLogin(t *testing.T) {
	ui := &stubUI{logins: []error{nil, tui.ErrUserQuit}, logouts: []bool{true}, userID: uuid.New()}
	app, provider, job := newTestApp(t, ui)

	require.NoError(t, app.run(context.Background()))

	assert.Equal(t, 2, ui.loginN)
	assert.Equal(t, 1, provider.initCalls)
	assert.Equal(t, 1, job.stops)
}

func TestApp_Run_PreferencesInitFailureIsNotFatal(t *testing.T) {
	ui := &stubUI{logins: []error{nil}, logouts: []bool{false}, userID: uuid.New()}
	app, provider, job := newTestApp(t, ui)
	provider.initErr = errors.New("server unavailable")

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 1, job.starts)
	assert.Equal(t, 1, ui.mainN)
}

func TestApp_Run_MainLoopError(t *testing.T) {
	ui := &stubUI{logins: []error{nil}, logouts: []bool{false}, mainErr: errors.New("render failed"), userID: uuid.New()}
	app, _, job := newTestApp(t, ui)

	err := app.run(context.Background())
	assert.ErrorContains(t, err, "main loop")
	assert.Equal(t, 1, job.stops)
}
