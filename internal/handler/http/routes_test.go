package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

// allowAnyCall lets every service answer with zero values.
func (m *testServices) allowAnyCall() {
	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, nil).AnyTimes()
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, nil).AnyTimes()
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: testToken}, nil).AnyTimes()
	m.prefs.EXPECT().GetPreferences(gomock.Any(), gomock.Any()).Return(models.DefaultPreferences(), nil).AnyTimes()
	m.prefs.EXPECT().UpdatePreferences(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DefaultPreferences(), nil).AnyTimes()
	m.prefs.EXPECT().ResetPreferences(gomock.Any(), gomock.Any()).Return(models.DefaultPreferences(), nil).AnyTimes()
	m.logs.EXPECT().FetchLogs(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.LogsPage{}, nil).AnyTimes()
	m.airports.EXPECT().SearchAirports(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.airports.EXPECT().GetAirportByICAO(gomock.Any(), gomock.Any()).Return(models.Airport{}, nil).AnyTimes()
	m.airports.EXPECT().GetRunways(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.airports.EXPECT().GetMetadata(gomock.Any()).Return(models.AirportsMetadata{}, nil).AnyTimes()
	m.airports.EXPECT().GetAirportsByCountry(gomock.Any()).Return(nil, nil).AnyTimes()
	m.airports.EXPECT().GetAirportVisits(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.AirportVisits{}, nil).AnyTimes()
	m.airports.EXPECT().GetFavoriteAirports(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.airports.EXPECT().IsFavoriteAirport(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	m.airports.EXPECT().AddFavoriteAirport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.airports.EXPECT().RemoveFavoriteAirport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.fleet.EXPECT().FetchFleet(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.FleetPage{}, nil).AnyTimes()
	m.fleet.EXPECT().FetchAsset(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Asset{}, nil).AnyTimes()
	m.fleet.EXPECT().FetchAssetsByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.crew.EXPECT().FetchCrew(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.CrewPage{}, nil).AnyTimes()
	m.crew.EXPECT().FetchCrewMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.CrewMember{}, nil).AnyTimes()
	m.aircraft.EXPECT().SearchAircraftTypes(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.aircraft.EXPECT().GroupByManufacturer(gomock.Any()).Return(nil, nil).AnyTimes()
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()
}

type routeCase struct {
	method string
	path   string
}

var (
	assetPath  = "/api/fleet/" + uuid.NewString()
	memberPath = "/api/crew/" + uuid.NewString()
)

var openRoutes = []routeCase{
	{http.MethodGet, "/api/version"},
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	{http.MethodGet, "/api/airports/metadata"},
	{http.MethodGet, "/api/airports/by-country"},
	{http.MethodGet, "/api/airports/EDDF"},
	{http.MethodGet, "/api/airports/EDDF/runways"},
	{http.MethodGet, "/api/aircraft-types"},
	{http.MethodGet, "/api/aircraft-types/by-manufacturer"},
}

var softAuthRoutes = []routeCase{
	{http.MethodGet, "/api/logs"},
	{http.MethodGet, "/api/fleet"},
	{http.MethodGet, "/api/crew"},
	{http.MethodGet, "/api/airports"},
}

var protectedRoutes = []routeCase{
	{http.MethodGet, "/api/preferences"},
	{http.MethodPatch, "/api/preferences"},
	{http.MethodDelete, "/api/preferences"},
	{http.MethodGet, "/api/airports/EDDF/visits"},
	{http.MethodGet, "/api/airports/favorites"},
	{http.MethodGet, "/api/airports/favorites/EDDF"},
	{http.MethodPost, "/api/airports/favorites/EDDF"},
	{http.MethodDelete, "/api/airports/favorites/EDDF"},
	{http.MethodGet, "/api/fleet/grouped"},
	{http.MethodPost, "/api/fleet/lookup"},
	{http.MethodGet, assetPath},
	{http.MethodGet, "/api/crew/grouped"},
	{http.MethodGet, memberPath},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, m := newTestHandler(t)
	m.allowAnyCall()
	m.acceptToken(uuid.New())

	routes := append(append(append([]routeCase{}, openRoutes...), softAuthRoutes...), protectedRoutes...)
	for _, tt := range routes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(t, h, tt.method, tt.path, "{}", testToken)

			assert.NotEqual(t, http.StatusNotFound, rr.Code, "route not found")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(t, h, tt.method, tt.path, nil, "")

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgAuthenticationRequired, decodeBody[errorResponse](t, rr).Error)
		})
	}
}

func TestInit_SoftAuthReadsWithoutToken(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		path     string
		listName string
	}{
		{"/api/logs", "logs"},
		{"/api/fleet", "fleet"},
		{"/api/crew", "crew"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := serve(t, h, http.MethodGet, tt.path, nil, "")

			require.Equal(t, http.StatusOK, rr.Code)
			body := decodeBody[map[string]any](t, rr)
			assert.Equal(t, app.MsgAuthenticationRequired, body["error"])
			assert.Equal(t, []any{}, body[tt.listName])
		})
	}
}

func TestInit_SoftAuthIgnoresBadToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Token{}, assert.AnError)

	rr := serve(t, h, http.MethodGet, "/api/logs", nil, "stale")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgAuthenticationRequired, decodeBody[models.LogsResult](t, rr).Error)
}

func TestInit_AnonymousAirportSearch(t *testing.T) {
	h, m := newTestHandler(t)
	m.airports.EXPECT().
		SearchAirports(gomock.Any(), uuid.Nil, "EDDF", models.AirportSortingICAO).
		Return([]models.Airport{{ICAO: "EDDF", Name: "Frankfurt"}}, nil)

	rr := serve(t, h, http.MethodGet, "/api/airports?query=EDDF", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]models.Airport](t, rr), 1)
}

func TestInit_UnknownRoutesReturn404(t *testing.T) {
	h, m := newTestHandler(t)
	m.acceptToken(uuid.New())

	tests := []routeCase{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
		{http.MethodGet, "/api/airports/EDDF/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(t, h, tt.method, tt.path, nil, testToken)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, m := newTestHandler(t)
	m.acceptToken(uuid.New())

	tests := []routeCase{
		{http.MethodGet, "/api/auth/register"},
		{http.MethodPut, "/api/auth/login"},
		{http.MethodPost, "/api/version"},
		{http.MethodPut, "/api/preferences"},
		{http.MethodPost, "/api/logs"},
		{http.MethodDelete, "/api/aircraft-types"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(t, h, tt.method, tt.path, nil, testToken)

			assert.Equal(t, http.StatusNotFound, rr.Code, "405 must be hidden as 404")
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1").Times(2)
	router := h.Init()

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set(traceIDHeader, "flight-42")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "flight-42", rr.Header().Get(traceIDHeader))
	})
}

func TestInit_MetricsEndpoint(t *testing.T) {
	h, m := newTestHandler(t)
	m.aircraft.EXPECT().GroupByManufacturer(gomock.Any()).Return(nil, nil)
	router := h.Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/aircraft-types/by-manufacturer", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.True(t, strings.Contains(body,
		`logbook_http_requests_total{method="GET",route="/api/aircraft-types/by-manufacturer",status="200"} 1`), body)
	assert.Contains(t, body, "logbook_http_inflight_requests")
}
