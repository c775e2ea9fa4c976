package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

func strPtr(s string) *string { return &s }

func testFleet(userID uuid.UUID) []models.Asset {
	return []models.Asset{
		{ID: uuid.New(), UserID: userID, Registration: "D-EABC", Type: strPtr("C172"), Operator: strPtr("Aero Club")},
		{ID: uuid.New(), UserID: userID, Registration: "D-FSIM", IsSimulator: true, Type: strPtr("A320")},
		{ID: uuid.New(), UserID: userID, Registration: "OE-KXY", Type: strPtr("PA28"), Operator: strPtr("Aero Club")},
	}
}

func TestFetchFleet(t *testing.T) {
	userID := uuid.New()
	fleet := testFleet(userID)

	t.Run("page", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.fleet.EXPECT().
			FetchFleet(gomock.Any(), userID, models.ListQuery{SearchQuery: "D-", Page: 1, PageSize: 2}).
			Return(models.FleetPage{Fleet: fleet[:2], TotalCount: 3, HasMore: true}, nil)

		rr := serve(t, h, http.MethodGet, "/api/fleet?search=D-&page=1&pageSize=2", nil, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		page := decodeBody[models.FleetPage](t, rr)
		assert.Len(t, page.Fleet, 2)
		assert.Equal(t, 3, page.TotalCount)
		assert.True(t, page.HasMore)
		assert.Empty(t, page.Error)
	})

	t.Run("empty page is an array", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.fleet.EXPECT().FetchFleet(gomock.Any(), userID, models.ListQuery{}).Return(models.FleetPage{}, nil)

		rr := serve(t, h, http.MethodGet, "/api/fleet", nil, testToken)

		assert.JSONEq(t, `{"fleet":[],"totalCount":0,"hasMore":false}`, rr.Body.String())
	})

	t.Run("invalid query", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.fleet.EXPECT().
			FetchFleet(gomock.Any(), userID, gomock.Any()).
			Return(models.FleetPage{}, fmt.Errorf("%w: page must be at least 1", service.ErrInvalidListQuery))

		rr := serve(t, h, http.MethodGet, "/api/fleet?page=-4", nil, testToken)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.fleet.EXPECT().FetchFleet(gomock.Any(), userID, gomock.Any()).Return(models.FleetPage{}, assert.AnError)

		rr := serve(t, h, http.MethodGet, "/api/fleet", nil, testToken)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		page := decodeBody[models.FleetPage](t, rr)
		assert.Empty(t, page.Fleet)
		assert.Equal(t, app.MsgInternalServerError, page.Error)
	})
}

func TestGroupFleet(t *testing.T) {
	userID := uuid.New()
	fleet := testFleet(userID)

	tests := []struct {
		name     string
		target   string
		stored   models.FleetGrouping
		wantKeys []string
	}{
		{
			name:     "explicit operator grouping",
			target:   "/api/fleet/grouped?groupBy=operator",
			wantKeys: []string{"Aero Club", "No Operator"},
		},
		{
			name:     "preferred icao type grouping",
			target:   "/api/fleet/grouped",
			stored:   models.FleetGroupingICAOType,
			wantKeys: []string{"A320", "C172", "PA28"},
		},
		{
			name:     "preferred type grouping",
			target:   "/api/fleet/grouped",
			stored:   models.FleetGroupingType,
			wantKeys: []string{"Aircraft", "Simulator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.acceptToken(userID)
			if tt.stored != "" {
				prefs := models.DefaultPreferences()
				prefs.Fleet.Grouping = tt.stored
				m.prefs.EXPECT().GetPreferences(gomock.Any(), userID).Return(prefs, nil)
			}
			m.fleet.EXPECT().FetchFleet(gomock.Any(), userID, gomock.Any()).Return(models.FleetPage{Fleet: fleet, TotalCount: 3}, nil)

			rr := serve(t, h, http.MethodGet, tt.target, nil, testToken)

			require.Equal(t, http.StatusOK, rr.Code)
			var keys []string
			for _, g := range decodeBody[[]models.FleetGroup](t, rr) {
				keys = append(keys, g.Key)
			}
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestGroupFleet_UnknownGrouping(t *testing.T) {
	h, m := newTestHandler(t)
	m.acceptToken(uuid.New())

	rr := serve(t, h, http.MethodGet, "/api/fleet/grouped?groupBy=colour", nil, testToken)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLookupAssets(t *testing.T) {
	userID := uuid.New()
	fleet := testFleet(userID)
	ids := []uuid.UUID{fleet[0].ID, fleet[2].ID}

	t.Run("found", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.fleet.EXPECT().FetchAssetsByIDs(gomock.Any(), userID, ids).Return([]models.Asset{fleet[0], fleet[2]}, nil)

		rr := serve(t, h, http.MethodPost, "/api/fleet/lookup", map[string]any{"ids": ids}, testToken)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]models.Asset](t, rr), 2)
	})

	t.Run("nothing found", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)
		m.fleet.EXPECT().FetchAssetsByIDs(gomock.Any(), userID, ids).Return(nil, nil)

		rr := serve(t, h, http.MethodPost, "/api/fleet/lookup", map[string]any{"ids": ids}, testToken)

		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.acceptToken(userID)

		rr := serve(t, h, http.MethodPost, "/api/fleet/lookup", `{"ids":["not-a-uuid"]}`, testToken)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, decodeBody[errorResponse](t, rr).Error)
	})
}

func TestGetAsset(t *testing.T) {
	userID := uuid.New()
	asset := testFleet(userID)[0]

	tests := []struct {
		name       string
		id         string
		expect     bool
		err        error
		wantStatus int
	}{
		{name: "found", id: asset.ID.String(), expect: true, wantStatus: http.StatusOK},
		{name: "other user's asset", id: asset.ID.String(), expect: true, err: store.ErrAssetNotFound, wantStatus: http.StatusNotFound},
		{name: "not a uuid", id: "D-EABC", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.acceptToken(userID)
			if tt.expect {
				m.fleet.EXPECT().FetchAsset(gomock.Any(), userID, asset.ID).Return(asset, tt.err)
			}

			rr := serve(t, h, http.MethodGet, "/api/fleet/"+tt.id, nil, testToken)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "D-EABC", decodeBody[models.Asset](t, rr).Registration)
			}
		})
	}
}
