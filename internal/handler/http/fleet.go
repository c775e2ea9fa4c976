// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

var fleetGroupings = []models.FleetGrouping{
	models.FleetGroupingOperator,
	models.FleetGroupingType,
	models.FleetGroupingICAOType,
}

type lookupRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func (h *Handler) fetchFleet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.FleetPage{Fleet: []models.Asset{}, Error: app.MsgAuthenticationRequired}, http.StatusOK)
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchFleet").Msg("invalid fleet query")
		writeServiceError(w, err)
		return
	}

	page, err := h.services.FleetService.FetchFleet(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchFleet").Msg("error fetching fleet")
		if errors.Is(err, service.ErrInvalidListQuery) {
			writeServiceError(w, err)
			return
		}
		utils.WriteJSON(w, models.FleetPage{Fleet: []models.Asset{}, Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}
	if page.Fleet == nil {
		page.Fleet = []models.Asset{}
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// groupFleet groups one page of the fleet by the "groupBy" parameter or, when
// it is absent, by the user's fleet grouping preference.
func (h *Handler) groupFleet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	grouping := models.FleetGrouping(r.URL.Query().Get("groupBy"))
	switch {
	case grouping == "":
		grouping = h.preferencesOrDefault(ctx, userID).Fleet.Grouping
	case !slices.Contains(fleetGroupings, grouping):
		writeServiceError(w, fmt.Errorf("%w: unknown groupBy %q", errInvalidQueryParam, grouping))
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.groupFleet").Msg("invalid fleet query")
		writeServiceError(w, err)
		return
	}

	page, err := h.services.FleetService.FetchFleet(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.groupFleet").Msg("error fetching fleet")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, service.GroupFleet(page.Fleet, grouping), http.StatusOK)
}

func (h *Handler) lookupAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var request lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.lookupAssets").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	assets, err := h.services.FleetService.FetchAssetsByIDs(ctx, userID, request.IDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.lookupAssets").Msg("error fetching assets")
		writeServiceError(w, err)
		return
	}
	if assets == nil {
		assets = []models.Asset{}
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := uuidParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAsset").Msg("invalid asset id")
		writeServiceError(w, err)
		return
	}

	asset, err := h.services.FleetService.FetchAsset(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAsset").Msg("error fetching asset")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, asset, http.StatusOK)
}
