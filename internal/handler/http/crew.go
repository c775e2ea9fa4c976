// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

func (h *Handler) fetchCrew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.CrewPage{Crew: []models.CrewMember{}, Error: app.MsgAuthenticationRequired}, http.StatusOK)
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchCrew").Msg("invalid crew query")
		writeServiceError(w, err)
		return
	}

	page, err := h.services.CrewService.FetchCrew(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchCrew").Msg("error fetching crew")
		if errors.Is(err, service.ErrInvalidListQuery) {
			writeServiceError(w, err)
			return
		}
		utils.WriteJSON(w, models.CrewPage{Crew: []models.CrewMember{}, Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}
	if page.Crew == nil {
		page.Crew = []models.CrewMember{}
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// groupCrew buckets one page of the crew by the initial of the name the
// user sorts by.
func (h *Handler) groupCrew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	query, err := parseListQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.groupCrew").Msg("invalid crew query")
		writeServiceError(w, err)
		return
	}

	page, err := h.services.CrewService.FetchCrew(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.groupCrew").Msg("error fetching crew")
		writeServiceError(w, err)
		return
	}

	display := h.preferencesOrDefault(ctx, userID).NameDisplay
	utils.WriteJSON(w, service.GroupCrewByInitial(page.Crew, display), http.StatusOK)
}

func (h *Handler) getCrewMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := uuidParam(r, "id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCrewMember").Msg("invalid crew member id")
		writeServiceError(w, err)
		return
	}

	member, err := h.services.CrewService.FetchCrewMember(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCrewMember").Msg("error fetching crew member")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, member, http.StatusOK)
}
