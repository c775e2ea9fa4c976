// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order, the first match wins. An empty message
// means the error text itself is sent.
var errorMappings = []errorMapping{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidPreferencesSection, http.StatusBadRequest, ""},
	{service.ErrInvalidPreferences, http.StatusBadRequest, ""},
	{service.ErrInvalidLogsQuery, http.StatusBadRequest, ""},
	{service.ErrInvalidListQuery, http.StatusBadRequest, ""},
	{service.ErrInvalidICAO, http.StatusBadRequest, app.MsgInvalidICAO},
	{errInvalidUUID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{errInvalidQueryParam, http.StatusBadRequest, ""},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrAuthenticationRequired, http.StatusUnauthorized, app.MsgAuthenticationRequired},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},

	{service.ErrAirportNotFound, http.StatusNotFound, app.MsgAirportNotFound},
	{service.ErrNoRunways, http.StatusNotFound, app.MsgNoRunways},
	{store.ErrAssetNotFound, http.StatusNotFound, app.MsgAssetNotFound},
	{store.ErrCrewMemberNotFound, http.StatusNotFound, app.MsgCrewMemberNotFound},

	{service.ErrFetchLogs, http.StatusInternalServerError, app.MsgFailedToFetchLogs},
	{service.ErrPreferencesNotSaved, http.StatusInternalServerError, app.MsgFailedToSavePreferences},
	{service.ErrAirportDataFailed, http.StatusInternalServerError, app.MsgFailedToLoadAirport},
	{service.ErrAircraftDataFailed, http.StatusInternalServerError, app.MsgFailedToLoadAircraft},
}

// mapError returns the status and the client-facing message of err.
// Unknown errors become a 500 with a generic message.
func mapError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, clientMessage(err)
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// clientMessage strips wrapping context that only helps the server log.
func clientMessage(err error) string {
	var sectionErr *service.SectionError
	if errors.As(err, &sectionErr) {
		return sectionErr.Error()
	}
	return err.Error()
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, errorResponse{Error: message}, status)
}

// writeServiceError answers with the mapping of err.
func writeServiceError(w http.ResponseWriter, err error) {
	status, message := mapError(err)
	writeError(w, status, message)
}
