package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

const (
	preferencesCookie       = "nplb_user_preferences"
	preferencesCookieMaxAge = 365 * 24 * time.Hour
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	prefs, err := h.services.PreferencesService.GetPreferences(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getPreferences").Msg("error loading preferences")
		writePreferencesFailure(w, http.StatusInternalServerError, app.MsgFailedToLoadPreferences)
		return
	}

	h.writePreferences(w, r, prefs)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var patch models.PreferencesPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.updatePreferences").Msg("Invalid JSON was passed")
		writePreferencesFailure(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	prefs, err := h.services.PreferencesService.UpdatePreferences(ctx, userID, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePreferences").Msg("error updating preferences")
		status, message := mapError(err)
		if status == http.StatusInternalServerError && !errors.Is(err, service.ErrPreferencesNotSaved) {
			message = app.MsgFailedToLoadPreferences
		}
		writePreferencesFailure(w, status, message)
		return
	}

	h.writePreferences(w, r, prefs)
}

func (h *Handler) resetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	prefs, err := h.services.PreferencesService.ResetPreferences(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.resetPreferences").Msg("error resetting preferences")
		writePreferencesFailure(w, http.StatusInternalServerError, app.MsgFailedToSavePreferences)
		return
	}

	h.writePreferences(w, r, prefs)
}

// writePreferences refreshes the snapshot cookie and answers with prefs.
func (h *Handler) writePreferences(w http.ResponseWriter, r *http.Request, prefs models.UserPreferences) {
	if err := utils.SetJSONCookie(w, preferencesCookie, prefs, preferencesCookieMaxAge); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("failed to set preferences cookie")
	}

	utils.WriteJSON(w, models.PreferencesResult{Success: true, Preferences: &prefs}, http.StatusOK)
}

func writePreferencesFailure(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.PreferencesResult{Success: false, Error: message}, status)
}
