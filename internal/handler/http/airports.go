package http

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

var airportSortings = []models.AirportSorting{
	models.AirportSortingCountry,
	models.AirportSortingICAO,
	models.AirportSortingIATA,
	models.AirportSortingFavourites,
}

// searchAirports filters the directory with the "query" parameter. Without an
// explicit "sortBy" the caller's preferred order is used.
func (h *Handler) searchAirports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	sortBy := models.AirportSorting(r.URL.Query().Get("sortBy"))
	switch {
	case sortBy == "":
		sortBy = h.preferencesOrDefault(ctx, userID).Airports.Sorting
	case !slices.Contains(airportSortings, sortBy):
		writeServiceError(w, fmt.Errorf("%w: unknown sortBy %q", errInvalidQueryParam, sortBy))
		return
	}

	airports, err := h.services.AirportService.SearchAirports(ctx, userID, r.URL.Query().Get("query"), sortBy)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.searchAirports").Msg("error searching airports")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, airports, http.StatusOK)
}

func (h *Handler) getAirport(w http.ResponseWriter, r *http.Request) {
	airport, err := h.services.AirportService.GetAirportByICAO(r.Context(), icaoParam(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAirport").Msg("error getting airport")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, airport, http.StatusOK)
}

func (h *Handler) getRunways(w http.ResponseWriter, r *http.Request) {
	runways, err := h.services.AirportService.GetRunways(r.Context(), icaoParam(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getRunways").Msg("error getting runways")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, runways, http.StatusOK)
}

func (h *Handler) getAirportsMetadata(w http.ResponseWriter, r *http.Request) {
	metadata, err := h.services.AirportService.GetMetadata(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAirportsMetadata").Msg("error getting airports metadata")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, metadata, http.StatusOK)
}

func (h *Handler) getAirportsByCountry(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.AirportService.GetAirportsByCountry(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAirportsByCountry").Msg("error grouping airports")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) getAirportVisits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	visits, err := h.services.AirportService.GetAirportVisits(ctx, userID, icaoParam(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAirportVisits").Msg("error counting airport visits")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, visits, http.StatusOK)
}

func (h *Handler) getFavoriteAirports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	favorites, err := h.services.AirportService.GetFavoriteAirports(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getFavoriteAirports").Msg("error reading favourite airports")
		writeServiceError(w, err)
		return
	}
	if favorites == nil {
		favorites = []string{}
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}

func (h *Handler) isFavoriteAirport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	icao := icaoParam(r)

	favorited, err := h.services.AirportService.IsFavoriteAirport(ctx, userID, icao)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.isFavoriteAirport").Msg("error reading favourite airports")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.FavoriteStatus{ICAO: icao, Favorited: favorited}, http.StatusOK)
}

func (h *Handler) addFavoriteAirport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	icao := icaoParam(r)

	if err := h.services.AirportService.AddFavoriteAirport(ctx, userID, icao); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.addFavoriteAirport").Msg("error adding favourite airport")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.FavoriteStatus{ICAO: icao, Favorited: true}, http.StatusOK)
}

func (h *Handler) removeFavoriteAirport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	icao := icaoParam(r)

	if err := h.services.AirportService.RemoveFavoriteAirport(ctx, userID, icao); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.removeFavoriteAirport").Msg("error removing favourite airport")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.FavoriteStatus{ICAO: icao, Favorited: false}, http.StatusOK)
}

// preferencesOrDefault returns the stored preferences of userID. Anonymous
// callers and read failures get the defaults.
func (h *Handler) preferencesOrDefault(ctx context.Context, userID uuid.UUID) models.UserPreferences {
	if userID == uuid.Nil {
		return models.DefaultPreferences()
	}

	prefs, err := h.services.PreferencesService.GetPreferences(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("falling back to default preferences")
		return models.DefaultPreferences()
	}
	return prefs
}
