package http

import (
	"net/http"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
)

func (h *Handler) searchAircraftTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.AircraftTypeService.SearchAircraftTypes(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.searchAircraftTypes").Msg("error searching aircraft types")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, types, http.StatusOK)
}

func (h *Handler) groupAircraftTypes(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.AircraftTypeService.GroupByManufacturer(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.groupAircraftTypes").Msg("error grouping aircraft types")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}
