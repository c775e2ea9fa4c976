package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	if h.metricsPath != "" {
		router.Handle(h.metricsPath, h.metrics.handler())
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/airports/metadata", h.getAirportsMetadata)
		r.Get("/api/airports/by-country", h.getAirportsByCountry)
		r.Get("/api/airports/{icao}", h.getAirport)
		r.Get("/api/airports/{icao}/runways", h.getRunways)

		r.Get("/api/aircraft-types", h.searchAircraftTypes)
		r.Get("/api/aircraft-types/by-manufacturer", h.groupAircraftTypes)
	})

	// reads that answer 200 with an error marker when there is no session
	router.Group(func(r chi.Router) {
		r.Use(h.softAuth)

		r.Get("/api/logs", h.fetchLogs)
		r.Get("/api/fleet", h.fetchFleet)
		r.Get("/api/crew", h.fetchCrew)
		r.Get("/api/airports", h.searchAirports)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/preferences", h.getPreferences)
		r.Patch("/api/preferences", h.updatePreferences)
		r.Delete("/api/preferences", h.resetPreferences)

		r.Get("/api/airports/{icao}/visits", h.getAirportVisits)
		r.Get("/api/airports/favorites", h.getFavoriteAirports)
		r.Get("/api/airports/favorites/{icao}", h.isFavoriteAirport)
		r.Post("/api/airports/favorites/{icao}", h.addFavoriteAirport)
		r.Delete("/api/airports/favorites/{icao}", h.removeFavoriteAirport)

		r.Get("/api/fleet/grouped", h.groupFleet)
		r.Post("/api/fleet/lookup", h.lookupAssets)
		r.Get("/api/fleet/{id}", h.getAsset)

		r.Get("/api/crew/grouped", h.groupCrew)
		r.Get("/api/crew/{id}", h.getCrewMember)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
