package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pilot-logbook/models"
)

// intParam reads an optional integer query parameter. A missing value is zero
// so that the model defaults apply.
func intParam(values url.Values, name string) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errInvalidQueryParam, name)
	}
	return n, nil
}

func parseListQuery(r *http.Request) (models.ListQuery, error) {
	values := r.URL.Query()

	page, err := intParam(values, "page")
	if err != nil {
		return models.ListQuery{}, err
	}
	pageSize, err := intParam(values, "pageSize")
	if err != nil {
		return models.ListQuery{}, err
	}

	return models.ListQuery{
		SearchQuery: values.Get("search"),
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

func parseLogsQuery(r *http.Request) (models.LogsQuery, error) {
	list, err := parseListQuery(r)
	if err != nil {
		return models.LogsQuery{}, err
	}

	return models.LogsQuery{
		SearchQuery: list.SearchQuery,
		Page:        list.Page,
		PageSize:    list.PageSize,
		SortBy:      models.LogsSortBy(r.URL.Query().Get("sortBy")),
	}, nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errInvalidUUID, err)
	}
	return id, nil
}

// icaoParam is the {icao} path segment, trimmed and uppercased. Every airport
// route passes codes to the service in this form.
func icaoParam(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "icao")))
}
