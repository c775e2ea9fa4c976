package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

// fetchLogs answers with one page of the merged flight and simulator list.
// Missing authentication and store failures are reported in a 200 body with an
// empty list and the cause; only malformed queries are rejected with a 400.
func (h *Handler) fetchLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, emptyLogsResult(app.MsgAuthenticationRequired), http.StatusOK)
		return
	}

	query, err := parseLogsQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchLogs").Msg("invalid logs query")
		writeServiceError(w, err)
		return
	}

	page, err := h.services.LogService.FetchLogs(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchLogs").Msg("error fetching logs")
		if errors.Is(err, service.ErrInvalidLogsQuery) {
			writeServiceError(w, err)
			return
		}
		utils.WriteJSON(w, emptyLogsResult(logsFailureMessage(err)), http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.LogsResult{LogsPage: page}, http.StatusOK)
}

func emptyLogsResult(message string) models.LogsResult {
	return models.LogsResult{
		LogsPage: models.LogsPage{Logs: []models.Log{}},
		Error:    message,
	}
}

// logsFailureMessage keeps the store cause after the generic message.
func logsFailureMessage(err error) string {
	cause := strings.TrimPrefix(err.Error(), service.ErrFetchLogs.Error())
	cause = strings.TrimPrefix(cause, ": ")
	if cause == "" {
		return app.MsgFailedToFetchLogs
	}
	return app.MsgFailedToFetchLogs + ": " + cause
}
