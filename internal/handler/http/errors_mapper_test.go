package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
)

func TestMapError(t *testing.T) {
	sectionErr := &service.SectionError{Section: validators.SectionNameDisplay, Err: errors.New("nameDisplay must be one of [first-last last-first]")}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid data", fmt.Errorf("wrap: %w", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"section error text is kept", fmt.Errorf("update: %w", sectionErr), http.StatusBadRequest, sectionErr.Error()},
		{"invalid logs query", fmt.Errorf("%w: page must be at least 1", service.ErrInvalidLogsQuery), http.StatusBadRequest, "invalid logs query: page must be at least 1"},
		{"invalid uuid", fmt.Errorf("%w: bad", errInvalidUUID), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"unknown user", store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"expired token", service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
		{"no principal", service.ErrAuthenticationRequired, http.StatusUnauthorized, app.MsgAuthenticationRequired},
		{"duplicate login", store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
		{"asset not found", store.ErrAssetNotFound, http.StatusNotFound, app.MsgAssetNotFound},
		{"fetch logs", service.ErrFetchLogs, http.StatusInternalServerError, app.MsgFailedToFetchLogs},
		{"preferences not saved", service.ErrPreferencesNotSaved, http.StatusInternalServerError, app.MsgFailedToSavePreferences},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
