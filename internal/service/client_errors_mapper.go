// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/adapter"
	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}
	msg := respErr.Message

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case msg == app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case strings.HasPrefix(msg, "Invalid "):
			return fmt.Errorf("%w: %s", ErrInvalidPreferencesSection, msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrAuthenticationRequired

	case errors.Is(err, adapter.ErrRejected):
		if msg == app.MsgAuthenticationRequired {
			return ErrAuthenticationRequired
		}
		if cause, ok := strings.CutPrefix(msg, app.MsgFailedToFetchLogs); ok {
			if cause = strings.TrimPrefix(cause, ": "); cause != "" {
				return fmt.Errorf("%w: %s", ErrFetchLogs, cause)
			}
			return ErrFetchLogs
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		switch msg {
		case app.MsgFailedToSavePreferences:
			return ErrPreferencesNotSaved
		case app.MsgFailedToFetchLogs:
			return ErrFetchLogs
		}
	}

	return err
}
