// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
)

var (
	ErrUserQuit   = errors.New("user quit")
	ErrNoServices = errors.New("client services are not provided")
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}

// humanizeError turns the client service errors a user can act on into short
// messages and falls back to [humanizeServerUnavailableError].
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid email or password"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "An account with this email already exists"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Invalid data provided"
	case errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrAuthenticationRequired):
		return "Session expired, please sign in again"
	case errors.Is(err, service.ErrPreferencesLoading):
		return "Preferences are still loading"
	case errors.Is(err, service.ErrPreferencesNotSaved):
		return "Failed to save preferences"
	case errors.Is(err, service.ErrFetchLogs):
		return "Failed to fetch logs"
	}
	return humanizeServerUnavailableError(err)
}

func isSessionError(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpired) ||
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, service.ErrAuthenticationRequired)
}
