// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the logbook server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the HTTP API. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pilot-logbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the logbook server.
// Implementations are responsible for serialisation, the authentication
// header and mapping transport-level errors to the sentinel values of this
// package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates the account. On success the returned bearer token is
	// stored via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user and stores the returned bearer token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetAppVersion returns the version string the server reports.
	GetAppVersion(ctx context.Context) (string, error)

	// GetPreferences, UpdatePreferences and ResetPreferences return the
	// preferences the server holds after the call.
	GetPreferences(ctx context.Context) (models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, patch models.PreferencesPatch) (models.UserPreferences, error)
	ResetPreferences(ctx context.Context) (models.UserPreferences, error)

	// FetchLogs returns one page of the merged flight and simulator log.
	FetchLogs(ctx context.Context, query models.LogsQuery) (models.LogsPage, error)
}
