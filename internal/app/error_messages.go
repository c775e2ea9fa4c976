// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// logbook server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAuthenticationRequired marks soft-failed reads made without a
	// session.
	MsgAuthenticationRequired = "Authentication required"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgLoginAlreadyExists = "login already exists"

	MsgFailedToFetchLogs       = "Failed to fetch logs"
	MsgFailedToLoadPreferences = "Failed to load preferences"
	MsgFailedToSavePreferences = "Failed to save preferences"

	MsgInvalidICAO          = "invalid ICAO code"
	MsgAirportNotFound      = "airport not found"
	MsgNoRunways            = "no runway information available"
	MsgFailedToLoadAirport  = "Failed to load airport data"
	MsgFailedToLoadAircraft = "Failed to load aircraft data"

	MsgAssetNotFound      = "fleet asset not found"
	MsgCrewMemberNotFound = "crew member not found"
)
