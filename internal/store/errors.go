// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPreferencesNotFound is returned when the user has no preferences row yet.
	ErrPreferencesNotFound = errors.New("preferences were not found")

	// ErrPreferencesNotSaved is returned when a write to the preferences row
	// affected no rows.
	ErrPreferencesNotSaved = errors.New("preferences were not saved")

	ErrAssetNotFound      = errors.New("fleet asset was not found")
	ErrCrewMemberNotFound = errors.New("crew member was not found")

	// ErrSnapshotNotFound is returned by the client cache when nothing has
	// been stored yet.
	ErrSnapshotNotFound = errors.New("preferences snapshot was not found")

	// ErrCorruptedSnapshot is returned by the client cache when the stored
	// snapshot cannot be decoded.
	ErrCorruptedSnapshot = errors.New("preferences snapshot is corrupted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSONB column value cannot be produced.
	ErrEncodingJSON = errors.New("failed to encode json column")
)
