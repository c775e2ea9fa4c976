// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks logbook models against their `validate` struct
// tags with go-playground/validator.
//
// Preferences get special treatment: a [models.PreferencesPatch] can be
// checked section by section (logging, fleet, airports, nameDisplay) so that
// callers can report which part of an update was rejected.
package validators

import "context"

// Validator validates a value. The optional names restrict the check to the
// given fields or preference sections.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
