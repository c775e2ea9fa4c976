// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the Authorization header parsing.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	errInvalidUUID       = errors.New("invalid id")
	errInvalidQueryParam = errors.New("invalid query parameter")
)
