// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/google/uuid"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until a user has signed in and returns their ID.
	LoginFlow(ctx context.Context) (uuid.UUID, error)

	// MainLoop blocks until the user quits or signs out. logout is true when
	// the user asked to sign in again.
	MainLoop(ctx context.Context, userID uuid.UUID) (logout bool, err error)
}
