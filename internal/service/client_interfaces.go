package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

// ClientAuthService defines the client-side contract for user registration and
// authentication. A successful call leaves the session token in the server
// adapter.
type ClientAuthService interface {
	// Register creates a new account on the server and returns the user ID
	// carried by the issued token.
	Register(ctx context.Context, user models.User) (uuid.UUID, error)

	// Login authenticates the user against the server and returns the user ID
	// carried by the issued token.
	Login(ctx context.Context, user models.User) (uuid.UUID, error)
}

// MutationState is the phase of the last optimistic preferences mutation.
type MutationState int

const (
	MutationIdle MutationState = iota
	MutationApplying
	MutationCommitted
	MutationRolledBack
)

func (s MutationState) String() string {
	switch s {
	case MutationApplying:
		return "applying"
	case MutationCommitted:
		return "committed"
	case MutationRolledBack:
		return "rolled back"
	default:
		return "idle"
	}
}

// PreferencesProvider holds the preferences of the signed-in user on the
// client. Mutations are applied optimistically to memory and the local
// snapshot cache and rolled back when the server rejects them.
type PreferencesProvider interface {
	// Init hydrates the provider: from initial when given, else from a valid
	// local snapshot, else from the server.
	Init(ctx context.Context, initial *models.UserPreferences) error

	// Refresh reads the preferences from the server and rewrites the local
	// snapshot.
	Refresh(ctx context.Context) error

	Update(ctx context.Context, patch models.PreferencesPatch) (models.UserPreferences, error)
	Reset(ctx context.Context) (models.UserPreferences, error)

	Preferences() models.UserPreferences
	Loading() bool
	// Synced reports whether the current value was confirmed by the server.
	Synced() bool
	State() MutationState

	// Subscribe returns a channel receiving the latest value after each
	// change. Slow readers only see the most recent value.
	Subscribe() <-chan models.UserPreferences
}

type ClientLogService interface {
	FetchLogs(ctx context.Context, query models.LogsQuery) (models.LogsPage, error)
}

// ClientRefreshJob periodically re-reads the preferences from the server.
type ClientRefreshJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
