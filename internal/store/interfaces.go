package store

import (
	"context"

	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PreferencesRepository reads and writes the user_preferences row.
//
// GetPreferences returns the raw JSONB document unvalidated: the row may be
// partial or hold values written by older releases.
type PreferencesRepository interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) ([]byte, error)
	InsertPreferences(ctx context.Context, userID uuid.UUID, prefs models.UserPreferences) error
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs models.UserPreferences) error
	UpsertPreferences(ctx context.Context, userID uuid.UUID, prefs models.UserPreferences) error

	GetFavoriteAirports(ctx context.Context, userID uuid.UUID) ([]string, error)
	SetFavoriteAirports(ctx context.Context, userID uuid.UUID, icaos []string) error
}

// LogRepository reads the flights and simulator_sessions tables.
// An empty search matches every row of the user.
type LogRepository interface {
	FetchFlights(ctx context.Context, userID uuid.UUID, search string) ([]models.Flight, error)
	FetchSimulatorSessions(ctx context.Context, userID uuid.UUID, search string) ([]models.SimulatorSession, error)
	CountDepartures(ctx context.Context, userID uuid.UUID, icao string) (int, error)
	CountArrivals(ctx context.Context, userID uuid.UUID, icao string) (int, error)
}

type FleetRepository interface {
	FetchFleet(ctx context.Context, userID uuid.UUID, query models.ListQuery) ([]models.Asset, int, error)
	GetAsset(ctx context.Context, userID, id uuid.UUID) (models.Asset, error)
	GetAssetsByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Asset, error)
}

type CrewRepository interface {
	FetchCrew(ctx context.Context, userID uuid.UUID, query models.ListQuery, order models.NameDisplay) ([]models.CrewMember, int, error)
	GetCrewMember(ctx context.Context, userID, id uuid.UUID) (models.CrewMember, error)
}

// PreferencesCache is the client-side snapshot of the last confirmed
// preferences. It is never authoritative.
type PreferencesCache interface {
	Get(ctx context.Context) (models.UserPreferences, error)
	Put(ctx context.Context, prefs models.UserPreferences) error
	Invalidate(ctx context.Context) error
}
