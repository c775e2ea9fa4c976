package service

import (
	"context"

	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PreferencesService owns the single preferences row of every user. Every
// value it returns is a complete, validated record.
type PreferencesService interface {
	// GetPreferences returns the stored preferences, creating the row with
	// defaults on first access and repairing stored documents that no longer
	// validate.
	GetPreferences(ctx context.Context, userID uuid.UUID) (models.UserPreferences, error)

	// UpdatePreferences validates every section present in patch, merges it
	// over the current value and stores the result.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, patch models.PreferencesPatch) (models.UserPreferences, error)

	// ResetPreferences overwrites the row with the defaults.
	ResetPreferences(ctx context.Context, userID uuid.UUID) (models.UserPreferences, error)
}

type LogService interface {
	// FetchLogs merges flights and simulator sessions into one sorted list
	// and returns the requested page of it.
	FetchLogs(ctx context.Context, userID uuid.UUID, query models.LogsQuery) (models.LogsPage, error)
}

type AirportService interface {
	// SearchAirports filters the directory by query and orders the result.
	// userID is only consulted for the favourites order and may be uuid.Nil.
	SearchAirports(ctx context.Context, userID uuid.UUID, query string, sortBy models.AirportSorting) ([]models.Airport, error)
	GetAirportByICAO(ctx context.Context, icao string) (models.Airport, error)
	GetRunways(ctx context.Context, icao string) ([]models.Runway, error)
	GetMetadata(ctx context.Context) (models.AirportsMetadata, error)
	GetAirportsByCountry(ctx context.Context) ([]models.AirportGroup, error)
	GetAirportVisits(ctx context.Context, userID uuid.UUID, icao string) (models.AirportVisits, error)

	GetFavoriteAirports(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddFavoriteAirport(ctx context.Context, userID uuid.UUID, icao string) error
	RemoveFavoriteAirport(ctx context.Context, userID uuid.UUID, icao string) error
	IsFavoriteAirport(ctx context.Context, userID uuid.UUID, icao string) (bool, error)
}

type FleetService interface {
	FetchFleet(ctx context.Context, userID uuid.UUID, query models.ListQuery) (models.FleetPage, error)
	FetchAsset(ctx context.Context, userID, id uuid.UUID) (models.Asset, error)
	FetchAssetsByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Asset, error)
}

type CrewService interface {
	// FetchCrew returns a page of crew members ordered the way the user's
	// nameDisplay preference renders them.
	FetchCrew(ctx context.Context, userID uuid.UUID, query models.ListQuery) (models.CrewPage, error)
	FetchCrewMember(ctx context.Context, userID, id uuid.UUID) (models.CrewMember, error)
}

type AircraftTypeService interface {
	SearchAircraftTypes(ctx context.Context, query string) ([]models.AircraftType, error)
	GroupByManufacturer(ctx context.Context) ([]models.AircraftTypeGroup, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
