package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrAuthenticationRequired is returned when an operation needs a
	// principal and the caller has none.
	ErrAuthenticationRequired = errors.New("Authentication required")
)

// Preferences errors.
var (
	// ErrInvalidPreferencesSection wraps the field errors of the first patch
	// section that failed validation.
	ErrInvalidPreferencesSection = errors.New("invalid preferences section")

	// ErrInvalidPreferences is returned when a merged document does not form
	// a valid preferences record.
	ErrInvalidPreferences = errors.New("invalid preferences")

	ErrPreferencesNotSaved = errors.New("failed to save preferences")
)

// Listing and lookup errors.
var (
	ErrInvalidLogsQuery   = errors.New("invalid logs query")
	ErrInvalidListQuery   = errors.New("invalid list query")
	ErrFetchLogs          = errors.New("failed to fetch logs")
	ErrInvalidICAO        = errors.New("invalid ICAO code")
	ErrAirportNotFound    = errors.New("airport not found")
	ErrNoRunways          = errors.New("no runway information available")
	ErrAirportDataFailed  = errors.New("failed to load airport data")
	ErrAircraftDataFailed = errors.New("failed to load aircraft data")
)

// Client errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrPreferencesLoading is returned by client operations that need the
	// preferences before the first load has resolved.
	ErrPreferencesLoading = errors.New("preferences are still loading")
)

// SectionError reports which preferences section of an update was rejected.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	noun := "preferences"
	if e.Section == validators.SectionNameDisplay {
		noun = "preference"
	}
	return fmt.Sprintf("Invalid %s %s: %v", e.Section, noun, e.Err)
}

func (e *SectionError) Unwrap() []error {
	return []error{ErrInvalidPreferencesSection, e.Err}
}
