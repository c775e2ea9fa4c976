package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

// storedState describes what was found in the preferences row.
type storedState int

const (
	storedValid storedState = iota
	storedMissing
	storedRecovered
	storedUnrecoverable
)

type preferencesService struct {
	repository store.PreferencesRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewPreferencesService(repository store.PreferencesRepository, validator validators.Validator, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// GetPreferences reads the row and writes back what it had to fix: a missing
// row is inserted with defaults and a repaired document replaces the stored
// one. Failed write-backs are logged, the resolved value is still returned.
func (s *preferencesService) GetPreferences(ctx context.Context, userID uuid.UUID) (models.UserPreferences, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*preferencesService.GetPreferences").
		Str("user_id", userID.String()).
		Logger()

	prefs, state, err := s.resolve(ctx, userID)
	if err != nil {
		return models.UserPreferences{}, err
	}

	switch state {
	case storedMissing:
		if err = s.repository.InsertPreferences(ctx, userID, prefs); err != nil {
			log.Err(err).Msg("failed to create default preferences")
		}
	case storedRecovered:
		if err = s.repository.UpdatePreferences(ctx, userID, prefs); err != nil {
			log.Err(err).Msg("failed to save recovered preferences")
		}
	}

	return prefs, nil
}

// UpdatePreferences checks each present section of patch on its own so the
// error names the section at fault. Nothing is written when any check fails.
func (s *preferencesService) UpdatePreferences(ctx context.Context, userID uuid.UUID, patch models.PreferencesPatch) (models.UserPreferences, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*preferencesService.UpdatePreferences").
		Str("user_id", userID.String()).
		Logger()

	for _, section := range presentSections(patch) {
		if err := s.validator.Validate(ctx, patch, section); err != nil {
			log.Warn().Err(err).Str("section", section).Msg("rejected preferences section")
			return models.UserPreferences{}, &SectionError{Section: section, Err: err}
		}
	}

	current, _, err := s.resolve(ctx, userID)
	if err != nil {
		return models.UserPreferences{}, err
	}

	merged := current.Merge(patch)
	if err = s.validator.Validate(ctx, merged); err != nil {
		log.Error().Err(err).Msg("merged preferences are invalid")
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	if err = s.repository.UpsertPreferences(ctx, userID, merged); err != nil {
		log.Err(err).Msg("failed to store preferences")
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrPreferencesNotSaved, err)
	}

	return merged, nil
}

func (s *preferencesService) ResetPreferences(ctx context.Context, userID uuid.UUID) (models.UserPreferences, error) {
	defaults := models.DefaultPreferences()

	if err := s.repository.UpsertPreferences(ctx, userID, defaults); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*preferencesService.ResetPreferences").
			Str("user_id", userID.String()).
			Msg("failed to reset preferences")
		return models.UserPreferences{}, fmt.Errorf("%w: %w", ErrPreferencesNotSaved, err)
	}

	return defaults, nil
}

// resolve turns the stored document into a valid record without writing
// anything. A document that is valid is returned as is. Otherwise the stored
// keys are merged over the defaults and the result is kept when it validates.
// Values that cannot be decoded into their field types make the document
// unrecoverable, and the defaults are returned.
func (s *preferencesService) resolve(ctx context.Context, userID uuid.UUID) (models.UserPreferences, storedState, error) {
	log := logger.FromContext(ctx)
	defaults := models.DefaultPreferences()

	raw, err := s.repository.GetPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrPreferencesNotFound) {
			return defaults, storedMissing, nil
		}
		return models.UserPreferences{}, 0, fmt.Errorf("error reading preferences: %w", err)
	}

	var stored models.PreferencesPatch
	if err = json.Unmarshal(raw, &stored); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("stored preferences cannot be decoded, using defaults")
		return defaults, storedUnrecoverable, nil
	}

	if err = s.validator.Validate(ctx, stored); err == nil {
		return defaults.Merge(stored), storedValid, nil
	}
	log.Warn().Err(err).Str("user_id", userID.String()).Msg("stored preferences are invalid, recovering")

	recovered := defaults.Merge(stored)
	if err = s.validator.Validate(ctx, recovered); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("recovery failed, using defaults")
		return defaults, storedUnrecoverable, nil
	}

	return recovered, storedRecovered, nil
}

// presentSections lists the sections of patch in validation order.
func presentSections(patch models.PreferencesPatch) []string {
	sections := make([]string, 0, len(validators.PreferenceSections))
	for _, section := range validators.PreferenceSections {
		var present bool
		switch section {
		case validators.SectionAirports:
			present = patch.Airports != nil
		case validators.SectionLogging:
			present = patch.Logging != nil
		case validators.SectionFleet:
			present = patch.Fleet != nil
		case validators.SectionNameDisplay:
			present = patch.NameDisplay != nil
		}
		if present {
			sections = append(sections, section)
		}
	}
	return sections
}
