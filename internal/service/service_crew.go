package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

const noInitial = "#"

type crewService struct {
	repository  store.CrewRepository
	preferences PreferencesService
	validator   validators.Validator
	logger      *logger.Logger
}

func NewCrewService(repository store.CrewRepository, preferences PreferencesService, validator validators.Validator, logger *logger.Logger) CrewService {
	return &crewService{
		repository:  repository,
		preferences: preferences,
		validator:   validator,
		logger:      logger,
	}
}

func (s *crewService) FetchCrew(ctx context.Context, userID uuid.UUID, query models.ListQuery) (models.CrewPage, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*crewService.FetchCrew").
		Str("user_id", userID.String()).
		Logger()

	query = query.WithDefaults()
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.CrewPage{}, fmt.Errorf("%w: %w", ErrInvalidListQuery, err)
	}
	query.SearchQuery = strings.TrimSpace(query.SearchQuery)

	display := models.NameDisplayFirstLast
	if prefs, err := s.preferences.GetPreferences(ctx, userID); err != nil {
		log.Warn().Err(err).Msg("failed to read name display preference, using first-last")
	} else {
		display = prefs.NameDisplay
	}

	crew, total, err := s.repository.FetchCrew(ctx, userID, query, display)
	if err != nil {
		log.Err(err).Msg("failed to fetch crew")
		return models.CrewPage{}, fmt.Errorf("error fetching crew: %w", err)
	}

	from, _ := query.Range()
	return models.CrewPage{
		Crew:       crew,
		TotalCount: total,
		HasMore:    from+uint64(len(crew)) < uint64(total),
	}, nil
}

func (s *crewService) FetchCrewMember(ctx context.Context, userID, id uuid.UUID) (models.CrewMember, error) {
	member, err := s.repository.GetCrewMember(ctx, userID, id)
	if err != nil {
		return models.CrewMember{}, fmt.Errorf("error fetching crew member: %w", err)
	}
	return member, nil
}

// GroupCrewByInitial buckets crew by the initial of the name they are sorted
// by. Buckets are ordered alphabetically with "#" last.
func GroupCrewByInitial(crew []models.CrewMember, display models.NameDisplay) []models.CrewGroup {
	groups := make([]models.CrewGroup, 0)
	index := make(map[string]int)
	for _, member := range crew {
		initial := member.Initial(display)
		i, ok := index[initial]
		if !ok {
			i = len(groups)
			index[initial] = i
			groups = append(groups, models.CrewGroup{Initial: initial})
		}
		groups[i].Crew = append(groups[i].Crew, member)
	}

	c := newCollator()
	slices.SortFunc(groups, func(a, b models.CrewGroup) int {
		switch {
		case a.Initial == b.Initial:
			return 0
		case a.Initial == noInitial:
			return 1
		case b.Initial == noInitial:
			return -1
		default:
			return c.CompareString(a.Initial, b.Initial)
		}
	})
	return groups
}
