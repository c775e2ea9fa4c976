package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

const unknownManufacturer = "Unknown Manufacturer"

// AircraftDirectory is the read side of the static aircraft-type dataset.
type AircraftDirectory interface {
	AircraftTypes(ctx context.Context) ([]models.AircraftType, error)
}

type aircraftTypeService struct {
	directory AircraftDirectory
	logger    *logger.Logger
}

func NewAircraftTypeService(directory AircraftDirectory, logger *logger.Logger) AircraftTypeService {
	return &aircraftTypeService{
		directory: directory,
		logger:    logger,
	}
}

func (s *aircraftTypeService) aircraftTypes(ctx context.Context) ([]models.AircraftType, error) {
	types, err := s.directory.AircraftTypes(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to load aircraft directory")
		return nil, fmt.Errorf("%w: %w", ErrAircraftDataFailed, err)
	}
	return types, nil
}

// SearchAircraftTypes matches query against model, type and manufacturer,
// ignoring case and whitespace.
func (s *aircraftTypeService) SearchAircraftTypes(ctx context.Context, query string) ([]models.AircraftType, error) {
	types, err := s.aircraftTypes(ctx)
	if err != nil {
		return nil, err
	}

	needle := squash(query)
	if needle == "" {
		return slices.Clone(types), nil
	}

	result := make([]models.AircraftType, 0)
	for _, t := range types {
		if strings.Contains(squash(t.Model), needle) ||
			strings.Contains(squash(t.Type), needle) ||
			strings.Contains(squash(t.Manufacturer), needle) {
			result = append(result, t)
		}
	}
	return result, nil
}

// GroupByManufacturer buckets the directory by manufacturer, ordered by name.
func (s *aircraftTypeService) GroupByManufacturer(ctx context.Context) ([]models.AircraftTypeGroup, error) {
	types, err := s.aircraftTypes(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]models.AircraftTypeGroup, 0)
	index := make(map[string]int)
	for _, t := range types {
		manufacturer := strings.TrimSpace(t.Manufacturer)
		if manufacturer == "" {
			manufacturer = unknownManufacturer
		}
		i, ok := index[manufacturer]
		if !ok {
			i = len(groups)
			index[manufacturer] = i
			groups = append(groups, models.AircraftTypeGroup{Manufacturer: manufacturer})
		}
		groups[i].Types = append(groups[i].Types, t)
	}

	c := newCollator()
	slices.SortFunc(groups, func(a, b models.AircraftTypeGroup) int {
		return c.CompareString(a.Manufacturer, b.Manufacturer)
	})
	return groups, nil
}

// squash lower-cases s and drops all whitespace.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
