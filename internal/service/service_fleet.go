// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

const (
	groupNoOperator  = "No Operator"
	groupAircraft    = "Aircraft"
	groupSimulator   = "Simulator"
	groupUnknownType = "Unknown Type"
)

type fleetService struct {
	repository store.FleetRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewFleetService(repository store.FleetRepository, validator validators.Validator, logger *logger.Logger) FleetService {
	return &fleetService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *fleetService) FetchFleet(ctx context.Context, userID uuid.UUID, query models.ListQuery) (models.FleetPage, error) {
	query = query.WithDefaults()
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.FleetPage{}, fmt.Errorf("%w: %w", ErrInvalidListQuery, err)
	}
	query.SearchQuery = strings.TrimSpace(query.SearchQuery)

	fleet, total, err := s.repository.FetchFleet(ctx, userID, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*fleetService.FetchFleet").
			Str("user_id", userID.String()).
			Msg("failed to fetch fleet")
		return models.FleetPage{}, fmt.Errorf("error fetching fleet: %w", err)
	}

	from, _ := query.Range()
	return models.FleetPage{
		Fleet:      fleet,
		TotalCount: total,
		HasMore:    from+uint64(len(fleet)) < uint64(total),
	}, nil
}

func (s *fleetService) FetchAsset(ctx context.Context, userID, id uuid.UUID) (models.Asset, error) {
	asset, err := s.repository.GetAsset(ctx, userID, id)
	if err != nil {
		return models.Asset{}, fmt.Errorf("error fetching asset: %w", err)
	}
	return asset, nil
}

func (s *fleetService) FetchAssetsByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Asset, error) {
	assets, err := s.repository.GetAssetsByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching assets: %w", err)
	}
	return assets, nil
}

// GroupFleet buckets fleet by grouping. Buckets are ordered by key and assets
// keep their order.
func GroupFleet(fleet []models.Asset, grouping models.FleetGrouping) []models.FleetGroup {
	key := func(a models.Asset) string {
		switch grouping {
		case models.FleetGroupingOperator:
			return valueOr(a.Operator, groupNoOperator)
		case models.FleetGroupingICAOType:
			return valueOr(a.Type, groupUnknownType)
		default:
			if a.IsSimulator {
				return groupSimulator
			}
			return groupAircraft
		}
	}

	groups := make([]models.FleetGroup, 0)
	index := make(map[string]int)
	for _, asset := range fleet {
		k := key(asset)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, models.FleetGroup{Key: k})
		}
		groups[i].Assets = append(groups[i].Assets, asset)
	}

	c := newCollator()
	slices.SortFunc(groups, func(a, b models.FleetGroup) int {
		return c.CompareString(a.Key, b.Key)
	})
	return groups
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
