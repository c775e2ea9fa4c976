// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/adapter"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

type clientLogService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientLogService(serverAdapter adapter.ServerAdapter, validator validators.Validator) ClientLogService {
	return &clientLogService{adapter: serverAdapter, validator: validator}
}

// FetchLogs validates the query locally before asking the server.
func (s *clientLogService) FetchLogs(ctx context.Context, query models.LogsQuery) (models.LogsPage, error) {
	query = query.WithDefaults()
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.LogsPage{}, fmt.Errorf("%w: %w", ErrInvalidLogsQuery, err)
	}

	page, err := s.adapter.FetchLogs(ctx, query)
	if err != nil {
		return models.LogsPage{}, mapAdapterError(err)
	}
	return page, nil
}
