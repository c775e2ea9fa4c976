// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pilot-logbook/internal/adapter"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
)

type ClientServices struct {
	AuthService         ClientAuthService
	PreferencesProvider PreferencesProvider
	LogService          ClientLogService
	RefreshJob          ClientRefreshJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) *ClientServices {
	provider := NewPreferencesProvider(serverAdapter, localStore.PreferencesCache, validator, logger)

	return &ClientServices{
		AuthService:         NewClientAuthService(serverAdapter),
		PreferencesProvider: provider,
		LogService:          NewClientLogService(serverAdapter, validator),
		RefreshJob:          NewClientRefreshJob(provider, logger),
	}
}
