package service

import (
	"fmt"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
)

type Services struct {
	AuthService         AuthService
	PreferencesService  PreferencesService
	LogService          LogService
	AirportService      AirportService
	FleetService        FleetService
	CrewService         CrewService
	AircraftTypeService AircraftTypeService
	AppInfoService      AppInfoService
}

// Directories groups the static datasets the services read.
type Directories struct {
	Airports AirportDirectory
	Aircraft AircraftDirectory
}

func NewServices(storages *store.Storages, directories Directories, validator validators.Validator, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	preferencesService := NewPreferencesService(storages.PreferencesRepository, validator, logger)

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		PreferencesService:  preferencesService,
		LogService:          NewLogService(storages.LogRepository, validator, logger),
		AirportService:      NewAirportService(directories.Airports, storages.PreferencesRepository, storages.LogRepository, logger),
		FleetService:        NewFleetService(storages.FleetRepository, validator, logger),
		CrewService:         NewCrewService(storages.CrewRepository, preferencesService, validator, logger),
		AircraftTypeService: NewAircraftTypeService(directories.Aircraft, logger),
		AppInfoService:      appInfoService,
	}, nil
}
