package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

// AircraftDirectory reads aircraft.json, a top-level array of aircraft types.
type AircraftDirectory struct {
	path      string
	validator validators.Validator
	logger    *logger.Logger
	loader    *cachedLoader[[]models.AircraftType]
}

func NewAircraftDirectory(path string, ttl time.Duration, validator validators.Validator, logger *logger.Logger) *AircraftDirectory {
	d := &AircraftDirectory{
		path:      path,
		validator: validator,
		logger:    logger,
	}
	d.loader = newCachedLoader(ttl, d.parse)
	return d
}

// AircraftTypes returns the directory in file order. Callers must not modify
// the returned slice.
func (d *AircraftDirectory) AircraftTypes(ctx context.Context) ([]models.AircraftType, error) {
	return d.loader.get(ctx, d.path)
}

func (d *AircraftDirectory) Reload() {
	d.loader.purge()
}

func (d *AircraftDirectory) parse(ctx context.Context, raw []byte) ([]models.AircraftType, error) {
	if !json.Valid(raw) {
		return nil, ErrDatasetParse
	}
	if body := bytes.TrimSpace(raw); len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("%w: expected an array", ErrDatasetFormat)
	}

	var entries []models.AircraftType
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetFormat, err)
	}

	types := make([]models.AircraftType, 0, len(entries))
	for i, entry := range entries {
		if err := d.validator.Validate(ctx, entry); err != nil {
			d.logger.Warn().Err(err).Int("index", i).Msg("skipping invalid aircraft type entry")
			continue
		}
		types = append(types, entry)
	}

	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no aircraft", ErrDatasetEmpty)
	}

	d.logger.Info().Int("aircraft_types", len(types)).Str("path", d.path).Msg("aircraft directory loaded")
	return types, nil
}
