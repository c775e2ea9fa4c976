// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

// Airports is a parsed airport directory. List is ordered by ICAO code.
type Airports struct {
	List     []models.Airport
	Metadata models.AirportsMetadata

	byICAO map[string]int
}

// Lookup finds an airport by ICAO code, ignoring case.
func (a *Airports) Lookup(icao string) (models.Airport, bool) {
	i, ok := a.byICAO[strings.ToUpper(strings.TrimSpace(icao))]
	if !ok {
		return models.Airport{}, false
	}
	return a.List[i], true
}

// AirportDirectory reads airports.json.
type AirportDirectory struct {
	path      string
	validator validators.Validator
	logger    *logger.Logger
	loader    *cachedLoader[*Airports]
}

func NewAirportDirectory(path string, ttl time.Duration, validator validators.Validator, logger *logger.Logger) *AirportDirectory {
	d := &AirportDirectory{
		path:      path,
		validator: validator,
		logger:    logger,
	}
	d.loader = newCachedLoader(ttl, d.parse)
	return d
}

// Airports returns the directory, reading the file when the cached copy is
// missing or expired.
func (d *AirportDirectory) Airports(ctx context.Context) (*Airports, error) {
	return d.loader.get(ctx, d.path)
}

// Reload drops the cached copy.
func (d *AirportDirectory) Reload() {
	d.loader.purge()
}

func (d *AirportDirectory) parse(ctx context.Context, raw []byte) (*Airports, error) {
	var file struct {
		Airports json.RawMessage         `json:"airports"`
		Metadata models.AirportsMetadata `json:"metadata"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetParse, err)
	}

	body := bytes.TrimSpace(file.Airports)
	if len(body) == 0 || body[0] != '{' {
		return nil, fmt.Errorf(`%w: expected an "airports" object`, ErrDatasetFormat)
	}

	var entries map[string]models.Airport
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetFormat, err)
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &Airports{
		List:     make([]models.Airport, 0, len(entries)),
		Metadata: file.Metadata,
		byICAO:   make(map[string]int, len(entries)),
	}
	for _, key := range keys {
		airport := entries[key]
		if airport.ICAO == "" {
			airport.ICAO = key
		}
		if err := d.validator.Validate(ctx, airport); err != nil {
			d.logger.Warn().Err(err).Str("icao", key).Msg("skipping invalid airport entry")
			continue
		}
		result.byICAO[strings.ToUpper(airport.ICAO)] = len(result.List)
		result.List = append(result.List, airport)
	}

	if len(result.List) == 0 {
		return nil, fmt.Errorf("%w: no airports", ErrDatasetEmpty)
	}

	d.logger.Info().Int("airports", len(result.List)).Str("path", d.path).Msg("airport directory loaded")
	return result, nil
}
