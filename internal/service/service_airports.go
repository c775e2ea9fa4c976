// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/dataset"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AirportDirectory is the read side of the static airport dataset.
type AirportDirectory interface {
	Airports(ctx context.Context) (*dataset.Airports, error)
}

var (
	operatorQuery = regexp.MustCompile(`^(icao|iata|country|city|name):(.+)$`)
	icaoPattern   = regexp.MustCompile(`^[A-Za-z0-9]{2,8}$`)
)

const unknownCountry = "Unknown"

type airportService struct {
	directory   AirportDirectory
	preferences store.PreferencesRepository
	logs        store.LogRepository
	logger      *logger.Logger
}

func NewAirportService(directory AirportDirectory, preferences store.PreferencesRepository, logs store.LogRepository, logger *logger.Logger) AirportService {
	return &airportService{
		directory:   directory,
		preferences: preferences,
		logs:        logs,
		logger:      logger,
	}
}

func (s *airportService) airports(ctx context.Context) (*dataset.Airports, error) {
	airports, err := s.directory.Airports(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to load airport directory")
		return nil, fmt.Errorf("%w: %w", ErrAirportDataFailed, err)
	}
	return airports, nil
}

// SearchAirports supports "field:value" queries on icao, iata, country, city
// and name. Any other query is matched against all of those fields.
func (s *airportService) SearchAirports(ctx context.Context, userID uuid.UUID, query string, sortBy models.AirportSorting) ([]models.Airport, error) {
	airports, err := s.airports(ctx)
	if err != nil {
		return nil, err
	}

	result := FilterAirports(airports.List, query)

	var favorites []string
	if sortBy == models.AirportSortingFavourites && userID != uuid.Nil {
		if favorites, err = s.preferences.GetFavoriteAirports(ctx, userID); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*airportService.SearchAirports").
				Msg("failed to read favourites, sorting without them")
			favorites = nil
		}
	}

	SortAirports(result, sortBy, favorites)
	return result, nil
}

func (s *airportService) GetAirportByICAO(ctx context.Context, icao string) (models.Airport, error) {
	airports, err := s.airports(ctx)
	if err != nil {
		return models.Airport{}, err
	}

	airport, ok := airports.Lookup(icao)
	if !ok {
		return models.Airport{}, fmt.Errorf("%w: airport with ICAO code %q not found", ErrAirportNotFound, icao)
	}
	return airport, nil
}

func (s *airportService) GetRunways(ctx context.Context, icao string) ([]models.Runway, error) {
	airport, err := s.GetAirportByICAO(ctx, icao)
	if err != nil {
		return nil, err
	}
	if len(airport.Runways) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoRunways, icao)
	}
	return airport.Runways, nil
}

func (s *airportService) GetMetadata(ctx context.Context) (models.AirportsMetadata, error) {
	airports, err := s.airports(ctx)
	if err != nil {
		return models.AirportsMetadata{}, err
	}
	return airports.Metadata, nil
}

// GetAirportsByCountry buckets the directory by country name. Buckets are
// ordered by name and airports keep the directory order.
func (s *airportService) GetAirportsByCountry(ctx context.Context) ([]models.AirportGroup, error) {
	airports, err := s.airports(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]models.AirportGroup, 0)
	for _, airport := range airports.List {
		country := airport.CountryName
		if country == "" {
			country = unknownCountry
		}
		i, ok := index[country]
		if !ok {
			i = len(groups)
			index[country] = i
			groups = append(groups, models.AirportGroup{Country: country})
		}
		groups[i].Airports = append(groups[i].Airports, airport)
	}

	c := newCollator()
	slices.SortFunc(groups, func(a, b models.AirportGroup) int {
		return c.CompareString(a.Country, b.Country)
	})
	return groups, nil
}

// GetAirportVisits counts departures and arrivals in parallel.
func (s *airportService) GetAirportVisits(ctx context.Context, userID uuid.UUID, icao string) (models.AirportVisits, error) {
	icao, err := normalizeICAO(icao)
	if err != nil {
		return models.AirportVisits{}, err
	}

	var visits models.AirportVisits
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visits.Departures, err = s.logs.CountDepartures(gctx, userID, icao)
		return err
	})
	g.Go(func() error {
		var err error
		visits.Arrivals, err = s.logs.CountArrivals(gctx, userID, icao)
		return err
	})
	if err = g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*airportService.GetAirportVisits").
			Str("icao", icao).
			Msg("failed to count airport visits")
		return models.AirportVisits{}, fmt.Errorf("error counting visits: %w", err)
	}

	visits.Total = visits.Departures + visits.Arrivals
	return visits, nil
}

func (s *airportService) GetFavoriteAirports(ctx context.Context, userID uuid.UUID) ([]string, error) {
	favorites, err := s.preferences.GetFavoriteAirports(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading favourite airports: %w", err)
	}
	return favorites, nil
}

// AddFavoriteAirport appends icao to the favourites. Adding an existing
// favourite changes nothing.
func (s *airportService) AddFavoriteAirport(ctx context.Context, userID uuid.UUID, icao string) error {
	icao, err := normalizeICAO(icao)
	if err != nil {
		return err
	}

	favorites, err := s.GetFavoriteAirports(ctx, userID)
	if err != nil {
		return err
	}
	if slices.Contains(favorites, icao) {
		return nil
	}

	if err = s.preferences.SetFavoriteAirports(ctx, userID, append(favorites, icao)); err != nil {
		return fmt.Errorf("error saving favourite airports: %w", err)
	}
	return nil
}

func (s *airportService) RemoveFavoriteAirport(ctx context.Context, userID uuid.UUID, icao string) error {
	icao, err := normalizeICAO(icao)
	if err != nil {
		return err
	}

	favorites, err := s.GetFavoriteAirports(ctx, userID)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(slices.Clone(favorites), func(f string) bool { return f == icao })
	if err = s.preferences.SetFavoriteAirports(ctx, userID, remaining); err != nil {
		return fmt.Errorf("error saving favourite airports: %w", err)
	}
	return nil
}

func (s *airportService) IsFavoriteAirport(ctx context.Context, userID uuid.UUID, icao string) (bool, error) {
	icao, err := normalizeICAO(icao)
	if err != nil {
		return false, err
	}

	favorites, err := s.GetFavoriteAirports(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(favorites, icao), nil
}

func normalizeICAO(icao string) (string, error) {
	icao = strings.ToUpper(strings.TrimSpace(icao))
	if !icaoPattern.MatchString(icao) {
		return "", fmt.Errorf("%w: %q", ErrInvalidICAO, icao)
	}
	return icao, nil
}

// FilterAirports returns the airports matching query. The result is a new
// slice; an empty query matches everything.
func FilterAirports(airports []models.Airport, query string) []models.Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(airports)
	}

	match := func(a models.Airport) bool {
		return contains(a.ICAO, q) ||
			contains(a.IATA, q) ||
			contains(a.Name, q) ||
			contains(a.City, q) ||
			contains(a.CountryName, q) ||
			contains(a.CountryCode, q)
	}

	if m := operatorQuery.FindStringSubmatch(q); m != nil {
		field, value := m[1], strings.TrimSpace(m[2])
		match = func(a models.Airport) bool {
			switch field {
			case "icao":
				return contains(a.ICAO, value)
			case "iata":
				return a.IATA != "" && contains(a.IATA, value)
			case "name":
				return contains(a.Name, value)
			case "country":
				return contains(a.CountryName, value) || contains(a.CountryCode, value)
			case "city":
				return contains(a.City, value)
			default:
				return false
			}
		}
	}

	result := make([]models.Airport, 0)
	for _, a := range airports {
		if match(a) {
			result = append(result, a)
		}
	}
	return result
}

func contains(field, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(field), lowerQuery)
}

// SortAirports orders airports in place. For the country, icao and iata
// orders airports without the key go last and ties are broken by name. The
// favourites order puts favourites first, in the order of favorites, and the
// rest by icao.
func SortAirports(airports []models.Airport, sortBy models.AirportSorting, favorites []string) {
	c := newCollator()
	byName := func(a, b models.Airport) int { return c.CompareString(a.Name, b.Name) }

	byKey := func(key func(models.Airport) string, less func(x, y string) int) func(a, b models.Airport) int {
		return func(a, b models.Airport) int {
			ka, kb := key(a), key(b)
			switch {
			case ka != "" && kb == "":
				return -1
			case ka == "" && kb != "":
				return 1
			case ka == "" && kb == "":
				return byName(a, b)
			case ka != kb:
				return less(ka, kb)
			default:
				return byName(a, b)
			}
		}
	}

	byCountry := byKey(func(a models.Airport) string { return a.CountryName }, c.CompareString)
	byIATA := byKey(func(a models.Airport) string { return a.IATA }, c.CompareString)
	byICAO := byKey(func(a models.Airport) string { return a.ICAO }, func(x, y string) int {
		xl, yl := startsWithLetter(x), startsWithLetter(y)
		switch {
		case xl && !yl:
			return -1
		case !xl && yl:
			return 1
		default:
			return c.CompareString(x, y)
		}
	})

	switch sortBy {
	case models.AirportSortingCountry:
		slices.SortStableFunc(airports, byCountry)
	case models.AirportSortingICAO:
		slices.SortStableFunc(airports, byICAO)
	case models.AirportSortingIATA:
		slices.SortStableFunc(airports, byIATA)
	case models.AirportSortingFavourites:
		rank := make(map[string]int, len(favorites))
		for i, icao := range favorites {
			if _, ok := rank[icao]; !ok {
				rank[icao] = i
			}
		}
		slices.SortStableFunc(airports, func(a, b models.Airport) int {
			ra, aFav := rank[strings.ToUpper(a.ICAO)]
			rb, bFav := rank[strings.ToUpper(b.ICAO)]
			switch {
			case aFav && bFav:
				return ra - rb
			case aFav:
				return -1
			case bFav:
				return 1
			default:
				return byICAO(a, b)
			}
		})
	}
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	ch := s[0] | 0x20
	return ch >= 'a' && ch <= 'z'
}

// newCollator returns a root-locale collator. Collators keep scratch buffers
// and must not be shared between goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}
