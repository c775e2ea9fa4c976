package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newAirportDirectory(path string) *AirportDirectory {
	return NewAirportDirectory(path, time.Hour, validators.NewValidator(), logger.Nop())
}

const validAirports = `{
  "airports": {
    "kjfk": {"iata": "JFK", "name": "John F Kennedy International Airport", "city": "New York", "lat": 40.6, "lon": -73.7, "countryCode": "US", "countryName": "United States"},
    "EDDF": {"icao": "EDDF", "iata": "FRA", "name": "Frankfurt am Main Airport", "city": "Frankfurt", "lat": 50.0, "lon": 8.5, "countryCode": "DE", "countryName": "Germany"},
    "XXXX": {"iata": "", "name": "", "lat": 10, "lon": 10}
  },
  "metadata": {"last_updated": "2026-09-01", "total_airports": 3}
}`

func TestAirportDirectory_Airports(t *testing.T) {
	dir := newAirportDirectory(writeFile(t, "airports.json", validAirports))

	airports, err := dir.Airports(context.Background())
	require.NoError(t, err)

	require.Len(t, airports.List, 2, "entry without a name must be skipped")
	assert.Equal(t, "EDDF", airports.List[0].ICAO)
	assert.Equal(t, "kjfk", airports.List[1].ICAO, "icao is filled from the key")
	assert.Equal(t, "2026-09-01", airports.Metadata.LastUpdated)
	assert.Equal(t, 3, airports.Metadata.TotalAirports)

	found, ok := airports.Lookup(" KJFK ")
	require.True(t, ok)
	assert.Equal(t, "JFK", found.IATA)

	_, ok = airports.Lookup("XXXX")
	assert.False(t, ok)
}

func TestAirportDirectory_CachesParsedFile(t *testing.T) {
	path := writeFile(t, "airports.json", validAirports)
	dir := newAirportDirectory(path)

	first, err := dir.Airports(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	second, err := dir.Airports(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	dir.Reload()
	_, err = dir.Airports(context.Background())
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestAirportDirectory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "broken json", content: `{"airports": {`, wantErr: ErrDatasetParse},
		{name: "missing airports object", content: `{"metadata": {}}`, wantErr: ErrDatasetFormat},
		{name: "airports is null", content: `{"airports": null}`, wantErr: ErrDatasetFormat},
		{name: "airports is an array", content: `{"airports": []}`, wantErr: ErrDatasetFormat},
		{name: "no valid entries", content: `{"airports": {"AAAA": {"name": ""}}}`, wantErr: ErrDatasetEmpty},
		{name: "empty object", content: `{"airports": {}}`, wantErr: ErrDatasetEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newAirportDirectory(writeFile(t, "airports.json", tt.content))

			_, err := dir.Airports(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAirportDirectory_MissingFile(t *testing.T) {
	dir := newAirportDirectory(filepath.Join(t.TempDir(), "nope.json"))

	_, err := dir.Airports(context.Background())
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestAirportDirectory_BundledDataset(t *testing.T) {
	dir := newAirportDirectory(filepath.Join("..", "..", "data", "airports.json"))

	airports, err := dir.Airports(context.Background())
	require.NoError(t, err)
	assert.Len(t, airports.List, 5)

	eddf, ok := airports.Lookup("eddf")
	require.True(t, ok)
	assert.Len(t, eddf.Runways, 2)
}
