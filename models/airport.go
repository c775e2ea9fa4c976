package models

// Airport is one entry of the static airport directory.
type Airport struct {
	ICAO        string   `json:"icao" validate:"required"`
	IATA        string   `json:"iata"`
	Name        string   `json:"name" validate:"required"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Elevation   float64  `json:"elevation"`
	Lat         float64  `json:"lat" validate:"latitude"`
	Lon         float64  `json:"lon" validate:"longitude"`
	TZ          string   `json:"tz"`
	CountryCode string   `json:"countryCode"`
	CountryName string   `json:"countryName"`
	Runways     []Runway `json:"runways,omitempty" validate:"dive"`
}

// Runway is a single runway end of an airport. Numeric attributes are kept
// as published in the source data.
type Runway struct {
	Ident                string `json:"ident" validate:"required"`
	Heading              string `json:"heading"`
	Latitude             string `json:"latitude"`
	Longitude            string `json:"longitude"`
	ElevationFt          string `json:"elevation_ft"`
	DisplacedThresholdFt string `json:"displaced_threshold_ft"`
	LengthFt             string `json:"length_ft"`
	WidthFt              string `json:"width_ft"`
	Surface              string `json:"surface"`
	Lighted              bool   `json:"lighted"`
	Closed               bool   `json:"closed"`
}

// AirportsMetadata describes the airport directory file.
type AirportsMetadata struct {
	LastUpdated         string            `json:"last_updated"`
	TotalAirports       int               `json:"total_airports"`
	AirportsWithRunways int               `json:"airports_with_runways"`
	CountryProcessing   CountryProcessing `json:"country_processing"`
	Sources             MetadataSources   `json:"sources"`
}

type CountryProcessing struct {
	TotalAirports     int `json:"total_airports"`
	CountriesResolved int `json:"countries_resolved"`
	CountriesNotFound int `json:"countries_not_found"`
	NoCountryCode     int `json:"no_country_code"`
}

type MetadataSources struct {
	Airports string `json:"airports"`
	Runways  string `json:"runways"`
}

// AirportDatabase is the on-disk layout of the airport directory.
type AirportDatabase struct {
	Airports map[string]Airport `json:"airports"`
	Metadata AirportsMetadata   `json:"metadata"`
}

// AircraftType is one entry of the static aircraft-type directory.
type AircraftType struct {
	Model        string `json:"Model" validate:"required"`
	Type         string `json:"Type"`
	Manufacturer string `json:"Manufacturer"`
	Category     string `json:"Category"`
	EngineCount  int    `json:"EngineCount" validate:"min=0"`
	EngineType   string `json:"EngineType"`
}

// AirportGroup is one bucket of the directory grouped by country.
type AirportGroup struct {
	Country  string    `json:"country"`
	Airports []Airport `json:"airports"`
}

// AircraftTypeGroup is one bucket of the directory grouped by manufacturer.
type AircraftTypeGroup struct {
	Manufacturer string         `json:"manufacturer"`
	Types        []AircraftType `json:"types"`
}
