package models

// DutyFunction is the pilot function pre-selected when a new flight is logged.
type DutyFunction string

const (
	DutyFunctionPIC        DutyFunction = "PIC"
	DutyFunctionCoPilot    DutyFunction = "Co-Pilot"
	DutyFunctionDual       DutyFunction = "Dual"
	DutyFunctionInstructor DutyFunction = "Instructor"
	DutyFunctionSolo       DutyFunction = "Solo"
	DutyFunctionSPIC       DutyFunction = "SPIC"
	DutyFunctionPICUS      DutyFunction = "PICUS"
)

// FleetGrouping selects how the fleet list is bucketed.
type FleetGrouping string

const (
	FleetGroupingOperator FleetGrouping = "operator"
	FleetGroupingType     FleetGrouping = "type"
	FleetGroupingICAOType FleetGrouping = "icaoType"
)

// AirportSorting selects the order of the airport directory.
type AirportSorting string

const (
	AirportSortingCountry    AirportSorting = "country"
	AirportSortingICAO       AirportSorting = "icao"
	AirportSortingIATA       AirportSorting = "iata"
	AirportSortingFavourites AirportSorting = "favourites"
)

// DistanceUnit is the unit runway lengths and elevations are shown in.
type DistanceUnit string

const (
	DistanceUnitMeters DistanceUnit = "m"
	DistanceUnitFeet   DistanceUnit = "ft"
)

// NameDisplay is the order in which crew names are rendered and sorted.
type NameDisplay string

const (
	NameDisplayFirstLast NameDisplay = "first-last"
	NameDisplayLastFirst NameDisplay = "last-first"
)

// UserPreferences is the fully populated settings record of a single user.
//
// Every value that leaves the service layer has passed validation, so all
// enum fields hold one of their declared constants.
type UserPreferences struct {
	Logging     LoggingPreferences `json:"logging"`
	Fleet       FleetPreferences   `json:"fleet"`
	Airports    AirportPreferences `json:"airports"`
	NameDisplay NameDisplay        `json:"nameDisplay" validate:"oneof=first-last last-first"`
}

// LoggingPreferences controls the flight logging form.
type LoggingPreferences struct {
	DefaultFunction DutyFunction  `json:"defaultFunction" validate:"oneof=PIC Co-Pilot Dual Instructor Solo SPIC PICUS"`
	Fields          LoggingFields `json:"fields"`
}

// LoggingFields toggles the optional columns of the logging form.
type LoggingFields struct {
	Hobbs      bool `json:"hobbs"`
	Tach       bool `json:"tach"`
	Duty       bool `json:"duty"`
	Scheduled  bool `json:"scheduled"`
	XC         bool `json:"xc"`
	Passengers bool `json:"passengers"`
	Fuel       bool `json:"fuel"`
	Approaches bool `json:"approaches"`
	Training   bool `json:"training"`
	GoArounds  bool `json:"go_arounds"`
}

type FleetPreferences struct {
	Grouping FleetGrouping `json:"grouping" validate:"oneof=operator type icaoType"`
}

type AirportPreferences struct {
	Sorting      AirportSorting `json:"sorting" validate:"oneof=country icao iata favourites"`
	DistanceUnit DistanceUnit   `json:"distanceUnit" validate:"oneof=m ft"`
}

// DefaultPreferences returns the record new users start with and the
// fallback used whenever stored preferences cannot be recovered.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Logging: LoggingPreferences{
			DefaultFunction: DutyFunctionPIC,
			Fields: LoggingFields{
				Hobbs:     true,
				Tach:      true,
				XC:        true,
				GoArounds: true,
			},
		},
		Fleet: FleetPreferences{
			Grouping: FleetGroupingType,
		},
		Airports: AirportPreferences{
			Sorting:      AirportSortingICAO,
			DistanceUnit: DistanceUnitMeters,
		},
		NameDisplay: NameDisplayFirstLast,
	}
}

// PreferencesPatch is the partial shape of [UserPreferences].
//
// A nil pointer means the key was absent. The same type decodes stored rows
// that may be incomplete and the bodies of update requests. The validate tags
// describe a complete document: a patch that passes them converts to
// UserPreferences without consulting any defaults.
type PreferencesPatch struct {
	Logging     *LoggingPatch  `json:"logging,omitempty" validate:"required"`
	Fleet       *FleetPatch    `json:"fleet,omitempty" validate:"required"`
	Airports    *AirportsPatch `json:"airports,omitempty" validate:"required"`
	NameDisplay *NameDisplay   `json:"nameDisplay,omitempty" validate:"required,oneof=first-last last-first"`
}

type LoggingPatch struct {
	DefaultFunction *DutyFunction       `json:"defaultFunction,omitempty" validate:"required,oneof=PIC Co-Pilot Dual Instructor Solo SPIC PICUS"`
	Fields          *LoggingFieldsPatch `json:"fields,omitempty" validate:"required"`
}

type LoggingFieldsPatch struct {
	Hobbs      *bool `json:"hobbs,omitempty" validate:"required"`
	Tach       *bool `json:"tach,omitempty" validate:"required"`
	Duty       *bool `json:"duty,omitempty" validate:"required"`
	Scheduled  *bool `json:"scheduled,omitempty" validate:"required"`
	XC         *bool `json:"xc,omitempty" validate:"required"`
	Passengers *bool `json:"passengers,omitempty" validate:"required"`
	Fuel       *bool `json:"fuel,omitempty" validate:"required"`
	Approaches *bool `json:"approaches,omitempty" validate:"required"`
	Training   *bool `json:"training,omitempty" validate:"required"`
	GoArounds  *bool `json:"go_arounds,omitempty" validate:"required"`
}

type FleetPatch struct {
	Grouping *FleetGrouping `json:"grouping,omitempty" validate:"required,oneof=operator type icaoType"`
}

type AirportsPatch struct {
	Sorting      *AirportSorting `json:"sorting,omitempty" validate:"required,oneof=country icao iata favourites"`
	DistanceUnit *DistanceUnit   `json:"distanceUnit,omitempty" validate:"required,oneof=m ft"`
}

// IsEmpty reports whether the patch carries no section at all.
func (p PreferencesPatch) IsEmpty() bool {
	return p.Logging == nil && p.Fleet == nil && p.Airports == nil && p.NameDisplay == nil
}

// Merge returns a copy of p with every present value of patch applied.
// Nested records are merged field by field, scalars are replaced.
func (p UserPreferences) Merge(patch PreferencesPatch) UserPreferences {
	merged := p
	merged.Logging = p.Logging.merge(patch.Logging)
	merged.Fleet = p.Fleet.merge(patch.Fleet)
	merged.Airports = p.Airports.merge(patch.Airports)
	if patch.NameDisplay != nil {
		merged.NameDisplay = *patch.NameDisplay
	}
	return merged
}

func (l LoggingPreferences) merge(patch *LoggingPatch) LoggingPreferences {
	if patch == nil {
		return l
	}
	if patch.DefaultFunction != nil {
		l.DefaultFunction = *patch.DefaultFunction
	}
	l.Fields = l.Fields.merge(patch.Fields)
	return l
}

func (f LoggingFields) merge(patch *LoggingFieldsPatch) LoggingFields {
	if patch == nil {
		return f
	}
	setBool(&f.Hobbs, patch.Hobbs)
	setBool(&f.Tach, patch.Tach)
	setBool(&f.Duty, patch.Duty)
	setBool(&f.Scheduled, patch.Scheduled)
	setBool(&f.XC, patch.XC)
	setBool(&f.Passengers, patch.Passengers)
	setBool(&f.Fuel, patch.Fuel)
	setBool(&f.Approaches, patch.Approaches)
	setBool(&f.Training, patch.Training)
	setBool(&f.GoArounds, patch.GoArounds)
	return f
}

func (f FleetPreferences) merge(patch *FleetPatch) FleetPreferences {
	if patch != nil && patch.Grouping != nil {
		f.Grouping = *patch.Grouping
	}
	return f
}

func (a AirportPreferences) merge(patch *AirportsPatch) AirportPreferences {
	if patch == nil {
		return a
	}
	if patch.Sorting != nil {
		a.Sorting = *patch.Sorting
	}
	if patch.DistanceUnit != nil {
		a.DistanceUnit = *patch.DistanceUnit
	}
	return a
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Patch converts p into a patch with every key present. Applying it to any
// UserPreferences yields p.
func (p UserPreferences) Patch() PreferencesPatch {
	logging := p.Logging
	fleet := p.Fleet
	airports := p.Airports
	nameDisplay := p.NameDisplay
	fields := logging.Fields

	return PreferencesPatch{
		Logging: &LoggingPatch{
			DefaultFunction: &logging.DefaultFunction,
			Fields: &LoggingFieldsPatch{
				Hobbs:      &fields.Hobbs,
				Tach:       &fields.Tach,
				Duty:       &fields.Duty,
				Scheduled:  &fields.Scheduled,
				XC:         &fields.XC,
				Passengers: &fields.Passengers,
				Fuel:       &fields.Fuel,
				Approaches: &fields.Approaches,
				Training:   &fields.Training,
				GoArounds:  &fields.GoArounds,
			},
		},
		Fleet:       &FleetPatch{Grouping: &fleet.Grouping},
		Airports:    &AirportsPatch{Sorting: &airports.Sorting, DistanceUnit: &airports.DistanceUnit},
		NameDisplay: &nameDisplay,
	}
}

// PreferencesResult is the discriminated response of every preferences action.
type PreferencesResult struct {
	Success     bool             `json:"success"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// FavoriteStatus answers whether an airport is among the user's favourites.
type FavoriteStatus struct {
	ICAO      string `json:"icao"`
	Favorited bool   `json:"favorited"`
}
