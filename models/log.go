package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogType is the discriminator attached to every entry of a merged log list.
type LogType string

const (
	LogTypeFlight    LogType = "flight"
	LogTypeSimulator LogType = "simulator"
)

// LogsSortBy is the direction a merged log list is ordered by date.
type LogsSortBy string

const (
	LogsSortDateDesc LogsSortBy = "date-desc"
	LogsSortDateAsc  LogsSortBy = "date-asc"
)

const (
	DefaultLogsPage     = 1
	DefaultLogsPageSize = 50
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("error parsing date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// StringList is a list of strings persisted as a JSON array.
type StringList []string

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// LogBase holds the columns flights and simulator sessions share.
type LogBase struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Date                Date      `json:"date"`
	AircraftID          uuid.UUID `json:"aircraft_id"`
	DutyStart           *string   `json:"duty_start"`
	DutyEnd             *string   `json:"duty_end"`
	DutyTimeMinutes     int       `json:"duty_time_minutes"`
	HobbsStart          *float64  `json:"hobbs_start"`
	HobbsEnd            *float64  `json:"hobbs_end"`
	Remarks             *string   `json:"remarks"`
	TrainingDescription *string   `json:"training_description"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Flight is a single logged flight.
type Flight struct {
	LogBase

	PicID                  *uuid.UUID `json:"pic_id"`
	DepartureAirportCode   string     `json:"departure_airport_code"`
	DepartureRunway        *string    `json:"departure_runway"`
	DestinationAirportCode string     `json:"destination_airport_code"`
	DestinationRunway      *string    `json:"destination_runway"`
	BlockStart             string     `json:"block_start"`
	BlockEnd               string     `json:"block_end"`
	FlightStart            *string    `json:"flight_start"`
	FlightEnd              *string    `json:"flight_end"`
	ScheduledStart         *string    `json:"scheduled_start"`
	ScheduledEnd           *string    `json:"scheduled_end"`
	TotalBlockMinutes      int        `json:"total_block_minutes"`
	TotalAirMinutes        int        `json:"total_air_minutes"`
	NightMinutes           int        `json:"night_minutes"`
	IFRMinutes             int        `json:"ifr_minutes"`
	XCMinutes              int        `json:"xc_minutes"`
	PICMinutes             int        `json:"pic_minutes"`
	DualMinutes            int        `json:"dual_minutes"`
	CopilotMinutes         int        `json:"copilot_minutes"`
	InstructorMinutes      int        `json:"instructor_minutes"`
	DayTakeoffs            int        `json:"day_takeoffs"`
	DayLandings            int        `json:"day_landings"`
	NightTakeoffs          int        `json:"night_takeoffs"`
	NightLandings          int        `json:"night_landings"`
	GoArounds              int        `json:"go_arounds"`
	Approaches             StringList `json:"approaches"`
	IsPIC                  bool       `json:"is_pic"`
	IsSolo                 bool       `json:"is_solo"`
	IsSPIC                 bool       `json:"is_spic"`
	IsPICUS                bool       `json:"is_picus"`
	PilotFlying            bool       `json:"pilot_flying"`
	TachStart              *float64   `json:"tach_start"`
	TachEnd                *float64   `json:"tach_end"`
	Fuel                   *float64   `json:"fuel"`
	Passengers             *int       `json:"passengers"`
	FlightNumber           *string    `json:"flight_number"`
}

// SimulatorSession is a single logged synthetic training session.
type SimulatorSession struct {
	LogBase

	InstructorID   *uuid.UUID `json:"instructor_id"`
	SessionMinutes int        `json:"session_minutes"`
}

// Log is one entry of a merged log list: exactly one of Flight or Simulator
// is set, as named by Type.
type Log struct {
	Type      LogType
	Flight    *Flight
	Simulator *SimulatorSession
}

// FlightLog tags f as a flight entry.
func FlightLog(f Flight) Log {
	return Log{Type: LogTypeFlight, Flight: &f}
}

// SimulatorLog tags s as a simulator entry.
func SimulatorLog(s SimulatorSession) Log {
	return Log{Type: LogTypeSimulator, Simulator: &s}
}

// Base returns the shared columns of the entry.
func (l Log) Base() LogBase {
	switch {
	case l.Flight != nil:
		return l.Flight.LogBase
	case l.Simulator != nil:
		return l.Simulator.LogBase
	default:
		return LogBase{}
	}
}

// MarshalJSON flattens the entry and adds the "_type" discriminator.
func (l Log) MarshalJSON() ([]byte, error) {
	switch l.Type {
	case LogTypeFlight:
		if l.Flight == nil {
			return nil, errors.New("flight log without flight")
		}
		return json.Marshal(struct {
			Type LogType `json:"_type"`
			*Flight
		}{l.Type, l.Flight})
	case LogTypeSimulator:
		if l.Simulator == nil {
			return nil, errors.New("simulator log without session")
		}
		return json.Marshal(struct {
			Type LogType `json:"_type"`
			*SimulatorSession
		}{l.Type, l.Simulator})
	default:
		return nil, fmt.Errorf("unknown log type %q", l.Type)
	}
}

// UnmarshalJSON reads "_type" first and decodes the matching shape.
func (l *Log) UnmarshalJSON(data []byte) error {
	var head struct {
		Type LogType `json:"_type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case LogTypeFlight:
		var f Flight
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*l = FlightLog(f)
	case LogTypeSimulator:
		var s SimulatorSession
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = SimulatorLog(s)
	default:
		return fmt.Errorf("unknown log type %q", head.Type)
	}
	return nil
}

// LogsQuery describes a page of the merged log list.
type LogsQuery struct {
	SearchQuery string     `json:"searchQuery"`
	Page        int        `json:"page" validate:"min=1"`
	PageSize    int        `json:"pageSize" validate:"min=1,max=500"`
	SortBy      LogsSortBy `json:"sortBy" validate:"oneof=date-desc date-asc"`
}

// WithDefaults fills zero values with the documented defaults.
func (q LogsQuery) WithDefaults() LogsQuery {
	if q.Page == 0 {
		q.Page = DefaultLogsPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultLogsPageSize
	}
	if q.SortBy == "" {
		q.SortBy = LogsSortDateDesc
	}
	return q
}

// LogsPage is a slice of the merged, sorted log list.
type LogsPage struct {
	Logs       []Log `json:"logs"`
	TotalCount int   `json:"totalCount"`
	HasMore    bool  `json:"hasMore"`
}

// LogsResult is the response of the logs action. Error is set instead of
// failing the request so that callers can always render a list.
type LogsResult struct {
	LogsPage
	Error string `json:"error,omitempty"`
}

// AirportVisits counts the user's movements at one airport.
type AirportVisits struct {
	Departures int `json:"departures"`
	Arrivals   int `json:"arrivals"`
	Total      int `json:"total"`
}
