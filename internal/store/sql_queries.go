package store

import (
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (email, password_hash, first_name, last_name)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, first_name, last_name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, first_name, last_name, created_at
    FROM users
    WHERE email = $1;`
)

const (
	tableUserPreferences  = "user_preferences"
	tableFlights          = "flights"
	tableSimulatorSession = "simulator_sessions"
	tableFleet            = "fleet"
	tableCrew             = "crew"
)

// psql renders every builder with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	logBaseColumns = []string{
		"id",
		"user_id",
		"date",
		"aircraft_id",
		"duty_start::text",
		"duty_end::text",
		"duty_time_minutes",
		"hobbs_start",
		"hobbs_end",
		"remarks",
		"training_description",
		"created_at",
		"updated_at",
	}

	flightColumns = append(append([]string{}, logBaseColumns...),
		"pic_id",
		"departure_airport_code",
		"departure_runway",
		"destination_airport_code",
		"destination_runway",
		"block_start::text",
		"block_end::text",
		"flight_start::text",
		"flight_end::text",
		"scheduled_start::text",
		"scheduled_end::text",
		"total_block_minutes",
		"total_air_minutes",
		"night_minutes",
		"ifr_minutes",
		"xc_minutes",
		"pic_minutes",
		"dual_minutes",
		"copilot_minutes",
		"instructor_minutes",
		"day_takeoffs",
		"day_landings",
		"night_takeoffs",
		"night_landings",
		"go_arounds",
		"approaches",
		"is_pic",
		"is_solo",
		"is_spic",
		"is_picus",
		"pilot_flying",
		"tach_start",
		"tach_end",
		"fuel",
		"passengers",
		"flight_number",
	)

	simulatorColumns = append(append([]string{}, logBaseColumns...),
		"instructor_id",
		"session_minutes",
	)

	fleetColumns = []string{
		"id",
		"user_id",
		"registration",
		"is_simulator",
		"type",
		"model",
		"manufacturer",
		"category",
		"engine_count",
		"engine_type",
		"passenger_seats",
		"operator",
		"status",
		"note",
		"created_at",
		"updated_at",
	}

	crewColumns = []string{
		"id",
		"user_id",
		"first_name",
		"last_name",
		"email",
		"phone",
		"address",
		"license_number",
		"company",
		"company_id",
		"note",
		"created_at",
		"updated_at",
	}
)

// Searchable columns per table.
var (
	flightSearchColumns    = []string{"departure_airport_code", "destination_airport_code", "flight_number", "remarks", "training_description"}
	simulatorSearchColumns = []string{"remarks", "training_description"}
	fleetSearchColumns     = []string{"registration", "type", "model", "category", "manufacturer", "operator"}
	crewSearchColumns      = []string{"first_name", "last_name", "email", "company"}
)

// searchCondition builds an OR chain of case-insensitive substring matches.
// It returns nil for a blank search.
func searchCondition(search string, columns []string) sq.Sqlizer {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return nil
	}

	pattern := "%" + search + "%"
	or := make(sq.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, sq.ILike{column: pattern})
	}
	return or
}

func scopedWhere(userID uuid.UUID, search string, columns []string) sq.And {
	where := sq.And{sq.Eq{"user_id": userID}}
	if cond := searchCondition(search, columns); cond != nil {
		where = append(where, cond)
	}
	return where
}

// --- preferences ---

func buildSelectPreferencesQuery(userID uuid.UUID) (string, []any, error) {
	return psql.Select("preferences").
		From(tableUserPreferences).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertPreferencesQuery(userID uuid.UUID, payload []byte) (string, []any, error) {
	return psql.Insert(tableUserPreferences).
		Columns("user_id", "preferences").
		Values(userID, payload).
		ToSql()
}

func buildUpdatePreferencesQuery(userID uuid.UUID, payload []byte) (string, []any, error) {
	return psql.Update(tableUserPreferences).
		Set("preferences", payload).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertPreferencesQuery(userID uuid.UUID, payload []byte) (string, []any, error) {
	return psql.Insert(tableUserPreferences).
		Columns("user_id", "preferences").
		Values(userID, payload).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET preferences = EXCLUDED.preferences, updated_at = NOW()").
		ToSql()
}

func buildSelectFavoriteAirportsQuery(userID uuid.UUID) (string, []any, error) {
	return psql.Select("favorite_airports").
		From(tableUserPreferences).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpsertFavoriteAirportsQuery creates the row when missing. The
// preferences column then keeps its empty default and is recovered on the
// next read.
func buildUpsertFavoriteAirportsQuery(userID uuid.UUID, favorites models.StringList) (string, []any, error) {
	return psql.Insert(tableUserPreferences).
		Columns("user_id", "favorite_airports").
		Values(userID, favorites).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET favorite_airports = EXCLUDED.favorite_airports, updated_at = NOW()").
		ToSql()
}

// --- logs ---

func buildSelectFlightsQuery(userID uuid.UUID, search string) (string, []any, error) {
	return psql.Select(flightColumns...).
		From(tableFlights).
		Where(scopedWhere(userID, search, flightSearchColumns)).
		OrderBy("date DESC", "block_start DESC").
		ToSql()
}

func buildSelectSimulatorSessionsQuery(userID uuid.UUID, search string) (string, []any, error) {
	return psql.Select(simulatorColumns...).
		From(tableSimulatorSession).
		Where(scopedWhere(userID, search, simulatorSearchColumns)).
		OrderBy("date DESC").
		ToSql()
}

func buildCountMovementsQuery(userID uuid.UUID, column, icao string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(tableFlights).
		Where(sq.Eq{"user_id": userID, column: strings.ToUpper(icao)}).
		ToSql()
}

// --- fleet ---

func buildSelectFleetQuery(userID uuid.UUID, query models.ListQuery) (string, []any, error) {
	offset, limit := query.Range()
	return psql.Select(fleetColumns...).
		From(tableFleet).
		Where(scopedWhere(userID, query.SearchQuery, fleetSearchColumns)).
		OrderBy("registration ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
}

func buildCountFleetQuery(userID uuid.UUID, search string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(tableFleet).
		Where(scopedWhere(userID, search, fleetSearchColumns)).
		ToSql()
}

func buildSelectAssetsByIDsQuery(userID uuid.UUID, ids []uuid.UUID) (string, []any, error) {
	return psql.Select(fleetColumns...).
		From(tableFleet).
		Where(sq.Eq{"user_id": userID, "id": ids}).
		OrderBy("registration ASC").
		ToSql()
}

// --- crew ---

func crewOrder(order models.NameDisplay) []string {
	if order == models.NameDisplayLastFirst {
		return []string{"last_name ASC", "first_name ASC"}
	}
	return []string{"first_name ASC", "last_name ASC"}
}

func buildSelectCrewQuery(userID uuid.UUID, query models.ListQuery, order models.NameDisplay) (string, []any, error) {
	offset, limit := query.Range()
	return psql.Select(crewColumns...).
		From(tableCrew).
		Where(scopedWhere(userID, query.SearchQuery, crewSearchColumns)).
		OrderBy(crewOrder(order)...).
		Offset(offset).
		Limit(limit).
		ToSql()
}

func buildCountCrewQuery(userID uuid.UUID, search string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(tableCrew).
		Where(scopedWhere(userID, search, crewSearchColumns)).
		ToSql()
}

func buildSelectCrewMemberQuery(userID, id uuid.UUID) (string, []any, error) {
	return psql.Select(crewColumns...).
		From(tableCrew).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func buildSelectAssetQuery(userID, id uuid.UUID) (string, []any, error) {
	return psql.Select(fleetColumns...).
		From(tableFleet).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}
