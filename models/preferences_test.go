package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPreferences_Merge(t *testing.T) {
	base := DefaultPreferences()

	fuel := true
	hobbs := false
	sorting := AirportSortingFavourites
	display := NameDisplayLastFirst

	merged := base.Merge(PreferencesPatch{
		Logging: &LoggingPatch{
			Fields: &LoggingFieldsPatch{Fuel: &fuel, Hobbs: &hobbs},
		},
		Airports:    &AirportsPatch{Sorting: &sorting},
		NameDisplay: &display,
	})

	want := base
	want.Logging.Fields.Fuel = true
	want.Logging.Fields.Hobbs = false
	want.Airports.Sorting = AirportSortingFavourites
	want.NameDisplay = NameDisplayLastFirst

	assert.Equal(t, want, merged)
	assert.Equal(t, DefaultPreferences(), base, "receiver must not change")
}

func TestUserPreferences_MergeEmptyPatch(t *testing.T) {
	base := DefaultPreferences()
	assert.Equal(t, base, base.Merge(PreferencesPatch{}))
	assert.True(t, PreferencesPatch{}.IsEmpty())
}

func TestUserPreferences_Patch(t *testing.T) {
	want := DefaultPreferences()
	want.Fleet.Grouping = FleetGroupingOperator
	want.Logging.DefaultFunction = DutyFunctionInstructor
	want.Logging.Fields.Training = true

	patch := want.Patch()
	assert.False(t, patch.IsEmpty())

	var other UserPreferences
	assert.Equal(t, want, other.Merge(patch))
}

func TestPreferencesPatch_JSONOmitsAbsentKeys(t *testing.T) {
	var patch PreferencesPatch
	require.NoError(t, json.Unmarshal([]byte(`{"fleet":{"grouping":"icaoType"}}`), &patch))

	require.NotNil(t, patch.Fleet)
	assert.Equal(t, FleetGroupingICAOType, *patch.Fleet.Grouping)
	assert.Nil(t, patch.Logging)
	assert.Nil(t, patch.Airports)
	assert.Nil(t, patch.NameDisplay)

	raw, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fleet":{"grouping":"icaoType"}}`, string(raw))
}

func TestDefaultPreferences_JSON(t *testing.T) {
	raw, err := json.Marshal(DefaultPreferences())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"logging": {
			"defaultFunction": "PIC",
			"fields": {
				"hobbs": true, "tach": true, "duty": false, "scheduled": false, "xc": true,
				"passengers": false, "fuel": false, "approaches": false, "training": false, "go_arounds": true
			}
		},
		"fleet": {"grouping": "type"},
		"airports": {"sorting": "icao", "distanceUnit": "m"},
		"nameDisplay": "first-last"
	}`, string(raw))
}
