package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowIndex(t *testing.T, label string) int {
	t.Helper()
	for i, row := range preferenceRows {
		if row.label == label {
			return i
		}
	}
	require.Failf(t, "row not found", "label %q", label)
	return -1
}

func TestCycle(t *testing.T) {
	assert.Equal(t, models.DistanceUnitFeet, cycle(distanceUnits, models.DistanceUnitMeters))
	assert.Equal(t, models.DistanceUnitMeters, cycle(distanceUnits, models.DistanceUnitFeet))
	assert.Equal(t, models.FleetGroupingOperator, cycle(fleetGroupings, models.FleetGrouping("bogus")))
}

func TestPreferenceRows_NextIsSingleKeyPatch(t *testing.T) {
	defaults := models.DefaultPreferences()

	for _, row := range preferenceRows {
		t.Run(row.label, func(t *testing.T) {
			patch := row.next(defaults)
			require.False(t, patch.IsEmpty())

			merged := defaults.Merge(patch)
			assert.NotEqual(t, row.value(defaults), row.value(merged))
			assert.NotEqual(t, defaults, merged)
		})
	}
}

func TestPreferencesModel_Toggle(t *testing.T) {
	provider := newStubProvider()
	m := newPreferencesModel(context.Background(), provider)
	m.idx = rowIndex(t, "Hobbs")
	require.True(t, m.prefs.Logging.Fields.Hobbs)

	m, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.saving)
	assert.False(t, m.prefs.Logging.Fields.Hobbs)

	// пока идёт сохранение, повторные изменения игнорируются
	_, again := m.Update(keyType(tea.KeySpace))
	assert.Nil(t, again)

	saved, ok := cmd().(preferencesSavedMsg)
	require.True(t, ok)
	require.Len(t, provider.patches, 1)
	require.NotNil(t, provider.patches[0].Logging)
	require.NotNil(t, provider.patches[0].Logging.Fields)
	assert.False(t, *provider.patches[0].Logging.Fields.Hobbs)
	assert.Nil(t, provider.patches[0].Logging.Fields.Tach)
	assert.Nil(t, provider.patches[0].Fleet)

	m, _ = m.Update(saved)
	assert.False(t, m.saving)
	assert.Equal(t, "Preferences saved", m.status)
	assert.False(t, m.prefs.Logging.Fields.Hobbs)
}

func TestPreferencesModel_ToggleRejected(t *testing.T) {
	provider := newStubProvider()
	provider.updateErr = service.ErrPreferencesNotSaved
	m := newPreferencesModel(context.Background(), provider)
	m.idx = rowIndex(t, "Distance unit")

	m, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, models.DistanceUnitFeet, m.prefs.Airports.DistanceUnit)

	m, _ = m.Update(cmd())

	assert.Equal(t, "Failed to save preferences", m.errMsg)
	assert.Equal(t, models.DistanceUnitMeters, m.prefs.Airports.DistanceUnit)
}

func TestPreferencesModel_LoadingBlocksChanges(t *testing.T) {
	provider := newStubProvider()
	provider.loading = true
	m := newPreferencesModel(context.Background(), provider)

	m, cmd := m.Update(keyType(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, "Preferences are still loading", m.errMsg)
	assert.Empty(t, provider.patches)
}

func TestPreferencesModel_Reset(t *testing.T) {
	provider := newStubProvider()
	provider.prefs.NameDisplay = models.NameDisplayLastFirst
	m := newPreferencesModel(context.Background(), provider)

	m, _ = m.Update(keyRunes("R"))
	require.True(t, m.capturesKeys())
	assert.Contains(t, m.View(), "Reset all preferences")

	m, cmd := m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirmReset)

	m, _ = m.Update(keyRunes("R"))
	m, cmd = m.Update(keyRunes("y"))
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())
	assert.Equal(t, 1, provider.resetCalls)
	assert.Equal(t, models.DefaultPreferences(), m.prefs)
	assert.Equal(t, "Preferences reset to defaults", m.status)
}

func TestPreferencesModel_Reload(t *testing.T) {
	provider := newStubProvider()
	m := newPreferencesModel(context.Background(), provider)

	m, cmd := m.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	provider.prefs.Fleet.Grouping = models.FleetGroupingOperator
	m, _ = m.Update(cmd())
	assert.False(t, m.saving)
	assert.Equal(t, models.FleetGroupingOperator, m.prefs.Fleet.Grouping)
}

func TestPreferencesModel_Subscription(t *testing.T) {
	provider := newStubProvider()
	m := newPreferencesModel(context.Background(), provider)

	changed := models.DefaultPreferences()
	changed.Airports.Sorting = models.AirportSortingIATA
	provider.updates <- changed

	msg := m.Init()()
	m, cmd := m.Update(msg)

	assert.Equal(t, models.AirportSortingIATA, m.prefs.Airports.Sorting)
	assert.NotNil(t, cmd)
}

func TestWaitForPreferences_Closed(t *testing.T) {
	updates := make(chan models.UserPreferences)
	close(updates)

	assert.Nil(t, waitForPreferences(updates)())
}

func TestPreferencesModel_View(t *testing.T) {
	provider := newStubProvider()
	provider.synced = false
	m := newPreferencesModel(context.Background(), provider)

	out := m.View()
	assert.Contains(t, out, "State: cached")
	assert.Contains(t, out, "Logging fields")
	assert.Contains(t, out, "Default function")
	assert.Contains(t, out, "PIC")
}
