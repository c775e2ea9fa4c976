package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	dutyFunctions = []models.DutyFunction{
		models.DutyFunctionPIC,
		models.DutyFunctionCoPilot,
		models.DutyFunctionDual,
		models.DutyFunctionInstructor,
		models.DutyFunctionSolo,
		models.DutyFunctionSPIC,
		models.DutyFunctionPICUS,
	}
	fleetGroupings = []models.FleetGrouping{
		models.FleetGroupingOperator,
		models.FleetGroupingType,
		models.FleetGroupingICAOType,
	}
	airportSortings = []models.AirportSorting{
		models.AirportSortingCountry,
		models.AirportSortingICAO,
		models.AirportSortingIATA,
		models.AirportSortingFavourites,
	}
	distanceUnits = []models.DistanceUnit{models.DistanceUnitMeters, models.DistanceUnitFeet}
	nameDisplays  = []models.NameDisplay{models.NameDisplayFirstLast, models.NameDisplayLastFirst}
)

// preferenceRow is one editable line of the preferences screen. next builds
// the patch that moves the value to its next state.
type preferenceRow struct {
	section string
	label   string
	value   func(models.UserPreferences) string
	next    func(models.UserPreferences) models.PreferencesPatch
}

var preferenceRows = []preferenceRow{
	{
		section: "Logging",
		label:   "Default function",
		value:   func(p models.UserPreferences) string { return string(p.Logging.DefaultFunction) },
		next: func(p models.UserPreferences) models.PreferencesPatch {
			v := cycle(dutyFunctions, p.Logging.DefaultFunction)
			return models.PreferencesPatch{Logging: &models.LoggingPatch{DefaultFunction: &v}}
		},
	},
	loggingFieldRow("Hobbs", func(f *models.LoggingFields) *bool { return &f.Hobbs }, func(p *models.LoggingFieldsPatch, v *bool) { p.Hobbs = v }),
	loggingFieldRow("Tach", func(f *models.LoggingFields) *bool { return &f.Tach }, func(p *models.LoggingFieldsPatch, v *bool) { p.Tach = v }),
	loggingFieldRow("Duty", func(f *models.LoggingFields) *bool { return &f.Duty }, func(p *models.LoggingFieldsPatch, v *bool) { p.Duty = v }),
	loggingFieldRow("Scheduled", func(f *models.LoggingFields) *bool { return &f.Scheduled }, func(p *models.LoggingFieldsPatch, v *bool) { p.Scheduled = v }),
	loggingFieldRow("Cross-country", func(f *models.LoggingFields) *bool { return &f.XC }, func(p *models.LoggingFieldsPatch, v *bool) { p.XC = v }),
	loggingFieldRow("Passengers", func(f *models.LoggingFields) *bool { return &f.Passengers }, func(p *models.LoggingFieldsPatch, v *bool) { p.Passengers = v }),
	loggingFieldRow("Fuel", func(f *models.LoggingFields) *bool { return &f.Fuel }, func(p *models.LoggingFieldsPatch, v *bool) { p.Fuel = v }),
	loggingFieldRow("Approaches", func(f *models.LoggingFields) *bool { return &f.Approaches }, func(p *models.LoggingFieldsPatch, v *bool) { p.Approaches = v }),
	loggingFieldRow("Training", func(f *models.LoggingFields) *bool { return &f.Training }, func(p *models.LoggingFieldsPatch, v *bool) { p.Training = v }),
	loggingFieldRow("Go-arounds", func(f *models.LoggingFields) *bool { return &f.GoArounds }, func(p *models.LoggingFieldsPatch, v *bool) { p.GoArounds = v }),
	{
		section: "Fleet",
		label:   "Grouping",
		value:   func(p models.UserPreferences) string { return string(p.Fleet.Grouping) },
		next: func(p models.UserPreferences) models.PreferencesPatch {
			v := cycle(fleetGroupings, p.Fleet.Grouping)
			return models.PreferencesPatch{Fleet: &models.FleetPatch{Grouping: &v}}
		},
	},
	{
		section: "Airports",
		label:   "Sorting",
		value:   func(p models.UserPreferences) string { return string(p.Airports.Sorting) },
		next: func(p models.UserPreferences) models.PreferencesPatch {
			v := cycle(airportSortings, p.Airports.Sorting)
			return models.PreferencesPatch{Airports: &models.AirportsPatch{Sorting: &v}}
		},
	},
	{
		section: "Airports",
		label:   "Distance unit",
		value:   func(p models.UserPreferences) string { return string(p.Airports.DistanceUnit) },
		next: func(p models.UserPreferences) models.PreferencesPatch {
			v := cycle(distanceUnits, p.Airports.DistanceUnit)
			return models.PreferencesPatch{Airports: &models.AirportsPatch{DistanceUnit: &v}}
		},
	},
	{
		section: "Crew",
		label:   "Name display",
		value:   func(p models.UserPreferences) string { return string(p.NameDisplay) },
		next: func(p models.UserPreferences) models.PreferencesPatch {
			v := cycle(nameDisplays, p.NameDisplay)
			return models.PreferencesPatch{NameDisplay: &v}
		},
	},
}

func loggingFieldRow(
	label string,
	get func(*models.LoggingFields) *bool,
	set func(*models.LoggingFieldsPatch, *bool),
) preferenceRow {
	return preferenceRow{
		section: "Logging fields",
		label:   label,
		value: func(p models.UserPreferences) string {
			return onOff(*get(&p.Logging.Fields))
		},
		next: func(p models.UserPreferences) models.PreferencesPatch {
			v := !*get(&p.Logging.Fields)
			fields := &models.LoggingFieldsPatch{}
			set(fields, &v)
			return models.PreferencesPatch{Logging: &models.LoggingPatch{Fields: fields}}
		},
	}
}

// cycle returns the value after current, wrapping around. Unknown values
// restart at the first one.
func cycle[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// preferencesModel edits the preferences held by the provider. Changes made
// elsewhere, such as the periodic refresh, arrive through the subscription.
type preferencesModel struct {
	ctx      context.Context
	provider service.PreferencesProvider
	updates  <-chan models.UserPreferences

	prefs        models.UserPreferences
	idx          int
	saving       bool
	confirmReset bool

	status string
	errMsg string
}

func newPreferencesModel(ctx context.Context, provider service.PreferencesProvider) preferencesModel {
	return preferencesModel{
		ctx:      ctx,
		provider: provider,
		updates:  provider.Subscribe(),
		prefs:    provider.Preferences(),
	}
}

func (m preferencesModel) Init() tea.Cmd {
	return waitForPreferences(m.updates)
}

// capturesKeys reports whether the reset confirmation owns the keyboard.
func (m preferencesModel) capturesKeys() bool {
	return m.confirmReset
}

func (m preferencesModel) Update(msg tea.Msg) (preferencesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case preferencesChangedMsg:
		m.prefs = msg.prefs
		return m, waitForPreferences(m.updates)
	case preferencesSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.status = ""
			m.prefs = m.provider.Preferences()
			return m, nil
		}
		m.errMsg = ""
		m.prefs = msg.prefs
		m.status = "Preferences saved"
		if msg.reset {
			m.status = "Preferences reset to defaults"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.confirmReset {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m preferencesModel) updateKeys(msg tea.KeyMsg) (preferencesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(preferenceRows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle):
		if m.saving {
			return m, nil
		}
		if m.provider.Loading() {
			m.errMsg = humanizeError(service.ErrPreferencesLoading)
			return m, nil
		}
		patch := preferenceRows[m.idx].next(m.prefs)
		m.prefs = m.prefs.Merge(patch)
		m.saving = true
		m.errMsg = ""
		return m, m.cmdUpdate(patch)
	case key.Matches(msg, keys.reset):
		if m.saving {
			return m, nil
		}
		m.confirmReset = true
	case key.Matches(msg, keys.reload):
		m.saving = true
		return m, m.cmdRefresh()
	}

	return m, nil
}

func (m preferencesModel) updateConfirm(msg tea.KeyMsg) (preferencesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmReset = false
		m.saving = true
		m.errMsg = ""
		return m, m.cmdReset()
	case key.Matches(msg, keys.no):
		m.confirmReset = false
	}
	return m, nil
}

func (m preferencesModel) cmdUpdate(patch models.PreferencesPatch) tea.Cmd {
	ctx := m.ctx
	provider := m.provider

	return func() tea.Msg {
		prefs, err := provider.Update(ctx, patch)
		return preferencesSavedMsg{prefs: prefs, err: err}
	}
}

func (m preferencesModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	provider := m.provider

	return func() tea.Msg {
		prefs, err := provider.Reset(ctx)
		return preferencesSavedMsg{prefs: prefs, reset: true, err: err}
	}
}

func (m preferencesModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	provider := m.provider

	return func() tea.Msg {
		err := provider.Refresh(ctx)
		return preferencesSavedMsg{prefs: provider.Preferences(), err: err}
	}
}

// waitForPreferences blocks until the provider publishes a new value.
func waitForPreferences(updates <-chan models.UserPreferences) tea.Cmd {
	return func() tea.Msg {
		prefs, ok := <-updates
		if !ok {
			return nil
		}
		return preferencesChangedMsg{prefs: prefs}
	}
}

func (m preferencesModel) View() string {
	if m.confirmReset {
		return confirmModel{message: "Reset all preferences to defaults?"}.View()
	}

	var b strings.Builder

	state := "synced"
	switch {
	case m.provider.Loading():
		state = "loading"
	case m.saving:
		state = "saving"
	case !m.provider.Synced():
		state = "cached"
	}
	b.WriteString(fmt.Sprintf("State: %s │ last change: %s\n\n", state, m.provider.State()))

	section := ""
	for i, row := range preferenceRows {
		if row.section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = row.section
			b.WriteString(titleStyle.Render(section))
			b.WriteString("\n")
		}

		line := fmt.Sprintf("%-18s %s", row.label, row.value(m.prefs))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PREFERENCES", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter/space: change │ R: reset │ r: reload")
}
