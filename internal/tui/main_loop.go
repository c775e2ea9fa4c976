package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type mainTab int

const (
	tabLogs mainTab = iota
	tabPreferences
)

var tabTitles = []string{"Logbook", "Preferences"}

// mainLoopModel hosts the signed-in screens and switches between them with
// tab.
type mainLoopModel struct {
	userID uuid.UUID
	tab    mainTab

	logs  logsListModel
	prefs preferencesModel

	overlay *errorOverlayModel
	logout  bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, userID uuid.UUID, clipboard func(string) error) mainLoopModel {
	effectiveUserID := userID
	if effectiveUserID == uuid.Nil {
		effectiveUserID = getSessionUserID()
	}

	return mainLoopModel{
		userID: effectiveUserID,
		logs:   newLogsListModel(ctx, services.LogService, clipboard),
		prefs:  newPreferencesModel(ctx, services.PreferencesProvider),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.logs.Init(), m.prefs.Init())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case logsLoadedMsg:
		m.logs, cmd = m.logs.Update(msg)
		if m.logs.sessionExpired {
			m.overlay = &errorOverlayModel{message: m.logs.errMsg + "\nPress o to sign in again."}
		}
		return m, cmd
	case routeCopiedMsg, spinner.TickMsg:
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	case preferencesChangedMsg, preferencesSavedMsg:
		m.prefs, cmd = m.prefs.Update(msg)
		return m, cmd
	case clearStatusMsg:
		var prefsCmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		m.prefs, prefsCmd = m.prefs.Update(msg)
		return m, tea.Batch(cmd, prefsCmd)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.overlay = nil
		case key.Matches(keyMsg, keys.logout):
			return m.signOut()
		}
		return m, nil
	}

	if !m.activeCapturesKeys() {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.logout):
			return m.signOut()
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.tab = (m.tab + 1) % mainTab(len(tabTitles))
			return m, nil
		}
	}

	switch m.tab {
	case tabPreferences:
		m.prefs, cmd = m.prefs.Update(keyMsg)
	default:
		m.logs, cmd = m.logs.Update(keyMsg)
	}
	return m, cmd
}

func (m mainLoopModel) signOut() (tea.Model, tea.Cmd) {
	clearSessionUserID()
	m.logout = true
	return m, tea.Quit
}

func (m mainLoopModel) activeCapturesKeys() bool {
	if m.tab == tabPreferences {
		return m.prefs.capturesKeys()
	}
	return m.logs.capturesKeys()
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	var b strings.Builder
	for i, title := range tabTitles {
		if i > 0 {
			b.WriteString("  ")
		}
		if mainTab(i) == m.tab {
			b.WriteString(titleStyle.Render("[" + title + "]"))
		} else {
			b.WriteString(tabStyle.Render(" " + title + " "))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch │ o: sign out │ q: quit"))
	b.WriteString("\n\n")

	switch m.tab {
	case tabPreferences:
		b.WriteString(m.prefs.View())
	default:
		b.WriteString(m.logs.View())
	}

	return appStyle.Render(b.String())
}
