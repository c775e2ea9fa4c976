package tui

import (
	"github.com/MKhiriev/go-pilot-logbook/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo asks [RootModel] to switch the active page. When Payload is set
// it is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form once the server has answered.
type LoginResult struct {
	Err    error
	Email  string
	UserID uuid.UUID
}

// RegisterResult is produced by the registration form once the server has
// answered. A successful registration leaves the session signed in.
type RegisterResult struct {
	Err    error
	Email  string
	UserID uuid.UUID
}

type logsLoadedMsg struct {
	query models.LogsQuery
	page  models.LogsPage
	err   error
}

type routeCopiedMsg struct {
	route string
	err   error
}

type preferencesChangedMsg struct {
	prefs models.UserPreferences
}

type preferencesSavedMsg struct {
	prefs models.UserPreferences
	reset bool
	err   error
}

type clearStatusMsg struct{}
