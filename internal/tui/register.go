package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const minPasswordLength = 8

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders the name, email and password inputs and dispatches an async
// registration command on form submission. A successful registration signs
// the user in, so [RootModel] finishes the flow on the [RegisterResult].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       formInputs
	submitting bool
	errMsg     string
}

const (
	registerFirstName = iota
	registerLastName
	registerEmail
	registerPassword
	registerRepeat
)

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newFormInputs(
			formField{label: "First name", placeholder: "first name", charLimit: 100},
			formField{label: "Last name", placeholder: "last name", charLimit: 100},
			formField{label: "Email", placeholder: "pilot@example.com", charLimit: 254},
			formField{label: "Password", placeholder: "password", charLimit: 72, secret: true},
			formField{label: "Repeat password", placeholder: "repeat password", charLimit: 72, secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Email and both password fields are required,
// the passwords must match and be at least eight characters long.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			user := models.User{
				FirstName: m.form.trimmed(registerFirstName),
				LastName:  m.form.trimmed(registerLastName),
				Email:     m.form.trimmed(registerEmail),
				Password:  m.form.value(registerPassword),
			}
			repeat := m.form.value(registerRepeat)

			switch {
			case user.Email == "" || user.Password == "" || repeat == "":
				m.errMsg = "Email and password are required"
				return m, nil
			case user.Password != repeat:
				m.errMsg = "Passwords do not match"
				return m, nil
			case len(user.Password) < minPasswordLength:
				m.errMsg = "Password must be at least 8 characters"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(user)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		userID, err := auth.Register(ctx, user)
		return RegisterResult{
			Err:    err,
			Email:  user.Email,
			UserID: userID,
		}
	}
}
