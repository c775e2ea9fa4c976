package tui

import (
	"context"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// TUI runs the terminal screens of the client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the menu with the sign in and registration forms and
// returns the ID of the signed-in user.
func (t *TUI) LoginFlow(ctx context.Context) (uuid.UUID, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return uuid.Nil, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return uuid.Nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return uuid.Nil, ErrUserQuit
	}

	t.logger.Info().Str("func", "*TUI.LoginFlow").Str("user_id", result.resultID.String()).Msg("user signed in")
	return result.resultID, nil
}

// MainLoop runs the signed-in screens until the user quits or signs out.
func (t *TUI) MainLoop(ctx context.Context, userID uuid.UUID) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, userID, clipboard.WriteAll)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
