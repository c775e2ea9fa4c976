package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/adapter"
	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/mock"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthSvc: хелпер для создания clientAuthService с моками
func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientAuthService(mockAdapter).(*clientAuthService), mockAdapter
}

func signedToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("test", userID, time.Hour, "secret")
	require.NoError(t, err)
	return token.SignedString
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()
	userID := uuid.New()

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice@example.com", u.Email, "email должен быть нормализован")
				return u, nil
			},
		),
		mockAdapter.EXPECT().Token().Return(signedToken(t, userID)),
	)

	got, err := svc.Register(ctx, models.User{Email: "  Alice@Example.com ", Password: "password-1"})
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestClientAuthService_Register_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestClientAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.User{Email: "alice@example.com", Password: "   "})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Register_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, fmt.Errorf("register request: %w", &adapter.ResponseError{
		StatusCode: 409,
		Message:    app.MsgLoginAlreadyExists,
		Kind:       adapter.ErrConflict,
	}))

	_, err := svc.Register(context.Background(), models.User{Email: "alice@example.com", Password: "password-1"})
	require.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	userID := uuid.New()

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{Email: "alice@example.com"}, nil)
	mockAdapter.EXPECT().Token().Return(signedToken(t, userID))

	got, err := svc.Login(context.Background(), models.User{Email: "alice@example.com", Password: "password-1"})
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, &adapter.ResponseError{
		StatusCode: 401,
		Message:    app.MsgInvalidLoginPassword,
		Kind:       adapter.ErrUnauthorized,
	})

	_, err := svc.Login(context.Background(), models.User{Email: "alice@example.com", Password: "password-1"})
	require.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)
	transportErr := errors.New("connection refused")

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, transportErr)

	_, err := svc.Login(context.Background(), models.User{Email: "alice@example.com", Password: "password-1"})
	require.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, transportErr)
}

func TestClientAuthService_Login_UnreadableToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestClientAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, nil)
	mockAdapter.EXPECT().Token().Return("not-a-jwt")

	_, err := svc.Login(context.Background(), models.User{Email: "alice@example.com", Password: "password-1"})
	require.Error(t, err)
}
