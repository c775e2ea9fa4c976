// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/adapter"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/google/uuid"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (uuid.UUID, error) {
	user, err := prepareCredentials(user)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err = a.adapter.Register(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.sessionUserID()
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (uuid.UUID, error) {
	user, err := prepareCredentials(user)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err = a.adapter.Login(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.sessionUserID()
}

func (a *clientAuthService) sessionUserID() (uuid.UUID, error) {
	userID, err := utils.ParseUserIDFromJWT(a.adapter.Token())
	if err != nil {
		return uuid.Nil, fmt.Errorf("error reading user id from token: %w", err)
	}
	return userID, nil
}

func prepareCredentials(user models.User) (models.User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" || strings.TrimSpace(user.Password) == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	return user, nil
}
