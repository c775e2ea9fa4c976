// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/store"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/MKhiriev/go-pilot-logbook/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			writeError(w, http.StatusConflict, app.MsgLoginAlreadyExists)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusInternalServerError, app.MsgRegistrationFailed)
		}
		return
	}

	h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			writeError(w, http.StatusUnauthorized, app.MsgInvalidLoginPassword)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusInternalServerError, app.MsgLoginFailed)
		}
		return
	}

	log.Debug().Str("id", foundUser.UserID.String()).Msg("user successfully logged in")
	h.issueToken(w, r, foundUser)
}

// issueToken answers with the user and its bearer token in the Authorization
// header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, app.MsgInternalServerError)
		return
	}

	user.Password = ""
	user.PasswordHash = ""

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user, http.StatusOK)
}
