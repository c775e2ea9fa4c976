package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/app"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/internal/utils"
	"github.com/google/uuid"
)

// auth rejects requests without a valid bearer token with 401 and stores the
// principal of valid ones in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, err := h.authenticate(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("request rejected")
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				writeError(w, http.StatusUnauthorized, app.MsgTokenIsExpired)
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				writeError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
			default:
				writeError(w, http.StatusUnauthorized, app.MsgAuthenticationRequired)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// softAuth never rejects. A request with a valid token carries the principal
// in its context, any other request is passed on without one and the handler
// decides how to answer.
func (h *Handler) softAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.authenticate(r)
		if err != nil {
			if !errors.Is(err, ErrEmptyAuthorizationHeader) {
				logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.softAuth").Msg("ignoring invalid credentials")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

func (h *Handler) authenticate(r *http.Request) (uuid.UUID, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, ErrEmptyAuthorizationHeader
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return uuid.Nil, err
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return token.UserID, nil
}

// getTokenFromAuthHeader extracts the token of "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimSpace(tokenString), nil
}
