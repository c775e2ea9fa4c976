package tui

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var sessionUserID atomic.Value

func setSessionUserID(userID uuid.UUID) {
	sessionUserID.Store(userID)
}

func getSessionUserID() uuid.UUID {
	v, ok := sessionUserID.Load().(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return v
}

func clearSessionUserID() {
	sessionUserID.Store(uuid.Nil)
}
