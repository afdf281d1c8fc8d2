// internal/services/session_service.go
package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fakestore/storefront-backend/internal/models"
	"github.com/fakestore/storefront-backend/internal/storage"
)

// SessionService is the session port. At most one session exists; it is
// written either to the durable store ("remember me") or to the
// context-scoped store, with the durability choice made explicitly at login.
// A stored session is trusted until logout; there is no expiry check.
type SessionService struct {
	durable storage.Store
	scoped  storage.Store
}

func NewSessionService(durable, scoped storage.Store) *SessionService {
	return &SessionService{durable: durable, scoped: scoped}
}

// Save establishes the session for user. Both locations are cleared first so
// a durability change never leaves a stale record behind.
func (s *SessionService) Save(ctx context.Context, user models.SessionUser, rememberMe bool) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}

	session := models.Session{
		User:       user,
		Timestamp:  time.Now().UnixMilli(),
		RememberMe: rememberMe,
	}

	store := s.scoped
	if rememberMe {
		store = s.durable
	}
	return storage.PutJSON(ctx, store, storage.KeySession, session)
}

// Current reads the durable location first and falls back to the
// context-scoped one. Absence or an unreadable record both mean "no session".
func (s *SessionService) Current(ctx context.Context) (*models.Session, bool) {
	for _, store := range []storage.Store{s.durable, s.scoped} {
		var session models.Session
		ok, err := storage.GetJSON(ctx, store, storage.KeySession, &session)
		if err != nil {
			logrus.WithError(err).Warn("Failed to read session record, treating as none")
			continue
		}
		if ok {
			return &session, true
		}
	}
	return nil, false
}

// Clear removes the session from both locations. Idempotent.
func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.durable.Delete(ctx, storage.KeySession); err != nil {
		return err
	}
	return s.scoped.Delete(ctx, storage.KeySession)
}
