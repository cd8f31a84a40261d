package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/hash"
	"github.com/Antonio-Toppin/sweetmanage/internal/logging"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
)

// SessionService tracks the single authenticated user. "Logged in" is a
// persisted boolean flag on the user row, not a token.
type SessionService struct {
	Repo *repo.GormRepo
}

// Login verifies the credentials and flags the matched user as the session
// user, clearing every other flag in the same transaction. Unknown username
// and wrong password both come back as the same generic ErrAuthFailed.
func (s *SessionService) Login(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "session.login", "username", username)

	if username == "" || password == "" {
		return nil, apperr.ErrAuthFailed
	}

	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "unknown username")
			return nil, apperr.ErrAuthFailed
		}
		l.Error("login_error", "error", err)
		return nil, storeErr(err)
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password")
		return nil, apperr.ErrAuthFailed
	}

	if err := s.Repo.SetSessionUser(ctx, user.ID); err != nil {
		l.Error("login_error", "error", err)
		return nil, storeErr(err)
	}
	user.IsLoggedIn = true
	l.Info("login_success", "user_id", user.ID)
	return user, nil
}

// Current returns the user flagged as logged in, or ErrNotFound when no
// session exists.
func (s *SessionService) Current(ctx context.Context) (*models.User, error) {
	user, err := s.Repo.SessionUser(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

// Logout clears every session flag and closes the store, forcing a full
// re-open and re-initialization on the next access.
func (s *SessionService) Logout(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "session.logout")

	if err := s.Repo.ClearSessions(ctx); err != nil {
		l.Error("logout_error", "error", err)
		return storeErr(err)
	}
	if err := s.Repo.Store.Close(); err != nil {
		l.Error("logout_error", "reason", "cannot close store", "error", err)
		return storeErr(err)
	}
	l.Info("logout_success")
	return nil
}
