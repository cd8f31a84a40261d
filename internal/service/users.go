package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/hash"
	"github.com/Antonio-Toppin/sweetmanage/internal/logging"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService struct {
	Repo *repo.GormRepo
}

// UserInput carries the registration/profile form. On profile updates an
// empty Password means "keep the current one".
type UserInput struct {
	FullName string
	Email    string
	Username string
	Password string
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func validateUser(in UserInput, passwordRequired bool) error {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Username) == "" {
		return fmt.Errorf("%w: all fields are required", apperr.ErrValidation)
	}
	if passwordRequired && strings.TrimSpace(in.Password) == "" {
		return fmt.Errorf("%w: all fields are required", apperr.ErrValidation)
	}
	if !emailRe.MatchString(strings.TrimSpace(in.Email)) {
		return fmt.Errorf("%w: please enter a valid email address", apperr.ErrValidation)
	}
	if in.Password != "" {
		if strings.Contains(in.Password, " ") {
			return fmt.Errorf("%w: password must not contain spaces", apperr.ErrValidation)
		}
		if len(in.Password) < 6 {
			return fmt.Errorf("%w: password must be at least 6 characters", apperr.ErrValidation)
		}
	}
	return nil
}

// Register creates a new user account. Passwords are stored as bcrypt hashes,
// never plaintext.
func (s *UserService) Register(ctx context.Context, in UserInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.register")

	if err := validateUser(in, true); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	taken, err := s.Repo.UsernameTaken(ctx, username, 0)
	if err != nil {
		l.Error("register_error", "error", err)
		return nil, storeErr(err)
	}
	if taken {
		return nil, fmt.Errorf("%w: username already exists", apperr.ErrDuplicateKey)
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}

	user := &models.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		Username:     username,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		l.Error("register_error", "error", err)
		return nil, storeErr(err)
	}
	l.Info("user_registered", "username", user.Username)
	return user, nil
}

// UpdateProfile edits an existing account. The password is re-hashed only
// when a new one is supplied.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, in UserInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.update_profile", "user_id", id)

	if err := validateUser(in, false); err != nil {
		return nil, err
	}

	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	username := strings.TrimSpace(in.Username)
	if username != user.Username {
		taken, err := s.Repo.UsernameTaken(ctx, username, id)
		if err != nil {
			l.Error("profile_update_error", "error", err)
			return nil, storeErr(err)
		}
		if taken {
			return nil, fmt.Errorf("%w: username already exists", apperr.ErrDuplicateKey)
		}
	}

	user.FullName = strings.TrimSpace(in.FullName)
	user.Email = strings.TrimSpace(in.Email)
	user.Username = username
	if in.Password != "" {
		pwHash, err := hash.HashPassword(in.Password)
		if err != nil {
			l.Error("profile_update_error", "reason", "cannot hash the password", "error", err)
			return nil, fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
		}
		user.PasswordHash = pwHash
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		l.Error("profile_update_error", "error", err)
		return nil, storeErr(err)
	}
	l.Info("profile_updated", "username", user.Username)
	return user, nil
}
