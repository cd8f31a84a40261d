package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
)

func flaggedUsers(t *testing.T, r *repo.GormRepo) []string {
	t.Helper()
	db, err := r.Store.DB(context.Background())
	require.NoError(t, err)
	var names []string
	require.NoError(t, db.Model(&models.User{}).
		Where("is_logged_in = ?", true).Pluck("username", &names).Error)
	return names
}

func TestLoginSetsSingleSessionFlag(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	users := &UserService{Repo: r}
	session := &SessionService{Repo: r}

	registerJane(t, users)
	_, err := users.Register(ctx, UserInput{
		FullName: "John Doe", Email: "john@example.com", Username: "john", Password: "secret2",
	})
	require.NoError(t, err)

	user, err := session.Login(ctx, "jane", "secret1")
	require.NoError(t, err)
	require.True(t, user.IsLoggedIn)
	require.Equal(t, []string{"jane"}, flaggedUsers(t, r))

	// logging in as someone else moves the flag
	_, err = session.Login(ctx, "john", "secret2")
	require.NoError(t, err)
	require.Equal(t, []string{"john"}, flaggedUsers(t, r))

	current, err := session.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "john", current.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	users := &UserService{Repo: r}
	session := &SessionService{Repo: r}
	registerJane(t, users)

	_, err := session.Login(ctx, "jane", "wrong")
	require.ErrorIs(t, err, apperr.ErrAuthFailed)

	_, err = session.Login(ctx, "nobody", "secret1")
	require.ErrorIs(t, err, apperr.ErrAuthFailed, "unknown user and wrong password are indistinguishable")

	require.Empty(t, flaggedUsers(t, r), "failed login must not mutate any row")
}

func TestLogoutClearsFlagsAndClosesStore(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	users := &UserService{Repo: r}
	session := &SessionService{Repo: r}
	registerJane(t, users)

	_, err := session.Login(ctx, "jane", "secret1")
	require.NoError(t, err)

	require.NoError(t, session.Logout(ctx))

	// the store reopens lazily on the next access
	require.Empty(t, flaggedUsers(t, r))
	_, err = session.Current(ctx)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
