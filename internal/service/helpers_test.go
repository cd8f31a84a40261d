package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
	"github.com/Antonio-Toppin/sweetmanage/internal/store"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	s := store.New(store.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	t.Cleanup(func() { _ = s.Close() })
	return repo.New(s)
}

func countRows(t *testing.T, r *repo.GormRepo, model any) int64 {
	t.Helper()
	db, err := r.Store.DB(context.Background())
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

// answer is a canned Confirmer for tests.
func answer(verdict bool) ConfirmerFunc {
	return func(ctx context.Context, title, message string) bool { return verdict }
}
