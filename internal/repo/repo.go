// Package repo is the data-access layer. Every method takes a context and
// goes through the store, which lazily opens the database and ensures the
// schema before the first statement runs.
package repo

import (
	"github.com/Antonio-Toppin/sweetmanage/internal/store"
)

type GormRepo struct {
	Store *store.Store
}

func New(s *store.Store) *GormRepo {
	return &GormRepo{Store: s}
}
