// Package store owns the on-device sqlite database: one shared handle,
// opened on first use, with idempotent schema initialization.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/logging"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/retry"
)

type Config struct {
	// Path is the sqlite database file, or ":memory:".
	Path string
}

// Store is safe for use by a single caller at a time; the mutex only guards
// the open/close lifecycle, not statement execution.
type Store struct {
	mu          sync.Mutex
	cfg         Config
	db          *gorm.DB
	initialized bool
}

func New(cfg Config) *Store {
	if cfg.Path == "" {
		cfg.Path = "sweetmanage.db"
	}
	return &Store{cfg: cfg}
}

// DB returns the shared handle, opening the database and ensuring the schema
// on first use. On failure the initialized flag stays false so the next call
// retries from scratch.
func (s *Store) DB(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized && s.db != nil {
		return s.db.WithContext(ctx), nil
	}

	l := logging.FromContext(ctx).With("svc", "store")

	db, err := gorm.Open(sqlite.Open(s.cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		l.Error("store_open_failed", "path", s.cfg.Path, "error", err)
		return nil, fmt.Errorf("%w: open %s: %v", apperr.ErrStorageUnavailable, s.cfg.Path, err)
	}

	if err := ensureSchema(db); err != nil {
		l.Error("schema_init_failed", "error", err)
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("%w: schema init: %v", apperr.ErrStorageUnavailable, err)
	}

	s.db = db
	s.initialized = true
	l.Info("store_ready", "path", s.cfg.Path)
	return s.db.WithContext(ctx), nil
}

// ensureSchema applies the connection-level pragmas and creates any missing
// tables. Safe to run repeatedly.
func ensureSchema(db *gorm.DB) error {
	if err := db.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
		return err
	}
	// journal_mode reports the resulting mode as a row, so it cannot go
	// through Exec.
	var mode string
	if err := db.Raw("PRAGMA journal_mode = WAL;").Scan(&mode).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderLineItem{},
	)
}

// Query runs a read-only statement and returns the rows as ordered column maps.
func (s *Store) Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error) {
	db, err := s.DB(ctx)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Exec runs a single write statement and returns the number of affected rows.
func (s *Store) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	db, err := s.DB(ctx)
	if err != nil {
		return 0, err
	}
	res := db.Exec(sql, args...)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Transaction runs fn atomically: every statement commits together or none do.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db, err := s.DB(ctx)
	if err != nil {
		return err
	}
	return db.Transaction(fn)
}

// Ready reports whether the store is reachable, attempting initialization if
// it has not happened yet.
func (s *Store) Ready(ctx context.Context) bool {
	db, err := s.DB(ctx)
	if err != nil {
		return false
	}
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

// WaitReady retries initialization at the data-load boundary before the first
// screen renders. Three attempts, one second apart.
func (s *Store) WaitReady(ctx context.Context) error {
	return retry.Do(ctx, retry.DefaultConfig(), func() error {
		_, err := s.DB(ctx)
		return err
	})
}

// Close releases the connection and clears the initialized flag; the next
// access reopens and re-runs schema initialization.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		s.initialized = false
		return nil
	}
	sqlDB, err := s.db.DB()
	s.db = nil
	s.initialized = false
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
