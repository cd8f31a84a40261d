// Package sweetmanage assembles the order-management core for the UI layer:
// one store, the entity services, the order composer, and the session.
package sweetmanage

import (
	"context"
	"log/slog"

	"github.com/Antonio-Toppin/sweetmanage/internal/config"
	"github.com/Antonio-Toppin/sweetmanage/internal/logging"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
	"github.com/Antonio-Toppin/sweetmanage/internal/service"
	"github.com/Antonio-Toppin/sweetmanage/internal/store"
)

type Confirmer = service.Confirmer

type ConfirmerFunc = service.ConfirmerFunc

type App struct {
	Store     *store.Store
	Users     *service.UserService
	Products  *service.ProductService
	Customers *service.CustomerService
	Orders    *service.OrderComposer
	Session   *service.SessionService
	Log       *slog.Logger
}

// New builds an App from .env / environment configuration. confirm is the
// UI's confirmation-dialog capability; pass nil to auto-approve (headless use).
func New(confirm Confirmer) *App {
	cfg := config.Load()
	return NewWithConfig(cfg.DBPath, cfg.LogLevel, confirm)
}

// NewWithConfig builds an App against an explicit database path, bypassing
// the environment.
func NewWithConfig(dbPath, logLevel string, confirm Confirmer) *App {
	st := store.New(store.Config{Path: dbPath})
	r := repo.New(st)
	return &App{
		Store:     st,
		Users:     &service.UserService{Repo: r},
		Products:  &service.ProductService{Repo: r, Confirm: confirm},
		Customers: &service.CustomerService{Repo: r, Confirm: confirm},
		Orders:    &service.OrderComposer{Repo: r, Confirm: confirm},
		Session:   &service.SessionService{Repo: r},
		Log:       logging.New(logLevel),
	}
}

// Context attaches the app's logger so service calls log through it.
func (a *App) Context(ctx context.Context) context.Context {
	return logging.IntoContext(ctx, a.Log)
}

// WaitReady blocks until the store is reachable, retrying initialization the
// way screen loads do.
func (a *App) WaitReady(ctx context.Context) error {
	return a.Store.WaitReady(ctx)
}

// Ready reports whether the store is reachable right now.
func (a *App) Ready(ctx context.Context) bool {
	return a.Store.Ready(ctx)
}

// Close releases the store; the next access reopens it.
func (a *App) Close() error {
	return a.Store.Close()
}
