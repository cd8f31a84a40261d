// Package service holds the business rules: validation policy, uniqueness
// checks, identity generation, the order draft workflow, and the session.
// Callers get errors from the apperr taxonomy, never raw store errors.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
)

// Confirmer is the confirmation-dialog capability the UI supplies. It is
// asked before destructive actions; a false answer aborts with ErrCancelled
// and no state change.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}

type ConfirmerFunc func(ctx context.Context, title, message string) bool

func (f ConfirmerFunc) Confirm(ctx context.Context, title, message string) bool {
	return f(ctx, title, message)
}

func confirmed(ctx context.Context, c Confirmer, title, message string) bool {
	if c == nil {
		return true
	}
	return c.Confirm(ctx, title, message)
}

// storeErr maps a data-access error into the taxonomy. Anything that is not
// already classified surfaces as a storage failure; the cause is kept in the
// message for logging, never shown raw to the user.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrStorageUnavailable),
		errors.Is(err, apperr.ErrDuplicateKey),
		errors.Is(err, apperr.ErrNotFound):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	default:
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
}

// roundCents keeps stored money at two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
