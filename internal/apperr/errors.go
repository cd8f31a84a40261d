// Package apperr defines the error taxonomy the services speak. Callers
// branch with errors.Is; messages wrapped around a sentinel are safe to show
// to the user.
package apperr

import "errors"

var (
	ErrValidation            = errors.New("validation")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrIDGenerationExhausted = errors.New("id generation exhausted")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrEmptyOrder            = errors.New("empty order")
	ErrAuthFailed            = errors.New("invalid username or password")
	ErrNotFound              = errors.New("not found")
	ErrCancelled             = errors.New("cancelled")
)
