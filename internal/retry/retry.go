// Package retry provides a small bounded-retry helper for transient failures,
// mainly store initialization during screen loads.
package retry

import (
	"context"
	"time"
)

type Config struct {
	MaxAttempts   int
	Delay         time.Duration
	BackoffFactor float64
}

// DefaultConfig matches the app's store-initialization policy: three attempts
// with a fixed one-second pause between them.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   3,
		Delay:         time.Second,
		BackoffFactor: 1.0,
	}
}

// Do runs fn until it succeeds, attempts are exhausted, or ctx is done.
// It returns nil on the first success, otherwise the last error seen.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BackoffFactor < 1 {
		cfg.BackoffFactor = 1
	}

	var lastErr error
	delay := cfg.Delay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		if attempt > 1 {
			delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
