package service

import (
	"fmt"
	"math/rand"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
)

const maxKeyAttempts = 20

// generateKey rolls random 4-digit keys until one is free of the existing
// set, giving up after maxKeyAttempts rolls.
func generateKey(existing []string) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, k := range existing {
		taken[k] = struct{}{}
	}

	var key string
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key = fmt.Sprintf("%04d", 1000+rand.Intn(9000))
		if _, ok := taken[key]; !ok {
			return key, nil
		}
	}
	return "", apperr.ErrIDGenerationExhausted
}
