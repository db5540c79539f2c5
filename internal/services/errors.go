package services

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable wraps any failure reported by the database.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrAccessDenied is returned when a signed-in caller lacks the admin flag.
	ErrAccessDenied = errors.New("access denied: admin privileges required")
)

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
