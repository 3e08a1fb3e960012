package service

import "errors"

// The five error kinds every operation reports. Services wrap these with
// detail via fmt.Errorf("...: %w", ErrX); callers dispatch with errors.Is.
var (
	// ErrValidation covers malformed input and role mismatches.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers both a missing entity and a caller without access.
	// The two are deliberately indistinguishable so existence is never
	// leaked to unauthorized callers.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers state-machine violations, scheduling conflicts and
	// duplicate pending invitations.
	ErrConflict = errors.New("conflict")

	// ErrQuotaExceeded covers the monthly invitation limit and insufficient
	// call credits.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrExpired covers tokens used past their validity window.
	ErrExpired = errors.New("expired")
)
