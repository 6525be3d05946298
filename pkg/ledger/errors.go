package ledger

import "errors"

var (
	// ErrNotFound is returned by Get when no entry exists for the key.
	ErrNotFound = errors.New("ledger: entry not found")

	// ErrDuplicateKey is returned by Add when the key is already claimed.
	ErrDuplicateKey = errors.New("ledger: duplicate key")
)
