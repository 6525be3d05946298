package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is the durable record of an issued name, keyed by the normalized
// slug plus extension. Entries are never physically deleted: releasing a name
// flips the Released flag so the audit history survives undo.
type Entry struct {
	ID         uuid.UUID  `json:"id" bson:"id"`
	Key        string     `json:"key" bson:"key"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	PresetID   string     `json:"preset_id,omitempty" bson:"preset_id,omitempty"`
	Locale     string     `json:"locale,omitempty" bson:"locale,omitempty"`
	Released   bool       `json:"released" bson:"released"`
	ReleasedAt *time.Time `json:"released_at,omitempty" bson:"released_at,omitempty"`
}

// Active reports whether the entry still claims its key. Released entries do
// not block reuse.
func (e *Entry) Active() bool {
	return e != nil && !e.Released
}

// Store is the persistence contract the name engine requires: a durable
// key-value ledger with get, duplicate-detecting add, and bulk soft-release.
// Implementations must return ErrNotFound and ErrDuplicateKey for those
// conditions; any other error is propagated to the engine's caller as-is.
type Store interface {
	// Get returns the entry for key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Entry, error)

	// Add persists a new entry. A write for an already-present key returns
	// ErrDuplicateKey.
	Add(ctx context.Context, entry *Entry) error

	// Release marks the given keys as released. Missing keys are skipped
	// silently so undo stays idempotent.
	Release(ctx context.Context, keys ...string) error
}
