package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/namekit/pkg/ledger"
	"github.com/dmitrymomot/namekit/pkg/pg"
)

// Store is a PostgreSQL-backed ledger.Store. The primary key on the key
// column enforces uniqueness; duplicate inserts surface as
// ledger.ErrDuplicateKey.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store on the given pool. Run Migrate first to create the
// schema.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Get(ctx context.Context, key string) (*ledger.Entry, error) {
	const query = `
		SELECT id, key, created_at, preset_id, locale, released, released_at
		FROM name_ledger
		WHERE key = $1`

	var entry ledger.Entry
	err := s.pool.QueryRow(ctx, query, key).Scan(
		&entry.ID,
		&entry.Key,
		&entry.CreatedAt,
		&entry.PresetID,
		&entry.Locale,
		&entry.Released,
		&entry.ReleasedAt,
	)
	if pg.IsNotFoundError(err) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Store) Add(ctx context.Context, entry *ledger.Entry) error {
	const query = `
		INSERT INTO name_ledger (id, key, created_at, preset_id, locale, released)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.pool.Exec(ctx, query,
		entry.ID,
		entry.Key,
		entry.CreatedAt,
		entry.PresetID,
		entry.Locale,
		entry.Released,
	)
	if pg.IsDuplicateKeyError(err) {
		return ledger.ErrDuplicateKey
	}
	return err
}

func (s *Store) Release(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	const query = `
		UPDATE name_ledger
		SET released = TRUE, released_at = NOW()
		WHERE key = ANY($1) AND released = FALSE`

	_, err := s.pool.Exec(ctx, query, keys)
	return err
}
