package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/namekit/pkg/ledger"
)

const defaultKeyPrefix = "namekit:ledger:"

// Store is a Redis-backed ledger.Store. Entries are JSON documents; SetNX
// provides the duplicate-key semantics the ledger contract requires.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix overrides the Redis key prefix (default "namekit:ledger:").
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a Store on the given client.
func New(client redis.UniversalClient, opts ...Option) *Store {
	s := &Store{client: client, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(ctx context.Context, key string) (*ledger.Entry, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var entry ledger.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Store) Add(ctx context.Context, entry *ledger.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, s.prefix+entry.Key, data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ledger.ErrDuplicateKey
	}
	return nil
}

func (s *Store) Release(ctx context.Context, keys ...string) error {
	now := time.Now()

	for _, key := range keys {
		entry, err := s.Get(ctx, key)
		if errors.Is(err, ledger.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if entry.Released {
			continue
		}

		entry.Released = true
		entry.ReleasedAt = &now

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
			return err
		}
	}
	return nil
}
