package ledger

import (
	"context"
	"sync"
	"time"
)

// InMemory is a Store backed by a map. It is safe for concurrent use and
// suits tests and single-process installations that do not need durability.
type InMemory struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewInMemory creates an empty in-memory ledger.
func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[string]*Entry)}
}

func (s *InMemory) Get(ctx context.Context, key string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	cp := *e
	return &cp, nil
}

func (s *InMemory) Add(ctx context.Context, entry *Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.Key]; ok {
		return ErrDuplicateKey
	}

	cp := *entry
	s.entries[entry.Key] = &cp
	return nil
}

func (s *InMemory) Release(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, key := range keys {
		if e, ok := s.entries[key]; ok && !e.Released {
			e.Released = true
			e.ReleasedAt = &now
		}
	}
	return nil
}

// Len returns the number of stored entries, released ones included.
func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
