package namegen

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/namekit/pkg/ledger"
	"github.com/dmitrymomot/namekit/pkg/slug"
	"github.com/dmitrymomot/namekit/pkg/wordbank"
)

const (
	defaultMaxAttempts = 100
	defaultMaxLength   = 255
	defaultCacheSize   = 64
)

// Service generates unique file names and manages their ledger lifecycle.
// It is safe for concurrent use as long as each concurrent batch brings its
// own Session and Request.
type Service struct {
	store    ledger.Store
	resolver *wordbank.Resolver
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a structured logger; fallback-tier degradation and
// ledger lifecycle events are reported through it.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source, used by tests to pin date stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithResolverCacheSize sizes the word-bank resolution cache.
func WithResolverCacheSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.resolver = wordbank.NewResolver(n)
		}
	}
}

// NewService creates a Service backed by the given ledger store.
func NewService(store ledger.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		resolver: wordbank.NewResolver(defaultCacheSize),
		log:      slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request describes one generation call. Lifetime is a single batch run; the
// Session carries the batch's used-name and used-word state between calls.
type Request struct {
	Preset Preset

	// Banks is the word-bank universe (or a caller-narrowed subset) for this
	// request.
	Banks []wordbank.Bank

	// Mode selects bank resolution behavior; wordbank.ModeAuto infers it
	// from set cardinalities.
	Mode wordbank.ResolutionMode

	// Extension is the target file extension, with or without the leading
	// dot.
	Extension string

	// MaxLength bounds name+extension; zero means 255.
	MaxLength int

	// MaxAttempts bounds the ordinary generation loop before the fallback
	// cascade starts; zero means 100.
	MaxAttempts int

	// Seed pins the word-selection sequence for reproducible runs; zero
	// seeds from the clock and crypto entropy.
	Seed int64

	// Session is the caller-owned batch state; nil gets a throwaway session.
	Session *Session
}

// GeneratedName is a produced name: the display form (case-styled, without
// extension), its normalized slug, and the full uniqueness key (slug plus
// extension) under which the name is checked and registered.
type GeneratedName struct {
	Name string
	Slug string
	Key  string
}

// RegisterRequest identifies a name to claim in the ledger.
type RegisterRequest struct {
	Name      string
	Extension string
	PresetID  string
	Locale    string
}

// Register claims a generated name in the ledger so later generation calls
// avoid it. The name goes through the same slug normalization as generation,
// so any of the display name, slug, or key may be passed. Registering an
// already-claimed key is a no-op, which makes retrying a batch safe.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	ext := normalizeExt(req.Extension)

	name := req.Name
	if ext != "" && len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
		name = name[:len(name)-len(ext)]
	}
	key := slug.Make(name) + ext

	err := s.store.Add(ctx, &ledger.Entry{
		ID:        uuid.New(),
		Key:       key,
		CreatedAt: s.now(),
		PresetID:  req.PresetID,
		Locale:    req.Locale,
	})
	if errors.Is(err, ledger.ErrDuplicateKey) {
		s.log.DebugContext(ctx, "name already registered", "key", key)
		return nil
	}
	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "name registered", "key", key, "preset_id", req.PresetID)
	return nil
}

// Release soft-deletes the given keys (slug plus extension), the undo path.
// Released keys become eligible for generation again; ledger rows are kept
// for audit history.
func (s *Service) Release(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.store.Release(ctx, keys...); err != nil {
		return err
	}
	s.log.DebugContext(ctx, "names released", "count", len(keys))
	return nil
}

// normalizeExt lowercases the extension and guarantees a leading dot.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
