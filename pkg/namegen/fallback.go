package namegen

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/namekit/pkg/filename"
	"github.com/dmitrymomot/namekit/pkg/ledger"
	"github.com/dmitrymomot/namekit/pkg/slug"
)

const hashFallbackAttempts = 100

// processStart anchors a monotonic clock reading for the absolute tier.
var processStart = time.Now()

// fallbackTier is one strategy in the cascade. Tiers run in order; each is
// cheaper and more collision-resistant than the last, and the final tier
// never declines.
type fallbackTier struct {
	name string
	run  func(ctx context.Context, s *Service, st *genState) (GeneratedName, bool, error)
}

func (s *Service) fallbacks() []fallbackTier {
	return []fallbackTier{
		{name: "hash", run: hashFallback},
		{name: "timestamp", run: timestampFallback},
		{name: "absolute", run: absoluteFallback},
	}
}

// fallbackPrefix is the literal lead segment for fallback names: the
// preset's prefix when it has one, "image" otherwise.
func fallbackPrefix(p Preset) string {
	if p.Prefix != "" {
		return p.Prefix
	}
	return "image"
}

// checkCandidate validates a fallback candidate and verifies it is free in
// both the session and the ledger.
func checkCandidate(ctx context.Context, s *Service, st *genState, name string) (GeneratedName, bool, error) {
	if filename.Validate(name, st.ext, st.maxLength) != nil {
		return GeneratedName{}, false, nil
	}

	sl := slug.Make(name)
	key := sl + st.ext
	if st.session.HasName(key) {
		return GeneratedName{}, false, nil
	}

	entry, err := s.store.Get(ctx, key)
	if err != nil && !errors.Is(err, ledger.ErrNotFound) {
		return GeneratedName{}, false, err
	}
	if entry.Active() {
		return GeneratedName{}, false, nil
	}

	return GeneratedName{Name: name, Slug: sl, Key: key}, true, nil
}

// hashFallback tries short random base-36 hashes behind the prefix.
func hashFallback(ctx context.Context, s *Service, st *genState) (GeneratedName, bool, error) {
	for range hashFallbackAttempts {
		name := fallbackPrefix(st.preset) + st.preset.delimiter() + randomBase36(st, 6)

		gn, ok, err := checkCandidate(ctx, s, st, name)
		if err != nil {
			return GeneratedName{}, false, err
		}
		if ok {
			return gn, true, nil
		}
	}
	return GeneratedName{}, false, nil
}

// timestampFallback combines a millisecond timestamp with a random base-36
// suffix. The namespace makes collisions effectively impossible, so it is
// checked once and never retried.
func timestampFallback(ctx context.Context, s *Service, st *genState) (GeneratedName, bool, error) {
	name := fallbackPrefix(st.preset) + st.preset.delimiter() +
		strconv.FormatInt(s.now().UnixMilli(), 36) + st.preset.delimiter() +
		randomBase36(st, 4)

	return checkCandidate(ctx, s, st, name)
}

// absoluteFallback is the documented last resort: wall clock, a monotonic
// reading, and a random fraction, slug-collapsed and returned without any
// further uniqueness verification.
func absoluteFallback(_ context.Context, s *Service, st *genState) (GeneratedName, bool, error) {
	raw := fmt.Sprintf("%s %d %d %.9f",
		fallbackPrefix(st.preset),
		s.now().UnixMilli(),
		time.Since(processStart).Nanoseconds(),
		st.seq.Next(),
	)

	name := slug.Make(raw, slug.Separator(st.preset.delimiter()))
	return GeneratedName{Name: name, Slug: slug.Make(name), Key: slug.Make(name) + st.ext}, true, nil
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(st *genState, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = base36Alphabet[st.seq.NextInt(len(base36Alphabet))]
	}
	return string(buf)
}
