package namegen

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrymomot/namekit/pkg/filename"
	"github.com/dmitrymomot/namekit/pkg/ledger"
	"github.com/dmitrymomot/namekit/pkg/prng"
	"github.com/dmitrymomot/namekit/pkg/slug"
)

// counterProbeLimit bounds how many numeric suffixes are tried for one
// colliding candidate before the attempt is abandoned.
const counterProbeLimit = 1000

// genState carries one generation call's working data through the attempt
// loop and the fallback tiers.
type genState struct {
	preset    Preset
	session   *Session
	ext       string
	maxLength int
	seq       *prng.Sequence
}

// Generate produces one name guaranteed unique against the request's session
// set and the ledger at the moment of return. The caller commits the name
// with Register (and Session.MarkName) once accepted; abandoning the result
// has no side effects beyond the session's used-word bookkeeping.
//
// Generate fails only on ledger I/O errors or the two configuration errors,
// wordbank.ErrInsufficientWordBanks and wordbank.ErrNoWordsAvailable. All
// validation failures and collisions are absorbed by retries and, past the
// attempt limit, by the fallback cascade, which always terminates with a
// name.
//
// Uniqueness holds for sequential use by a single caller. Two concurrent
// callers can both pass the ledger check before either registers; callers
// sharing a ledger across processes must serialize generate-and-register.
func (s *Service) Generate(ctx context.Context, req Request) (GeneratedName, error) {
	pools, err := s.resolver.Resolve(
		req.Banks,
		req.Preset.AdjectiveBankIDs,
		req.Preset.NounBankIDs,
		req.Preset.FilterNSFW,
		req.Mode,
	)
	if err != nil {
		return GeneratedName{}, err
	}

	st := &genState{
		preset:    req.Preset,
		session:   req.Session,
		ext:       normalizeExt(req.Extension),
		maxLength: req.MaxLength,
	}
	if st.session == nil {
		st.session = NewSession()
	}
	if st.maxLength <= 0 {
		st.maxLength = defaultMaxLength
	}
	if req.Seed != 0 {
		st.seq = prng.NewSeeded(req.Seed)
	} else {
		st.seq = prng.New()
	}

	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		adjectives := pickWords(st.seq, pools.Adjectives, st.session.usedAdjectives(), st.preset.adjectiveCount())
		nouns := pickWords(st.seq, pools.Nouns, st.session.usedNouns(), 1)
		if len(nouns) == 0 {
			// Resolve guarantees non-empty pools; a caller-mutated Pools
			// can still empty one.
			continue
		}
		noun := nouns[0]

		name := filename.Normalize(assemble(st.preset, adjectives, noun, s.now()), st.preset.Case)
		sl := slug.Make(name)
		key := sl + st.ext

		// Session hit: cheapest check first, no ledger round trip.
		if st.session.HasName(key) {
			continue
		}

		entry, err := s.store.Get(ctx, key)
		if err != nil && !errors.Is(err, ledger.ErrNotFound) {
			return GeneratedName{}, err
		}

		if entry.Active() {
			if st.preset.Counter {
				if gn, ok, err := s.probeCounters(ctx, st, name); err != nil {
					return GeneratedName{}, err
				} else if ok {
					st.session.commitWords(adjectives, noun)
					return gn, nil
				}
			}
			continue
		}

		if filename.Validate(name, st.ext, st.maxLength) != nil {
			if st.preset.Counter {
				if gn, ok, err := s.probeCounters(ctx, st, name); err != nil {
					return GeneratedName{}, err
				} else if ok {
					st.session.commitWords(adjectives, noun)
					return gn, nil
				}
			}
			continue
		}

		st.session.commitWords(adjectives, noun)
		return GeneratedName{Name: name, Slug: sl, Key: key}, nil
	}

	s.log.WarnContext(ctx, "ordinary name generation exhausted, entering fallback cascade",
		"preset_id", st.preset.ID, "attempts", maxAttempts)

	for _, tier := range s.fallbacks() {
		gn, ok, err := tier.run(ctx, s, st)
		if err != nil {
			return GeneratedName{}, err
		}
		if ok {
			s.log.InfoContext(ctx, "name produced by fallback tier",
				"tier", tier.name, "preset_id", st.preset.ID)
			return gn, nil
		}
	}

	// Unreachable: the absolute tier never declines.
	return GeneratedName{}, errors.New("namegen: fallback cascade produced no name")
}

// probeCounters walks numeric suffixes from the preset's counter start,
// returning the first suffixed candidate that validates and is free in both
// the session and the ledger.
func (s *Service) probeCounters(ctx context.Context, st *genState, name string) (GeneratedName, bool, error) {
	start := st.preset.counterStart()

	for c := start; c < start+counterProbeLimit; c++ {
		candidate := name + st.preset.delimiter() + strconv.Itoa(c)
		if filename.Validate(candidate, st.ext, st.maxLength) != nil {
			continue
		}

		sl := slug.Make(candidate)
		key := sl + st.ext
		if st.session.HasName(key) {
			continue
		}

		entry, err := s.store.Get(ctx, key)
		if err != nil && !errors.Is(err, ledger.ErrNotFound) {
			return GeneratedName{}, false, err
		}
		if entry.Active() {
			continue
		}

		return GeneratedName{Name: candidate, Slug: sl, Key: key}, true, nil
	}

	return GeneratedName{}, false, nil
}
