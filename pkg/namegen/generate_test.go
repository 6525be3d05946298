package namegen_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/filename"
	"github.com/dmitrymomot/namekit/pkg/ledger"
	"github.com/dmitrymomot/namekit/pkg/namegen"
	"github.com/dmitrymomot/namekit/pkg/wordbank"
)

func smallBanks() []wordbank.Bank {
	return []wordbank.Bank{
		{ID: "adj", Part: wordbank.Adjective, Words: []string{"bright"}},
		{ID: "nouns", Part: wordbank.Noun, Words: []string{"sky"}},
	}
}

func smallPreset() namegen.Preset {
	return namegen.Preset{
		ID:               "p1",
		Delimiter:        "-",
		Case:             filename.CaseLower,
		AdjectiveBankIDs: []string{"adj"},
		NounBankIDs:      []string{"nouns"},
	}
}

func TestGenerateReturnsValidName(t *testing.T) {
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	preset := namegen.Preset{
		ID:               "p1",
		Case:             filename.CaseTitle,
		AdjectiveBankIDs: []string{"builtin-adjectives"},
		NounBankIDs:      []string{"builtin-nouns"},
	}

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:    preset,
		Banks:     wordbank.Builtin(),
		Extension: ".jpg",
		Session:   namegen.NewSession(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.Name)
	assert.NotEmpty(t, got.Slug)
	assert.Equal(t, got.Slug+".jpg", got.Key)
	assert.NoError(t, filename.Validate(got.Name, ".jpg", 255))
}

func TestGenerateCounterScenario(t *testing.T) {
	// A one-word universe with the only combination already claimed must
	// yield the first counter value.
	ctx := context.Background()
	store := ledger.NewInMemory()
	svc := namegen.NewService(store)

	require.NoError(t, svc.Register(ctx, namegen.RegisterRequest{Name: "bright-sky", Extension: ".jpg"}))

	preset := smallPreset()
	preset.Counter = true
	preset.CounterStart = 1

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:    preset,
		Banks:     smallBanks(),
		Extension: ".jpg",
		Session:   namegen.NewSession(),
	})
	require.NoError(t, err)

	assert.Equal(t, "bright-sky-1", got.Name)
	assert.Equal(t, "bright-sky-1.jpg", got.Key)
}

func TestGenerateCounterSkipsClaimedSuffixes(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewInMemory()
	svc := namegen.NewService(store)

	for _, name := range []string{"bright-sky", "bright-sky-1", "bright-sky-2"} {
		require.NoError(t, svc.Register(ctx, namegen.RegisterRequest{Name: name, Extension: ".jpg"}))
	}

	preset := smallPreset()
	preset.Counter = true

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:    preset,
		Banks:     smallBanks(),
		Extension: ".jpg",
		Session:   namegen.NewSession(),
	})
	require.NoError(t, err)
	assert.Equal(t, "bright-sky-3", got.Name)
}

func TestGenerateSequentialBatchDistinct(t *testing.T) {
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	preset := namegen.Preset{
		ID:               "batch",
		AdjectiveBankIDs: []string{"builtin-adjectives"},
		NounBankIDs:      []string{"builtin-nouns"},
	}
	sess := namegen.NewSession()

	seen := make(map[string]struct{})
	for i := 0; i < 25; i++ {
		got, err := svc.Generate(ctx, namegen.Request{
			Preset:    preset,
			Banks:     wordbank.Builtin(),
			Extension: ".jpg",
			Session:   sess,
		})
		require.NoError(t, err)

		_, dup := seen[got.Key]
		require.False(t, dup, "duplicate key %q on call %d", got.Key, i)
		seen[got.Key] = struct{}{}

		require.NoError(t, svc.Register(ctx, namegen.RegisterRequest{
			Name:      got.Name,
			Extension: ".jpg",
			PresetID:  preset.ID,
		}))
		sess.MarkName(got.Key)
	}
}

func TestGenerateSessionHitSkipsWithoutLedger(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{Store: ledger.NewInMemory()}
	svc := namegen.NewService(store)

	sess := namegen.NewSession()
	sess.MarkName("bright-sky.jpg")

	preset := smallPreset()
	preset.Counter = false

	// Every ordinary attempt collides with the session entry, so no ledger
	// lookup may happen until the fallback tiers produce fresh candidates.
	got, err := svc.Generate(ctx, namegen.Request{
		Preset:      preset,
		Banks:       smallBanks(),
		Extension:   ".jpg",
		MaxAttempts: 5,
		Session:     sess,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "bright-sky.jpg", got.Key)
	assert.Regexp(t, regexp.MustCompile(`^image-[0-9a-z]{6}$`), got.Name)
	assert.Equal(t, 1, store.gets, "session collisions must not query the ledger")
}

func TestGenerateHashFallback(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewInMemory()
	svc := namegen.NewService(store)

	require.NoError(t, svc.Register(ctx, namegen.RegisterRequest{Name: "bright-sky", Extension: ".jpg"}))

	preset := smallPreset() // counters disabled

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:      preset,
		Banks:       smallBanks(),
		Extension:   ".jpg",
		MaxAttempts: 3,
		Session:     namegen.NewSession(),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^image-[0-9a-z]{6}$`), got.Name)
	assert.NoError(t, filename.Validate(got.Name, ".jpg", 255))
}

func TestGenerateHashFallbackUsesPresetPrefix(t *testing.T) {
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	preset := smallPreset()
	preset.Prefix = "vacation"

	sess := namegen.NewSession()
	sess.MarkName("vacation-bright-sky.jpg")

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:      preset,
		Banks:       smallBanks(),
		Extension:   ".jpg",
		MaxAttempts: 2,
		Session:     sess,
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^vacation-[0-9a-z]{6}$`), got.Name)
}

func TestGenerateReleaseRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewInMemory()
	svc := namegen.NewService(store)

	preset := smallPreset()

	first, err := svc.Generate(ctx, namegen.Request{
		Preset: preset, Banks: smallBanks(), Extension: ".jpg", Session: namegen.NewSession(),
	})
	require.NoError(t, err)
	require.Equal(t, "bright-sky.jpg", first.Key)

	require.NoError(t, svc.Register(ctx, namegen.RegisterRequest{Name: first.Name, Extension: ".jpg"}))
	require.NoError(t, svc.Release(ctx, first.Key))

	entry, err := store.Get(ctx, first.Key)
	require.NoError(t, err)
	assert.True(t, entry.Released)

	// A released key is legal to produce again.
	second, err := svc.Generate(ctx, namegen.Request{
		Preset: preset, Banks: smallBanks(), Extension: ".jpg", Session: namegen.NewSession(),
	})
	require.NoError(t, err)
	assert.Equal(t, first.Key, second.Key)
}

func TestRegisterIdempotent(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewInMemory()
	svc := namegen.NewService(store)

	req := namegen.RegisterRequest{Name: "Bright Sky", Extension: ".jpg", PresetID: "p1", Locale: "en"}
	require.NoError(t, svc.Register(ctx, req))
	require.NoError(t, svc.Register(ctx, req))
	require.NoError(t, svc.Register(ctx, namegen.RegisterRequest{Name: "bright-sky.jpg", Extension: ".jpg"}))

	assert.Equal(t, 1, store.Len())

	// Display name, slug, and key all normalize to the same ledger key.
	entry, err := store.Get(ctx, "bright-sky.jpg")
	require.NoError(t, err)
	assert.Equal(t, "p1", entry.PresetID)
	assert.Equal(t, "en", entry.Locale)
}

func TestGenerateConfigurationErrors(t *testing.T) {
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	preset := smallPreset()

	_, err := svc.Generate(ctx, namegen.Request{
		Preset: preset,
		Banks: []wordbank.Bank{
			{ID: "adj", Part: wordbank.Adjective, Words: []string{"bright"}},
		},
		Extension: ".jpg",
	})
	assert.ErrorIs(t, err, wordbank.ErrInsufficientWordBanks)

	_, err = svc.Generate(ctx, namegen.Request{
		Preset: preset,
		Banks: []wordbank.Bank{
			{ID: "adj", Part: wordbank.Adjective},
			{ID: "nouns", Part: wordbank.Noun, Words: []string{"sky"}},
		},
		Extension: ".jpg",
	})
	assert.ErrorIs(t, err, wordbank.ErrNoWordsAvailable)
}

func TestGenerateLedgerErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	svc := namegen.NewService(&failingStore{err: boom})

	_, err := svc.Generate(ctx, namegen.Request{
		Preset:    smallPreset(),
		Banks:     smallBanks(),
		Extension: ".jpg",
	})
	assert.ErrorIs(t, err, boom)
}

func TestGenerateWordVariety(t *testing.T) {
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	banks := []wordbank.Bank{
		{ID: "adj", Part: wordbank.Adjective, Words: []string{"bright", "calm"}},
		{ID: "nouns", Part: wordbank.Noun, Words: []string{"sky", "sea"}},
	}
	preset := smallPreset()
	sess := namegen.NewSession()

	first, err := svc.Generate(ctx, namegen.Request{
		Preset: preset, Banks: banks, Extension: ".jpg", Session: sess, Seed: 42,
	})
	require.NoError(t, err)
	sess.MarkName(first.Key)

	second, err := svc.Generate(ctx, namegen.Request{
		Preset: preset, Banks: banks, Extension: ".jpg", Session: sess, Seed: 43,
	})
	require.NoError(t, err)

	// Both words of the second name must differ from the first: the session
	// prefers unused words while any remain.
	firstWords := strings.Split(first.Name, "-")
	secondWords := strings.Split(second.Name, "-")
	require.Len(t, firstWords, 2)
	require.Len(t, secondWords, 2)
	assert.NotEqual(t, firstWords[0], secondWords[0])
	assert.NotEqual(t, firstWords[1], secondWords[1])
}

func TestGenerateReservedNameAbsorbed(t *testing.T) {
	// A noun that collapses to a reserved device name must never surface a
	// validation error; counters rescue it.
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	preset := namegen.Preset{
		ID:               "reserved",
		Template:         []namegen.Slot{namegen.SlotNoun},
		Counter:          true,
		AdjectiveBankIDs: []string{"adj"},
		NounBankIDs:      []string{"nouns"},
	}
	banks := []wordbank.Bank{
		{ID: "adj", Part: wordbank.Adjective, Words: []string{"unused"}},
		{ID: "nouns", Part: wordbank.Noun, Words: []string{"con"}},
	}

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:    preset,
		Banks:     banks,
		Extension: ".txt",
		Session:   namegen.NewSession(),
	})
	require.NoError(t, err)
	assert.Equal(t, "con-1", got.Name)
}

func TestGenerateDateStampAndLiterals(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	svc := namegen.NewService(ledger.NewInMemory(), namegen.WithClock(func() time.Time { return fixed }))

	preset := namegen.Preset{
		ID:               "stamped",
		Prefix:           "img",
		Suffix:           "edit",
		DateStamp:        true,
		Case:             filename.CaseLower,
		AdjectiveBankIDs: []string{"adj"},
		NounBankIDs:      []string{"nouns"},
	}

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:    preset,
		Banks:     smallBanks(),
		Extension: ".jpg",
		Session:   namegen.NewSession(),
	})
	require.NoError(t, err)
	assert.Equal(t, "img-bright-sky-edit-20260823", got.Name)
}

func TestGenerateCaseStyleAffectsNameNotKey(t *testing.T) {
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	preset := smallPreset()
	preset.Case = filename.CaseUpper

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:    preset,
		Banks:     smallBanks(),
		Extension: ".JPG",
		Session:   namegen.NewSession(),
	})
	require.NoError(t, err)

	assert.Equal(t, "BRIGHT-SKY", got.Name)
	assert.Equal(t, "bright-sky", got.Slug)
	assert.Equal(t, "bright-sky.jpg", got.Key, "keys are case-folded, extension included")
}

func TestGenerateAdjectiveCount(t *testing.T) {
	ctx := context.Background()
	svc := namegen.NewService(ledger.NewInMemory())

	preset := namegen.Preset{
		ID:             "multi",
		AdjectiveCount: 2,
		AdjectiveBankIDs: []string{
			"adj",
		},
		NounBankIDs: []string{"nouns"},
	}
	banks := []wordbank.Bank{
		{ID: "adj", Part: wordbank.Adjective, Words: []string{"bright", "calm"}},
		{ID: "nouns", Part: wordbank.Noun, Words: []string{"sky"}},
	}

	got, err := svc.Generate(ctx, namegen.Request{
		Preset:    preset,
		Banks:     banks,
		Extension: ".jpg",
		Session:   namegen.NewSession(),
		Seed:      7,
	})
	require.NoError(t, err)

	// Two distinct adjectives plus the noun.
	assert.Contains(t, []string{"bright-calm-sky", "calm-bright-sky"}, got.Name)
}

// countingStore counts Get calls to observe ledger traffic.
type countingStore struct {
	ledger.Store
	gets int
}

func (s *countingStore) Get(ctx context.Context, key string) (*ledger.Entry, error) {
	s.gets++
	return s.Store.Get(ctx, key)
}

// failingStore fails every operation with a fixed error.
type failingStore struct {
	err error
}

func (s *failingStore) Get(context.Context, string) (*ledger.Entry, error) { return nil, s.err }
func (s *failingStore) Add(context.Context, *ledger.Entry) error           { return s.err }
func (s *failingStore) Release(context.Context, ...string) error           { return s.err }
