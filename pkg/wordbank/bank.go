package wordbank

// PartOfSpeech tags the words a bank holds.
type PartOfSpeech string

const (
	Adjective PartOfSpeech = "adjective"
	Noun      PartOfSpeech = "noun"
)

// Bank is a read-only named collection of candidate words sharing a part of
// speech, locale, and theme. Banks are supplied by the caller; the engine
// never mutates them.
type Bank struct {
	ID     string       `yaml:"id"`
	Name   string       `yaml:"name"`
	Part   PartOfSpeech `yaml:"part"`
	Locale string       `yaml:"locale"`
	NSFW   bool         `yaml:"nsfw"`
	Theme  string       `yaml:"theme"`
	Words  []string     `yaml:"words"`
}

// Pools holds the words eligible for one generation request after bank
// resolution, split by part of speech. Pools may be shared between requests
// (the cached resolver returns the same instance), so callers must treat the
// slices as read-only.
type Pools struct {
	Adjectives []string
	Nouns      []string
}
