package namegen

// Session tracks what one batch run has already consumed: full name keys
// (slug plus extension) and the individual adjectives and nouns used, so a
// batch produces varied names before words start repeating.
//
// A Session belongs to exactly one batch and one goroutine; it is not
// synchronized. Run concurrent batches with separate Sessions.
type Session struct {
	names      map[string]struct{}
	adjectives map[string]struct{}
	nouns      map[string]struct{}
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		names:      make(map[string]struct{}),
		adjectives: make(map[string]struct{}),
		nouns:      make(map[string]struct{}),
	}
}

// MarkName records a full key as taken for the rest of the batch. The engine
// never marks names itself: the caller marks a key once it accepts the
// generated name (alongside registering it in the ledger).
func (s *Session) MarkName(key string) {
	s.names[key] = struct{}{}
}

// HasName reports whether a full key was already used in this batch.
func (s *Session) HasName(key string) bool {
	_, ok := s.names[key]
	return ok
}

// commitWords records the adjectives and noun of a successful candidate.
// Word picks stay provisional until the generation attempt succeeds.
func (s *Session) commitWords(adjectives []string, noun string) {
	for _, a := range adjectives {
		s.adjectives[a] = struct{}{}
	}
	s.nouns[noun] = struct{}{}
}

func (s *Session) usedAdjectives() map[string]struct{} { return s.adjectives }
func (s *Session) usedNouns() map[string]struct{}      { return s.nouns }
