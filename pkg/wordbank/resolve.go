package wordbank

// ResolutionMode controls how supplied banks are matched against a preset's
// allowed bank ids.
type ResolutionMode int

const (
	// ModeAuto infers the mode per part of speech: when the supplied bank ids
	// form a proper, non-empty subset of the allowed ids, the caller has
	// already narrowed the banks (for example by theme) and ModePrefiltered
	// applies; otherwise ModePresetFiltered applies.
	ModeAuto ResolutionMode = iota

	// ModePresetFiltered treats the supplied banks as the full universe and
	// keeps only words from banks whose id appears in the allowed list.
	ModePresetFiltered

	// ModePrefiltered trusts the caller's narrowing and uses every word from
	// the supplied banks, ignoring the allowed id lists.
	ModePrefiltered
)

// Resolve determines the eligible adjective and noun pools for a generation
// request. NSFW-flagged banks are removed first when filterNSFW is set, then
// each part of speech is resolved independently according to mode.
//
// It returns ErrInsufficientWordBanks when a part of speech ends up with zero
// banks, and ErrNoWordsAvailable when banks remain but hold zero words.
func Resolve(banks []Bank, allowedAdjectives, allowedNouns []string, filterNSFW bool, mode ResolutionMode) (*Pools, error) {
	if filterNSFW {
		kept := make([]Bank, 0, len(banks))
		for _, b := range banks {
			if !b.NSFW {
				kept = append(kept, b)
			}
		}
		banks = kept
	}

	adjBanks := banksByPart(banks, Adjective)
	nounBanks := banksByPart(banks, Noun)

	adjectives, err := resolvePart(adjBanks, allowedAdjectives, mode)
	if err != nil {
		return nil, err
	}
	nouns, err := resolvePart(nounBanks, allowedNouns, mode)
	if err != nil {
		return nil, err
	}

	return &Pools{Adjectives: adjectives, Nouns: nouns}, nil
}

func resolvePart(banks []Bank, allowed []string, mode ResolutionMode) ([]string, error) {
	if mode == ModeAuto {
		if isProperSubset(bankIDs(banks), allowed) {
			mode = ModePrefiltered
		} else {
			mode = ModePresetFiltered
		}
	}

	if mode == ModePresetFiltered {
		allowedSet := make(map[string]struct{}, len(allowed))
		for _, id := range allowed {
			allowedSet[id] = struct{}{}
		}
		kept := make([]Bank, 0, len(banks))
		for _, b := range banks {
			if _, ok := allowedSet[b.ID]; ok {
				kept = append(kept, b)
			}
		}
		banks = kept
	}

	if len(banks) == 0 {
		return nil, ErrInsufficientWordBanks
	}

	var words []string
	for _, b := range banks {
		words = append(words, b.Words...)
	}
	if len(words) == 0 {
		return nil, ErrNoWordsAvailable
	}
	return words, nil
}

func banksByPart(banks []Bank, part PartOfSpeech) []Bank {
	var out []Bank
	for _, b := range banks {
		if b.Part == part {
			out = append(out, b)
		}
	}
	return out
}

func bankIDs(banks []Bank) []string {
	ids := make([]string, 0, len(banks))
	for _, b := range banks {
		ids = append(ids, b.ID)
	}
	return ids
}

// isProperSubset reports whether ids is a non-empty strict subset of allowed.
func isProperSubset(ids, allowed []string) bool {
	if len(ids) == 0 {
		return false
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = struct{}{}
	}

	distinct := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := allowedSet[id]; !ok {
			return false
		}
		distinct[id] = struct{}{}
	}

	return len(distinct) < len(allowedSet)
}
