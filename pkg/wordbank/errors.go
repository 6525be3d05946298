package wordbank

import "errors"

var (
	// ErrInsufficientWordBanks is returned when, after NSFW and mode
	// filtering, a part of speech is left with zero banks. The caller must
	// fix the preset or bank setup before retrying.
	ErrInsufficientWordBanks = errors.New("wordbank: no word banks available for a part of speech")

	// ErrNoWordsAvailable is returned when banks survive filtering but
	// contain no words.
	ErrNoWordsAvailable = errors.New("wordbank: no words available after filtering")

	// ErrInvalidBankFile is returned when a bank definition file cannot be
	// parsed or fails basic shape checks.
	ErrInvalidBankFile = errors.New("wordbank: invalid bank file")
)
