package filename

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseStyle selects how a generated name is capitalized.
type CaseStyle string

const (
	// CaseTitle capitalizes each word: "bright sky" -> "Bright Sky".
	CaseTitle CaseStyle = "title"
	// CaseSentence capitalizes the first rune only: "bright sky" -> "Bright sky".
	CaseSentence CaseStyle = "sentence"
	// CaseLower lowercases everything.
	CaseLower CaseStyle = "lower"
	// CaseUpper uppercases everything.
	CaseUpper CaseStyle = "upper"
)

// ParseCaseStyle normalizes a raw style string into a CaseStyle at the input
// boundary. The legacy styles "kebab" and "snake" alias to CaseLower, as does
// anything unrecognized: parsing is total, configuration typos degrade to
// lowercase rather than failing a batch.
func ParseCaseStyle(s string) CaseStyle {
	switch CaseStyle(strings.ToLower(strings.TrimSpace(s))) {
	case CaseTitle:
		return CaseTitle
	case CaseSentence:
		return CaseSentence
	case CaseUpper:
		return CaseUpper
	case CaseLower, "kebab", "snake":
		return CaseLower
	default:
		return CaseLower
	}
}

var (
	titleCaser = cases.Title(language.Und)
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// applyCase transforms s according to the style. Unknown styles are treated
// as CaseLower, mirroring ParseCaseStyle.
func applyCase(s string, style CaseStyle) string {
	switch style {
	case CaseTitle:
		return titleCaser.String(s)
	case CaseSentence:
		return sentenceCase(s)
	case CaseUpper:
		return upperCaser.String(s)
	default:
		return lowerCaser.String(s)
	}
}

func sentenceCase(s string) string {
	lowered := lowerCaser.String(s)
	for i, r := range lowered {
		return string(unicode.ToUpper(r)) + lowered[i+len(string(r)):]
	}
	return lowered
}
