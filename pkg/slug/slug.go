package slug

import (
	"strings"
	"unicode"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	separator string
	maxLength int
	lowercase bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		maxLength: 0, // no limit
		lowercase: true,
	}
}

// Separator sets the string that replaces runs of non-alphanumeric
// characters. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// MaxLength truncates the slug to at most n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Lowercase controls case folding. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Make normalizes s into a slug: ASCII letters and digits pass through,
// common Latin diacritics fold to their ASCII base, and every other run of
// characters collapses to a single separator. The result never starts or ends
// with a separator. Slugs are the canonical key form for uniqueness checks,
// so two names that differ only in case, punctuation, or accents map to the
// same slug.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	written := 0

	for _, r := range s {
		if cfg.maxLength > 0 && written >= cfg.maxLength {
			break
		}

		if folded, ok := diacritics[r]; ok {
			r = folded
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}

		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			if pendingSep && written > 0 {
				if cfg.maxLength > 0 && written+len([]rune(cfg.separator))+1 > cfg.maxLength {
					break
				}
				b.WriteString(cfg.separator)
				written += len([]rune(cfg.separator))
			}
			pendingSep = false
			b.WriteRune(r)
			written++
			continue
		}

		// Everything else becomes a separator, deferred so runs collapse and
		// trailing separators never materialize.
		pendingSep = true
	}

	return b.String()
}

// diacritics maps common Latin accented runes to their ASCII base. The table
// covers the major European languages, not the full Unicode range.
var diacritics = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a', 'ą': 'a',
	'ç': 'c', 'ć': 'c', 'č': 'c',
	'ď': 'd', 'đ': 'd',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i',
	'ł': 'l',
	'ñ': 'n', 'ń': 'n', 'ň': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o', 'ő': 'o',
	'ř': 'r',
	'ś': 's', 'š': 's', 'ș': 's', 'ß': 's',
	'ť': 't', 'ț': 't',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u', 'ű': 'u', 'ų': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ź': 'z', 'ż': 'z', 'ž': 'z',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A', 'Ā': 'A', 'Ą': 'A',
	'Ç': 'C', 'Ć': 'C', 'Č': 'C',
	'Ď': 'D', 'Đ': 'D',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E', 'Ē': 'E', 'Ė': 'E', 'Ę': 'E', 'Ě': 'E',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I', 'Ī': 'I', 'Į': 'I',
	'Ł': 'L',
	'Ñ': 'N', 'Ń': 'N', 'Ň': 'N',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O', 'Ō': 'O', 'Ő': 'O',
	'Ř': 'R',
	'Ś': 'S', 'Š': 'S', 'Ș': 'S',
	'Ť': 'T', 'Ț': 'T',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U', 'Ū': 'U', 'Ů': 'U', 'Ű': 'U', 'Ų': 'U',
	'Ý': 'Y',
	'Ź': 'Z', 'Ż': 'Z', 'Ž': 'Z',
}
