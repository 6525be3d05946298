package filename

import (
	"strings"
)

// unsafeChars are characters rejected by at least one mainstream filesystem.
// The set is deliberately conservative so generated names stay portable.
const unsafeChars = `<>:"/\|?*`

// reservedNames are Windows device names that cannot be used as a base file
// name regardless of extension.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// Normalize applies the case style and strips characters that are unsafe in
// file names (the unsafeChars set plus control characters). It is pure and
// total: any input yields a usable, possibly empty, string.
func Normalize(name string, style CaseStyle) string {
	styled := applyCase(name, style)

	var b strings.Builder
	b.Grow(len(styled))
	for _, r := range styled {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(unsafeChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate reports whether name+ext is acceptable as a portable file name.
// It returns nil, or exactly one of ErrReservedName, ErrNameTooLong,
// ErrInvalidCharacters, ErrInvalidEdges. This is the single gate every
// generated candidate must pass.
func Validate(name, ext string, maxLength int) error {
	if _, ok := reservedNames[strings.ToUpper(name)]; ok {
		return ErrReservedName
	}

	if maxLength > 0 && len(name)+len(ext) > maxLength {
		return ErrNameTooLong
	}

	if strings.ContainsAny(name, unsafeChars) || hasControlChars(name) {
		return ErrInvalidCharacters
	}

	if name != strings.TrimSpace(name) || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return ErrInvalidEdges
	}

	return nil
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
