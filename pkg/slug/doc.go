// Package slug converts arbitrary display names into canonical slugs used as
// uniqueness keys.
//
// A slug is lowercase by default, contains only ASCII letters, digits, and
// the separator, folds common Latin diacritics to their ASCII base, and
// collapses every run of other characters into a single separator. Two names
// that differ only in case, punctuation, or accents therefore map to the same
// slug, which is exactly the equality the name ledger needs.
//
// # Usage
//
//	key := slug.Make("Bright Sky!")            // "bright-sky"
//	key = slug.Make("Café résumé")             // "cafe-resume"
//	key = slug.Make("a b", slug.Separator("_")) // "a_b"
package slug
