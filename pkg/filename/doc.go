// Package filename normalizes and validates generated file names against a
// conservative, portable baseline.
//
// Normalize applies one of four case styles (title, sentence, lower, upper;
// the legacy kebab and snake styles alias to lower at the parsing boundary)
// and strips characters that are unsafe on mainstream filesystems. Validate
// is the single gate a candidate name must pass before it can be returned to
// a caller: it rejects Windows-reserved device names, over-long names,
// unsafe characters, and leading/trailing whitespace or dots.
package filename
