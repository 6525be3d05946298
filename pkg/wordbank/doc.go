// Package wordbank models named collections of adjectives and nouns and
// resolves which words are eligible for a name-generation request.
//
// A Bank carries a part of speech, a locale, a theme, and an NSFW flag. Banks
// can be defined in YAML files (LoadFile, LoadDir) or taken from the built-in
// English lists (Builtin).
//
// # Resolution
//
// Resolve supports two filtering modes. In preset-filtered mode the supplied
// banks are the full universe and only banks whose id appears in the preset's
// allowed lists contribute words. In pre-filtered mode the caller has already
// narrowed the banks (for example to one theme) and every supplied word is
// used. ModeAuto picks between them per part of speech: a proper, non-empty
// subset of the allowed ids signals that the caller narrowed deliberately.
// Callers that know which behavior they want should pass the explicit mode.
//
// Resolver adds LRU memoization on top of Resolve for batch runs that resolve
// the same preset repeatedly.
package wordbank
