package kstem

// Entry is a single dictionary entry, keyed by lowercase word in a
// Lexicon. Mirrors the `dictentry` struct in public-kstem-v0.8.c.
//
//   - Root == "" means the key is its own root: a lookup hit means "this
//     is a valid word".
//   - Root != "" means the key is a variant; looking it up means "emit
//     Root as the stem" (a direct mapping, e.g. "Italian" -> "Italy").
//   - EException, only meaningful when Root == "", marks words for which
//     rules that would re-add a final "e" after stripping an inflection
//     must not accept the re-added form (e.g. "doing" must not become
//     "doe").
type Entry struct {
	EException bool
	Root       string
}

// isSelfRoot reports whether e represents "the key is a valid word on
// its own" rather than a variant mapping to a different root.
func (e Entry) isSelfRoot() bool {
	return e.Root == ""
}

// Lexicon is the associative mapping from lowercase word to dictionary
// entry that the rewrite pipeline consults at every step. Once returned
// from New, a Lexicon is read-only and safe for concurrent lookups.
type Lexicon struct {
	entries map[string]Entry
}

// lookup returns the entry for word and whether it was present.
func (l *Lexicon) lookup(word string) (Entry, bool) {
	e, ok := l.entries[word]
	return e, ok
}

// contains reports whether word is present in the lexicon at all,
// regardless of its Root or EException fields. This backs the
// "universal early-exit" every handler performs before attempting any
// rewrite (spec §4.3).
func (l *Lexicon) contains(word string) bool {
	_, ok := l.entries[word]
	return ok
}

// Len returns the number of entries loaded into the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}
