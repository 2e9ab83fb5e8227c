// Package kstem implements the Krovetz dictionary-backed morphological
// stemmer: it maps an English surface word to a canonical root form by
// applying inflectional and derivational rewrite rules, consulting a
// lexicon at every step to prefer dictionary-validated candidates over
// blind suffix stripping.
//
// A Stemmer is built once from a directory of six lexicon files via New,
// and its Stem method is safe for concurrent use by multiple goroutines
// once constructed — the lexicon is read-only after New returns, and
// each call to Stem works against its own local buffer.
//
// kstem is not a statistical or learned stemmer, does no part-of-speech
// tagging, is ASCII-only, and does not decompose compounds or prefixes.
package kstem
