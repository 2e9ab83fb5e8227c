package kstem

import (
	"errors"
	"fmt"
)

// Sentinel errors for the lexicon-loading failure modes described in
// spec §7. Callers can compare against these with errors.Is; *LexiconError
// additionally carries the file and word that triggered the failure.
var (
	// ErrLexiconOpen is returned when a required lexicon file is missing
	// or unreadable.
	ErrLexiconOpen = errors.New("kstem: could not open lexicon file")

	// ErrLexiconDuplicate is returned when a word appears twice across
	// the lexicon sources in violation of its source's duplicate policy.
	ErrLexiconDuplicate = errors.New("kstem: duplicate lexicon entry")

	// ErrLexiconCrossRef is returned when an e-exception word is not
	// present in the main or supplemental dictionary.
	ErrLexiconCrossRef = errors.New("kstem: e-exception word not found in dictionary")

	// ErrConfigMissing is returned when the lexicon directory is not
	// supplied, or exceeds the fixed path-length limit (100 bytes).
	ErrConfigMissing = errors.New("kstem: lexicon directory not supplied or too long")
)

// LexiconError reports a lexicon-loading failure, naming the offending
// file and (where applicable) word, per spec §4.1 and §7: "Errors are
// fatal; the loader aborts with a diagnostic naming the offending word
// and file."
type LexiconError struct {
	File string // path of the lexicon file being processed
	Word string // the offending word, empty if not word-specific
	Err  error  // one of the Err* sentinels above
}

func (e *LexiconError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Err)
	}
	return fmt.Sprintf("%s: %q: %s", e.File, e.Word, e.Err)
}

func (e *LexiconError) Unwrap() error {
	return e.Err
}
