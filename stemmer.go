package kstem

// maxWordLength is the longest surface word the stemmer will attempt to
// reduce (spec §6). Longer inputs, and inputs containing any non-ASCII-
// alphabetic byte, are returned unchanged except for lowercasing.
const maxWordLength = 25

// Stemmer reduces English surface words to a canonical root form using
// a lexicon loaded once via New. A *Stemmer is safe for concurrent use:
// its lexicon is read-only after construction, and each Stem call works
// against a buffer local to that call.
type Stemmer struct {
	lex *Lexicon
}

// Stem returns the stem of term. If term is empty, longer than
// maxWordLength, or contains any byte that is not an
// ASCII letter, term is returned lowercased and otherwise unchanged
// (spec §4 edge cases: "ABC" -> "abc", non-alphabetic input passes
// through).
//
// Stem panics if called on a zero-value Stemmer; every Stemmer obtained
// from New is ready to use.
func (st *Stemmer) Stem(term string) string {
	if st == nil || st.lex == nil {
		panic("kstem: Stem called before successful initialization via New")
	}

	if term == "" || len(term) > maxWordLength {
		return lowerASCII(term)
	}
	for i := 0; i < len(term); i++ {
		if !isASCIIAlpha(term[i]) {
			return lowerASCII(term)
		}
	}

	ctx := newStemCtx(st.lex, term)

	// try for a direct mapping first (Italian -> Italy)
	if root, ok := ctx.directMap(); ok {
		return root
	}

	ctx.plural()
	ctx.pastTense()
	ctx.aspect()

	// try again for a direct mapping (Italians -> Italy)
	if root, ok := ctx.directMap(); ok {
		return root
	}

	for _, handler := range derivationalPipeline {
		handler(ctx)
	}

	// for the last time, try for a direct mapping
	if root, ok := ctx.directMap(); ok {
		return root
	}

	return ctx.word()
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = toLowerASCII(c)
	}
	return string(b)
}

// Len reports the number of entries in the stemmer's loaded lexicon.
func (st *Stemmer) Len() int {
	return st.lex.Len()
}
