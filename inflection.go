package kstem

// plural converts plural nouns to singular form, and "-ies" to "y".
// Ported from the reference implementation's plural(). Where the
// reference writes a NUL terminator to truncate the C string, this
// version simply adjusts k, since word() always reads buf[:k+1].
func (s *stemCtx) plural() {
	if s.inDict() {
		return
	}

	if s.finalC() != 's' {
		return
	}

	switch {
	case s.endsIn("ies"):
		s.k--
		if s.inDict() {
			// ensure calories -> calorie
			return
		}
		s.k++
		s.setSuffix("y")

	case s.endsIn("es"):
		// try just removing the "s"
		s.k--
		// note: don't check for exceptions here. So, "aides" -> "aide",
		// but "aided" -> "aid". The exception for double s is used to
		// prevent "crosses" -> "crosse". This is actually correct if
		// crosses is a plural noun (a type of racket used in lacrosse),
		// but the verb is much more common.
		if s.inDict() && !(s.buf[s.j] == 's' && s.buf[s.j-1] == 's') {
			return
		}

		// try removing the "es"
		s.k--
		if s.inDict() {
			return
		}

		// the default is to retain the "e"
		s.buf[s.j+1] = 'e'
		s.k = s.j + 1

	default:
		if !s.endsIn("ous") && s.penultC() != 's' && s.wordLength() > 3 {
			// unless the word ends in "ous" or a double "s", remove the
			// final "s"
			s.k--
		}
	}
}

// pastTense converts past tense ("-ed") to present tense, and "-ied" to
// "y". Ported from the reference implementation's past_tense().
func (s *stemCtx) pastTense() {
	if s.inDict() {
		return
	}

	// Handle words shorter than 5 letters with a direct mapping. This
	// prevents "fled" -> "fl".
	if s.wordLength() <= 4 {
		return
	}

	if s.endsIn("ied") {
		s.k--
		if s.inDict() {
			// we almost always want to convert -ied to -y, but this
			// isn't true for short words (died -> die); no long words
			// are known to be exceptions
			return
		}
		s.k++
		s.setSuffix("y")
		return
	}

	// vowelInStem is necessary so we don't stem acronyms
	if s.endsIn("ed") && s.vowelInStem() {
		// see if the root ends in "e"
		s.k = s.j + 1

		entry, found := s.lex.lookup(s.word())
		if found && !entry.EException {
			return
		}

		// try removing the "ed"
		s.k = s.j
		if s.inDict() {
			return
		}

		// try removing a doubled consonant. if the root isn't found in
		// the dictionary, the default is to leave it doubled. This
		// correctly captures "backfilled" -> "backfill" instead of
		// "backfill" -> "backfille", and seems correct most of the time.
		if s.doubleConsonant(s.k) {
			s.k--
			if s.inDict() {
				return
			}
			s.buf[s.k+1] = s.buf[s.k]
			s.k++
			return
		}

		// if we have a "un-" prefix, leave the word alone (this will
		// sometimes screw up with "under-", but that's handled later)
		if s.buf[0] == 'u' && s.buf[1] == 'n' {
			s.buf[s.k+1] = 'e'
			s.buf[s.k+2] = 'd'
			s.k += 2
			return
		}

		// it wasn't found by just removing the "d" or the "ed", so
		// prefer to end with an "e" (e.g. "microcoded" -> "microcode")
		s.buf[s.j+1] = 'e'
		s.k = s.j + 1
		return
	}
}

// aspect handles "-ing" endings. Ported from the reference
// implementation's aspect().
func (s *stemCtx) aspect() {
	if s.inDict() {
		return
	}

	// handle short words (aging -> age) via a direct mapping. This
	// prevents "thing" -> "the".
	if s.wordLength() <= 5 {
		return
	}

	// vowelInStem is necessary so we don't stem acronyms
	if !(s.endsIn("ing") && s.vowelInStem()) {
		return
	}

	// try adding an "e" to the stem and check against the dictionary
	s.buf[s.j+1] = 'e'
	s.k = s.j + 1

	entry, found := s.lex.lookup(s.word())
	if found && !entry.EException {
		return
	}

	// adding on the "e" didn't work, so remove it
	s.k--
	if s.inDict() {
		return
	}

	// if removing a doubled consonant gets us a word, do so
	if s.doubleConsonant(s.k) {
		s.k--
		if s.inDict() {
			return
		}
		// restore the doubled consonant; the default is to leave it
		// doubled (e.g. "fingerspelling" -> "fingerspell", even though
		// this incorrectly yields "booksell" and "mislabell" for some
		// inputs)
		s.k++
		return
	}

	// the word wasn't in the dictionary after checking with and without
	// a final "e". The default is to add an "e" unless the word ends in
	// two consonants, so "microcoding" -> "microcode". The restriction
	// to two consonants isn't generally necessary, but compensates for
	// not handling prefixes and compounds (footstamping -> footstamp,
	// not footstampe; but decoupled -> decoupl).
	if s.consonant(s.j) && s.consonant(s.j-1) {
		s.k = s.j
		return
	}

	s.buf[s.j+1] = 'e'
	s.k = s.j + 1
}
