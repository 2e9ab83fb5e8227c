package kstem

// derivationalPipeline is the fixed-order list of derivational-ending
// handlers applied after inflectional rewriting. The order encodes real
// dependencies (spec §4.4): -ity before -al, -ness before -ly and -ive,
// -ion and -er and -ly before -ize, and -ncy before -nce (since -ncy can
// rewrite to -nce).
var derivationalPipeline = []func(*stemCtx){
	(*stemCtx).ityEndings,
	(*stemCtx).nessEndings,
	(*stemCtx).ionEndings,
	(*stemCtx).erOrEndings,
	(*stemCtx).lyEndings,
	(*stemCtx).alEndings,
	(*stemCtx).iveEndings,
	(*stemCtx).izeEndings,
	(*stemCtx).mentEndings,
	(*stemCtx).bleEndings,
	(*stemCtx).ismEndings,
	(*stemCtx).icEndings,
	(*stemCtx).ncyEndings,
	(*stemCtx).nceEndings,
}

// ionEndings handles -ion, -ition, -ation, -ization, and -ication. The
// -ization ending is always accepted as -ize.
func (s *stemCtx) ionEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if s.endsIn("ization") {
		// -ize is very productive, so simply accept it as the root
		s.buf[s.j+3] = 'e'
		s.k = s.j + 3
		return
	}

	if s.endsIn("ition") {
		s.buf[s.j+1] = 'e'
		s.k = s.j + 1
		// remove -ition and add "e" (definition -> define, opposition -> oppose)
		if s.inDict() {
			return
		}
		s.buf[s.j+1] = 'i'
		s.buf[s.j+2] = 't'
		s.k = oldK
	}

	if s.endsIn("ation") {
		s.buf[s.j+3] = 'e'
		s.k = s.j + 3
		// remove -ion and add "e" (elimination -> eliminate)
		if s.inDict() {
			return
		}

		s.buf[s.j+1] = 'e' // remove -ation and add "e" (allegation -> allege)
		s.k = s.j + 1
		if s.inDict() {
			return
		}

		s.k = s.j // just remove -ation (resignation -> resign)
		if s.inDict() {
			return
		}

		// restore original values
		s.buf[s.j+1] = 'a'
		s.buf[s.j+2] = 't'
		s.buf[s.j+3] = 'i'
		s.buf[s.j+4] = 'o'
		s.k = oldK
	}

	// test -ication after -ation is attempted (complication -> complicate
	// rather than complication -> comply)
	if s.endsIn("ication") {
		s.buf[s.j+1] = 'y'
		s.k = s.j + 1
		// remove -ication and add "y" (amplification -> amplify)
		if s.inDict() {
			return
		}
		s.buf[s.j+1] = 'i'
		s.buf[s.j+2] = 'c'
		s.k = oldK
	}

	if s.endsIn("ion") {
		s.buf[s.j+1] = 'e'
		s.k = s.j + 1
		// remove -ion and add "e"
		if s.inDict() {
			return
		}

		s.k = s.j
		// remove -ion, and if found, treat that as the root
		if s.inDict() {
			return
		}

		// restore original values
		s.buf[s.j+1] = 'i'
		s.buf[s.j+2] = 'o'
		s.k = oldK
	}
}

// erOrEndings handles -er, -or, -ier, and -eer. The -izer ending is
// always accepted as -ize.
func (s *stemCtx) erOrEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if s.endsIn("izer") {
		// -ize is very productive, so accept it as the root
		s.k = s.j + 3
		return
	}

	if s.endsIn("er") || s.endsIn("or") {
		wordChar := s.buf[s.j+1] // remember whether it was -er or -or

		if s.doubleConsonant(s.j) {
			s.k = s.j - 1
			if s.inDict() {
				return
			}
			s.buf[s.j] = s.buf[s.j-1] // restore the doubled consonant
		}

		if s.buf[s.j] == 'i' { // do we have a -ier ending?
			orig := s.buf[s.j]
			s.buf[s.j] = 'y'
			s.k = s.j
			if s.inDict() { // yes, so check against the dictionary
				return
			}
			s.buf[s.j] = orig // restore the endings
			s.buf[s.j+1] = 'e'
		}

		if s.buf[s.j] == 'e' { // handle -eer
			orig := s.buf[s.j]
			s.k = s.j - 1
			if s.inDict() {
				return
			}
			s.buf[s.j] = orig
		}

		s.k = s.j + 1 // remove the -r ending
		if s.inDict() {
			return
		}
		s.k = s.j // try removing -er/-or
		if s.inDict() {
			return
		}
		s.buf[s.j+1] = 'e' // try removing -or and adding -e
		s.k = s.j + 1
		if s.inDict() {
			return
		}

		// restore the word to the way it was
		s.buf[s.j+1] = wordChar
		s.buf[s.j+2] = 'r'
		s.k = oldK
	}
}

// lyEndings handles -ly endings. The -ally ending is always converted
// to -al, which may temporarily leave a non-word (heuristically ->
// heuristical) that alEndings resolves on the next pass.
func (s *stemCtx) lyEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("ly") {
		return
	}

	s.buf[s.j+2] = 'e' // try converting -ly to -le
	if s.inDict() {
		return
	}
	s.buf[s.j+2] = 'y'

	s.k = s.j // try just removing the -ly
	if s.inDict() {
		return
	}
	if s.buf[s.j-1] == 'a' && s.buf[s.j] == 'l' { // always convert -ally to -al
		return
	}
	s.k = oldK

	if s.buf[s.j-1] == 'a' && s.buf[s.j] == 'b' { // always convert -ably to -able
		s.buf[s.j+2] = 'e'
		s.k = s.j + 2
		return
	}

	if s.buf[s.j] == 'i' { // e.g. militarily -> military
		orig := s.buf[s.j]
		s.buf[s.j] = 'y'
		s.k = s.j
		if s.inDict() {
			return
		}
		s.buf[s.j] = orig
		s.buf[s.j+1] = 'l'
		s.k = oldK
	}

	s.k = s.j // the default is to remove -ly
}

// alEndings handles -al endings, including some left unfinished by
// lyEndings.
func (s *stemCtx) alEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("al") {
		return
	}

	s.k = s.j
	if s.inDict() { // try just removing the -al
		return
	}

	if s.doubleConsonant(s.j) { // allow for a doubled consonant
		s.k = s.j - 1
		if s.inDict() {
			return
		}
		s.buf[s.j] = s.buf[s.j-1]
	}

	s.buf[s.j+1] = 'e' // try removing the -al and adding -e
	s.k = s.j + 1
	if s.inDict() {
		return
	}

	s.buf[s.j+1] = 'u' // try converting -al to -um (optimal -> optimum)
	s.buf[s.j+2] = 'm'
	s.k = s.j + 2
	if s.inDict() {
		return
	}

	// restore the ending to the way it was
	s.buf[s.j+1] = 'a'
	s.buf[s.j+2] = 'l'
	s.k = oldK

	if s.buf[s.j-1] == 'i' && s.buf[s.j] == 'c' {
		s.k = s.j - 2 // try removing -ical
		if s.inDict() {
			return
		}

		s.buf[s.j-1] = 'y' // try turning -ical to -y (bibliographical)
		s.k = s.j - 1
		if s.inDict() {
			return
		}

		s.buf[s.j-1] = 'i'
		s.buf[s.j] = 'c'
		s.k = s.j // the default is to convert -ical to -ic
		return
	}

	if s.buf[s.j] == 'i' { // sometimes -ial endings should be removed
		orig := s.buf[s.j]
		s.k = s.j - 1
		if s.inDict() {
			return
		}
		s.buf[s.j] = orig
		s.k = oldK
	}
}

// iveEndings handles -ive endings. It normalizes some -ative endings
// directly, and maps some -ive endings to -ion.
func (s *stemCtx) iveEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("ive") {
		return
	}

	s.k = s.j // try removing -ive entirely
	if s.inDict() {
		return
	}

	s.buf[s.j+1] = 'e' // try removing -ive and adding -e
	s.k = s.j + 1
	if s.inDict() {
		return
	}
	s.buf[s.j+1] = 'i'
	s.buf[s.j+2] = 'v'

	if s.buf[s.j-1] == 'a' && s.buf[s.j] == 't' {
		s.buf[s.j-1] = 'e' // try removing -ative and adding -e (determinative -> determine)
		s.k = s.j - 1
		if s.inDict() {
			return
		}
		s.k = s.j - 2 // try just removing -ative
		if s.inDict() {
			return
		}
		s.buf[s.j-1] = 'a'
		s.buf[s.j] = 't'
		s.k = oldK
	}

	// try mapping -ive to -ion (injunctive/injunction)
	s.buf[s.j+2] = 'o'
	s.buf[s.j+3] = 'n'
	s.k = s.j + 3
	if s.inDict() {
		return
	}

	s.buf[s.j+2] = 'v' // restore the original values
	s.buf[s.j+3] = 'e'
	s.k = oldK
}

// izeEndings handles -ize endings.
func (s *stemCtx) izeEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("ize") {
		return
	}

	s.k = s.j // try removing -ize entirely
	if s.inDict() {
		return
	}
	s.buf[s.j+1] = 'i'

	if s.doubleConsonant(s.j) { // allow for a doubled consonant
		s.k = s.j - 1
		if s.inDict() {
			return
		}
		s.buf[s.j] = s.buf[s.j-1]
	}

	s.buf[s.j+1] = 'e' // try removing -ize and adding -e
	s.k = s.j + 1
	if s.inDict() {
		return
	}
	s.buf[s.j+1] = 'i'
	s.buf[s.j+2] = 'z'
	s.k = oldK
}

// mentEndings handles -ment endings.
func (s *stemCtx) mentEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("ment") {
		return
	}

	s.k = s.j
	if s.inDict() {
		return
	}
	s.buf[s.j+1] = 'm'
	s.k = oldK
}

// ityEndings handles -ity endings. It accepts -ability, -ibility, and
// -ality even without a dictionary check because they are so
// productive: the first two map to -ble, and -ity is simply removed
// from the last.
func (s *stemCtx) ityEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("ity") {
		return
	}

	s.k = s.j // try just removing -ity
	if s.inDict() {
		return
	}
	s.buf[s.j+1] = 'e' // try removing -ity and adding -e
	s.k = s.j + 1
	if s.inDict() {
		return
	}
	s.buf[s.j+1] = 'i'
	s.buf[s.j+2] = 't'
	s.k = oldK

	// the -ability and -ibility endings are highly productive, so just
	// accept them
	if s.buf[s.j-1] == 'i' && s.buf[s.j] == 'l' {
		s.buf[s.j-1] = 'l' // convert to -ble
		s.buf[s.j] = 'e'
		s.k = s.j
		return
	}

	// ditto for -ivity
	if s.buf[s.j-1] == 'i' && s.buf[s.j] == 'v' {
		s.buf[s.j+1] = 'e' // convert to -ive
		s.k = s.j + 1
		return
	}

	// ditto for -ality
	if s.buf[s.j-1] == 'a' && s.buf[s.j] == 'l' {
		s.k = s.j
		return
	}

	// if the root isn't in the dictionary, and the variant *is* there,
	// use the variant. This allows "immunity" -> "immune", but prevents
	// "capacity" -> "capac". If neither form is in the dictionary, the
	// ending is removed as a default.
	if s.inDict() {
		return
	}

	s.k = s.j // the default is to remove -ity altogether
}

// bleEndings handles -able and -ible.
func (s *stemCtx) bleEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("ble") {
		return
	}

	if !(s.buf[s.j] == 'i' || s.buf[s.j] == 'a') {
		return
	}

	wordChar := s.buf[s.j]
	s.k = s.j - 1 // try just removing the ending
	if s.inDict() {
		return
	}
	if s.doubleConsonant(s.k) { // allow for a doubled consonant
		s.k--
		if s.inDict() {
			return
		}
		s.k++
		s.buf[s.k] = s.buf[s.k-1]
	}
	s.buf[s.j] = 'e' // try removing -a/ible and adding -e
	s.k = s.j
	if s.inDict() {
		return
	}

	s.buf[s.j] = 'a' // try removing -able and adding -ate (compensable/compensate)
	s.buf[s.j+1] = 't'
	s.buf[s.j+2] = 'e'
	s.k = s.j + 2
	if s.inDict() {
		return
	}

	// restore the original values
	s.buf[s.j] = wordChar
	s.buf[s.j+1] = 'b'
	s.buf[s.j+2] = 'l'
	s.buf[s.j+3] = 'e'
	s.k = oldK
}

// nessEndings handles -ness, a very productive ending that is accepted
// without a dictionary check.
func (s *stemCtx) nessEndings() {
	if s.inDict() {
		return
	}

	if !s.endsIn("ness") {
		return
	}

	s.k = s.j
	if s.buf[s.j] == 'i' {
		s.buf[s.j] = 'y'
	}
}

// ismEndings handles -ism, a very productive ending that is accepted
// without a dictionary check.
func (s *stemCtx) ismEndings() {
	if s.inDict() {
		return
	}

	if !s.endsIn("ism") {
		return
	}

	s.k = s.j
}

// icEndings handles -ic endings. This is the only handler that
// *expands* an ending (-ic -> -ical), to handle cases like "canonic" ->
// "canonical".
func (s *stemCtx) icEndings() {
	if s.inDict() {
		return
	}

	if !s.endsIn("ic") {
		return
	}

	s.buf[s.j+3] = 'a' // try converting -ic to -ical
	s.buf[s.j+4] = 'l'
	s.k = s.j + 4
	if s.inDict() {
		return
	}

	s.buf[s.j+1] = 'y' // try converting -ic to -y
	s.k = s.j + 1
	if s.inDict() {
		return
	}

	s.buf[s.j+1] = 'e' // try converting -ic to -e
	if s.inDict() {
		return
	}

	s.k = s.j // try removing -ic altogether
	if s.inDict() {
		return
	}

	// restore the original ending
	s.buf[s.j+1] = 'i'
	s.buf[s.j+2] = 'c'
	s.k = s.j + 2
}

// ncyEndings handles -ency and -ancy.
func (s *stemCtx) ncyEndings() {
	if s.inDict() {
		return
	}

	if !s.endsIn("ncy") {
		return
	}

	if !(s.buf[s.j] == 'e' || s.buf[s.j] == 'a') {
		return
	}

	s.buf[s.j+2] = 't' // try converting -ncy to -nt (constituency -> constituent)
	s.k = s.j + 2
	if s.inDict() {
		return
	}

	s.buf[s.j+2] = 'c' // the default is to convert it to -nce
	s.buf[s.j+3] = 'e'
	s.k = s.j + 3
}

// nceEndings handles -ence and -ance.
func (s *stemCtx) nceEndings() {
	oldK := s.k

	if s.inDict() {
		return
	}

	if !s.endsIn("nce") {
		return
	}

	if !(s.buf[s.j] == 'e' || s.buf[s.j] == 'a') {
		return
	}

	wordChar := s.buf[s.j]
	s.buf[s.j] = 'e' // try converting -e/ance to -e (adherance/adhere)
	s.k = s.j
	if s.inDict() {
		return
	}
	s.k = s.j - 1 // try removing -e/ance altogether (disappearance/disappear)
	if s.inDict() {
		return
	}
	s.buf[s.j] = wordChar // restore the original ending
	s.buf[s.j+1] = 'n'
	s.k = oldK
}
