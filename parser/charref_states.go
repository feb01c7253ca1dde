package parser

// Named references are matched by narrowing [charRefLo, charRefHi] over
// the sorted charRefs one character at a time. charRefCandidate is the
// longest name seen so far and charRefMark the length of charRefBuf when
// it matched; characters after the mark are flushed back as text.

func (t *Tokenizer) characterReferenceStateParser(c rune, eof bool) (bool, State) {
	t.charRefBuf = append(t.charRefBuf[:0], '&')
	switch {
	case eof:
	case isASCIIAlpha(c):
		t.charRefBuf = append(t.charRefBuf, c)
		return false, namedCharacterReferenceState
	case isASCIIDigit(c):
		t.flushCharRefBuf()
		return true, ambiguousAmpersandState
	case c == '#':
		t.charRefBuf = append(t.charRefBuf, c)
		t.charRefCode = 0
		return false, numericCharacterReferenceState
	}
	t.flushCharRefBuf()
	return true, t.returnState
}

// namedCharacterReferenceStateParser consumes the second letter of a name.
// Every name starts with two letters, which index charRefRanges.
func (t *Tokenizer) namedCharacterReferenceStateParser(c rune, eof bool) (bool, State) {
	if !eof && isASCIIAlpha(c) {
		r := charRefRanges[letterIndex(t.charRefBuf[1])*52+letterIndex(c)]
		if r[0] <= r[1] {
			t.charRefBuf = append(t.charRefBuf, c)
			t.charRefLo = int(r[0])
			t.charRefHi = int(r[1])
			t.charRefCandidate = -1
			t.charRefMark = 0
			return false, namedCharacterReferenceTailState
		}
	}
	t.flushCharRefBuf()
	return true, ambiguousAmpersandState
}

func (t *Tokenizer) namedCharacterReferenceTailStateParser(c rune, eof bool) (bool, State) {
	k := len(t.charRefBuf) - 1
	if t.charRefLo <= t.charRefHi && len(charRefs[t.charRefLo].name) == k {
		t.charRefCandidate = t.charRefLo
		t.charRefMark = len(t.charRefBuf)
		t.charRefLo++
	}
	if eof {
		return t.namedCharacterReferenceEnd(c, eof, true)
	}
	for t.charRefLo <= t.charRefHi && rune(charRefs[t.charRefLo].name[k]) < c {
		t.charRefLo++
	}
	for t.charRefHi >= t.charRefLo && rune(charRefs[t.charRefHi].name[k]) > c {
		t.charRefHi--
	}
	if t.charRefLo > t.charRefHi {
		return t.namedCharacterReferenceEnd(c, eof, true)
	}
	t.charRefBuf = append(t.charRefBuf, c)
	if c == ';' {
		// only complete names end in a semicolon
		t.charRefCandidate = t.charRefLo
		t.charRefMark = len(t.charRefBuf)
		return t.namedCharacterReferenceEnd(c, eof, false)
	}
	return false, namedCharacterReferenceTailState
}

// namedCharacterReferenceEnd settles a named reference. reconsume is false
// only when the terminating semicolon was consumed.
func (t *Tokenizer) namedCharacterReferenceEnd(c rune, eof, reconsume bool) (bool, State) {
	if t.charRefCandidate < 0 {
		t.flushCharRefBuf()
		return reconsume, ambiguousAmpersandState
	}
	ref := &charRefs[t.charRefCandidate]
	semicolon := ref.name[len(ref.name)-1] == ';'
	if !semicolon && t.returnState.isAttributeValue() {
		var next rune
		hasNext := true
		switch {
		case t.charRefMark < len(t.charRefBuf):
			next = t.charRefBuf[t.charRefMark]
		case eof:
			hasNext = false
		default:
			next = c
		}
		if hasNext && (next == '=' || isASCIIAlphanumeric(next)) {
			t.flushCharRefBuf()
			return reconsume, t.returnState
		}
	}
	if !semicolon {
		t.parseError(ErrMissingSemicolonAfterCharacterReference, "")
	}
	t.emitOrAppend(ref.value)
	if t.charRefMark < len(t.charRefBuf) {
		t.emitOrAppend(t.charRefBuf[t.charRefMark:])
	}
	t.charRefBuf = t.charRefBuf[:0]
	return reconsume, t.returnState
}

func (t *Tokenizer) ambiguousAmpersandStateParser(c rune, eof bool) (bool, State) {
	switch {
	case eof:
	case isASCIIAlphanumeric(c):
		if t.returnState.isAttributeValue() {
			t.appendStrBuf(c)
		} else {
			t.extendRun()
		}
		return false, ambiguousAmpersandState
	case c == ';':
		t.parseError(ErrUnknownNamedCharacterReference, "")
	}
	return true, t.returnState
}

func (t *Tokenizer) numericCharacterReferenceStateParser(c rune, eof bool) (bool, State) {
	if !eof && (c == 'x' || c == 'X') {
		t.charRefBuf = append(t.charRefBuf, c)
		return false, hexadecimalCharacterReferenceStartState
	}
	return true, decimalCharacterReferenceStartState
}

func (t *Tokenizer) hexadecimalCharacterReferenceStartStateParser(c rune, eof bool) (bool, State) {
	if !eof && isASCIIHexDigit(c) {
		return true, hexadecimalCharacterReferenceState
	}
	t.parseError(ErrAbsenceOfDigitsInNumericCharacterRef, "")
	t.flushCharRefBuf()
	return true, t.returnState
}

func (t *Tokenizer) decimalCharacterReferenceStartStateParser(c rune, eof bool) (bool, State) {
	if !eof && isASCIIDigit(c) {
		return true, decimalCharacterReferenceState
	}
	t.parseError(ErrAbsenceOfDigitsInNumericCharacterRef, "")
	t.flushCharRefBuf()
	return true, t.returnState
}

func (t *Tokenizer) hexadecimalCharacterReferenceStateParser(c rune, eof bool) (bool, State) {
	if !eof {
		switch {
		case isASCIIDigit(c):
			t.addCharRefDigit(16, int(c-'0'))
			return false, hexadecimalCharacterReferenceState
		case c >= 'a' && c <= 'f':
			t.addCharRefDigit(16, int(c-'a')+10)
			return false, hexadecimalCharacterReferenceState
		case c >= 'A' && c <= 'F':
			t.addCharRefDigit(16, int(c-'A')+10)
			return false, hexadecimalCharacterReferenceState
		case c == ';':
			t.numericCharacterReferenceEnd()
			return false, t.returnState
		}
	}
	t.parseError(ErrMissingSemicolonAfterCharacterReference, "")
	t.numericCharacterReferenceEnd()
	return true, t.returnState
}

func (t *Tokenizer) decimalCharacterReferenceStateParser(c rune, eof bool) (bool, State) {
	if !eof {
		switch {
		case isASCIIDigit(c):
			t.addCharRefDigit(10, int(c-'0'))
			return false, decimalCharacterReferenceState
		case c == ';':
			t.numericCharacterReferenceEnd()
			return false, t.returnState
		}
	}
	t.parseError(ErrMissingSemicolonAfterCharacterReference, "")
	t.numericCharacterReferenceEnd()
	return true, t.returnState
}

// addCharRefDigit accumulates a digit, saturating just above the Unicode
// range so long references cannot overflow.
func (t *Tokenizer) addCharRefDigit(base, digit int) {
	if t.charRefCode > 0x10FFFF {
		return
	}
	t.charRefCode = t.charRefCode*base + digit
}

func (t *Tokenizer) numericCharacterReferenceEnd() {
	r, code := resolveNumericReference(t.charRefCode)
	if code != "" {
		t.parseError(code, "")
	}
	t.charRefBuf = append(t.charRefBuf[:0], r)
	t.emitOrAppend(t.charRefBuf)
	t.charRefBuf = t.charRefBuf[:0]
}

// flushCharRefBuf gives back the characters consumed while looking for a
// reference.
func (t *Tokenizer) flushCharRefBuf() {
	t.emitOrAppend(t.charRefBuf)
	t.charRefBuf = t.charRefBuf[:0]
}
