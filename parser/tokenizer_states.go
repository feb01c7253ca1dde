package parser

var stateParsers = [stateCount]parserStateHandler{
	DataState:                                     (*Tokenizer).dataStateParser,
	RCDataState:                                   (*Tokenizer).rcDataStateParser,
	RawTextState:                                  (*Tokenizer).rawTextStateParser,
	ScriptDataState:                               (*Tokenizer).scriptDataStateParser,
	PlaintextState:                                (*Tokenizer).plaintextStateParser,
	tagOpenState:                                  (*Tokenizer).tagOpenStateParser,
	endTagOpenState:                               (*Tokenizer).endTagOpenStateParser,
	tagNameState:                                  (*Tokenizer).tagNameStateParser,
	rcDataLessThanSignState:                       (*Tokenizer).rcDataLessThanSignStateParser,
	rcDataEndTagOpenState:                         (*Tokenizer).rcDataEndTagOpenStateParser,
	rcDataEndTagNameState:                         (*Tokenizer).rcDataEndTagNameStateParser,
	rawTextLessThanSignState:                      (*Tokenizer).rawTextLessThanSignStateParser,
	rawTextEndTagOpenState:                        (*Tokenizer).rawTextEndTagOpenStateParser,
	rawTextEndTagNameState:                        (*Tokenizer).rawTextEndTagNameStateParser,
	scriptDataLessThanSignState:                   (*Tokenizer).scriptDataLessThanSignStateParser,
	scriptDataEndTagOpenState:                     (*Tokenizer).scriptDataEndTagOpenStateParser,
	scriptDataEndTagNameState:                     (*Tokenizer).scriptDataEndTagNameStateParser,
	scriptDataEscapeStartState:                    (*Tokenizer).scriptDataEscapeStartStateParser,
	scriptDataEscapeStartDashState:                (*Tokenizer).scriptDataEscapeStartDashStateParser,
	scriptDataEscapedState:                        (*Tokenizer).scriptDataEscapedStateParser,
	scriptDataEscapedDashState:                    (*Tokenizer).scriptDataEscapedDashStateParser,
	scriptDataEscapedDashDashState:                (*Tokenizer).scriptDataEscapedDashDashStateParser,
	scriptDataEscapedLessThanSignState:            (*Tokenizer).scriptDataEscapedLessThanSignStateParser,
	scriptDataEscapedEndTagOpenState:              (*Tokenizer).scriptDataEscapedEndTagOpenStateParser,
	scriptDataEscapedEndTagNameState:              (*Tokenizer).scriptDataEscapedEndTagNameStateParser,
	scriptDataDoubleEscapeStartState:              (*Tokenizer).scriptDataDoubleEscapeStartStateParser,
	scriptDataDoubleEscapedState:                  (*Tokenizer).scriptDataDoubleEscapedStateParser,
	scriptDataDoubleEscapedDashState:              (*Tokenizer).scriptDataDoubleEscapedDashStateParser,
	scriptDataDoubleEscapedDashDashState:          (*Tokenizer).scriptDataDoubleEscapedDashDashStateParser,
	scriptDataDoubleEscapedLessThanSignState:      (*Tokenizer).scriptDataDoubleEscapedLessThanSignStateParser,
	scriptDataDoubleEscapeEndState:                (*Tokenizer).scriptDataDoubleEscapeEndStateParser,
	beforeAttributeNameState:                      (*Tokenizer).beforeAttributeNameStateParser,
	attributeNameState:                            (*Tokenizer).attributeNameStateParser,
	afterAttributeNameState:                       (*Tokenizer).afterAttributeNameStateParser,
	beforeAttributeValueState:                     (*Tokenizer).beforeAttributeValueStateParser,
	attributeValueDoubleQuotedState:               (*Tokenizer).attributeValueDoubleQuotedStateParser,
	attributeValueSingleQuotedState:               (*Tokenizer).attributeValueSingleQuotedStateParser,
	attributeValueUnquotedState:                   (*Tokenizer).attributeValueUnquotedStateParser,
	afterAttributeValueQuotedState:                (*Tokenizer).afterAttributeValueQuotedStateParser,
	selfClosingStartTagState:                      (*Tokenizer).selfClosingStartTagStateParser,
	bogusCommentState:                             (*Tokenizer).bogusCommentStateParser,
	markupDeclarationOpenState:                    (*Tokenizer).markupDeclarationOpenStateParser,
	markupDeclarationHyphenState:                  (*Tokenizer).markupDeclarationHyphenStateParser,
	markupDeclarationOctypeState:                  (*Tokenizer).markupDeclarationOctypeStateParser,
	cdataStartState:                               (*Tokenizer).cdataStartStateParser,
	commentStartState:                             (*Tokenizer).commentStartStateParser,
	commentStartDashState:                         (*Tokenizer).commentStartDashStateParser,
	commentState:                                  (*Tokenizer).commentStateParser,
	commentLessThanSignState:                      (*Tokenizer).commentLessThanSignStateParser,
	commentLessThanSignBangState:                  (*Tokenizer).commentLessThanSignBangStateParser,
	commentLessThanSignBangDashState:              (*Tokenizer).commentLessThanSignBangDashStateParser,
	commentLessThanSignBangDashDashState:          (*Tokenizer).commentLessThanSignBangDashDashStateParser,
	commentEndDashState:                           (*Tokenizer).commentEndDashStateParser,
	commentEndState:                               (*Tokenizer).commentEndStateParser,
	commentEndBangState:                           (*Tokenizer).commentEndBangStateParser,
	doctypeState:                                  (*Tokenizer).doctypeStateParser,
	beforeDoctypeNameState:                        (*Tokenizer).beforeDoctypeNameStateParser,
	doctypeNameState:                              (*Tokenizer).doctypeNameStateParser,
	afterDoctypeNameState:                         (*Tokenizer).afterDoctypeNameStateParser,
	doctypeUblicState:                             (*Tokenizer).doctypeUblicStateParser,
	doctypeYstemState:                             (*Tokenizer).doctypeYstemStateParser,
	afterDoctypePublicKeywordState:                (*Tokenizer).afterDoctypePublicKeywordStateParser,
	beforeDoctypePublicIdentifierState:            (*Tokenizer).beforeDoctypePublicIdentifierStateParser,
	doctypePublicIdentifierDoubleQuotedState:      (*Tokenizer).doctypePublicIdentifierDoubleQuotedStateParser,
	doctypePublicIdentifierSingleQuotedState:      (*Tokenizer).doctypePublicIdentifierSingleQuotedStateParser,
	afterDoctypePublicIdentifierState:             (*Tokenizer).afterDoctypePublicIdentifierStateParser,
	betweenDoctypePublicAndSystemIdentifiersState: (*Tokenizer).betweenDoctypePublicAndSystemIdentifiersStateParser,
	afterDoctypeSystemKeywordState:                (*Tokenizer).afterDoctypeSystemKeywordStateParser,
	beforeDoctypeSystemIdentifierState:            (*Tokenizer).beforeDoctypeSystemIdentifierStateParser,
	doctypeSystemIdentifierDoubleQuotedState:      (*Tokenizer).doctypeSystemIdentifierDoubleQuotedStateParser,
	doctypeSystemIdentifierSingleQuotedState:      (*Tokenizer).doctypeSystemIdentifierSingleQuotedStateParser,
	afterDoctypeSystemIdentifierState:             (*Tokenizer).afterDoctypeSystemIdentifierStateParser,
	bogusDoctypeState:                             (*Tokenizer).bogusDoctypeStateParser,
	CDATASectionState:                             (*Tokenizer).cdataSectionStateParser,
	cdataSectionBracketState:                      (*Tokenizer).cdataSectionBracketStateParser,
	cdataSectionEndState:                          (*Tokenizer).cdataSectionEndStateParser,
	characterReferenceState:                       (*Tokenizer).characterReferenceStateParser,
	namedCharacterReferenceState:                  (*Tokenizer).namedCharacterReferenceStateParser,
	namedCharacterReferenceTailState:              (*Tokenizer).namedCharacterReferenceTailStateParser,
	ambiguousAmpersandState:                       (*Tokenizer).ambiguousAmpersandStateParser,
	numericCharacterReferenceState:                (*Tokenizer).numericCharacterReferenceStateParser,
	hexadecimalCharacterReferenceStartState:       (*Tokenizer).hexadecimalCharacterReferenceStartStateParser,
	decimalCharacterReferenceStartState:           (*Tokenizer).decimalCharacterReferenceStartStateParser,
	hexadecimalCharacterReferenceState:            (*Tokenizer).hexadecimalCharacterReferenceStateParser,
	decimalCharacterReferenceState:                (*Tokenizer).decimalCharacterReferenceStateParser,
}

func isTagWhitespace(c rune) bool {
	switch c {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

func (t *Tokenizer) dataStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '&':
		t.flushChars()
		t.returnState = DataState
		return false, characterReferenceState
	case '<':
		t.flushChars()
		return false, tagOpenState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, DataState
	default:
		t.extendRun()
		return false, DataState
	}
}

func (t *Tokenizer) rcDataStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '&':
		t.flushChars()
		t.returnState = RCDataState
		return false, characterReferenceState
	case '<':
		t.flushChars()
		return false, rcDataLessThanSignState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, RCDataState
	default:
		t.extendRun()
		return false, RCDataState
	}
}

func (t *Tokenizer) rawTextStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '<':
		t.flushChars()
		return false, rawTextLessThanSignState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, RawTextState
	default:
		t.extendRun()
		return false, RawTextState
	}
}

func (t *Tokenizer) scriptDataStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '<':
		t.flushChars()
		return false, scriptDataLessThanSignState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, ScriptDataState
	default:
		t.extendRun()
		return false, ScriptDataState
	}
}

func (t *Tokenizer) plaintextStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '\u0000':
		t.emitReplacementCharacter()
		return false, PlaintextState
	default:
		t.extendRun()
		return false, PlaintextState
	}
}

func (t *Tokenizer) tagOpenStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFBeforeTagName, "")
		t.emitChars(ltRunes)
		t.emitEOF()
		return false, DataState
	}
	switch {
	case c == '!':
		t.clearStrBuf()
		return false, markupDeclarationOpenState
	case c == '/':
		return false, endTagOpenState
	case isASCIIAlpha(c):
		t.newTag(false)
		return true, tagNameState
	case c == '?':
		t.parseError(ErrUnexpectedQuestionMarkInsteadOfTagName, "")
		t.newComment()
		return true, bogusCommentState
	default:
		t.parseError(ErrInvalidFirstCharacterOfTagName, "")
		t.emitChars(ltRunes)
		return true, DataState
	}
}

func (t *Tokenizer) endTagOpenStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFBeforeTagName, "")
		t.emitChars(ltSolidusRunes)
		t.emitEOF()
		return false, DataState
	}
	switch {
	case isASCIIAlpha(c):
		t.newTag(true)
		return true, tagNameState
	case c == '>':
		t.parseError(ErrMissingEndTagName, "")
		return false, DataState
	default:
		t.parseError(ErrInvalidFirstCharacterOfTagName, "")
		t.newComment()
		return true, bogusCommentState
	}
}

func (t *Tokenizer) tagNameStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInTag, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.tagNameComplete()
		return false, beforeAttributeNameState
	case '/':
		t.tagNameComplete()
		return false, selfClosingStartTagState
	case '>':
		t.tagNameComplete()
		return false, t.emitCurrentTag()
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendTagName('\uFFFD')
		return false, tagNameState
	default:
		t.appendTagName(c)
		return false, tagNameState
	}
}

// lessThanSign handles the character after '<' in the RCDATA, RAWTEXT and
// script data content models.
func (t *Tokenizer) lessThanSign(c rune, eof bool, endTagOpen, fallback State) (bool, State) {
	if !eof && c == '/' {
		t.clearStrBuf()
		return false, endTagOpen
	}
	t.emitChars(ltRunes)
	return true, fallback
}

func (t *Tokenizer) endTagOpen(c rune, eof bool, endTagName, fallback State) (bool, State) {
	if !eof && isASCIIAlpha(c) {
		t.newTag(true)
		return true, endTagName
	}
	t.emitChars(ltSolidusRunes)
	return true, fallback
}

// endTagName accumulates a possible end tag in strBuf with its original
// case. Only the appropriate end tag leaves the content model.
func (t *Tokenizer) endTagName(c rune, eof bool, self, fallback State) (bool, State) {
	if !eof {
		switch {
		case isTagWhitespace(c) && t.isAppropriateEndTag():
			t.tagName = t.endTagExpectation
			t.clearStrBuf()
			return false, beforeAttributeNameState
		case c == '/' && t.isAppropriateEndTag():
			t.tagName = t.endTagExpectation
			t.clearStrBuf()
			return false, selfClosingStartTagState
		case c == '>' && t.isAppropriateEndTag():
			t.tagName = t.endTagExpectation
			t.clearStrBuf()
			return false, t.emitCurrentTag()
		case isASCIIAlpha(c):
			t.appendStrBuf(c)
			return false, self
		}
	}
	t.emitChars(ltSolidusRunes)
	t.emitChars(t.strBuf)
	t.clearStrBuf()
	return true, fallback
}

func (t *Tokenizer) rcDataLessThanSignStateParser(c rune, eof bool) (bool, State) {
	return t.lessThanSign(c, eof, rcDataEndTagOpenState, RCDataState)
}

func (t *Tokenizer) rcDataEndTagOpenStateParser(c rune, eof bool) (bool, State) {
	return t.endTagOpen(c, eof, rcDataEndTagNameState, RCDataState)
}

func (t *Tokenizer) rcDataEndTagNameStateParser(c rune, eof bool) (bool, State) {
	return t.endTagName(c, eof, rcDataEndTagNameState, RCDataState)
}

func (t *Tokenizer) rawTextLessThanSignStateParser(c rune, eof bool) (bool, State) {
	return t.lessThanSign(c, eof, rawTextEndTagOpenState, RawTextState)
}

func (t *Tokenizer) rawTextEndTagOpenStateParser(c rune, eof bool) (bool, State) {
	return t.endTagOpen(c, eof, rawTextEndTagNameState, RawTextState)
}

func (t *Tokenizer) rawTextEndTagNameStateParser(c rune, eof bool) (bool, State) {
	return t.endTagName(c, eof, rawTextEndTagNameState, RawTextState)
}

func (t *Tokenizer) scriptDataLessThanSignStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == '!' {
		t.emitChars(ltRunes)
		t.extendRun()
		return false, scriptDataEscapeStartState
	}
	return t.lessThanSign(c, eof, scriptDataEndTagOpenState, ScriptDataState)
}

func (t *Tokenizer) scriptDataEndTagOpenStateParser(c rune, eof bool) (bool, State) {
	return t.endTagOpen(c, eof, scriptDataEndTagNameState, ScriptDataState)
}

func (t *Tokenizer) scriptDataEndTagNameStateParser(c rune, eof bool) (bool, State) {
	return t.endTagName(c, eof, scriptDataEndTagNameState, ScriptDataState)
}

func (t *Tokenizer) scriptDataEscapeStartStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == '-' {
		t.extendRun()
		return false, scriptDataEscapeStartDashState
	}
	return true, ScriptDataState
}

func (t *Tokenizer) scriptDataEscapeStartDashStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == '-' {
		t.extendRun()
		return false, scriptDataEscapedDashDashState
	}
	return true, ScriptDataState
}

func (t *Tokenizer) scriptDataEscapedStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInScriptHTMLCommentLikeText, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		t.extendRun()
		return false, scriptDataEscapedDashState
	case '<':
		t.flushChars()
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, scriptDataEscapedState
	default:
		t.extendRun()
		return false, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedDashStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInScriptHTMLCommentLikeText, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		t.extendRun()
		return false, scriptDataEscapedDashDashState
	case '<':
		t.flushChars()
		return false, scriptDataEscapedLessThanSignState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, scriptDataEscapedState
	default:
		t.extendRun()
		return false, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedDashDashStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInScriptHTMLCommentLikeText, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		t.extendRun()
		return false, scriptDataEscapedDashDashState
	case '<':
		t.flushChars()
		return false, scriptDataEscapedLessThanSignState
	case '>':
		t.extendRun()
		return false, ScriptDataState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, scriptDataEscapedState
	default:
		t.extendRun()
		return false, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedLessThanSignStateParser(c rune, eof bool) (bool, State) {
	switch {
	case !eof && c == '/':
		t.clearStrBuf()
		return false, scriptDataEscapedEndTagOpenState
	case !eof && isASCIIAlpha(c):
		t.clearStrBuf()
		t.emitChars(ltRunes)
		return true, scriptDataDoubleEscapeStartState
	default:
		t.emitChars(ltRunes)
		return true, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedEndTagOpenStateParser(c rune, eof bool) (bool, State) {
	return t.endTagOpen(c, eof, scriptDataEscapedEndTagNameState, scriptDataEscapedState)
}

func (t *Tokenizer) scriptDataEscapedEndTagNameStateParser(c rune, eof bool) (bool, State) {
	return t.endTagName(c, eof, scriptDataEscapedEndTagNameState, scriptDataEscapedState)
}

var scriptLiteral = "script"

// doubleEscape decides between the escaped and double escaped script
// states once the word after "<" or "</" has ended.
func (t *Tokenizer) doubleEscape(c rune, eof bool, self, matched, fallback State) (bool, State) {
	if !eof {
		switch {
		case isTagWhitespace(c) || c == '/' || c == '>':
			t.extendRun()
			if string(t.strBuf) == scriptLiteral {
				t.clearStrBuf()
				return false, matched
			}
			t.clearStrBuf()
			return false, fallback
		case isASCIIAlpha(c):
			t.appendStrBufLower(c)
			t.extendRun()
			return false, self
		}
	}
	t.clearStrBuf()
	return true, fallback
}

func (t *Tokenizer) scriptDataDoubleEscapeStartStateParser(c rune, eof bool) (bool, State) {
	return t.doubleEscape(c, eof, scriptDataDoubleEscapeStartState, scriptDataDoubleEscapedState, scriptDataEscapedState)
}

func (t *Tokenizer) scriptDataDoubleEscapedStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInScriptHTMLCommentLikeText, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		t.extendRun()
		return false, scriptDataDoubleEscapedDashState
	case '<':
		t.extendRun()
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, scriptDataDoubleEscapedState
	default:
		t.extendRun()
		return false, scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInScriptHTMLCommentLikeText, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		t.extendRun()
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		t.extendRun()
		return false, scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, scriptDataDoubleEscapedState
	default:
		t.extendRun()
		return false, scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDashStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInScriptHTMLCommentLikeText, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		t.extendRun()
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		t.extendRun()
		return false, scriptDataDoubleEscapedLessThanSignState
	case '>':
		t.extendRun()
		return false, ScriptDataState
	case '\u0000':
		t.emitReplacementCharacter()
		return false, scriptDataDoubleEscapedState
	default:
		t.extendRun()
		return false, scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == '/' {
		t.clearStrBuf()
		t.extendRun()
		return false, scriptDataDoubleEscapeEndState
	}
	return true, scriptDataDoubleEscapedState
}

func (t *Tokenizer) scriptDataDoubleEscapeEndStateParser(c rune, eof bool) (bool, State) {
	return t.doubleEscape(c, eof, scriptDataDoubleEscapeEndState, scriptDataEscapedState, scriptDataDoubleEscapedState)
}

func (t *Tokenizer) beforeAttributeNameStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return true, afterAttributeNameState
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeAttributeNameState
	case '/', '>':
		return true, afterAttributeNameState
	case '=':
		t.parseError(ErrUnexpectedEqualsSignBeforeAttributeName, "")
		t.startAttribute()
		t.appendStrBuf(c)
		return false, attributeNameState
	default:
		t.startAttribute()
		return true, attributeNameState
	}
}

func (t *Tokenizer) attributeNameStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.attributeNameComplete()
		return true, afterAttributeNameState
	}
	switch c {
	case '\t', '\n', '\f', ' ', '/', '>':
		t.attributeNameComplete()
		return true, afterAttributeNameState
	case '=':
		t.attributeNameComplete()
		return false, beforeAttributeValueState
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendStrBuf('\uFFFD')
		return false, attributeNameState
	case '"', '\'', '<':
		t.parseError(ErrUnexpectedCharacterInAttributeName, "")
		t.appendStrBuf(c)
		return false, attributeNameState
	default:
		t.appendStrBufLower(c)
		return false, attributeNameState
	}
}

func (t *Tokenizer) afterAttributeNameStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInTag, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, afterAttributeNameState
	case '/':
		t.addAttributeWithoutValue()
		return false, selfClosingStartTagState
	case '=':
		return false, beforeAttributeValueState
	case '>':
		t.addAttributeWithoutValue()
		return false, t.emitCurrentTag()
	default:
		t.addAttributeWithoutValue()
		t.startAttribute()
		return true, attributeNameState
	}
}

func (t *Tokenizer) beforeAttributeValueStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return true, attributeValueUnquotedState
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeAttributeValueState
	case '"':
		t.clearStrBuf()
		return false, attributeValueDoubleQuotedState
	case '\'':
		t.clearStrBuf()
		return false, attributeValueSingleQuotedState
	case '>':
		t.parseError(ErrMissingAttributeValue, "")
		t.addAttributeWithoutValue()
		return false, t.emitCurrentTag()
	default:
		t.clearStrBuf()
		return true, attributeValueUnquotedState
	}
}

func (t *Tokenizer) attributeValueQuoted(c rune, eof bool, quote rune, self State) (bool, State) {
	if eof {
		t.parseError(ErrEOFInTag, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case quote:
		t.addAttributeWithValue()
		return false, afterAttributeValueQuotedState
	case '&':
		t.returnState = self
		return false, characterReferenceState
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendStrBuf('\uFFFD')
		return false, self
	default:
		t.appendStrBuf(c)
		return false, self
	}
}

func (t *Tokenizer) attributeValueDoubleQuotedStateParser(c rune, eof bool) (bool, State) {
	return t.attributeValueQuoted(c, eof, '"', attributeValueDoubleQuotedState)
}

func (t *Tokenizer) attributeValueSingleQuotedStateParser(c rune, eof bool) (bool, State) {
	return t.attributeValueQuoted(c, eof, '\'', attributeValueSingleQuotedState)
}

func (t *Tokenizer) attributeValueUnquotedStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInTag, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.addAttributeWithValue()
		return false, beforeAttributeNameState
	case '&':
		t.returnState = attributeValueUnquotedState
		return false, characterReferenceState
	case '>':
		t.addAttributeWithValue()
		return false, t.emitCurrentTag()
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendStrBuf('\uFFFD')
		return false, attributeValueUnquotedState
	case '"', '\'', '<', '=', '`':
		t.parseError(ErrUnexpectedCharacterInUnquotedAttrValue, "")
		t.appendStrBuf(c)
		return false, attributeValueUnquotedState
	default:
		t.appendStrBuf(c)
		return false, attributeValueUnquotedState
	}
}

func (t *Tokenizer) afterAttributeValueQuotedStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInTag, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeAttributeNameState
	case '/':
		return false, selfClosingStartTagState
	case '>':
		return false, t.emitCurrentTag()
	default:
		t.parseError(ErrMissingWhitespaceBetweenAttributes, "")
		return true, beforeAttributeNameState
	}
}

func (t *Tokenizer) selfClosingStartTagStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInTag, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '>':
		t.selfClosing = true
		return false, t.emitCurrentTag()
	default:
		t.parseError(ErrUnexpectedSolidusInTag, "")
		return true, beforeAttributeNameState
	}
}

func (t *Tokenizer) bogusCommentStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.emitComment()
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '>':
		t.emitComment()
		return false, DataState
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendStrBuf('\uFFFD')
		return false, bogusCommentState
	case '-':
		t.appendCommentDash()
		return false, bogusCommentState
	default:
		t.appendStrBuf(c)
		return false, bogusCommentState
	}
}

// markupDeclarationOpenStateParser looks at the character after "<!".
// Keywords are matched one character per state so nothing past the
// current buffer is needed; characters matched so far stay in strBuf in
// case the match fails and they become a bogus comment.
func (t *Tokenizer) markupDeclarationOpenStateParser(c rune, eof bool) (bool, State) {
	if !eof {
		switch c {
		case '-':
			t.newComment()
			t.appendStrBuf(c)
			return false, markupDeclarationHyphenState
		case 'd', 'D':
			t.newComment()
			t.appendStrBuf(c)
			t.index = 1
			return false, markupDeclarationOctypeState
		case '[':
			t.newComment()
			t.appendStrBuf(c)
			t.index = 1
			return false, cdataStartState
		}
	}
	t.parseError(ErrIncorrectlyOpenedComment, "")
	t.newComment()
	return true, bogusCommentState
}

func (t *Tokenizer) markupDeclarationHyphenStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == '-' {
		t.newComment()
		return false, commentStartState
	}
	t.parseError(ErrIncorrectlyOpenedComment, "")
	return true, bogusCommentState
}

const (
	doctypeLiteral = "doctype"
	cdataLiteral   = "[CDATA["
	publicLiteral  = "public"
	systemLiteral  = "system"
)

func (t *Tokenizer) markupDeclarationOctypeStateParser(c rune, eof bool) (bool, State) {
	if !eof {
		folded := c
		if folded >= 'A' && folded <= 'Z' {
			folded += 0x20
		}
		if folded == rune(doctypeLiteral[t.index]) {
			t.appendStrBuf(c)
			t.index++
			if t.index < len(doctypeLiteral) {
				return false, markupDeclarationOctypeState
			}
			t.clearStrBuf()
			return false, doctypeState
		}
	}
	t.parseError(ErrIncorrectlyOpenedComment, "")
	return true, bogusCommentState
}

func (t *Tokenizer) cdataStartStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == rune(cdataLiteral[t.index]) {
		t.appendStrBuf(c)
		t.index++
		if t.index < len(cdataLiteral) {
			return false, cdataStartState
		}
		if t.handler.CDATASectionAllowed() {
			t.clearStrBuf()
			return false, CDATASectionState
		}
		t.parseError(ErrCDATAInHTMLContent, "")
		return false, bogusCommentState
	}
	t.parseError(ErrIncorrectlyOpenedComment, "")
	return true, bogusCommentState
}

func (t *Tokenizer) commentStartStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return true, commentState
	}
	switch c {
	case '-':
		return false, commentStartDashState
	case '>':
		t.parseError(ErrAbruptClosingOfEmptyComment, "")
		t.emitComment()
		return false, DataState
	default:
		return true, commentState
	}
}

func (t *Tokenizer) commentStartDashStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInComment, "")
		t.emitComment()
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		return false, commentEndState
	case '>':
		t.parseError(ErrAbruptClosingOfEmptyComment, "")
		t.emitComment()
		return false, DataState
	default:
		t.appendCommentDash()
		return true, commentState
	}
}

func (t *Tokenizer) commentStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInComment, "")
		t.emitComment()
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '<':
		t.appendStrBuf(c)
		return false, commentLessThanSignState
	case '-':
		return false, commentEndDashState
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendStrBuf('\uFFFD')
		return false, commentState
	default:
		t.appendStrBuf(c)
		return false, commentState
	}
}

func (t *Tokenizer) commentLessThanSignStateParser(c rune, eof bool) (bool, State) {
	if !eof {
		switch c {
		case '!':
			t.appendStrBuf(c)
			return false, commentLessThanSignBangState
		case '<':
			t.appendStrBuf(c)
			return false, commentLessThanSignState
		}
	}
	return true, commentState
}

func (t *Tokenizer) commentLessThanSignBangStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == '-' {
		return false, commentLessThanSignBangDashState
	}
	return true, commentState
}

func (t *Tokenizer) commentLessThanSignBangDashStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == '-' {
		return false, commentLessThanSignBangDashDashState
	}
	return true, commentEndDashState
}

func (t *Tokenizer) commentLessThanSignBangDashDashStateParser(c rune, eof bool) (bool, State) {
	if !eof && c != '>' {
		t.parseError(ErrNestedComment, "")
	}
	return true, commentEndState
}

func (t *Tokenizer) commentEndDashStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInComment, "")
		t.emitComment()
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		return false, commentEndState
	default:
		t.appendCommentDash()
		return true, commentState
	}
}

func (t *Tokenizer) commentEndStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInComment, "")
		t.emitComment()
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '>':
		t.emitComment()
		return false, DataState
	case '!':
		return false, commentEndBangState
	case '-':
		t.appendCommentDash()
		return false, commentEndState
	default:
		t.appendCommentDash()
		t.appendCommentDash()
		return true, commentState
	}
}

func (t *Tokenizer) commentEndBangStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInComment, "")
		t.emitComment()
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '-':
		t.appendCommentDash()
		t.appendCommentDash()
		t.appendStrBuf('!')
		return false, commentEndDashState
	case '>':
		t.parseError(ErrIncorrectlyClosedComment, "")
		t.emitComment()
		return false, DataState
	default:
		t.appendCommentDash()
		t.appendCommentDash()
		t.appendStrBuf('!')
		return true, commentState
	}
}

// eofInDoctype emits the current doctype with force-quirks set and then
// the end of file.
func (t *Tokenizer) eofInDoctype() (bool, State) {
	t.parseError(ErrEOFInDoctype, "")
	t.forceQuirks = true
	t.emitDoctype()
	t.emitEOF()
	return false, DataState
}

func (t *Tokenizer) doctypeStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.resetDoctype()
		return t.eofInDoctype()
	}
	t.resetDoctype()
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeDoctypeNameState
	case '>':
		return true, beforeDoctypeNameState
	default:
		t.parseError(ErrMissingWhitespaceBeforeDoctypeName, "")
		return true, beforeDoctypeNameState
	}
}

func (t *Tokenizer) beforeDoctypeNameStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeDoctypeNameState
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.clearStrBuf()
		t.appendStrBuf('\uFFFD')
		return false, doctypeNameState
	case '>':
		t.parseError(ErrMissingDoctypeName, "")
		t.forceQuirks = true
		t.emitDoctype()
		return false, DataState
	default:
		t.clearStrBuf()
		t.appendStrBufLower(c)
		return false, doctypeNameState
	}
}

func (t *Tokenizer) doctypeNameStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.doctypeName = string(t.strBuf)
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.doctypeName = string(t.strBuf)
		t.clearStrBuf()
		return false, afterDoctypeNameState
	case '>':
		t.doctypeName = string(t.strBuf)
		t.emitDoctype()
		return false, DataState
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendStrBuf('\uFFFD')
		return false, doctypeNameState
	default:
		t.appendStrBufLower(c)
		return false, doctypeNameState
	}
}

func (t *Tokenizer) afterDoctypeNameStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, afterDoctypeNameState
	case '>':
		t.emitDoctype()
		return false, DataState
	case 'p', 'P':
		t.index = 1
		return false, doctypeUblicState
	case 's', 'S':
		t.index = 1
		return false, doctypeYstemState
	default:
		t.parseError(ErrInvalidCharacterSequenceAfterDoctypeName, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
}

// doctypeKeyword matches the rest of PUBLIC or SYSTEM case-insensitively.
func (t *Tokenizer) doctypeKeyword(c rune, eof bool, keyword string, self, matched State) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	if c >= 'A' && c <= 'Z' {
		c += 0x20
	}
	if c != rune(keyword[t.index]) {
		t.parseError(ErrInvalidCharacterSequenceAfterDoctypeName, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
	t.index++
	if t.index < len(keyword) {
		return false, self
	}
	return false, matched
}

func (t *Tokenizer) doctypeUblicStateParser(c rune, eof bool) (bool, State) {
	return t.doctypeKeyword(c, eof, publicLiteral, doctypeUblicState, afterDoctypePublicKeywordState)
}

func (t *Tokenizer) doctypeYstemStateParser(c rune, eof bool) (bool, State) {
	return t.doctypeKeyword(c, eof, systemLiteral, doctypeYstemState, afterDoctypeSystemKeywordState)
}

func (t *Tokenizer) afterDoctypePublicKeywordStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeDoctypePublicIdentifierState
	case '"':
		t.parseError(ErrMissingWhitespaceAfterDoctypePublicKeyword, "")
		t.clearStrBuf()
		return false, doctypePublicIdentifierDoubleQuotedState
	case '\'':
		t.parseError(ErrMissingWhitespaceAfterDoctypePublicKeyword, "")
		t.clearStrBuf()
		return false, doctypePublicIdentifierSingleQuotedState
	case '>':
		t.parseError(ErrMissingDoctypePublicIdentifier, "")
		t.forceQuirks = true
		t.emitDoctype()
		return false, DataState
	default:
		t.parseError(ErrMissingQuoteBeforeDoctypePublicIdentifier, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) beforeDoctypePublicIdentifierStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeDoctypePublicIdentifierState
	case '"':
		t.clearStrBuf()
		return false, doctypePublicIdentifierDoubleQuotedState
	case '\'':
		t.clearStrBuf()
		return false, doctypePublicIdentifierSingleQuotedState
	case '>':
		t.parseError(ErrMissingDoctypePublicIdentifier, "")
		t.forceQuirks = true
		t.emitDoctype()
		return false, DataState
	default:
		t.parseError(ErrMissingQuoteBeforeDoctypePublicIdentifier, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
}

// doctypeIdentifier accumulates a quoted public or system identifier and
// stores it in *dst when it ends.
func (t *Tokenizer) doctypeIdentifier(c rune, eof bool, quote rune, dst **string, self, after State, abrupt ErrorCode) (bool, State) {
	if eof {
		*dst = t.strBufString()
		return t.eofInDoctype()
	}
	switch c {
	case quote:
		*dst = t.strBufString()
		return false, after
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		t.appendStrBuf('\uFFFD')
		return false, self
	case '>':
		t.parseError(abrupt, "")
		*dst = t.strBufString()
		t.forceQuirks = true
		t.emitDoctype()
		return false, DataState
	default:
		t.appendStrBuf(c)
		return false, self
	}
}

func (t *Tokenizer) doctypePublicIdentifierDoubleQuotedStateParser(c rune, eof bool) (bool, State) {
	return t.doctypeIdentifier(c, eof, '"', &t.publicID, doctypePublicIdentifierDoubleQuotedState, afterDoctypePublicIdentifierState, ErrAbruptDoctypePublicIdentifier)
}

func (t *Tokenizer) doctypePublicIdentifierSingleQuotedStateParser(c rune, eof bool) (bool, State) {
	return t.doctypeIdentifier(c, eof, '\'', &t.publicID, doctypePublicIdentifierSingleQuotedState, afterDoctypePublicIdentifierState, ErrAbruptDoctypePublicIdentifier)
}

func (t *Tokenizer) afterDoctypePublicIdentifierStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case '>':
		t.emitDoctype()
		return false, DataState
	case '"':
		t.parseError(ErrMissingWhitespaceBetweenDoctypeIdentifiers, "")
		t.clearStrBuf()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		t.parseError(ErrMissingWhitespaceBetweenDoctypeIdentifiers, "")
		t.clearStrBuf()
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		t.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case '>':
		t.emitDoctype()
		return false, DataState
	case '"':
		t.clearStrBuf()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		t.clearStrBuf()
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		t.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) afterDoctypeSystemKeywordStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeDoctypeSystemIdentifierState
	case '"':
		t.parseError(ErrMissingWhitespaceAfterDoctypeSystemKeyword, "")
		t.clearStrBuf()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		t.parseError(ErrMissingWhitespaceAfterDoctypeSystemKeyword, "")
		t.clearStrBuf()
		return false, doctypeSystemIdentifierSingleQuotedState
	case '>':
		t.parseError(ErrMissingDoctypeSystemIdentifier, "")
		t.forceQuirks = true
		t.emitDoctype()
		return false, DataState
	default:
		t.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) beforeDoctypeSystemIdentifierStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, beforeDoctypeSystemIdentifierState
	case '"':
		t.clearStrBuf()
		return false, doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		t.clearStrBuf()
		return false, doctypeSystemIdentifierSingleQuotedState
	case '>':
		t.parseError(ErrMissingDoctypeSystemIdentifier, "")
		t.forceQuirks = true
		t.emitDoctype()
		return false, DataState
	default:
		t.parseError(ErrMissingQuoteBeforeDoctypeSystemIdentifier, "")
		t.forceQuirks = true
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(c rune, eof bool) (bool, State) {
	return t.doctypeIdentifier(c, eof, '"', &t.systemID, doctypeSystemIdentifierDoubleQuotedState, afterDoctypeSystemIdentifierState, ErrAbruptDoctypeSystemIdentifier)
}

func (t *Tokenizer) doctypeSystemIdentifierSingleQuotedStateParser(c rune, eof bool) (bool, State) {
	return t.doctypeIdentifier(c, eof, '\'', &t.systemID, doctypeSystemIdentifierSingleQuotedState, afterDoctypeSystemIdentifierState, ErrAbruptDoctypeSystemIdentifier)
}

func (t *Tokenizer) afterDoctypeSystemIdentifierStateParser(c rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		return false, afterDoctypeSystemIdentifierState
	case '>':
		t.emitDoctype()
		return false, DataState
	default:
		// the one malformed doctype path that keeps force-quirks off
		t.parseError(ErrUnexpectedCharacterAfterDoctypeSystemID, "")
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) bogusDoctypeStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.emitDoctype()
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case '>':
		t.emitDoctype()
		return false, DataState
	case '\u0000':
		t.parseError(ErrUnexpectedNullCharacter, "")
		return false, bogusDoctypeState
	default:
		return false, bogusDoctypeState
	}
}

func (t *Tokenizer) cdataSectionStateParser(c rune, eof bool) (bool, State) {
	if eof {
		t.parseError(ErrEOFInCDATA, "")
		t.emitEOF()
		return false, DataState
	}
	switch c {
	case ']':
		t.flushChars()
		return false, cdataSectionBracketState
	case '\u0000':
		t.emitChars(replacementRunes)
		return false, CDATASectionState
	default:
		t.extendRun()
		return false, CDATASectionState
	}
}

func (t *Tokenizer) cdataSectionBracketStateParser(c rune, eof bool) (bool, State) {
	if !eof && c == ']' {
		return false, cdataSectionEndState
	}
	t.emitChars(rsqbRunes)
	return true, CDATASectionState
}

func (t *Tokenizer) cdataSectionEndStateParser(c rune, eof bool) (bool, State) {
	if !eof {
		switch c {
		case ']':
			t.emitChars(rsqbRunes)
			return false, cdataSectionEndState
		case '>':
			return false, DataState
		}
	}
	t.emitChars(rsqbRsqbRunes)
	return true, CDATASectionState
}

// emitOrAppend delivers characters produced by a character reference to
// the attribute value or to the character stream, depending on where the
// reference started.
func (t *Tokenizer) emitOrAppend(rs []rune) {
	if t.returnState.isAttributeValue() {
		t.strBuf = append(t.strBuf, rs...)
		return
	}
	t.emitChars(rs)
}
