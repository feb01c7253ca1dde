package parser

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltokenizer/parser/html"
	"github.com/heathj/htmltokenizer/parser/names"
	"github.com/heathj/htmltokenizer/parser/portability"
)

// a parserStateHandler consumes one character, or the end of the file when
// eof is set, and returns whether the character must be reconsumed in the
// returned state.
type parserStateHandler func(t *Tokenizer, c rune, eof bool) (bool, State)

var (
	ltRunes          = []rune{'<'}
	ltSolidusRunes   = []rune{'<', '/'}
	rsqbRunes        = []rune{']'}
	rsqbRsqbRunes    = []rune{']', ']'}
	replacementRunes = []rune{'\uFFFD'}
)

// Tokenizer turns characters into tokens for a TokenHandler. Input arrives
// in buffers through Tokenize or Write; the scan stops at the end of each
// buffer and picks up where it left off with the next one.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	handler TokenHandler
	cfg     Config
	log     *logrus.Logger
	trace   bool

	state, returnState State

	// buf is the normalized copy of the current input buffer. Characters
	// buf[cstart:pos] form the pending run of character data.
	buf    []rune
	pos    int
	cstart int
	lastCR bool
	line   int

	strBuf     []rune
	charRefBuf []rune
	utf8Tail   []byte
	decodeBuf  []rune

	// tag
	tagName           names.ElementName
	endTag            bool
	selfClosing       bool
	containsHyphen    bool
	attributeName     *names.AttributeName
	attributeLine     int
	attributes        *html.Attributes
	endTagExpectation names.ElementName
	lastStartTag      names.ElementName

	// doctype
	doctypeName        string
	publicID, systemID *string
	forceQuirks        bool

	reportedConsecutiveHyphens bool

	// keyword matching in the markup declaration and doctype states
	index int

	// character references
	charRefCode      int
	charRefLo        int
	charRefHi        int
	charRefCandidate int
	charRefMark      int

	interner *portability.Interner

	shouldSuspend bool
	suspended     bool
	eofEmitted    bool
	err           error
}

// NewTokenizer returns a tokenizer that delivers tokens to h. Call Start
// before feeding input.
func NewTokenizer(h TokenHandler, cfg Config) *Tokenizer {
	l := cfg.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Tokenizer{
		handler:  h,
		cfg:      cfg,
		log:      l,
		cstart:   -1,
		line:     1,
		interner: portability.NewInterner(),
	}
}

// Start resets the tokenizer to the data state and notifies the handler.
func (t *Tokenizer) Start() error {
	t.state = DataState
	t.returnState = DataState
	t.buf = t.buf[:0]
	t.pos = 0
	t.cstart = -1
	t.lastCR = false
	t.line = 1
	t.strBuf = make([]rune, 0, 64)
	t.charRefBuf = make([]rune, 0, longestCharRefName+2)
	t.utf8Tail = t.utf8Tail[:0]
	t.resetTag()
	t.attributes = nil
	t.endTagExpectation = names.ElementName{}
	t.lastStartTag = names.ElementName{}
	t.resetDoctype()
	t.shouldSuspend = false
	t.suspended = false
	t.eofEmitted = false
	t.err = nil
	t.trace = t.log.IsLevelEnabled(logrus.TraceLevel)
	if err := t.handler.StartTokenization(t); err != nil {
		t.err = errors.Wrap(err, "token handler")
		return t.err
	}
	return nil
}

// Tokenize scans buf. It returns early without error when the handler
// requested a suspension; call Resume to continue with the rest of buf.
func (t *Tokenizer) Tokenize(buf []rune) error {
	if err := t.ready(); err != nil {
		return err
	}
	t.handler.EnsureBufferSpace(len(buf))
	t.load(buf)
	return t.run()
}

// Write decodes UTF-8 and tokenizes it. An incomplete sequence at the end
// of p is kept for the next call; invalid bytes become U+FFFD.
func (t *Tokenizer) Write(p []byte) (int, error) {
	if err := t.ready(); err != nil {
		return 0, err
	}
	n := len(p)
	if len(t.utf8Tail) > 0 {
		p = append(t.utf8Tail, p...)
		t.utf8Tail = nil
	}
	runes := t.decodeBuf[:0]
	for len(p) > 0 {
		if !utf8.FullRune(p) {
			t.utf8Tail = append(t.utf8Tail[:0], p...)
			break
		}
		r, size := utf8.DecodeRune(p)
		runes = append(runes, r)
		p = p[size:]
	}
	t.decodeBuf = runes
	if err := t.Tokenize(runes); err != nil {
		return 0, err
	}
	return n, nil
}

func (t *Tokenizer) ready() error {
	switch {
	case t.err != nil:
		return errors.Wrap(ErrStopped, t.err.Error())
	case t.suspended:
		return errors.WithStack(ErrSuspended)
	case t.eofEmitted:
		return errors.WithStack(ErrAfterEOF)
	}
	return nil
}

// load copies in into the scan buffer, turning CR and CRLF into LF. A CR
// at the end of in swallows an LF at the start of the next buffer.
func (t *Tokenizer) load(in []rune) {
	if cap(t.buf) < len(in) {
		t.buf = make([]rune, 0, len(in))
	}
	t.buf = t.buf[:0]
	for _, c := range in {
		switch c {
		case '\r':
			t.lastCR = true
			t.buf = append(t.buf, '\n')
			continue
		case '\n':
			if t.lastCR {
				t.lastCR = false
				continue
			}
		}
		t.lastCR = false
		t.buf = append(t.buf, c)
	}
	t.pos = 0
	t.cstart = -1
}

func (t *Tokenizer) run() error {
	for t.pos < len(t.buf) {
		c := t.buf[t.pos]
		if c == '\n' {
			t.line++
		}
		t.step(c, false)
		if t.err != nil {
			break
		}
		t.pos++
		if t.shouldSuspend {
			t.shouldSuspend = false
			if t.pos < len(t.buf) {
				t.suspended = true
			}
			break
		}
	}
	t.flushChars()
	// a request made while flushing the tail has nothing left to suspend
	t.shouldSuspend = false
	if t.err != nil {
		return t.err
	}
	return nil
}

func (t *Tokenizer) step(c rune, eof bool) {
	spaced := false
	reconsume := true
	for reconsume {
		// a form feed reconsumed after '<' or '&' may still land in text
		if !spaced && !eof && (c == '\f' || c == '\v') && t.state.isText() {
			spaced = true
			if c = t.contentSpace(c); t.err != nil {
				return
			}
		}
		var next State
		reconsume, next = stateParsers[t.state](t, c, eof)
		if t.trace {
			t.log.WithFields(logrus.Fields{
				"char":  string(c),
				"eof":   eof,
				"from":  t.state.String(),
				"to":    next.String(),
				"again": reconsume,
			}).Trace("tokenizer transition")
		}
		t.state = next
		if t.err != nil {
			return
		}
	}
}

// contentSpace applies the content space policy to a form feed or vertical
// tab about to be consumed as text.
func (t *Tokenizer) contentSpace(c rune) rune {
	switch t.cfg.ContentSpacePolicy {
	case html.AlterInfoset:
		t.buf[t.pos] = ' '
		return ' '
	case html.Fatal:
		t.fatal(ErrContentSpace, nil)
	default:
		t.parseError(ErrContentSpace, "form feed or vertical tab is not XML 1.0 content")
	}
	return c
}

// Resume continues a suspended scan with the rest of its buffer.
func (t *Tokenizer) Resume() error {
	if t.err != nil {
		return errors.Wrap(ErrStopped, t.err.Error())
	}
	if !t.suspended {
		return nil
	}
	t.suspended = false
	t.cstart = -1
	return t.run()
}

// Suspended reports whether a scan stopped on request before the end of
// its buffer.
func (t *Tokenizer) Suspended() bool { return t.suspended }

// RequestSuspension makes the scan stop after the current token. It is
// meant to be called from a TokenHandler callback.
func (t *Tokenizer) RequestSuspension() { t.shouldSuspend = true }

// SetState switches the content model. The appropriate end tag becomes the
// last start tag seen.
func (t *Tokenizer) SetState(s State) {
	t.state = s
	t.endTagExpectation = t.lastStartTag
}

// SetStateAndEndTagExpectation switches the content model and sets the
// end tag name that leaves it.
func (t *Tokenizer) SetStateAndEndTagExpectation(s State, name names.ElementName) {
	t.state = s
	t.endTagExpectation = name
}

// EOF flushes pending input and runs the end-of-file rules of the current
// state, which always end with the handler's EOF callback.
func (t *Tokenizer) EOF() error {
	if t.eofEmitted && t.err == nil {
		return nil
	}
	if err := t.ready(); err != nil {
		return err
	}
	if len(t.utf8Tail) > 0 {
		t.utf8Tail = t.utf8Tail[:0]
		t.load(replacementRunes)
		if err := t.run(); err != nil {
			return err
		}
		if t.suspended {
			return nil
		}
	}
	t.buf = t.buf[:0]
	t.pos = 0
	t.cstart = -1
	for !t.eofEmitted && t.err == nil {
		t.step(0, true)
	}
	return t.err
}

// End notifies the handler and releases the working buffers.
func (t *Tokenizer) End() error {
	t.buf = nil
	t.strBuf = nil
	t.charRefBuf = nil
	t.decodeBuf = nil
	t.utf8Tail = nil
	t.attributes = nil
	t.attributeName = nil
	t.publicID, t.systemID = nil, nil
	if err := t.handler.EndTokenization(); err != nil {
		return errors.Wrap(err, "token handler")
	}
	return nil
}

// LoadState copies the scan state of other into t. Pending input is not
// copied; the attribute collection is cloned.
func (t *Tokenizer) LoadState(other *Tokenizer) {
	t.state = other.state
	t.returnState = other.returnState
	t.lastCR = other.lastCR
	t.line = other.line

	t.strBuf = append(t.strBuf[:0], other.strBuf...)
	t.charRefBuf = append(t.charRefBuf[:0], other.charRefBuf...)

	t.tagName = other.tagName
	t.endTag = other.endTag
	t.selfClosing = other.selfClosing
	t.containsHyphen = other.containsHyphen
	t.attributeName = other.attributeName
	t.attributeLine = other.attributeLine
	if other.attributes != nil {
		t.attributes = other.attributes.CloneAttributes(t.interner)
	} else {
		t.attributes = nil
	}
	t.endTagExpectation = other.endTagExpectation
	t.lastStartTag = other.lastStartTag

	t.doctypeName = other.doctypeName
	t.publicID = copyString(other.publicID)
	t.systemID = copyString(other.systemID)
	t.forceQuirks = other.forceQuirks
	t.reportedConsecutiveHyphens = other.reportedConsecutiveHyphens

	t.index = other.index
	t.charRefCode = other.charRefCode
	t.charRefLo = other.charRefLo
	t.charRefHi = other.charRefHi
	t.charRefCandidate = other.charRefCandidate
	t.charRefMark = other.charRefMark
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (t *Tokenizer) Line() int              { return t.line }
func (t *Tokenizer) SetLineNumber(line int) { t.line = line }
func (t *Tokenizer) State() State            { return t.state }
func (t *Tokenizer) InDataState() bool       { return t.state == DataState }
func (t *Tokenizer) Config() Config          { return t.cfg }

// ReportError sends a diagnostic to the configured error handler. Token
// handlers use it for warnings that belong to the input position.
func (t *Tokenizer) ReportError(code ErrorCode, message string) {
	t.parseError(code, message)
}

func (t *Tokenizer) parseError(code ErrorCode, message string) {
	if t.cfg.ErrorHandler == nil {
		return
	}
	t.cfg.ErrorHandler(&ParseError{Code: code, Line: t.line, Message: message})
}

func (t *Tokenizer) fatal(code ErrorCode, cause error) {
	if t.err != nil {
		return
	}
	t.err = errors.WithStack(&FatalError{Code: code, Line: t.line, Err: cause})
}

// handlerError records a failure returned by the token handler.
func (t *Tokenizer) handlerError(err error) {
	if err != nil && t.err == nil {
		t.err = errors.Wrap(err, "token handler")
	}
}

// extendRun adds the current character to the pending run of character
// data.
func (t *Tokenizer) extendRun() {
	if t.cstart < 0 {
		t.cstart = t.pos
	}
}

// flushChars emits the pending run.
func (t *Tokenizer) flushChars() {
	if t.cstart >= 0 {
		if t.pos > t.cstart && t.err == nil {
			t.handlerError(t.handler.Characters(t.buf[t.cstart:t.pos]))
		}
		t.cstart = -1
	}
}

// emitChars emits characters that are not the current input run.
func (t *Tokenizer) emitChars(rs []rune) {
	t.flushChars()
	if len(rs) > 0 && t.err == nil {
		t.handlerError(t.handler.Characters(rs))
	}
}

func (t *Tokenizer) emitReplacementCharacter() {
	t.parseError(ErrUnexpectedNullCharacter, "")
	t.emitChars(replacementRunes)
}

func (t *Tokenizer) emitEOF() {
	t.flushChars()
	t.eofEmitted = true
	if t.err == nil {
		t.handlerError(t.handler.EOF())
	}
}

func (t *Tokenizer) clearStrBuf() { t.strBuf = t.strBuf[:0] }

func (t *Tokenizer) appendStrBuf(c rune) { t.strBuf = append(t.strBuf, c) }

func (t *Tokenizer) appendStrBufLower(c rune) {
	if c >= 'A' && c <= 'Z' {
		c += 0x20
	}
	t.strBuf = append(t.strBuf, c)
}

func (t *Tokenizer) resetTag() {
	t.tagName = names.ElementName{}
	t.endTag = false
	t.selfClosing = false
	t.containsHyphen = false
	t.attributeName = nil
}

// newTag starts a start or end tag whose name will accumulate in strBuf.
func (t *Tokenizer) newTag(endTag bool) {
	t.resetTag()
	t.endTag = endTag
	t.clearStrBuf()
	if t.attributes == nil {
		t.attributes = html.NewAttributes(t.cfg.attributeMode())
	}
}

func (t *Tokenizer) appendTagName(c rune) {
	switch {
	case c >= 'A' && c <= 'Z':
		c += 0x20
	case c == '-':
		t.containsHyphen = true
	}
	t.strBuf = append(t.strBuf, c)
}

func (t *Tokenizer) tagNameComplete() {
	t.tagName = names.ElementNameByBuffer(t.strBuf, t.containsHyphen, t.interner)
	t.clearStrBuf()
}

// attributeNameComplete resolves the name in strBuf. A name already present
// on the tag is diagnosed and its value will be dropped.
func (t *Tokenizer) attributeNameComplete() {
	name := names.NameByBuffer(t.strBuf, !t.cfg.DisableNCNameCheck, t.interner)
	t.clearStrBuf()
	if t.attributes.Contains(name) {
		t.parseError(ErrDuplicateAttribute, name.Local(names.HTML))
		t.attributeName = nil
		return
	}
	t.attributeName = name
}

func (t *Tokenizer) addAttributeWithoutValue() {
	t.addAttribute("")
}

func (t *Tokenizer) addAttributeWithValue() {
	t.addAttribute(string(t.strBuf))
	t.clearStrBuf()
}

func (t *Tokenizer) addAttribute(value string) {
	name := t.attributeName
	t.attributeName = nil
	if name == nil {
		return
	}
	if name.IsXmlns() && t.cfg.XmlnsPolicy == html.AlterInfoset {
		t.parseError(ErrXmlnsAttribute, name.Local(names.HTML))
	}
	if err := t.attributes.AddAttribute(name, value, t.attributeLine, t.cfg.XmlnsPolicy); err != nil {
		t.fatal(ErrXmlnsAttribute, err)
	}
}

// startAttribute begins a new attribute name in strBuf.
func (t *Tokenizer) startAttribute() {
	t.clearStrBuf()
	t.attributeLine = t.line
}

// emitCurrentTag delivers the finished tag. The handler may change the
// state while handling a start tag, so the returned state is read back
// after the call.
func (t *Tokenizer) emitCurrentTag() State {
	t.flushChars()
	t.state = DataState
	attrs := t.attributes
	if t.endTag {
		if attrs.Len() > 0 {
			t.parseError(ErrEndTagWithAttributes, t.tagName.Name)
		}
		if t.selfClosing {
			t.parseError(ErrEndTagWithTrailingSolidus, t.tagName.Name)
		}
		t.handlerError(t.handler.EndTag(t.tagName))
	} else {
		t.lastStartTag = t.tagName
		t.endTagExpectation = t.tagName
		t.handlerError(t.handler.StartTag(t.tagName, attrs, t.selfClosing))
	}
	if t.cfg.ReuseAttributes || t.endTag {
		attrs.Clear(t.cfg.attributeMode())
	} else {
		t.attributes = nil
	}
	t.resetTag()
	return t.state
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	expect := t.endTagExpectation
	if expect.IsZero() {
		return false
	}
	return portability.LowerCaseLiteralEqualsIgnoreASCIICase(expect.Name, t.strBuf)
}

// appendCommentDash adds a hyphen to the comment data, applying the comment
// policy when it would form "--".
func (t *Tokenizer) appendCommentDash() {
	if n := len(t.strBuf); n > 0 && t.strBuf[n-1] == '-' {
		if !t.reportedConsecutiveHyphens {
			t.reportedConsecutiveHyphens = true
			if t.cfg.CommentPolicy == html.Fatal {
				t.fatal(ErrConsecutiveHyphensInComment, nil)
				return
			}
			t.parseError(ErrConsecutiveHyphensInComment, "")
		}
		if t.cfg.CommentPolicy == html.AlterInfoset {
			t.strBuf = append(t.strBuf, ' ')
		}
	}
	t.strBuf = append(t.strBuf, '-')
}

func (t *Tokenizer) newComment() {
	t.clearStrBuf()
	t.reportedConsecutiveHyphens = false
}

func (t *Tokenizer) emitComment() {
	t.flushChars()
	if n := len(t.strBuf); n > 0 && t.strBuf[n-1] == '-' {
		switch t.cfg.CommentPolicy {
		case html.Fatal:
			t.fatal(ErrTrailingHyphenInComment, nil)
			return
		case html.AlterInfoset:
			t.strBuf = append(t.strBuf, ' ')
		default:
			t.parseError(ErrTrailingHyphenInComment, "")
		}
	}
	if t.err == nil && t.handler.WantsComments() {
		t.handlerError(t.handler.Comment(t.strBuf))
	}
	t.clearStrBuf()
}

func (t *Tokenizer) resetDoctype() {
	t.doctypeName = ""
	t.publicID = nil
	t.systemID = nil
	t.forceQuirks = false
}

func (t *Tokenizer) emitDoctype() {
	t.flushChars()
	if t.err == nil {
		t.handlerError(t.handler.Doctype(t.doctypeName, t.publicID, t.systemID, t.forceQuirks))
	}
	t.resetDoctype()
	t.clearStrBuf()
}

func (t *Tokenizer) strBufString() *string {
	s := string(t.strBuf)
	t.clearStrBuf()
	return &s
}
