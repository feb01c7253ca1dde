package parser

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/htmltokenizer/parser/html"
	"github.com/heathj/htmltokenizer/parser/names"
)

// errorSink collects diagnostics for a single run.
type errorSink struct {
	errs []*ParseError
}

func (s *errorSink) handle(e *ParseError) { s.errs = append(s.errs, e) }

func (s *errorSink) codes() []ErrorCode {
	var out []ErrorCode
	for _, e := range s.errs {
		out = append(out, e.Code)
	}
	return out
}

func configWith(sink *errorSink) Config {
	cfg := DefaultConfig()
	cfg.ErrorHandler = sink.handle
	return cfg
}

// runTokenizer feeds chunks one Tokenize call at a time, resuming any
// suspension, and finishes with EOF and End.
func runTokenizer(t *testing.T, cfg Config, h TokenHandler, chunks ...string) error {
	t.Helper()
	tok := NewTokenizer(h, cfg)
	require.NoError(t, tok.Start())
	for _, c := range chunks {
		if err := tok.Tokenize([]rune(c)); err != nil {
			return err
		}
		for tok.Suspended() {
			if err := tok.Resume(); err != nil {
				return err
			}
		}
	}
	if err := tok.EOF(); err != nil {
		return err
	}
	return tok.End()
}

func tokensOf(t *testing.T, chunks ...string) []Token {
	t.Helper()
	rec := &Recorder{}
	require.NoError(t, runTokenizer(t, DefaultConfig(), rec, chunks...))
	return rec.Tokens
}

func sp(s string) *string { return &s }

func chars(s string) Token { return Token{Type: CharacterToken, Data: s} }

func start(name string, attrs ...Attribute) Token {
	return Token{Type: StartTagToken, Name: name, Attributes: attrs}
}

func selfClosing(name string, attrs ...Attribute) Token {
	return Token{Type: StartTagToken, Name: name, Attributes: attrs, SelfClosing: true}
}

func end(name string) Token { return Token{Type: EndTagToken, Name: name} }

func comment(s string) Token { return Token{Type: CommentToken, Data: s} }

func attr(name, value string) Attribute { return Attribute{Name: name, Value: value} }

var eofToken = Token{Type: EndOfFileToken}

type tokenizerAttributeAccuracyTestcase struct {
	inHTML string            // snippet of HTML to tokenize (should only be one element)
	attrs  map[string]string // expected attributes of the first token
}

var tokenizerAttributeAccuracyTests = []tokenizerAttributeAccuracyTestcase{
	{"<head></head>", map[string]string{}},
	{"<script src='123' onload='test'></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<a href='https://google.com' onclick='alert(1)'>Click this</a>", map[string]string{
		"href":    "https://google.com",
		"onclick": "alert(1)",
	}},
	{"<script src='123' src='456'></script>", map[string]string{
		"src": "123",
	}},
	{"<script src=123 onload=test></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script src='123' onload='test' ></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script =src='123'onload='test' ></script>", map[string]string{
		"=src":   "123",
		"onload": "test",
	}},
	{"<script src></script>", map[string]string{
		"src": "",
	}},
	{"<script src test></script>", map[string]string{
		"src":  "",
		"test": "",
	}},
	{"<script 'asd></script>", map[string]string{
		"'asd": "",
	}},
	{"<script <asd></script>", map[string]string{
		"<asd": "",
	}},
	{"<script ABC=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<script abc='\u0000123'></script>", map[string]string{
		"abc": "\uFFFD123",
	}},
	{"<script abc=></script>", map[string]string{
		"abc": "",
	}},
	{"<script\tabc=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<a title='a&amp;b' data-x=\"&lt;\">", map[string]string{
		"title":  "a&b",
		"data-x": "<",
	}},
}

// TestTokenizerAttributeAccuracy checks the attribute names and values of
// the first tag in each snippet.
func TestTokenizerAttributeAccuracy(t *testing.T) {
	for _, tt := range tokenizerAttributeAccuracyTests {
		tt := tt
		t.Run(tt.inHTML, func(t *testing.T) {
			t.Parallel()
			toks := tokensOf(t, tt.inHTML)
			require.NotEmpty(t, toks)
			require.Equal(t, StartTagToken, toks[0].Type)
			got := make(map[string]string)
			for _, a := range toks[0].Attributes {
				got[a.Name] = a.Value
			}
			assert.Equal(t, tt.attrs, got)
		})
	}
}

type stateMachineTestCase struct {
	inRune            rune  // the rune to pass to the startingState
	startingState     State // the state to start from
	shouldReconsume   bool  // the expectation if the next state should reconsume
	nextExpectedState State // the next state
}

// TestStateParsers checks single transitions of the state machine. Flows
// that need earlier context are covered by the stream tests.
func TestStateParsers(t *testing.T) {
	stateParserTests := []stateMachineTestCase{
		{'&', DataState, false, characterReferenceState},
		{'<', DataState, false, tagOpenState},
		{'\u0000', DataState, false, DataState},
		{'a', DataState, false, DataState},
		{'1', DataState, false, DataState},

		{'&', RCDataState, false, characterReferenceState},
		{'<', RCDataState, false, rcDataLessThanSignState},
		{'\u0000', RCDataState, false, RCDataState},
		{'#', RCDataState, false, RCDataState},

		{'<', RawTextState, false, rawTextLessThanSignState},
		{'&', RawTextState, false, RawTextState},
		{'<', ScriptDataState, false, scriptDataLessThanSignState},
		{'<', PlaintextState, false, PlaintextState},

		{'!', tagOpenState, false, markupDeclarationOpenState},
		{'/', tagOpenState, false, endTagOpenState},
		{'a', tagOpenState, true, tagNameState},
		{'?', tagOpenState, true, bogusCommentState},
		{'1', tagOpenState, true, DataState},
		{'>', endTagOpenState, false, DataState},
		{'1', endTagOpenState, true, bogusCommentState},

		{'/', rcDataLessThanSignState, false, rcDataEndTagOpenState},
		{'a', rcDataLessThanSignState, true, RCDataState},
		{'!', scriptDataLessThanSignState, false, scriptDataEscapeStartState},
		{'a', scriptDataEscapeStartState, true, ScriptDataState},
		{'-', scriptDataEscapeStartState, false, scriptDataEscapeStartDashState},
		{'>', scriptDataEscapedDashDashState, false, ScriptDataState},

		{'-', markupDeclarationOpenState, false, markupDeclarationHyphenState},
		{'D', markupDeclarationOpenState, false, markupDeclarationOctypeState},
		{'[', markupDeclarationOpenState, false, cdataStartState},
		{'x', markupDeclarationOpenState, true, bogusCommentState},

		{'-', commentStartState, false, commentStartDashState},
		{'>', commentStartState, false, DataState},
		{'x', commentEndState, true, commentState},
		{'!', commentEndState, false, commentEndBangState},
		{'-', commentEndState, false, commentEndState},

		{'p', afterDoctypeNameState, false, doctypeUblicState},
		{'S', afterDoctypeNameState, false, doctypeYstemState},
		{'x', afterDoctypeNameState, true, bogusDoctypeState},
		{'x', afterDoctypeSystemIdentifierState, true, bogusDoctypeState},

		{']', CDATASectionState, false, cdataSectionBracketState},
		{']', cdataSectionBracketState, false, cdataSectionEndState},
		{'x', cdataSectionBracketState, true, CDATASectionState},
		{'>', cdataSectionEndState, false, DataState},

		{'#', characterReferenceState, false, numericCharacterReferenceState},
		{'1', characterReferenceState, true, ambiguousAmpersandState},
		{' ', characterReferenceState, true, DataState},
		{'x', numericCharacterReferenceState, false, hexadecimalCharacterReferenceStartState},
		{'1', numericCharacterReferenceState, true, decimalCharacterReferenceStartState},
		{'g', hexadecimalCharacterReferenceStartState, true, DataState},
		{'!', decimalCharacterReferenceState, true, DataState},
		{';', decimalCharacterReferenceState, false, DataState},
	}

	for _, tt := range stateParserTests {
		tt := tt
		t.Run(fmt.Sprintf("%s-%#U", tt.startingState, tt.inRune), func(t *testing.T) {
			t.Parallel()
			tok := NewTokenizer(&Recorder{}, DefaultConfig())
			require.NoError(t, tok.Start())
			reconsume, state := stateParsers[tt.startingState](tok, tt.inRune, false)
			assert.Equal(t, tt.nextExpectedState, state)
			assert.Equal(t, tt.shouldReconsume, reconsume)
		})
	}
}

func TestEveryStateHasAParser(t *testing.T) {
	for s := State(0); s < stateCount; s++ {
		assert.NotNil(t, stateParsers[s], s.String())
	}
}

type parserStatefulnessTestCase struct {
	inHTML     string                                      // the HTML to tokenize
	startState State                                       // the starting state of the tokenizer
	testFunc   func(*Tokenizer) (interface{}, interface{}) // looks inside the tokenizer; returns got, want
}

// TestParseStatefulness runs input without EOF so the scratch state is
// still there to inspect.
func TestParseStatefulness(t *testing.T) {
	strBuf := func(want string) func(*Tokenizer) (interface{}, interface{}) {
		return func(p *Tokenizer) (interface{}, interface{}) { return string(p.strBuf), want }
	}
	testCases := []parserStatefulnessTestCase{
		{"&", DataState, func(p *Tokenizer) (interface{}, interface{}) { return p.returnState, DataState }},
		{"&", RCDataState, func(p *Tokenizer) (interface{}, interface{}) { return p.returnState, RCDataState }},
		{"b", tagOpenState, strBuf("b")},
		{"bAc", tagOpenState, strBuf("bac")},
		{"bA\u0000c", tagOpenState, strBuf("ba\uFFFDc")},
		{"P", endTagOpenState, strBuf("p")},
		{"P", endTagOpenState, func(p *Tokenizer) (interface{}, interface{}) { return p.endTag, true }},
		{"1", endTagOpenState, strBuf("1")},
		{"U", rcDataEndTagNameState, strBuf("U")},
		{"u", scriptDataEscapedEndTagNameState, strBuf("u")},
		{"doc", markupDeclarationOpenState, strBuf("doc")},
		{"doc", markupDeclarationOpenState, func(p *Tokenizer) (interface{}, interface{}) { return p.index, 3 }},
		{"[CDA", markupDeclarationOpenState, func(p *Tokenizer) (interface{}, interface{}) { return p.state, cdataStartState }},
		{"pub", afterDoctypeNameState, func(p *Tokenizer) (interface{}, interface{}) { return p.state, doctypeUblicState }},
		{"script>", scriptDataDoubleEscapeStartState, func(p *Tokenizer) (interface{}, interface{}) {
			return p.state, scriptDataDoubleEscapedState
		}},
		{"&no", DataState, func(p *Tokenizer) (interface{}, interface{}) { return string(p.charRefBuf), "&no" }},
		{"&#x4a", DataState, func(p *Tokenizer) (interface{}, interface{}) { return p.charRefCode, 0x4a }},
		{"<a b", DataState, func(p *Tokenizer) (interface{}, interface{}) { return p.tagName.Name, "a" }},
		{"<!DOCTYPE html", DataState, func(p *Tokenizer) (interface{}, interface{}) { return string(p.strBuf), "html" }},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(fmt.Sprintf("%s-%s", tt.startState, tt.inHTML), func(t *testing.T) {
			t.Parallel()
			p := NewTokenizer(&Recorder{}, DefaultConfig())
			require.NoError(t, p.Start())
			p.state = tt.startState
			if p.attributes == nil {
				p.newTag(tt.startState == rcDataEndTagNameState || tt.startState == scriptDataEscapedEndTagNameState)
			}
			require.NoError(t, p.Tokenize([]rune(tt.inHTML)))
			got, want := tt.testFunc(p)
			assert.Equal(t, want, got)
		})
	}
}

func TestTokenStreams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"text", "Hello", []Token{chars("Hello"), eofToken}},
		{"empty", "", []Token{eofToken}},
		{"element", "<p class=x>Hi</p>", []Token{start("p", attr("class", "x")), chars("Hi"), end("p"), eofToken}},
		{"self closing", "<br/>", []Token{selfClosing("br"), eofToken}},
		{"upper case", "<DIV ID=A></DiV>", []Token{start("div", attr("id", "A")), end("div"), eofToken}},
		{"custom element", "<my-el></my-el>", []Token{start("my-el"), end("my-el"), eofToken}},
		{"null", "a\u0000b", []Token{chars("a\uFFFDb"), eofToken}},
		{"newlines", "a\r\nb\rc\n", []Token{chars("a\nb\nc\n"), eofToken}},
		{"lone lt", "a<", []Token{chars("a<"), eofToken}},
		{"lt digit", "a<1", []Token{chars("a<1"), eofToken}},
		{"empty end tag", "a</>b", []Token{chars("ab"), eofToken}},
		{"eof in tag", "a<p class", []Token{chars("a"), eofToken}},
		{"eof after end tag open", "</", []Token{chars("</"), eofToken}},

		{"comment", "<!--a-->", []Token{comment("a"), eofToken}},
		{"empty comment", "<!---->", []Token{comment(""), eofToken}},
		{"abrupt comment", "<!-->", []Token{comment(""), eofToken}},
		{"dash comment", "<!---x-->", []Token{comment("-x"), eofToken}},
		{"nested comment", "<!--<!-- x-->", []Token{comment("<!-- x"), eofToken}},
		{"bang comment", "<!--a--!>b", []Token{comment("a"), chars("b"), eofToken}},
		{"bang inside comment", "<!--a--!b-->", []Token{comment("a--!b"), eofToken}},
		{"eof in comment", "<!--abc", []Token{comment("abc"), eofToken}},
		{"bogus comment", "<?xml version?>", []Token{comment("?xml version?"), eofToken}},
		{"end tag bogus comment", "</ x>", []Token{comment(" x"), eofToken}},
		{"half keyword", "<!dox>", []Token{comment("dox"), eofToken}},
		{"single hyphen", "<!-x>", []Token{comment("-x"), eofToken}},
		{"cdata in html", "<![CDATA[x]]>", []Token{comment("[CDATA[x]]"), eofToken}},
		{"partial cdata", "<![CDAT>", []Token{comment("[CDAT"), eofToken}},

		{"doctype", "<!DOCTYPE html>", []Token{{Type: DoctypeToken, Name: "html"}, eofToken}},
		{"doctype lower", "<!doctype HTML>", []Token{{Type: DoctypeToken, Name: "html"}, eofToken}},
		{"doctype ids", `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`, []Token{
			{Type: DoctypeToken, Name: "html", PublicID: sp("-//W3C//DTD HTML 4.01//EN"), SystemID: sp("http://www.w3.org/TR/html4/strict.dtd")},
			eofToken,
		}},
		{"doctype system", "<!DOCTYPE html SYSTEM 'about:legacy-compat'>", []Token{
			{Type: DoctypeToken, Name: "html", SystemID: sp("about:legacy-compat")},
			eofToken,
		}},
		{"doctype empty ids", `<!DOCTYPE html PUBLIC "" ''>`, []Token{
			{Type: DoctypeToken, Name: "html", PublicID: sp(""), SystemID: sp("")},
			eofToken,
		}},
		{"doctype missing name", "<!DOCTYPE>", []Token{{Type: DoctypeToken, ForceQuirks: true}, eofToken}},
		{"doctype missing public", "<!DOCTYPE html PUBLIC>", []Token{{Type: DoctypeToken, Name: "html", ForceQuirks: true}, eofToken}},
		{"doctype bad keyword", "<!DOCTYPE html PUBLEX>", []Token{{Type: DoctypeToken, Name: "html", ForceQuirks: true}, eofToken}},
		{"doctype junk after system", "<!DOCTYPE html SYSTEM 'a' junk>", []Token{
			{Type: DoctypeToken, Name: "html", SystemID: sp("a")},
			eofToken,
		}},
		{"doctype abrupt", `<!DOCTYPE html PUBLIC "abc>`, []Token{
			{Type: DoctypeToken, Name: "html", PublicID: sp("abc"), ForceQuirks: true},
			eofToken,
		}},
		{"eof in doctype", "<!DOCTYPE html", []Token{{Type: DoctypeToken, Name: "html", ForceQuirks: true}, eofToken}},

		{"named", "&amp;", []Token{chars("&"), eofToken}},
		{"named eof", "&amp", []Token{chars("&"), eofToken}},
		{"named longest", "&notin;", []Token{chars("\u2209"), eofToken}},
		{"named prefix", "&notit;", []Token{chars("\u00ACit;"), eofToken}},
		{"named two runes", "&NotEqualTilde;", []Token{chars("\u2242\u0338"), eofToken}},
		{"named digit", "&frac12;", []Token{chars("\u00BD"), eofToken}},
		{"named unknown", "&foo;", []Token{chars("&foo;"), eofToken}},
		{"ampersand space", "& x", []Token{chars("& x"), eofToken}},
		{"ampersand digit", "&1;", []Token{chars("&1;"), eofToken}},
		{"decimal", "&#65;&#66", []Token{chars("AB"), eofToken}},
		{"hex", "&#x41;&#X62;", []Token{chars("Ab"), eofToken}},
		{"windows-1252", "&#x80;&#150;", []Token{chars("\u20AC\u2013"), eofToken}},
		{"null reference", "&#0;", []Token{chars("\uFFFD"), eofToken}},
		{"out of range", "&#x110000;&#99999999999999;", []Token{chars("\uFFFD\uFFFD"), eofToken}},
		{"surrogate", "&#xD800;", []Token{chars("\uFFFD"), eofToken}},
		{"astral", "&#x1F600;", []Token{chars("\U0001F600"), eofToken}},
		{"no digits", "&#;&#x;", []Token{chars("&#;&#x;"), eofToken}},
		{"attribute legacy equals", `<a href="?a=1&copy=2">`, []Token{start("a", attr("href", "?a=1&copy=2")), eofToken}},
		{"attribute legacy alnum", `<a title="&copy2">`, []Token{start("a", attr("title", "&copy2")), eofToken}},
		{"attribute legacy space", `<a title="&copy x">`, []Token{start("a", attr("title", "\u00A9 x")), eofToken}},
		{"data legacy alnum", "&copy2", []Token{chars("\u00A92"), eofToken}},
		{"attribute unquoted reference", "<a b=&lt;c>", []Token{start("a", attr("b", "<c")), eofToken}},

		{"rcdata", "<title>a<b>&amp;</tit</TITLE>x", []Token{
			start("title"), chars("a<b>&</tit"), end("title"), chars("x"), eofToken,
		}},
		{"textarea end tag attributes", "<textarea></textarea x=y>", []Token{start("textarea"), end("textarea"), eofToken}},
		{"rawtext", "<style>a&amp;<b></style>", []Token{start("style"), chars("a&amp;<b>"), end("style"), eofToken}},
		{"script", "<script>a</b></script>", []Token{start("script"), chars("a</b>"), end("script"), eofToken}},
		{"script double escape", "<script><!--<script></script>--></script>", []Token{
			start("script"), chars("<!--<script></script>-->"), end("script"), eofToken,
		}},
		{"script escaped end", "<script><!--</script>x", []Token{start("script"), chars("<!--"), end("script"), chars("x"), eofToken}},
		{"script eof escaped", "<script><!--x", []Token{start("script"), chars("<!--x"), eofToken}},
		{"plaintext", "<plaintext></plaintext>", []Token{start("plaintext"), chars("</plaintext>"), eofToken}},
		{"noscript without scripting", "<noscript><b></noscript>", []Token{start("noscript"), start("b"), end("noscript"), eofToken}},

		{"cdata in svg", "<svg><![CDATA[a]]b]]]></svg>", []Token{start("svg"), chars("a]]b]"), end("svg"), eofToken}},
		{"cdata null", "<svg><![CDATA[a\u0000]]>", []Token{start("svg"), chars("a\uFFFD"), eofToken}},
		{"eof in cdata", "<math><![CDATA[a]", []Token{start("math"), chars("a]"), eofToken}},
		{"svg attributes", `<svg viewBox="0 0 1 1" xlink:href="#a"></svg>`, []Token{
			start("svg", attr("viewbox", "0 0 1 1"), attr("xlink:href", "#a")), end("svg"), eofToken,
		}},
		{"foreign end restores html", "<svg></svg><![CDATA[x]]>", []Token{start("svg"), end("svg"), comment("[CDATA[x]]"), eofToken}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tokensOf(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  []ErrorCode
	}{
		{"<p>ok</p>", nil},
		{"<p a=1 a=2>", []ErrorCode{ErrDuplicateAttribute}},
		{"\u0000", []ErrorCode{ErrUnexpectedNullCharacter}},
		{"&#0;", []ErrorCode{ErrNullCharacterReference}},
		{"&#x80;", []ErrorCode{ErrControlCharacterReference}},
		{"&#xFFFE;", []ErrorCode{ErrNoncharacterCharacterReference}},
		{"&#65", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
		{"&notit;", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
		{"&foo;", []ErrorCode{ErrUnknownNamedCharacterReference}},
		{"&#;", []ErrorCode{ErrAbsenceOfDigitsInNumericCharacterRef}},
		{"</p a=1>", []ErrorCode{ErrEndTagWithAttributes}},
		{"</p/>", []ErrorCode{ErrEndTagWithTrailingSolidus}},
		{"<!DOCTYPE>", []ErrorCode{ErrMissingDoctypeName}},
		{"<!DOCTYPEhtml>", []ErrorCode{ErrMissingWhitespaceBeforeDoctypeName}},
		{"<!--a", []ErrorCode{ErrEOFInComment}},
		{"<a", []ErrorCode{ErrEOFInTag}},
		{"<", []ErrorCode{ErrEOFBeforeTagName}},
		{"<?x>", []ErrorCode{ErrUnexpectedQuestionMarkInsteadOfTagName}},
		{"<!x>", []ErrorCode{ErrIncorrectlyOpenedComment}},
		{"<![CDATA[x]]>", []ErrorCode{ErrCDATAInHTMLContent}},
		{"<!--a--!>", []ErrorCode{ErrIncorrectlyClosedComment}},
		{"<!-->", []ErrorCode{ErrAbruptClosingOfEmptyComment}},
		{"<!---->", nil},
		{"<svg><![CDATA[\u0000]]>", nil},
		{"<a b='c'd>", []ErrorCode{ErrMissingWhitespaceBetweenAttributes}},
		{"<a b=c\"d>", []ErrorCode{ErrUnexpectedCharacterInUnquotedAttrValue}},
		{"<a b=>", []ErrorCode{ErrMissingAttributeValue}},
		{"<a / b>", []ErrorCode{ErrUnexpectedSolidusInTag}},
		{"<svg><![CDATA[x", []ErrorCode{ErrEOFInCDATA}},
		{"<script><!--", []ErrorCode{ErrEOFInScriptHTMLCommentLikeText}},
		{"a\fb", []ErrorCode{ErrContentSpace}},
		{"<!--a--b-->", []ErrorCode{ErrConsecutiveHyphensInComment}},
		{"<!--a-- -- b-->", []ErrorCode{ErrConsecutiveHyphensInComment}},
		{"<!--a--->", []ErrorCode{ErrTrailingHyphenInComment}},
		{"<!DOCTYPE html SYSTEM 'a' b>", []ErrorCode{ErrUnexpectedCharacterAfterDoctypeSystemID}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			sink := &errorSink{}
			require.NoError(t, runTokenizer(t, configWith(sink), &Recorder{}, tt.input))
			assert.Equal(t, tt.want, sink.codes())
		})
	}
}

func TestErrorLines(t *testing.T) {
	sink := &errorSink{}
	require.NoError(t, runTokenizer(t, configWith(sink), &Recorder{}, "<p>\n\r\n\u0000", "\r", "\n&#0;"))
	require.Len(t, sink.errs, 2)
	assert.Equal(t, 3, sink.errs[0].Line)
	assert.Equal(t, 4, sink.errs[1].Line)
}

func TestCommentPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy html.Policy
		input  string
		want   []Token
		fatal  ErrorCode
	}{
		{"allow hyphens", html.Allow, "<!--a--b-->", []Token{comment("a--b"), eofToken}, ""},
		{"alter hyphens", html.AlterInfoset, "<!--a--b---c-->", []Token{comment("a- -b- - -c"), eofToken}, ""},
		{"fatal hyphens", html.Fatal, "<!--a--b-->", nil, ErrConsecutiveHyphensInComment},
		{"allow trailing", html.Allow, "<!--a--->", []Token{comment("a-"), eofToken}, ""},
		{"alter trailing", html.AlterInfoset, "<!--a--->", []Token{comment("a- "), eofToken}, ""},
		{"fatal trailing", html.Fatal, "<!--a--->", nil, ErrTrailingHyphenInComment},
		{"fatal clean", html.Fatal, "<!-- a - b -->", []Token{comment(" a - b "), eofToken}, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			cfg.CommentPolicy = tt.policy
			rec := &Recorder{}
			err := runTokenizer(t, cfg, rec, tt.input)
			if tt.fatal != "" {
				var fe *FatalError
				require.True(t, errors.As(err, &fe), "want FatalError, got %v", err)
				assert.Equal(t, tt.fatal, fe.Code)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, rec.Tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentSpacePolicy(t *testing.T) {
	tests := []struct {
		policy html.Policy
		want   []Token
		codes  []ErrorCode
	}{
		{html.Allow, []Token{start("p", attr("title", "a\vb")), chars("c\fd"), eofToken}, []ErrorCode{ErrContentSpace, ErrContentSpace}},
		{html.AlterInfoset, []Token{start("p", attr("title", "a b")), chars("c d"), eofToken}, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.policy.String(), func(t *testing.T) {
			t.Parallel()
			sink := &errorSink{}
			cfg := configWith(sink)
			cfg.ContentSpacePolicy = tt.policy
			rec := &Recorder{}
			require.NoError(t, runTokenizer(t, cfg, rec, "<p\ftitle='a\vb'>c\fd"))
			if diff := cmp.Diff(tt.want, rec.Tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.codes, sink.codes())
		})
	}

	t.Run("fatal", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.ContentSpacePolicy = html.Fatal
		tok := NewTokenizer(&Recorder{}, cfg)
		require.NoError(t, tok.Start())
		err := tok.Tokenize([]rune("ab\fc"))
		var fe *FatalError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, ErrContentSpace, fe.Code)

		// nothing is accepted after a fatal error
		err = tok.Tokenize([]rune("more"))
		assert.ErrorIs(t, err, ErrStopped)
		assert.ErrorIs(t, tok.EOF(), ErrStopped)
	})
}

func TestXmlnsPolicy(t *testing.T) {
	const input = `<p xmlns="x" xmlns:foo="y" id=z>`
	tests := []struct {
		policy html.Policy
		want   []Token
		codes  []ErrorCode
	}{
		{html.Allow, []Token{start("p", attr("xmlns", "x"), attr("xmlns:foo", "y"), attr("id", "z")), eofToken},
			[]ErrorCode{ErrNonNCNameAttribute}},
		{html.AlterInfoset, []Token{start("p", attr("id", "z")), eofToken}, []ErrorCode{ErrXmlnsAttribute, ErrXmlnsAttribute}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.policy.String(), func(t *testing.T) {
			t.Parallel()
			sink := &errorSink{}
			cfg := configWith(sink)
			cfg.XmlnsPolicy = tt.policy
			rec := &Recorder{}
			require.NoError(t, runTokenizer(t, cfg, rec, input))
			if diff := cmp.Diff(tt.want, rec.Tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.codes, sink.codes())
		})
	}

	t.Run("fatal", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.XmlnsPolicy = html.Fatal
		err := runTokenizer(t, cfg, &Recorder{}, `<p xmlns:foo="y">`)
		var fe *FatalError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, ErrXmlnsAttribute, fe.Code)
		var xe *html.XmlnsError
		require.True(t, errors.As(err, &xe))
		assert.Equal(t, "xmlns:foo", xe.Name)
	})
}

func TestNamePolicy(t *testing.T) {
	const input = "<p a<b=1 ok=2>"
	tests := []struct {
		policy html.Policy
		want   []Token
		codes  []ErrorCode
	}{
		{html.Allow, []Token{start("p", attr("a<b", "1"), attr("ok", "2")), eofToken},
			[]ErrorCode{ErrUnexpectedCharacterInAttributeName, ErrNonNCNameAttribute}},
		{html.AlterInfoset, []Token{start("p", attr("aU00003Cb", "1"), attr("ok", "2")), eofToken},
			[]ErrorCode{ErrUnexpectedCharacterInAttributeName}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.policy.String(), func(t *testing.T) {
			t.Parallel()
			sink := &errorSink{}
			cfg := configWith(sink)
			cfg.NamePolicy = tt.policy
			rec := &Recorder{}
			require.NoError(t, runTokenizer(t, cfg, rec, input))
			if diff := cmp.Diff(tt.want, rec.Tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.codes, sink.codes())
		})
	}

	t.Run("fatal", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.NamePolicy = html.Fatal
		err := runTokenizer(t, cfg, &Recorder{}, input)
		var ne *html.NameError
		require.True(t, errors.As(err, &ne), "got %v", err)
		assert.Equal(t, "a<b", ne.Name)
	})

	t.Run("check disabled", func(t *testing.T) {
		t.Parallel()
		sink := &errorSink{}
		cfg := configWith(sink)
		cfg.DisableNCNameCheck = true
		require.NoError(t, runTokenizer(t, cfg, &Recorder{}, input))
		assert.Equal(t, []ErrorCode{ErrUnexpectedCharacterInAttributeName}, sink.codes())
	})
}

// Splitting the input anywhere must not change the merged token stream.
func TestChunkBoundaries(t *testing.T) {
	const doc = "<!DOCTYPE html PUBLIC 'p' 'q'><p id=a class='b c'>x &amp; y&notit; &#x41;\r\n" +
		"<!--c--><script>if(a<b){}<!--<script>--></script><title>t&lt;</title>" +
		"<svg><![CDATA[d]]></svg><a href=\"?x=1&copy=2\">&frac12</a>"
	want := tokensOf(t, doc)
	runes := []rune(doc)
	for i := 0; i <= len(runes); i++ {
		got := tokensOf(t, string(runes[:i]), string(runes[i:]))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("split at %d (-want +got):\n%s", i, diff)
		}
	}
	// one character per call
	var singles []string
	for _, r := range runes {
		singles = append(singles, string(r))
	}
	if diff := cmp.Diff(want, tokensOf(t, singles...)); diff != "" {
		t.Fatalf("rune at a time (-want +got):\n%s", diff)
	}
}

func TestSingleEOF(t *testing.T) {
	inputs := []string{
		"", "a", "<", "</", "<a", "<a b", "<a b=", "<a b='", "<!", "<!-", "<!--", "<!--a-", "<!--a--",
		"<!d", "<!DOCTYPE", "<!DOCTYPE a P", "<!DOCTYPE a PUBLIC '", "&", "&a", "&am", "&#", "&#x", "&#1",
		"<script><!--<script>", "<title></tit", "<svg><![CDATA[", "<svg><![CDATA[]]",
	}
	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			toks := tokensOf(t, in)
			require.NotEmpty(t, toks)
			n := 0
			for _, tok := range toks {
				if tok.Type == EndOfFileToken {
					n++
				}
			}
			assert.Equal(t, 1, n)
			assert.Equal(t, EndOfFileToken, toks[len(toks)-1].Type)
		})
	}
}

func TestWriteUTF8(t *testing.T) {
	input := []byte("<p title=\"caf\u00E9 \U0001F600\">&eacute;\u4E2D</p>")
	want := []Token{
		start("p", attr("title", "caf\u00E9 \U0001F600")), chars("\u00E9\u4E2D"), end("p"), eofToken,
	}
	for i := 0; i <= len(input); i++ {
		rec := &Recorder{}
		tok := NewTokenizer(rec, DefaultConfig())
		require.NoError(t, tok.Start())
		n, err := tok.Write(input[:i])
		require.NoError(t, err)
		assert.Equal(t, i, n)
		_, err = tok.Write(input[i:])
		require.NoError(t, err)
		require.NoError(t, tok.EOF())
		require.NoError(t, tok.End())
		if diff := cmp.Diff(want, rec.Tokens); diff != "" {
			t.Fatalf("split at byte %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestWriteInvalidUTF8(t *testing.T) {
	rec := &Recorder{}
	tok := NewTokenizer(rec, DefaultConfig())
	require.NoError(t, tok.Start())
	_, err := tok.Write([]byte{'a', 0xff, 'b', 0xe2, 0x82})
	require.NoError(t, err)
	require.NoError(t, tok.EOF())
	assert.Equal(t, []Token{chars("a\uFFFDb\uFFFD"), eofToken}, rec.Tokens)
}

func TestSuspension(t *testing.T) {
	rec := &Recorder{SuspendOn: func(tok Token) bool { return tok.Type == StartTagToken }}
	tok := NewTokenizer(rec, DefaultConfig())
	require.NoError(t, tok.Start())

	require.NoError(t, tok.Tokenize([]rune("<a>x<b>y")))
	require.True(t, tok.Suspended())
	assert.Equal(t, []Token{start("a")}, rec.Tokens)
	assert.ErrorIs(t, tok.Tokenize([]rune("z")), ErrSuspended)

	require.NoError(t, tok.Resume())
	require.True(t, tok.Suspended())
	assert.Equal(t, []Token{start("a"), chars("x"), start("b")}, rec.Tokens)

	require.NoError(t, tok.Resume())
	assert.False(t, tok.Suspended())
	require.NoError(t, tok.EOF())
	assert.Equal(t, []Token{start("a"), chars("x"), start("b"), chars("y"), eofToken}, rec.Tokens)

	// a request on the last character leaves nothing to suspend
	require.NoError(t, tok.Start())
	rec.Tokens = nil
	require.NoError(t, tok.Tokenize([]rune("<i>")))
	assert.False(t, tok.Suspended())
	require.NoError(t, tok.Tokenize([]rune("<u>")))
	assert.False(t, tok.Suspended())
}

func TestLoadState(t *testing.T) {
	first := &Recorder{}
	a := NewTokenizer(first, DefaultConfig())
	require.NoError(t, a.Start())
	require.NoError(t, a.Tokenize([]rune("<p id=one title='x")))

	second := &Recorder{}
	b := NewTokenizer(second, DefaultConfig())
	require.NoError(t, b.Start())
	b.LoadState(a)
	assert.Equal(t, a.State(), b.State())
	require.NoError(t, b.Tokenize([]rune("y'>z")))
	require.NoError(t, b.EOF())

	want := []Token{start("p", attr("id", "one"), attr("title", "xy")), chars("z"), eofToken}
	if diff := cmp.Diff(want, second.Tokens); diff != "" {
		t.Errorf("restored tokenizer (-want +got):\n%s", diff)
	}
	// the original keeps its own state
	require.NoError(t, a.Tokenize([]rune("'>")))
	require.NoError(t, a.EOF())
	want = []Token{start("p", attr("id", "one"), attr("title", "x")), eofToken}
	if diff := cmp.Diff(want, first.Tokens); diff != "" {
		t.Errorf("original tokenizer (-want +got):\n%s", diff)
	}
}

func TestSetState(t *testing.T) {
	rec := &Recorder{}
	tok := NewTokenizer(rec, DefaultConfig())
	require.NoError(t, tok.Start())
	assert.True(t, tok.InDataState())

	require.NoError(t, tok.Tokenize([]rune("<foo>")))
	tok.SetState(RCDataState)
	require.NoError(t, tok.Tokenize([]rune("<b></foo>")))

	tok.SetStateAndEndTagExpectation(RawTextState, names.ElementNameFor("xmp"))
	require.NoError(t, tok.Tokenize([]rune("&amp;</foo></XMP>")))
	require.NoError(t, tok.EOF())

	want := []Token{start("foo"), chars("<b>"), end("foo"), chars("&amp;</foo>"), end("xmp"), eofToken}
	if diff := cmp.Diff(want, rec.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLineNumbers(t *testing.T) {
	tok := NewTokenizer(&Recorder{}, DefaultConfig())
	require.NoError(t, tok.Start())
	assert.Equal(t, 1, tok.Line())
	require.NoError(t, tok.Tokenize([]rune("a\r\nb\rc\n")))
	assert.Equal(t, 4, tok.Line())
	tok.SetLineNumber(10)
	require.NoError(t, tok.Tokenize([]rune("\n")))
	assert.Equal(t, 11, tok.Line())
}

func TestReuseAttributes(t *testing.T) {
	const doc = "<a href=1 id=x><b class=c></b><i lang=en>"
	want := tokensOf(t, doc)

	cfg := DefaultConfig()
	cfg.ReuseAttributes = true
	rec := &Recorder{}
	require.NoError(t, runTokenizer(t, cfg, rec, doc))
	if diff := cmp.Diff(want, rec.Tokens); diff != "" {
		t.Errorf("reused collection changed tokens (-want +got):\n%s", diff)
	}
}

func TestMapLangToXmlLang(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapLangToXmlLang = true
	rec := &Recorder{}
	require.NoError(t, runTokenizer(t, cfg, rec, "<p lang=en>"))
	assert.Equal(t, []Token{start("p", attr("xml:lang", "en")), eofToken}, rec.Tokens)
}

var errFailingHandler = errors.New("no end tags")

type failingHandler struct {
	*Recorder
}

func (failingHandler) EndTag(names.ElementName) error {
	return errFailingHandler
}

func TestHandlerError(t *testing.T) {
	h := failingHandler{&Recorder{}}
	tok := NewTokenizer(h, DefaultConfig())
	require.NoError(t, tok.Start())
	err := tok.Tokenize([]rune("<a>b</a>c"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errFailingHandler)
	assert.Equal(t, []Token{start("a"), chars("b")}, h.Tokens)
	assert.ErrorIs(t, tok.Tokenize([]rune("x")), ErrStopped)
}

func TestTraceLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	cfg := DefaultConfig()
	cfg.Logger = logger
	require.NoError(t, runTokenizer(t, cfg, &Recorder{}, "<a>"))

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	first := entries[0]
	assert.Equal(t, "tokenizer transition", first.Message)
	assert.Equal(t, "DataState", first.Data["from"])
	assert.Equal(t, "tagOpenState", first.Data["to"])

	// no tracing below trace level
	logger.SetLevel(logrus.DebugLevel)
	hook.Reset()
	require.NoError(t, runTokenizer(t, cfg, &Recorder{}, "<a>"))
	assert.Empty(t, hook.AllEntries())
}

func TestLogrusErrorHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := LogrusErrorHandler(logger)
	handler(&ParseError{Code: ErrNestedComment, Line: 3, Message: "nested"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "nested-comment", entry.Data["code"])
	assert.Equal(t, 3, entry.Data["line"])
	assert.Equal(t, "nested", entry.Message)
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t, "line 2: eof-in-tag", (&ParseError{Code: ErrEOFInTag, Line: 2}).Error())
	assert.Equal(t, "line 2: eof-in-tag: x", (&ParseError{Code: ErrEOFInTag, Line: 2, Message: "x"}).Error())
	assert.Equal(t, "line 1: fatal content-space", (&FatalError{Code: ErrContentSpace, Line: 1}).Error())
}

func TestUpperCaseDuplicateScenario(t *testing.T) {
	sink := &errorSink{}
	rec := &Recorder{}
	require.NoError(t, runTokenizer(t, configWith(sink), rec, `<DIV Class="a" CLASS="b">text</div>`))
	assert.Equal(t, []Token{start("div", attr("class", "a")), chars("text"), end("div"), eofToken}, rec.Tokens)
	assert.Equal(t, []ErrorCode{ErrDuplicateAttribute}, sink.codes())
}

func TestCRLFAcrossBuffers(t *testing.T) {
	whole := tokensOf(t, "a\r\nb")
	split := tokensOf(t, "a\r", "\nb")
	assert.Equal(t, []Token{chars("a\nb"), eofToken}, split)
	assert.Equal(t, whole, split)
}

func TestContentSpaceAfterReconsume(t *testing.T) {
	tests := []struct {
		name   string
		inHTML string
		want   []Token
	}{
		{"after less-than", "a<\fb", []Token{chars("a< b"), eofToken}},
		{"after ampersand", "a&\fb", []Token{chars("a& b"), eofToken}},
		{"escaped dash", "<script><!--a-\fb-->", []Token{start("script"), chars("<!--a- b-->"), eofToken}},
		{"escaped dash dash", "<script><!--a--\fb-->", []Token{start("script"), chars("<!--a-- b-->"), eofToken}},
		{"double escape start", "<script><!--<script\fx", []Token{start("script"), chars("<!--<script x"), eofToken}},
		{"double escaped dash", "<script><!--<script>-\f", []Token{start("script"), chars("<!--<script>- "), eofToken}},
		{"double escaped dash dash", "<script><!--<script>--\v", []Token{start("script"), chars("<!--<script>-- "), eofToken}},
		{"double escape end", "<script><!--<script></script\f", []Token{start("script"), chars("<!--<script></script "), eofToken}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sink := &errorSink{}
			cfg := configWith(sink)
			cfg.ContentSpacePolicy = html.AlterInfoset
			rec := &Recorder{}
			require.NoError(t, runTokenizer(t, cfg, rec, tt.inHTML))
			if diff := cmp.Diff(tt.want, rec.Tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}

			sink = &errorSink{}
			require.NoError(t, runTokenizer(t, configWith(sink), &Recorder{}, tt.inHTML))
			n := 0
			for _, code := range sink.codes() {
				if code == ErrContentSpace {
					n++
				}
			}
			assert.Equal(t, 1, n)
		})
	}
}

func TestInputAfterEOF(t *testing.T) {
	rec := &Recorder{}
	tok := NewTokenizer(rec, DefaultConfig())
	require.NoError(t, tok.Start())
	require.NoError(t, tok.Tokenize([]rune("a")))
	require.NoError(t, tok.EOF())

	assert.ErrorIs(t, tok.Tokenize([]rune("<b>c")), ErrAfterEOF)
	_, err := tok.Write([]byte("<b>c"))
	assert.ErrorIs(t, err, ErrAfterEOF)
	assert.NoError(t, tok.EOF())
	assert.Equal(t, []Token{chars("a"), eofToken}, rec.Tokens)

	rec.Tokens = nil
	require.NoError(t, tok.Start())
	require.NoError(t, tok.Tokenize([]rune("<b>")))
	assert.Equal(t, []Token{start("b")}, rec.Tokens)
}
