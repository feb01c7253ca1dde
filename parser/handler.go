package parser

import (
	"github.com/heathj/htmltokenizer/parser/html"
	"github.com/heathj/htmltokenizer/parser/names"
)

// TokenHandler receives tokens. Rune slices are only valid for the
// duration of the call. Returning an error aborts the scan.
//
// StartTag may switch the content model with SetStateAndEndTagExpectation
// or ask for a suspension with RequestSuspension. When attribute reuse is
// configured, attrs is cleared after StartTag returns.
type TokenHandler interface {
	StartTokenization(t *Tokenizer) error
	StartTag(name names.ElementName, attrs *html.Attributes, selfClosing bool) error
	EndTag(name names.ElementName) error
	Comment(buf []rune) error
	Characters(buf []rune) error
	Doctype(name string, publicID, systemID *string, forceQuirks bool) error
	EOF() error
	EndTokenization() error

	// WantsComments is asked for each comment; comments are scanned
	// either way.
	WantsComments() bool
	// CDATASectionAllowed is asked when <![CDATA[ has been seen.
	CDATASectionAllowed() bool
	// EnsureBufferSpace hints how many characters the next Tokenize call
	// may deliver.
	EnsureBufferSpace(n int)
}
