package parser

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrorCode names a diagnostic. The HTML codes are the ones the WHATWG
// tokenization section defines; the rest flag markup XML cannot represent.
type ErrorCode string

const (
	ErrAbruptClosingOfEmptyComment                ErrorCode = "abrupt-closing-of-empty-comment"
	ErrAbruptDoctypePublicIdentifier              ErrorCode = "abrupt-doctype-public-identifier"
	ErrAbruptDoctypeSystemIdentifier              ErrorCode = "abrupt-doctype-system-identifier"
	ErrAbsenceOfDigitsInNumericCharacterRef       ErrorCode = "absence-of-digits-in-numeric-character-reference"
	ErrCDATAInHTMLContent                         ErrorCode = "cdata-in-html-content"
	ErrCharacterReferenceOutsideUnicodeRange      ErrorCode = "character-reference-outside-unicode-range"
	ErrControlCharacterReference                  ErrorCode = "control-character-reference"
	ErrDuplicateAttribute                         ErrorCode = "duplicate-attribute"
	ErrEndTagWithAttributes                       ErrorCode = "end-tag-with-attributes"
	ErrEndTagWithTrailingSolidus                  ErrorCode = "end-tag-with-trailing-solidus"
	ErrEOFBeforeTagName                           ErrorCode = "eof-before-tag-name"
	ErrEOFInCDATA                                 ErrorCode = "eof-in-cdata"
	ErrEOFInComment                               ErrorCode = "eof-in-comment"
	ErrEOFInDoctype                               ErrorCode = "eof-in-doctype"
	ErrEOFInScriptHTMLCommentLikeText             ErrorCode = "eof-in-script-html-comment-like-text"
	ErrEOFInTag                                   ErrorCode = "eof-in-tag"
	ErrIncorrectlyClosedComment                   ErrorCode = "incorrectly-closed-comment"
	ErrIncorrectlyOpenedComment                   ErrorCode = "incorrectly-opened-comment"
	ErrInvalidCharacterSequenceAfterDoctypeName   ErrorCode = "invalid-character-sequence-after-doctype-name"
	ErrInvalidFirstCharacterOfTagName             ErrorCode = "invalid-first-character-of-tag-name"
	ErrMissingAttributeValue                      ErrorCode = "missing-attribute-value"
	ErrMissingDoctypeName                         ErrorCode = "missing-doctype-name"
	ErrMissingDoctypePublicIdentifier             ErrorCode = "missing-doctype-public-identifier"
	ErrMissingDoctypeSystemIdentifier             ErrorCode = "missing-doctype-system-identifier"
	ErrMissingEndTagName                          ErrorCode = "missing-end-tag-name"
	ErrMissingQuoteBeforeDoctypePublicIdentifier  ErrorCode = "missing-quote-before-doctype-public-identifier"
	ErrMissingQuoteBeforeDoctypeSystemIdentifier  ErrorCode = "missing-quote-before-doctype-system-identifier"
	ErrMissingSemicolonAfterCharacterReference    ErrorCode = "missing-semicolon-after-character-reference"
	ErrMissingWhitespaceAfterDoctypePublicKeyword ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	ErrMissingWhitespaceAfterDoctypeSystemKeyword ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	ErrMissingWhitespaceBeforeDoctypeName         ErrorCode = "missing-whitespace-before-doctype-name"
	ErrMissingWhitespaceBetweenAttributes         ErrorCode = "missing-whitespace-between-attributes"
	ErrMissingWhitespaceBetweenDoctypeIdentifiers ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	ErrNestedComment                              ErrorCode = "nested-comment"
	ErrNoncharacterCharacterReference             ErrorCode = "noncharacter-character-reference"
	ErrNullCharacterReference                     ErrorCode = "null-character-reference"
	ErrSurrogateCharacterReference                ErrorCode = "surrogate-character-reference"
	ErrUnexpectedCharacterAfterDoctypeSystemID    ErrorCode = "unexpected-character-after-doctype-system-identifier"
	ErrUnexpectedCharacterInAttributeName         ErrorCode = "unexpected-character-in-attribute-name"
	ErrUnexpectedCharacterInUnquotedAttrValue     ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	ErrUnexpectedEqualsSignBeforeAttributeName    ErrorCode = "unexpected-equals-sign-before-attribute-name"
	ErrUnexpectedNullCharacter                    ErrorCode = "unexpected-null-character"
	ErrUnexpectedQuestionMarkInsteadOfTagName     ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	ErrUnexpectedSolidusInTag                     ErrorCode = "unexpected-solidus-in-tag"
	ErrUnknownNamedCharacterReference             ErrorCode = "unknown-named-character-reference"

	ErrConsecutiveHyphensInComment ErrorCode = "consecutive-hyphens-in-comment"
	ErrTrailingHyphenInComment     ErrorCode = "trailing-hyphen-in-comment"
	ErrNonNCNameAttribute          ErrorCode = "non-ncname-attribute"
	ErrXmlnsAttribute              ErrorCode = "xmlns-attribute"
	ErrContentSpace                ErrorCode = "content-space"
)

// ParseError is a recoverable diagnostic. Tokenization always continues
// after one.
type ParseError struct {
	Code    ErrorCode
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Code)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
}

// FatalError stops the scan. It is only produced when a policy is set to
// Fatal, and the tokenizer refuses further input afterwards.
type FatalError struct {
	Code ErrorCode
	Line int
	Err  error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: fatal %s: %v", e.Line, e.Code, e.Err)
	}
	return fmt.Sprintf("line %d: fatal %s", e.Line, e.Code)
}

func (e *FatalError) Unwrap() error { return e.Err }

// ErrSuspended is returned when input is offered while the tokenizer waits
// for Resume.
var ErrSuspended = errors.New("tokenizer is suspended")

// ErrStopped is returned when input is offered after a fatal error.
var ErrStopped = errors.New("tokenizer stopped after a fatal error")

// ErrAfterEOF is returned when input is offered after EOF. Start begins a
// new scan.
var ErrAfterEOF = errors.New("tokenizer already saw end of file")

// LogrusErrorHandler logs diagnostics at warn level with code and line
// fields.
func LogrusErrorHandler(l logrus.FieldLogger) func(*ParseError) {
	return func(e *ParseError) {
		l.WithFields(logrus.Fields{
			"code": string(e.Code),
			"line": e.Line,
		}).Warn(e.Message)
	}
}
