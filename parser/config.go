package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltokenizer/parser/html"
	"github.com/heathj/htmltokenizer/parser/names"
)

// Config holds the knobs the tokenizer reads. The zero value is usable and
// equal to DefaultConfig.
type Config struct {
	// CommentPolicy covers "--" inside comments and a hyphen right
	// before the comment end.
	CommentPolicy html.Policy
	// ContentSpacePolicy covers U+000C and U+000B in text and attribute
	// values.
	ContentSpacePolicy html.Policy
	// XmlnsPolicy covers attributes named xmlns or xmlns:*.
	XmlnsPolicy html.Policy
	// NamePolicy covers attribute names that are not NCNames. The
	// tokenizer only carries it; tree builders apply it once the final
	// attribute mode is known.
	NamePolicy html.Policy

	// MapLangToXmlLang selects the lang-mapping HTML mode for attributes.
	MapLangToXmlLang bool
	// ReuseAttributes clears one collection between tags instead of
	// allocating a new one. Handlers must copy what they keep.
	ReuseAttributes bool
	// DisableNCNameCheck skips NCName classification of ad-hoc names.
	DisableNCNameCheck bool

	// ErrorHandler receives every parse error and warning. Nil drops them.
	ErrorHandler func(*ParseError)
	// Logger receives state traces at trace level. Nil means the logrus
	// standard logger.
	Logger *logrus.Logger
}

func DefaultConfig() Config {
	return Config{
		CommentPolicy:      html.Allow,
		ContentSpacePolicy: html.Allow,
		XmlnsPolicy:        html.Allow,
		NamePolicy:         html.Allow,
	}
}

func (c Config) attributeMode() names.Mode {
	if c.MapLangToXmlLang {
		return names.HTMLLang
	}
	return names.HTML
}
