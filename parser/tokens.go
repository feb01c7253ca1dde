package parser

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/heathj/htmltokenizer/parser/html"
	"github.com/heathj/htmltokenizer/parser/names"
	"github.com/heathj/htmltokenizer/parser/portability"
)

//go:generate stringer -type=TokenType
type TokenType uint

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	EndOfFileToken
	CommentToken
	DoctypeToken
)

// Attribute is a recorded attribute. Name is the qualified name in the
// mode the tag was recorded in.
type Attribute struct {
	Name  string
	Value string
}

// Token is a recorded token. Tokens own their data; nothing in them
// points back into tokenizer buffers.
type Token struct {
	Type        TokenType
	Name        string
	Attributes  []Attribute
	SelfClosing bool
	Data        string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

func (t Token) String() string {
	var b strings.Builder
	switch t.Type {
	case CharacterToken:
		b.WriteString(strconv.Quote(t.Data))
	case StartTagToken, EndTagToken:
		b.WriteByte('<')
		if t.Type == EndTagToken {
			b.WriteByte('/')
		}
		b.WriteString(t.Name)
		for _, a := range t.Attributes {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteByte('=')
			b.WriteString(strconv.Quote(a.Value))
		}
		if t.SelfClosing {
			b.WriteByte('/')
		}
		b.WriteByte('>')
	case CommentToken:
		b.WriteString("<!--")
		b.WriteString(t.Data)
		b.WriteString("-->")
	case DoctypeToken:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(t.Name)
		if t.PublicID != nil {
			b.WriteString(" PUBLIC ")
			b.WriteString(strconv.Quote(*t.PublicID))
		}
		if t.SystemID != nil {
			b.WriteString(" SYSTEM ")
			b.WriteString(strconv.Quote(*t.SystemID))
		}
		if t.ForceQuirks {
			b.WriteString(" quirks")
		}
		b.WriteByte('>')
	case EndOfFileToken:
		b.WriteString("EOF")
	}
	return b.String()
}

// Recorder is a TokenHandler that keeps every token. It does the little
// tree-builder work needed to tokenize real documents: raw text elements
// switch the content model, and CDATA sections are allowed inside svg and
// math.
type Recorder struct {
	Tokens []Token

	// Scripting makes noscript a raw text element.
	Scripting bool
	// DropComments makes the tokenizer skip comment delivery.
	DropComments bool
	// SuspendOn, when set, is asked after each recorded token whether the
	// tokenizer should suspend.
	SuspendOn func(Token) bool

	t        *Tokenizer
	interner *portability.Interner
	// open svg and math elements, innermost last
	foreign []atom.Atom
}

func (r *Recorder) StartTokenization(t *Tokenizer) error {
	r.t = t
	r.interner = portability.NewInterner()
	r.foreign = r.foreign[:0]
	return nil
}

func (r *Recorder) StartTag(name names.ElementName, attrs *html.Attributes, selfClosing bool) error {
	attrs = attrs.CloneAttributes(r.interner)
	foreign := len(r.foreign) > 0
	switch {
	case name.Atom == atom.Svg || (foreign && r.foreign[len(r.foreign)-1] == atom.Svg):
		attrs.AdjustForSVG()
	case name.Atom == atom.Math || foreign:
		attrs.AdjustForMath()
	}
	err := attrs.ProcessNonNCNames(r.t.Config().NamePolicy, func(msg string) {
		r.t.ReportError(ErrNonNCNameAttribute, msg)
	})
	if err != nil {
		return err
	}

	tok := Token{Type: StartTagToken, Name: name.Name, SelfClosing: selfClosing}
	if n := attrs.Len(); n > 0 {
		tok.Attributes = make([]Attribute, n)
		for i := 0; i < n; i++ {
			v, _ := attrs.ValueAt(i)
			tok.Attributes[i] = Attribute{Name: attrs.QName(i), Value: v}
		}
	}

	if (name.Atom == atom.Svg || name.Atom == atom.Math) && !selfClosing {
		r.foreign = append(r.foreign, name.Atom)
	} else if !foreign {
		if s := ContentModelFor(name, r.Scripting); s != DataState {
			r.t.SetStateAndEndTagExpectation(s, name)
		}
	}
	r.record(tok)
	return nil
}

func (r *Recorder) EndTag(name names.ElementName) error {
	if n := len(r.foreign); n > 0 && r.foreign[n-1] == name.Atom {
		r.foreign = r.foreign[:n-1]
	}
	r.record(Token{Type: EndTagToken, Name: name.Name})
	return nil
}

func (r *Recorder) Comment(buf []rune) error {
	r.record(Token{Type: CommentToken, Data: string(buf)})
	return nil
}

// Characters merges adjacent character data into one token.
func (r *Recorder) Characters(buf []rune) error {
	if n := len(r.Tokens); n > 0 && r.Tokens[n-1].Type == CharacterToken {
		r.Tokens[n-1].Data += string(buf)
		r.suspendAfter(r.Tokens[n-1])
		return nil
	}
	r.record(Token{Type: CharacterToken, Data: string(buf)})
	return nil
}

func (r *Recorder) Doctype(name string, publicID, systemID *string, forceQuirks bool) error {
	r.record(Token{
		Type:        DoctypeToken,
		Name:        name,
		PublicID:    copyString(publicID),
		SystemID:    copyString(systemID),
		ForceQuirks: forceQuirks,
	})
	return nil
}

func (r *Recorder) EOF() error {
	r.record(Token{Type: EndOfFileToken})
	return nil
}

func (r *Recorder) EndTokenization() error {
	r.t = nil
	return nil
}

func (r *Recorder) WantsComments() bool { return !r.DropComments }

func (r *Recorder) CDATASectionAllowed() bool { return len(r.foreign) > 0 }

func (r *Recorder) EnsureBufferSpace(n int) {
	if cap(r.Tokens)-len(r.Tokens) < n/16 {
		grown := make([]Token, len(r.Tokens), len(r.Tokens)+n/16)
		copy(grown, r.Tokens)
		r.Tokens = grown
	}
}

func (r *Recorder) record(tok Token) {
	r.Tokens = append(r.Tokens, tok)
	r.suspendAfter(tok)
}

func (r *Recorder) suspendAfter(tok Token) {
	if r.SuspendOn != nil && tok.Type != EndOfFileToken && r.SuspendOn(tok) {
		r.t.RequestSuspension()
	}
}
