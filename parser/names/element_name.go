package names

import (
	"golang.org/x/net/html/atom"

	"github.com/heathj/htmltokenizer/parser/portability"
)

// ElementName identifies a tag name. Known names carry their atom; custom
// and unknown names carry only the interned string.
type ElementName struct {
	Name   string
	Atom   atom.Atom
	Custom bool
}

func (e ElementName) String() string { return e.Name }

// IsZero reports whether e is the empty name.
func (e ElementName) IsZero() bool { return e.Name == "" }

// ElementNameByBuffer resolves a lower-cased tag name. A hyphen marks a
// potential custom element, so such names skip the atom table except for
// annotation-xml.
func ElementNameByBuffer(buf []rune, hasHyphen bool, in *portability.Interner) ElementName {
	if hasHyphen {
		if portability.LowerCaseLiteralEqualsIgnoreASCIICase("annotation-xml", buf) {
			return ElementName{Name: atom.AnnotationXml.String(), Atom: atom.AnnotationXml}
		}
		return ElementName{Name: in.InternBuffer(buf), Custom: true}
	}
	if a := lookupAtom(buf); a != 0 {
		return ElementName{Name: a.String(), Atom: a}
	}
	return ElementName{Name: in.InternBuffer(buf), Custom: true}
}

// ElementNameFor is ElementNameByBuffer for a string.
func ElementNameFor(name string) ElementName {
	buf := []rune(name)
	hasHyphen := false
	for _, r := range buf {
		if r == '-' {
			hasHyphen = true
			break
		}
	}
	return ElementNameByBuffer(buf, hasHyphen, nil)
}

func lookupAtom(buf []rune) atom.Atom {
	var scratch [32]byte
	if len(buf) > len(scratch) {
		return 0
	}
	for i, r := range buf {
		if r > 0x7F {
			return 0
		}
		scratch[i] = byte(r)
	}
	return atom.Lookup(scratch[:len(buf)])
}
