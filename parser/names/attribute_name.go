package names

import (
	"strings"

	"github.com/heathj/htmltokenizer/parser/portability"
)

//go:generate go run gen.go

// Mode selects which of the per-mode slots of an AttributeName applies.
type Mode int

const (
	// HTML is the mode for attributes on HTML elements.
	HTML Mode = iota
	// MathML is the mode for attributes on MathML elements.
	MathML
	// SVG is the mode for attributes on SVG elements.
	SVG
	// HTMLLang is HTML with lang mapped to xml:lang.
	HTMLLang

	modeCount = 4
)

func (m Mode) String() string {
	switch m {
	case HTML:
		return "html"
	case MathML:
		return "mathml"
	case SVG:
		return "svg"
	case HTMLLang:
		return "html-lang"
	}
	return "unknown"
}

// IsHTMLFamily reports whether m is HTML or HTMLLang.
func (m Mode) IsHTMLFamily() bool {
	return m == HTML || m == HTMLLang
}

// Namespace URIs.
const (
	NamespaceNone   = ""
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

const (
	ncnameHTML uint8 = 1 << iota
	ncnameMathML
	ncnameSVG
	ncnameLang
	isXmlns
	caseFolded
	boolean
	custom

	ncnameForeign = ncnameMathML | ncnameSVG
	ncnameAll     = ncnameHTML | ncnameForeign | ncnameLang
	booleanFlags  = boolean | caseFolded
)

var (
	allNoNS = [modeCount]string{}
	xmlnsNS = [modeCount]string{NamespaceNone, NamespaceXMLNS, NamespaceXMLNS, NamespaceNone}
	xmlNS   = [modeCount]string{NamespaceNone, NamespaceXML, NamespaceXML, NamespaceNone}
	xlinkNS = [modeCount]string{NamespaceNone, NamespaceXLink, NamespaceXLink, NamespaceNone}
	langNS  = [modeCount]string{NamespaceNone, NamespaceNone, NamespaceNone, NamespaceXML}

	allNoPrefix = [modeCount]string{}
	xmlnsPrefix = [modeCount]string{"", "xmlns", "xmlns", ""}
	xlinkPrefix = [modeCount]string{"", "xlink", "xlink", ""}
	xmlPrefix   = [modeCount]string{"", "xml", "xml", ""}
	langPrefix  = [modeCount]string{"", "", "", "xml"}
)

func sameLocal(name string) [modeCount]string {
	return [modeCount]string{name, name, name, name}
}

// colonifiedLocal keeps the colonified name in the HTML modes and the part
// after the colon in the foreign ones.
func colonifiedLocal(name, suffix string) [modeCount]string {
	return [modeCount]string{name, suffix, suffix, name}
}

// AttributeName is the interned identity of an attribute name. The
// well-known names are package variables and are never mutated; names not
// in the table are created on demand and belong to the attribute
// collection that holds them.
type AttributeName struct {
	uri    [modeCount]string
	local  [modeCount]string
	prefix [modeCount]string
	qname  [modeCount]string
	flags  uint8
}

func newAttributeName(uri, local, prefix [modeCount]string, flags uint8) *AttributeName {
	a := &AttributeName{
		uri:    uri,
		local:  local,
		prefix: prefix,
		flags:  flags,
	}
	for m := 0; m < modeCount; m++ {
		if prefix[m] == "" {
			a.qname[m] = local[m]
		} else {
			a.qname[m] = prefix[m] + ":" + local[m]
		}
	}
	return a
}

// CreateAttributeName makes an ad-hoc name in no namespace. A name starting
// with "xmlns:" is classified as xmlns and never as an NCName; otherwise the
// NCName check runs when checkNCName is set.
func CreateAttributeName(name string, checkNCName bool) *AttributeName {
	flags := ncnameAll
	if strings.HasPrefix(name, "xmlns:") {
		flags = isXmlns
	} else if checkNCName && !portability.IsNCName(name) {
		flags = 0
	}
	return newAttributeName(allNoNS, sameLocal(name), allNoPrefix, flags|custom)
}

// Local returns the local name in mode m.
func (a *AttributeName) Local(m Mode) string { return a.local[m] }

// URI returns the namespace URI in mode m.
func (a *AttributeName) URI(m Mode) string { return a.uri[m] }

// Prefix returns the prefix in mode m, or "" when there is none.
func (a *AttributeName) Prefix(m Mode) string { return a.prefix[m] }

// QName returns the qualified name in mode m.
func (a *AttributeName) QName(m Mode) string { return a.qname[m] }

// IsNCName reports whether the local name is an XML NCName in mode m.
func (a *AttributeName) IsNCName(m Mode) bool {
	return a.flags&(1<<uint(m)) != 0
}

func (a *AttributeName) IsXmlns() bool      { return a.flags&isXmlns != 0 }
func (a *AttributeName) IsCaseFolded() bool { return a.flags&caseFolded != 0 }
func (a *AttributeName) IsBoolean() bool    { return a.flags&boolean != 0 }

// IsCustom reports whether the name was created on demand instead of coming
// from the well-known table.
func (a *AttributeName) IsCustom() bool { return a.flags&custom != 0 }

// Equals compares the HTML-mode local names, so names interned in
// different pools still compare equal.
func (a *AttributeName) Equals(other *AttributeName) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return a.local[HTML] == other.local[HTML]
}

// CloneAttributeName returns a copy suitable for another interning
// context. Well-known names are shared.
func (a *AttributeName) CloneAttributeName(in *portability.Interner) *AttributeName {
	if !a.IsCustom() {
		return a
	}
	c := *a
	for m := 0; m < modeCount; m++ {
		c.local[m] = in.Intern(a.local[m])
		c.qname[m] = in.Intern(a.qname[m])
	}
	return &c
}

func (a *AttributeName) String() string {
	return a.local[HTML]
}

// WellKnownAttributeNames returns the table in level order. The slice is a
// copy; the names themselves are shared.
func WellKnownAttributeNames() []*AttributeName {
	out := make([]*AttributeName, len(attributeNames))
	copy(out, attributeNames[:])
	return out
}

// HashName hashes up to six characters of buf together with its length.
// The well-known names hash without collisions; other inputs may collide,
// which is why a hit is always confirmed by comparing the name.
func HashName(buf []rune) uint32 {
	n := len(buf)
	if n == 0 {
		return 0
	}
	first := uint32(buf[0]) << 19
	second := uint32(1) << 23
	var third, fourth, fifth, sixth uint32
	switch {
	case n >= 4:
		second = uint32(buf[n-4]) << 4
		third = uint32(buf[1]) << 9
		fourth = uint32(buf[n-2]) << 14
		fifth = uint32(buf[3]) << 24
		sixth = uint32(buf[n-1]) << 11
	case n == 3:
		second = uint32(buf[1]) << 4
		third = uint32(buf[2]) << 9
	case n == 2:
		second = uint32(buf[1]) << 24
	}
	return uint32(n) + first + second + third + fourth + fifth + sixth
}

// levelOrderBinarySearch walks the implicit tree stored in hashes and
// returns the index holding key, or -1.
func levelOrderBinarySearch(hashes []uint32, key uint32) int {
	n := len(hashes)
	i := 0
	for i < n {
		v := hashes[i]
		switch {
		case v < key:
			i = 2*i + 2
		case v > key:
			i = 2*i + 1
		default:
			return i
		}
	}
	return -1
}

// LookupAttributeName returns the well-known name spelled by buf or nil.
func LookupAttributeName(buf []rune) *AttributeName {
	if len(buf) == 0 {
		return nil
	}
	i := levelOrderBinarySearch(attributeHashes[:], HashName(buf))
	if i < 0 {
		return nil
	}
	a := attributeNames[i]
	if !literalEquals(a.local[HTML], buf) {
		return nil
	}
	return a
}

// literalEquals compares without case folding; buf is already lower case
// when it comes from the tokenizer, but callers outside it may not be.
func literalEquals(lit string, buf []rune) bool {
	if len(lit) != len(buf) {
		return false
	}
	for i, r := range buf {
		if rune(lit[i]) != r {
			return false
		}
	}
	return true
}

// NameByBuffer resolves buf against the well-known table and falls back
// to an ad-hoc name whose string is interned in in.
func NameByBuffer(buf []rune, checkNCName bool, in *portability.Interner) *AttributeName {
	if a := LookupAttributeName(buf); a != nil {
		return a
	}
	return CreateAttributeName(in.InternBuffer(buf), checkNCName)
}
