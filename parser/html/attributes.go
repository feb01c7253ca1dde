package html

import (
	"github.com/pkg/errors"

	"github.com/heathj/htmltokenizer/parser/names"
	"github.com/heathj/htmltokenizer/parser/portability"
)

// Most tags carry no more than a handful of attributes.
const initialCapacity = 5

// Attributes is the ordered attribute list of one tag. Names are unique by
// value; the tokenizer checks Contains before adding. Attributes of the
// xmlns family may also be kept in a separate list depending on the xmlns
// policy.
type Attributes struct {
	mode      names.Mode
	attrNames []*names.AttributeName
	values    []string
	lines     []int

	xmlnsNames  []*names.AttributeName
	xmlnsValues []string

	idValue string
	hasID   bool
}

func NewAttributes(mode names.Mode) *Attributes {
	return &Attributes{mode: mode}
}

func (a *Attributes) Len() int         { return len(a.attrNames) }
func (a *Attributes) Mode() names.Mode { return a.mode }

// AttributeNameAt returns the name at i or nil when i is out of range.
func (a *Attributes) AttributeNameAt(i int) *names.AttributeName {
	if i < 0 || i >= len(a.attrNames) {
		return nil
	}
	return a.attrNames[i]
}

func (a *Attributes) LocalName(i int) string {
	if n := a.AttributeNameAt(i); n != nil {
		return n.Local(a.mode)
	}
	return ""
}

func (a *Attributes) QName(i int) string {
	if n := a.AttributeNameAt(i); n != nil {
		return n.QName(a.mode)
	}
	return ""
}

func (a *Attributes) URI(i int) string {
	if n := a.AttributeNameAt(i); n != nil {
		return n.URI(a.mode)
	}
	return ""
}

func (a *Attributes) Prefix(i int) string {
	if n := a.AttributeNameAt(i); n != nil {
		return n.Prefix(a.mode)
	}
	return ""
}

func (a *Attributes) ValueAt(i int) (string, bool) {
	if i < 0 || i >= len(a.values) {
		return "", false
	}
	return a.values[i], true
}

// LineAt returns the line the attribute started on, or -1.
func (a *Attributes) LineAt(i int) int {
	if i < 0 || i >= len(a.lines) {
		return -1
	}
	return a.lines[i]
}

// Index returns the position of name in the primary list, or -1.
func (a *Attributes) Index(name *names.AttributeName) int {
	for i, n := range a.attrNames {
		if n.Equals(name) {
			return i
		}
	}
	return -1
}

func (a *Attributes) Value(name *names.AttributeName) (string, bool) {
	return a.ValueAt(a.Index(name))
}

// ID returns the value of the id attribute.
func (a *Attributes) ID() (string, bool) {
	return a.idValue, a.hasID
}

func (a *Attributes) XmlnsLen() int { return len(a.xmlnsNames) }

func (a *Attributes) XmlnsAttributeNameAt(i int) *names.AttributeName {
	if i < 0 || i >= len(a.xmlnsNames) {
		return nil
	}
	return a.xmlnsNames[i]
}

func (a *Attributes) XmlnsValueAt(i int) (string, bool) {
	if i < 0 || i >= len(a.xmlnsValues) {
		return "", false
	}
	return a.xmlnsValues[i], true
}

// Contains scans both lists comparing by HTML-mode local name.
func (a *Attributes) Contains(name *names.AttributeName) bool {
	for _, n := range a.attrNames {
		if n.Equals(name) {
			return true
		}
	}
	for _, n := range a.xmlnsNames {
		if n.Equals(name) {
			return true
		}
	}
	return false
}

func grow(n int) int {
	if n == 0 {
		return initialCapacity
	}
	return n * 2
}

func (a *Attributes) appendPrimary(name *names.AttributeName, value string, line int) {
	if len(a.attrNames) == cap(a.attrNames) {
		c := grow(cap(a.attrNames))
		ns := make([]*names.AttributeName, len(a.attrNames), c)
		copy(ns, a.attrNames)
		vs := make([]string, len(a.values), c)
		copy(vs, a.values)
		ls := make([]int, len(a.lines), c)
		copy(ls, a.lines)
		a.attrNames, a.values, a.lines = ns, vs, ls
	}
	a.attrNames = append(a.attrNames, name)
	a.values = append(a.values, value)
	a.lines = append(a.lines, line)
}

func (a *Attributes) appendXmlns(name *names.AttributeName, value string) {
	if len(a.xmlnsNames) == cap(a.xmlnsNames) {
		c := grow(cap(a.xmlnsNames))
		ns := make([]*names.AttributeName, len(a.xmlnsNames), c)
		copy(ns, a.xmlnsNames)
		vs := make([]string, len(a.xmlnsValues), c)
		copy(vs, a.xmlnsValues)
		a.xmlnsNames, a.xmlnsValues = ns, vs
	}
	a.xmlnsNames = append(a.xmlnsNames, name)
	a.xmlnsValues = append(a.xmlnsValues, value)
}

// AddAttribute appends name=value. It does not check for duplicates.
//
// Names of the xmlns family follow xmlnsPolicy: Fatal rejects them with an
// *XmlnsError, AlterInfoset keeps them only in the xmlns list and Allow
// keeps them in both lists.
func (a *Attributes) AddAttribute(name *names.AttributeName, value string, line int, xmlnsPolicy Policy) error {
	if name == names.Id {
		a.idValue = value
		a.hasID = true
	}
	if name.IsXmlns() {
		switch xmlnsPolicy {
		case Fatal:
			return errors.WithStack(&XmlnsError{Name: name.Local(names.HTML), Line: line})
		case AlterInfoset:
			a.appendXmlns(name, value)
			return nil
		default:
			a.appendXmlns(name, value)
		}
	}
	a.appendPrimary(name, value, line)
	return nil
}

// Clear empties the collection and retags it with mode so it can be
// reused for the next tag.
func (a *Attributes) Clear(mode names.Mode) {
	for i := range a.attrNames {
		a.attrNames[i] = nil
		a.values[i] = ""
	}
	a.attrNames = a.attrNames[:0]
	a.values = a.values[:0]
	a.lines = a.lines[:0]
	for i := range a.xmlnsNames {
		a.xmlnsNames[i] = nil
		a.xmlnsValues[i] = ""
	}
	a.xmlnsNames = a.xmlnsNames[:0]
	a.xmlnsValues = a.xmlnsValues[:0]
	a.idValue = ""
	a.hasID = false
	a.mode = mode
}

func (a *Attributes) AdjustForMath() { a.mode = names.MathML }
func (a *Attributes) AdjustForSVG()  { a.mode = names.SVG }

// Merge adds the entries of other whose names are not present yet.
func (a *Attributes) Merge(other *Attributes) {
	for i, n := range other.attrNames {
		if a.Contains(n) {
			continue
		}
		if n == names.Id {
			a.idValue = other.values[i]
			a.hasID = true
		}
		a.appendPrimary(n, other.values[i], other.lines[i])
	}
	for i, n := range other.xmlnsNames {
		if a.Contains(n) {
			continue
		}
		a.appendXmlns(n, other.xmlnsValues[i])
	}
}

// ProcessNonNCNames applies policy to every name that is not an NCName in
// the current mode. Allow reports through warn, AlterInfoset replaces the
// name with an escaped one and Fatal returns a *NameError.
func (a *Attributes) ProcessNonNCNames(policy Policy, warn func(string)) error {
	for i, n := range a.attrNames {
		if n.IsNCName(a.mode) {
			continue
		}
		local := n.Local(a.mode)
		switch policy {
		case Allow:
			if warn != nil {
				warn("attribute \"" + local + "\" is not serializable as XML 1.0")
			}
		case AlterInfoset:
			a.attrNames[i] = names.CreateAttributeName(portability.EscapeName(local), true)
		case Fatal:
			return errors.WithStack(&NameError{Name: local, Line: a.lines[i]})
		}
	}
	return nil
}

func (a *Attributes) mustBeHTMLFamily() {
	if !a.mode.IsHTMLFamily() {
		panic("html: attribute operation requires an HTML-family mode, have " + a.mode.String())
	}
}

// CloneAttributes copies the collection into the interning context in.
// It panics on a collection in a foreign mode.
func (a *Attributes) CloneAttributes(in *portability.Interner) *Attributes {
	a.mustBeHTMLFamily()
	c := &Attributes{
		mode:    a.mode,
		idValue: a.idValue,
		hasID:   a.hasID,
	}
	if n := len(a.attrNames); n > 0 {
		c.attrNames = make([]*names.AttributeName, n, cap(a.attrNames))
		for i, name := range a.attrNames {
			c.attrNames[i] = name.CloneAttributeName(in)
		}
		c.values = append(make([]string, 0, cap(a.values)), a.values...)
		c.lines = append(make([]int, 0, cap(a.lines)), a.lines...)
	}
	if n := len(a.xmlnsNames); n > 0 {
		c.xmlnsNames = make([]*names.AttributeName, n, cap(a.xmlnsNames))
		for i, name := range a.xmlnsNames {
			c.xmlnsNames[i] = name.CloneAttributeName(in)
		}
		c.xmlnsValues = append(make([]string, 0, cap(a.xmlnsValues)), a.xmlnsValues...)
	}
	return c
}

// EqualsAnother reports whether both collections hold the same names with
// the same values, in any order. Both must be in an HTML-family mode.
func (a *Attributes) EqualsAnother(other *Attributes) bool {
	a.mustBeHTMLFamily()
	other.mustBeHTMLFamily()
	if len(a.attrNames) != len(other.attrNames) {
		return false
	}
	for i, n := range a.attrNames {
		v, ok := other.Value(n)
		if !ok || v != a.values[i] {
			return false
		}
	}
	return true
}
