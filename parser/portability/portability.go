// Package portability holds the small string helpers the tokenizer and the
// name registries share.
package portability

import (
	"fmt"
	"strings"
)

// LowerCaseLiteralEqualsIgnoreASCIICase reports whether buf spells lit,
// folding ASCII upper case in buf. lit must already be lower case.
func LowerCaseLiteralEqualsIgnoreASCIICase(lit string, buf []rune) bool {
	if len(lit) != len(buf) {
		return false
	}
	return LowerCaseLiteralIsPrefixOfIgnoreASCIICase(lit, buf)
}

// LowerCaseLiteralIsPrefixOfIgnoreASCIICase reports whether lit is a prefix
// of buf, folding ASCII upper case in buf.
func LowerCaseLiteralIsPrefixOfIgnoreASCIICase(lit string, buf []rune) bool {
	if len(lit) > len(buf) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		c := buf[i]
		if c >= 'A' && c <= 'Z' {
			c += 0x20
		}
		if rune(lit[i]) != c {
			return false
		}
	}
	return true
}

// NewStringFromBuffer converts length runes of buf starting at offset.
func NewStringFromBuffer(buf []rune, offset, length int) string {
	return string(buf[offset : offset+length])
}

// Interner pools strings so equal names built from different buffers share
// one backing string. It is not safe for concurrent use; each tokenizer owns
// its own. A nil Interner only converts.
type Interner struct {
	pool map[string]string
}

func NewInterner() *Interner {
	return &Interner{pool: make(map[string]string)}
}

// Intern returns the pooled copy of s.
func (in *Interner) Intern(s string) string {
	if in == nil {
		return s
	}
	if p, ok := in.pool[s]; ok {
		return p
	}
	in.pool[s] = s
	return s
}

// InternBuffer is Intern for a rune buffer.
func (in *Interner) InternBuffer(buf []rune) string {
	return in.Intern(string(buf))
}

// Len returns the number of pooled strings.
func (in *Interner) Len() int {
	if in == nil {
		return 0
	}
	return len(in.pool)
}

func isNCNameStart(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0xC0 && r <= 0xD6) ||
		(r >= 0xD8 && r <= 0xF6) ||
		(r >= 0xF8 && r <= 0x2FF) ||
		(r >= 0x370 && r <= 0x37D) ||
		(r >= 0x37F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

func isNCNameTrail(r rune) bool {
	return isNCNameStart(r) ||
		r == '-' || r == '.' ||
		(r >= '0' && r <= '9') ||
		r == 0xB7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}

// IsNCName reports whether s matches the NCName production of Namespaces
// in XML: a Name without colons.
func IsNCName(s string) bool {
	if s == "" {
		return false
	}
	first := true
	for _, r := range s {
		if first {
			if !isNCNameStart(r) {
				return false
			}
			first = false
			continue
		}
		if !isNCNameTrail(r) {
			return false
		}
	}
	return true
}

// EscapeName turns s into an NCName by replacing every character that may
// not appear at its position with U and six upper-case hex digits.
func EscapeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	first := true
	for _, r := range s {
		ok := isNCNameTrail(r)
		if first {
			ok = isNCNameStart(r)
			first = false
		}
		if ok {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "U%06X", r)
	}
	return b.String()
}
