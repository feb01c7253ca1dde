package parser

//go:generate go run gen_entities.go

type charRef struct {
	name  string
	value []rune
}

// longestCharRefName bounds the named-reference scratch buffer: the
// longest name plus '&'.
const longestCharRefName = 33

// charRefRanges maps the first two letters of a name to the [lo, hi]
// slice of charRefs sharing them. hi < lo means no name starts that way.
var charRefRanges [52 * 52][2]int32

func init() {
	for i := range charRefRanges {
		charRefRanges[i] = [2]int32{0, -1}
	}
	for i, ref := range charRefs {
		k := letterIndex(rune(ref.name[0]))*52 + letterIndex(rune(ref.name[1]))
		r := &charRefRanges[k]
		if r[1] < r[0] {
			r[0] = int32(i)
		}
		r[1] = int32(i)
	}
}

// letterIndex maps A-Z to 0-25 and a-z to 26-51, or -1.
func letterIndex(c rune) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26
	}
	return -1
}

// windows1252 remaps numeric references in 0x80-0x9F the way browsers do.
var windows1252 = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	return code&0xFFFE == 0xFFFE && code <= 0x10FFFF
}

func isControl(code int) bool {
	return code <= 0x1F || (code >= 0x7F && code <= 0x9F)
}

func isASCIIWhitespace(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	}
	return false
}

func isSurrogate(code int) bool {
	return code >= 0xD800 && code <= 0xDFFF
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isASCIIAlphanumeric(c rune) bool {
	return isASCIIAlpha(c) || isASCIIDigit(c)
}

func isASCIIHexDigit(c rune) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// resolveNumericReference applies the numeric character reference end
// rules to code and reports the diagnostic, if any.
func resolveNumericReference(code int) (rune, ErrorCode) {
	switch {
	case code == 0:
		return '\uFFFD', ErrNullCharacterReference
	case code > 0x10FFFF:
		return '\uFFFD', ErrCharacterReferenceOutsideUnicodeRange
	case isSurrogate(code):
		return '\uFFFD', ErrSurrogateCharacterReference
	case isNonCharacter(code):
		return rune(code), ErrNoncharacterCharacterReference
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(code)):
		if r, ok := windows1252[code]; ok {
			return r, ErrControlCharacterReference
		}
		return rune(code), ErrControlCharacterReference
	}
	return rune(code), ""
}
