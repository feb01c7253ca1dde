package parser

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharRefsSorted(t *testing.T) {
	require.True(t, sort.SliceIsSorted(charRefs[:], func(i, j int) bool {
		return charRefs[i].name < charRefs[j].name
	}))
	longest := 0
	for _, ref := range charRefs {
		if len(ref.name) > longest {
			longest = len(ref.name)
		}
		assert.LessOrEqual(t, len(ref.name)+1, longestCharRefName, ref.name)
		assert.True(t, isASCIIAlpha(rune(ref.name[0])) && isASCIIAlpha(rune(ref.name[1])), ref.name)
		assert.NotEmpty(t, ref.value, ref.name)
	}
	assert.Equal(t, longestCharRefName, longest+1, "bound is the longest name plus '&'")
}

func TestLongestCharRef(t *testing.T) {
	assert.Equal(t, []Token{chars("\u2233x"), eofToken}, tokensOf(t, "&CounterClockwiseContourIntegral;x"))
}

func TestCharRefRanges(t *testing.T) {
	for i, ref := range charRefs {
		r := charRefRanges[letterIndex(rune(ref.name[0]))*52+letterIndex(rune(ref.name[1]))]
		assert.True(t, int(r[0]) <= i && i <= int(r[1]), "%s outside [%d, %d]", ref.name, r[0], r[1])
	}
	assert.Less(t, charRefRanges[letterIndex('q')*52+letterIndex('q')][1], charRefRanges[letterIndex('q')*52+letterIndex('q')][0])
}

func TestLetterIndex(t *testing.T) {
	assert.Equal(t, 0, letterIndex('A'))
	assert.Equal(t, 25, letterIndex('Z'))
	assert.Equal(t, 26, letterIndex('a'))
	assert.Equal(t, 51, letterIndex('z'))
	assert.Equal(t, -1, letterIndex('1'))
	assert.Equal(t, -1, letterIndex(';'))
}

func TestResolveNumericReference(t *testing.T) {
	tests := []struct {
		code int
		want rune
		err  ErrorCode
	}{
		{0x41, 'A', ""},
		{0x0A, '\n', ""},
		{0x00, '\uFFFD', ErrNullCharacterReference},
		{0x110000, '\uFFFD', ErrCharacterReferenceOutsideUnicodeRange},
		{0xD800, '\uFFFD', ErrSurrogateCharacterReference},
		{0xDFFF, '\uFFFD', ErrSurrogateCharacterReference},
		{0xFDD0, 0xFDD0, ErrNoncharacterCharacterReference},
		{0x10FFFF, 0x10FFFF, ErrNoncharacterCharacterReference},
		{0x0D, 0x0D, ErrControlCharacterReference},
		{0x01, 0x01, ErrControlCharacterReference},
		{0x80, 0x20AC, ErrControlCharacterReference},
		{0x81, 0x81, ErrControlCharacterReference},
		{0x9F, 0x0178, ErrControlCharacterReference},
		{0xA0, 0xA0, ""},
		{0x1F600, 0x1F600, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%#x", tt.code), func(t *testing.T) {
			t.Parallel()
			got, err := resolveNumericReference(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.err, err)
		})
	}
}
