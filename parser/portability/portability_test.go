package portability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerCaseLiteral(t *testing.T) {
	tests := []struct {
		lit    string
		buf    string
		equals bool
		prefix bool
	}{
		{"doctype", "DOCTYPE", true, true},
		{"doctype", "DocType", true, true},
		{"doctype", "DOCTYPE html", false, true},
		{"doctype", "DOCTYP", false, false},
		{"public", "publik", false, false},
		{"", "", true, true},
		{"", "x", false, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.lit+"/"+tt.buf, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.equals, LowerCaseLiteralEqualsIgnoreASCIICase(tt.lit, []rune(tt.buf)))
			assert.Equal(t, tt.prefix, LowerCaseLiteralIsPrefixOfIgnoreASCIICase(tt.lit, []rune(tt.buf)))
		})
	}
}

func TestNewStringFromBuffer(t *testing.T) {
	assert.Equal(t, "ell", NewStringFromBuffer([]rune("hello"), 1, 3))
	assert.Equal(t, "", NewStringFromBuffer([]rune("hello"), 5, 0))
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.InternBuffer([]rune("data-x"))
	b := in.Intern("data-x")
	assert.Equal(t, a, b)
	assert.Equal(t, 1, in.Len())
	in.Intern("data-y")
	assert.Equal(t, 2, in.Len())

	var none *Interner
	assert.Equal(t, "abc", none.InternBuffer([]rune("abc")))
	assert.Equal(t, 0, none.Len())
}

func TestIsNCName(t *testing.T) {
	tests := map[string]bool{
		"class":      true,
		"data-foo.1": true,
		"_x":         true,
		"é":          true,
		"xml:lang":   false,
		"1abc":       false,
		"-a":         false,
		"":           false,
		"a b":        false,
		"foo\"":      false,
	}
	for in, want := range tests {
		assert.Equal(t, want, IsNCName(in), in)
	}
}

func TestEscapeName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"class", "class"},
		{"1a", "U000031a"},
		{"a:b", "aU00003Ab"},
		{"a\"", "aU000022"},
	}
	for _, tt := range tests {
		got := EscapeName(tt.in)
		assert.Equal(t, tt.out, got)
		assert.True(t, IsNCName(got), got)
	}
}
