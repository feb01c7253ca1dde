package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"

	"github.com/heathj/htmltokenizer/parser/portability"
)

func TestHashUniqueness(t *testing.T) {
	seen := make(map[uint32]string)
	for _, a := range WellKnownAttributeNames() {
		h := HashName([]rune(a.Local(HTML)))
		if other, ok := seen[h]; ok {
			t.Fatalf("%q and %q hash to %#x", other, a.Local(HTML), h)
		}
		seen[h] = a.Local(HTML)
	}
	assert.Len(t, seen, len(attributeNames))
}

func TestLevelOrderShape(t *testing.T) {
	require.Equal(t, len(attributeNames), len(attributeHashes))
	for i, a := range attributeNames {
		assert.Equal(t, HashName([]rune(a.Local(HTML))), attributeHashes[i], a.Local(HTML))
		if l := 2*i + 1; l < len(attributeHashes) {
			assert.Less(t, attributeHashes[l], attributeHashes[i])
		}
		if r := 2*i + 2; r < len(attributeHashes) {
			assert.Greater(t, attributeHashes[r], attributeHashes[i])
		}
	}
}

func TestLookupWellKnown(t *testing.T) {
	for _, a := range WellKnownAttributeNames() {
		got := LookupAttributeName([]rune(a.Local(HTML)))
		assert.Same(t, a, got, a.Local(HTML))
	}
}

func TestLookupIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		want *AttributeName
	}{
		{"id", Id},
		{"class", Class},
		{"accept-charset", Accept_Charset},
		{"xml:lang", Xml_Lang},
		{"xlink:href", Xlink_Href},
		{"xmlns:xlink", Xmlns_Xlink},
		{"mode", ModeAttr},
		{"viewbox", Viewbox},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Same(t, tt.want, LookupAttributeName([]rune(tt.name)))
		})
	}
}

func TestLookupMisses(t *testing.T) {
	for _, s := range []string{"", "data-foo", "idd", "ID", "viewBox", "clas", "onmovestart", "x-y-z"} {
		assert.Nil(t, LookupAttributeName([]rune(s)), s)
	}
}

// These names collide with a well-known name under HashName, so they are
// left out of the table and always resolve through the ad-hoc path.
var collidingNames = map[string]*AttributeName{
	"onhashchange":     Onratechange,
	"onmovestart":      Onloadstart,
	"indentshiftfirst": Indentalignfirst,
	"indentshiftlast":  Indentalignlast,
}

func TestCollidingNamesAreAdHoc(t *testing.T) {
	in := portability.NewInterner()
	for name, twin := range collidingNames {
		buf := []rune(name)
		assert.Equal(t, HashName([]rune(twin.Local(HTML))), HashName(buf), name)
		assert.Nil(t, LookupAttributeName(buf), name)
		a := NameByBuffer(buf, true, in)
		assert.True(t, a.IsCustom(), name)
		assert.Equal(t, name, a.QName(HTML))
		assert.False(t, a.Equals(twin), name)
	}
}

func TestModeConsistency(t *testing.T) {
	special := map[string]bool{"xmlns": true, "xmlns:xlink": true, "lang": true}
	for _, a := range WellKnownAttributeNames() {
		n := a.Local(HTML)
		if special[n] || strings.HasPrefix(n, "xml:") || strings.HasPrefix(n, "xlink:") {
			continue
		}
		for m := MathML; m <= HTMLLang; m++ {
			assert.Equal(t, a.Local(HTML), a.Local(m), n)
			assert.Equal(t, a.URI(HTML), a.URI(m), n)
			assert.Equal(t, a.Prefix(HTML), a.Prefix(m), n)
			assert.Equal(t, a.QName(HTML), a.QName(m), n)
		}
	}
}

func TestForeignVariants(t *testing.T) {
	assert.Equal(t, "xlink:href", Xlink_Href.Local(HTML))
	assert.Equal(t, "href", Xlink_Href.Local(SVG))
	assert.Equal(t, NamespaceXLink, Xlink_Href.URI(MathML))
	assert.Equal(t, "xlink:href", Xlink_Href.QName(SVG))
	assert.False(t, Xlink_Href.IsNCName(HTML))
	assert.True(t, Xlink_Href.IsNCName(SVG))

	assert.Equal(t, NamespaceXML, Xml_Space.URI(SVG))
	assert.Equal(t, "space", Xml_Space.Local(SVG))

	assert.Equal(t, "", Lang.URI(HTML))
	assert.Equal(t, NamespaceXML, Lang.URI(HTMLLang))
	assert.Equal(t, "xml:lang", Lang.QName(HTMLLang))
	assert.Equal(t, "lang", Lang.QName(HTML))

	assert.True(t, Xmlns.IsXmlns())
	assert.Equal(t, NamespaceXMLNS, Xmlns.URI(SVG))
	assert.True(t, Xmlns_Xlink.IsXmlns())
	assert.Equal(t, "xmlns:xlink", Xmlns_Xlink.QName(MathML))
}

func TestFlags(t *testing.T) {
	assert.True(t, Checked.IsBoolean())
	assert.True(t, Checked.IsCaseFolded())
	assert.True(t, Type.IsCaseFolded())
	assert.False(t, Type.IsBoolean())
	assert.False(t, Class.IsCaseFolded())
	assert.False(t, Class.IsCustom())
}

func TestCreateAttributeName(t *testing.T) {
	tests := []struct {
		name   string
		check  bool
		ncname bool
		xmlns  bool
	}{
		{"data-foo", true, true, false},
		{"1abc", true, false, false},
		{"1abc", false, true, false},
		{"xmlns:foo", true, false, true},
		{"a\"b", true, false, false},
	}
	for _, tt := range tests {
		a := CreateAttributeName(tt.name, tt.check)
		assert.True(t, a.IsCustom())
		assert.Equal(t, tt.xmlns, a.IsXmlns(), tt.name)
		for m := HTML; m <= HTMLLang; m++ {
			assert.Equal(t, tt.ncname, a.IsNCName(m), tt.name)
			assert.Equal(t, tt.name, a.Local(m))
			assert.Equal(t, "", a.URI(m))
			assert.Equal(t, "", a.Prefix(m))
		}
	}
}

func TestNameByBuffer(t *testing.T) {
	in := portability.NewInterner()
	assert.Same(t, Href, NameByBuffer([]rune("href"), true, in))
	a := NameByBuffer([]rune("data-x"), true, in)
	b := NameByBuffer([]rune("data-x"), true, in)
	assert.NotSame(t, a, b)
	assert.True(t, a.Equals(b))
	assert.Equal(t, 1, in.Len())
}

func TestCloneAttributeName(t *testing.T) {
	in := portability.NewInterner()
	assert.Same(t, Class, Class.CloneAttributeName(in))

	a := CreateAttributeName("data-y", true)
	c := a.CloneAttributeName(in)
	assert.NotSame(t, a, c)
	assert.True(t, a.Equals(c))
	assert.Equal(t, a.IsNCName(SVG), c.IsNCName(SVG))
	assert.True(t, c.IsCustom())
}

func TestEquals(t *testing.T) {
	assert.True(t, Id.Equals(Id))
	assert.True(t, CreateAttributeName("id", true).Equals(Id))
	assert.False(t, Id.Equals(Class))
	assert.False(t, Id.Equals(nil))
}

func TestElementNames(t *testing.T) {
	in := portability.NewInterner()
	div := ElementNameByBuffer([]rune("div"), false, in)
	assert.Equal(t, atom.Div, div.Atom)
	assert.False(t, div.Custom)

	ax := ElementNameByBuffer([]rune("annotation-xml"), true, in)
	assert.Equal(t, atom.AnnotationXml, ax.Atom)
	assert.False(t, ax.Custom)

	ce := ElementNameByBuffer([]rune("my-widget"), true, in)
	assert.True(t, ce.Custom)
	assert.Equal(t, atom.Atom(0), ce.Atom)
	assert.Equal(t, "my-widget", ce.Name)

	unk := ElementNameFor("blink2")
	assert.True(t, unk.Custom)
	assert.Equal(t, "blink2", unk.String())

	assert.Equal(t, atom.Script, ElementNameFor("script").Atom)
	assert.True(t, ElementName{}.IsZero())
}
