package html

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/htmltokenizer/parser/names"
	"github.com/heathj/htmltokenizer/parser/portability"
)

func TestAddAttribute(t *testing.T) {
	a := NewAttributes(names.HTML)
	require.NoError(t, a.AddAttribute(names.Id, "main", 1, Allow))
	require.NoError(t, a.AddAttribute(names.Class, "x y", 2, Allow))

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "class", a.LocalName(1))
	v, ok := a.ValueAt(1)
	assert.True(t, ok)
	assert.Equal(t, "x y", v)
	assert.Equal(t, 2, a.LineAt(1))

	id, ok := a.ID()
	assert.True(t, ok)
	assert.Equal(t, "main", id)

	assert.True(t, a.Contains(names.Class))
	assert.True(t, a.Contains(names.CreateAttributeName("class", true)))
	assert.False(t, a.Contains(names.Href))
	assert.Equal(t, 1, a.Index(names.Class))
	assert.Equal(t, -1, a.Index(names.Href))
}

func TestOutOfRangeSentinels(t *testing.T) {
	a := NewAttributes(names.HTML)
	assert.Nil(t, a.AttributeNameAt(0))
	assert.Nil(t, a.AttributeNameAt(-1))
	assert.Equal(t, "", a.LocalName(3))
	assert.Equal(t, "", a.QName(3))
	assert.Equal(t, "", a.URI(3))
	assert.Equal(t, "", a.Prefix(3))
	assert.Equal(t, -1, a.LineAt(3))
	_, ok := a.ValueAt(3)
	assert.False(t, ok)
	_, ok = a.Value(names.Id)
	assert.False(t, ok)
	_, ok = a.ID()
	assert.False(t, ok)
}

func TestGrowth(t *testing.T) {
	a := NewAttributes(names.HTML)
	for i := 0; i < 12; i++ {
		require.NoError(t, a.AddAttribute(names.CreateAttributeName("data-"+string(rune('a'+i)), true), "v", i, Allow))
	}
	assert.Equal(t, 12, a.Len())
	assert.Equal(t, 20, cap(a.attrNames))
	assert.Equal(t, "data-l", a.LocalName(11))
}

func TestXmlnsPolicy(t *testing.T) {
	tests := []struct {
		policy     Policy
		wantErr    bool
		primary    int
		xmlnsCount int
	}{
		{Allow, false, 1, 1},
		{AlterInfoset, false, 0, 1},
		{Fatal, true, 0, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.policy.String(), func(t *testing.T) {
			t.Parallel()
			a := NewAttributes(names.HTML)
			err := a.AddAttribute(names.Xmlns, "http://www.w3.org/1999/xhtml", 4, tt.policy)
			if tt.wantErr {
				require.Error(t, err)
				var xe *XmlnsError
				require.ErrorAs(t, err, &xe)
				assert.Equal(t, "xmlns", xe.Name)
				assert.Equal(t, 4, xe.Line)
				_, ok := errors.Cause(err).(*XmlnsError)
				assert.True(t, ok)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.primary, a.Len())
			assert.Equal(t, tt.xmlnsCount, a.XmlnsLen())
			assert.Equal(t, tt.xmlnsCount > 0, a.Contains(names.Xmlns))
		})
	}
}

func TestClear(t *testing.T) {
	a := NewAttributes(names.HTML)
	require.NoError(t, a.AddAttribute(names.Id, "x", 1, Allow))
	require.NoError(t, a.AddAttribute(names.Xmlns_Xlink, "u", 1, Allow))
	a.Clear(names.SVG)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.XmlnsLen())
	assert.Equal(t, names.SVG, a.Mode())
	_, ok := a.ID()
	assert.False(t, ok)
	assert.False(t, a.Contains(names.Id))
}

func TestModeAwareAccessors(t *testing.T) {
	a := NewAttributes(names.HTML)
	require.NoError(t, a.AddAttribute(names.Xlink_Href, "#a", 1, Allow))
	assert.Equal(t, "xlink:href", a.LocalName(0))
	assert.Equal(t, "", a.URI(0))

	a.AdjustForSVG()
	assert.Equal(t, "href", a.LocalName(0))
	assert.Equal(t, "xlink", a.Prefix(0))
	assert.Equal(t, "xlink:href", a.QName(0))
	assert.Equal(t, names.NamespaceXLink, a.URI(0))

	a.AdjustForMath()
	assert.Equal(t, names.MathML, a.Mode())
}

func TestMerge(t *testing.T) {
	body := NewAttributes(names.HTML)
	require.NoError(t, body.AddAttribute(names.Class, "a", 1, Allow))

	extra := NewAttributes(names.HTML)
	require.NoError(t, extra.AddAttribute(names.Class, "b", 2, Allow))
	require.NoError(t, extra.AddAttribute(names.Id, "c", 2, Allow))

	body.Merge(extra)
	assert.Equal(t, 2, body.Len())
	v, _ := body.Value(names.Class)
	assert.Equal(t, "a", v)
	id, ok := body.ID()
	assert.True(t, ok)
	assert.Equal(t, "c", id)
}

func TestProcessNonNCNames(t *testing.T) {
	build := func() *Attributes {
		a := NewAttributes(names.HTML)
		require.NoError(t, a.AddAttribute(names.CreateAttributeName("a\"b", true), "1", 7, Allow))
		require.NoError(t, a.AddAttribute(names.Class, "2", 7, Allow))
		return a
	}

	t.Run("allow", func(t *testing.T) {
		a := build()
		var warnings []string
		require.NoError(t, a.ProcessNonNCNames(Allow, func(s string) { warnings = append(warnings, s) }))
		assert.Len(t, warnings, 1)
		assert.Equal(t, "a\"b", a.LocalName(0))
	})
	t.Run("alter-infoset", func(t *testing.T) {
		a := build()
		require.NoError(t, a.ProcessNonNCNames(AlterInfoset, nil))
		assert.Equal(t, "aU000022b", a.LocalName(0))
		assert.True(t, a.AttributeNameAt(0).IsNCName(names.HTML))
	})
	t.Run("fatal", func(t *testing.T) {
		a := build()
		err := a.ProcessNonNCNames(Fatal, nil)
		var ne *NameError
		require.ErrorAs(t, err, &ne)
		assert.Equal(t, 7, ne.Line)
	})
}

func TestCloneAndEquals(t *testing.T) {
	a := NewAttributes(names.HTMLLang)
	require.NoError(t, a.AddAttribute(names.Href, "/x", 1, Allow))
	require.NoError(t, a.AddAttribute(names.CreateAttributeName("data-k", true), "v", 1, Allow))

	c := a.CloneAttributes(portability.NewInterner())
	assert.True(t, a.EqualsAnother(c))
	assert.True(t, c.EqualsAnother(a))
	assert.Same(t, names.Href, c.AttributeNameAt(0))
	assert.NotSame(t, a.AttributeNameAt(1), c.AttributeNameAt(1))

	reordered := NewAttributes(names.HTML)
	require.NoError(t, reordered.AddAttribute(names.CreateAttributeName("data-k", true), "v", 1, Allow))
	require.NoError(t, reordered.AddAttribute(names.Href, "/x", 1, Allow))
	assert.True(t, a.EqualsAnother(reordered))

	different := NewAttributes(names.HTML)
	require.NoError(t, different.AddAttribute(names.Href, "/y", 1, Allow))
	require.NoError(t, different.AddAttribute(names.CreateAttributeName("data-k", true), "v", 1, Allow))
	assert.False(t, a.EqualsAnother(different))

	short := NewAttributes(names.HTML)
	require.NoError(t, short.AddAttribute(names.Href, "/x", 1, Allow))
	assert.False(t, a.EqualsAnother(short))
}

func TestForeignModePanics(t *testing.T) {
	a := NewAttributes(names.SVG)
	assert.Panics(t, func() { a.CloneAttributes(nil) })
	assert.Panics(t, func() { a.EqualsAnother(NewAttributes(names.HTML)) })
	assert.Panics(t, func() { NewAttributes(names.HTML).EqualsAnother(a) })
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{Allow, AlterInfoset, Fatal} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePolicy("strict")
	assert.Error(t, err)
}
