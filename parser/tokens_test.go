package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{chars("a\nb"), `"a\nb"`},
		{start("p", attr("id", "x"), attr("hidden", "")), `<p id="x" hidden="">`},
		{selfClosing("br"), "<br/>"},
		{end("p"), "</p>"},
		{comment(" c "), "<!-- c -->"},
		{Token{Type: DoctypeToken, Name: "html"}, "<!DOCTYPE html>"},
		{Token{Type: DoctypeToken, Name: "html", PublicID: sp("p"), SystemID: sp("s")}, `<!DOCTYPE html PUBLIC "p" SYSTEM "s">`},
		{Token{Type: DoctypeToken, ForceQuirks: true}, "<!DOCTYPE  quirks>"},
		{eofToken, "EOF"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "CharacterToken", CharacterToken.String())
	assert.Equal(t, "DoctypeToken", DoctypeToken.String())
	assert.Equal(t, "TokenType(42)", TokenType(42).String())
}

func TestRecorderForeignContent(t *testing.T) {
	tests := []struct {
		name   string
		inHTML string
		want   []Token
	}{
		{"nested", "<svg><math><![CDATA[x]]></math><![CDATA[y]]></svg><![CDATA[z]]>", []Token{
			start("svg"), start("math"), chars("x"), end("math"), chars("y"), end("svg"),
			comment("[CDATA[z]]"), eofToken,
		}},
		{"self-closing svg is not entered", "<svg/><![CDATA[x]]>", []Token{
			selfClosing("svg"), comment("[CDATA[x]]"), eofToken,
		}},
		{"raw text names inside svg", "<svg><title><b></b></title></svg>", []Token{
			start("svg"), start("title"), start("b"), end("b"), end("title"), end("svg"), eofToken,
		}},
		{"unmatched end tag keeps foreign", "<math></svg><![CDATA[x]]>", []Token{
			start("math"), end("svg"), chars("x"), eofToken,
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, tokensOf(t, tt.inHTML)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecorderDropComments(t *testing.T) {
	rec := &Recorder{DropComments: true}
	require.NoError(t, runTokenizer(t, DefaultConfig(), rec, "a<!--x-->b<!y>c"))
	assert.Equal(t, []Token{chars("abc"), eofToken}, rec.Tokens)
}

func TestRecorderScripting(t *testing.T) {
	rec := &Recorder{Scripting: true}
	require.NoError(t, runTokenizer(t, DefaultConfig(), rec, "<noscript><b></noscript>"))
	assert.Equal(t, []Token{start("noscript"), chars("<b>"), end("noscript"), eofToken}, rec.Tokens)
}

func TestRecorderTokensOwnTheirData(t *testing.T) {
	rec := &Recorder{}
	tok := NewTokenizer(rec, DefaultConfig())
	require.NoError(t, tok.Start())
	buf := []rune("<p a=b>xy")
	require.NoError(t, tok.Tokenize(buf))
	for i := range buf {
		buf[i] = 'z'
	}
	require.NoError(t, tok.EOF())
	require.NoError(t, tok.End())
	assert.Equal(t, []Token{start("p", attr("a", "b")), chars("xy"), eofToken}, rec.Tokens)
}

func TestRecorderEnsureBufferSpace(t *testing.T) {
	rec := &Recorder{Tokens: []Token{chars("a")}}
	rec.EnsureBufferSpace(1600)
	assert.GreaterOrEqual(t, cap(rec.Tokens)-len(rec.Tokens), 100)
	assert.Equal(t, []Token{chars("a")}, rec.Tokens)
}
