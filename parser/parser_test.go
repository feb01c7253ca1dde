package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parserDoc = "<!DOCTYPE html><title>a &amp; b</title>\r\n<p class=\"xé\">café &eacute;</p><script>if (a<b) {}</script>"

func TestParseChunkSizes(t *testing.T) {
	want := tokensOf(t, parserDoc)
	for _, size := range []int{0, 1, 2, 3, 7, 64} {
		size := size
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			t.Parallel()
			rec := &Recorder{}
			p := NewParser(rec, DefaultConfig())
			p.ChunkSize = size
			require.NoError(t, p.Parse(context.Background(), strings.NewReader(parserDoc)))
			if diff := cmp.Diff(want, rec.Tokens); diff != "" {
				t.Errorf("chunk size %d (-want +got):\n%s", size, diff)
			}
		})
	}
}

func TestParseDataWithEOF(t *testing.T) {
	rec := &Recorder{}
	p := NewParser(rec, DefaultConfig())
	p.ChunkSize = 4
	require.NoError(t, p.Parse(context.Background(), iotest.DataErrReader(strings.NewReader("<b>xyz</b>"))))
	assert.Equal(t, []Token{start("b"), chars("xyz"), end("b"), eofToken}, rec.Tokens)
}

func TestParseOnSuspend(t *testing.T) {
	rec := &Recorder{SuspendOn: func(tok Token) bool { return tok.Type == StartTagToken }}
	p := NewParser(rec, DefaultConfig())
	var seen []int
	p.OnSuspend = func(tok *Tokenizer) error {
		seen = append(seen, len(rec.Tokens))
		return nil
	}
	require.NoError(t, p.Parse(context.Background(), strings.NewReader("<a><b>c")))
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []Token{start("a"), start("b"), chars("c"), eofToken}, rec.Tokens)
}

func TestParseOnSuspendError(t *testing.T) {
	errHook := errors.New("hook")
	rec := &Recorder{SuspendOn: func(Token) bool { return true }}
	p := NewParser(rec, DefaultConfig())
	p.OnSuspend = func(*Tokenizer) error { return errHook }
	err := p.Parse(context.Background(), strings.NewReader("<a>b"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errHook)
	assert.Contains(t, err.Error(), "suspend hook")
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &Recorder{}
	err := NewParser(rec, DefaultConfig()).Parse(ctx, strings.NewReader("<p>"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.Tokens)
}

func TestParseReadError(t *testing.T) {
	errBoom := errors.New("boom")
	err := NewParser(&Recorder{}, DefaultConfig()).Parse(context.Background(), iotest.ErrReader(errBoom))
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "read input")
}

func TestParseHandlerError(t *testing.T) {
	h := failingHandler{&Recorder{}}
	err := NewParser(h, DefaultConfig()).Parse(context.Background(), strings.NewReader("<a></a>"))
	assert.ErrorIs(t, err, errFailingHandler)
}

func TestParseTwice(t *testing.T) {
	rec := &Recorder{}
	p := NewParser(rec, DefaultConfig())
	require.NoError(t, p.Parse(context.Background(), strings.NewReader("<title>x")))
	rec.Tokens = nil
	require.NoError(t, p.Parse(context.Background(), strings.NewReader("<b>x")))
	assert.Equal(t, []Token{start("b"), chars("x"), eofToken}, rec.Tokens)
	assert.True(t, p.Tokenizer().InDataState())
}
