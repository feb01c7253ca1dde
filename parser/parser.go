package parser

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultChunkSize is the read size used when Parser.ChunkSize is zero.
const DefaultChunkSize = 4096

// Parser streams a reader through a Tokenizer.
type Parser struct {
	// ChunkSize is the number of bytes read per Write.
	ChunkSize int
	// OnSuspend runs each time the handler suspends the tokenizer. The
	// scan resumes when it returns nil.
	OnSuspend func(t *Tokenizer) error

	tokenizer *Tokenizer
	log       *logrus.Logger
}

func NewParser(h TokenHandler, cfg Config) *Parser {
	t := NewTokenizer(h, cfg)
	return &Parser{
		tokenizer: t,
		log:       t.log,
	}
}

// Tokenizer returns the underlying tokenizer, for handlers that need to
// switch states before Parse starts feeding it.
func (p *Parser) Tokenizer() *Tokenizer { return p.tokenizer }

// Parse tokenizes everything r yields and then runs the end-of-file rules.
// The context is checked between chunks.
func (p *Parser) Parse(ctx context.Context, r io.Reader) error {
	t := p.tokenizer
	if err := t.Start(); err != nil {
		return err
	}
	size := p.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	chunk := make([]byte, size)
	chunks := 0
	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "parse cancelled")
		}
		n, rerr := r.Read(chunk)
		if n > 0 {
			chunks++
			if _, err := t.Write(chunk[:n]); err != nil {
				return err
			}
			if err := p.drainSuspensions(); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return errors.Wrap(rerr, "read input")
		}
	}
	p.log.WithFields(logrus.Fields{
		"chunks": chunks,
		"lines":  t.Line(),
	}).Debug("input exhausted")

	if err := t.EOF(); err != nil {
		return err
	}
	return t.End()
}

func (p *Parser) drainSuspensions() error {
	t := p.tokenizer
	for t.Suspended() {
		if p.OnSuspend != nil {
			if err := p.OnSuspend(t); err != nil {
				return errors.Wrap(err, "suspend hook")
			}
		}
		if err := t.Resume(); err != nil {
			return err
		}
	}
	return nil
}
