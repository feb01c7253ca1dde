package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltokenizer/parser"
	"github.com/heathj/htmltokenizer/parser/html"
)

func main() {
	var (
		commentPolicy = flag.String("comments", "allow", "policy for comments XML cannot hold: allow, alter-infoset or fatal")
		spacePolicy   = flag.String("content-space", "allow", "policy for form feed and vertical tab in text")
		xmlnsPolicy   = flag.String("xmlns", "allow", "policy for xmlns attributes")
		namePolicy    = flag.String("names", "allow", "policy for attribute names that are not NCNames")
		mapLang       = flag.Bool("map-lang", false, "map lang to xml:lang")
		scripting     = flag.Bool("scripting", false, "treat noscript as raw text")
		noComments    = flag.Bool("no-comments", false, "do not print comments")
		chunk         = flag.Int("chunk", parser.DefaultChunkSize, "read size in bytes")
		level         = flag.String("log-level", "warn", "logrus level; trace shows state transitions")
	)
	flag.Parse()

	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		logrus.WithError(err).Fatal("bad -log-level")
	}
	logrus.SetLevel(lvl)

	cfg := parser.DefaultConfig()
	for _, p := range []struct {
		dst  *html.Policy
		flag string
		val  string
	}{
		{&cfg.CommentPolicy, "comments", *commentPolicy},
		{&cfg.ContentSpacePolicy, "content-space", *spacePolicy},
		{&cfg.XmlnsPolicy, "xmlns", *xmlnsPolicy},
		{&cfg.NamePolicy, "names", *namePolicy},
	} {
		if *p.dst, err = html.ParsePolicy(p.val); err != nil {
			logrus.WithError(err).WithField("flag", p.flag).Fatal("bad policy")
		}
	}
	cfg.MapLangToXmlLang = *mapLang
	cfg.ErrorHandler = parser.LogrusErrorHandler(logrus.StandardLogger())

	var in io.Reader = os.Stdin
	name := "<stdin>"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			logrus.WithError(err).Fatal("open input")
		}
		defer f.Close()
		in = f
	}

	rec := &parser.Recorder{Scripting: *scripting, DropComments: *noComments}
	p := parser.NewParser(rec, cfg)
	p.ChunkSize = *chunk
	if err := p.Parse(context.Background(), in); err != nil {
		logrus.WithError(err).WithField("input", name).Fatal("tokenization failed")
	}
	for _, tok := range rec.Tokens {
		fmt.Printf("%-14s %s\n", tok.Type, tok)
	}
}
