package parser

import (
	"golang.org/x/net/html/atom"

	"github.com/heathj/htmltokenizer/parser/names"
)

// ContentModelFor returns the state a tree builder switches the tokenizer
// to after the start tag name, or DataState for elements with normal
// content.
// https://html.spec.whatwg.org/#parsing-html-fragments
func ContentModelFor(name names.ElementName, scripting bool) State {
	switch name.Atom {
	case atom.Title, atom.Textarea:
		return RCDataState
	case atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes:
		return RawTextState
	case atom.Script:
		return ScriptDataState
	case atom.Noscript:
		if scripting {
			return RawTextState
		}
	case atom.Plaintext:
		return PlaintextState
	}
	return DataState
}
