package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heathj/htmltokenizer/parser/names"
)

func TestContentModelFor(t *testing.T) {
	tests := []struct {
		name      string
		scripting bool
		want      State
	}{
		{"title", false, RCDataState},
		{"textarea", false, RCDataState},
		{"style", false, RawTextState},
		{"xmp", false, RawTextState},
		{"iframe", false, RawTextState},
		{"noembed", false, RawTextState},
		{"noframes", false, RawTextState},
		{"script", false, ScriptDataState},
		{"plaintext", false, PlaintextState},
		{"noscript", false, DataState},
		{"noscript", true, RawTextState},
		{"div", true, DataState},
		{"my-title", false, DataState},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ContentModelFor(names.ElementNameFor(tt.name), tt.scripting))
		})
	}
}
