//go:build ignore

// gen_entities writes entities.go from the WHATWG entities.json.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
)

const source = "https://html.spec.whatwg.org/entities.json"

type entity struct {
	Codepoints []int `json:"codepoints"`
}

func main() {
	resp, err := http.Get(source)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var all map[string]entity
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		log.Fatal(err)
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, strings.TrimPrefix(k, "&"))
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.WriteString("// Code generated by \"go run gen_entities.go\"; DO NOT EDIT.\n\npackage parser\n\n")
	b.WriteString("// charRefs is sorted by name. Names without a trailing semicolon are the\n")
	b.WriteString("// legacy forms that may be matched without one.\n")
	b.WriteString("var charRefs = [...]charRef{\n")
	for _, k := range keys {
		if len(k) < 2 || !isLetter(k[0]) || !isLetter(k[1]) {
			log.Fatalf("%q does not start with two letters", k)
		}
		cps := all["&"+k].Codepoints
		parts := make([]string, len(cps))
		for i, cp := range cps {
			parts[i] = fmt.Sprintf("0x%04X", cp)
		}
		fmt.Fprintf(&b, "\t{%q, []rune{%s}},\n", k, strings.Join(parts, ", "))
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("entities.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
