//go:build ignore

// gen writes attribute_table.go: one exported variable per well-known
// attribute name plus the hash-ordered lookup table.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strings"
)

const wellKnown = `
abbr accept accept-charset accesskey action align alink allow
allowfullscreen allowpaymentrequest alt archive as async autocapitalize
autocomplete autocorrect autofocus autoplay autosave axis background
bgcolor blocking border cellpadding cellspacing challenge char charoff
charset checked cite class classid clear code codebase codetype color
cols colspan compact content contenteditable contextmenu controls coords
crossorigin data datafld dataformatas datapagesize datasrc datetime
declare decoding default defer dir dirname disabled
disablepictureinpicture disableremoteplayback download draggable
dropzone enctype enterkeyhint event exportparts face fetchpriority for
form formaction formenctype formmethod formnovalidate formtarget frame
frameborder headers height hidden high href hreflang hspace http-equiv
icon id imagesizes imagesrcset inert inputmode integrity is ismap itemid
itemprop itemref itemscope itemtype keytype kind label lang language
link list loading longdesc loop low manifest marginheight marginwidth
max maxlength mayscript media method min minlength multiple muted name
nohref nomodule nonce noresize noshade novalidate nowrap object open
optimum part pattern ping placeholder playsinline popover popovertarget
popovertargetaction poster preload profile prompt pubdate radiogroup
readonly referrerpolicy rel required results rev reversed role rows
rowspan rules sandbox scheme scope scoped scrolling seamless selected
shadowrootclonable shadowrootdelegatesfocus shadowrootmode
shadowrootserializable shape size sizes slot span spellcheck src srcdoc
srclang srcset standby start step style summary tabindex target text
title translate truespeed type typemustmatch usemap valign value
valuetype version vlink vspace width wrap writingsuggestions onabort
onactivate onafterprint onafterupdate onanimationend
onanimationiteration onanimationstart onbeforeactivate onbeforecopy
onbeforecut onbeforedeactivate onbeforeeditfocus onbeforepaste
onbeforeprint onbeforeunload onbeforeupdate onbegin onblur onbounce
oncancel oncanplay oncanplaythrough oncellchange onchange onclick
onclose oncontextmenu oncontrolselect oncopy oncuechange oncut
ondataavailable ondatasetchanged ondatasetcomplete ondblclick
ondeactivate ondrag ondragdrop ondragend ondragenter ondragleave
ondragover ondragstart ondrop ondurationchange onemptied onend onended
onerror onerrorupdate onfilterchange onfinish onfocus onfocusin
onfocusout onformchange onforminput onhelp oninput oninvalid onkeydown
onkeypress onkeyup onlanguagechange onload onloadeddata onloadedmetadata
onloadend onloadstart onlosecapture onmessage onmousedown onmouseenter
onmouseleave onmousemove onmouseout onmouseover onmouseup onmousewheel
onmove onmoveend onoffline ononline onpagehide onpageshow onpaste
onpause onplay onplaying onpopstate onprogress onpropertychange
onratechange onreadystatechange onrepeat onreset onresize onrowenter
onrowexit onrowsdelete onrowsinserted onscroll onsearch onseeked
onseeking onselect onselectstart onshow onstalled onstart onstop
onstorage onsubmit onsuspend ontimeupdate ontoggle onunload
onvolumechange onwaiting onwheel onzoom aria-activedescendant
aria-atomic aria-autocomplete aria-busy aria-channel aria-checked
aria-controls aria-datatype aria-describedby aria-disabled
aria-dropeffect aria-expanded aria-flowto aria-grab aria-haspopup
aria-hidden aria-invalid aria-labelledby aria-level aria-live
aria-multiline aria-multiselectable aria-owns aria-posinset aria-pressed
aria-readonly aria-relevant aria-required aria-secret aria-selected
aria-setsize aria-sort aria-templateid aria-valuemax aria-valuemin
aria-valuenow xml:base xml:lang xml:space xlink:actuate xlink:arcrole
xlink:href xlink:role xlink:show xlink:title xlink:type xmlns
xmlns:xlink accent-height accumulate additive alignment-baseline
alphabetic amplitude arabic-form ascent attributename attributetype
azimuth basefrequency baseline-shift baseprofile bbox begin bias by
calcmode cap-height clip clip-path clip-rule clippathunits
color-interpolation color-interpolation-filters color-profile
color-rendering contentscripttype contentstyletype cursor cx cy d
descent diffuseconstant direction display divisor dominant-baseline dur
dx dy edgemode elevation enable-background end exponent
externalresourcesrequired fill fill-opacity fill-rule filter filterres
filterunits flood-color flood-opacity font-family font-size
font-size-adjust font-stretch font-style font-variant font-weight format
from fx fy g1 g2 glyph-name glyph-orientation-horizontal
glyph-orientation-vertical glyphref gradienttransform gradientunits
hanging horiz-adv-x horiz-origin-x horiz-origin-y ideographic
image-rendering in in2 intercept k k1 k2 k3 k4 kernelmatrix
kernelunitlength kerning keypoints keysplines keytimes lengthadjust
letter-spacing lighting-color limitingconeangle local marker-end
marker-mid marker-start markerheight markerunits markerwidth mask
maskcontentunits maskunits mathematical mode numoctaves offset opacity
operator order orient orientation origin overline-position
overline-thickness panose-1 path pathlength patterncontentunits
patterntransform patternunits pointer-events points pointsatx pointsaty
pointsatz preservealpha preserveaspectratio primitiveunits r radius refx
refy rendering-intent repeatcount repeatdur requiredextensions
requiredfeatures restart result rotate rx ry scale seed shape-rendering
slope spacing specularconstant specularexponent spreadmethod startoffset
stddeviation stemh stemv stitchtiles stop-color stop-opacity
strikethrough-position strikethrough-thickness string stroke
stroke-dasharray stroke-dashoffset stroke-linecap stroke-linejoin
stroke-miterlimit stroke-opacity stroke-width surfacescale
systemlanguage tablevalues targetx targety text-anchor text-decoration
text-rendering to transform u1 u2 underline-position underline-thickness
unicode unicode-bidi unicode-range units-per-em v-alphabetic v-hanging
v-ideographic v-mathematical values vert-adv-y vert-origin-x
vert-origin-y viewbox viewtarget visibility widths word-spacing
writing-mode x x-height x1 x2 xchannelselector y y1 y2 ychannelselector
z zoomandpan accent accentunder actiontype close columnalign columnlines
columnspacing columnspan columnwidth definitionurl denomalign depth
displaystyle edge encoding equalcolumns equalrows fence fontfamily
fontsize fontstyle fontweight framespacing groupalign indentalign
indentalignfirst indentalignlast indentshift indenttarget largeop
linebreak linebreakstyle linethickness longdivstyle lquote lspace macros
mathbackground mathcolor mathsize mathvariant maxsize mediummathspace
minsize movablelimits notation numalign other overflow position rowalign
rowlines rowspacing rquote rspace scriptlevel scriptminsize
scriptsizemultiplier selection separator separators stretchy
subscriptshift superscriptshift symmetric thickmathspace thinmathspace
verythickmathspace verythinmathspace veryverythickmathspace
veryverythinmathspace voffset about datatype inlist prefix property
resource typeof vocab
`

const booleanAttrs = `
allowfullscreen allowpaymentrequest async autofocus autoplay checked
compact controls declare default defer disabled disablepictureinpicture
disableremoteplayback formnovalidate hidden inert ismap itemscope loop
multiple muted nohref nomodule noresize noshade novalidate nowrap open
playsinline readonly required reversed scoped seamless selected
shadowrootclonable shadowrootdelegatesfocus shadowrootserializable
truespeed typemustmatch
`

const caseFoldedAttrs = `
align autocapitalize autocomplete charset clear contenteditable
crossorigin decoding dir draggable enctype enterkeyhint fetchpriority
formenctype formmethod frame http-equiv inputmode kind language loading
method popover popovertargetaction preload referrerpolicy rules scope
scrolling shadowrootmode shape spellcheck translate type valign
valuetype wrap
`

// identifiers already declared by the package
var reserved = map[string]bool{"Mode": true}

func hashName(s string) uint32 {
	buf := []rune(s)
	n := len(buf)
	if n == 0 {
		return 0
	}
	first := uint32(buf[0]) << 19
	second := uint32(1) << 23
	var third, fourth, fifth, sixth uint32
	switch {
	case n >= 4:
		second = uint32(buf[n-4]) << 4
		third = uint32(buf[1]) << 9
		fourth = uint32(buf[n-2]) << 14
		fifth = uint32(buf[3]) << 24
		sixth = uint32(buf[n-1]) << 11
	case n == 3:
		second = uint32(buf[1]) << 4
		third = uint32(buf[2]) << 9
	case n == 2:
		second = uint32(buf[1]) << 24
	}
	return uint32(n) + first + second + third + fourth + fifth + sixth
}

func ident(name string) string {
	parts := strings.Split(strings.ReplaceAll(name, ":", "-"), "-")
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	id := strings.Join(parts, "_")
	if reserved[id] {
		id += "Attr"
	}
	return id
}

func set(list string) map[string]bool {
	m := make(map[string]bool)
	for _, f := range strings.Fields(list) {
		m[f] = true
	}
	return m
}

func constructor(name string, boolean, folded map[string]bool) string {
	switch {
	case strings.HasPrefix(name, "xml:"):
		return fmt.Sprintf("newAttributeName(xmlNS, colonifiedLocal(%q, %q), xmlPrefix, ncnameForeign)", name, name[4:])
	case strings.HasPrefix(name, "xlink:"):
		return fmt.Sprintf("newAttributeName(xlinkNS, colonifiedLocal(%q, %q), xlinkPrefix, ncnameForeign)", name, name[6:])
	case name == "xmlns":
		return `newAttributeName(xmlnsNS, sameLocal("xmlns"), allNoPrefix, ncnameAll|isXmlns)`
	case name == "xmlns:xlink":
		return `newAttributeName(xmlnsNS, colonifiedLocal("xmlns:xlink", "xlink"), xmlnsPrefix, ncnameForeign|isXmlns)`
	case name == "lang":
		return `newAttributeName(langNS, sameLocal("lang"), langPrefix, ncnameAll)`
	}
	flags := "ncnameAll"
	if boolean[name] {
		flags += "|booleanFlags"
	} else if folded[name] {
		flags += "|caseFolded"
	}
	return fmt.Sprintf("newAttributeName(allNoNS, sameLocal(%q), allNoPrefix, %s)", name, flags)
}

// levelOrder lays sorted out as an implicit binary search tree: an
// in-order walk of the indices 0..n-1 with children 2i+1 and 2i+2 visits
// them in ascending order.
func levelOrder(sorted []string) []string {
	out := make([]string, len(sorted))
	next := 0
	var walk func(i int)
	walk = func(i int) {
		if i >= len(sorted) {
			return
		}
		walk(2*i + 1)
		out[i] = sorted[next]
		next++
		walk(2*i + 2)
	}
	walk(0)
	return out
}

func writeList(b *bytes.Buffer, items []string) {
	line := "\t"
	for _, it := range items {
		tok := it + ","
		if len(line)+len(tok)+1 > 78 {
			b.WriteString(strings.TrimRight(line, " ") + "\n")
			line = "\t"
		}
		line += tok + " "
	}
	b.WriteString(strings.TrimRight(line, " ") + "\n")
}

func main() {
	names := strings.Fields(wellKnown)
	boolean := set(booleanAttrs)
	folded := set(caseFoldedAttrs)

	seen := make(map[uint32]string)
	for _, n := range names {
		h := hashName(n)
		if other, ok := seen[h]; ok {
			log.Fatalf("hash collision: %q and %q", other, n)
		}
		seen[h] = n
	}

	byIdent := append([]string(nil), names...)
	sort.Slice(byIdent, func(i, j int) bool { return ident(byIdent[i]) < ident(byIdent[j]) })

	byHash := append([]string(nil), names...)
	sort.Slice(byHash, func(i, j int) bool { return hashName(byHash[i]) < hashName(byHash[j]) })
	tree := levelOrder(byHash)

	var b bytes.Buffer
	b.WriteString("// Code generated by \"go run gen.go\"; DO NOT EDIT.\n\npackage names\n\n")
	b.WriteString("// Well-known attribute names.\nvar (\n")
	for _, n := range byIdent {
		fmt.Fprintf(&b, "\t%s = %s\n", ident(n), constructor(n, boolean, folded))
	}
	b.WriteString(")\n\n")
	b.WriteString("// attributeNames is the well-known table laid out as an implicit binary\n")
	b.WriteString("// search tree in level order. attributeHashes[i] is HashName of\n")
	b.WriteString("// attributeNames[i].\n")
	b.WriteString("var attributeNames = [...]*AttributeName{\n")
	ids := make([]string, len(tree))
	hashes := make([]string, len(tree))
	for i, n := range tree {
		ids[i] = ident(n)
		hashes[i] = fmt.Sprintf("0x%08x", hashName(n))
	}
	writeList(&b, ids)
	b.WriteString("}\n\nvar attributeHashes = [...]uint32{\n")
	writeList(&b, hashes)
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("attribute_table.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}
