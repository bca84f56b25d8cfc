/*
Package svg writes render documents as SVG.

Every glyph definition becomes a symbol, every placement a use-element
referencing it. The output is deterministic: symbols appear in first-seen
order, use-elements in placement order, and all coordinates are normalized.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package svg

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"

	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/engine/compose"
	"github.com/npillmayer/otsvg/engine/outline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'otsvg.svg'.
func tracer() tracing.Trace {
	return tracing.Select("otsvg.svg")
}

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// Write outputs doc as an SVG document to w.
func Write(w io.Writer, doc *compose.Document) error {
	if doc == nil {
		return core.Error(core.EINVALID, "no document to write")
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(`<svg version="1.1" xmlns="` + svgNamespace + `" xmlns:xlink="` + xlinkNamespace +
		`" viewBox="` + doc.Viewport.String() + `">` + "\n")
	doc.EachDefinition(func(id, d string) {
		bw.WriteString(`  <symbol id="`)
		bw.WriteString(attr(symbolID(doc.TestCase, id)))
		bw.WriteString(`" overflow="visible"><path d="`)
		bw.WriteString(attr(d))
		bw.WriteString(`"/></symbol>` + "\n")
	})
	for _, p := range doc.Placements() {
		bw.WriteString(`  <use xlink:href="#`)
		bw.WriteString(attr(symbolID(doc.TestCase, p.GlyphID)))
		bw.WriteString(`" x="`)
		bw.WriteString(outline.FormatCoordinate(p.X * doc.Scale))
		bw.WriteString(`" y="`)
		bw.WriteString(outline.FormatCoordinate(p.Y * doc.Scale))
		bw.WriteString(`"/>` + "\n")
	}
	bw.WriteString("</svg>\n")
	if err := bw.Flush(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write SVG: %v", err)
	}
	tracer().Debugf("wrote SVG with %d symbols and %d placements",
		len(doc.DefinitionIDs()), len(doc.Placements()))
	return nil
}

// String returns doc as an SVG document.
func String(doc *compose.Document) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func symbolID(testcase, glyphID string) string {
	if testcase == "" {
		return glyphID
	}
	return testcase + "." + glyphID
}

// attr escapes a string for use as an attribute value.
func attr(s string) string {
	var sb strings.Builder
	// writing to a strings.Builder does not fail
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
