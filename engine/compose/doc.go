/*
Package compose composes positioned glyph outlines into a render document.

A Compositor is created for every render. It receives glyph instances in
reading order, decodes and normalizes the outline of every glyph the first time
the glyph's identifier is seen, and records a placement for every instance.
Definitions and placements keep the order in which glyphs have been placed, as
this order is part of the serialized output. When all glyphs have been placed,
the document's viewport is computed from the placements and the font's vertical
metrics.

Render is the entry point which takes a font and a text, shapes the text and
composes the resulting glyphs.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'otsvg.compose'.
func tracer() tracing.Trace {
	return tracing.Select("otsvg.compose")
}
