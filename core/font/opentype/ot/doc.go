/*
Package ot provides access to the OpenType font tables needed to extract
TrueType glyph outlines.

Intended audience for this package are outline extractors and renderers which need
the unhinted point data of a glyph, together with the font-wide metrics to
position and scale it. Package `ot` will not interpret a font beyond that: it
exposes the tables 'head', 'hhea', 'hmtx', 'maxp', 'loca', 'glyf', 'cmap' and 'OS/2'
in an accessible form, and keeps every other table as a generic byte segment.

We follow the approach of the Go core team of keeping the initial font binary
in memory, and not copying out too much into separate buffers or data structures.
Tables are views into the font binary. Clients must not modify the byte slice
they handed to `Parse` while an ot.Font is in use.

# Status

No font collections nor variable fonts are supported. Fonts with CFF outlines
(type 'OTTO') are parsed, but will not yield contours, as they lack a 'glyf' table.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/schuko/tracing"
)

// Valuable resource:
// http://opentypecookbook.com/

// tracer writes to trace with key 'otsvg.fonts'
func tracer() tracing.Trace {
	return tracing.Select("otsvg.fonts")
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(x string) error {
	return core.Error(core.EINVALID, "OpenType font format: %s", x)
}
