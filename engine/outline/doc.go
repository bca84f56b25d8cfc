/*
Package outline reconstructs explicit vector outlines from quadratic glyph contours.

TrueType glyphs store their outlines as closed contours of points, each tagged as
being on the curve or off the curve. An off-curve point is the control point of a
quadratic Bézier segment; two consecutive off-curve points imply an on-curve point
at their midpoint. Package outline turns such contours into paths of explicit
move, line, quadratic curve and close commands and normalizes these paths, both
geometrically and textually, so that serialized path data may be compared byte by
byte against a reference renderer.

All functions in this package are pure computations over in-memory data and are
safe for concurrent use.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'otsvg.outline'.
func tracer() tracing.Trace {
	return tracing.Select("otsvg.outline")
}
