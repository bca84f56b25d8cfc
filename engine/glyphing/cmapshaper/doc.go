/*
Package cmapshaper implements a simple shaper which maps code-points to glyphs
by consulting a font's 'cmap' table only.

No OpenType layout features are applied. Glyphs are advanced by their 'hmtx'
advance widths, and cluster IDs are assigned per grapheme cluster.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cmapshaper

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'otsvg.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("otsvg.glyphs")
}
