package otquery

import (
	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font/opentype"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"golang.org/x/image/font/sfnt"
)

// --- Font Information -------------------------------------------------

// FontMetrics retrieves selected metrics of a font.
//
// Ascent and descent are taken from table 'hhea'. If both are zero or table 'hhea'
// is missing, the typographic values of table 'OS/2' are used. If neither table
// is present, or table 'head' is missing, an error with code core.EMETRICS is returned.
func FontMetrics(otf *ot.Font) (opentype.FontMetricsInfo, error) {
	metrics := opentype.FontMetricsInfo{}
	he := otf.Table(ot.T("head"))
	if he == nil {
		return metrics, core.Error(core.EMETRICS, "font has no head table")
	}
	head := he.Self().AsHead()
	if head.UnitsPerEm == 0 {
		return metrics, core.Error(core.EMETRICS, "font has zero units per em")
	}
	metrics.UnitsPerEm = sfnt.Units(head.UnitsPerEm)
	found := false
	if hh := otf.Table(ot.T("hhea")); hh != nil {
		hhea := hh.Self().AsHHea()
		metrics.Ascent = sfnt.Units(hhea.Ascender)
		metrics.Descent = sfnt.Units(hhea.Descender)
		metrics.LineGap = sfnt.Units(hhea.LineGap)
		metrics.MaxAdvance = sfnt.Units(hhea.AdvanceWidthMax)
		found = hhea.Ascender != 0 || hhea.Descender != 0
	}
	if !found {
		if t := otf.Table(ot.T("OS/2")); t != nil {
			if os2 := t.Self().AsOS2(); os2 != nil {
				tracer().Debugf("vertical metrics taken from OS/2")
				metrics.Ascent = sfnt.Units(os2.TypoAscender)
				metrics.Descent = sfnt.Units(os2.TypoDescender)
				metrics.LineGap = sfnt.Units(os2.TypoLineGap)
				found = true
			}
		}
	}
	if !found {
		return metrics, core.Error(core.EMETRICS, "font has neither hhea nor OS/2 vertical metrics")
	}
	return metrics, nil
}

// --- Glyph Routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a give code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
func GlyphIndex(otf *ot.Font, codepoint rune) ot.GlyphIndex {
	return otf.CMap.GlyphIndexMap.Lookup(codepoint)
}

// CodePointForGlyph returns the code-point for a given glyph index.
//
// This is an inefficient operation: All code-points contained in the font's CMap
// are checked sequentially if they produce the given glyph.
// If the glyph index does not correspond to a code-point, 0 is returned.
func CodePointForGlyph(otf *ot.Font, gid ot.GlyphIndex) rune {
	if gid == 0 {
		return 0
	}
	return otf.CMap.GlyphIndexMap.ReverseLookup(gid)
}

// GlyphAdvance returns the advance width of a glyph, in font units.
// Fonts without table 'hmtx' report an advance of 0.
func GlyphAdvance(otf *ot.Font, gid ot.GlyphIndex) sfnt.Units {
	t := otf.Table(ot.T("hmtx"))
	if t == nil {
		return 0
	}
	a, _ := t.Self().AsHMtx().HMetrics(gid)
	return sfnt.Units(a)
}

// GlyphMetrics retrieves metrics for a given glyph.
func GlyphMetrics(otf *ot.Font, gid ot.GlyphIndex) opentype.GlyphMetricsInfo {
	metrics := opentype.GlyphMetricsInfo{}
	//
	// table HMtx: advance width and left side bearing
	if t := otf.Table(ot.T("hmtx")); t != nil {
		a, lsb := t.Self().AsHMtx().HMetrics(gid)
		metrics.Advance, metrics.LSB = sfnt.Units(a), sfnt.Units(lsb)
	}
	//
	// table glyf: bounding box
	if glyf := otf.Table(ot.T("glyf")); glyf != nil {
		if lo := otf.Table(ot.T("loca")); lo != nil {
			loca := lo.Self().AsLoca()
			loc, end := loca.IndexToLocation(gid), loca.IndexToLocation(gid+1)
			if b := glyf.Binary(); end > loc && int(loc)+10 <= len(b) {
				b = b[loc:]
				metrics.BBox = opentype.BoundingBox{
					MinX: sfnt.Units(i16(b[2:])),
					MinY: sfnt.Units(i16(b[4:])),
					MaxX: sfnt.Units(i16(b[6:])),
					MaxY: sfnt.Units(i16(b[8:])),
				}
			}
		}
	}
	// RSB calculation: rsb = aw - (lsb + xMax - xMin)
	// From the spec:
	// If a glyph has no contours, xMax/xMin are not defined. The left side bearing indicated
	// in the 'hmtx' table for such glyphs should be zero.
	if !metrics.BBox.Empty() { // leave RSB for empty bboxes
		metrics.RSB = metrics.Advance - (metrics.LSB + metrics.BBox.Dx())
	}
	return metrics
}

// --- Helpers ----------------------------------------------------------

func i16(b []byte) int16 {
	return int16(b[0])<<8 | int16(b[1])<<0
}
