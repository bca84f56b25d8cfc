package otquery

import (
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
)

// FontType returns the font type, encoded in the font header, as a string.
func FontType(otf *ot.Font) string {
	if otf.Header == nil {
		return "<empty>"
	}
	typ := otf.Header.FontType
	switch typ {
	case 0x4f54544f: // OTTO
		return "OpenType (outlines)"
	case 0x00010000: // TrueType
		return "TrueType"
	case 0x74727565: // true
		return "TrueType (Mac legacy)"
	}
	return "<unknown>"
}

// HasOutlines is a predicate: does the font carry TrueType outlines ('glyf' and 'loca')?
// Fonts with CFF outlines report false.
func HasOutlines(otf *ot.Font) bool {
	return otf.Glyf != nil
}

// LayoutTables returns a list of tag strings, one for each layout-table a font includes.
//
// From the spec:
// OpenType Layout makes use of five tables: GSUB, GPOS, BASE, JSTF, and GDEF.
func LayoutTables(otf *ot.Font) []string {
	var lt []string
	tags := otf.TableTags()
	for _, tag := range tags {
		switch tag.String() {
		case "GSUB", "GPOS", "BASE", "JSTF", "GDEF":
			lt = append(lt, tag.String())
		}
	}
	return lt
}
