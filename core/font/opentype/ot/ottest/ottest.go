/*
Package ottest provides synthetic OpenType fonts for tests.

The fonts created here are tiny and fully known, which makes them suitable for
tests that check exact outline and metrics values.
*/
package ottest

import (
	"encoding/binary"
	"sort"
)

// BuildFont assembles a TrueType font binary from raw tables, given by their
// 4-letter tags. Table records are sorted by tag and tables are padded to
// 4-byte boundaries. Checksums are left zero.
func BuildFont(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	n := len(tags)
	header := make([]byte, 12+16*n)
	binary.BigEndian.PutUint32(header[0:], 0x00010000)
	binary.BigEndian.PutUint16(header[4:], uint16(n))
	offset := len(header)
	var body []byte
	for i, tag := range tags {
		data := tables[tag]
		rec := header[12+16*i:]
		copy(rec[0:4], (tag + "    ")[:4])
		binary.BigEndian.PutUint32(rec[8:], uint32(offset+len(body)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(data)))
		body = append(body, data...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
	}
	return append(header, body...)
}

// Values of the font created by TriangleFont.
const (
	TriangleUnitsPerEm = 1000
	TriangleAscender   = 800
	TriangleDescender  = -200
	TriangleAdvance    = 500 // advance of glyphs 1 and 2, glyph 0 has advance 0
)

// TriangleFont returns a font with three glyphs:
//
//	0  .notdef, empty
//	1  'A', one contour (0,0 on) (50,100 off) (100,0 on)
//	2  'B', composite of glyph 1 shifted by (100,0)
//
// Units per em are 1000, ascender is 800 and descender is -200.
func TriangleFont() []byte {
	return BuildFont(TriangleTables())
}

// TriangleTables returns the tables of TriangleFont, for tests which want to replace
// or remove single tables before calling BuildFont.
func TriangleTables() map[string][]byte {
	return map[string][]byte{
		"cmap": triangleCMap(),
		"glyf": triangleGlyf(),
		"head": triangleHead(),
		"hhea": triangleHHea(),
		"hmtx": triangleHMtx(),
		"loca": be16(0, 0, 15, 24), // short offsets, divided by 2
		"maxp": be16(0, 0x5000, 3), // version 0.5, 3 glyphs
	}
}

// ScaledCompositeTables returns the tables of TriangleFont with glyph 2 replaced
// by a composite of glyph 1, shifted by (dx,dy) and uniformly scaled. scale must
// be representable as F2Dot14, i.e. in [-2,2).
func ScaledCompositeTables(dx, dy int, scale float64) map[string][]byte {
	tables := TriangleTables()
	g2 := be16(-1, 0, 0, 0, 0)
	// ARG_1_AND_2_ARE_WORDS | ARGS_ARE_XY_VALUES | WE_HAVE_A_SCALE
	g2 = append(g2, be16(0x000B, 1, dx, dy, int(scale*(1<<14)))...)
	tables["glyf"] = append(tables["glyf"][:30:30], g2...)
	tables["loca"] = be16(0, 0, 15, 15+len(g2)/2)
	return tables
}

// OS2Table returns a version 0 'OS/2' table with the given typographic metrics
// and all other fields zero.
func OS2Table(ascender, descender, lineGap int) []byte {
	b := make([]byte, 78)
	copy(b[68:], be16(ascender, descender, lineGap))
	return b
}

func be16(vv ...int) []byte {
	b := make([]byte, 2*len(vv))
	for i, v := range vv {
		binary.BigEndian.PutUint16(b[2*i:], uint16(int16(v)))
	}
	return b
}

func triangleHead() []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[18:], TriangleUnitsPerEm)
	binary.BigEndian.PutUint16(b[50:], 0) // short loca offsets
	return b
}

func triangleHHea() []byte {
	b := make([]byte, 36)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	copy(b[4:], be16(TriangleAscender, TriangleDescender, 0, TriangleAdvance))
	binary.BigEndian.PutUint16(b[34:], 2) // numberOfHMetrics
	return b
}

func triangleHMtx() []byte {
	// two long metrics, followed by one left side bearing for glyph 2
	return be16(0, 0, TriangleAdvance, 0, 100)
}

func triangleCMap() []byte {
	cmap := be16(0, 1, 3, 1) // version, numTables, platform 3, encoding 1
	cmap = append(cmap, 0, 0, 0, 12)
	// format 4 with two segments: 'A'…'B' and the final 0xFFFF segment
	sub := be16(4, 32, 0, 4, 4, 1, 0)
	sub = append(sub, be16('B', 0xFFFF)...) // endCode
	sub = append(sub, be16(0)...)           // reservedPad
	sub = append(sub, be16('A', 0xFFFF)...) // startCode
	sub = append(sub, be16(1-'A', 1)...)    // idDelta
	sub = append(sub, be16(0, 0)...)        // idRangeOffset
	return append(cmap, sub...)
}

func triangleGlyf() []byte {
	// glyph 1: simple glyph with 3 points, all coordinates as long deltas
	g1 := be16(1, 0, 0, 100, 100)          // numberOfContours, bbox
	g1 = append(g1, be16(2, 0)...)         // endPtsOfContours, instructionLength
	g1 = append(g1, 0x01, 0x00, 0x01)      // flags
	g1 = append(g1, be16(0, 50, 50)...)    // x deltas
	g1 = append(g1, be16(0, 100, -100)...) // y deltas
	g1 = append(g1, 0)                     // pad to even length
	// glyph 2: composite of glyph 1 at offset (100,0)
	g2 := be16(-1, 100, 0, 200, 100)
	g2 = append(g2, be16(0x0003, 1, 100, 0)...) // ARG_1_AND_2_ARE_WORDS | ARGS_ARE_XY_VALUES
	return append(g1, g2...)
}
