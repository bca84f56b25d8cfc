package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Parse parses an OpenType font from a byte slice.
// An ot.Font needs ongoing access to the fonts byte-data after the Parse function returns.
// Its elements are assumed immutable while the ot.Font remains in use.
func Parse(font []byte) (*Font, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errFontFormat("font header: " + err.Error())
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	src := binarySegm(font)
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, err := src.view(12, 16*int(h.TableCount))
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			return nil, errFontFormat("table order")
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			return nil, errFontFormat("invalid table offset")
		}
		if uint64(off)+uint64(size) > uint64(len(src)) {
			return nil, errFontFormat("table " + tag.String() + " exceeds font data")
		}
		t, err := parseTable(tag, src[off:off+size], off, size)
		if err != nil {
			return nil, err
		}
		if t != nil {
			otf.tables[tag] = t
		}
	}
	if err := extractOutlineInfo(otf); err != nil {
		return nil, err
	}
	return otf, nil
}

// RequiredTables lists the tables any font must contain to be usable for
// outline extraction at all. Tables 'head' and 'hhea' are checked lazily, as their
// absence results in missing metrics rather than an unusable font.
var RequiredTables = []string{
	"cmap", "maxp",
}

// Consistency check and shortcuts to essential tables.
func extractOutlineInfo(otf *Font) error {
	for _, tag := range RequiredTables {
		h := otf.tables[T(tag)]
		if h == nil {
			return errFontFormat("missing required table " + tag)
		}
	}
	otf.CMap = otf.tables[T("cmap")].Self().AsCMap()
	maxp := otf.tables[T("maxp")].Self().AsMaxP()
	// Collect and centralize font information:
	if hh := otf.Table(T("hhea")); hh != nil {
		hhead := hh.Self().AsHHea()
		if mx := otf.Table(T("hmtx")); mx != nil {
			hmtx := mx.Self().AsHMtx()
			hmtx.NumberOfHMetrics = hhead.NumberOfHMetrics
		}
	}
	he, lo, gl := otf.Table(T("head")), otf.Table(T("loca")), otf.Table(T("glyf"))
	if he == nil || lo == nil || gl == nil {
		tracer().Infof("font has no TrueType outlines")
		return nil
	}
	head := he.Self().AsHead()
	loca := lo.Self().AsLoca()
	if head.IndexToLocFormat == 1 {
		loca.inx2loc = longLocaVersion
	}
	loca.locCnt = maxp.NumGlyphs + 1
	otf.Glyf = gl.Self().AsGlyf()
	otf.Glyf.loca = loca
	return nil
}

func parseTable(t Tag, b binarySegm, offset, size uint32) (Table, error) {
	switch t {
	case T("cmap"):
		return parseCMap(t, b, offset, size)
	case T("head"):
		return parseHead(t, b, offset, size)
	case T("glyf"):
		return newGlyfTable(t, b, offset, size), nil
	case T("hhea"):
		return parseHHea(t, b, offset, size)
	case T("hmtx"):
		return parseHMtx(t, b, offset, size)
	case T("loca"):
		return parseLoca(t, b, offset, size)
	case T("maxp"):
		return parseMaxP(t, b, offset, size)
	case T("OS/2"):
		return parseOS2(t, b, offset, size)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size), nil
}

// --- Head table ------------------------------------------------------------

func parseHead(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 54 {
		return nil, errFontFormat("size of head table")
	}
	t := newHeadTable(tag, b, offset, size)
	t.Flags, _ = b.u16(16)      // flags
	t.UnitsPerEm, _ = b.u16(18) // units per em
	// IndexToLocFormat is needed to interpret the loca table:
	// 0 for short offsets, 1 for long
	t.IndexToLocFormat, _ = b.u16(50)
	return t, nil
}

// --- Loca table ------------------------------------------------------------

// Dependencies (taken from Apple Developer page about TrueType):
// The size of entries in the 'loca' table must be appropriate for the value of the
// indexToLocFormat field of the 'head' table. The number of entries must be the same
// as the numGlyphs field of the 'maxp' table, plus one.
// The 'loca' table is most intimately dependent upon the contents of the 'glyf' table
// and vice versa. Changes to the 'loca' table must not be made unless appropriate
// changes to the 'glyf' table are simultaneously made.
func parseLoca(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	return newLocaTable(tag, b, offset, size), nil
}

// --- MaxP table ------------------------------------------------------------

// This table establishes the memory requirements for this font. Fonts with CFF data
// must use Version 0.5 of this table, specifying only the numGlyphs field. Fonts
// with TrueType outlines must use Version 1.0 of this table, where all data is required.
func parseMaxP(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 6 {
		return nil, errFontFormat("maxp table incomplete")
	}
	t := newMaxPTable(tag, b, offset, size)
	n, _ := b.u16(4)
	t.NumGlyphs = int(n)
	return t, nil
}

// --- HHea table ------------------------------------------------------------

// This table contains information for horizontal layout. The values in the
// ascender, descender and lineGap fields are expressed in font design units.
func parseHHea(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size == 0 {
		return nil, nil
	}
	tracer().Debugf("HHea table has size %d", size)
	if size < 36 {
		return nil, errFontFormat("hhea table incomplete")
	}
	t := newHHeaTable(tag, b, offset, size)
	t.Ascender, _ = b.i16(4)
	t.Descender, _ = b.i16(6)
	t.LineGap, _ = b.i16(8)
	t.AdvanceWidthMax, _ = b.u16(10)
	n, _ := b.u16(34)
	t.NumberOfHMetrics = int(n)
	return t, nil
}

// --- HMtx table ------------------------------------------------------------

// Dependencies (taken from Apple Developer page about TrueType):
// The value of the numOfLongHorMetrics field is found in the 'hhea' (Horizontal Header)
// table. Fonts that lack an 'hhea' table must not have an 'hmtx' table.
func parseHMtx(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size == 0 {
		return nil, nil
	}
	t := newHMtxTable(tag, b, offset, size)
	return t, nil
}

// --- OS/2 table ------------------------------------------------------------

// All versions of table OS/2 carry the typographic metrics at bytes 68…73.
func parseOS2(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 74 {
		tracer().Infof("OS/2 table too short for typographic metrics, ignored")
		return newTable(tag, b, offset, size), nil
	}
	t := newOS2Table(tag, b, offset, size)
	t.TypoAscender, _ = b.i16(68)
	t.TypoDescender, _ = b.i16(70)
	t.TypoLineGap, _ = b.i16(72)
	return t, nil
}
