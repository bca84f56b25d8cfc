package ot

// --- Concrete table implementations ----------------------------------------

// HeadTable gives global information about the font.
// Only a small subset of fields are made public by HeadTable, as they are
// needed for outline extraction. To read any of the other fields of table 'head'
// use its binary data.
type HeadTable struct {
	tableBase
	Flags            uint16 // see https://docs.microsoft.com/en-us/typography/opentype/spec/head
	UnitsPerEm       uint16 // values 16 … 16384 are valid
	IndexToLocFormat uint16 // needed to interpret loca table
}

func newHeadTable(tag Tag, b binarySegm, offset, size uint32) *HeadTable {
	t := &HeadTable{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.self = t
	return t
}

// HHeaTable contains information for horizontal layout.
type HHeaTable struct {
	tableBase
	Ascender         int16 // distance from baseline of highest ascender
	Descender        int16 // distance from baseline of lowest descender, usually negative
	LineGap          int16
	AdvanceWidthMax  uint16 // maximum advance width value in 'hmtx' table
	NumberOfHMetrics int
}

func newHHeaTable(tag Tag, b binarySegm, offset, size uint32) *HHeaTable {
	t := &HHeaTable{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.self = t
	return t
}

// HMtxTable contains metric information for the horizontal layout each of the glyphs in
// the font. Each element in the contained hMetrics-array has two parts: the advance width
// and left side bearing. The value NumberOfHMetrics is taken from the `hhea` table. In
// a monospaced font, only one entry is required but that entry may not be omitted.
// Glyphs beyond NumberOfHMetrics are assumed to have the same
// advance width as that found in the last entry in the hMetrics array.
type HMtxTable struct {
	tableBase
	NumberOfHMetrics int
}

func newHMtxTable(tag Tag, b binarySegm, offset, size uint32) *HMtxTable {
	t := &HMtxTable{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.self = t
	return t
}

// HMetrics returns the advance width and left side bearing of a glyph.
func (t *HMtxTable) HMetrics(g GlyphIndex) (uint16, int16) {
	if t.NumberOfHMetrics <= 0 {
		return 0, 0
	}
	if int(g) < t.NumberOfHMetrics {
		a := t.data.U16(int(g) * 4)
		lsb := t.data.U16(int(g)*4 + 2)
		return a, int16(lsb)
	}
	// left side bearings of the remaining glyphs follow the long metrics
	diff := int(g) - t.NumberOfHMetrics
	a := t.data.U16((t.NumberOfHMetrics - 1) * 4)
	lsb := t.data.U16(t.NumberOfHMetrics*4 + diff*2)
	return a, int16(lsb)
}

// MaxPTable establishes the memory requirements for this font.
// The 'maxp' table contains a count for the number of glyphs in the font.
// Whenever this value changes, other tables which depend on it should also be updated.
type MaxPTable struct {
	tableBase
	NumGlyphs int
}

func newMaxPTable(tag Tag, b binarySegm, offset, size uint32) *MaxPTable {
	t := &MaxPTable{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.self = t
	return t
}

// OS2Table consists of a set of metrics and other data that are required in OpenType fonts.
// We only expose the typographic vertical metrics, which serve as a fallback
// if table 'hhea' is missing or carries zero values.
type OS2Table struct {
	tableBase
	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
}

func newOS2Table(tag Tag, b binarySegm, offset, size uint32) *OS2Table {
	t := &OS2Table{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.self = t
	return t
}

// LocaTable stores the offsets to the locations of the glyphs in the font,
// relative to the beginning of the glyph data table.
// By definition, index zero points to the “missing character”, which is the character
// that appears if a character is not found in the font. The missing character is
// commonly represented by a blank box or a space.
type LocaTable struct {
	tableBase
	inx2loc func(t *LocaTable, gid GlyphIndex) uint32 // returns glyph location for glyph gid
	locCnt  int                                       // number of locations
}

// IndexToLocation offsets, indexed by glyph IDs, which provide the location of each
// glyph data block within the 'glyf' table.
func (t *LocaTable) IndexToLocation(gid GlyphIndex) uint32 {
	return t.inx2loc(t, gid)
}

func newLocaTable(tag Tag, b binarySegm, offset, size uint32) *LocaTable {
	t := &LocaTable{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.inx2loc = shortLocaVersion // may get changed by font consistency check
	t.locCnt = 0                 // has to be set during consistency check
	t.self = t
	return t
}

// loca holds numGlyphs+1 entries; the last one marks the end of the final glyph.

func shortLocaVersion(t *LocaTable, gid GlyphIndex) uint32 {
	// in case of error link to 'missing character' at location 0
	if int(gid) >= t.locCnt {
		return 0
	}
	loc, err := t.data.u16(int(gid) * 2)
	if err != nil {
		return 0
	}
	return uint32(loc) * 2
}

func longLocaVersion(t *LocaTable, gid GlyphIndex) uint32 {
	// in case of error link to 'missing character' at location 0
	if int(gid) >= t.locCnt {
		return 0
	}
	loc, err := t.data.u32(int(gid) * 4)
	if err != nil {
		return 0
	}
	return loc
}
