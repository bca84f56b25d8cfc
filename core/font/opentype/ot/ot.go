package ot

import (
	"github.com/npillmayer/otsvg/core/font"
)

// Font is a parsed TrueType font, reduced to the tables needed for
// rendering outlines: cmap, head, hhea, hmtx, maxp, OS/2, loca and glyf.
type Font struct {
	F      *font.ScalableFont
	Header *FontHeader
	tables map[Tag]Table
	CMap   *CMapTable
	Glyf   *GlyfTable // nil for CFF-flavoured fonts
}

// FontHeader holds the sfnt version and the number of table records.
// TrueType outlines are flagged by version 0x00010000, CFF by 'OTTO'.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// Table looks up a table by tag, which is case-sensitive. It returns nil if
// the font has no such table.
func (otf *Font) Table(tag Tag) Table {
	return otf.tables[tag]
}

// TableTags lists the tags of all tables of the font, in no particular order.
func (otf *Font) TableTags() []Tag {
	tags := make([]Tag, 0, len(otf.tables))
	for tag := range otf.tables {
		tags = append(tags, tag)
	}
	return tags
}

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// Tag is a 4-byte table name, packed big-endian into an integer.
type Tag uint32

// MakeTag packs up to 4 bytes into a Tag. Shorter input is padded with
// leading zeros, longer input is truncated.
func MakeTag(b []byte) Tag {
	var buf [4]byte
	if len(b) > 4 {
		b = b[:4]
	}
	copy(buf[4-len(b):], b)
	return Tag(u32(buf[:]))
}

// T packs a string into a Tag, padding with trailing spaces, e.g. T("cvt").
func T(t string) Tag {
	return Tag(u32([]byte((t + "    ")[:4])))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// Table is a font table. Binary gives read-only access to its bytes,
// Self converts it to a concrete table type.
type Table interface {
	Binary() []byte
	Self() TableSelf
}

type genericTable struct {
	tableBase
}

func newTable(tag Tag, b binarySegm, offset, size uint32) *genericTable {
	t := &genericTable{makeTableBase(tag, b, offset, size)}
	t.self = t
	return t
}

type tableBase struct {
	data   binarySegm
	name   Tag
	offset uint32
	length uint32
	self   interface{} // the concrete table embedding this base
}

func makeTableBase(tag Tag, b binarySegm, offset, size uint32) tableBase {
	return tableBase{data: b, name: tag, offset: offset, length: size}
}

// Binary returns a view of the font data covered by the table.
func (tb *tableBase) Binary() []byte {
	return tb.data
}

func (tb *tableBase) Self() TableSelf {
	return TableSelf{tableBase: tb}
}

// TableSelf converts a Table to its concrete type. Each As… method returns
// nil if the table is of a different type.
type TableSelf struct {
	tableBase *tableBase
}

// NameTag returns the tag of the table, or 0.
func (tself TableSelf) NameTag() Tag {
	if tself.tableBase == nil {
		return 0
	}
	return tself.tableBase.name
}

func (tself TableSelf) concrete() interface{} {
	if tself.tableBase == nil {
		return nil
	}
	return tself.tableBase.self
}

func (tself TableSelf) AsCMap() *CMapTable {
	t, _ := tself.concrete().(*CMapTable)
	return t
}

func (tself TableSelf) AsLoca() *LocaTable {
	t, _ := tself.concrete().(*LocaTable)
	return t
}

func (tself TableSelf) AsGlyf() *GlyfTable {
	t, _ := tself.concrete().(*GlyfTable)
	return t
}

func (tself TableSelf) AsMaxP() *MaxPTable {
	t, _ := tself.concrete().(*MaxPTable)
	return t
}

func (tself TableSelf) AsHead() *HeadTable {
	t, _ := tself.concrete().(*HeadTable)
	return t
}

func (tself TableSelf) AsHHea() *HHeaTable {
	t, _ := tself.concrete().(*HHeaTable)
	return t
}

func (tself TableSelf) AsHMtx() *HMtxTable {
	t, _ := tself.concrete().(*HMtxTable)
	return t
}

func (tself TableSelf) AsOS2() *OS2Table {
	t, _ := tself.concrete().(*OS2Table)
	return t
}
