package ot

/*
We replicate some of the code of the Go core team here, available from
https://github.com/golang/image/tree/master/font/sfnt.
I understand it's legal to do so, as long as the license information stays intact.

   Copyright 2017 The Go Authors. All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.

The LICENSE file mentioned is replicated as GO-LICENSE at the root directory of
this module.
*/

// CMapTable represents an OpenType cmap table, i.e. the table to receive glyphs
// from code-points.
//
// See https://docs.microsoft.com/de-de/typography/opentype/spec/cmap
//
// Consulting the cmap table is a very frequent operation on fonts. We therefore
// construct an internal representation of the lookup table. A cmap table may contain
// more than one lookup table, but we will only instantiate the most appropriate one.
// Clients who need access to all the lookup tables will have to parse them themselves.
type CMapTable struct {
	tableBase
	GlyphIndexMap CMapGlyphIndex
}

func newCMapTable(tag Tag, b binarySegm, offset, size uint32) *CMapTable {
	t := &CMapTable{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.self = t
	return t
}

// platformEncodingWidth returns the number of bytes per character assumed by
// the given Platform ID and Platform Specific ID.
//
// Old fonts, from when Unicode meant the Basic Multilingual Plane (BMP),
// assume that 2 bytes per character is sufficient.
//
// Recent fonts naturally support the full range of Unicode code points, which
// can take up to 4 bytes per character. Such fonts might still choose one of
// the legacy encodings if e.g. their repertoire is limited to the BMP, for
// greater compatibility with older software, or because the resultant file
// size can be smaller.
func platformEncodingWidth(pid, psid uint16) int {
	switch pid {
	case 0: // Unicode platform
		switch psid {
		case 3: // Unicode BMB
			return 2
		case 4, 10: // Unicode full  (include 10 from FontForge bug)
			return 4
		}
	case 3: // Windows platform
		switch psid {
		case 1: // Unicode BMP
			return 2
		case 10: // Unicode full
			return 4
		}
	}
	return 0 // width 0 will never get selected
}

// We only support the following plaform/encoding/format combinations:
//
//	0 (Unicode)  3    4   Unicode BMB
//	0 (Unicode)  4    12  Unicode full  (10 from FontForge, error)
//	3 (Win)      1    4   Unicode BMP
//	3 (Win)      10   12  Unicode full
//
// Note that FontForge may generate a bogus Platform Specific ID (value 10)
// for the Unicode Platform ID (value 0). See
// https://github.com/fontforge/fontforge/issues/2728
func supportedCmapFormat(format, pid, psid uint16) bool {
	tracer().Debugf("checking supported cmap format (%d | %d | %d)", pid, psid, format)
	return (pid == 0 && psid == 3 && format == 4) ||
		(pid == 0 && (psid == 4 || psid == 10) && format == 12) ||
		(pid == 3 && psid == 1 && format == 4) ||
		(pid == 3 && psid == 10 && format == 12)
}

func parseCMap(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	n, err := b.u16(2)
	if err != nil {
		return nil, errFontFormat("cmap table header")
	}
	// Each encoding record is 8 bytes, following the 4 bytes of the table header.
	if _, err := b.view(4, 8*int(n)); err != nil {
		return nil, errFontFormat("cmap encoding records")
	}
	var best binarySegm
	bestWidth := 0
	for i := 0; i < int(n); i++ {
		rec := b[4+8*i : 4+8*i+8]
		pid, psid, link := u16(rec), u16(rec[2:]), u32(rec[4:])
		if int(link) >= len(b) {
			continue
		}
		subtable := b[link:]
		format, err := subtable.u16(0)
		if err != nil || !supportedCmapFormat(format, pid, psid) {
			continue
		}
		if w := platformEncodingWidth(pid, psid); w > bestWidth {
			best, bestWidth = subtable, w
		}
	}
	if bestWidth == 0 {
		return nil, errFontFormat("no supported cmap format found")
	}
	t := newCMapTable(tag, b, offset, size)
	if t.GlyphIndexMap, err = makeGlyphIndex(best); err != nil {
		return nil, err
	}
	return t, nil
}

// Dispatcher to create the correct implementation of a CMapGlyphIndex from a given format.
func makeGlyphIndex(subtable binarySegm) (CMapGlyphIndex, error) {
	switch subtable.U16(0) {
	case 4:
		return makeGlyphIndexFormat4(subtable)
	case 12:
		return makeGlyphIndexFormat12(subtable)
	}
	panic("unreachable") // unsupported formats should have been weeded out beforehand
}

// CMapGlyphIndex represents a CMap table index to receive a glyph index from
// a code-point.
type CMapGlyphIndex interface {
	Lookup(rune) GlyphIndex        // central activiy of CMap
	ReverseLookup(GlyphIndex) rune // this is non-standard, but helps with tests
}

// Format 4: Segment mapping to delta values
// This is the standard character-to-glyph-index mapping subtable for fonts that support
// only Unicode Basic Multilingual Plane characters (U+0000 to U+FFFF).
//
// This format is used when the character codes for the characters represented by a font
// fall into several contiguous ranges, possibly with holes in some or all of the ranges
// (that is, some of the codes in a range may not have a representation in the font).
type format4GlyphIndex struct {
	entries []cmapEntry16
	data    binarySegm // the subtable
	roStart int        // offset of the idRangeOffset array within data
}

// Format 4 holds four parallel arrays to describe the segments (one segment for
// each contiguous range of codes).
// see https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-4-segment-mapping-to-delta-values
type cmapEntry16 struct {
	end, start, delta, offset uint16
}

func makeGlyphIndexFormat4(b binarySegm) (CMapGlyphIndex, error) {
	const headerSize = 14
	segCountX2, err := b.u16(6)
	if err != nil || segCountX2&1 != 0 {
		return nil, errFontFormat("cmap format 4 segment count")
	}
	segCount := int(segCountX2 / 2)
	// endCode[segCount], reservedPad, startCode[segCount], idDelta[segCount], idRangeOffset[segCount]
	if _, err := b.view(headerSize, 8*segCount+2); err != nil {
		return nil, errFontFormat("cmap format 4 segments")
	}
	f4 := format4GlyphIndex{
		entries: make([]cmapEntry16, segCount),
		data:    b,
		roStart: headerSize + 6*segCount + 2,
	}
	for i := range f4.entries {
		f4.entries[i] = cmapEntry16{
			end:    b.U16(headerSize + 2*i),
			start:  b.U16(headerSize + 2*segCount + 2 + 2*i),
			delta:  b.U16(headerSize + 4*segCount + 2 + 2*i),
			offset: b.U16(f4.roStart + 2*i),
		}
	}
	return f4, nil
}

func (f4 format4GlyphIndex) Lookup(r rune) GlyphIndex {
	if uint32(r) > 0xffff { // format 4 is for BMP code-points only
		return 0 // return index for 'missing character'
	}
	c := uint16(r)
	N := len(f4.entries)
	for i, j := 0, N; i < j; {
		h := i + (j-i)/2 // do a binary search on f4.entries (which may get large)
		entry := &f4.entries[h]
		if c < entry.start {
			j = h
		} else if entry.end < c {
			i = h + 1
		} else if entry.offset == 0 {
			return GlyphIndex(c + entry.delta)
		} else {
			// “The character code offset from startCode is added to the idRangeOffset value.
			//  This sum is used as an offset from the current location within idRangeOffset
			//  itself to index out the correct glyphIdArray value.”
			at := f4.roStart + 2*h + int(entry.offset) + 2*int(c-entry.start)
			glyphInx := f4.data.U16(at)
			if glyphInx > 0 {
				// If the value obtained from the indexing operation is not 0 (which indicates
				// missingGlyph), idDelta[i] is added to it to get the glyph index
				glyphInx += entry.delta
			}
			return GlyphIndex(glyphInx)
		}
	}
	return 0
}

func (f4 format4GlyphIndex) ReverseLookup(gid GlyphIndex) rune {
	for _, entry := range f4.entries {
		for c := uint32(entry.start); c <= uint32(entry.end) && c != 0xffff; c++ {
			if f4.Lookup(rune(c)) == gid {
				return rune(c)
			}
		}
	}
	return 0
}

// Format 12: Segmented coverage
// This is the standard character-to-glyph-index mapping subtable for fonts supporting
// Unicode character repertoires that include supplementary-plane characters (U+10000 to U+10FFFF).
type format12GlyphIndex struct {
	groups []cmapGroup32
}

type cmapGroup32 struct {
	start, end, startGlyph uint32
}

func makeGlyphIndexFormat12(b binarySegm) (CMapGlyphIndex, error) {
	const headerSize = 16
	n, err := b.u32(12)
	if err != nil {
		return nil, errFontFormat("cmap format 12 header")
	}
	if _, err := b.view(headerSize, 12*int(n)); err != nil && n > 0 {
		return nil, errFontFormat("cmap format 12 groups")
	}
	f12 := format12GlyphIndex{groups: make([]cmapGroup32, n)}
	for i := range f12.groups {
		at := headerSize + 12*i
		f12.groups[i] = cmapGroup32{
			start:      b.U32(at),
			end:        b.U32(at + 4),
			startGlyph: b.U32(at + 8),
		}
	}
	return f12, nil
}

func (f12 format12GlyphIndex) Lookup(r rune) GlyphIndex {
	c := uint32(r)
	for i, j := 0, len(f12.groups); i < j; {
		h := i + (j-i)/2
		g := &f12.groups[h]
		if c < g.start {
			j = h
		} else if g.end < c {
			i = h + 1
		} else {
			return GlyphIndex(g.startGlyph + c - g.start)
		}
	}
	return 0
}

func (f12 format12GlyphIndex) ReverseLookup(gid GlyphIndex) rune {
	for _, g := range f12.groups {
		if uint32(gid) >= g.startGlyph && uint32(gid)-g.startGlyph <= g.end-g.start {
			return rune(g.start + uint32(gid) - g.startGlyph)
		}
	}
	return 0
}
