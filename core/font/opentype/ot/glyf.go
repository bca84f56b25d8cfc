package ot

import (
	"fmt"
)

// GlyfTable contains the TrueType outline data of the glyphs of a font.
// Glyph data blocks are located by consulting table 'loca'.
//
// A glyph is either simple, i.e. made of a number of contours with on-curve
// and off-curve points, or composite, i.e. built from transformed references
// to other glyphs.
type GlyfTable struct {
	tableBase
	loca *LocaTable
}

func newGlyfTable(tag Tag, b binarySegm, offset, size uint32) *GlyfTable {
	t := &GlyfTable{}
	t.tableBase = makeTableBase(tag, b, offset, size)
	t.self = t
	return t
}

// Point is a point of a glyph outline, in font units. Points of simple glyphs
// have integral coordinates; points of scaled composite components may not.
type Point struct {
	X, Y    float64
	OnCurve bool
}

// Contour is a connected, implicitly closed part of a glyph outline.
type Contour []Point

// flags of simple glyph points
const (
	flagOnCurve   = 0x01
	flagXShort    = 0x02
	flagYShort    = 0x04
	flagRepeat    = 0x08
	flagXSameOrPo = 0x10 // X_IS_SAME_OR_POSITIVE_X_SHORT_VECTOR
	flagYSameOrPo = 0x20 // Y_IS_SAME_OR_POSITIVE_Y_SHORT_VECTOR
)

// flags of composite glyph components
const (
	compArgsAreWords   = 0x0001
	compArgsAreXY      = 0x0002
	compHaveScale      = 0x0008
	compMoreComponents = 0x0020
	compHaveXYScale    = 0x0040
	compHaveTwoByTwo   = 0x0080
)

// maxCompositeDepth limits the nesting of composite glyphs.
const maxCompositeDepth = 8

// glyphData returns the glyph data block for glyph gid. An empty block denotes
// a glyph without outline, e.g. a space.
func (t *GlyfTable) glyphData(gid GlyphIndex) (binarySegm, error) {
	if t.loca == nil {
		return nil, errFontFormat("glyf table without loca table")
	}
	if int(gid) >= t.loca.locCnt-1 {
		return nil, errFontFormat(fmt.Sprintf("glyph index %d out of range", gid))
	}
	start, end := t.loca.IndexToLocation(gid), t.loca.IndexToLocation(gid+1)
	if end < start || int(end) > len(t.data) {
		return nil, errFontFormat(fmt.Sprintf("invalid loca entry for glyph %d", gid))
	}
	return t.data[start:end], nil
}

// Contours returns the contours of glyph gid, with composite glyphs resolved into
// the contours of their components.
func (t *GlyfTable) Contours(gid GlyphIndex) ([]Contour, error) {
	return t.contours(gid, 0)
}

func (t *GlyfTable) contours(gid GlyphIndex, depth int) ([]Contour, error) {
	b, err := t.glyphData(gid)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	if len(b) < 10 {
		return nil, errFontFormat(fmt.Sprintf("glyph header for glyph %d", gid))
	}
	numContours, _ := b.i16(0)
	tracer().Debugf("glyph %d has %d contours", gid, numContours)
	if numContours >= 0 {
		return decodeSimpleGlyph(b[10:], int(numContours), gid)
	}
	if depth >= maxCompositeDepth {
		return nil, errFontFormat("composite glyphs too deeply nested")
	}
	return t.decodeCompositeGlyph(b[10:], gid, depth)
}

func decodeSimpleGlyph(b binarySegm, numContours int, gid GlyphIndex) ([]Contour, error) {
	if numContours == 0 {
		return nil, nil
	}
	invalid := func(what string) error {
		return errFontFormat(fmt.Sprintf("glyph %d: %s", gid, what))
	}
	if len(b) < 2*numContours+2 {
		return nil, invalid("end points of contours")
	}
	endPts := make([]int, numContours)
	for i := range endPts {
		endPts[i] = int(b.U16(2 * i))
		if i > 0 && endPts[i] < endPts[i-1] {
			return nil, invalid("end points not ascending")
		}
	}
	b = b[2*numContours:]
	numPoints := endPts[numContours-1] + 1
	instructionLength := int(b.U16(0))
	if len(b) < 2+instructionLength {
		return nil, invalid("instructions")
	}
	b = b[2+instructionLength:]
	//
	// decode the flags
	ff := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		flags, err := b.u8(0)
		if err != nil {
			return nil, invalid("flags")
		}
		b = b[1:]
		ff[i] = flags
		i++
		if flags&flagRepeat != 0 {
			count, err := b.u8(0)
			if err != nil {
				return nil, invalid("flag repeat count")
			}
			b = b[1:]
			for ; count > 0 && i < numPoints; count-- {
				ff[i] = flags
				i++
			}
		}
	}
	//
	// decode the coordinates; x and y use the same encoding with different flag bits
	xx, b, err := decodeCoordinates(b, ff, flagXShort, flagXSameOrPo)
	if err != nil {
		return nil, invalid("x-coordinates")
	}
	yy, _, err := decodeCoordinates(b, ff, flagYShort, flagYSameOrPo)
	if err != nil {
		return nil, invalid("y-coordinates")
	}
	cc := make([]Contour, numContours)
	start := 0
	for i, end := range endPts {
		pp := make(Contour, 0, end+1-start)
		for j := start; j <= end; j++ {
			pp = append(pp, Point{X: float64(xx[j]), Y: float64(yy[j]), OnCurve: ff[j]&flagOnCurve != 0})
		}
		cc[i] = pp
		start = end + 1
	}
	return cc, nil
}

func decodeCoordinates(b binarySegm, ff []byte, short, sameOrPositive byte) ([]int16, binarySegm, error) {
	cc := make([]int16, len(ff))
	var c int16
	for i, flags := range ff {
		if flags&short != 0 {
			d, err := b.u8(0)
			if err != nil {
				return nil, b, err
			}
			b = b[1:]
			if flags&sameOrPositive != 0 {
				c += int16(d)
			} else {
				c -= int16(d)
			}
		} else if flags&sameOrPositive == 0 {
			d, err := b.i16(0)
			if err != nil {
				return nil, b, err
			}
			b = b[2:]
			c += d
		}
		cc[i] = c
	}
	return cc, b, nil
}

// transformation of a composite glyph component, as 2x2 matrix and offset
type componentTransform struct {
	xx, xy, yx, yy float64
	dx, dy         float64
}

func (ct componentTransform) apply(p Point) Point {
	return Point{
		X:       ct.xx*p.X + ct.yx*p.Y + ct.dx,
		Y:       ct.xy*p.X + ct.yy*p.Y + ct.dy,
		OnCurve: p.OnCurve,
	}
}

func (t *GlyfTable) decodeCompositeGlyph(b binarySegm, gid GlyphIndex, depth int) ([]Contour, error) {
	invalid := func(what string) error {
		return errFontFormat(fmt.Sprintf("composite glyph %d: %s", gid, what))
	}
	f2dot14 := func(at int) float64 {
		return float64(int16(b.U16(at))) / (1 << 14)
	}
	var contours []Contour
	for {
		if len(b) < 4 {
			return nil, invalid("component header")
		}
		flags, component := b.U16(0), GlyphIndex(b.U16(2))
		if flags&compArgsAreXY == 0 {
			return nil, invalid("point matching of components not supported")
		}
		ct := componentTransform{xx: 1, yy: 1}
		n := 4
		if flags&compArgsAreWords != 0 {
			if len(b) < n+4 {
				return nil, invalid("component offset")
			}
			ct.dx, ct.dy = float64(int16(b.U16(n))), float64(int16(b.U16(n+2)))
			n += 4
		} else {
			if len(b) < n+2 {
				return nil, invalid("component offset")
			}
			ct.dx, ct.dy = float64(int8(b[n])), float64(int8(b[n+1]))
			n += 2
		}
		switch {
		case flags&compHaveScale != 0:
			if len(b) < n+2 {
				return nil, invalid("component scale")
			}
			ct.xx = f2dot14(n)
			ct.yy = ct.xx
			n += 2
		case flags&compHaveXYScale != 0:
			if len(b) < n+4 {
				return nil, invalid("component scale")
			}
			ct.xx, ct.yy = f2dot14(n), f2dot14(n+2)
			n += 4
		case flags&compHaveTwoByTwo != 0:
			if len(b) < n+8 {
				return nil, invalid("component matrix")
			}
			ct.xx, ct.xy, ct.yx, ct.yy = f2dot14(n), f2dot14(n+2), f2dot14(n+4), f2dot14(n+6)
			n += 8
		}
		sub, err := t.contours(component, depth+1)
		if err != nil {
			return nil, err
		}
		for _, c := range sub {
			tc := make(Contour, len(c))
			for i, p := range c {
				tc[i] = ct.apply(p)
			}
			contours = append(contours, tc)
		}
		b = b[n:]
		if flags&compMoreComponents == 0 {
			break
		}
	}
	return contours, nil
}
