package compose

import (
	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/otsvg/engine/outline"
)

type fontSource struct {
	otf *ot.Font
}

// FontSource creates an outline source for the TrueType outlines of a font.
func FontSource(otf *ot.Font) OutlineSource {
	return fontSource{otf: otf}
}

// GlyphContours returns the contours of glyph gid in font units.
func (fs fontSource) GlyphContours(gid int) ([]outline.Contour, error) {
	if fs.otf == nil || fs.otf.Glyf == nil {
		return nil, core.Error(core.EINVALID, "font has no TrueType outlines")
	}
	if gid < 0 || gid > 0xFFFF {
		return nil, core.Error(core.EINVALID, "glyph index %d out of range", gid)
	}
	cc, err := fs.otf.Glyf.Contours(ot.GlyphIndex(gid))
	if err != nil {
		return nil, err
	}
	contours := make([]outline.Contour, len(cc))
	for i, c := range cc {
		contour := make(outline.Contour, len(c))
		for j, p := range c {
			contour[j] = outline.Point{X: p.X, Y: p.Y, OnCurve: p.OnCurve}
		}
		contours[i] = contour
	}
	return contours, nil
}
