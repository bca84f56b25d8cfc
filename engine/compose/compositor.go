package compose

import (
	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/engine/outline"
)

// OutlineSource provides the contours of glyphs, identified by glyph index.
type OutlineSource interface {
	GlyphContours(gid int) ([]outline.Contour, error)
}

// GlyphInstance is a glyph to be placed at a pen position. Name is the glyph's
// name, if the font provides one. Position and advance are in font units.
type GlyphInstance struct {
	Index   int
	Name    string
	X, Y    float64
	Advance float64
}

// Compositor places glyph instances into a document, defining every glyph
// outline once. A compositor lives for a single render.
type Compositor struct {
	doc       *Document
	source    OutlineSource
	tolerance float64
}

// NewCompositor creates a compositor which places glyphs into doc, taking
// outlines from source. Closing line segments shorter than tolerance, measured
// after scaling, are dropped from outlines.
func NewCompositor(source OutlineSource, doc *Document, tolerance float64) *Compositor {
	return &Compositor{
		doc:       doc,
		source:    source,
		tolerance: tolerance,
	}
}

// Document returns the document the compositor places glyphs into.
func (c *Compositor) Document() *Document {
	return c.doc
}

// Place adds a placement for g to the document. If g's identifier has not been
// defined yet, the glyph's outline is decoded, normalized and defined first.
// Glyph identity is decided by identifier only.
func (c *Compositor) Place(g GlyphInstance) error {
	id := ResolveIdentifier(g.Name, g.Index)
	if !c.doc.Defined(id) {
		contours, err := c.source.GlyphContours(g.Index)
		if err != nil {
			return core.WrapError(err, core.Code(err), "cannot read outline of glyph %s: %s", id, core.UserMessage(err))
		}
		path, err := outline.Decode(contours)
		if err != nil {
			return core.WrapError(err, core.EMALFORMED, "glyph %s: %v", id, err)
		}
		d := outline.Normalize(path, c.doc.Scale, c.tolerance)
		tracer().Debugf("define glyph %s = %q", id, d)
		c.doc.Define(id, d)
	}
	c.doc.Place(Placement{GlyphID: id, X: g.X, Y: g.Y, Advance: g.Advance})
	return nil
}
