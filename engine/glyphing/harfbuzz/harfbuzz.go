/*
Package harfbuzz uses HarfBuzz to convert text to sequences of glyphs.

The shaper applies the OpenType layout features of a font (GSUB and GPOS).
Glyph positions are reported in font units.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"
	"unicode"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/otsvg/engine/glyphing"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// tracer traces with key 'otsvg.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("otsvg.glyphs")
}

// --- Type conversion -------------------------------------------------------

// Lang4HB returns a language tag as a HarfBuzz language.
func Lang4HB(l language.Tag) hblang.Language {
	return hblang.NewLanguage(l.String())
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

// Direction4HB translates a direction to a HarfBuzz direction.
func Direction4HB(d glyphing.Direction) hb.Direction {
	switch d {
	case glyphing.LeftToRight:
		return hb.LeftToRight
	case glyphing.RightToLeft:
		return hb.RightToLeft
	case glyphing.TopToBottom:
		return hb.TopToBottom
	case glyphing.BottomToTop:
		return hb.BottomToTop
	}
	return hb.LeftToRight
}

// Feature4HB makes a typecast from an OpenType feature tag to a HarfBuzz truetype tag.
func Feature4HB(t ot.Tag) hbtt.Tag {
	return hbtt.Tag(t)
}

// FeatureRange4HB converts a feature range struct to a HarbBuzz Feature switch.
func FeatureRange4HB(frng glyphing.FeatureRange) hb.Feature {
	f := hb.Feature{
		Tag:   Feature4HB(frng.Feature),
		Start: frng.Start,
		End:   frng.End,
	}
	if frng.On {
		if frng.Arg > 0 {
			f.Value = uint32(frng.Arg)
		} else {
			f.Value = 1
		}
	}
	return f
}

// --- Shape -----------------------------------------------------------------

// Shaper is a HarfBuzz shaper. It caches the HarfBuzz representation of every
// font it has been called for. A Shaper is safe for concurrent use.
type Shaper struct {
	mx    sync.Mutex
	fonts map[*font.ScalableFont]*hb.Font
}

var _ glyphing.Shaper = (*Shaper)(nil)

// New creates a HarfBuzz shaper.
func New() *Shaper {
	return &Shaper{fonts: make(map[*font.ScalableFont]*hb.Font)}
}

func (sh *Shaper) hbFont(sf *font.ScalableFont) (*hb.Font, error) {
	sh.mx.Lock()
	defer sh.mx.Unlock()
	if f, ok := sh.fonts[sf]; ok {
		return f, nil
	}
	hbFace, err := hbtt.Parse(bytes.NewReader(sf.Binary), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "HarfBuzz cannot parse font %s", sf.Fontname)
	}
	f := hb.NewFont(hbFace)
	sh.fonts[sf] = f
	return f, nil
}

// Shape calls the HarfBuzz shaper.
//
// Shape shapes a sequence of code-points (runes), turning its Unicode characters to
// positioned glyphs. It will select a shape plan based on params, including the
// selected font, and the properties of the input text.
//
// If `params.Features` is not empty, it will be used to control the
// features applied during shaping. If two features have the same tag but
// overlapping ranges the value of the feature with the higher index takes
// precedence.
//
// params.Font must be set, otherwise no output is created.
//
// Clients may provide `buf` to avoid allocating memory by Shape. Shape will wrap it
// into the GlyphSequence returned.
func (sh *Shaper) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, context [][]rune,
	params glyphing.Params) (glyphing.GlyphSequence, error) {
	//
	if text == nil || params.Font == nil {
		return glyphing.GlyphSequence{}, nil
	}
	glyphing.TraceIgnoredVariations(params.Variations)
	sfont := params.Font.ScalableFontParent()
	hbFont, err := sh.hbFont(sfont)
	if err != nil {
		return glyphing.GlyphSequence{}, err
	}
	hbFont.Ptem = float32(params.Font.PtSize())
	// Prepare shaping parameters
	var hbSeqProps hb.SegmentProperties
	convertParams(&hbSeqProps, params)
	features := make([]hb.Feature, 0, len(params.Features))
	for _, feat := range params.Features {
		features = append(features, FeatureRange4HB(feat))
	}
	// Prepare HarfBuzz buffer
	hbBuf := hb.NewBuffer()
	hbBuf.Props = hbSeqProps
	bytesBuf, offset, length := bufferText(text, context)
	runes := bytes.Runes(bytesBuf.Bytes())
	hbBuf.AddRunes(runes, offset, length)
	hbBuf.Shape(hbFont, features)
	// Prepare shaped output
	if len(buf) < len(hbBuf.Info) {
		buf = make([]glyphing.ShapedGlyph, len(hbBuf.Info))
	}
	seq := glyphing.GlyphSequence{
		Glyphs: buf[:len(hbBuf.Info)],
	}
	// move HarfBuzz output to glyph sequence output
	var sfntBuf sfnt.Buffer
	for i, ginfo := range hbBuf.Info {
		gpos := &hbBuf.Pos[i]
		tracer().Debugf("[%3d] %q", i, ginfo.String())
		g := &seq.Glyphs[i]
		*g = glyphing.ShapedGlyph{
			ClusterID: ginfo.Cluster,
			GID:       ot.GlyphIndex(ginfo.Glyph),
			XAdvance:  sfnt.Units(gpos.XAdvance),
			YAdvance:  sfnt.Units(gpos.YAdvance),
			XOffset:   sfnt.Units(gpos.XOffset),
			YOffset:   sfnt.Units(gpos.YOffset),
		}
		if g.ClusterID >= 0 && g.ClusterID < len(runes) {
			g.CodePoint = runes[g.ClusterID]
		}
		seq.W += g.XAdvance
		if sfont.SFNT != nil {
			rawMetrics(sfont.SFNT, &sfntBuf, g)
		}
	}
	return seq, nil
}

// rawMetrics sets the font unit metrics of a glyph, as reported by x/image/sfnt.
// Loading at a ppem of units-per-em yields 26.6 values which round to font units.
// sfnt uses a downward pointing y-axis.
func rawMetrics(sfont *sfnt.Font, sfntBuf *sfnt.Buffer, g *glyphing.ShapedGlyph) {
	ppem := fixed.I(int(sfont.UnitsPerEm()))
	bounds, adv, err := sfont.GlyphBounds(sfntBuf, sfnt.GlyphIndex(g.GID), ppem, xfont.HintingNone)
	if err != nil {
		tracer().Debugf("no bounds for glyph %d: %v", g.GID, err)
		return
	}
	m := &g.RawMetrics
	m.Advance = sfnt.Units(adv.Round())
	m.BBox.MinX = sfnt.Units(bounds.Min.X.Round())
	m.BBox.MaxX = sfnt.Units(bounds.Max.X.Round())
	m.BBox.MinY = sfnt.Units(-bounds.Max.Y.Round())
	m.BBox.MaxY = sfnt.Units(-bounds.Min.Y.Round())
	m.LSB = m.BBox.MinX
	m.RSB = m.Advance - m.BBox.MaxX
}

// convertParams is a helper function to convert glyphing parameters to
// HarfBuzz's format.
func convertParams(hbSeqProps *hb.SegmentProperties, params glyphing.Params) {
	if params.Language != language.Und {
		hbSeqProps.Language = Lang4HB(params.Language)
	}
	var none language.Script
	if params.Script != none {
		hbSeqProps.Script = Script4HB(params.Script)
	}
	hbSeqProps.Direction = Direction4HB(params.Direction)
}

// bufferText buffers the input text of a call to Shape(…) as a bytes.Buffer.
// To conform to HarfBuzz's API, context is pre-/appended to the input runes.
//
// bufferText returns the start position of the input within the returned buffer,
// together with the input's length (= rune count).
func bufferText(text io.RuneReader, context [][]rune) (buf bytes.Buffer, off int, length int) {
	var bytesBuf bytes.Buffer
	if len(context) > 0 && len(context[0]) > 0 {
		for _, r := range context[0] {
			bytesBuf.WriteRune(r)
		}
		off = len(context[0])
	}
	for {
		r, sz, err := text.ReadRune()
		if sz == 0 || err != nil {
			break
		}
		length++
		bytesBuf.WriteRune(r)
	}
	if len(context) > 1 && len(context[1]) > 0 {
		for _, r := range context[1] {
			bytesBuf.WriteRune(r)
		}
	}
	return bytesBuf, off, length
}
