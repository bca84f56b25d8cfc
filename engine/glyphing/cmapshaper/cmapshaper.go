package cmapshaper

import (
	"io"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/otsvg/core/font/opentype/otquery"
	"github.com/npillmayer/otsvg/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

type cmshape struct {
	mx    sync.Mutex
	fonts map[*font.ScalableFont]*ot.Font
}

var setupGraphemes sync.Once

// Shaper creates a shaper which maps code-points through the cmap table of
// the font given in the shaping parameters.
func Shaper() glyphing.Shaper {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &cmshape{fonts: make(map[*font.ScalableFont]*ot.Font)}
}

func (cm *cmshape) otFont(sf *font.ScalableFont) (*ot.Font, error) {
	cm.mx.Lock()
	defer cm.mx.Unlock()
	if otf, ok := cm.fonts[sf]; ok {
		return otf, nil
	}
	otf, err := ot.Parse(sf.Binary)
	if err != nil {
		return nil, err
	}
	otf.F = sf
	cm.fonts[sf] = otf
	return otf, nil
}

// Shape creates a glyph sequence from a text. Every code-point results in exactly
// one glyph; code-points missing from the font map to glyph 0 ('.notdef').
// Context is ignored, as no contextual lookups are performed.
func (cm *cmshape) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, ctx [][]rune, p glyphing.Params) (glyphing.GlyphSequence, error) {
	if text == nil || p.Font == nil {
		return glyphing.GlyphSequence{}, nil
	}
	glyphing.TraceIgnoredVariations(p.Variations)
	otf, err := cm.otFont(p.Font.ScalableFontParent())
	if err != nil {
		return glyphing.GlyphSequence{}, err
	}
	seq := glyphing.GlyphSequence{Glyphs: buf[:0]}
	if seq.Glyphs == nil {
		seq.Glyphs = make([]glyphing.ShapedGlyph, 0, 64)
	}
	graphemeSplitter := segment.NewSegmenter(grapheme.NewBreaker(1))
	graphemeSplitter.Init(text)
	cluster := 0 // rune position of current grapheme
	for graphemeSplitter.Next() {
		grphm := graphemeSplitter.Bytes()
		n := 0
		for len(grphm) > 0 {
			codepoint, size := utf8.DecodeRune(grphm)
			grphm = grphm[size:]
			gid := otquery.GlyphIndex(otf, codepoint)
			if gid == 0 {
				tracer().Infof("no glyph for code-point %#U in font %s", codepoint, p.Font.ScalableFontParent().Fontname)
			}
			g := glyphing.ShapedGlyph{
				ClusterID:  cluster,
				GID:        gid,
				CodePoint:  codepoint,
				XAdvance:   otquery.GlyphAdvance(otf, gid),
				RawMetrics: otquery.GlyphMetrics(otf, gid),
			}
			seq.Glyphs = append(seq.Glyphs, g)
			seq.W += g.XAdvance
			n++
		}
		cluster += n
	}
	if p.Direction == glyphing.RightToLeft {
		reverse(seq.Glyphs)
	}
	if m, err := otquery.FontMetrics(otf); err == nil {
		seq.H, seq.D = m.Ascent, -m.Descent
	}
	return seq, nil
}

// reverse puts glyphs of right-to-left text into visual order.
func reverse(gg []glyphing.ShapedGlyph) {
	for i, j := 0, len(gg)-1; i < j; i, j = i+1, j-1 {
		gg[i], gg[j] = gg[j], gg[i]
	}
}
