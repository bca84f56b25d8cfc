/*
Package glyphing converts text into sequences of positioned glyphs.

Shapers live in sub-packages: package cmapshaper maps code-points to glyphs
one grapheme at a time, using only a font's 'cmap' and 'hmtx' tables, while
package harfbuzz applies the OpenType layout features of a font.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/otsvg/core/font/opentype"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

// tracer traces with key 'otsvg.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("otsvg.glyphs")
}

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
const (
	LeftToRight Direction = iota
	RightToLeft           = 1
	TopToBottom           = 2
	BottomToTop           = 3
)

// A ShapedGlyph lives in design space. All positional values are in font units.
type ShapedGlyph struct {
	ClusterID  int                       // position of code-point(s) for this glyph in original string
	XAdvance   sfnt.Units                // advance after glyph has been set
	YAdvance   sfnt.Units                //
	XOffset    sfnt.Units                // position of anchor dot for glyph, relative to pen
	YOffset    sfnt.Units                //
	RawMetrics opentype.GlyphMetricsInfo // metrics in font units
	GID        ot.GlyphIndex             // glyph index within font
	CodePoint  rune                      // code-point of first rune to produce this glyph
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, advance=%d)", g.GID, g.XAdvance)
}

// A Shaper creates a sequence of glyphs from a sequence of
// Unicode code-points. Glyphs are taken from a font, given in a specific point-size.
//
// Clients may provide additional information in Params, as well as
// textual context ([2][]rune).
type Shaper interface {
	Shape(io.RuneReader, []ShapedGlyph, [][]rune, Params) (GlyphSequence, error)
}

// Params collects shaping parameters.
type Params struct {
	Font       *font.TypeCase  // use a font at a given point-size
	Direction  Direction       // writing direction
	Script     language.Script // 4-letter ISO 15924 script identifier
	Language   language.Tag    // BCP 47 language tag
	Features   []FeatureRange  // OpenType features to apply
	Variations Variations      // variation axis settings, e.g. wght=700
}

// FeatureRange tells a shaper to turn a certain OpenType feature on or off for a
// run of code-points.
type FeatureRange struct {
	Feature    ot.Tag // 4-letter feature tag
	Arg        int    // optional argument for this feature
	On         bool   // turn it on or off?
	Start, End int    // position of code-points to apply feature for
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph // resulting sequence of glyphs
	W, H, D sfnt.Units    // width, height, depth of bounding box
}

// BoundingBox returns width, height and depth of a glyph sequence.
func (seq GlyphSequence) BoundingBox() (w sfnt.Units, h sfnt.Units, d sfnt.Units) {
	return seq.W, seq.H, seq.D
}

// --- Variations ------------------------------------------------------------

// Variations maps variation axis tags to axis values.
type Variations map[ot.Tag]float64

// ParseVariations parses variation settings of the form "wght=700,wdth=80".
func ParseVariations(s string) (Variations, error) {
	v := make(Variations)
	for _, setting := range strings.Split(s, ",") {
		if setting = strings.TrimSpace(setting); setting == "" {
			continue
		}
		var value float64
		tag, val, ok := strings.Cut(setting, "=")
		if !ok || len(strings.TrimSpace(tag)) != 4 {
			return nil, fmt.Errorf("invalid variation setting %q", setting)
		}
		if _, err := fmt.Sscanf(strings.TrimSpace(val), "%g", &value); err != nil {
			return nil, fmt.Errorf("invalid value in variation setting %q", setting)
		}
		v[ot.T(strings.TrimSpace(tag))] = value
	}
	return v, nil
}

func (v Variations) String() string {
	settings := make([]string, 0, len(v))
	for tag, value := range v {
		settings = append(settings, fmt.Sprintf("%s=%g", tag, value))
	}
	sort.Strings(settings)
	return strings.Join(settings, ",")
}

// TraceIgnoredVariations is a helper for shapers which operate on static outlines
// only. It notes in the trace that variation settings have not been applied.
func TraceIgnoredVariations(v Variations) {
	if len(v) > 0 {
		tracer().Infof("variations %s are not applied, outlines are static", v)
	}
}
