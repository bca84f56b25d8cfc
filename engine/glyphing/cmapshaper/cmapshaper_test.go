package cmapshaper

import (
	"strings"
	"testing"

	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/otsvg/core/font/opentype/ot/ottest"
	"github.com/npillmayer/otsvg/engine/glyphing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
)

func triangleCase(t *testing.T) *font.TypeCase {
	sf := &font.ScalableFont{Fontname: "Triangle", Binary: ottest.TriangleFont()}
	tc, err := sf.PrepareCase(10)
	require.NoError(t, err)
	return tc
}

func TestShapeSyntheticFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.glyphs")
	defer teardown()
	//
	seq, err := Shaper().Shape(strings.NewReader("ABA"), nil, nil, glyphing.Params{Font: triangleCase(t)})
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 3)
	gids := []ot.GlyphIndex{seq.Glyphs[0].GID, seq.Glyphs[1].GID, seq.Glyphs[2].GID}
	assert.Equal(t, []ot.GlyphIndex{1, 2, 1}, gids)
	for i, g := range seq.Glyphs {
		assert.Equal(t, i, g.ClusterID)
		assert.Equal(t, sfnt.Units(ottest.TriangleAdvance), g.XAdvance)
	}
	assert.Equal(t, sfnt.Units(3*ottest.TriangleAdvance), seq.W)
	assert.Equal(t, sfnt.Units(ottest.TriangleAscender), seq.H)
	assert.Equal(t, sfnt.Units(-ottest.TriangleDescender), seq.D)
}

func TestShapeMissingGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.glyphs")
	defer teardown()
	//
	seq, err := Shaper().Shape(strings.NewReader("AxB"), nil, nil, glyphing.Params{Font: triangleCase(t)})
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 3)
	assert.Equal(t, ot.GlyphIndex(0), seq.Glyphs[1].GID, "expected missing code-point to map to .notdef")
	assert.Equal(t, 'x', seq.Glyphs[1].CodePoint)
}

func TestShapeGraphemeClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.glyphs")
	defer teardown()
	//
	tc, err := font.FallbackFont().PrepareCase(12)
	require.NoError(t, err)
	// 'e' + combining acute accent form a single grapheme
	seq, err := Shaper().Shape(strings.NewReader("e\u0301x"), nil, nil, glyphing.Params{Font: tc})
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 3)
	assert.Equal(t, 0, seq.Glyphs[0].ClusterID)
	assert.Equal(t, 0, seq.Glyphs[1].ClusterID, "combining mark belongs to first cluster")
	assert.Equal(t, 2, seq.Glyphs[2].ClusterID)
}

func TestShapeRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.glyphs")
	defer teardown()
	//
	p := glyphing.Params{Font: triangleCase(t), Direction: glyphing.RightToLeft}
	seq, err := Shaper().Shape(strings.NewReader("AB"), nil, nil, p)
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 2)
	assert.Equal(t, ot.GlyphIndex(2), seq.Glyphs[0].GID)
}

func TestShapeNoFont(t *testing.T) {
	seq, err := Shaper().Shape(strings.NewReader("A"), nil, nil, glyphing.Params{})
	assert.NoError(t, err)
	assert.Empty(t, seq.Glyphs)
	//
	broken := &font.ScalableFont{Fontname: "broken", Binary: []byte("no font")}
	tc, _ := broken.PrepareCase(10)
	_, err = Shaper().Shape(strings.NewReader("A"), nil, nil, glyphing.Params{Font: tc})
	assert.Error(t, err)
}
