package compose

import (
	"errors"
	"testing"

	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/otsvg/core/font/opentype/ot/ottest"
	"github.com/npillmayer/otsvg/engine/glyphing/cmapshaper"
	"github.com/npillmayer/otsvg/engine/glyphing/harfbuzz"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleFont() *font.ScalableFont {
	return &font.ScalableFont{Fontname: "Triangle", Binary: ottest.TriangleFont()}
}

func TestRenderTriangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.compose")
	defer teardown()
	//
	doc, err := Render(triangleFont(), "ABA", cmapshaper.Shaper(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1.0, doc.Scale)
	assert.Equal(t, []string{"gid1", "gid2"}, doc.DefinitionIDs())
	d, _ := doc.Definition("gid1")
	assert.Equal(t, "M 0 0 Q 50 100 100 0 Z", d)
	d, _ = doc.Definition("gid2")
	assert.Equal(t, "M 100 0 Q 150 100 200 0 Z", d)
	assert.Equal(t, []Placement{
		{GlyphID: "gid1", X: 0, Advance: 500},
		{GlyphID: "gid2", X: 500, Advance: 500},
		{GlyphID: "gid1", X: 1000, Advance: 500},
	}, doc.Placements())
	assert.Equal(t, "0 -200 1500 1000", doc.Viewport.String())
	assert.Empty(t, doc.Warnings)
}

func TestRenderScaledComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.compose")
	defer teardown()
	//
	f := &font.ScalableFont{Fontname: "Scaled", Binary: ottest.BuildFont(ottest.ScaledCompositeTables(100, 0, 0.75))}
	opts := DefaultOptions()
	opts.TargetUnitsPerEm = 2000
	doc, err := Render(f, "B", cmapshaper.Shaper(), opts)
	require.NoError(t, err)
	d, _ := doc.Definition("gid2")
	assert.Equal(t, "M 200 0 Q 275 150 350 0 Z", d, "expected fractional component points to survive scaling")
}

func TestRenderEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.compose")
	defer teardown()
	//
	doc, err := Render(triangleFont(), "", cmapshaper.Shaper(), DefaultOptions())
	require.NoError(t, err)
	assert.True(t, doc.Empty())
	assert.Empty(t, doc.DefinitionIDs())
	require.Len(t, doc.Warnings, 1)
	assert.True(t, errors.Is(doc.Warnings[0], ErrEmptyInput))
	assert.Equal(t, "0 -200 0 1000", doc.Viewport.String())
}

func TestRenderMissingMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.compose")
	defer teardown()
	//
	tables := ottest.TriangleTables()
	delete(tables, "hhea")
	f := &font.ScalableFont{Fontname: "NoMetrics", Binary: ottest.BuildFont(tables)}
	_, err := Render(f, "A", cmapshaper.Shaper(), DefaultOptions())
	require.Error(t, err)
	var mme *MissingMetricsError
	assert.True(t, errors.As(err, &mme), "expected missing metrics error, got %v", err)
	assert.Equal(t, core.EMETRICS, core.Code(err))
}

func TestRenderWithoutOutlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.compose")
	defer teardown()
	//
	tables := ottest.TriangleTables()
	delete(tables, "glyf")
	f := &font.ScalableFont{Fontname: "NoGlyf", Binary: ottest.BuildFont(tables)}
	_, err := Render(f, "A", cmapshaper.Shaper(), DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestRenderGoSans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.compose")
	defer teardown()
	//
	opts := DefaultOptions()
	opts.TestCase = "hello"
	doc, err := Render(font.FallbackFont(), "Hello", harfbuzz.New(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1000.0/2048.0, doc.Scale)
	assert.Len(t, doc.DefinitionIDs(), 4, "expected H, e, l, o to be defined")
	pp := doc.Placements()
	require.Len(t, pp, 5)
	assert.Equal(t, pp[2].GlyphID, pp[3].GlyphID, "expected both l to share a definition")
	for i := 1; i < len(pp); i++ {
		assert.Greater(t, pp[i].X, pp[i-1].X, "expected pen to advance")
	}
	assert.Greater(t, doc.Viewport.Width, 0)
	assert.Less(t, doc.Viewport.MinY, 0)
	doc.EachDefinition(func(id, d string) {
		assert.NotEmpty(t, id)
		assert.Regexp(t, `^M -?\d+ -?\d+ .* Z$`, d)
		assert.NotContains(t, d, ".")
	})
}

func TestOptionsFromConfig(t *testing.T) {
	conf := testconfig.Conf{
		"render.testcase":   "case7",
		"render.upem":       "2048",
		"render.tolerance":  "2.5",
		"render.variations": "wght=700",
	}
	opts, err := OptionsFromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, "case7", opts.TestCase)
	assert.Equal(t, 2048.0, opts.TargetUnitsPerEm)
	assert.Equal(t, 2.5, opts.Tolerance)
	assert.Equal(t, 12.0, opts.Size)
	assert.Equal(t, 700.0, opts.Variations[ot.T("wght")])
	//
	_, err = OptionsFromConfig(testconfig.Conf{"render.upem": "big"})
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	//
	opts, err = OptionsFromConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}
