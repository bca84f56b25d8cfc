package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFont(t *testing.T) {
	for k, v := range map[string]string{
		"Go Sans":                      "go_sans",
		"fonts/Clarendon-bold.ttf":     "clarendon-bold",
		"  GentiumPlus-R.ttf ":         "gentiumplus-r",
		`C:\Windows\Fonts\Calibri.ttf`: "calibri",
	} {
		assert.Equal(t, v, NormalizeFontname(k), "normalized name of %q", k)
	}
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	f := FallbackFont()
	require.NotNil(t, f)
	assert.Equal(t, "Go Sans", f.Fontname)
	assert.NotNil(t, f.SFNT)
	assert.Same(t, f, FallbackFont(), "fallback font is loaded once")
}

func TestGlyphNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	f := FallbackFont()
	assert.Equal(t, ".notdef", f.GlyphName(0))
	assert.Equal(t, "", f.GlyphName(65000), "out of range glyph has no name")
}

func TestOpenOpenTypeCaseCreation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(12.0)
	require.NoError(t, err)
	assert.Equal(t, 12.0, tc.PtSize())
	assert.Same(t, FallbackFont(), tc.ScalableFontParent())
	_, err = FallbackFont().PrepareCase(0)
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	reg.StoreFont("Go Sans", FallbackFont())
	f, ok := reg.Font("go sans")
	assert.True(t, ok)
	assert.Same(t, FallbackFont(), f)
	_, ok = reg.Font("Helvetica")
	assert.False(t, ok)
}

func TestLoadMissingFont(t *testing.T) {
	_, err := LoadOpenTypeFont("/does/not/exist.ttf")
	assert.Error(t, err)
}
