package otquery

import (
	"testing"

	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/otsvg/core/font/opentype/ot/ottest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFontTypeInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	otf := parseFont(t, ottest.TriangleFont())
	assert.Equal(t, "TrueType", FontType(otf), "expected font type of test font to be TrueType")
	assert.Equal(t, "<empty>", FontType(&ot.Font{}))
	assert.True(t, HasOutlines(otf))
}

func TestLayoutInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	otf := parseFont(t, ottest.TriangleFont())
	assert.Empty(t, LayoutTables(otf), "synthetic font has no layout tables")
	gosans := loadFallbackFont(t)
	t.Logf("Go Sans layout tables: %v", LayoutTables(gosans))
}

func TestReverseLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	otf := parseFont(t, ottest.TriangleFont())
	assert.Equal(t, 'B', CodePointForGlyph(otf, 2))
	assert.Equal(t, rune(0), CodePointForGlyph(otf, 0), "expected .notdef to have no code-point")
}
