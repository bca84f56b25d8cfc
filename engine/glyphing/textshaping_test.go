package glyphing

import (
	"testing"

	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariations(t *testing.T) {
	v, err := ParseVariations("wght=700, wdth=87.5")
	require.NoError(t, err)
	assert.Equal(t, 700.0, v[ot.T("wght")])
	assert.Equal(t, 87.5, v[ot.T("wdth")])
	assert.Equal(t, "wdth=87.5,wght=700", v.String())
	//
	v, err = ParseVariations("")
	require.NoError(t, err)
	assert.Empty(t, v)
	//
	for _, invalid := range []string{"wght", "wg=1", "wght=bold"} {
		_, err = ParseVariations(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestShapedGlyphString(t *testing.T) {
	g := ShapedGlyph{GID: 7, XAdvance: 500}
	assert.Equal(t, "(GID=7, advance=500)", g.String())
}
