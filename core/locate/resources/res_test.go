package resources

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func TestResolveFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.resources")
	defer teardown()
	//
	for _, name := range []string{"", "fallback", "Fallback"} {
		f, err := ResolveFont(nil, name).Font()
		require.NoError(t, err)
		assert.Same(t, font.FallbackFont(), f, "expected %q to select the fallback font", name)
	}
}

func TestResolveFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.resources")
	defer teardown()
	//
	fpath := filepath.Join(t.TempDir(), "GoMono.ttf")
	require.NoError(t, os.WriteFile(fpath, gomono.TTF, 0644))
	f, err := ResolveFont(nil, fpath).Font()
	require.NoError(t, err)
	assert.Equal(t, fpath, f.Filepath)
	assert.Contains(t, f.Fontname, "Go Mono")
	g, ok := registry.Font(fpath)
	assert.True(t, ok, "expected resolved font to be registered")
	assert.Same(t, f, g)
}

func TestResolveMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.resources")
	defer teardown()
	//
	conf := testconfig.Conf{"fontconfig": ""}
	_, err := ResolveFont(conf, "No Such Font Family 4711").Font()
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestResolveWithContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.resources")
	defer teardown()
	//
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	f, err := ResolveFont(nil, FallbackName).FontContext(ctx)
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestFontConfigList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.resources")
	defer teardown()
	//
	list := `/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
/usr/share/fonts/dejavu/DejaVuSans.ttf: DejaVu Sans:style=Book
/usr/share/fonts/noto/NotoSansCJK.ttc: Noto Sans CJK JP,Noto Sans CJK JP Regular:style=Regular

/usr/share/fonts/misc/Odd.otf: .Odd Font
`
	entries, err := parseFontConfigList(strings.NewReader(list))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, fcEntry{Family: "DejaVu Sans", Path: "/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf", Style: "bold"}, entries[0])
	assert.Equal(t, "Odd Font", entries[2].Family)
	//
	p, ok := matchFontConfigEntry(entries, "dejavu sans")
	assert.True(t, ok)
	assert.Equal(t, "/usr/share/fonts/dejavu/DejaVuSans.ttf", p, "expected regular style to be preferred")
	p, ok = matchFontConfigEntry(entries, "Odd Font")
	assert.True(t, ok)
	assert.Equal(t, "/usr/share/fonts/misc/Odd.otf", p)
	_, ok = matchFontConfigEntry(entries, "Noto Sans CJK JP")
	assert.False(t, ok)
}
