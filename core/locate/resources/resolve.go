package resources

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/schuko"
)

// FallbackName is the font name which selects the built-in fallback font.
const FallbackName = "fallback"

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s", name)
}

var registry = font.NewRegistry()

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise is returned by ResolveFont. Calling Font waits for the font.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
	FontContext(context.Context) (*font.ScalableFont, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.ScalableFont, error)
}

func (loader fontLoader) Font() (*font.ScalableFont, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) FontContext(ctx context.Context) (*font.ScalableFont, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a font by name. The name is tried as
//
//	- "fallback" (or empty), selecting Go Sans
//	- the path of a font file
//	- a font name already resolved before
//	- the name of a system font, found by searching the system font directories
//	- the family name of a font known to fontconfig, if configured
//
// Fontconfig is configured by setting key 'fontconfig' to the absolute path of
// the 'fc-list' binary. conf may be nil.
// If no font can be found, the promise yields an error with code core.EMISSING.
func ResolveFont(conf schuko.Configuration, name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		f, err := resolve(conf, strings.TrimSpace(name))
		ch <- fontPlusErr{font: f, err: err}
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.ScalableFont, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func resolve(conf schuko.Configuration, name string) (*font.ScalableFont, error) {
	if name == "" || strings.EqualFold(name, FallbackName) {
		tracer().Debugf("using fallback font")
		return font.FallbackFont(), nil
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		tracer().Debugf("%s is a font file", name)
		return load(name, name)
	}
	if f, ok := registry.Font(name); ok {
		tracer().Debugf("font %s already loaded", name)
		return f, nil
	}
	if fpath, err := findfont.Find(name); err == nil && fpath != "" {
		tracer().Debugf("%s is a system font", name)
		return load(name, fpath)
	}
	if conf != nil {
		if fpath, ok := findFontConfigFont(conf, name); ok {
			tracer().Debugf("%s found by fontconfig", name)
			return load(name, fpath)
		}
	}
	return nil, NotFound(name)
}

func load(name, fpath string) (*font.ScalableFont, error) {
	f, err := font.LoadOpenTypeFont(fpath)
	if err != nil {
		return nil, err
	}
	registry.StoreFont(name, f)
	return f, nil
}
