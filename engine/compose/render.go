package compose

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/otsvg/core/font/opentype/ot"
	"github.com/npillmayer/otsvg/core/font/opentype/otquery"
	"github.com/npillmayer/otsvg/engine/glyphing"
	"github.com/npillmayer/otsvg/engine/outline"
	"github.com/npillmayer/schuko"
)

// ErrEmptyInput is recorded as a warning in documents without any glyphs.
var ErrEmptyInput = errors.New("input text produced no glyphs")

// Options control rendering.
type Options struct {
	TestCase         string              // prefix for symbol identifiers
	TargetUnitsPerEm float64             // size of the output em square
	Tolerance        float64             // closing segments up to this length are dropped
	Size             float64             // point size handed to the shaper
	Direction        glyphing.Direction  // text direction
	Variations       glyphing.Variations // requested variation axis values
}

// DefaultOptions returns the options used if nothing else is configured.
func DefaultOptions() Options {
	return Options{
		TestCase:         "test",
		TargetUnitsPerEm: DefaultUnitsPerEm,
		Tolerance:        outline.DefaultTolerance,
		Size:             12,
		Direction:        glyphing.LeftToRight,
	}
}

// OptionsFromConfig reads rendering options from a configuration. Keys are
//
//	render.testcase     string
//	render.upem         number
//	render.tolerance    number
//	render.size         number
//	render.variations   e.g. "wght=700,wdth=80"
//
// Keys not set keep their default values.
func OptionsFromConfig(conf schuko.Configuration) (Options, error) {
	opts := DefaultOptions()
	if conf == nil {
		return opts, nil
	}
	if tc := conf.GetString("render.testcase"); tc != "" {
		opts.TestCase = tc
	}
	for key, target := range map[string]*float64{
		"render.upem":      &opts.TargetUnitsPerEm,
		"render.tolerance": &opts.Tolerance,
		"render.size":      &opts.Size,
	} {
		s := conf.GetString(key)
		if s == "" {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return opts, core.WrapError(err, core.EINVALID, "configuration key %s: %v", key, err)
		}
		*target = x
	}
	if v := conf.GetString("render.variations"); v != "" {
		vars, err := glyphing.ParseVariations(v)
		if err != nil {
			return opts, err
		}
		opts.Variations = vars
	}
	return opts, nil
}

// Render shapes text with font f and composes the resulting glyphs into a
// document. Glyph positions follow the shaper's advances, starting at the
// origin. The font must carry TrueType outlines and vertical metrics.
func Render(f *font.ScalableFont, text string, shaper glyphing.Shaper, opts Options) (*Document, error) {
	if f == nil || shaper == nil {
		return nil, core.Error(core.EINVALID, "render needs a font and a shaper")
	}
	otf, err := ot.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	otf.F = f
	fm, err := otquery.FontMetrics(otf)
	if err != nil {
		return nil, core.WrapError(&MissingMetricsError{Reason: core.UserMessage(err)},
			core.EMETRICS, "cannot render with font %s: %v", f.Fontname, core.UserMessage(err))
	}
	if !otquery.HasOutlines(otf) {
		return nil, core.Error(core.EINVALID, "font %s has no TrueType outlines", f.Fontname)
	}
	metrics := Metrics{
		UnitsPerEm: float64(fm.UnitsPerEm),
		Ascender:   float64(fm.Ascent),
		Descender:  float64(fm.Descent),
	}
	tc, err := f.PrepareCase(opts.Size)
	if err != nil {
		return nil, err
	}
	doc := NewDocument(opts.TestCase, Scale(metrics.UnitsPerEm, opts.TargetUnitsPerEm))
	params := glyphing.Params{
		Font:       tc,
		Direction:  opts.Direction,
		Variations: opts.Variations,
	}
	seq, err := shaper.Shape(strings.NewReader(text), nil, nil, params)
	if err != nil {
		return nil, err
	}
	tracer().Infof("shaped %d glyphs for %q", len(seq.Glyphs), text)
	comp := NewCompositor(FontSource(otf), doc, opts.Tolerance)
	pen := 0.0
	for _, g := range seq.Glyphs {
		gid := int(g.GID)
		inst := GlyphInstance{
			Index:   gid,
			Name:    f.GlyphName(gid),
			X:       pen + float64(g.XOffset),
			Y:       float64(g.YOffset),
			Advance: float64(g.XAdvance),
		}
		if err := comp.Place(inst); err != nil {
			return nil, err
		}
		pen += float64(g.XAdvance)
	}
	if doc.Empty() {
		tracer().Infof("no glyphs to render")
		doc.Warnings = append(doc.Warnings, ErrEmptyInput)
	}
	if doc.Viewport, err = ComputeViewport(doc.Placements(), metrics, doc.Scale); err != nil {
		return nil, core.WrapError(err, core.EMETRICS, "%v", err)
	}
	return doc, nil
}
