/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size.
The name is reminiscend on the wooden boxes of typesetters in the aera of
metal type. An example is "Helvetica regular 11pt".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'otsvg.fonts'
func tracer() tracing.Trace {
	return tracing.Select("otsvg.fonts")
}

// ScalableFont is a font loaded from a font file, independent of any size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container, used for names
	nameBuf  sfnt.Buffer
	mx       sync.Mutex // sfnt.Buffer is not safe for concurrent use
}

// TypeCase is a scalable font at a given size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	size               float64
}

// LoadOpenTypeFont loads a font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont creates a scalable font from the binary data of a font file.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font: %v", err)
	}
	f.Fontname, _ = f.SFNT.Name(&f.nameBuf, sfnt.NameIDFull)
	tracer().Debugf("parsed font %q", f.Fontname)
	return
}

// GlyphName returns the PostScript name of glyph gid, as stored in table 'post'.
// Fonts with a version 3 'post' table do not carry glyph names; for them
// GlyphName returns the empty string.
func (sf *ScalableFont) GlyphName(gid int) string {
	if sf.SFNT == nil {
		return ""
	}
	sf.mx.Lock()
	defer sf.mx.Unlock()
	name, err := sf.SFNT.GlyphName(&sf.nameBuf, sfnt.GlyphIndex(gid))
	if err != nil {
		tracer().Debugf("no name for glyph %d: %v", gid, err)
		return ""
	}
	return name
}

// PrepareCase creates a typecase for a font at a given size.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	if fontsize <= 0 {
		return nil, core.Error(core.EINVALID, "font size must be positive, is %g", fontsize)
	}
	return &TypeCase{
		scalableFontParent: sf,
		size:               fontsize,
	}, nil
}

// ScalableFontParent returns the scalable font a typecase has been created from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the size of a typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Fontname = "Go Sans"
	gofont.Filepath = "internal"
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches loaded fonts by normalized name.
type Registry struct {
	sync.Mutex
	fonts map[string]*ScalableFont
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*ScalableFont),
	}
}

// StoreFont puts a font into the registry, under its normalized name.
func (fr *Registry) StoreFont(name string, f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(name)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// Font looks up a font by name.
func (fr *Registry) Font(name string) (*ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[NormalizeFontname(name)]
	return f, ok
}

// NormalizeFontname creates a lookup key from a font name or font file name,
// removing directories and file extensions.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	if slash := strings.LastIndexAny(fname, `/\`); slash >= 0 {
		fname = fname[slash+1:]
	}
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
