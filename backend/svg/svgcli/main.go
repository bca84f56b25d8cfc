/*
Command svgcli renders a text with a TrueType font as an SVG document.

Usage:

	svgcli -font GoRegular.ttf -text "Hello" -testcase hello -o hello.svg

Flags -upem and -variations select the output em square and variation axis
settings (e.g. "wght=700,wdth=80"); -shaper selects between HarfBuzz shaping
('hb', default) and plain cmap lookup ('cmap'). With -i, svgcli reads one text
per input line and prints an SVG document for each of them.

If environment variable OTSVG_FONTCONFIG points to the fc-list binary, fonts
given by family name are searched with fontconfig as well.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otsvg/backend/svg"
	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/otsvg/core/locate/resources"
	"github.com/npillmayer/otsvg/engine/compose"
	"github.com/npillmayer/otsvg/engine/glyphing"
	"github.com/npillmayer/otsvg/engine/glyphing/cmapshaper"
	"github.com/npillmayer/otsvg/engine/glyphing/harfbuzz"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otsvg.svg'
func tracer() tracing.Trace {
	return tracing.Select("otsvg.svg")
}

var traceKeys = []string{"fonts", "glyphs", "outline", "compose", "resources", "svg"}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", resources.FallbackName, "Font to load (file path or font name)")
	text := flag.String("text", "", "Text to render")
	testcase := flag.String("testcase", "", "Test case name, prefix of symbol identifiers")
	upem := flag.String("upem", "", "Units per em of output coordinates (default 1000)")
	tolerance := flag.String("tolerance", "", "Closing segments up to this length are dropped (default 1)")
	variations := flag.String("variations", "", "Variation axis settings, e.g. wght=700,wdth=80")
	shapername := flag.String("shaper", "hb", "Shaper to use [hb|cmap]")
	outfile := flag.String("o", "", "Output file (default stdout)")
	interactive := flag.Bool("i", false, "Interactive mode: render one SVG per input line")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"fontconfig":      os.Getenv("OTSVG_FONTCONFIG"),
	}
	for _, key := range traceKeys {
		conf["trace.otsvg."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	// flags override configuration
	setIfPresent(conf, "render.testcase", *testcase)
	setIfPresent(conf, "render.upem", *upem)
	setIfPresent(conf, "render.tolerance", *tolerance)
	setIfPresent(conf, "render.variations", *variations)
	opts, err := compose.OptionsFromConfig(conf)
	if err != nil {
		fail(err, 2)
	}
	shaper, err := selectShaper(*shapername)
	if err != nil {
		fail(err, 2)
	}
	f, err := resources.ResolveFont(conf, *fontname).Font()
	if err != nil {
		fail(err, 3)
	}
	tracer().Infof("using font %s", f.Fontname)
	r := &renderer{font: f, shaper: shaper, opts: opts}
	if *interactive {
		if err := r.REPL(); err != nil {
			fail(err, 4)
		}
		return
	}
	out, err := r.render(*text)
	if err != nil {
		fail(err, 5)
	}
	if err := writeOutput(*outfile, out); err != nil {
		fail(err, 6)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func fail(err error, exitcode int) {
	reportFailure(os.Stderr, err)
	os.Exit(exitcode)
}

func reportFailure(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(core.UserMessage(err))
	tracer().Errorf("%v", err)
}

func setIfPresent(conf testconfig.Conf, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		conf[key] = value
	}
}

func selectShaper(name string) (glyphing.Shaper, error) {
	switch strings.ToLower(name) {
	case "hb", "harfbuzz":
		return harfbuzz.New(), nil
	case "cmap":
		return cmapshaper.Shaper(), nil
	}
	return nil, core.Error(core.EINVALID, "unknown shaper %q, use 'hb' or 'cmap'", name)
}

type renderer struct {
	font   *font.ScalableFont
	shaper glyphing.Shaper
	opts   compose.Options
}

// render creates a complete SVG document in memory, so no partial output is
// ever written.
func (r *renderer) render(text string) ([]byte, error) {
	doc, err := compose.Render(r.font, text, r.shaper, r.opts)
	if err != nil {
		return nil, err
	}
	for _, w := range doc.Warnings {
		pterm.Warning.Println(w.Error())
	}
	var buf bytes.Buffer
	if err := svg.Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// REPL starts interactive mode.
func (r *renderer) REPL() error {
	repl, err := readline.New("otsvg > ")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot start interactive mode: %v", err)
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		out, err := r.render(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		pterm.Println(string(out))
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func writeOutput(filename string, out []byte) error {
	if filename != "" {
		if err := os.WriteFile(filename, out, 0644); err != nil {
			return core.WrapError(err, core.EINVALID, "cannot write output file %s: %v", filename, err)
		}
		pterm.Info.Printfln("wrote %s", filename)
		return nil
	}
	_, err := os.Stdout.Write(out)
	return err
}
