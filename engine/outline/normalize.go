package outline

import (
	"github.com/dlclark/regexp2"
)

// DefaultTolerance is the distance below which a closing line segment is
// considered degenerate, in units of a 1000 units-per-em coordinate space.
const DefaultTolerance = 1.0

// DropDegenerateCloses returns a copy of p without line segments which
// immediately precede a Close and end within tolerance of their contour's start
// point. These segments are redundant, as Close returns to the start point anyway.
// If such segments form a run, the whole run is dropped; the MoveTo of a contour
// is always kept. p itself is not modified.
func DropDegenerateCloses(p Path, tolerance float64) Path {
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}
	out := make(Path, 0, len(p))
	var start Point
	contourStart := 0 // index of the current contour's MoveTo within out
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			start = c.To
			contourStart = len(out)
		case Close:
			n := len(out)
			for n > contourStart+1 && out[n-1].Op == LineTo && dist(out[n-1].To, start) <= tolerance {
				n--
			}
			if n < len(out) {
				tracer().Debugf("dropping %d degenerate closing segment(s)", len(out)-n)
				out = out[:n]
			}
		}
		out = append(out, c)
	}
	return out
}

// textRule is a rewrite rule for serialized path data.
type textRule struct {
	re   *regexp2.Regexp
	repl string
}

// textRules are applied in order; later rules rely on the output of earlier ones.
var textRules = []textRule{
	// numeric tokens without a separator: "1.5.5" → "1.5 .5"
	{regexp2.MustCompile(`(\d*\.\d+)(?=\.\d)`, regexp2.None), "$1 "},
	// a minus sign directly following a digit: "10-5" → "10 -5"
	{regexp2.MustCompile(`(?<=\d)-`, regexp2.None), " -"},
	// a command letter directly following a digit: "10L" → "10 L"
	{regexp2.MustCompile(`(?<=\d)(?=[A-Za-z])`, regexp2.None), " "},
	// Z directly followed by another token: "ZM" → "Z M"
	{regexp2.MustCompile(`([Zz])(?=\S)`, regexp2.None), "$1 "},
	// fractional parts: "12.75" → "12", ".5" → "0"
	{regexp2.MustCompile(`(?<=\d)\.\d+`, regexp2.None), ""},
	{regexp2.MustCompile(`\.\d+`, regexp2.None), "0"},
}

// NormalizeText canonicalizes serialized path data: it separates adjacent tokens
// and strips all fractional parts of numbers. NormalizeText is idempotent.
//
// Fractional parts are truncated, not rounded.
func NormalizeText(d string) string {
	for i, rule := range textRules {
		s, err := rule.re.Replace(d, rule.repl, -1, -1)
		if err != nil { // may only happen on a match timeout, which we do not set
			tracer().Errorf("path text rule #%d failed: %v", i, err)
			continue
		}
		d = s
	}
	return d
}

// Normalize scales a path, drops degenerate closing segments and returns the
// normalized text form of the result. Tolerance is applied after scaling.
func Normalize(p Path, scale, tolerance float64) string {
	p = DropDegenerateCloses(p.Scale(scale), tolerance)
	return NormalizeText(p.String())
}

// FormatCoordinate returns a single coordinate in the same normalized form as
// coordinates within path data.
func FormatCoordinate(x float64) string {
	return NormalizeText(formatNumber(x))
}
