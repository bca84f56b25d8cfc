package outline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a point of a glyph contour. Coordinates are in font units until a
// path is scaled.
type Point struct {
	X, Y    float64
	OnCurve bool
}

// Pt creates an on-curve point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, OnCurve: true}
}

// Ctrl creates an off-curve point.
func Ctrl(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	if p.OnCurve {
		return fmt.Sprintf("(%g,%g)", p.X, p.Y)
	}
	return fmt.Sprintf("(%g,%g)*", p.X, p.Y)
}

// midpoint returns the on-curve point in the middle of p and q.
func midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, OnCurve: true}
}

// dist returns the Euclidean distance of p and q.
func dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Contour is an implicitly closed sequence of points.
type Contour []Point

// Op is the operation of a path command.
type Op int8

// Path operations
const (
	MoveTo Op = iota
	LineTo
	QuadTo
	Close
)

var opLetters = [...]string{"M", "L", "Q", "Z"}

func (op Op) String() string {
	if op < MoveTo || op > Close {
		return "?"
	}
	return opLetters[op]
}

// Command is a single path command. Ctrl is used by QuadTo only, To is unused
// for Close.
type Command struct {
	Op   Op
	Ctrl Point
	To   Point
}

func (c Command) String() string {
	switch c.Op {
	case MoveTo, LineTo:
		return fmt.Sprintf("%s%v", c.Op, c.To)
	case QuadTo:
		return fmt.Sprintf("Q%v%v", c.Ctrl, c.To)
	}
	return c.Op.String()
}

// Path is a sequence of commands. A well-formed path consists of groups, one per
// contour, each starting with MoveTo and ending with Close.
type Path []Command

// Scale returns a copy of the path with all coordinates multiplied by f.
func (p Path) Scale(f float64) Path {
	scaled := make(Path, len(p))
	for i, c := range p {
		c.Ctrl.X, c.Ctrl.Y = c.Ctrl.X*f, c.Ctrl.Y*f
		c.To.X, c.To.Y = c.To.X*f, c.To.Y*f
		scaled[i] = c
	}
	return scaled
}

// Contours returns the number of contours, i.e. the number of MoveTo commands.
func (p Path) Contours() int {
	n := 0
	for _, c := range p {
		if c.Op == MoveTo {
			n++
		}
	}
	return n
}

// String serializes a path into SVG path data, with tokens separated by single
// blanks, e.g. "M 0 0 Q 5 5 10 0 Z". Numbers are written in their shortest
// decimal representation, never in exponent notation.
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Op.String())
		switch c.Op {
		case MoveTo, LineTo:
			writeCoords(&sb, c.To)
		case QuadTo:
			writeCoords(&sb, c.Ctrl)
			writeCoords(&sb, c.To)
		}
	}
	return sb.String()
}

func writeCoords(sb *strings.Builder, pt Point) {
	sb.WriteByte(' ')
	sb.WriteString(formatNumber(pt.X))
	sb.WriteByte(' ')
	sb.WriteString(formatNumber(pt.Y))
}

func formatNumber(x float64) string {
	if x == 0 { // avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
