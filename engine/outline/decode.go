package outline

import "fmt"

// MalformedContourError is returned if a contour cannot be decoded into a path.
// Index is the position of the offending point within its contour, or -1 if the
// contour as a whole is invalid.
type MalformedContourError struct {
	Index  int
	Reason string
}

func (e *MalformedContourError) Error() string {
	if e.Index < 0 {
		return "malformed contour: " + e.Reason
	}
	return fmt.Sprintf("malformed contour at point %d: %s", e.Index, e.Reason)
}

// decoder walks a contour. It is either in state "no pending control point"
// or in state "pending(ctrl)", where ctrl is the last off-curve point seen.
type decoder struct {
	path    Path
	start   Point
	prev    Point
	pending *Point
}

func (d *decoder) emit(op Op, ctrl, to Point) {
	d.path = append(d.path, Command{Op: op, Ctrl: ctrl, To: to})
}

// setPending enters state pending(ctrl).
func (d *decoder) setPending(ctrl Point) {
	d.pending = &ctrl
}

// step consumes the point at index i.
func (d *decoder) step(i int, pt Point) error {
	if d.prev.OnCurve != (d.pending == nil) {
		return &MalformedContourError{Index: i, Reason: "previous point inconsistent with pending control point"}
	}
	switch {
	case d.prev.OnCurve && pt.OnCurve:
		d.emit(LineTo, Point{}, pt)
	case d.prev.OnCurve && !pt.OnCurve:
		d.setPending(pt)
	case !d.prev.OnCurve && !pt.OnCurve:
		mid := midpoint(d.prev, pt)
		d.emit(QuadTo, d.prev, mid)
		d.setPending(pt)
	default: // off → on
		d.emit(QuadTo, *d.pending, pt)
		d.pending = nil
	}
	d.prev = pt
	return nil
}

// DecodeContour converts a single contour into path commands, starting with
// MoveTo and ending with Close.
//
// If the first point is on the curve, it starts the path. Otherwise, if the last
// point is on the curve, that point starts the path; if both are off the curve,
// the path starts at their midpoint. Consecutive off-curve points are joined by
// implied on-curve midpoints. A control point left pending after the last point
// curves back to the start point.
func DecodeContour(c Contour) (Path, error) {
	if len(c) == 0 {
		return nil, &MalformedContourError{Index: -1, Reason: "empty contour"}
	}
	first, last := c[0], c[len(c)-1]
	d := &decoder{path: make(Path, 0, len(c)+2)}
	switch {
	case first.OnCurve:
		d.start, d.prev = first, first
	case last.OnCurve:
		d.start, d.prev = last, first
		d.setPending(first)
	default:
		d.start, d.prev = midpoint(first, last), first
		d.setPending(first)
	}
	d.emit(MoveTo, Point{}, d.start)
	for i := 1; i < len(c); i++ {
		if err := d.step(i, c[i]); err != nil {
			return nil, err
		}
	}
	if d.pending != nil {
		d.emit(QuadTo, *d.pending, d.start)
	}
	d.emit(Close, Point{}, Point{})
	return d.path, nil
}

// Decode converts all contours of a glyph into a single path, concatenating the
// commands of the individual contours.
func Decode(contours []Contour) (Path, error) {
	var path Path
	for i, c := range contours {
		p, err := DecodeContour(c)
		if err != nil {
			tracer().Errorf("contour #%d: %v", i, err)
			return nil, err
		}
		path = append(path, p...)
	}
	tracer().Debugf("decoded %d contours into %d commands", len(contours), len(path))
	return path, nil
}
