package compose

import (
	"fmt"
	"math"
)

// DefaultUnitsPerEm is the size of the em square of the output coordinate space.
const DefaultUnitsPerEm = 1000

// Viewport is the rectangle enclosing all placements, in output units.
type Viewport struct {
	MinX, MinY    int
	Width, Height int
}

// String returns the viewport in the format of an SVG viewBox attribute.
func (vp Viewport) String() string {
	return fmt.Sprintf("%d %d %d %d", vp.MinX, vp.MinY, vp.Width, vp.Height)
}

// Metrics are the font-wide metrics needed to compute a viewport, in font units.
type Metrics struct {
	UnitsPerEm float64
	Ascender   float64
	Descender  float64 // usually negative
}

// MissingMetricsError is returned if a viewport cannot be computed for lack of
// font metrics.
type MissingMetricsError struct {
	Reason string
}

func (e *MissingMetricsError) Error() string {
	return "missing font metrics: " + e.Reason
}

// Scale returns the factor to convert font units into a coordinate space of
// targetUnitsPerEm. A target of zero or less selects DefaultUnitsPerEm.
// If fontUnitsPerEm is not positive, Scale returns 0.
func Scale(fontUnitsPerEm, targetUnitsPerEm float64) float64 {
	if fontUnitsPerEm <= 0 {
		return 0
	}
	if targetUnitsPerEm <= 0 {
		targetUnitsPerEm = DefaultUnitsPerEm
	}
	return targetUnitsPerEm / fontUnitsPerEm
}

// ComputeViewport calculates the viewport enclosing a sequence of placements.
// The viewport starts at x=0 and spans vertically from the descender to the
// ascender. Its width is given by the rightmost extent of any placement, or
// zero if there are no placements.
func ComputeViewport(placements []Placement, m Metrics, scale float64) (Viewport, error) {
	if m.UnitsPerEm <= 0 {
		return Viewport{}, &MissingMetricsError{Reason: "units per em not set"}
	}
	if m.Ascender == 0 && m.Descender == 0 {
		return Viewport{}, &MissingMetricsError{Reason: "ascender and descender not set"}
	}
	vp := Viewport{
		MinY:   roundHalfUp(m.Descender * scale),
		Height: roundHalfUp((m.Ascender - m.Descender) * scale),
	}
	if len(placements) > 0 {
		right := math.Inf(-1)
		for _, p := range placements {
			right = math.Max(right, p.X+p.Advance)
		}
		vp.Width = roundHalfUp(right * scale)
	}
	return vp, nil
}

// roundHalfUp rounds halves towards positive infinity, i.e. -100.5 becomes -100.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
