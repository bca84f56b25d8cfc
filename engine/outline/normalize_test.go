package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDropDegenerateCloses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.outline")
	defer teardown()
	//
	for _, tc := range []struct {
		name     string
		in, want Path
	}{
		{"line within tolerance is dropped",
			Path{mv(0, 0), ln(10, 0), ln(10, 10), ln(0.5, 0.5), cl()},
			Path{mv(0, 0), ln(10, 0), ln(10, 10), cl()}},
		{"line at exactly the tolerance is dropped",
			Path{mv(0, 0), ln(10, 0), ln(10, 10), ln(0, 1), cl()},
			Path{mv(0, 0), ln(10, 0), ln(10, 10), cl()}},
		{"line beyond tolerance is kept",
			Path{mv(0, 0), ln(10, 0), ln(10, 10), ln(1.5, 0), cl()},
			Path{mv(0, 0), ln(10, 0), ln(10, 10), ln(1.5, 0), cl()}},
		{"run of degenerate lines is dropped",
			Path{mv(0, 0), ln(10, 0), ln(10, 10), ln(0.5, 0), ln(0, 0), cl()},
			Path{mv(0, 0), ln(10, 0), ln(10, 10), cl()}},
		{"line not followed by close is kept",
			Path{mv(0, 0), ln(0.5, 0), ln(10, 10), cl()},
			Path{mv(0, 0), ln(0.5, 0), ln(10, 10), cl()}},
		{"curve before close is kept",
			Path{mv(0, 0), ln(10, 0), qd(5, 5, 0, 0), cl()},
			Path{mv(0, 0), ln(10, 0), qd(5, 5, 0, 0), cl()}},
		{"move is never dropped",
			Path{mv(0, 0), ln(0, 0), cl()},
			Path{mv(0, 0), cl()}},
		{"each contour has its own start",
			Path{mv(0, 0), ln(10, 0), ln(100, 100), cl(), mv(100, 100), ln(110, 100), ln(0, 0), cl()},
			Path{mv(0, 0), ln(10, 0), ln(100, 100), cl(), mv(100, 100), ln(110, 100), ln(0, 0), cl()}},
	} {
		in := append(Path(nil), tc.in...)
		got := DropDegenerateCloses(tc.in, DefaultTolerance)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tc.name, diff)
		}
		if diff := cmp.Diff(in, tc.in); diff != "" {
			t.Errorf("%s: input has been modified", tc.name)
		}
		if diff := cmp.Diff(got, DropDegenerateCloses(got, DefaultTolerance)); diff != "" {
			t.Errorf("%s: dropping is not idempotent:\n%s", tc.name, diff)
		}
	}
}

func TestDropDegenerateClosesTolerance(t *testing.T) {
	p := Path{mv(0, 0), ln(10, 0), ln(3, 4), cl()}
	assert.Len(t, DropDegenerateCloses(p, 5), 3, "distance 5 within tolerance 5")
	assert.Len(t, DropDegenerateCloses(p, 4.9), 4)
	assert.Len(t, DropDegenerateCloses(p, -1), 4, "negative tolerance selects default")
}

func TestNormalizeText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.outline")
	defer teardown()
	//
	for in, want := range map[string]string{
		"M 1.5.5 L 2 3 Z":                "M 1 0 L 2 3 Z",
		"M 10-5L3 4Z":                    "M 10 -5 L3 4 Z",
		"M 0 0 ZM 1 1 Z":                 "M 0 0 Z M 1 1 Z",
		"M 12.75 -3.25 Q 1.5 2.5 3 4 Z":  "M 12 -3 Q 1 2 3 4 Z",
		"M .5 -.5 Z":                     "M 0 -0 Z",
		"M 0 0 L 100 0 L 100 100 Z":      "M 0 0 L 100 0 L 100 100 Z",
		"M 1.25.5.75 L 2.5-3.5Z M 1 1 Z": "M 1 0 0 L 2 -3 Z M 1 1 Z",
		"":                               "",
	} {
		got := NormalizeText(in)
		assert.Equal(t, want, got, "normalizing %q", in)
		assert.Equal(t, got, NormalizeText(got), "normalizing %q is not idempotent", in)
	}
}

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.outline")
	defer teardown()
	//
	p, err := DecodeContour(Contour{Pt(0, 0), Ctrl(5, 5), Pt(10, 0)})
	assert.NoError(t, err)
	assert.Equal(t, "M 0 0 Q 2 2 5 0 Z", Normalize(p, 0.5, DefaultTolerance))
	//
	square := Path{mv(0, 0), ln(100, 0), ln(100, 100), ln(1, 1), cl()}
	assert.Equal(t, "M 0 0 L 50 0 L 50 50 Z", Normalize(square, 0.5, DefaultTolerance),
		"tolerance is applied in scaled space")
	assert.Equal(t, "M 0 0 L 100 0 L 100 100 L 1 1 Z", Normalize(square, 1, DefaultTolerance))
	//
	d := Normalize(square, 0.37, DefaultTolerance)
	assert.Equal(t, d, NormalizeText(d))
}

func TestFormatCoordinate(t *testing.T) {
	for x, want := range map[float64]string{
		0:       "0",
		500:     "500",
		244.14:  "244",
		-97.656: "-97",
		0.25:    "0",
	} {
		assert.Equal(t, want, FormatCoordinate(x), "formatting %g", x)
	}
}
