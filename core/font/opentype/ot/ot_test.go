package ot

import (
	"testing"

	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	tag := Tag(0x636d6170)
	if tag.String() != "cmap" {
		t.Errorf("expected tag 0x636d6170 to be 'cmap', is %s", tag.String())
	}
	tag = MakeTag([]byte("cmap"))
	if tag.String() != "cmap" {
		t.Errorf("expected tag MakeTag(cmap) to be 'cmap', is %s", tag.String())
	}
	tag = T("cmap")
	if tag.String() != "cmap" {
		t.Errorf("expected tag T(cmap) to be 'cmap', is %s", tag.String())
	}
	if T("OS/2") != MakeTag([]byte("OS/2")) {
		t.Errorf("expected T and MakeTag to agree for OS/2")
	}
	if MakeTag([]byte("ab")) != Tag(0x00006162) {
		t.Errorf("expected short tag to be padded with leading zeros, is %x", MakeTag([]byte("ab")))
	}
	if MakeTag([]byte("glyfx")) != T("glyf") || MakeTag(nil) != 0 {
		t.Errorf("expected MakeTag to truncate long input and map nil to 0")
	}
	if T("cvt").String() != "cvt " {
		t.Errorf("expected T to pad with spaces, is %q", T("cvt").String())
	}
}

func TestTableName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsvg.fonts")
	defer teardown()
	//
	tb := tableBase{}
	tb.name = 0x636d6170
	s := tb.Self().NameTag().String()
	if s != "cmap" {
		t.Errorf("expected table name to be cmap, is %v", s)
	}
	if (TableSelf{}).NameTag() != 0 {
		t.Errorf("expected empty table self to have no name")
	}
	if (TableSelf{}).AsCMap() != nil {
		t.Errorf("expected empty table self not to convert to cmap")
	}
	g := newTable(T("kern"), binarySegm{1, 2}, 0, 2)
	if g.Self().AsGlyf() != nil || g.Self().AsHead() != nil {
		t.Errorf("expected generic table not to convert to a concrete table")
	}
	if g.Self().NameTag() != T("kern") || len(g.Binary()) != 2 {
		t.Errorf("expected generic table to keep its tag and data")
	}
}

func TestSegmentBounds(t *testing.T) {
	b := binarySegm{0x12, 0x34, 0x56, 0x78}
	if b.U16(2) != 0x5678 || b.U32(0) != 0x12345678 {
		t.Errorf("expected big-endian reads, have %x and %x", b.U16(2), b.U32(0))
	}
	if b.U16(3) != 0 || b.U32(1) != 0 {
		t.Errorf("expected out-of-bounds reads to yield 0")
	}
	if _, err := b.u8(4); err != errBufferBounds {
		t.Errorf("expected bounds error for u8 past end, have %v", err)
	}
	if n, err := b.i16(0); err != nil || n != 0x1234 {
		t.Errorf("expected i16 at 0 to be 0x1234, have %x (%v)", n, err)
	}
	if _, err := b.view(-1, 2); err == nil {
		t.Errorf("expected negative offset to be rejected")
	}
}

// ---------------------------------------------------------------------------

func loadTestFont(t *testing.T) *Font {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	//
	f := font.FallbackFont()
	otf, err := Parse(f.Binary)
	if err != nil {
		t.Fatal(err)
	}
	otf.F = f
	t.Logf("loaded font = %s", otf.F.Fontname)
	return otf
}
