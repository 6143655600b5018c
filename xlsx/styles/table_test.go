package styles

import (
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"xlsxw/xlsx/format"
	"xlsxw/xlsx/xmlwriter"
)

func assemble(tbl *Table) string {
	w := xmlwriter.New()
	defer w.Release()
	tbl.Assemble(w)
	return w.String()
}

// section returns element tag with its content from the document.
func section(doc, tag string) string {
	start := strings.Index(doc, "<"+tag)
	if start < 0 {
		return ""
	}
	if end := strings.Index(doc[start:], "</"+tag+">"); end >= 0 {
		return doc[start : start+end+len(tag)+3]
	}
	end := strings.Index(doc[start:], "/>")
	return doc[start : start+end+2]
}

func TestRegisterOrderStability(t *testing.T) {
	tbl := NewTable(zaptest.NewLogger(t))

	d1 := format.New()
	d2 := format.New().SetBold()
	d3 := format.New().SetItalic()

	var got []int
	for _, f := range []*format.Format{d1, d2, d1, d3} {
		got = append(got, tbl.Register(f))
	}

	want := []int{0, 1, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indexes = %v, want %v", got, want)
		}
	}
	if tbl.XFCount() != 3 {
		t.Errorf("XFCount() = %d, want 3", tbl.XFCount())
	}
}

func TestRegisterDedupIndependentFormats(t *testing.T) {
	tbl := NewTable(nil)

	tbl.Register(format.New())
	a := format.New().SetBold().SetFontColor(format.Red).SetBorder(format.BorderStyleThin)
	b := format.New().SetBorderTop(format.BorderStyleThin).SetBorderLeft(format.BorderStyleThin).
		SetBorderBottom(format.BorderStyleThin).SetBorderRight(format.BorderStyleThin).
		SetFontColor(format.RGB(0xFF0000)).SetBold()

	ia, ib := tbl.Register(a), tbl.Register(b)
	if ia != ib {
		t.Fatalf("equal formats got different indexes %d and %d", ia, ib)
	}
	if a.Resolved() != b.Resolved() {
		t.Errorf("resolved sub-indexes differ: %+v %+v", a.Resolved(), b.Resolved())
	}
	if tbl.FontCount() != 2 || tbl.BorderCount() != 2 {
		t.Errorf("fonts=%d borders=%d, want 2 and 2", tbl.FontCount(), tbl.BorderCount())
	}
}

func TestDefaultFormat(t *testing.T) {
	tbl := NewTable(nil)

	f := format.New()
	if idx := tbl.Register(f); idx != 0 {
		t.Fatalf("default format index = %d", idx)
	}
	r := f.Resolved()
	if r.HasFont || r.HasFill || r.FontIndex != 0 || r.FillIndex != 0 || r.BorderIndex != 0 {
		t.Errorf("unexpected resolution for default format: %+v", r)
	}
	if tbl.FontCount() != 1 || tbl.FillCount() != 2 || tbl.BorderCount() != 1 {
		t.Errorf("default format created pool entries: fonts=%d fills=%d borders=%d",
			tbl.FontCount(), tbl.FillCount(), tbl.BorderCount())
	}
}

func TestReservedSlots(t *testing.T) {
	tbl := NewTable(nil)

	formats := []*format.Format{
		format.New().SetBold(),
		format.New().SetBackgroundColor(format.Yellow),
		format.New().SetPattern(format.PatternGray125),
		format.New().SetFontName("Arial").SetFontSize(10),
		format.New().SetPattern(format.PatternDarkGrid).SetForegroundColor(format.Blue),
	}
	for _, f := range formats {
		tbl.Register(f)
	}

	if tbl.Font(0) != format.DefaultFont {
		t.Errorf("font 0 = %+v", tbl.Font(0))
	}
	if tbl.Fill(0) != format.DefaultFill || tbl.Fill(1) != format.Gray125Fill {
		t.Errorf("fills 0,1 = %+v, %+v", tbl.Fill(0), tbl.Fill(1))
	}
	// pattern only gray125 reuses reserved fill
	if got := formats[2].Resolved().FillIndex; got != 1 {
		t.Errorf("gray125 fill index = %d, want 1", got)
	}
	if got := formats[1].Resolved().FillIndex; got != 2 {
		t.Errorf("first custom fill index = %d, want 2", got)
	}
	if !formats[1].Resolved().HasFill || !formats[0].Resolved().HasFont {
		t.Error("has_fill/has_font flags not set")
	}
}

func TestNumberFormats(t *testing.T) {
	tbl := NewTable(nil)

	tests := []struct {
		f    *format.Format
		want int
	}{
		{format.New(), 0},
		{format.New().SetNumFormat("General"), 0},
		{format.New().SetNumFormat("0"), 1},
		{format.New().SetNumFormat("0.00"), 164},
		{format.New().SetNumFormat("d mmm yyyy"), 165},
		{format.New().SetNumFormat("0.00").SetBold(), 164},
		{format.New().SetNumFormatIndex(14), 14},
	}

	for _, tt := range tests {
		tbl.Register(tt.f)
		if got := tt.f.Resolved().NumFormatID; got != tt.want {
			code, idx := tt.f.NumFormat()
			t.Errorf("numFmtId(%q, %d) = %d, want %d", code, idx, got, tt.want)
		}
	}

	got := section(assemble(tbl), "numFmts")
	want := `<numFmts count="2"><numFmt numFmtId="164" formatCode="0.00"/><numFmt numFmtId="165" formatCode="d mmm yyyy"/></numFmts>`
	if got != want {
		t.Errorf("numFmts\n got %s\nwant %s", got, want)
	}
}

func TestRegisterLocksFormat(t *testing.T) {
	tbl := NewTable(nil)
	f := format.New().SetBold()
	tbl.Register(f)

	f.SetItalic()
	if f.Font().Italic {
		t.Fatal("format changed after registration")
	}
	if idx := tbl.Register(f); idx != 0 {
		t.Errorf("re-registration index = %d", idx)
	}
}

func TestRejectedPropertiesLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tbl := NewTable(zap.New(core))

	f := format.New().SetRotation(100).SetReadingDirection(5)
	tbl.Register(f)
	tbl.Register(f)

	if n := logs.FilterMessage("Format property ignored").Len(); n != 2 {
		t.Errorf("expected 2 warnings, got %d", n)
	}
}

func TestFreeze(t *testing.T) {
	tbl := NewTable(nil)
	tbl.Register(format.New())
	tbl.Freeze()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on registration after freeze")
		}
	}()
	tbl.Register(format.New().SetBold())
}

func TestRegisterDXF(t *testing.T) {
	tbl := NewTable(nil)
	tbl.Register(format.New())

	a := format.New().SetBold().SetFontColor(format.Red)
	b := format.New().SetFontColor(format.Red).SetBold()
	c := format.New().SetBackgroundColor(format.Yellow)

	if ia, ib := tbl.RegisterDXF(a), tbl.RegisterDXF(b); ia != 0 || ib != 0 {
		t.Errorf("dxf indexes %d %d, want 0 0", ia, ib)
	}
	if ic := tbl.RegisterDXF(c); ic != 1 {
		t.Errorf("dxf index %d, want 1", ic)
	}
	if idx, ok := c.DXFIndex(); !ok || idx != 1 {
		t.Errorf("DXFIndex() = %d %v", idx, ok)
	}
	if tbl.FontCount() != 1 || tbl.FillCount() != 2 || tbl.XFCount() != 1 {
		t.Error("differential formats must not use cell pools")
	}
}

func TestRegisterNonFiniteFontSize(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tbl := NewTable(zap.New(core))
	tbl.Register(format.New())

	f1 := format.New().SetFontSize(math.NaN())
	f2 := format.New().SetFontSize(math.NaN())
	i1, i2, again := tbl.Register(f1), tbl.Register(f2), tbl.Register(f1)

	if i1 != 0 || i2 != 0 || again != 0 {
		t.Errorf("indexes = %d %d %d, want all 0", i1, i2, again)
	}
	if tbl.FontCount() != 1 || tbl.XFCount() != 1 {
		t.Errorf("fonts=%d xfs=%d, want 1 and 1", tbl.FontCount(), tbl.XFCount())
	}
	if strings.Contains(assemble(tbl), "NaN") {
		t.Error("styles.xml contains NaN font size")
	}
	if logs.Len() != 2 {
		t.Errorf("expected 2 warnings, got %d", logs.Len())
	}
}

func TestApplyFlags(t *testing.T) {
	tbl := NewTable(nil)

	def := format.New()
	bold := format.New().SetBold()
	filled := format.New().SetBackgroundColor(format.Yellow)
	boxed := format.New().SetBorderColor(format.Red)
	for _, f := range []*format.Format{def, bold, filled, boxed} {
		tbl.Register(f)
	}

	tests := []struct {
		name               string
		f                  *format.Format
		font, fill, border bool
	}{
		{"default", def, false, false, false},
		{"bold", bold, true, false, false},
		{"fill", filled, false, true, false},
		{"border color", boxed, false, false, true},
	}
	xfs := strings.Split(section(assemble(tbl), "cellXfs"), "<xf ")[1:]
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.f.Resolved()
			if r.HasFont != tt.font || r.HasFill != tt.fill || r.HasBorder != tt.border {
				t.Errorf("resolved %+v, want font=%v fill=%v border=%v", r, tt.font, tt.fill, tt.border)
			}
			rec := xfs[i]
			for attr, want := range map[string]bool{"applyFont": tt.font, "applyFill": tt.fill, "applyBorder": tt.border} {
				if got := strings.Contains(rec, attr+`="1"`); got != want {
					t.Errorf("xf %d: %s present = %v, want %v: %s", i, attr, got, want, rec)
				}
			}
		})
	}
}
