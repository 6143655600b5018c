package convert

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"xlsxw/xlsx"
	"xlsxw/xlsx/format"
)

func testClasses() map[string]*format.Format {
	return map[string]*format.Format{
		"header": format.New().SetBold(),
		"money":  format.New().SetNumFormat("#,##0.00"),
	}
}

func TestResolveFormats(t *testing.T) {
	classes := testClasses()
	yes := uint8(10)
	inline := map[string]FormatDescription{
		"total":     {Base: "money", Bold: true},
		"grand":     {Base: "total", Italic: true},
		"header":    {Base: "header", FontSize: 14},
		"plain":     {NumFormatIndex: &yes},
		"duplicate": {Base: "grand"},
	}

	formats, err := resolveFormats(classes, inline)
	if err != nil {
		t.Fatalf("resolveFormats() error = %v", err)
	}

	tests := map[string]*format.Format{
		"money":     format.New().SetNumFormat("#,##0.00"),
		"total":     format.New().SetNumFormat("#,##0.00").SetBold(),
		"grand":     format.New().SetNumFormat("#,##0.00").SetBold().SetItalic(),
		"duplicate": format.New().SetNumFormat("#,##0.00").SetBold().SetItalic(),
		"header":    format.New().SetBold().SetFontSize(14),
		"plain":     format.New().SetNumFormatIndex(10),
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := formats[name]
			if !ok {
				t.Fatal("format is missing")
			}
			if got.Key() != want.Key() {
				t.Errorf("got\n%s\nwant\n%s", got.Key(), want.Key())
			}
		})
	}

	if formats["money"] == classes["money"] {
		t.Error("stylesheet formats must be cloned")
	}
	if classes["header"].Key() != format.New().SetBold().Key() {
		t.Error("stylesheet class was modified")
	}
}

func TestResolveFormats_Errors(t *testing.T) {
	tests := []struct {
		name   string
		inline map[string]FormatDescription
		want   string
	}{
		{"unknown base", map[string]FormatDescription{"a": {Base: "nope"}}, `unknown format "nope"`},
		{"cycle", map[string]FormatDescription{"a": {Base: "b"}, "b": {Base: "a"}}, "based on itself"},
		{"self without class", map[string]FormatDescription{"a": {Base: "a"}}, "missing stylesheet class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveFormats(testClasses(), tt.inline)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestResolveFormats_KeepsRejectedValues(t *testing.T) {
	classes := map[string]*format.Format{
		"huge": format.New().SetBold().SetFontSize(500),
	}
	inline := map[string]FormatDescription{
		"huger": {Base: "huge", Italic: true},
	}

	formats, err := resolveFormats(classes, inline)
	if err != nil {
		t.Fatalf("resolveFormats() error = %v", err)
	}
	for _, name := range []string{"huge", "huger"} {
		var verr *format.ValidationError
		if !errors.As(formats[name].Err(), &verr) || verr.Field != "font_size" {
			t.Errorf("%s: rejected font size is lost, err = %v", name, formats[name].Err())
		}
	}
}

func TestBuildWorkbook(t *testing.T) {
	desc, err := ReadDescription(strings.NewReader(sampleDescription))
	if err != nil {
		t.Fatal(err)
	}
	classes := testClasses()
	classes["warning"] = format.New().SetFontColor(format.Red)

	formats, err := resolveFormats(classes, desc.Formats)
	if err != nil {
		t.Fatal(err)
	}
	wb, err := buildWorkbook(desc, formats)
	if err != nil {
		t.Fatalf("buildWorkbook() error = %v", err)
	}

	sheets := wb.Worksheets()
	if len(sheets) != 1 || sheets[0].Name() != "Summary" {
		t.Fatalf("unexpected worksheets")
	}
	if got := sheets[0].Dimension(); got != "A1:E5" {
		t.Errorf("Dimension() = %q, want A1:E5", got)
	}
}

func TestBuildWorkbook_Problems(t *testing.T) {
	desc, err := ReadDescription(strings.NewReader(`
sheets:
  - name: Good
    cells:
      - {ref: A1, string: ok}
      - {ref: ZZZZ1, string: bad}
      - {ref: B1, string: x, number: 1}
      - {ref: C1, string: x, format: missing}
    rows:
      - {row: 0}
      - {row: 2, height: 500}
    columns:
      - {range: "1"}
    conditional:
      - {range: A1, operator: between, value: "1"}
  - name: Good
  - name: "bad[name]"
`))
	if err != nil {
		t.Fatal(err)
	}

	wb, err := buildWorkbook(desc, testClasses())
	errs := multierr.Errors(err)
	if len(errs) != 8 {
		t.Fatalf("expected 8 problems, got %d:\n%v", len(errs), err)
	}
	var names, cells int
	for _, e := range errs {
		switch {
		case errors.Is(e, xlsx.ErrSheetName):
			names++
		case errors.Is(e, xlsx.ErrRowCol):
			cells++
		}
	}
	if names != 2 {
		t.Errorf("expected 2 sheet name problems, got %d", names)
	}
	if cells != 3 {
		t.Errorf("expected 3 row/column problems, got %d", cells)
	}
	if !strings.Contains(err.Error(), `sheet "Good", cell B1: only one of`) {
		t.Errorf("problem location is missing: %v", err)
	}

	if got := len(wb.Worksheets()); got != 1 {
		t.Errorf("workbook should keep correct worksheet, got %d", got)
	}
}
