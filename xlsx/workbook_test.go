package xlsx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/flate"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"xlsxw/xlsx/format"
)

type archive struct {
	names []string
	files map[string]string
	zip   *zip.Reader
}

func readArchive(t *testing.T, data []byte) *archive {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("unable to open archive: %v", err)
	}
	a := &archive{files: make(map[string]string), zip: zr}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		a.names = append(a.names, f.Name)
		a.files[f.Name] = string(content)
	}
	return a
}

func writeWorkbook(t *testing.T, wb *Workbook) *archive {
	t.Helper()

	var buf bytes.Buffer
	n, err := wb.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() reported %d bytes, written %d", n, buf.Len())
	}
	return readArchive(t, buf.Bytes())
}

func fixedProperties() Properties {
	return Properties{
		Author:  "Tester",
		Created: time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestAddWorksheet(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		wantErr bool
	}{
		{"plain", "Data", false},
		{"max length", strings.Repeat("x", 31), false},
		{"unicode length", strings.Repeat("ж", 31), false},
		{"too long", strings.Repeat("x", 32), true},
		{"bracket", "Data[1]", true},
		{"slash", "a/b", true},
		{"question", "what?", true},
		{"leading apostrophe", "'Data", true},
		{"trailing apostrophe", "Data'", true},
		{"inner apostrophe", "Bob's", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := NewWorkbook()
			_, err := wb.AddWorksheet(tt.sheet)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddWorksheet(%q) error = %v, wantErr %v", tt.sheet, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrSheetName) {
				t.Errorf("error %v is not ErrSheetName", err)
			}
		})
	}
}

func TestAddWorksheetNames(t *testing.T) {
	wb := NewWorkbook()

	ws, err := wb.AddWorksheet("")
	if err != nil || ws.Name() != "Sheet1" {
		t.Fatalf("default name = %q, %v", ws.Name(), err)
	}
	if _, err := wb.AddWorksheet("SHEET1"); !errors.Is(err, ErrSheetName) {
		t.Errorf("duplicate in other case accepted: %v", err)
	}
	if _, err := wb.AddWorksheet("Straße"); err != nil {
		t.Fatal(err)
	}
	if _, err := wb.AddWorksheet("STRASSE"); !errors.Is(err, ErrSheetName) {
		t.Errorf("case folded duplicate accepted: %v", err)
	}
	ws, err = wb.AddWorksheet("")
	if err != nil || ws.Name() != "Sheet3" || ws.Index() != 2 {
		t.Errorf("second default worksheet = %q (%d), %v", ws.Name(), ws.Index(), err)
	}
}

func TestWorkbookStyleScenario(t *testing.T) {
	wb := NewWorkbook(WithLogger(zaptest.NewLogger(t)), WithProperties(fixedProperties()))
	ws, _ := wb.AddWorksheet("")

	bold := format.New().SetBold()
	both := format.New().SetBold().SetItalic()
	ws.WriteString(0, 0, "Plain", nil)
	ws.WriteString(1, 0, "Bold", bold)
	ws.WriteString(2, 0, "Both", both)

	a := writeWorkbook(t, wb)

	wantNames := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/theme/theme1.xml",
		"xl/styles.xml",
		"xl/sharedStrings.xml",
		"xl/worksheets/sheet1.xml",
	}
	if !slices.Equal(a.names, wantNames) {
		t.Errorf("parts = %v, want %v", a.names, wantNames)
	}

	sheet := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<dimension ref="A1:A3"/>` +
		`<sheetViews><sheetView tabSelected="1" workbookViewId="0"/></sheetViews>` +
		`<sheetFormatPr defaultRowHeight="15"/>` +
		`<sheetData>` +
		`<row r="1"><c r="A1" t="s"><v>0</v></c></row>` +
		`<row r="2"><c r="A2" s="1" t="s"><v>1</v></c></row>` +
		`<row r="3"><c r="A3" s="2" t="s"><v>2</v></c></row>` +
		`</sheetData>` +
		`<pageMargins left="0.7" right="0.7" top="0.75" bottom="0.75" header="0.3" footer="0.3"/>` +
		`</worksheet>`
	if got := a.files["xl/worksheets/sheet1.xml"]; got != sheet {
		t.Errorf("sheet1.xml\n got %s\nwant %s", got, sheet)
	}

	styles := a.files["xl/styles.xml"]
	for _, s := range []string{`<fonts count="3">`, `<cellXfs count="3">`, `<fills count="2">`} {
		if !strings.Contains(styles, s) {
			t.Errorf("styles.xml does not contain %s", s)
		}
	}
	if n := strings.Count(styles, `applyFont="1"`); n != 2 {
		t.Errorf("applyFont count = %d, want 2", n)
	}
	if tbl := wb.Styles(); tbl == nil || !tbl.Frozen() || tbl.XFCount() != 3 {
		t.Error("style table of the save is not available")
	}
}

func TestWorkbookFormatsShareIndexes(t *testing.T) {
	wb := NewWorkbook()
	first, _ := wb.AddWorksheet("First")
	second, _ := wb.AddWorksheet("Second")

	first.WriteNumber(0, 0, 1, format.New().SetFontColor(format.Red))
	second.WriteNumber(0, 0, 2, format.New().SetFontColor(format.Red))
	second.WriteNumber(0, 1, 3.25, format.New())

	a := writeWorkbook(t, wb)

	if got := a.files["xl/worksheets/sheet2.xml"]; !strings.Contains(got, `<c r="A1" s="1"><v>2</v></c><c r="B1"><v>3.25</v></c>`) {
		t.Errorf("sheet2.xml cells: %s", got)
	}
	if !strings.Contains(a.files["xl/worksheets/sheet2.xml"], `<sheetView workbookViewId="0"/>`) {
		t.Error("second worksheet must not be selected")
	}
	if _, ok := a.files["xl/sharedStrings.xml"]; ok {
		t.Error("shared strings part written for workbook without strings")
	}
	if strings.Contains(a.files["[Content_Types].xml"], "sharedStrings") {
		t.Error("content types refer to missing shared strings part")
	}
	if !strings.Contains(a.files["xl/workbook.xml"],
		`<sheets><sheet name="First" sheetId="1" r:id="rId1"/><sheet name="Second" sheetId="2" r:id="rId2"/></sheets>`) {
		t.Errorf("workbook.xml sheets: %s", a.files["xl/workbook.xml"])
	}
}

func TestWorksheetCellsAndLayout(t *testing.T) {
	wb := NewWorkbook()
	ws, _ := wb.AddWorksheet("")

	bold := format.New().SetBold()
	ws.SetColumn(1, 0, 20, bold)
	ws.SetColumn(3, 3, 0, nil)
	ws.SetRow(4, 30, nil)
	ws.WriteBool(1, 1, true, nil)
	ws.WriteFormula(2, 1, "=SUM(A1:A2)", nil)
	ws.WriteBlank(3, 2, bold)
	ws.WriteBlank(3, 3, nil)

	a := writeWorkbook(t, wb)
	got := a.files["xl/worksheets/sheet1.xml"]

	for _, want := range []string{
		`<dimension ref="B2:C4"/>`,
		`<cols><col min="1" max="2" width="20.7109375" style="1" customWidth="1"/><col min="4" max="4" width="9.140625"/></cols>`,
		`<row r="2"><c r="B2" t="b"><v>1</v></c></row>`,
		`<row r="3"><c r="B3"><f>SUM(A1:A2)</f><v>0</v></c></row>`,
		`<row r="4"><c r="C4" s="1"/></row>`,
		`<row r="5" ht="30" customHeight="1"/>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("sheet1.xml does not contain %s\n%s", want, got)
		}
	}
}

func TestFormatRegistrationOrder(t *testing.T) {
	wb := NewWorkbook()
	ws, _ := wb.AddWorksheet("Data")

	italic := format.New().SetItalic()
	underline := format.New().SetUnderline(format.UnderlineSingle)
	ws.SetColumn(0, 0, 12, italic)
	ws.SetRow(0, 20, underline)
	ws.WriteString(0, 0, "bold", format.New().SetBold())
	ws.WriteString(1, 0, "red", format.New().SetFontColor(format.Red))

	got := writeWorkbook(t, wb).files["xl/worksheets/sheet1.xml"]
	for _, want := range []string{
		`<col min="1" max="1" width="12.7109375" style="3" customWidth="1"/>`,
		`<row r="1" s="4" customFormat="1" ht="20" customHeight="1"><c r="A1" s="1" t="s">`,
		`<row r="2"><c r="A2" s="2" t="s">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("sheet1.xml does not contain %s\n%s", want, got)
		}
	}
	if italic.Resolved().XFIndex != 3 || underline.Resolved().XFIndex != 4 {
		t.Errorf("column xf = %d, row xf = %d, want 3 and 4",
			italic.Resolved().XFIndex, underline.Resolved().XFIndex)
	}
}

func TestWorksheetErrors(t *testing.T) {
	ws := newWorksheet("Sheet1", 0)

	if err := ws.WriteString(MaxRows, 0, "x", nil); !errors.Is(err, ErrRowCol) {
		t.Errorf("row limit: %v", err)
	}
	if err := ws.WriteNumber(0, MaxCols, 1, nil); !errors.Is(err, ErrRowCol) {
		t.Errorf("column limit: %v", err)
	}
	if err := ws.SetColumn(0, MaxCols, 10, nil); !errors.Is(err, ErrRowCol) {
		t.Errorf("column range limit: %v", err)
	}
	if err := ws.WriteNumber(0, 0, 0, nil); err != nil {
		t.Error(err)
	}
	for name, err := range map[string]error{
		"long string":    ws.WriteString(0, 0, strings.Repeat("x", maxStringLength+1), nil),
		"empty formula":  ws.WriteFormula(0, 0, "=", nil),
		"negative width": ws.SetColumn(0, 0, -1, nil),
		"row height":     ws.SetRow(0, 410, nil),
	} {
		if err == nil {
			t.Errorf("%s accepted", name)
		}
	}
	if ws.Dimension() != "A1" {
		t.Errorf("Dimension() = %q", ws.Dimension())
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{DefaultColumnWidth, 9.140625},
		{20, 20.7109375},
		{1, 1.7109375},
		{0.5, 0.85546875},
	}
	for _, tt := range tests {
		if got := columnWidth(tt.in); got != tt.want {
			t.Errorf("columnWidth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConditionalFormat(t *testing.T) {
	wb := NewWorkbook()
	ws, _ := wb.AddWorksheet("")

	red := format.New().SetFontColor(format.Red)
	if err := ws.AddConditionalFormat(9, 0, 0, 0, CellRule{Operator: OperatorGreaterThan, Value: "5", Format: red}); err != nil {
		t.Fatal(err)
	}
	if err := ws.AddConditionalFormat(0, 1, 0, 1, CellRule{Operator: OperatorBetween, Value: "1", Maximum: "3"}); err != nil {
		t.Fatal(err)
	}
	if err := ws.AddConditionalFormat(0, 0, 0, 0, CellRule{Operator: OperatorNotBetween, Value: "1"}); err == nil {
		t.Error("between rule without maximum accepted")
	}
	if err := ws.AddConditionalFormat(0, 0, 0, 0, CellRule{Operator: Operator(42), Value: "1"}); !errors.Is(err, ErrInvalidOperator) {
		t.Errorf("invalid operator: %v", err)
	}

	a := writeWorkbook(t, wb)

	want := `<conditionalFormatting sqref="A1:A10"><cfRule type="cellIs" dxfId="0" priority="1" operator="greaterThan"><formula>5</formula></cfRule></conditionalFormatting>` +
		`<conditionalFormatting sqref="B1"><cfRule type="cellIs" priority="2" operator="between"><formula>1</formula><formula>3</formula></cfRule></conditionalFormatting>`
	if got := a.files["xl/worksheets/sheet1.xml"]; !strings.Contains(got, want) {
		t.Errorf("sheet1.xml does not contain conditional formats\n%s", got)
	}
	if got := a.files["xl/styles.xml"]; !strings.Contains(got, `<dxfs count="1"><dxf><font><color rgb="FFFF0000"/></font></dxf></dxfs>`) {
		t.Errorf("styles.xml dxfs: %s", got)
	}
}

func TestManifests(t *testing.T) {
	wb := NewWorkbook(WithProperties(Properties{
		Title:    "Report & Summary",
		Author:   "Tester",
		Company:  "ACME",
		Language: language.MustParse("de-CH"),
		Created:  time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC),
	}))
	ws, _ := wb.AddWorksheet("Data")
	ws.WriteString(0, 0, "x", nil)

	a := writeWorkbook(t, wb)

	ct := a.files["[Content_Types].xml"]
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`,
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`,
		`<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`,
		`<Override PartName="/xl/sharedStrings.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"/>`,
	} {
		if !strings.Contains(ct, want) {
			t.Errorf("[Content_Types].xml does not contain %s\n%s", want, ct)
		}
	}

	rels := a.files["xl/_rels/workbook.xml.rels"]
	for _, want := range []string{
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>`,
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`,
		`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`,
		`<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>`,
	} {
		if !strings.Contains(rels, want) {
			t.Errorf("workbook.xml.rels does not contain %s", want)
		}
	}

	core := a.files["docProps/core.xml"]
	for _, want := range []string{
		`<dc:title>Report &amp; Summary</dc:title>`,
		`<dc:creator>Tester</dc:creator>`,
		`<dc:language>de-CH</dc:language>`,
		`<dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T12:30:00Z</dcterms:created>`,
	} {
		if !strings.Contains(core, want) {
			t.Errorf("core.xml does not contain %s", want)
		}
	}
	if strings.Contains(core, "dc:subject") {
		t.Error("empty subject written")
	}

	app := a.files["docProps/app.xml"]
	for _, want := range []string{
		`<vt:i4>1</vt:i4>`,
		`<TitlesOfParts><vt:vector size="1" baseType="lpstr"><vt:lpstr>Data</vt:lpstr></vt:vector></TitlesOfParts>`,
		`<Company>ACME</Company>`,
	} {
		if !strings.Contains(app, want) {
			t.Errorf("app.xml does not contain %s", want)
		}
	}
}

func TestWriteToAddsWorksheet(t *testing.T) {
	wb := NewWorkbook()
	a := writeWorkbook(t, wb)
	if _, ok := a.files["xl/worksheets/sheet1.xml"]; !ok {
		t.Error("empty workbook saved without worksheet")
	}
	if !strings.Contains(a.files["xl/worksheets/sheet1.xml"], `<dimension ref="A1"/>`) {
		t.Error("empty worksheet dimension")
	}
}

func TestCompression(t *testing.T) {
	for _, level := range []int{flate.NoCompression, flate.BestSpeed, flate.BestCompression} {
		wb := NewWorkbook(WithCompression(level))
		ws, _ := wb.AddWorksheet("")
		ws.WriteString(0, 0, strings.Repeat("abc", 100), nil)

		a := writeWorkbook(t, wb)
		want := zip.Deflate
		if level == flate.NoCompression {
			want = zip.Store
		}
		for _, f := range a.zip.File {
			if f.Method != want {
				t.Errorf("level %d: %s method = %d, want %d", level, f.Name, f.Method, want)
			}
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteToSinkError(t *testing.T) {
	wb := NewWorkbook()
	wb.AddWorksheet("")
	if _, err := wb.WriteTo(failingWriter{}); !errors.Is(err, ErrIO) {
		t.Errorf("WriteTo() error = %v, want ErrIO", err)
	}
}

func TestSave(t *testing.T) {
	for _, fix := range []bool{false, true} {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.xlsx")

		wb := NewWorkbook(WithFixZip(fix), WithLogger(zaptest.NewLogger(t)))
		ws, _ := wb.AddWorksheet("")
		ws.WriteString(0, 0, "saved", format.New().SetItalic())

		if err := wb.Save(path); err != nil {
			t.Fatalf("Save(fix=%v) error = %v", fix, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		a := readArchive(t, data)
		if !strings.Contains(a.files["xl/sharedStrings.xml"], "<t>saved</t>") {
			t.Errorf("fix=%v: shared strings not found", fix)
		}
		if fix {
			for _, f := range a.zip.File {
				if f.Flags&0x8 != 0 {
					t.Errorf("%s still has data descriptor", f.Name)
				}
			}
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("fix=%v: temporary files left: %v", fix, entries)
		}
	}
}

func TestSaveIsRepeatable(t *testing.T) {
	wb := NewWorkbook(WithProperties(fixedProperties()))
	ws, _ := wb.AddWorksheet("")
	f := format.New().SetBold()
	ws.WriteString(0, 0, "x", f)

	first := writeWorkbook(t, wb)
	second := writeWorkbook(t, wb)
	for name, content := range first.files {
		if second.files[name] != content {
			t.Errorf("%s differs between saves", name)
		}
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	wb := NewWorkbook()
	err := wb.Save(filepath.Join(t.TempDir(), "missing", "out.xlsx"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("Save() error = %v, want ErrIO", err)
	}
}
