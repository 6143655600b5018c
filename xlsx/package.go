package xlsx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	fixzip "github.com/hidez8891/zip"
	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"

	"xlsxw/xlsx/format"
	"xlsxw/xlsx/sst"
	"xlsxw/xlsx/styles"
	"xlsxw/xlsx/xmlwriter"
)

const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	relDocument     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	relPackage      = "http://schemas.openxmlformats.org/package/2006/relationships/"
	ctSpreadsheetML = "application/vnd.openxmlformats-officedocument.spreadsheetml."
	ctOfficeDoc     = "application/vnd.openxmlformats-officedocument."
)

// Excel stores all archive entries with MS-DOS epoch.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name string
	data []byte
}

// assemble serializes all parts. Formats are registered worksheet by
// worksheet, default format always gets index 0.
func (wb *Workbook) assemble() ([]part, error) {
	tbl := styles.NewTable(wb.log)
	strs := sst.New()
	tbl.Register(format.New())

	w := xmlwriter.New()
	defer w.Release()

	// part content is copied out, buffer is reused for the next part
	take := func(name string) part {
		p := part{name: name, data: bytes.Clone(w.Bytes())}
		w.Reset()
		return p
	}

	sheets := make([]part, 0, len(wb.sheets))
	names := make([]string, 0, len(wb.sheets))
	sw := &sheetWriter{w: w, styles: tbl, strings: strs}
	for i, ws := range wb.sheets {
		sw.assemble(ws, i == 0)
		sheets = append(sheets, take(sheetPartName(i)))
		names = append(names, ws.name)
	}

	tbl.Freeze()
	wb.styles = tbl

	tbl.Assemble(w)
	stylesPart := take("xl/styles.xml")

	var stringsPart *part
	if !strs.Empty() {
		strs.Assemble(w)
		p := take("xl/sharedStrings.xml")
		stringsPart = &p
	}

	wb.assembleWorkbook(w)
	workbookPart := take("xl/workbook.xml")

	created := wb.props.Created
	if created.IsZero() {
		created = time.Now()
	}
	assembleApp(w, &wb.props, names)
	appPart := take("docProps/app.xml")
	assembleCore(w, &wb.props, created)
	corePart := take("docProps/core.xml")

	contentTypes, err := contentTypesPart(len(wb.sheets), stringsPart != nil)
	if err != nil {
		return nil, err
	}
	rootRels, err := rootRelsPart()
	if err != nil {
		return nil, err
	}
	workbookRels, err := workbookRelsPart(len(wb.sheets), stringsPart != nil)
	if err != nil {
		return nil, err
	}

	parts := []part{
		contentTypes,
		rootRels,
		appPart,
		corePart,
		workbookPart,
		workbookRels,
		{name: "xl/theme/theme1.xml", data: []byte(officeTheme)},
		stylesPart,
	}
	if stringsPart != nil {
		parts = append(parts, *stringsPart)
	}
	parts = append(parts, sheets...)

	wb.log.Debug("Workbook assembled",
		zap.Int("worksheets", len(wb.sheets)),
		zap.Int("styles", tbl.XFCount()),
		zap.Int("fonts", tbl.FontCount()),
		zap.Int("fills", tbl.FillCount()),
		zap.Int("strings", strs.UniqueCount()))
	return parts, nil
}

func sheetPartName(i int) string {
	return "xl/worksheets/sheet" + strconv.Itoa(i+1) + ".xml"
}

func (wb *Workbook) assembleWorkbook(w *xmlwriter.Writer) {
	w.Declaration()
	w.StartTag("workbook", xmlwriter.A("xmlns", nsMain), xmlwriter.A("xmlns:r", nsRelationships))
	w.EmptyTag("fileVersion",
		xmlwriter.A("appName", "xl"),
		xmlwriter.AInt("lastEdited", 4),
		xmlwriter.AInt("lowestEdited", 4),
		xmlwriter.AInt("rupBuild", 4505))
	w.EmptyTag("workbookPr", xmlwriter.AInt("defaultThemeVersion", 124226))
	w.StartTag("bookViews")
	w.EmptyTag("workbookView",
		xmlwriter.AInt("xWindow", 240),
		xmlwriter.AInt("yWindow", 15),
		xmlwriter.AInt("windowWidth", 16095),
		xmlwriter.AInt("windowHeight", 9660))
	w.EndTag("bookViews")
	w.StartTag("sheets")
	for i, ws := range wb.sheets {
		w.EmptyTag("sheet",
			xmlwriter.A("name", ws.name),
			xmlwriter.AInt("sheetId", i+1),
			xmlwriter.A("r:id", "rId"+strconv.Itoa(i+1)))
	}
	w.EndTag("sheets")
	w.EmptyTag("calcPr", xmlwriter.AInt("calcId", 124519), xmlwriter.A("fullCalcOnLoad", "1"))
	w.EndTag("workbook")
}

func newManifest() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	doc.CreateText("\n")
	return doc
}

func manifestPart(name string, doc *etree.Document) (part, error) {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return part{}, fmt.Errorf("unable to serialize %s: %w", name, err)
	}
	return part{name: name, data: buf.Bytes()}, nil
}

func contentTypesPart(sheets int, sharedStrings bool) (part, error) {
	doc := newManifest()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	def := func(ext, ct string) {
		el := types.CreateElement("Default")
		el.CreateAttr("Extension", ext)
		el.CreateAttr("ContentType", ct)
	}
	override := func(name, ct string) {
		el := types.CreateElement("Override")
		el.CreateAttr("PartName", "/"+name)
		el.CreateAttr("ContentType", ct)
	}

	def("rels", "application/vnd.openxmlformats-package.relationships+xml")
	def("xml", "application/xml")
	override("docProps/app.xml", ctOfficeDoc+"extended-properties+xml")
	override("docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	override("xl/styles.xml", ctSpreadsheetML+"styles+xml")
	override("xl/theme/theme1.xml", ctOfficeDoc+"theme+xml")
	override("xl/workbook.xml", ctSpreadsheetML+"sheet.main+xml")
	for i := range sheets {
		override(sheetPartName(i), ctSpreadsheetML+"worksheet+xml")
	}
	if sharedStrings {
		override("xl/sharedStrings.xml", ctSpreadsheetML+"sharedStrings+xml")
	}
	return manifestPart("[Content_Types].xml", doc)
}

type relationship struct {
	typ    string
	target string
}

func relsPart(name string, rels []relationship) (part, error) {
	doc := newManifest()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsPackageRels)
	for i, rel := range rels {
		el := root.CreateElement("Relationship")
		el.CreateAttr("Id", "rId"+strconv.Itoa(i+1))
		el.CreateAttr("Type", rel.typ)
		el.CreateAttr("Target", rel.target)
	}
	return manifestPart(name, doc)
}

func rootRelsPart() (part, error) {
	return relsPart("_rels/.rels", []relationship{
		{relDocument + "officeDocument", "xl/workbook.xml"},
		{relPackage + "metadata/core-properties", "docProps/core.xml"},
		{relDocument + "extended-properties", "docProps/app.xml"},
	})
}

// Worksheets take first ids, workbook.xml refers to them by position.
func workbookRelsPart(sheets int, sharedStrings bool) (part, error) {
	rels := make([]relationship, 0, sheets+3)
	for i := range sheets {
		rels = append(rels, relationship{relDocument + "worksheet", "worksheets/sheet" + strconv.Itoa(i+1) + ".xml"})
	}
	rels = append(rels,
		relationship{relDocument + "theme", "theme/theme1.xml"},
		relationship{relDocument + "styles", "styles.xml"})
	if sharedStrings {
		rels = append(rels, relationship{relDocument + "sharedStrings", "sharedStrings.xml"})
	}
	return relsPart("xl/_rels/workbook.xml.rels", rels)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes complete xlsx archive. Sink failures are wrapped with ErrIO.
func (wb *Workbook) WriteTo(dst io.Writer) (int64, error) {
	if len(wb.sheets) == 0 {
		if _, err := wb.AddWorksheet(""); err != nil {
			return 0, err
		}
	}

	parts, err := wb.assemble()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: dst}
	zw := zip.NewWriter(cw)
	level := wb.level
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	method := zip.Deflate
	if level == flate.NoCompression {
		method = zip.Store
	}

	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: method, Modified: zipEpoch})
		if err != nil {
			return cw.n, fmt.Errorf("%w: %s: %w", ErrIO, p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return cw.n, fmt.Errorf("%w: %s: %w", ErrIO, p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("%w: unable to finalize archive: %w", ErrIO, err)
	}
	return cw.n, nil
}

// Save writes workbook to file. Content goes to temporary file next to the
// destination first, existing file is replaced only after successful write.
func (wb *Workbook) Save(path string) error {
	dir, name := filepath.Split(path)
	tmpName := filepath.Join(dir, "."+name+"."+uuid.NewString())

	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("%w: unable to create output file: %w", ErrIO, err)
	}
	defer os.Remove(tmpName)
	defer f.Close()

	if _, err := wb.WriteTo(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: unable to finalize output file: %w", ErrIO, err)
	}

	if wb.fixZip {
		wb.log.Debug("Rewriting archive without data descriptors", zap.String("file", path))
		return copyZipWithoutDataDescriptors(tmpName, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func copyZipWithoutDataDescriptors(from, to string) error {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("%w: unable to create target file (%s): %w", ErrIO, to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("%w: unable to read archive file (%s): %w", ErrIO, from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("%w: unable to write target file (%s): %w", ErrIO, to, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: unable to finalize target file (%s): %w", ErrIO, to, err)
	}
	return out.Close()
}
