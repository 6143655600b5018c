package xlsx

import (
	"strconv"

	"xlsxw/xlsx/format"
	"xlsxw/xlsx/sst"
	"xlsxw/xlsx/styles"
	"xlsxw/xlsx/xmlwriter"
)

const (
	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// sheetWriter serializes one worksheet, registering formats and strings in
// the order they are written.
type sheetWriter struct {
	w       *xmlwriter.Writer
	styles  *styles.Table
	strings *sst.Table
}

func (sw *sheetWriter) style(f *format.Format) int {
	if f == nil {
		return 0
	}
	return sw.styles.Register(f)
}

// registerFormats assigns style indexes before anything is written: cell
// formats in row/column order first, then column formats, then row formats.
func (sw *sheetWriter) registerFormats(ws *Worksheet) {
	rows := ws.sortedRows()
	for _, r := range rows {
		rr := ws.rows[r]
		for _, c := range sortedCells(rr) {
			sw.style(rr.cells[c].format)
		}
	}
	for _, c := range ws.sortedColumns() {
		sw.style(c.format)
	}
	for _, r := range rows {
		sw.style(ws.rows[r].format)
	}
}

func (sw *sheetWriter) assemble(ws *Worksheet, selected bool) {
	w := sw.w
	sw.registerFormats(ws)

	w.Declaration()
	w.StartTag("worksheet", xmlwriter.A("xmlns", nsMain), xmlwriter.A("xmlns:r", nsRelationships))
	w.EmptyTag("dimension", xmlwriter.A("ref", ws.Dimension()))

	w.StartTag("sheetViews")
	if selected {
		w.EmptyTag("sheetView", xmlwriter.A("tabSelected", "1"), xmlwriter.AInt("workbookViewId", 0))
	} else {
		w.EmptyTag("sheetView", xmlwriter.AInt("workbookViewId", 0))
	}
	w.EndTag("sheetViews")

	w.EmptyTag("sheetFormatPr", xmlwriter.A("defaultRowHeight", formatNumber(DefaultRowHeight)))

	sw.writeColumns(ws)
	sw.writeSheetData(ws)
	sw.writeConditionalFormats(ws)

	w.EmptyTag("pageMargins",
		xmlwriter.A("left", "0.7"),
		xmlwriter.A("right", "0.7"),
		xmlwriter.A("top", "0.75"),
		xmlwriter.A("bottom", "0.75"),
		xmlwriter.A("header", "0.3"),
		xmlwriter.A("footer", "0.3"))
	w.EndTag("worksheet")
}

func (sw *sheetWriter) writeColumns(ws *Worksheet) {
	if len(ws.columns) == 0 {
		return
	}
	sw.w.StartTag("cols")
	for _, c := range ws.sortedColumns() {
		attrs := []xmlwriter.Attr{
			xmlwriter.AInt("min", int(c.first)+1),
			xmlwriter.AInt("max", int(c.last)+1),
			xmlwriter.A("width", formatNumber(columnWidth(c.width))),
		}
		if s := sw.style(c.format); s > 0 {
			attrs = append(attrs, xmlwriter.AInt("style", s))
		}
		if c.width != DefaultColumnWidth {
			attrs = append(attrs, xmlwriter.A("customWidth", "1"))
		}
		sw.w.EmptyTag("col", attrs...)
	}
	sw.w.EndTag("cols")
}

func (sw *sheetWriter) writeSheetData(ws *Worksheet) {
	if len(ws.rows) == 0 {
		sw.w.EmptyTag("sheetData")
		return
	}
	sw.w.StartTag("sheetData")
	for _, r := range ws.sortedRows() {
		rr := ws.rows[r]

		attrs := []xmlwriter.Attr{xmlwriter.AInt("r", int(r)+1)}
		if s := sw.style(rr.format); s > 0 {
			attrs = append(attrs, xmlwriter.AInt("s", s), xmlwriter.A("customFormat", "1"))
		}
		if rr.height != DefaultRowHeight {
			attrs = append(attrs, xmlwriter.A("ht", formatNumber(rr.height)), xmlwriter.A("customHeight", "1"))
		}

		if len(rr.cells) == 0 {
			sw.w.EmptyTag("row", attrs...)
			continue
		}
		sw.w.StartTag("row", attrs...)
		for _, c := range sortedCells(rr) {
			sw.writeCell(r, c, rr.cells[c])
		}
		sw.w.EndTag("row")
	}
	sw.w.EndTag("sheetData")
}

func (sw *sheetWriter) writeCell(r uint32, c uint16, cl *cell) {
	w := sw.w

	attrs := []xmlwriter.Attr{xmlwriter.A("r", CellName(r, c))}
	if s := sw.style(cl.format); s > 0 {
		attrs = append(attrs, xmlwriter.AInt("s", s))
	}

	switch cl.kind {
	case cellBlank:
		w.EmptyTag("c", attrs...)
	case cellString:
		attrs = append(attrs, xmlwriter.A("t", "s"))
		w.StartTag("c", attrs...)
		w.DataElement("v", strconv.Itoa(sw.strings.Add(cl.text)))
		w.EndTag("c")
	case cellNumber:
		w.StartTag("c", attrs...)
		w.DataElement("v", formatNumber(cl.number))
		w.EndTag("c")
	case cellBool:
		attrs = append(attrs, xmlwriter.A("t", "b"))
		w.StartTag("c", attrs...)
		if cl.boolean {
			w.DataElement("v", "1")
		} else {
			w.DataElement("v", "0")
		}
		w.EndTag("c")
	case cellFormula:
		w.StartTag("c", attrs...)
		w.DataElement("f", cl.text)
		w.DataElement("v", "0")
		w.EndTag("c")
	}
}

func (sw *sheetWriter) writeConditionalFormats(ws *Worksheet) {
	for i, cf := range ws.cond {
		sw.w.StartTag("conditionalFormatting", xmlwriter.A("sqref", cf.sqref))

		attrs := []xmlwriter.Attr{xmlwriter.A("type", "cellIs")}
		if cf.rule.Format != nil {
			attrs = append(attrs, xmlwriter.AInt("dxfId", sw.styles.RegisterDXF(cf.rule.Format)))
		}
		attrs = append(attrs,
			xmlwriter.AInt("priority", i+1),
			xmlwriter.A("operator", cf.rule.Operator.String()))

		sw.w.StartTag("cfRule", attrs...)
		sw.w.DataElement("formula", cf.rule.Value)
		if cf.rule.Operator == OperatorBetween || cf.rule.Operator == OperatorNotBetween {
			sw.w.DataElement("formula", cf.rule.Maximum)
		}
		sw.w.EndTag("cfRule")
		sw.w.EndTag("conditionalFormatting")
	}
}

// formatNumber writes number the shortest way without exponent.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
