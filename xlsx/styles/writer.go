package styles

import (
	"strconv"

	"xlsxw/xlsx/format"
	"xlsxw/xlsx/xmlwriter"
)

const nsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

const (
	attrOne  = "1"
	attrZero = "0"
)

// Assemble writes complete styles.xml document. Every list is written in
// pool order.
func (t *Table) Assemble(w *xmlwriter.Writer) {
	w.Declaration()
	w.StartTag("styleSheet", xmlwriter.A("xmlns", nsMain))

	t.writeNumFmts(w)
	t.writeFonts(w)
	t.writeFills(w)
	t.writeBorders(w)

	w.StartTag("cellStyleXfs", xmlwriter.AInt("count", 1))
	w.EmptyTag("xf",
		xmlwriter.AInt("numFmtId", 0),
		xmlwriter.AInt("fontId", 0),
		xmlwriter.AInt("fillId", 0),
		xmlwriter.AInt("borderId", 0))
	w.EndTag("cellStyleXfs")

	t.writeCellXfs(w)

	w.StartTag("cellStyles", xmlwriter.AInt("count", 1))
	w.EmptyTag("cellStyle",
		xmlwriter.A("name", "Normal"),
		xmlwriter.AInt("xfId", 0),
		xmlwriter.AInt("builtinId", 0))
	w.EndTag("cellStyles")

	t.writeDXFs(w)

	w.EmptyTag("tableStyles",
		xmlwriter.AInt("count", 0),
		xmlwriter.A("defaultTableStyle", "TableStyleMedium9"),
		xmlwriter.A("defaultPivotStyle", "PivotStyleLight16"))

	w.EndTag("styleSheet")
}

func (t *Table) writeNumFmts(w *xmlwriter.Writer) {
	if len(t.customNumFmts) == 0 {
		return
	}
	w.StartTag("numFmts", xmlwriter.AInt("count", len(t.customNumFmts)))
	for _, nf := range t.customNumFmts {
		writeNumFmt(w, nf.ID, nf.Code)
	}
	w.EndTag("numFmts")
}

func writeNumFmt(w *xmlwriter.Writer, id int, code string) {
	w.EmptyTag("numFmt", xmlwriter.AInt("numFmtId", id), xmlwriter.A("formatCode", numFmtCode(id, code)))
}

func (t *Table) writeFonts(w *xmlwriter.Writer) {
	w.StartTag("fonts", xmlwriter.AInt("count", t.fonts.len()))
	for _, font := range t.fonts.items {
		writeFont(w, font, false)
	}
	w.EndTag("fonts")
}

func writeFont(w *xmlwriter.Writer, font format.Font, dxf bool) {
	w.StartTag("font")

	if font.Condense {
		w.EmptyTag("condense", xmlwriter.A("val", attrZero))
	}
	if font.Extend {
		w.EmptyTag("extend", xmlwriter.A("val", attrZero))
	}
	if font.Bold {
		w.EmptyTag("b")
	}
	if font.Italic {
		w.EmptyTag("i")
	}
	if font.Strikeout {
		w.EmptyTag("strike")
	}
	switch font.Underline {
	case format.UnderlineNone:
	case format.UnderlineSingle:
		w.EmptyTag("u")
	default:
		w.EmptyTag("u", xmlwriter.A("val", font.Underline.String()))
	}
	if font.Script != format.ScriptNone {
		w.EmptyTag("vertAlign", xmlwriter.A("val", font.Script.String()))
	}
	if !dxf {
		w.EmptyTag("sz", xmlwriter.A("val", strconv.FormatFloat(font.Size, 'f', -1, 64)))
	}

	switch {
	case font.Theme != 0:
		w.EmptyTag("color", xmlwriter.AInt("theme", int(font.Theme)))
	case !font.Color.IsAutomatic():
		w.EmptyTag("color", xmlwriter.A("rgb", font.Color.ARGB()))
	case !dxf:
		w.EmptyTag("color", xmlwriter.AInt("theme", 1))
	}

	if !dxf {
		w.EmptyTag("name", xmlwriter.A("val", font.Name))
		if font.Family != 0 {
			w.EmptyTag("family", xmlwriter.AInt("val", int(font.Family)))
		}
		if font.Charset != 0 {
			w.EmptyTag("charset", xmlwriter.AInt("val", int(font.Charset)))
		}
		switch {
		case font.Scheme != "":
			w.EmptyTag("scheme", xmlwriter.A("val", font.Scheme))
		case font.Name == "Calibri":
			w.EmptyTag("scheme", xmlwriter.A("val", "minor"))
		}
	}

	w.EndTag("font")
}

func (t *Table) writeFills(w *xmlwriter.Writer) {
	w.StartTag("fills", xmlwriter.AInt("count", t.fills.len()))
	for i, fill := range t.fills.items {
		if i < 2 {
			// reserved built-ins
			writePatternOnlyFill(w, fill.Pattern)
			continue
		}
		writeFill(w, fill, false)
	}
	w.EndTag("fills")
}

func writePatternOnlyFill(w *xmlwriter.Writer, p format.Pattern) {
	w.StartTag("fill")
	w.EmptyTag("patternFill", xmlwriter.A("patternType", p.String()))
	w.EndTag("fill")
}

func writeFill(w *xmlwriter.Writer, fill format.Fill, dxf bool) {
	if fill.Pattern != format.PatternNone && fill.Foreground.IsAutomatic() && fill.Background.IsAutomatic() {
		writePatternOnlyFill(w, fill.Pattern)
		return
	}

	w.StartTag("fill")
	if dxf && fill.Pattern <= format.PatternSolid {
		w.StartTag("patternFill")
	} else {
		w.StartTag("patternFill", xmlwriter.A("patternType", fill.Pattern.String()))
	}
	if !fill.Foreground.IsAutomatic() {
		w.EmptyTag("fgColor", xmlwriter.A("rgb", fill.Foreground.ARGB()))
	}
	switch {
	case !fill.Background.IsAutomatic():
		w.EmptyTag("bgColor", xmlwriter.A("rgb", fill.Background.ARGB()))
	case !dxf && fill.Pattern <= format.PatternSolid:
		w.EmptyTag("bgColor", xmlwriter.AInt("indexed", 64))
	}
	w.EndTag("patternFill")
	w.EndTag("fill")
}

func (t *Table) writeBorders(w *xmlwriter.Writer) {
	w.StartTag("borders", xmlwriter.AInt("count", t.borders.len()))
	for _, b := range t.borders.items {
		writeBorder(w, b, false)
	}
	w.EndTag("borders")
}

func writeBorder(w *xmlwriter.Writer, b format.Border, dxf bool) {
	var attrs []xmlwriter.Attr
	switch b.DiagonalType {
	case format.DiagonalUp:
		attrs = append(attrs, xmlwriter.A("diagonalUp", attrOne))
	case format.DiagonalDown:
		attrs = append(attrs, xmlwriter.A("diagonalDown", attrOne))
	case format.DiagonalUpDown:
		attrs = append(attrs, xmlwriter.A("diagonalUp", attrOne), xmlwriter.A("diagonalDown", attrOne))
	}
	// diagonal direction without line style means thin line
	if b.DiagonalType != format.DiagonalNone && b.Diagonal == format.BorderStyleNone {
		b.Diagonal = format.BorderStyleThin
	}

	w.StartTag("border", attrs...)
	writeSubBorder(w, "left", b.Left, b.LeftColor)
	writeSubBorder(w, "right", b.Right, b.RightColor)
	writeSubBorder(w, "top", b.Top, b.TopColor)
	writeSubBorder(w, "bottom", b.Bottom, b.BottomColor)
	if dxf {
		// conditional formats cannot have diagonal borders
		writeSubBorder(w, "vertical", format.BorderStyleNone, format.Automatic)
		writeSubBorder(w, "horizontal", format.BorderStyleNone, format.Automatic)
	} else {
		writeSubBorder(w, "diagonal", b.Diagonal, b.DiagonalColor)
	}
	w.EndTag("border")
}

func writeSubBorder(w *xmlwriter.Writer, name string, style format.BorderStyle, color format.Color) {
	if style == format.BorderStyleNone {
		w.EmptyTag(name)
		return
	}
	w.StartTag(name, xmlwriter.A("style", style.String()))
	if color.IsAutomatic() {
		w.EmptyTag("color", xmlwriter.A("auto", attrOne))
	} else {
		w.EmptyTag("color", xmlwriter.A("rgb", color.ARGB()))
	}
	w.EndTag(name)
}

func (t *Table) writeCellXfs(w *xmlwriter.Writer) {
	w.StartTag("cellXfs", xmlwriter.AInt("count", len(t.xfs)))
	for _, rec := range t.xfs {
		writeXF(w, rec)
	}
	w.EndTag("cellXfs")
}

func writeXF(w *xmlwriter.Writer, rec xf) {
	attrs := []xmlwriter.Attr{
		xmlwriter.AInt("numFmtId", rec.numFmtID),
		xmlwriter.AInt("fontId", rec.fontIndex),
		xmlwriter.AInt("fillId", rec.fillIndex),
		xmlwriter.AInt("borderId", rec.borderIndex),
		xmlwriter.AInt("xfId", 0),
	}
	if rec.numFmtID > 0 {
		attrs = append(attrs, xmlwriter.A("applyNumberFormat", attrOne))
	}
	if rec.hasFont {
		attrs = append(attrs, xmlwriter.A("applyFont", attrOne))
	}
	if rec.hasFill {
		attrs = append(attrs, xmlwriter.A("applyFill", attrOne))
	}
	if rec.hasBorder {
		attrs = append(attrs, xmlwriter.A("applyBorder", attrOne))
	}

	// NOTE: applyAlignment may be present without <alignment> child, this is
	// what Excel does for explicit bottom alignment.
	if rec.alignment.ApplyAlignment() {
		attrs = append(attrs, xmlwriter.A("applyAlignment", attrOne))
	}
	var align []xmlwriter.Attr
	if rec.alignment.HasAlignment() {
		align = alignmentAttrs(rec.alignment)
	}

	hasProtection := rec.protection.HasProtection()
	if hasProtection {
		attrs = append(attrs, xmlwriter.A("applyProtection", attrOne))
	}

	if len(align) == 0 && !hasProtection {
		w.EmptyTag("xf", attrs...)
		return
	}
	w.StartTag("xf", attrs...)
	if len(align) > 0 {
		w.EmptyTag("alignment", align...)
	}
	if hasProtection {
		w.EmptyTag("protection", protectionAttrs(rec.protection)...)
	}
	w.EndTag("xf")
}

var horizontalNames = map[format.Align]string{
	format.AlignLeft:         "left",
	format.AlignCenter:       "center",
	format.AlignRight:        "right",
	format.AlignFill:         "fill",
	format.AlignJustify:      "justify",
	format.AlignCenterAcross: "centerContinuous",
	format.AlignDistributed:  "distributed",
}

// bottom is Excel default and never written
var verticalNames = map[format.Align]string{
	format.AlignTop:                 "top",
	format.AlignVerticalCenter:      "center",
	format.AlignVerticalJustify:     "justify",
	format.AlignVerticalDistributed: "distributed",
}

func alignmentAttrs(a format.Alignment) []xmlwriter.Attr {
	// indent is only valid for some alignments, otherwise Excel assumes left
	if a.Indent != 0 &&
		a.Horizontal != format.AlignLeft && a.Horizontal != format.AlignRight && a.Horizontal != format.AlignDistributed &&
		a.Vertical != format.AlignTop && a.Vertical != format.AlignBottom && a.Vertical != format.AlignVerticalDistributed {
		a.Horizontal = format.AlignLeft
	}

	// mutually exclusive properties
	if a.TextWrap || a.Horizontal == format.AlignFill || a.Horizontal == format.AlignJustify || a.Horizontal == format.AlignDistributed {
		a.Shrink = false
	}
	if a.Horizontal != format.AlignDistributed || a.Indent != 0 {
		a.JustifyLast = false
	}

	var attrs []xmlwriter.Attr
	if name, ok := horizontalNames[a.Horizontal]; ok {
		attrs = append(attrs, xmlwriter.A("horizontal", name))
	}
	if a.JustifyLast {
		attrs = append(attrs, xmlwriter.A("justifyLastLine", attrOne))
	}
	if name, ok := verticalNames[a.Vertical]; ok {
		attrs = append(attrs, xmlwriter.A("vertical", name))
	}
	if a.Indent != 0 {
		attrs = append(attrs, xmlwriter.AInt("indent", int(a.Indent)))
	}
	if a.Rotation != 0 {
		attrs = append(attrs, xmlwriter.AInt("textRotation", int(a.Rotation)))
	}
	if a.TextWrap {
		attrs = append(attrs, xmlwriter.A("wrapText", attrOne))
	}
	if a.Shrink {
		attrs = append(attrs, xmlwriter.A("shrinkToFit", attrOne))
	}
	if a.ReadingDirection != 0 {
		attrs = append(attrs, xmlwriter.AInt("readingOrder", int(a.ReadingDirection)))
	}
	return attrs
}

func protectionAttrs(p format.Protection) []xmlwriter.Attr {
	var attrs []xmlwriter.Attr
	if !p.Locked {
		attrs = append(attrs, xmlwriter.A("locked", attrZero))
	}
	if p.Hidden {
		attrs = append(attrs, xmlwriter.A("hidden", attrOne))
	}
	return attrs
}

func (t *Table) writeDXFs(w *xmlwriter.Writer) {
	if len(t.dxfs) == 0 {
		w.EmptyTag("dxfs", xmlwriter.AInt("count", 0))
		return
	}
	w.StartTag("dxfs", xmlwriter.AInt("count", len(t.dxfs)))
	for _, d := range t.dxfs {
		w.StartTag("dxf")
		if hasDXFFont(d.font) {
			writeFont(w, d.font, true)
		}
		if d.numFmtID > 0 {
			writeNumFmt(w, d.numFmtID, d.numFormat)
		}
		if !d.fill.IsEmpty() {
			writeFill(w, d.fill, true)
		}
		if !d.border.IsEmpty() {
			writeBorder(w, d.border, true)
		}
		w.EndTag("dxf")
	}
	w.EndTag("dxfs")
}

// Only some font properties may be changed by conditional format.
func hasDXFFont(f format.Font) bool {
	return !f.Color.IsAutomatic() || f.Bold || f.Italic || f.Underline != format.UnderlineNone || f.Strikeout
}
