package styles

import (
	"strconv"

	"xlsxw/utils/debug"
)

// Dump returns human readable tree of all pools with canonical keys, used in
// debug reports.
func (t *Table) Dump() string {
	tw := debug.NewTreeWriter()

	tw.Section(0, "cell formats", len(t.xfs))
	for i, rec := range t.xfs {
		tw.Line(1, "[%d] numFmt=%d font=%d fill=%d border=%d", i, rec.numFmtID, rec.fontIndex, rec.fillIndex, rec.borderIndex)
		tw.TextBlock(2, "key", rec.key.String())
	}
	tw.Section(0, "number formats", len(t.customNumFmts))
	for _, nf := range t.customNumFmts {
		tw.TextBlock(1, "["+strconv.Itoa(nf.ID)+"]", nf.Code)
	}
	tw.Section(0, "fonts", t.fonts.len())
	for i, f := range t.fonts.items {
		tw.Line(1, "[%d] %s", i, f)
	}
	tw.Section(0, "fills", t.fills.len())
	for i, f := range t.fills.items {
		tw.Line(1, "[%d] %s", i, f)
	}
	tw.Section(0, "borders", t.borders.len())
	for i, b := range t.borders.items {
		tw.Line(1, "[%d] %s", i, b)
	}
	tw.Section(0, "differential formats", len(t.dxfs))
	for i, d := range t.dxfs {
		tw.Line(1, "[%d] numFmt=%d", i, d.numFmtID)
		tw.Line(2, "font %s", d.font)
		tw.Line(2, "fill %s", d.fill)
		tw.Line(2, "border %s", d.border)
	}
	return tw.String()
}
