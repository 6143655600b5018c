// Package styles deduplicates cell formats into style records and writes
// styles.xml part.
package styles

import (
	"go.uber.org/zap"

	"xlsxw/xlsx/format"
)

// xf is single cell style record.
type xf struct {
	key         format.Key
	fontIndex   int
	fillIndex   int
	borderIndex int
	numFmtID    int
	hasFont     bool
	hasFill     bool
	hasBorder   bool
	alignment   format.Alignment
	protection  format.Protection
}

// dxf is differential format record used by conditional formatting.
type dxf struct {
	font      format.Font
	border    format.Border
	fill      format.Fill
	numFmtID  int
	numFormat string
}

// Table owns deduplication pools of a single workbook. Indexes are assigned
// in registration order and never change. Table is not safe for concurrent
// use.
type Table struct {
	log *zap.Logger

	xfs     []xf
	xfIndex map[format.Key]int

	fonts   *pool[format.Font]
	fills   *pool[format.Fill]
	borders *pool[format.Border]

	numFmts       map[string]int
	customNumFmts []NumFmt

	dxfs     []dxf
	dxfIndex map[format.Key]int

	frozen bool
}

// NewTable returns table with reserved entries: default font, "none" and
// "gray125" fills and empty border. Style pool starts empty, the first
// registered format gets index 0.
func NewTable(log *zap.Logger) *Table {
	if log == nil {
		log = zap.NewNop()
	}
	return &Table{
		log:      log.Named("styles"),
		xfIndex:  make(map[format.Key]int),
		fonts:    newPool(format.DefaultFont),
		fills:    newPool(format.DefaultFill, format.Gray125Fill),
		borders:  newPool(format.DefaultBorder),
		numFmts:  make(map[string]int),
		dxfIndex: make(map[format.Key]int),
	}
}

// Register assigns style index to the format. Formats with equal keys get
// the same index regardless of how they were built. Format is locked after
// registration.
func (t *Table) Register(f *format.Format) int {
	if t.frozen {
		panic("styles: format registered after style table was frozen")
	}
	if !f.Registered() {
		t.reportRejected(f)
	}

	fontIndex, _ := t.fonts.add(f.Font())
	fill := f.Fill().Normalized()
	fillIndex, _ := t.fills.add(fill)
	borderIndex, _ := t.borders.add(f.Border())

	key := f.Key()
	index, ok := t.xfIndex[key]
	if !ok {
		index = len(t.xfs)
		t.xfIndex[key] = index
		t.xfs = append(t.xfs, xf{
			key:         key,
			fontIndex:   fontIndex,
			fillIndex:   fillIndex,
			borderIndex: borderIndex,
			numFmtID:    t.numFmtID(f.NumFormat()),
			hasFont:     f.HasFont(),
			hasFill:     f.HasFill(),
			hasBorder:   f.HasBorder(),
			alignment:   f.Alignment(),
			protection:  f.Protection(),
		})
	}

	rec := t.xfs[index]
	if rec.fontIndex != fontIndex || rec.fillIndex != fillIndex || rec.borderIndex != borderIndex {
		panic("styles: style record references inconsistent sub-records")
	}
	f.Resolve(format.Resolved{
		XFIndex:     index,
		FontIndex:   rec.fontIndex,
		FillIndex:   rec.fillIndex,
		BorderIndex: rec.borderIndex,
		NumFormatID: rec.numFmtID,
		HasFont:     rec.hasFont,
		HasFill:     rec.hasFill,
		HasBorder:   rec.hasBorder,
	})
	return index
}

// RegisterDXF assigns differential format index. Differential formats have
// their own pool and do not use font, fill and border pools.
func (t *Table) RegisterDXF(f *format.Format) int {
	if t.frozen {
		panic("styles: differential format registered after style table was frozen")
	}
	if !f.Registered() {
		t.reportRejected(f)
	}

	key := f.Key()
	index, ok := t.dxfIndex[key]
	if !ok {
		code, legacy := f.NumFormat()
		index = len(t.dxfs)
		t.dxfIndex[key] = index
		t.dxfs = append(t.dxfs, dxf{
			font:      f.Font(),
			border:    f.Border(),
			fill:      f.Fill(),
			numFmtID:  t.numFmtID(code, legacy),
			numFormat: code,
		})
	}
	f.ResolveDXF(index)
	return index
}

func (t *Table) reportRejected(f *format.Format) {
	for _, err := range f.Errors() {
		t.log.Warn("Format property ignored", zap.Error(err))
	}
}

// Freeze makes table read only, any further registration is a bug.
func (t *Table) Freeze() {
	t.frozen = true
}

func (t *Table) Frozen() bool {
	return t.frozen
}

func (t *Table) XFCount() int     { return len(t.xfs) }
func (t *Table) DXFCount() int    { return len(t.dxfs) }
func (t *Table) FontCount() int   { return t.fonts.len() }
func (t *Table) FillCount() int   { return t.fills.len() }
func (t *Table) BorderCount() int { return t.borders.len() }

// Font returns font stored at index.
func (t *Table) Font(index int) format.Font {
	return t.fonts.items[index]
}

// Fill returns fill stored at index.
func (t *Table) Fill(index int) format.Fill {
	return t.fills.items[index]
}

// NumFmts returns custom number formats in id order.
func (t *Table) NumFmts() []NumFmt {
	out := make([]NumFmt, len(t.customNumFmts))
	copy(out, t.customNumFmts)
	return out
}
