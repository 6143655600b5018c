package xlsx

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"xlsxw/xlsx/format"
)

const (
	// DefaultColumnWidth is Excel default width in characters.
	DefaultColumnWidth = 8.43
	// DefaultRowHeight is Excel default height in points.
	DefaultRowHeight = 15.0

	// Excel limit for a string in a cell.
	maxStringLength = 32_767
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellString
	cellNumber
	cellBool
	cellFormula
)

type cell struct {
	kind    cellKind
	text    string // string value or formula
	number  float64
	boolean bool
	format  *format.Format
}

type row struct {
	cells  map[uint16]*cell
	height float64
	format *format.Format
	custom bool
}

type column struct {
	first, last uint16
	width       float64
	format      *format.Format
}

// Worksheet holds sparse cell grid of a single sheet. Formats attached to
// cells are registered with the style table when workbook is saved, they
// should not be changed after that.
type Worksheet struct {
	name  string
	index int

	rows    map[uint32]*row
	columns []column
	cond    []conditional

	// used range
	minRow, maxRow uint32
	minCol, maxCol uint16
	empty          bool
}

func newWorksheet(name string, index int) *Worksheet {
	return &Worksheet{
		name:  name,
		index: index,
		rows:  make(map[uint32]*row),
		empty: true,
	}
}

func (ws *Worksheet) Name() string {
	return ws.name
}

// Index is zero based position of the worksheet in the workbook.
func (ws *Worksheet) Index() int {
	return ws.index
}

func (ws *Worksheet) row(r uint32) *row {
	rr, ok := ws.rows[r]
	if !ok {
		rr = &row{height: DefaultRowHeight}
		ws.rows[r] = rr
	}
	return rr
}

func (ws *Worksheet) touch(r uint32, c uint16) {
	if ws.empty {
		ws.minRow, ws.maxRow, ws.minCol, ws.maxCol = r, r, c, c
		ws.empty = false
		return
	}
	ws.minRow, ws.maxRow = min(ws.minRow, r), max(ws.maxRow, r)
	ws.minCol, ws.maxCol = min(ws.minCol, c), max(ws.maxCol, c)
}

func (ws *Worksheet) put(r uint32, c uint16, cl *cell) error {
	if err := checkCell(r, c); err != nil {
		return err
	}
	rr := ws.row(r)
	if rr.cells == nil {
		rr.cells = make(map[uint16]*cell)
	}
	rr.cells[c] = cl
	ws.touch(r, c)
	return nil
}

// WriteString stores string cell. Format may be nil.
func (ws *Worksheet) WriteString(r uint32, c uint16, s string, f *format.Format) error {
	if len(s) > maxStringLength {
		return fmt.Errorf("string in %s is longer than %d characters", CellName(r, c), maxStringLength)
	}
	return ws.put(r, c, &cell{kind: cellString, text: s, format: f})
}

// WriteNumber stores numeric cell. NaN and infinities are not supported by
// Excel.
func (ws *Worksheet) WriteNumber(r uint32, c uint16, n float64, f *format.Format) error {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("number in %s is not finite: %v", CellName(r, c), n)
	}
	return ws.put(r, c, &cell{kind: cellNumber, number: n, format: f})
}

func (ws *Worksheet) WriteBool(r uint32, c uint16, b bool, f *format.Format) error {
	return ws.put(r, c, &cell{kind: cellBool, boolean: b, format: f})
}

// WriteBlank stores formatted empty cell. Without format there is nothing to
// store and call is ignored.
func (ws *Worksheet) WriteBlank(r uint32, c uint16, f *format.Format) error {
	if f == nil {
		return checkCell(r, c)
	}
	return ws.put(r, c, &cell{kind: cellBlank, format: f})
}

// WriteFormula stores formula, leading "=" is optional. Formula is not
// evaluated, Excel recalculates it on load.
func (ws *Worksheet) WriteFormula(r uint32, c uint16, formula string, f *format.Format) error {
	formula = strings.TrimPrefix(formula, "=")
	if formula == "" {
		return fmt.Errorf("empty formula in %s", CellName(r, c))
	}
	return ws.put(r, c, &cell{kind: cellFormula, text: formula, format: f})
}

// SetColumn sets width in characters and format of columns first..last.
// Zero width keeps default width.
func (ws *Worksheet) SetColumn(first, last uint16, width float64, f *format.Format) error {
	if first > last {
		first, last = last, first
	}
	if err := checkCell(0, last); err != nil {
		return err
	}
	if width < 0 {
		return fmt.Errorf("negative width %v for columns %s:%s", width, ColumnName(first), ColumnName(last))
	}
	if width == 0 {
		width = DefaultColumnWidth
	}
	// later definitions replace earlier ones for the same span
	ws.columns = slices.DeleteFunc(ws.columns, func(c column) bool {
		return c.first == first && c.last == last
	})
	ws.columns = append(ws.columns, column{first: first, last: last, width: width, format: f})
	return nil
}

// SetRow sets height in points and format of the row. Zero height keeps
// default height.
func (ws *Worksheet) SetRow(r uint32, height float64, f *format.Format) error {
	if err := checkCell(r, 0); err != nil {
		return err
	}
	if height < 0 || height > 409 {
		return fmt.Errorf("row %d height %v is out of range", r+1, height)
	}
	if height == 0 {
		height = DefaultRowHeight
	}
	rr := ws.row(r)
	rr.height = height
	rr.format = f
	rr.custom = true
	return nil
}

// Dimension returns used range reference, "A1" for empty worksheet.
func (ws *Worksheet) Dimension() string {
	if ws.empty {
		return "A1"
	}
	return RangeName(ws.minRow, ws.minCol, ws.maxRow, ws.maxCol)
}

func (ws *Worksheet) sortedRows() []uint32 {
	keys := make([]uint32, 0, len(ws.rows))
	for r := range ws.rows {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

func (ws *Worksheet) sortedColumns() []column {
	cols := slices.Clone(ws.columns)
	slices.SortStableFunc(cols, func(a, b column) int {
		return int(a.first) - int(b.first)
	})
	return cols
}

func sortedCells(rr *row) []uint16 {
	keys := make([]uint16, 0, len(rr.cells))
	for c := range rr.cells {
		keys = append(keys, c)
	}
	slices.Sort(keys)
	return keys
}

// columnWidth converts width in characters to the value Excel stores, which
// includes cell padding.
func columnWidth(width float64) float64 {
	const (
		maxDigitWidth = 7.0
		padding       = 5.0
	)
	if width < 1 {
		return math.Trunc(math.Round(width*(maxDigitWidth+padding))/maxDigitWidth*256) / 256
	}
	return math.Trunc((math.Round(width*maxDigitWidth)+padding)/maxDigitWidth*256) / 256
}
