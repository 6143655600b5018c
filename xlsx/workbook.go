// Package xlsx builds workbooks and packs them into Office Open XML
// spreadsheet files.
package xlsx

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"xlsxw/xlsx/format"
	"xlsxw/xlsx/styles"
)

const (
	maxSheetNameLength = 31
	invalidSheetChars  = `[]:*?/\`
)

// Option configures workbook.
type Option func(*Workbook)

// WithLogger sets logger, nop logger is used by default.
func WithLogger(log *zap.Logger) Option {
	return func(wb *Workbook) {
		if log != nil {
			wb.log = log
		}
	}
}

func WithProperties(props Properties) Option {
	return func(wb *Workbook) {
		wb.props = props
	}
}

// WithFixZip makes Save rewrite archive without data descriptors, some
// readers do not handle them.
func WithFixZip(fix bool) Option {
	return func(wb *Workbook) {
		wb.fixZip = fix
	}
}

// WithCompression sets flate compression level of archive entries,
// flate.NoCompression stores entries as is.
func WithCompression(level int) Option {
	return func(wb *Workbook) {
		wb.level = level
	}
}

// Workbook is a collection of worksheets. Style and shared strings tables
// are built anew on every save. Workbook is not safe for concurrent use.
type Workbook struct {
	log    *zap.Logger
	props  Properties
	fixZip bool
	level  int

	sheets []*Worksheet
	names  map[string]struct{}

	// style table of the last save
	styles *styles.Table
}

func NewWorkbook(opts ...Option) *Workbook {
	wb := &Workbook{
		log:   zap.NewNop(),
		level: flate.DefaultCompression,
		names: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(wb)
	}
	return wb
}

// AddWorksheet appends new worksheet. Empty name gives default "SheetN"
// name.
func (wb *Workbook) AddWorksheet(name string) (*Worksheet, error) {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", len(wb.sheets)+1)
	}
	if err := validateSheetName(name); err != nil {
		return nil, err
	}
	key := cases.Fold().String(name)
	if _, ok := wb.names[key]; ok {
		return nil, fmt.Errorf("%w %q: name is already used in the workbook", ErrSheetName, name)
	}
	wb.names[key] = struct{}{}

	ws := newWorksheet(name, len(wb.sheets))
	wb.sheets = append(wb.sheets, ws)
	return ws, nil
}

// AddFormat returns new format with default properties. Formats are
// registered when workbook is saved, until then they could be changed.
func (wb *Workbook) AddFormat() *format.Format {
	return format.New()
}

// Worksheets returns worksheets in workbook order.
func (wb *Workbook) Worksheets() []*Worksheet {
	out := make([]*Worksheet, len(wb.sheets))
	copy(out, wb.sheets)
	return out
}

// Properties returns document properties.
func (wb *Workbook) Properties() Properties {
	return wb.props
}

// Styles returns style table of the last save or nil.
func (wb *Workbook) Styles() *styles.Table {
	return wb.styles
}

func validateSheetName(name string) error {
	switch {
	case utf8.RuneCountInString(name) > maxSheetNameLength:
		return fmt.Errorf("%w %q: name is longer than %d characters", ErrSheetName, name, maxSheetNameLength)
	case strings.ContainsAny(name, invalidSheetChars):
		return fmt.Errorf("%w %q: name cannot contain any of %s", ErrSheetName, name, invalidSheetChars)
	case strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'"):
		return fmt.Errorf("%w %q: name cannot start or end with apostrophe", ErrSheetName, name)
	}
	return nil
}
