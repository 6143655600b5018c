package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/multierr"

	"xlsxw/xlsx"
	"xlsxw/xlsx/format"
)

// resolveFormats combines stylesheet classes with inline definitions. Inline
// definition overrides class with the same name, "base" equal to its own
// name refers to the class. Stylesheet formats are cloned, so the same
// templates could be used for many workbooks.
func resolveFormats(classes map[string]*format.Format, inline map[string]FormatDescription) (map[string]*format.Format, error) {
	out := make(map[string]*format.Format, len(classes)+len(inline))
	for name, f := range classes {
		out[name] = f.Clone()
	}

	done := make(map[string]bool, len(inline))
	active := make(map[string]bool)

	var resolve func(name string) (*format.Format, error)
	resolve = func(name string) (*format.Format, error) {
		fd, ok := inline[name]
		if !ok || done[name] {
			if f, ok := out[name]; ok {
				return f, nil
			}
			return nil, fmt.Errorf("unknown format %q", name)
		}
		if active[name] {
			return nil, fmt.Errorf("format %q is based on itself", name)
		}
		active[name] = true
		defer delete(active, name)

		f := format.New()
		switch {
		case fd.Base == name:
			c, ok := classes[name]
			if !ok {
				return nil, fmt.Errorf("format %q is based on missing stylesheet class", name)
			}
			f = c.Clone()
		case fd.Base != "":
			base, err := resolve(fd.Base)
			if err != nil {
				return nil, fmt.Errorf("format %q: %w", name, err)
			}
			f = base.Clone()
		}
		out[name] = fd.Apply(f)
		done[name] = true
		return out[name], nil
	}

	var errs error
	for _, name := range slices.Sorted(maps.Keys(inline)) {
		if _, err := resolve(name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return out, errs
}

// buildWorkbook fills workbook according to description. All problems
// found are reported together, workbook is still usable for whatever was
// correct.
func buildWorkbook(desc *Description, formats map[string]*format.Format, opts ...xlsx.Option) (*xlsx.Workbook, error) {
	wb := xlsx.NewWorkbook(opts...)

	var errs error
	for _, sd := range desc.Sheets {
		ws, err := wb.AddWorksheet(sd.Name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		errs = multierr.Append(errs, fillSheet(ws, &sd, formats))
	}
	return wb, errs
}

func lookupFormat(formats map[string]*format.Format, name string) (*format.Format, error) {
	if name == "" {
		return nil, nil
	}
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return f, nil
}

func fillSheet(ws *xlsx.Worksheet, sd *SheetDescription, formats map[string]*format.Format) (errs error) {
	fail := func(where string, err error) {
		errs = multierr.Append(errs, fmt.Errorf("sheet %q, %s: %w", ws.Name(), where, err))
	}

	for _, cd := range sd.Columns {
		where := "columns " + cd.Range
		first, last, err := columnRange(cd.Range)
		if err != nil {
			fail(where, err)
			continue
		}
		f, err := lookupFormat(formats, cd.Format)
		if err != nil {
			fail(where, err)
			continue
		}
		if err := ws.SetColumn(first, last, cd.Width, f); err != nil {
			fail(where, err)
		}
	}

	for _, rd := range sd.Rows {
		where := fmt.Sprintf("row %d", rd.Row)
		if rd.Row == 0 {
			fail(where, fmt.Errorf("rows are numbered from 1: %w", xlsx.ErrRowCol))
			continue
		}
		f, err := lookupFormat(formats, rd.Format)
		if err != nil {
			fail(where, err)
			continue
		}
		if err := ws.SetRow(rd.Row-1, rd.Height, f); err != nil {
			fail(where, err)
		}
	}

	for _, cd := range sd.Cells {
		where := "cell " + cd.Ref
		row, col, err := xlsx.ParseCellName(cd.Ref)
		if err != nil {
			fail(where, err)
			continue
		}
		f, err := lookupFormat(formats, cd.Format)
		if err != nil {
			fail(where, err)
			continue
		}
		if err := writeCell(ws, row, col, &cd, f); err != nil {
			fail(where, err)
		}
	}

	for _, cd := range sd.Conditional {
		where := "conditional format " + cd.Range
		fr, fc, lr, lc, err := xlsx.ParseRangeName(cd.Range)
		if err != nil {
			fail(where, err)
			continue
		}
		f, err := lookupFormat(formats, cd.Format)
		if err != nil {
			fail(where, err)
			continue
		}
		rule := xlsx.CellRule{Operator: cd.Operator, Value: cd.Value, Maximum: cd.Maximum, Format: f}
		if err := ws.AddConditionalFormat(fr, fc, lr, lc, rule); err != nil {
			fail(where, err)
		}
	}
	return errs
}

func writeCell(ws *xlsx.Worksheet, row uint32, col uint16, cd *CellDescription, f *format.Format) error {
	values := 0
	for _, set := range []bool{cd.String != nil, cd.Number != nil, cd.Bool != nil, cd.Formula != ""} {
		if set {
			values++
		}
	}
	if values > 1 {
		return errors.New("only one of string, number, bool or formula could be set")
	}

	switch {
	case cd.String != nil:
		return ws.WriteString(row, col, *cd.String, f)
	case cd.Number != nil:
		return ws.WriteNumber(row, col, *cd.Number, f)
	case cd.Bool != nil:
		return ws.WriteBool(row, col, *cd.Bool, f)
	case cd.Formula != "":
		return ws.WriteFormula(row, col, cd.Formula, f)
	default:
		return ws.WriteBlank(row, col, f)
	}
}
