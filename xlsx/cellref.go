package xlsx

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxRows is number of rows in Excel worksheet.
	MaxRows = 1_048_576
	// MaxCols is number of columns in Excel worksheet.
	MaxCols = 16_384
)

// ColumnName converts zero based column index to letters: 0 -> "A", 26 -> "AA".
func ColumnName(col uint16) string {
	var buf [3]byte
	i := len(buf)
	n := int(col) + 1
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// CellName converts zero based row and column to A1 reference.
func CellName(row uint32, col uint16) string {
	return ColumnName(col) + strconv.FormatUint(uint64(row)+1, 10)
}

// RangeName returns "A1:B2" reference or single cell name when range has
// one cell.
func RangeName(firstRow uint32, firstCol uint16, lastRow uint32, lastCol uint16) string {
	if firstRow == lastRow && firstCol == lastCol {
		return CellName(firstRow, firstCol)
	}
	return CellName(firstRow, firstCol) + ":" + CellName(lastRow, lastCol)
}

func checkCell(row uint32, col uint16) error {
	if row >= MaxRows || col >= MaxCols {
		return fmt.Errorf("cell (%d, %d): %w", row, col, ErrRowCol)
	}
	return nil
}

// ParseColumnName converts column letters to zero based index.
func ParseColumnName(name string) (uint16, error) {
	if name == "" || len(name) > 3 {
		return 0, fmt.Errorf("column '%s': %w", name, ErrRowCol)
	}
	n := 0
	for _, r := range strings.ToUpper(name) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("column '%s': %w", name, ErrRowCol)
		}
		n = n*26 + int(r-'A') + 1
	}
	if n > MaxCols {
		return 0, fmt.Errorf("column '%s': %w", name, ErrRowCol)
	}
	return uint16(n - 1), nil
}

// ParseCellName converts A1 reference to zero based row and column, "$"
// markers are ignored.
func ParseCellName(name string) (uint32, uint16, error) {
	ref := strings.ReplaceAll(name, "$", "")
	split := strings.IndexFunc(ref, func(r rune) bool { return r >= '0' && r <= '9' })
	if split <= 0 {
		return 0, 0, fmt.Errorf("cell '%s': %w", name, ErrRowCol)
	}
	col, err := ParseColumnName(ref[:split])
	if err != nil {
		return 0, 0, fmt.Errorf("cell '%s': %w", name, ErrRowCol)
	}
	row, err := strconv.ParseUint(ref[split:], 10, 32)
	if err != nil || row == 0 || row > MaxRows {
		return 0, 0, fmt.Errorf("cell '%s': %w", name, ErrRowCol)
	}
	return uint32(row - 1), col, nil
}

// ParseRangeName accepts "A1:C3" or single cell.
func ParseRangeName(name string) (firstRow uint32, firstCol uint16, lastRow uint32, lastCol uint16, err error) {
	first, last, found := strings.Cut(name, ":")
	if firstRow, firstCol, err = ParseCellName(first); err != nil {
		return
	}
	if !found {
		return firstRow, firstCol, firstRow, firstCol, nil
	}
	lastRow, lastCol, err = ParseCellName(last)
	return
}
