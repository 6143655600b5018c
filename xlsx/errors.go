package xlsx

import "errors"

var (
	// ErrSheetName is returned for invalid or duplicate worksheet names.
	ErrSheetName = errors.New("invalid worksheet name")
	// ErrRowCol is returned when cell is outside of Excel limits.
	ErrRowCol = errors.New("row or column is out of range")
	// ErrIO wraps failures of the output sink. Workbook could be saved again.
	ErrIO = errors.New("unable to write workbook")
)
