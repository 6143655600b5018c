package xlsx

import (
	"fmt"

	"xlsxw/xlsx/format"
)

//go:generate go tool go-enum --marshal --names

// Cell value comparison of conditional format, names are Excel operator values.
// ENUM(between, notBetween, equal, notEqual, greaterThan, lessThan, greaterThanOrEqual, lessThanOrEqual)
type Operator uint8

// CellRule highlights cells whose value satisfies comparison. Maximum is only
// used by between and notBetween operators.
type CellRule struct {
	Operator Operator
	Value    string
	Maximum  string
	Format   *format.Format
}

type conditional struct {
	sqref string
	rule  CellRule
}

// AddConditionalFormat applies rule to the range. Rule format becomes
// differential format of the workbook, only font color and style, fill,
// border and number format are honored by Excel.
func (ws *Worksheet) AddConditionalFormat(firstRow uint32, firstCol uint16, lastRow uint32, lastCol uint16, rule CellRule) error {
	if firstRow > lastRow {
		firstRow, lastRow = lastRow, firstRow
	}
	if firstCol > lastCol {
		firstCol, lastCol = lastCol, firstCol
	}
	if err := checkCell(lastRow, lastCol); err != nil {
		return err
	}
	if !rule.Operator.IsValid() {
		return fmt.Errorf("conditional format operator %d: %w", rule.Operator, ErrInvalidOperator)
	}
	if rule.Value == "" {
		return fmt.Errorf("conditional format for %s has no value", RangeName(firstRow, firstCol, lastRow, lastCol))
	}
	if (rule.Operator == OperatorBetween || rule.Operator == OperatorNotBetween) && rule.Maximum == "" {
		return fmt.Errorf("conditional format %s for %s requires maximum", rule.Operator, RangeName(firstRow, firstCol, lastRow, lastCol))
	}
	ws.cond = append(ws.cond, conditional{
		sqref: RangeName(firstRow, firstCol, lastRow, lastCol),
		rule:  rule,
	})
	return nil
}
