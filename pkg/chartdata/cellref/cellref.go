// Package cellref maps chart data positions to worksheet cell addresses.
//
// The XML writer uses these functions to build range formulas and the
// workbook writer uses the same functions to place actual cell values, so
// both sides always agree on where a data point lives.
package cellref

import "fmt"

// SheetName is the worksheet name referenced by all chart data formulas.
const SheetName = "Sheet1"

// HeaderRow is the 1-based worksheet row holding series names.
const HeaderRow = 1

// ColumnName converts a zero-based column number to its worksheet column
// name: 0 -> "A", 25 -> "Z", 26 -> "AA". The numbering is unbounded.
func ColumnName(col int) string {
	name := ""
	for n := col; n >= 0; n = n/26 - 1 {
		name = string(rune('A'+n%26)) + name
	}
	return name
}

// SeriesColumn returns the worksheet column name holding the values of the
// series at *index*, where *categoryWidth* columns are occupied by category
// labels. Column numbering is zero-based, so index 0 with width 1 lands in
// column "B".
func SeriesColumn(index, categoryWidth int) string {
	return ColumnName(categoryWidth + index)
}

// ValueRow returns the 1-based worksheet row for the value at *pointIndex*.
// Row 1 is reserved for the series-name header, data starts at row 2.
func ValueRow(pointIndex int) int {
	return pointIndex + 2
}

// CategoryRow returns the 1-based worksheet row for the category label at
// *pointIndex*. Categories share row numbering with values.
func CategoryRow(pointIndex int) int {
	return pointIndex + 2
}

// Cell returns the absolute single-cell formula for *col* and 1-based *row*,
// e.g. Cell("B", 1) -> "Sheet1!$B$1".
func Cell(col string, row int) string {
	return fmt.Sprintf("%s!$%s$%d", SheetName, col, row)
}

// Range returns the absolute range formula spanning (col1,row1) through
// (col2,row2), e.g. "Sheet1!$A$2:$A$5". Rows are 1-based.
func Range(col1 string, row1 int, col2 string, row2 int) string {
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", SheetName, col1, row1, col2, row2)
}
