package chartdata

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/parser"
	"github.com/xuri/excelize/v2"
)

func TestCellPlanFlat(t *testing.T) {
	cd := New()
	cd.SetCategories([]string{"Q1", "Q2"})
	cd.AddSeries("Sales", []float64{1.0, 2.0})

	plan, err := cd.CellPlan()
	require.NoError(t, err)

	assert.Equal(t, []CellWrite{
		{Row: 2, Col: 1, Value: "Q1"},
		{Row: 3, Col: 1, Value: "Q2"},
		{Row: 1, Col: 2, Value: "Sales"},
		{Row: 2, Col: 2, Value: 1.0},
		{Row: 3, Col: 2, Value: 2.0},
	}, plan)
}

func TestCellPlanMultiLevelSparse(t *testing.T) {
	cd := New()
	cd.SetCategoryLevels([][]StrPoint{
		{{0, "2023"}, {2, "2024"}},
		{{0, "Q1"}, {1, "Q2"}, {2, "Q1"}},
	})
	cd.AddSparseSeries("Margin", []NumPoint{{0, 0.1}, {2, 0.3}, {5, 0.9}},
		SeriesOptions{ValuesLen: intp(3)})

	plan, err := cd.CellPlan()
	require.NoError(t, err)

	// Level 0 in column A, level 1 in column B, absent indices skipped.
	assert.Contains(t, plan, CellWrite{Row: 2, Col: 1, Value: "2023"})
	assert.Contains(t, plan, CellWrite{Row: 4, Col: 1, Value: "2024"})
	assert.Contains(t, plan, CellWrite{Row: 3, Col: 2, Value: "Q2"})

	// Series lands past the category span: column C, header in row 1.
	assert.Contains(t, plan, CellWrite{Row: 1, Col: 3, Value: "Margin"})
	assert.Contains(t, plan, CellWrite{Row: 2, Col: 3, Value: 0.1})
	assert.Contains(t, plan, CellWrite{Row: 4, Col: 3, Value: 0.3})

	// Point index 5 is past the declared values length.
	for _, w := range plan {
		assert.NotEqual(t, 0.9, w.Value)
	}
}

func TestCellPlanColumnOverflow(t *testing.T) {
	cd := New()
	for i := 0; i <= 25; i++ {
		cd.AddSeries("s", nil)
	}

	_, err := cd.CellPlan()
	require.ErrorIs(t, err, ErrColumnOverflow)
}

// parseRange splits "Sheet1!$B$2:$B$4" into its start column and rows.
func parseRange(t *testing.T, formula string) (col string, startRow, endRow int) {
	t.Helper()
	ref, ok := strings.CutPrefix(formula, "Sheet1!")
	require.True(t, ok, "formula %q", formula)
	parts := strings.Split(ref, ":")
	require.Len(t, parts, 2, "formula %q", formula)
	col, startRow = parseCell(t, parts[0])
	_, endRow = parseCell(t, parts[1])
	return col, startRow, endRow
}

// parseCell splits "$B$4" into column name and row number.
func parseCell(t *testing.T, s string) (string, int) {
	t.Helper()
	parts := strings.Split(strings.TrimPrefix(s, "$"), "$")
	require.Len(t, parts, 2, "cell %q", s)
	row, err := strconv.Atoi(parts[1])
	require.NoError(t, err)
	return parts[0], row
}

// The addresses the workbook writer fills must equal the addresses a
// consumer derives from the range formulas in the rendered markup.
func TestPlanAgreesWithFormulas(t *testing.T) {
	cd := New()
	cd.SetCategories([]string{"Q1", "Q2", "Q3"})
	cd.AddSeries("Sales", []float64{1.0, 2.0, 3.0})
	cd.AddSeries("Costs", []float64{4.0, 5.0, 6.0})

	blob, err := cd.XMLBytes(ChartTypeColumnClustered)
	require.NoError(t, err)
	parsed, err := parser.ExtractSeries(bytes.NewReader(blob))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	plan, err := cd.CellPlan()
	require.NoError(t, err)
	find := func(row, col int) interface{} {
		for _, w := range plan {
			if w.Row == row && w.Col == col {
				return w.Value
			}
		}
		return nil
	}

	for _, ps := range parsed {
		col, startRow, _ := parseRange(t, ps.Values.FormulaText())
		colNum, err := excelize.ColumnNameToNumber(col)
		require.NoError(t, err)
		assert.Equal(t, 2, startRow)

		assert.Equal(t, ps.Name.Value, find(1, colNum))
		for _, pt := range ps.Values.Points {
			assert.Equal(t, pt.Value, find(pt.Idx+2, colNum),
				"series %d point %d", ps.Index, pt.Idx)
		}

		catCol, catStart, _ := parseRange(t, ps.Categories.FormulaText())
		assert.Equal(t, "A", catCol)
		assert.Equal(t, 2, catStart)
		for _, pt := range ps.Categories.Levels[0] {
			assert.Equal(t, pt.Text, find(pt.Idx+2, 1))
		}
	}
}

func TestXLSXBlobRoundTrip(t *testing.T) {
	cd := New()
	cd.SetCategories([]string{"Q1", "Q2"})
	cd.AddSeries("Sales", []float64{100, 200.5})

	blob, err := cd.XLSXBlob()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Q1", get("A2"))
	assert.Equal(t, "Q2", get("A3"))
	assert.Equal(t, "Sales", get("B1"))
	assert.Equal(t, "100", get("B2"))
	assert.Equal(t, "200.5", get("B3"))
	assert.Equal(t, "", get("B4"))
}
