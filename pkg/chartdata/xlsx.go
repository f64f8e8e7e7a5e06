package chartdata

import (
	"fmt"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/cellref"
	"github.com/xuri/excelize/v2"
)

// CellWrite is one planned worksheet cell write.
type CellWrite struct {
	// Row is the 1-based worksheet row.
	Row int
	// Col is the 1-based worksheet column.
	Col int
	// Value is the cell value: string for labels and names, float64 for
	// data points.
	Value interface{}
}

// CellPlan returns the ordered cell writes that lay out this chart data in
// a worksheet: category labels first (one column per level), then, per
// series in index order, the name header in row 1 followed by the values.
//
// Every address in the plan equals the address a consumer derives from the
// range formulas emitted by the XML rendering of the same point.
func (cd *ChartData) CellPlan() ([]CellWrite, error) {
	var plan []CellWrite

	if cd.cats.leveled {
		for ilvl, lvl := range cd.cats.levels {
			for _, pt := range lvl {
				plan = append(plan, CellWrite{
					Row:   cellref.CategoryRow(pt.Idx),
					Col:   ilvl + 1,
					Value: pt.Label,
				})
			}
		}
	} else {
		for idx, label := range cd.cats.labels {
			plan = append(plan, CellWrite{
				Row:   cellref.CategoryRow(idx),
				Col:   1,
				Value: label,
			})
		}
	}

	for _, s := range cd.series {
		colName, err := s.Column()
		if err != nil {
			return nil, err
		}
		col, err := excelize.ColumnNameToNumber(colName)
		if err != nil {
			return nil, fmt.Errorf("series %d column %q: %w", s.index, colName, err)
		}

		plan = append(plan, CellWrite{Row: cellref.HeaderRow, Col: col, Value: s.name})

		if s.kind == KindSimple {
			for idx, v := range s.dense {
				plan = append(plan, CellWrite{Row: cellref.ValueRow(idx), Col: col, Value: v})
			}
			continue
		}
		valuesLen := s.ValuesLen()
		for _, pt := range s.sparse {
			if pt.Idx >= valuesLen {
				continue
			}
			plan = append(plan, CellWrite{Row: cellref.ValueRow(pt.Idx), Col: col, Value: pt.Value})
		}
	}

	return plan, nil
}

// XLSXBlob returns the bytes of an Excel workbook holding exactly the cells
// of CellPlan on the sheet named by cellref.SheetName.
func (cd *ChartData) XLSXBlob() ([]byte, error) {
	plan, err := cd.CellPlan()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, w := range plan {
		cell, err := excelize.CoordinatesToCellName(w.Col, w.Row)
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", w.Col, w.Row, err)
		}
		if err := f.SetCellValue(cellref.SheetName, cell, w.Value); err != nil {
			return nil, fmt.Errorf("write %s: %w", cell, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
