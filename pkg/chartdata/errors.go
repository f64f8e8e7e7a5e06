package chartdata

import (
	"errors"
	"fmt"
)

// ErrColumnOverflow indicates a simple series index past the single-letter
// column scheme (columns B through Z). Datasets with more series must use
// sparse series, whose column numbering is unbounded.
var ErrColumnOverflow = errors.New("series column exceeds single-letter range")

// ErrUnknownChartType indicates a chart type with no document template.
var ErrUnknownChartType = errors.New("unknown chart type")

// ShapeError reports chart data whose value or category shape is
// incompatible with the series variant using it, e.g. level-based
// categories rendered by a simple series.
type ShapeError struct {
	SeriesIndex int
	Detail      string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("series %d: %s", e.SeriesIndex, e.Detail)
}
