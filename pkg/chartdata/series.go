package chartdata

import (
	"fmt"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/cellref"
)

// DefaultFormatCode is the number format applied when none is given.
const DefaultFormatCode = "General"

// maxSimpleSeriesIndex is the highest series index the simple single-letter
// column scheme can address: 'B' + 24 = 'Z'.
const maxSimpleSeriesIndex = 24

// NumPoint is one sparse series value: a zero-based point index and its
// numeric value. Indices absent from a series render as blank cells.
type NumPoint struct {
	// Idx is the zero-based logical position of the value.
	Idx int
	// Value is the data point value.
	Value float64
}

// SeriesKind selects the series variant.
type SeriesKind int

const (
	// KindSimple is a dense series: consecutive float values, flat
	// categories, "General" number format, columns B through Z.
	KindSimple SeriesKind = iota
	// KindSparse is a detailed series: sparse (index, value) points with
	// blanks, declared logical lengths, a number format code, and
	// unbounded column addressing.
	KindSparse
)

// SeriesOptions configures a sparse series at construction.
type SeriesOptions struct {
	// ValuesLen is the declared logical value count. If nil, it is derived
	// as max point index + 1 and re-derived on every SetValues call.
	ValuesLen *int
	// CategoriesLen is the declared logical category count. If nil, it is
	// derived from the categories assigned at construction time.
	CategoriesLen *int
	// FormatCode is the number format for the value cache. Empty means
	// DefaultFormatCode.
	FormatCode string
}

// Series is one data series of a ChartData. Its index is assigned when the
// series is appended and never changes; insertion order is plot order.
type Series struct {
	kind  SeriesKind
	index int
	name  string

	dense  []float64
	sparse []NumPoint

	valuesLen  int
	autoLen    bool
	catsLen    int
	hasCatsLen bool
	formatCode string

	// cats aliases the owning ChartData's category container.
	cats *Categories
}

// Kind returns the series variant.
func (s *Series) Kind() SeriesKind { return s.kind }

// Index returns the zero-based index of this series within the plot.
func (s *Series) Index() int { return s.index }

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// SetName replaces the series name.
func (s *Series) SetName(name string) { s.name = name }

// Values returns a snapshot of a simple series' dense values, or nil for a
// sparse series.
func (s *Series) Values() []float64 {
	if s.kind != KindSimple {
		return nil
	}
	return append([]float64(nil), s.dense...)
}

// SparseValues returns a snapshot of a sparse series' points, or nil for a
// simple series.
func (s *Series) SparseValues() []NumPoint {
	if s.kind != KindSparse {
		return nil
	}
	return append([]NumPoint(nil), s.sparse...)
}

// SetValues replaces the points of a sparse series. While the series is in
// auto length mode its values length is re-derived from the new points.
func (s *Series) SetValues(values []NumPoint) error {
	if s.kind != KindSparse {
		return &ShapeError{s.index, "sparse values assigned to a simple series"}
	}
	s.sparse = append(s.sparse[:0], values...)
	if s.autoLen {
		s.valuesLen = derivedValuesLen(s.sparse)
	}
	return nil
}

// ValuesLen returns the logical value count: the dense length for a simple
// series, the declared or derived length for a sparse one.
func (s *Series) ValuesLen() int {
	if s.kind == KindSimple {
		return len(s.dense)
	}
	return s.valuesLen
}

// SetValuesLen declares the logical value count of a sparse series and
// leaves auto mode.
func (s *Series) SetValuesLen(n int) {
	if s.kind != KindSparse {
		return
	}
	s.valuesLen = n
	s.autoLen = false
}

// CategoriesLen returns the logical category count this series renders: the
// live category length for a simple series, the length declared or frozen
// at construction for a sparse one.
func (s *Series) CategoriesLen() int {
	if s.kind == KindSimple || !s.hasCatsLen {
		return s.cats.Len()
	}
	return s.catsLen
}

// SetCategoriesLen declares the logical category count of a sparse series.
func (s *Series) SetCategoriesLen(n int) {
	if s.kind != KindSparse {
		return
	}
	s.catsLen = n
	s.hasCatsLen = true
}

// FormatCode returns the number format of the value cache. Simple series
// always report DefaultFormatCode.
func (s *Series) FormatCode() string {
	if s.kind == KindSimple {
		return DefaultFormatCode
	}
	return s.formatCode
}

// IsCatMultiLevel reports whether this series renders multi-level
// categories.
func (s *Series) IsCatMultiLevel() bool { return s.cats.IsMultiLevel() }

// Column returns the worksheet column name holding this series' values.
//
// A simple series uses the single-letter scheme 'B'+index and returns
// ErrColumnOverflow past column Z rather than aliasing into a neighbour
// column. A sparse series uses unbounded base-26 numbering offset by the
// category column span.
func (s *Series) Column() (string, error) {
	if s.kind == KindSimple {
		if s.index > maxSimpleSeriesIndex {
			return "", fmt.Errorf("series %d: %w", s.index, ErrColumnOverflow)
		}
		return string(rune('B' + s.index)), nil
	}
	return cellref.SeriesColumn(s.index, s.cats.Span()), nil
}

// derivedValuesLen is the auto values length: max point index + 1.
func derivedValuesLen(pts []NumPoint) int {
	n := 0
	for _, pt := range pts {
		if pt.Idx+1 > n {
			n = pt.Idx + 1
		}
	}
	return n
}
