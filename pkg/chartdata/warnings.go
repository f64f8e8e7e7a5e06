package chartdata

import "fmt"

// WarningCode identifies an advisory condition.
type WarningCode string

const (
	// WarnLenMismatch signals that a series declares different logical
	// lengths for values and categories. The chart still renders, but
	// drag-to-extend of the data range in the consuming application breaks.
	WarnLenMismatch WarningCode = "len_mismatch"
	// WarnCategoriesTruncated signals that values_len is shorter than
	// categories_len, so category labels at or past values_len are dropped.
	WarnCategoriesTruncated WarningCode = "categories_truncated"
)

// Warning is an advisory condition recorded while building chart data.
// Warnings never stop processing; callers read them via ChartData.Warnings.
type Warning struct {
	// Code identifies the condition.
	Code WarningCode
	// SeriesIndex is the index of the series the warning concerns, or -1
	// for dataset-level warnings.
	SeriesIndex int
	// Message is a human-readable description.
	Message string
}

func (w Warning) String() string {
	if w.SeriesIndex < 0 {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s (series %d): %s", w.Code, w.SeriesIndex, w.Message)
}
