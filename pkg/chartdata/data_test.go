package chartdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestSeriesIndexAssignment(t *testing.T) {
	cd := New()
	s0 := cd.AddSeries("first", []float64{1})
	s1 := cd.AddSparseSeries("second", []NumPoint{{0, 2}}, SeriesOptions{})
	s2 := cd.AddSeries("third", []float64{3})

	assert.Equal(t, 0, s0.Index())
	assert.Equal(t, 1, s1.Index())
	assert.Equal(t, 2, s2.Index())
	assert.Len(t, cd.Series(), 3)
}

func TestCategoriesLiveAliasing(t *testing.T) {
	cd := New()
	cd.SetCategories([]string{"old one", "old two"})
	s := cd.AddSeries("Sales", []float64{1.0, 2.0})

	cd.SetCategories([]string{"new one", "new two"})

	cat, err := s.CatXML(false)
	require.NoError(t, err)
	assert.Contains(t, cat, "<c:v>new one</c:v>")
	assert.NotContains(t, cat, "old one")
}

func TestCategoriesSnapshotIsDetached(t *testing.T) {
	cd := New()
	cd.SetCategories([]string{"a", "b"})

	snap := cd.Categories()
	snap[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, cd.Categories())
}

func TestSparseSeriesAutoValuesLen(t *testing.T) {
	cd := New()
	s := cd.AddSparseSeries("s", []NumPoint{{0, 1.0}, {5, 9.0}}, SeriesOptions{})
	assert.Equal(t, 6, s.ValuesLen())

	// Auto mode re-derives on every values mutation.
	require.NoError(t, s.SetValues([]NumPoint{{2, 4.0}}))
	assert.Equal(t, 3, s.ValuesLen())

	// A declared length leaves auto mode.
	s.SetValuesLen(10)
	require.NoError(t, s.SetValues([]NumPoint{{0, 1.0}}))
	assert.Equal(t, 10, s.ValuesLen())
}

func TestSparseSeriesAutoCategoriesLen(t *testing.T) {
	cd := New()
	cd.SetCategoryLevels([][]StrPoint{
		{{0, "2023"}, {2, "2024"}},
		{{0, "Q1"}, {3, "Q2"}},
	})
	s := cd.AddSparseSeries("s", []NumPoint{{0, 1.0}}, SeriesOptions{ValuesLen: intp(4)})
	assert.Equal(t, 4, s.CategoriesLen())
}

func TestLenMismatchWarnings(t *testing.T) {
	cd := New()
	cd.SetCategories([]string{"a", "b", "c"})
	cd.AddSparseSeries("s", []NumPoint{{0, 1.0}}, SeriesOptions{ValuesLen: intp(2)})

	warnings := cd.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, WarnLenMismatch, warnings[0].Code)
	assert.Equal(t, WarnCategoriesTruncated, warnings[1].Code)
	assert.Equal(t, 0, warnings[0].SeriesIndex)
}

func TestDatasetLenPropagation(t *testing.T) {
	cd := New()
	s0 := cd.AddSparseSeries("a", []NumPoint{{0, 1.0}}, SeriesOptions{})
	s1 := cd.AddSparseSeries("b", []NumPoint{{4, 2.0}}, SeriesOptions{})

	cd.SetValuesLen(7)
	assert.Equal(t, 7, s0.ValuesLen())
	assert.Equal(t, 7, s1.ValuesLen())

	cd.SetCategoriesLen(7)
	assert.Equal(t, 7, s0.CategoriesLen())

	// New sparse series pick the dataset defaults up.
	s2 := cd.AddSparseSeries("c", []NumPoint{{0, 3.0}}, SeriesOptions{})
	assert.Equal(t, 7, s2.ValuesLen())
	assert.Equal(t, 7, s2.CategoriesLen())
}

func TestSetValuesOnSimpleSeriesFails(t *testing.T) {
	cd := New()
	s := cd.AddSeries("s", []float64{1.0})

	err := s.SetValues([]NumPoint{{0, 2.0}})
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 0, shapeErr.SeriesIndex)
}

func TestSimpleSeriesWithLeveledCategoriesFails(t *testing.T) {
	cd := New()
	cd.SetCategoryLevels([][]StrPoint{{{0, "a"}}})
	s := cd.AddSeries("s", []float64{1.0})

	_, err := s.CatXML(false)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.True(t, strings.Contains(shapeErr.Error(), "simple series"))
}

func TestSeriesName(t *testing.T) {
	cd := New()
	s := cd.AddSparseSeries("before", nil, SeriesOptions{})
	s.SetName("after")
	assert.Equal(t, "after", s.Name())
}

func TestFormatCodeDefaults(t *testing.T) {
	cd := New()
	simple := cd.AddSeries("a", []float64{1})
	sparse := cd.AddSparseSeries("b", nil, SeriesOptions{})
	custom := cd.AddSparseSeries("c", nil, SeriesOptions{FormatCode: "0.00%"})

	assert.Equal(t, "General", simple.FormatCode())
	assert.Equal(t, "General", sparse.FormatCode())
	assert.Equal(t, "0.00%", custom.FormatCode())
}
