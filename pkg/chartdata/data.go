// Package chartdata accumulates chart categories and series and renders
// them two ways: as the OOXML chart series markup a presentation consumer
// reads, and as the Excel workbook holding the cells that markup's range
// formulas point at. Both renditions derive cell addresses from
// pkg/chartdata/cellref, so formula and cell always agree.
package chartdata

// ChartData accumulates the categories and series values for a plot and
// acts as a proxy for the chart data table written to an Excel worksheet.
//
// ChartData is not safe for concurrent mutation; concurrent read-only use
// (rendering) is safe provided no caller mutates categories or series
// values at the same time.
type ChartData struct {
	cats     *Categories
	series   []*Series
	warnings []Warning

	// dataset-level defaults applied to sparse series added later.
	valuesLen     *int
	categoriesLen *int
}

// New returns an empty ChartData.
func New() *ChartData {
	return &ChartData{cats: &Categories{}}
}

// Categories returns a snapshot of the flat category labels, or nil if the
// categories are level-based.
func (cd *ChartData) Categories() []string { return cd.cats.Flat() }

// CategoryLevels returns a snapshot of the sparse category levels, or nil
// if the categories are flat.
func (cd *ChartData) CategoryLevels() [][]StrPoint { return cd.cats.Levels() }

// SetCategories assigns flat category labels. The shared backing container
// is mutated in place, so series added before this call render the new
// labels.
func (cd *ChartData) SetCategories(labels []string) { cd.cats.setFlat(labels) }

// SetCategoryLevels assigns sparse category levels, each an ordered
// sequence of (index, label) points. Like SetCategories, the shared
// container is mutated in place.
func (cd *ChartData) SetCategoryLevels(levels [][]StrPoint) { cd.cats.setLevels(levels) }

// AddSeries appends a simple series named *name* with the dense *values*
// and returns it. The series index is the pre-append series count.
func (cd *ChartData) AddSeries(name string, values []float64) *Series {
	s := &Series{
		kind:  KindSimple,
		index: len(cd.series),
		name:  name,
		dense: append([]float64(nil), values...),
		cats:  cd.cats,
	}
	cd.series = append(cd.series, s)
	return s
}

// AddSparseSeries appends a sparse series named *name* with the given
// (index, value) points and returns it. Missing options fall back to the
// dataset-level lengths set via SetValuesLen and SetCategoriesLen, then to
// auto derivation.
func (cd *ChartData) AddSparseSeries(name string, values []NumPoint, opts SeriesOptions) *Series {
	s := &Series{
		kind:       KindSparse,
		index:      len(cd.series),
		name:       name,
		sparse:     append([]NumPoint(nil), values...),
		formatCode: opts.FormatCode,
		cats:       cd.cats,
	}
	if s.formatCode == "" {
		s.formatCode = DefaultFormatCode
	}

	switch {
	case opts.ValuesLen != nil:
		s.valuesLen = *opts.ValuesLen
	case cd.valuesLen != nil:
		s.valuesLen = *cd.valuesLen
	default:
		s.valuesLen = derivedValuesLen(s.sparse)
		s.autoLen = true
	}

	switch {
	case opts.CategoriesLen != nil:
		s.catsLen = *opts.CategoriesLen
		s.hasCatsLen = true
	case cd.categoriesLen != nil:
		s.catsLen = *cd.categoriesLen
		s.hasCatsLen = true
	case !cd.cats.empty():
		// Frozen at add time, matching declared-length semantics; the
		// point labels themselves stay live through the shared container.
		s.catsLen = cd.cats.Len()
		s.hasCatsLen = true
	}

	cd.checkLens(s)
	cd.series = append(cd.series, s)
	return s
}

// Series returns a snapshot of the current series in plot order.
func (cd *ChartData) Series() []*Series {
	return append([]*Series(nil), cd.series...)
}

// SetValuesLen declares the logical value count for the dataset. It is
// applied to every sparse series already added and becomes the default for
// sparse series added later.
func (cd *ChartData) SetValuesLen(n int) {
	cd.valuesLen = &n
	for _, s := range cd.series {
		if s.kind == KindSparse {
			s.SetValuesLen(n)
			cd.checkLens(s)
		}
	}
}

// SetCategoriesLen declares the logical category count for the dataset,
// applied like SetValuesLen.
func (cd *ChartData) SetCategoriesLen(n int) {
	cd.categoriesLen = &n
	for _, s := range cd.series {
		if s.kind == KindSparse {
			s.SetCategoriesLen(n)
		}
	}
}

// Warnings returns the advisory conditions recorded so far, in the order
// they were detected.
func (cd *ChartData) Warnings() []Warning {
	return append([]Warning(nil), cd.warnings...)
}

// checkLens records advisory warnings for a sparse series whose declared
// lengths disagree.
func (cd *ChartData) checkLens(s *Series) {
	if !s.hasCatsLen {
		return
	}
	if s.valuesLen != s.catsLen {
		cd.warnings = append(cd.warnings, Warning{
			Code:        WarnLenMismatch,
			SeriesIndex: s.index,
			Message:     "categories and values have different lengths; data range adjustment by dragging will break",
		})
	}
	if s.valuesLen < s.catsLen {
		cd.warnings = append(cd.warnings, Warning{
			Code:        WarnCategoriesTruncated,
			SeriesIndex: s.index,
			Message:     "values length is less than categories length; out-of-bound categories will not be displayed",
		})
	}
}
