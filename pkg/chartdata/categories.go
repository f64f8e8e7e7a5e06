package chartdata

// StrPoint is one sparse category label: a zero-based point index and its
// text. Indices absent from a level render as blank cells.
type StrPoint struct {
	// Idx is the zero-based logical position of the label.
	Idx int
	// Label is the category text.
	Label string
}

// Categories is the category container shared by a ChartData and every
// series added to it. All series hold the same *Categories and observe its
// current contents at render time, so reassigning the categories after
// series were added changes what those series render.
//
// A Categories holds either a flat sequence of label strings or one or more
// sparse levels, whichever was assigned last.
type Categories struct {
	labels  []string
	levels  [][]StrPoint
	leveled bool
}

// setFlat replaces the contents with a flat label sequence. The container
// itself is retained so aliasing series see the new contents.
func (c *Categories) setFlat(labels []string) {
	c.labels = append(c.labels[:0], labels...)
	c.levels = nil
	c.leveled = false
}

// setLevels replaces the contents with sparse levels.
func (c *Categories) setLevels(levels [][]StrPoint) {
	c.levels = c.levels[:0]
	for _, lvl := range levels {
		c.levels = append(c.levels, append([]StrPoint(nil), lvl...))
	}
	c.labels = nil
	c.leveled = true
}

// Flat returns a snapshot of the flat labels, or nil if the categories are
// level-based.
func (c *Categories) Flat() []string {
	if c.leveled {
		return nil
	}
	return append([]string(nil), c.labels...)
}

// Levels returns a snapshot of the sparse levels, or nil if the categories
// are flat.
func (c *Categories) Levels() [][]StrPoint {
	if !c.leveled {
		return nil
	}
	out := make([][]StrPoint, 0, len(c.levels))
	for _, lvl := range c.levels {
		out = append(out, append([]StrPoint(nil), lvl...))
	}
	return out
}

// IsMultiLevel reports whether the categories carry more than one level.
func (c *Categories) IsMultiLevel() bool {
	return c.leveled && len(c.levels) > 1
}

// Span returns the number of worksheet columns occupied by the category
// labels: 1 for flat categories, the level count otherwise. Never less
// than 1, so series columns start at "B" even with no categories assigned.
func (c *Categories) Span() int {
	if c.leveled && len(c.levels) > 1 {
		return len(c.levels)
	}
	return 1
}

// Len returns the logical category count: the label count for flat
// categories, max index + 1 across all levels otherwise.
func (c *Categories) Len() int {
	if !c.leveled {
		return len(c.labels)
	}
	n := 0
	for _, lvl := range c.levels {
		for _, pt := range lvl {
			if pt.Idx+1 > n {
				n = pt.Idx + 1
			}
		}
	}
	return n
}

// empty reports whether no categories have been assigned.
func (c *Categories) empty() bool {
	if c.leveled {
		return len(c.levels) == 0
	}
	return len(c.labels) == 0
}
