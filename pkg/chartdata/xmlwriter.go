package chartdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/chartdata-go/pkg/chartdata/cellref"
)

// NamespaceChart is the OOXML drawing chart namespace.
const NamespaceChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"

// xmlEscaper covers the five standard XML special characters for text
// emitted inside <c:v> elements.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// nsdecl returns the xmlns:c declaration when a fragment is rendered as an
// independently parseable snippet, empty when it is embedded in a document
// that already declares the namespace.
func nsdecl(withNS bool) string {
	if !withNS {
		return ""
	}
	return fmt.Sprintf(` xmlns:c="%s"`, NamespaceChart)
}

// formatValue renders a numeric point value with the shortest text that
// round-trips, never re-rounded.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// TxXML returns the <c:tx> fragment for this series: a string reference to
// the header cell plus a one-point cache holding the escaped series name.
// withNS controls whether the fragment carries its own namespace
// declaration; the two forms are otherwise textually identical.
func (s *Series) TxXML(withNS bool) (string, error) {
	col, err := s.Column()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(""+
		"          <c:tx%s>\n"+
		"            <c:strRef>\n"+
		"              <c:f>%s</c:f>\n"+
		"              <c:strCache>\n"+
		"                <c:ptCount val=\"1\"/>\n"+
		"                <c:pt idx=\"0\">\n"+
		"                  <c:v>%s</c:v>\n"+
		"                </c:pt>\n"+
		"              </c:strCache>\n"+
		"            </c:strRef>\n"+
		"          </c:tx>\n",
		nsdecl(withNS),
		cellref.Cell(col, cellref.HeaderRow),
		xmlEscaper.Replace(s.name),
	), nil
}

// CatXML returns the <c:cat> fragment for this series, or the empty string
// for a sparse series whose category length is zero.
//
// Flat categories emit a strRef over column A. Multi-level categories emit
// a multiLvlStrRef spanning one column per level, with the level caches in
// reverse declaration order, as the consuming format requires.
func (s *Series) CatXML(withNS bool) (string, error) {
	if s.kind == KindSimple {
		return s.simpleCatXML(withNS)
	}
	return s.sparseCatXML(withNS)
}

func (s *Series) simpleCatXML(withNS bool) (string, error) {
	if s.cats.leveled {
		return "", &ShapeError{s.index, "level-based categories rendered by a simple series"}
	}
	labels := s.cats.labels
	var pts strings.Builder
	for idx, label := range labels {
		fmt.Fprintf(&pts, ""+
			"                <c:pt idx=\"%d\">\n"+
			"                  <c:v>%s</c:v>\n"+
			"                </c:pt>\n",
			idx, xmlEscaper.Replace(label))
	}
	return fmt.Sprintf(""+
		"          <c:cat%s>\n"+
		"            <c:strRef>\n"+
		"              <c:f>%s</c:f>\n"+
		"              <c:strCache>\n"+
		"                <c:ptCount val=\"%d\"/>\n"+
		"%s"+
		"              </c:strCache>\n"+
		"            </c:strRef>\n"+
		"          </c:cat>\n",
		nsdecl(withNS),
		cellref.Range("A", 2, "A", len(labels)+1),
		len(labels), pts.String(),
	), nil
}

func (s *Series) sparseCatXML(withNS bool) (string, error) {
	catsLen := s.CategoriesLen()
	if catsLen <= 0 {
		return "", nil
	}

	levels := s.cats.levels
	if !s.cats.leveled {
		// Flat labels behave as a single dense level.
		lvl := make([]StrPoint, 0, len(s.cats.labels))
		for idx, label := range s.cats.labels {
			lvl = append(lvl, StrPoint{Idx: idx, Label: label})
		}
		levels = [][]StrPoint{lvl}
	}

	multi := len(levels) > 1
	prefix := "str"
	if multi {
		prefix = "multiLvlStr"
	}

	ptIndent := ""
	if multi {
		ptIndent = "  "
	}
	var pts strings.Builder
	// Levels appear in reverse declaration order in the markup; the
	// consuming format requires it.
	for ilvl := len(levels) - 1; ilvl >= 0; ilvl-- {
		if multi {
			pts.WriteString("                  <c:lvl>\n")
		}
		for _, pt := range levels[ilvl] {
			if pt.Idx >= catsLen {
				continue
			}
			fmt.Fprintf(&pts, ""+
				"%s                  <c:pt idx=\"%d\">\n"+
				"%s                    <c:v>%s</c:v>\n"+
				"%s                  </c:pt>\n",
				ptIndent, pt.Idx,
				ptIndent, xmlEscaper.Replace(pt.Label),
				ptIndent)
		}
		if multi {
			pts.WriteString("                  </c:lvl>\n")
		}
	}

	endCol := cellref.ColumnName(len(levels) - 1)
	return fmt.Sprintf(""+
		"          <c:cat%s>\n"+
		"            <c:%sRef>\n"+
		"              <c:f>%s</c:f>\n"+
		"              <c:%sCache>\n"+
		"                <c:ptCount val=\"%d\"/>\n"+
		"%s"+
		"              </c:%sCache>\n"+
		"            </c:%sRef>\n"+
		"          </c:cat>\n",
		nsdecl(withNS), prefix,
		cellref.Range("A", 2, endCol, catsLen+1),
		prefix, catsLen, pts.String(), prefix, prefix,
	), nil
}

// ValXML returns the <c:val> fragment for this series: a numeric reference
// over the series column plus a cache tagged with the format code. Sparse
// points at or past the declared values length are dropped.
func (s *Series) ValXML(withNS bool) (string, error) {
	col, err := s.Column()
	if err != nil {
		return "", err
	}
	valuesLen := s.ValuesLen()

	var pts strings.Builder
	writePt := func(idx int, text string) {
		fmt.Fprintf(&pts, ""+
			"                <c:pt idx=\"%d\">\n"+
			"                  <c:v>%s</c:v>\n"+
			"                </c:pt>\n",
			idx, text)
	}
	if s.kind == KindSimple {
		for idx, v := range s.dense {
			writePt(idx, formatValue(v))
		}
	} else {
		for _, pt := range s.sparse {
			if pt.Idx >= valuesLen {
				continue
			}
			writePt(pt.Idx, formatValue(pt.Value))
		}
	}

	return fmt.Sprintf(""+
		"          <c:val%s>\n"+
		"            <c:numRef>\n"+
		"              <c:f>%s</c:f>\n"+
		"              <c:numCache>\n"+
		"                <c:formatCode>%s</c:formatCode>\n"+
		"                <c:ptCount val=\"%d\"/>\n"+
		"%s"+
		"              </c:numCache>\n"+
		"            </c:numRef>\n"+
		"          </c:val>\n",
		nsdecl(withNS),
		cellref.Range(col, 2, col, valuesLen+1),
		xmlEscaper.Replace(s.FormatCode()), valuesLen, pts.String(),
	), nil
}

// SerXML returns the complete <c:ser> element for this series as a bare
// fragment for embedding in a chart document.
func (s *Series) SerXML() (string, error) {
	tx, err := s.TxXML(false)
	if err != nil {
		return "", err
	}
	cat, err := s.CatXML(false)
	if err != nil {
		return "", err
	}
	val, err := s.ValXML(false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(""+
		"        <c:ser>\n"+
		"          <c:idx val=\"%d\"/>\n"+
		"          <c:order val=\"%d\"/>\n"+
		"%s%s%s"+
		"        </c:ser>\n",
		s.index, s.index, tx, cat, val,
	), nil
}
