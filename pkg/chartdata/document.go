package chartdata

import (
	"fmt"
	"strings"
)

// ChartType selects the outer chart document wrapper. It does not affect
// the shape of the series, category, or value fragments.
type ChartType string

const (
	ChartTypeBarClustered    ChartType = "BAR_CLUSTERED"
	ChartTypeColumnClustered ChartType = "COLUMN_CLUSTERED"
	ChartTypeLine            ChartType = "LINE"
	ChartTypePie             ChartType = "PIE"
)

const xmlDecl = "<?xml version='1.0' encoding='UTF-8' standalone='yes'?>\n"

const chartSpaceOpen = `<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` + "\n"

// axis ids are arbitrary but must pair up between plot and axis elements.
const (
	catAxID = "-2068027336"
	valAxID = "-2113994440"
)

// XML returns the complete chart document for *chartType* as text,
// including the XML declaration, rendering every series in index order.
func (cd *ChartData) XML(chartType ChartType) (string, error) {
	var sers strings.Builder
	for _, s := range cd.series {
		ser, err := s.SerXML()
		if err != nil {
			return "", err
		}
		sers.WriteString(ser)
	}

	plot, err := plotXML(chartType, sers.String())
	if err != nil {
		return "", err
	}

	return xmlDecl + chartSpaceOpen +
		"  <c:chart>\n" +
		"    <c:plotArea>\n" +
		"      <c:layout/>\n" +
		plot +
		"    </c:plotArea>\n" +
		"    <c:plotVisOnly val=\"1\"/>\n" +
		"    <c:dispBlanksAs val=\"gap\"/>\n" +
		"  </c:chart>\n" +
		"</c:chartSpace>\n", nil
}

// XMLBytes returns the chart document as UTF-8 bytes suitable for writing
// directly to a chart part file.
func (cd *ChartData) XMLBytes(chartType ChartType) ([]byte, error) {
	xml, err := cd.XML(chartType)
	if err != nil {
		return nil, err
	}
	return []byte(xml), nil
}

// plotXML returns the plot element for *chartType* with *sers* embedded.
func plotXML(chartType ChartType, sers string) (string, error) {
	switch chartType {
	case ChartTypeBarClustered:
		return barPlotXML("bar", sers), nil
	case ChartTypeColumnClustered:
		return barPlotXML("col", sers), nil
	case ChartTypeLine:
		return "      <c:lineChart>\n" +
			"        <c:grouping val=\"standard\"/>\n" +
			"        <c:varyColors val=\"0\"/>\n" +
			sers +
			"        <c:marker val=\"1\"/>\n" +
			"        <c:axId val=\"" + catAxID + "\"/>\n" +
			"        <c:axId val=\"" + valAxID + "\"/>\n" +
			"      </c:lineChart>\n" +
			axesXML(), nil
	case ChartTypePie:
		return "      <c:pieChart>\n" +
			"        <c:varyColors val=\"1\"/>\n" +
			sers +
			"        <c:firstSliceAng val=\"0\"/>\n" +
			"      </c:pieChart>\n", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChartType, chartType)
	}
}

func barPlotXML(barDir, sers string) string {
	return "      <c:barChart>\n" +
		"        <c:barDir val=\"" + barDir + "\"/>\n" +
		"        <c:grouping val=\"clustered\"/>\n" +
		"        <c:varyColors val=\"0\"/>\n" +
		sers +
		"        <c:gapWidth val=\"150\"/>\n" +
		"        <c:axId val=\"" + catAxID + "\"/>\n" +
		"        <c:axId val=\"" + valAxID + "\"/>\n" +
		"      </c:barChart>\n" +
		axesXML()
}

func axesXML() string {
	return "      <c:catAx>\n" +
		"        <c:axId val=\"" + catAxID + "\"/>\n" +
		"        <c:scaling>\n" +
		"          <c:orientation val=\"minMax\"/>\n" +
		"        </c:scaling>\n" +
		"        <c:delete val=\"0\"/>\n" +
		"        <c:axPos val=\"b\"/>\n" +
		"        <c:crossAx val=\"" + valAxID + "\"/>\n" +
		"        <c:crosses val=\"autoZero\"/>\n" +
		"      </c:catAx>\n" +
		"      <c:valAx>\n" +
		"        <c:axId val=\"" + valAxID + "\"/>\n" +
		"        <c:scaling>\n" +
		"          <c:orientation val=\"minMax\"/>\n" +
		"        </c:scaling>\n" +
		"        <c:delete val=\"0\"/>\n" +
		"        <c:axPos val=\"l\"/>\n" +
		"        <c:crossAx val=\"" + catAxID + "\"/>\n" +
		"        <c:crosses val=\"autoZero\"/>\n" +
		"      </c:valAx>\n"
}
