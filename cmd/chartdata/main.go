// Package main provides the CLI entry point for chartdata-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/chartdata-go/pkg/chartdata"
	"github.com/ukaji3/chartdata-go/pkg/chartdata/parser"
	"gopkg.in/yaml.v3"
)

var (
	chartType string
	xmlOut    string
	xlsxOut   string
	pretty    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartdata",
		Short: "Render and inspect chart data markup",
		Long: `chartdata renders a chart dataset description to OOXML chart markup and
the matching Excel workbook, and parses existing chart markup back into
point collections.`,
	}

	renderCmd := &cobra.Command{
		Use:   "render [dataset.yaml]",
		Short: "Render a dataset to chart XML and a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&chartType, "chart-type", "BAR_CLUSTERED", "Chart type: BAR_CLUSTERED, COLUMN_CLUSTERED, LINE, PIE")
	renderCmd.Flags().StringVar(&xmlOut, "xml-out", "", "Chart XML output path (default: stdout)")
	renderCmd.Flags().StringVar(&xlsxOut, "xlsx-out", "", "Workbook output path (optional)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [chart.xml]",
		Short: "Parse series from chart markup and print a JSON summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(renderCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// datasetFile is the YAML description of a chart dataset.
type datasetFile struct {
	// Categories are flat category labels. Mutually exclusive with
	// CategoryLevels.
	Categories []string `yaml:"categories"`
	// CategoryLevels are sparse category levels, outermost first.
	CategoryLevels [][]labelPoint `yaml:"category_levels"`
	// ValuesLen and CategoriesLen declare dataset-level logical lengths
	// for sparse series.
	ValuesLen     *int         `yaml:"values_len"`
	CategoriesLen *int         `yaml:"categories_len"`
	Series        []seriesSpec `yaml:"series"`
}

type labelPoint struct {
	Idx   int    `yaml:"idx"`
	Label string `yaml:"label"`
}

type valuePoint struct {
	Idx   int     `yaml:"idx"`
	Value float64 `yaml:"value"`
}

// seriesSpec describes one series. Plain Values yield a simple series;
// Points or any of the detail fields yield a sparse one.
type seriesSpec struct {
	Name          string       `yaml:"name"`
	Values        []float64    `yaml:"values"`
	Points        []valuePoint `yaml:"points"`
	ValuesLen     *int         `yaml:"values_len"`
	CategoriesLen *int         `yaml:"categories_len"`
	FormatCode    string       `yaml:"format_code"`
}

func (s seriesSpec) sparse() bool {
	return s.Points != nil || s.ValuesLen != nil || s.CategoriesLen != nil || s.FormatCode != ""
}

func runRender(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	var ds datasetFile
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	cd, err := buildChartData(&ds)
	if err != nil {
		return err
	}

	xmlBytes, err := cd.XMLBytes(chartdata.ChartType(chartType))
	if err != nil {
		return fmt.Errorf("render chart XML: %w", err)
	}

	for _, w := range cd.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if xmlOut != "" {
		if err := os.WriteFile(xmlOut, xmlBytes, 0644); err != nil {
			return fmt.Errorf("write chart XML: %w", err)
		}
	} else {
		fmt.Print(string(xmlBytes))
	}

	if xlsxOut != "" {
		blob, err := cd.XLSXBlob()
		if err != nil {
			return fmt.Errorf("render workbook: %w", err)
		}
		if err := os.WriteFile(xlsxOut, blob, 0644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}

	return nil
}

func buildChartData(ds *datasetFile) (*chartdata.ChartData, error) {
	if len(ds.Categories) > 0 && len(ds.CategoryLevels) > 0 {
		return nil, fmt.Errorf("dataset declares both categories and category_levels")
	}

	cd := chartdata.New()
	if len(ds.CategoryLevels) > 0 {
		levels := make([][]chartdata.StrPoint, 0, len(ds.CategoryLevels))
		for _, lvl := range ds.CategoryLevels {
			pts := make([]chartdata.StrPoint, 0, len(lvl))
			for _, pt := range lvl {
				pts = append(pts, chartdata.StrPoint{Idx: pt.Idx, Label: pt.Label})
			}
			levels = append(levels, pts)
		}
		cd.SetCategoryLevels(levels)
	} else {
		cd.SetCategories(ds.Categories)
	}

	if ds.ValuesLen != nil {
		cd.SetValuesLen(*ds.ValuesLen)
	}
	if ds.CategoriesLen != nil {
		cd.SetCategoriesLen(*ds.CategoriesLen)
	}

	for _, spec := range ds.Series {
		if !spec.sparse() {
			cd.AddSeries(spec.Name, spec.Values)
			continue
		}
		if spec.Values != nil && spec.Points != nil {
			return nil, fmt.Errorf("series %q declares both values and points", spec.Name)
		}
		pts := make([]chartdata.NumPoint, 0, len(spec.Points))
		for _, pt := range spec.Points {
			pts = append(pts, chartdata.NumPoint{Idx: pt.Idx, Value: pt.Value})
		}
		cd.AddSparseSeries(spec.Name, pts, chartdata.SeriesOptions{
			ValuesLen:     spec.ValuesLen,
			CategoriesLen: spec.CategoriesLen,
			FormatCode:    spec.FormatCode,
		})
	}

	return cd, nil
}

// seriesSummary is the JSON view of one parsed series.
type seriesSummary struct {
	Index           int         `json:"index"`
	Name            string      `json:"name,omitempty"`
	NameFormula     string      `json:"name_formula,omitempty"`
	CategoryFormula string      `json:"category_formula,omitempty"`
	CategoryLevels  [][]string  `json:"category_levels,omitempty"`
	ValueFormula    string      `json:"value_formula,omitempty"`
	FormatCode      string      `json:"format_code,omitempty"`
	Values          []pointView `json:"values,omitempty"`
}

type pointView struct {
	Idx   int         `json:"idx"`
	Value interface{} `json:"value"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open chart XML: %w", err)
	}
	defer f.Close()

	series, err := parser.ExtractSeries(f)
	if err != nil {
		return fmt.Errorf("parse chart XML: %w", err)
	}

	summaries := make([]seriesSummary, 0, len(series))
	for _, s := range series {
		sum := seriesSummary{Index: s.Index}
		if s.Name != nil {
			sum.Name = s.Name.Value
			sum.NameFormula = s.Name.FormulaText()
		}
		if s.Categories != nil {
			sum.CategoryFormula = s.Categories.FormulaText()
			for _, lvl := range s.Categories.Levels {
				labels := make([]string, 0, len(lvl))
				for _, pt := range lvl {
					labels = append(labels, pt.Text)
				}
				sum.CategoryLevels = append(sum.CategoryLevels, labels)
			}
		}
		if s.Values != nil {
			sum.ValueFormula = s.Values.FormulaText()
			sum.FormatCode = s.Values.FormatCode
			for _, pt := range s.Values.Points {
				view := pointView{Idx: pt.Idx}
				if pt.Numeric {
					view.Value = pt.Value
				} else {
					view.Value = pt.Text
				}
				sum.Values = append(sum.Values, view)
			}
		}
		summaries = append(summaries, sum)
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(summaries, "", "  ")
	} else {
		out, err = json.Marshal(summaries)
	}
	if err != nil {
		return fmt.Errorf("serialize summary: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
