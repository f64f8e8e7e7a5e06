// Package parser reads persisted chart series markup back into ordered
// point collections. It consumes only the markup shape and is independent
// of the write side; round-trip validation parses what the writer produced.
package parser

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Point is one cache point. For string caches only Text is set; for
// numeric caches Value holds the parsed number when Numeric is true, and
// Text always holds the literal source text.
type Point struct {
	// Idx is the zero-based logical position of the point, independent of
	// document order.
	Idx int
	// Text is the literal point text.
	Text string
	// Value is the parsed numeric value, valid when Numeric is true.
	Value float64
	// Numeric reports whether Text parsed as a number.
	Numeric bool
}

// Reference is the uniform surface shared by the three reference kinds:
// string (series name, flat categories), numeric (values), and multi-level
// string (nested categories).
type Reference interface {
	// FormulaText is the worksheet range formula of the reference.
	FormulaText() string
	// PointCount is the declared point count of the cache.
	PointCount() int
}

// NameData is the parsed series name reference.
type NameData struct {
	Formula string
	Count   int
	Value   string
}

func (d *NameData) FormulaText() string { return d.Formula }
func (d *NameData) PointCount() int     { return d.Count }

// CategoryData is the parsed category reference: a single level for flat
// categories, one level per lvl element otherwise. Level order matches
// document order.
type CategoryData struct {
	Formula    string
	Count      int
	MultiLevel bool
	Levels     [][]Point
}

func (d *CategoryData) FormulaText() string { return d.Formula }
func (d *CategoryData) PointCount() int     { return d.Count }

// ValueData is the parsed numeric value reference. Points are sorted
// ascending by index regardless of document order.
type ValueData struct {
	Formula    string
	Count      int
	FormatCode string
	Points     []Point
}

func (d *ValueData) FormulaText() string { return d.Formula }
func (d *ValueData) PointCount() int     { return d.Count }

// Series is the parsed view of one ser element. It owns no state beyond
// what was parsed; Categories and Values are nil when the corresponding
// child is absent.
type Series struct {
	Index      int
	Order      int
	Name       *NameData
	Categories *CategoryData
	Values     *ValueData
}

// Raw schema of the ser subtree. Pointer and slice fields mark optional
// and repeated children; required children are validated after decode.
type valAttrXML struct {
	Val *int `xml:"val,attr"`
}

type ptXML struct {
	Idx *int    `xml:"idx,attr"`
	V   *string `xml:"v"`
}

type lvlXML struct {
	Pts []ptXML `xml:"pt"`
}

type cacheXML struct {
	FormatCode *string     `xml:"formatCode"`
	PtCount    *valAttrXML `xml:"ptCount"`
	Pts        []ptXML     `xml:"pt"`
	Lvls       []lvlXML    `xml:"lvl"`
}

type refXML struct {
	F        *string   `xml:"f"`
	StrCache *cacheXML `xml:"strCache"`
	NumCache *cacheXML `xml:"numCache"`
	MlsCache *cacheXML `xml:"multiLvlStrCache"`
}

type seqXML struct {
	StrRef *refXML `xml:"strRef"`
	NumRef *refXML `xml:"numRef"`
	MlsRef *refXML `xml:"multiLvlStrRef"`
}

type serXML struct {
	Idx   *valAttrXML `xml:"idx"`
	Order *valAttrXML `xml:"order"`
	Tx    *seqXML     `xml:"tx"`
	Cat   *seqXML     `xml:"cat"`
	Val   *seqXML     `xml:"val"`
}

// ParseSeries reads a single ser element from r. Missing required children
// (a reference without its cache, a cache without its point count) are
// structural errors, never silent defaults.
func ParseSeries(r io.Reader) (*Series, error) {
	var raw serXML
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return buildSeries(&raw)
}

// ExtractSeries walks a complete chart document stream and returns every
// ser element it contains, in document order.
func ExtractSeries(r io.Reader) ([]*Series, error) {
	decoder := xml.NewDecoder(r)
	var out []*Series

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "ser" {
			continue
		}
		var raw serXML
		if err := decoder.DecodeElement(&raw, &se); err != nil {
			return nil, err
		}
		s, err := buildSeries(&raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func buildSeries(raw *serXML) (*Series, error) {
	s := &Series{}
	if raw.Idx != nil && raw.Idx.Val != nil {
		s.Index = *raw.Idx.Val
	}
	if raw.Order != nil && raw.Order.Val != nil {
		s.Order = *raw.Order.Val
	}

	if raw.Tx != nil {
		name, err := buildName(raw.Tx)
		if err != nil {
			return nil, err
		}
		s.Name = name
	}
	if raw.Cat != nil {
		cats, err := buildCategories(raw.Cat)
		if err != nil {
			return nil, err
		}
		s.Categories = cats
	}
	if raw.Val != nil {
		vals, err := buildValues(raw.Val)
		if err != nil {
			return nil, err
		}
		s.Values = vals
	}

	return s, nil
}

func buildName(tx *seqXML) (*NameData, error) {
	if tx.StrRef == nil {
		return nil, structureErr("ser/tx", ErrMissingReference)
	}
	cache := tx.StrRef.StrCache
	if cache == nil {
		return nil, structureErr("ser/tx/strRef", ErrMissingCache)
	}
	count, err := pointCount(cache, "ser/tx/strRef/strCache")
	if err != nil {
		return nil, err
	}
	pts, err := textPoints(cache.Pts, "ser/tx/strRef/strCache")
	if err != nil {
		return nil, err
	}
	d := &NameData{Formula: formula(tx.StrRef), Count: count}
	if len(pts) > 0 {
		d.Value = pts[0].Text
	}
	return d, nil
}

func buildCategories(cat *seqXML) (*CategoryData, error) {
	// A multiLvlStrRef child distinguishes nested categories.
	if cat.MlsRef != nil {
		cache := cat.MlsRef.MlsCache
		if cache == nil {
			return nil, structureErr("ser/cat/multiLvlStrRef", ErrMissingCache)
		}
		count, err := pointCount(cache, "ser/cat/multiLvlStrRef/multiLvlStrCache")
		if err != nil {
			return nil, err
		}
		if len(cache.Lvls) == 0 {
			return nil, structureErr("ser/cat/multiLvlStrRef/multiLvlStrCache", ErrMissingLevel)
		}
		levels := make([][]Point, 0, len(cache.Lvls))
		for _, lvl := range cache.Lvls {
			pts, err := textPoints(lvl.Pts, "ser/cat/multiLvlStrRef/multiLvlStrCache/lvl")
			if err != nil {
				return nil, err
			}
			levels = append(levels, pts)
		}
		return &CategoryData{
			Formula:    formula(cat.MlsRef),
			Count:      count,
			MultiLevel: true,
			Levels:     levels,
		}, nil
	}

	if cat.StrRef == nil {
		return nil, structureErr("ser/cat", ErrMissingReference)
	}
	cache := cat.StrRef.StrCache
	if cache == nil {
		return nil, structureErr("ser/cat/strRef", ErrMissingCache)
	}
	count, err := pointCount(cache, "ser/cat/strRef/strCache")
	if err != nil {
		return nil, err
	}
	pts, err := textPoints(cache.Pts, "ser/cat/strRef/strCache")
	if err != nil {
		return nil, err
	}
	return &CategoryData{
		Formula: formula(cat.StrRef),
		Count:   count,
		Levels:  [][]Point{pts},
	}, nil
}

func buildValues(val *seqXML) (*ValueData, error) {
	if val.NumRef == nil {
		return nil, structureErr("ser/val", ErrMissingReference)
	}
	cache := val.NumRef.NumCache
	if cache == nil {
		return nil, structureErr("ser/val/numRef", ErrMissingCache)
	}
	count, err := pointCount(cache, "ser/val/numRef/numCache")
	if err != nil {
		return nil, err
	}
	pts, err := textPoints(cache.Pts, "ser/val/numRef/numCache")
	if err != nil {
		return nil, err
	}
	// Per-point numeric parse with literal fallback; mixed caches are
	// tolerated.
	for i := range pts {
		if v, err := strconv.ParseFloat(strings.TrimSpace(pts[i].Text), 64); err == nil {
			pts[i].Value = v
			pts[i].Numeric = true
		}
	}
	// Document order is not guaranteed to match logical index order.
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Idx < pts[j].Idx })

	d := &ValueData{Formula: formula(val.NumRef), Count: count, Points: pts}
	if cache.FormatCode != nil {
		d.FormatCode = *cache.FormatCode
	}
	return d, nil
}

func formula(ref *refXML) string {
	if ref.F == nil {
		return ""
	}
	return strings.TrimSpace(*ref.F)
}

func pointCount(cache *cacheXML, element string) (int, error) {
	if cache.PtCount == nil || cache.PtCount.Val == nil {
		return 0, structureErr(element, ErrMissingPointCount)
	}
	return *cache.PtCount.Val, nil
}

func textPoints(raw []ptXML, element string) ([]Point, error) {
	pts := make([]Point, 0, len(raw))
	for _, pt := range raw {
		if pt.Idx == nil {
			return nil, structureErr(element+"/pt", ErrMissingPointIndex)
		}
		if pt.V == nil {
			return nil, structureErr(element+"/pt", ErrMissingPointValue)
		}
		pts = append(pts, Point{Idx: *pt.Idx, Text: *pt.V})
	}
	return pts, nil
}
