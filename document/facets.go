package document

import (
	"sort"

	"github.com/tidwall/gjson"
)

// FacetValue is one categorical value and its document count.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facet holds the values of one facet dimension, ordered by count
// descending.
type Facet struct {
	Name   string       `json:"name"`
	Values []FacetValue `json:"values"`
}

// FacetSummary maps requested facet dimensions to their value counts.
// Facets preserves the request order; a requested dimension missing from the
// response appears with an empty value list.
type FacetSummary struct {
	Query  string  `json:"query,omitempty"`
	Facets []Facet `json:"facets"`
}

// ParseFacets extracts facet data from a raw upstream response body for the
// requested dimensions. The upstream encodes each dimension either as a flat
// alternating [value, count, value, count, ...] array or as a value-to-count
// object; both are accepted.
func ParseFacets(body []byte, requested []string) FacetSummary {
	facetData := gjson.ParseBytes(body).Get(facetsKey)

	summary := FacetSummary{Facets: make([]Facet, 0, len(requested))}
	for _, name := range requested {
		values := facetValues(facetData.Get(name))
		sort.SliceStable(values, func(i, j int) bool {
			return values[i].Count > values[j].Count
		})
		summary.Facets = append(summary.Facets, Facet{Name: name, Values: values})
	}
	return summary
}

// HasData reports whether any requested dimension came back with values.
func (s FacetSummary) HasData() bool {
	for _, facet := range s.Facets {
		if len(facet.Values) > 0 {
			return true
		}
	}
	return false
}

func facetValues(v gjson.Result) []FacetValue {
	switch {
	case v.IsArray():
		items := v.Array()
		out := make([]FacetValue, 0, len(items)/2)
		for i := 0; i+1 < len(items); i += 2 {
			out = append(out, FacetValue{
				Value: items[i].String(),
				Count: int(items[i+1].Int()),
			})
		}
		return out
	case v.IsObject():
		out := make([]FacetValue, 0)
		v.ForEach(func(key, value gjson.Result) bool {
			out = append(out, FacetValue{Value: key.Str, Count: int(value.Int())})
			return true
		})
		return out
	default:
		return []FacetValue{}
	}
}
