package document

import (
	"reflect"
	"testing"
)

func TestParseFacetsFlatArrayForm(t *testing.T) {
	body := `{"facets": {"count_exact": ["Kenya", 12, "Brazil", 45, "India", 7]}}`
	summary := ParseFacets([]byte(body), []string{"count_exact"})

	want := []FacetValue{
		{Value: "Brazil", Count: 45},
		{Value: "Kenya", Count: 12},
		{Value: "India", Count: 7},
	}
	if len(summary.Facets) != 1 {
		t.Fatalf("expected 1 facet, got %d", len(summary.Facets))
	}
	if !reflect.DeepEqual(summary.Facets[0].Values, want) {
		t.Errorf("expected values sorted by count descending, got %v", summary.Facets[0].Values)
	}
}

func TestParseFacetsObjectForm(t *testing.T) {
	body := `{"facets": {"lang_exact": {"English": 400, "French": 80}}}`
	summary := ParseFacets([]byte(body), []string{"lang_exact"})

	values := summary.Facets[0].Values
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	if values[0].Value != "English" || values[0].Count != 400 {
		t.Errorf("expected English first with count 400, got %+v", values[0])
	}
}

func TestParseFacetsPreservesRequestOrder(t *testing.T) {
	body := `{"facets": {
		"lang_exact": ["English", 400],
		"count_exact": ["Kenya", 12]
	}}`
	summary := ParseFacets([]byte(body), []string{"count_exact", "lang_exact"})

	if summary.Facets[0].Name != "count_exact" || summary.Facets[1].Name != "lang_exact" {
		t.Errorf("expected request order preserved, got %q then %q",
			summary.Facets[0].Name, summary.Facets[1].Name)
	}
}

func TestParseFacetsMissingDimension(t *testing.T) {
	body := `{"facets": {"count_exact": ["Kenya", 12]}}`
	summary := ParseFacets([]byte(body), []string{"count_exact", "docty_exact"})

	if len(summary.Facets) != 2 {
		t.Fatalf("expected both requested dimensions present, got %d", len(summary.Facets))
	}
	if len(summary.Facets[1].Values) != 0 {
		t.Errorf("expected missing dimension to have no values, got %v", summary.Facets[1].Values)
	}
	if !summary.HasData() {
		t.Error("expected HasData to be true when any dimension has values")
	}
}

func TestParseFacetsNoData(t *testing.T) {
	summary := ParseFacets([]byte(`{}`), []string{"count_exact"})
	if summary.HasData() {
		t.Error("expected HasData to be false for an empty response")
	}
}

func TestParseFacetsOddLengthArray(t *testing.T) {
	body := `{"facets": {"count_exact": ["Kenya", 12, "Orphan"]}}`
	summary := ParseFacets([]byte(body), []string{"count_exact"})

	values := summary.Facets[0].Values
	if len(values) != 1 {
		t.Fatalf("expected trailing unpaired value dropped, got %v", values)
	}
	if values[0].Value != "Kenya" || values[0].Count != 12 {
		t.Errorf("unexpected pair %+v", values[0])
	}
}
