package render

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/jonwraymond/wbdocs/document"
)

func testPage(total, count, offset int) document.ResultPage {
	docs := make([]document.Document, count)
	for i := range docs {
		docs[i] = document.Document{
			ID:           "D000" + strconv.Itoa(i+1),
			Title:        "Document Title",
			Abstract:     document.DefaultAbstract,
			ReportNumber: document.NotAvailable,
			DocumentType: "Working Paper",
			DocumentDate: "2021-06-30",
			Countries:    []string{"Kenya"},
			PDFURL:       document.NotAvailable,
		}
	}
	page := document.ResultPage{
		Total:     total,
		Count:     count,
		Offset:    offset,
		Documents: docs,
	}
	page.HasMore = page.Offset+page.Count < page.Total
	if page.HasMore {
		page.NextOffset = page.Offset + page.Count
	}
	return page
}

func TestSearchResultsMarkdownHeader(t *testing.T) {
	r := New(25000)
	out := r.SearchResults(SearchContext{Query: "climate change", Limit: 5}, testPage(1500, 5, 0), ModeMarkdown)

	for _, want := range []string{
		"# World Bank Document Search Results",
		"**Query:** climate change",
		"**Total Results:** 1,500",
		"**Showing:** 1-5 of 1,500",
		"### Document Title",
		"**More results available.** Use offset=5 to see the next page.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestSearchResultsFilterLine(t *testing.T) {
	r := New(25000)
	sc := SearchContext{
		Query:         "water",
		Countries:     []string{"Kenya", "Brazil"},
		DocumentTypes: []string{"Report"},
		DateFrom:      "2020-01-01",
		Limit:         20,
	}
	out := r.SearchResults(sc, testPage(2, 2, 0), ModeMarkdown)

	want := "**Filters:** Countries: Kenya, Brazil | Types: Report | Dates: 2020-01-01 to any"
	if !strings.Contains(out, want) {
		t.Errorf("expected filter line %q in output:\n%s", want, out)
	}
}

func TestSearchResultsNoPaginationHintOnLastPage(t *testing.T) {
	r := New(25000)
	out := r.SearchResults(SearchContext{Query: "water", Limit: 20}, testPage(2, 2, 0), ModeMarkdown)

	if strings.Contains(out, "More results available") {
		t.Error("did not expect a pagination hint when all results are shown")
	}
}

func TestSearchResultsJSONMode(t *testing.T) {
	r := New(25000)
	out := r.SearchResults(SearchContext{Query: "water", Limit: 5}, testPage(500, 5, 10), ModeJSON)

	var payload struct {
		Query      string `json:"query"`
		Total      int    `json:"total"`
		Count      int    `json:"count"`
		Offset     int    `json:"offset"`
		HasMore    bool   `json:"has_more"`
		NextOffset *int   `json:"next_offset"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("expected valid JSON output: %v", err)
	}
	if payload.Total != 500 || payload.Count != 5 || payload.Offset != 10 {
		t.Errorf("unexpected page numbers: %+v", payload)
	}
	if !payload.HasMore || payload.NextOffset == nil || *payload.NextOffset != 15 {
		t.Errorf("expected has_more with next_offset 15, got %+v", payload)
	}
}

func TestSearchResultsJSONNextOffsetNullOnLastPage(t *testing.T) {
	r := New(25000)
	out := r.SearchResults(SearchContext{Query: "water", Limit: 20}, testPage(2, 2, 0), ModeJSON)

	var payload struct {
		HasMore    bool `json:"has_more"`
		NextOffset *int `json:"next_offset"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("expected valid JSON output: %v", err)
	}
	if payload.HasMore || payload.NextOffset != nil {
		t.Errorf("expected exhausted page to have null next_offset, got %+v", payload)
	}
}

func TestProjectResultsMarkdown(t *testing.T) {
	r := New(25000)
	out := r.ProjectResults("P123456", "Water Access Project", testPage(3, 3, 0), ModeMarkdown)

	for _, want := range []string{
		"# World Bank Project Documents",
		"**Project ID:** P123456",
		"**Project Name:** Water Access Project",
		"**Total Documents:** 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestDocumentDetailsExtendedFields(t *testing.T) {
	r := New(25000)
	doc := document.Document{
		ID:           "33704",
		Title:        "Kenya Water Report",
		Abstract:     "A study.",
		ReportNumber: "WPS1234",
		DocumentType: "Working Paper",
		DocumentDate: "2021-06-30",
		Countries:    []string{"Kenya"},
		Keywords:     []string{"water", "sanitation"},
		Authors:      []string{"Doe, J."},
		Sectors:      []string{"Water Supply"},
		Topics:       []string{"Infrastructure"},
		PDFURL:       "https://example.org/doc.pdf",
	}
	out := r.DocumentDetails(doc, ModeMarkdown)

	for _, want := range []string{
		"# World Bank Document Details",
		"**Keywords:** water, sanitation",
		"**Authors:** Doe, J.",
		"**Sectors:** Water Supply",
		"**Topics:** Infrastructure",
		"**PDF URL:** https://example.org/doc.pdf",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestFacetsMarkdownCapsValues(t *testing.T) {
	r := New(25000)
	values := make([]document.FacetValue, 80)
	for i := range values {
		values[i] = document.FacetValue{Value: "Country", Count: 80 - i}
	}
	summary := document.FacetSummary{Facets: []document.Facet{{Name: "count_exact", Values: values}}}
	out := r.Facets(summary, ModeMarkdown)

	if !strings.Contains(out, "Total unique values: 80") {
		t.Error("expected the full value count in the header")
	}
	if !strings.Contains(out, "*Showing top 50 of 80 total values*") {
		t.Error("expected a top-values cap notice")
	}
	if got := strings.Count(out, "- **Country**"); got != maxFacetValuesShown {
		t.Errorf("expected %d listed values, got %d", maxFacetValuesShown, got)
	}
}

func TestFacetsMarkdownEmptyDimension(t *testing.T) {
	r := New(25000)
	summary := document.FacetSummary{Facets: []document.Facet{{Name: "docty_exact", Values: []document.FacetValue{}}}}
	out := r.Facets(summary, ModeMarkdown)

	if !strings.Contains(out, "## docty_exact") || !strings.Contains(out, "*No data available*") {
		t.Errorf("expected an empty-dimension placeholder, got:\n%s", out)
	}
}

func TestTruncateWithinBudget(t *testing.T) {
	r := New(100)
	content := strings.Repeat("x", 50)
	if got := r.Truncate(content, 1); got != content {
		t.Error("expected content within budget to pass through unchanged")
	}
}

func TestTruncateOverBudget(t *testing.T) {
	r := New(100)
	out := r.Truncate(strings.Repeat("x", 500), 25)

	if !strings.Contains(out, "**TRUNCATED**: Response exceeded 100 characters.") {
		t.Error("expected a truncation notice")
	}
	if !strings.Contains(out, "Original had 25 items.") {
		t.Error("expected the item count in the notice")
	}
	body := out[:strings.Index(out, "\n\n**TRUNCATED**")]
	if len(body) > 100 {
		t.Errorf("expected body cut to the budget, got %d characters", len(body))
	}
}

func TestTruncateDoesNotSplitRunes(t *testing.T) {
	r := New(10)
	out := r.Truncate(strings.Repeat("é", 20), 1)

	body := out[:strings.Index(out, "\n\n**TRUNCATED**")]
	for _, ch := range body {
		if ch == '�' {
			t.Fatal("expected no replacement characters in the truncated body")
		}
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
