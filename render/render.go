// Package render converts normalized result pages and facet summaries into
// tool output: human-readable markdown with a bounded length, or indented
// JSON for machine consumption.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonwraymond/wbdocs/document"
)

// Mode selects the output format of a rendered result.
type Mode string

const (
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Top facet values shown per dimension in markdown mode.
const maxFacetValuesShown = 50

// Renderer renders result pages and facet summaries. CharacterLimit bounds
// the rendered body; the truncation notice appended on overflow is not
// counted against it.
type Renderer struct {
	CharacterLimit int
}

// New creates a Renderer with the given character budget.
func New(characterLimit int) *Renderer {
	return &Renderer{CharacterLimit: characterLimit}
}

// SearchContext echoes the search input back into the rendered header.
type SearchContext struct {
	Query         string   `json:"query"`
	Countries     []string `json:"countries,omitempty"`
	DocumentTypes []string `json:"document_types,omitempty"`
	Languages     []string `json:"languages,omitempty"`
	DateFrom      string   `json:"date_from,omitempty"`
	DateTo        string   `json:"date_to,omitempty"`
	Limit         int      `json:"limit"`
}

// SearchResults renders one page of search results.
func (r *Renderer) SearchResults(sc SearchContext, page document.ResultPage, mode Mode) string {
	if mode == ModeJSON {
		payload := struct {
			Query      string              `json:"query"`
			Total      int                 `json:"total"`
			Count      int                 `json:"count"`
			Offset     int                 `json:"offset"`
			Limit      int                 `json:"limit"`
			HasMore    bool                `json:"has_more"`
			NextOffset *int                `json:"next_offset"`
			Filters    SearchContext       `json:"filters"`
			Documents  []document.Document `json:"documents"`
		}{
			Query:      sc.Query,
			Total:      page.Total,
			Count:      page.Count,
			Offset:     page.Offset,
			Limit:      sc.Limit,
			HasMore:    page.HasMore,
			NextOffset: nextOffset(page),
			Filters:    sc,
			Documents:  page.Documents,
		}
		return r.Truncate(marshalIndent(payload), page.Count)
	}

	var b strings.Builder
	b.WriteString("# World Bank Document Search Results\n\n")
	fmt.Fprintf(&b, "**Query:** %s\n", sc.Query)
	fmt.Fprintf(&b, "**Total Results:** %s\n", groupDigits(page.Total))
	fmt.Fprintf(&b, "**Showing:** %d-%d of %s\n", page.Offset+1, page.Offset+page.Count, groupDigits(page.Total))

	if filters := sc.filterLine(); filters != "" {
		fmt.Fprintf(&b, "**Filters:** %s\n", filters)
	}
	b.WriteString("\n---\n\n")

	for _, doc := range page.Documents {
		writeDocumentMarkdown(&b, doc)
	}
	writeMoreResults(&b, page)

	return r.Truncate(b.String(), page.Count)
}

// ProjectResults renders one page of project-scoped results.
func (r *Renderer) ProjectResults(projectID, projectName string, page document.ResultPage, mode Mode) string {
	if mode == ModeJSON {
		payload := struct {
			ProjectID   string              `json:"project_id,omitempty"`
			ProjectName string              `json:"project_name,omitempty"`
			Total       int                 `json:"total"`
			Count       int                 `json:"count"`
			Offset      int                 `json:"offset"`
			HasMore     bool                `json:"has_more"`
			NextOffset  *int                `json:"next_offset"`
			Documents   []document.Document `json:"documents"`
		}{
			ProjectID:   projectID,
			ProjectName: projectName,
			Total:       page.Total,
			Count:       page.Count,
			Offset:      page.Offset,
			HasMore:     page.HasMore,
			NextOffset:  nextOffset(page),
			Documents:   page.Documents,
		}
		return r.Truncate(marshalIndent(payload), page.Count)
	}

	var b strings.Builder
	b.WriteString("# World Bank Project Documents\n\n")
	if projectID != "" {
		fmt.Fprintf(&b, "**Project ID:** %s\n", projectID)
	}
	if projectName != "" {
		fmt.Fprintf(&b, "**Project Name:** %s\n", projectName)
	}
	fmt.Fprintf(&b, "**Total Documents:** %s\n", groupDigits(page.Total))
	fmt.Fprintf(&b, "**Showing:** %d-%d of %s\n", page.Offset+1, page.Offset+page.Count, groupDigits(page.Total))
	b.WriteString("\n---\n\n")

	for _, doc := range page.Documents {
		writeDocumentMarkdown(&b, doc)
	}
	writeMoreResults(&b, page)

	return r.Truncate(b.String(), page.Count)
}

// DocumentDetails renders a single document with its extended fields.
func (r *Renderer) DocumentDetails(doc document.Document, mode Mode) string {
	if mode == ModeJSON {
		return marshalIndent(doc)
	}

	var b strings.Builder
	b.WriteString("# World Bank Document Details\n\n")
	writeDocumentMarkdown(&b, doc)

	if len(doc.Keywords) > 0 {
		fmt.Fprintf(&b, "\n**Keywords:** %s\n", strings.Join(doc.Keywords, ", "))
	}
	if len(doc.Authors) > 0 {
		fmt.Fprintf(&b, "**Authors:** %s\n", strings.Join(doc.Authors, ", "))
	}
	if len(doc.Sectors) > 0 {
		fmt.Fprintf(&b, "**Sectors:** %s\n", strings.Join(doc.Sectors, ", "))
	}
	if len(doc.Topics) > 0 {
		fmt.Fprintf(&b, "**Topics:** %s\n", strings.Join(doc.Topics, ", "))
	}
	return b.String()
}

// Facets renders a facet summary as labeled lists, capped at the top values
// per dimension in markdown mode.
func (r *Renderer) Facets(summary document.FacetSummary, mode Mode) string {
	if mode == ModeJSON {
		return r.Truncate(marshalIndent(summary), len(summary.Facets))
	}

	var b strings.Builder
	b.WriteString("# World Bank Document Facets\n\n")
	if summary.Query != "" {
		fmt.Fprintf(&b, "**Filtered by query:** %s\n\n", summary.Query)
	}

	for _, facet := range summary.Facets {
		fmt.Fprintf(&b, "## %s\n\n", facet.Name)
		if len(facet.Values) == 0 {
			b.WriteString("*No data available*\n\n")
			continue
		}
		fmt.Fprintf(&b, "Total unique values: %d\n\n", len(facet.Values))

		shown := facet.Values
		if len(shown) > maxFacetValuesShown {
			shown = shown[:maxFacetValuesShown]
		}
		for _, fv := range shown {
			fmt.Fprintf(&b, "- **%s**: %s documents\n", fv.Value, groupDigits(fv.Count))
		}
		if len(facet.Values) > maxFacetValuesShown {
			fmt.Fprintf(&b, "\n*Showing top %d of %d total values*\n", maxFacetValuesShown, len(facet.Values))
		}
		b.WriteString("\n")
	}
	return r.Truncate(b.String(), len(summary.Facets))
}

// Truncate cuts content down to the character budget and appends the
// truncation notice. The notice is added after cutting the body, so it is
// never corrupted and not counted against the budget.
func (r *Renderer) Truncate(content string, itemCount int) string {
	if len(content) <= r.CharacterLimit {
		return content
	}

	cut := content[:r.CharacterLimit]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}

	var notice strings.Builder
	fmt.Fprintf(&notice, "\n\n**TRUNCATED**: Response exceeded %d characters.\n", r.CharacterLimit)
	fmt.Fprintf(&notice, "Showing partial results. Original had %d items.\n", itemCount)
	notice.WriteString("To see more results:\n")
	notice.WriteString("- Use the 'offset' parameter for pagination\n")
	notice.WriteString("- Add more specific filters (countries, document_types, dates)\n")
	notice.WriteString("- Reduce the 'limit' parameter\n")

	return cut + notice.String()
}

func (sc SearchContext) filterLine() string {
	var filters []string
	if len(sc.Countries) > 0 {
		filters = append(filters, "Countries: "+strings.Join(sc.Countries, ", "))
	}
	if len(sc.DocumentTypes) > 0 {
		filters = append(filters, "Types: "+strings.Join(sc.DocumentTypes, ", "))
	}
	if len(sc.Languages) > 0 {
		filters = append(filters, "Languages: "+strings.Join(sc.Languages, ", "))
	}
	if sc.DateFrom != "" || sc.DateTo != "" {
		from, to := sc.DateFrom, sc.DateTo
		if from == "" {
			from = "any"
		}
		if to == "" {
			to = "any"
		}
		filters = append(filters, fmt.Sprintf("Dates: %s to %s", from, to))
	}
	return strings.Join(filters, " | ")
}

func writeDocumentMarkdown(b *strings.Builder, doc document.Document) {
	fmt.Fprintf(b, "### %s\n\n", doc.Title)
	fmt.Fprintf(b, "**Document ID:** %s\n", doc.ID)
	fmt.Fprintf(b, "**Report Number:** %s\n", doc.ReportNumber)
	fmt.Fprintf(b, "**Type:** %s\n", doc.DocumentType)
	fmt.Fprintf(b, "**Date:** %s\n", doc.DocumentDate)
	fmt.Fprintf(b, "**Countries:** %s\n", joinOrNA(doc.Countries))

	if len(doc.Languages) > 0 {
		fmt.Fprintf(b, "**Languages:** %s\n", strings.Join(doc.Languages, ", "))
	}
	if len(doc.MajorThemes) > 0 {
		fmt.Fprintf(b, "**Major Themes:** %s\n", strings.Join(doc.MajorThemes, ", "))
	}
	if doc.Abstract != document.DefaultAbstract {
		fmt.Fprintf(b, "\n**Abstract:**\n%s\n", doc.Abstract)
	}
	if doc.PDFURL != document.NotAvailable {
		fmt.Fprintf(b, "\n**PDF URL:** %s\n", doc.PDFURL)
	}
	b.WriteString("\n---\n")
}

func writeMoreResults(b *strings.Builder, page document.ResultPage) {
	if page.HasMore {
		fmt.Fprintf(b, "\n**More results available.** Use offset=%d to see the next page.\n", page.NextOffset)
	}
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return document.NotAvailable
	}
	return strings.Join(values, ", ")
}

func nextOffset(page document.ResultPage) *int {
	if !page.HasMore {
		return nil
	}
	n := page.NextOffset
	return &n
}

// groupDigits formats n with thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func marshalIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
