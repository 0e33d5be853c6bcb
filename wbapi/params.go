package wbapi

import (
	"net/url"
	"strconv"
	"strings"
)

// SortOrder selects ascending or descending result ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Upstream query parameter names. The API uses `^` to join multiple values
// of one filter and `,` to join requested facet names.
const (
	paramFormat    = "format"
	paramQuery     = "qterm"
	paramRows      = "rows"
	paramOffset    = "os"
	paramCountries = "count_exact"
	paramDocTypes  = "docty_exact"
	paramLanguages = "lang_exact"
	paramDateFrom  = "strdate"
	paramDateTo    = "enddate"
	paramSortField = "srt"
	paramSortOrder = "order"
	paramFacets    = "fct"
	paramID        = "id"
	paramProjectID = "proid"
	paramProjName  = "projn"

	multiValueSep = "^"
)

// Request describes one upstream query. Zero-value fields are omitted from
// the query string; Limit and Offset are always sent.
type Request struct {
	Query         string
	Countries     []string
	DocumentTypes []string
	Languages     []string
	DateFrom      string
	DateTo        string
	Limit         int
	Offset        int
	SortBy        string
	SortOrder     SortOrder
	Facets        []string
	DocumentID    string
	ProjectID     string
	ProjectName   string
}

// Params builds the upstream query parameters. It is a pure function of the
// request: the same request always produces the same mapping. The response
// format is forced to JSON; the upstream XML variant is never requested.
func (r Request) Params() url.Values {
	params := url.Values{}
	params.Set(paramFormat, "json")
	params.Set(paramRows, strconv.Itoa(r.Limit))
	params.Set(paramOffset, strconv.Itoa(r.Offset))

	if r.Query != "" {
		params.Set(paramQuery, r.Query)
	}
	if len(r.Countries) > 0 {
		params.Set(paramCountries, strings.Join(r.Countries, multiValueSep))
	}
	if len(r.DocumentTypes) > 0 {
		params.Set(paramDocTypes, strings.Join(r.DocumentTypes, multiValueSep))
	}
	if len(r.Languages) > 0 {
		params.Set(paramLanguages, strings.Join(r.Languages, multiValueSep))
	}
	if r.DateFrom != "" {
		params.Set(paramDateFrom, r.DateFrom)
	}
	if r.DateTo != "" {
		params.Set(paramDateTo, r.DateTo)
	}
	if r.SortBy != "" {
		params.Set(paramSortField, r.SortBy)
		if r.SortOrder != "" {
			params.Set(paramSortOrder, string(r.SortOrder))
		}
	}
	if len(r.Facets) > 0 {
		params.Set(paramFacets, strings.Join(r.Facets, ","))
	}
	if r.DocumentID != "" {
		params.Set(paramID, r.DocumentID)
	}
	if r.ProjectID != "" {
		params.Set(paramProjectID, r.ProjectID)
	}
	if r.ProjectName != "" {
		params.Set(paramProjName, r.ProjectName)
	}
	return params
}
