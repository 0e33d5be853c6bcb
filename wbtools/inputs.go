package wbtools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonwraymond/wbdocs/render"
)

// Input bounds. List filters have bounded cardinality so a single call
// cannot produce an unbounded query string.
const (
	maxQueryLength       = 500
	maxCountries         = 20
	maxDocumentTypes     = 10
	maxLanguages         = 5
	maxFacets            = 10
	maxLimit             = 100
	defaultLimit         = 20
	maxDocumentIDLength  = 200
	maxProjectIDLength   = 100
	maxProjectNameLength = 500

	defaultSortBy = "docdt"
)

// datePattern accepts YYYY-MM-DD or MM-DD-YYYY, the two formats the
// upstream API understands.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$|^\d{2}-\d{2}-\d{4}$`)

// knownFacets is the fixed set of facet dimensions callers may request.
var knownFacets = map[string]bool{
	"count_exact":    true,
	"lang_exact":     true,
	"docty_exact":    true,
	"majtheme_exact": true,
	"topic_exact":    true,
}

// SearchInput is the argument set for worldbank_search_documents.
type SearchInput struct {
	Query          string   `json:"query"`
	Countries      []string `json:"countries,omitempty"`
	DocumentTypes  []string `json:"document_types,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	DateFrom       string   `json:"date_from,omitempty"`
	DateTo         string   `json:"date_to,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Offset         int      `json:"offset,omitempty"`
	SortBy         string   `json:"sort_by,omitempty"`
	SortOrder      string   `json:"sort_order,omitempty"`
	ResponseFormat string   `json:"response_format,omitempty"`
}

// DetailsInput is the argument set for worldbank_get_document_details.
type DetailsInput struct {
	DocumentID     string `json:"document_id"`
	ResponseFormat string `json:"response_format,omitempty"`
}

// FacetsInput is the argument set for worldbank_explore_facets.
type FacetsInput struct {
	Facets         []string `json:"facets"`
	Query          string   `json:"query,omitempty"`
	ResponseFormat string   `json:"response_format,omitempty"`
}

// ProjectInput is the argument set for worldbank_search_by_project.
type ProjectInput struct {
	ProjectID      string `json:"project_id,omitempty"`
	ProjectName    string `json:"project_name,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

// decodeArgs maps loosely-typed tool arguments onto a typed input struct.
// Unknown fields are rejected.
func decodeArgs(args map[string]any, dst any) *ValidationError {
	data, err := json.Marshal(args)
	if err != nil {
		return &ValidationError{Field: "arguments", Reason: err.Error()}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ValidationError{Field: "arguments", Reason: err.Error()}
	}
	return nil
}

func (in *SearchInput) validate() *ValidationError {
	in.Query = strings.TrimSpace(in.Query)
	if in.Query == "" {
		return &ValidationError{Field: "query", Reason: "must not be empty"}
	}
	if len(in.Query) > maxQueryLength {
		return &ValidationError{Field: "query", Reason: fmt.Sprintf("must be at most %d characters", maxQueryLength)}
	}
	if len(in.Countries) > maxCountries {
		return &ValidationError{Field: "countries", Reason: fmt.Sprintf("at most %d countries allowed", maxCountries)}
	}
	if len(in.DocumentTypes) > maxDocumentTypes {
		return &ValidationError{Field: "document_types", Reason: fmt.Sprintf("at most %d document types allowed", maxDocumentTypes)}
	}
	if len(in.Languages) > maxLanguages {
		return &ValidationError{Field: "languages", Reason: fmt.Sprintf("at most %d languages allowed", maxLanguages)}
	}
	if verr := validateDate("date_from", in.DateFrom); verr != nil {
		return verr
	}
	if verr := validateDate("date_to", in.DateTo); verr != nil {
		return verr
	}
	if verr := validatePagination(&in.Limit, in.Offset); verr != nil {
		return verr
	}
	if in.SortBy == "" {
		in.SortBy = defaultSortBy
	}
	switch in.SortOrder {
	case "":
		in.SortOrder = "desc"
	case "asc", "desc":
	default:
		return &ValidationError{Field: "sort_order", Reason: "must be 'asc' or 'desc'"}
	}
	return validateFormat(&in.ResponseFormat)
}

func (in *DetailsInput) validate() *ValidationError {
	in.DocumentID = strings.TrimSpace(in.DocumentID)
	if in.DocumentID == "" {
		return &ValidationError{Field: "document_id", Reason: "must not be empty"}
	}
	if len(in.DocumentID) > maxDocumentIDLength {
		return &ValidationError{Field: "document_id", Reason: fmt.Sprintf("must be at most %d characters", maxDocumentIDLength)}
	}
	return validateFormat(&in.ResponseFormat)
}

func (in *FacetsInput) validate() *ValidationError {
	if len(in.Facets) == 0 {
		return &ValidationError{Field: "facets", Reason: "at least one facet is required"}
	}
	if len(in.Facets) > maxFacets {
		return &ValidationError{Field: "facets", Reason: fmt.Sprintf("at most %d facets allowed", maxFacets)}
	}
	for _, name := range in.Facets {
		if !knownFacets[name] {
			return &ValidationError{
				Field:  "facets",
				Reason: fmt.Sprintf("unknown facet %q; valid facets are count_exact, lang_exact, docty_exact, majtheme_exact, topic_exact", name),
			}
		}
	}
	in.Query = strings.TrimSpace(in.Query)
	if len(in.Query) > maxQueryLength {
		return &ValidationError{Field: "query", Reason: fmt.Sprintf("must be at most %d characters", maxQueryLength)}
	}
	return validateFormat(&in.ResponseFormat)
}

func (in *ProjectInput) validate() *ValidationError {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.ProjectName = strings.TrimSpace(in.ProjectName)
	if in.ProjectID == "" && in.ProjectName == "" {
		return &ValidationError{Field: "project_id", Reason: "either project_id or project_name must be provided"}
	}
	if len(in.ProjectID) > maxProjectIDLength {
		return &ValidationError{Field: "project_id", Reason: fmt.Sprintf("must be at most %d characters", maxProjectIDLength)}
	}
	if len(in.ProjectName) > maxProjectNameLength {
		return &ValidationError{Field: "project_name", Reason: fmt.Sprintf("must be at most %d characters", maxProjectNameLength)}
	}
	if verr := validatePagination(&in.Limit, in.Offset); verr != nil {
		return verr
	}
	return validateFormat(&in.ResponseFormat)
}

// validatePagination applies the default limit and range checks. Limit zero
// means the caller omitted it.
func validatePagination(limit *int, offset int) *ValidationError {
	if *limit == 0 {
		*limit = defaultLimit
	}
	if *limit < 1 || *limit > maxLimit {
		return &ValidationError{Field: "limit", Reason: fmt.Sprintf("must be between 1 and %d", maxLimit)}
	}
	if offset < 0 {
		return &ValidationError{Field: "offset", Reason: "must not be negative"}
	}
	return nil
}

// validateDate checks the format only. A date_from later than date_to is
// passed through to the upstream unmodified.
func validateDate(field, value string) *ValidationError {
	if value == "" {
		return nil
	}
	if !datePattern.MatchString(value) {
		return &ValidationError{Field: field, Reason: "must be formatted as YYYY-MM-DD or MM-DD-YYYY"}
	}
	return nil
}

func validateFormat(format *string) *ValidationError {
	switch render.Mode(*format) {
	case "":
		*format = string(render.ModeMarkdown)
	case render.ModeMarkdown, render.ModeJSON:
	default:
		return &ValidationError{Field: "response_format", Reason: "must be 'markdown' or 'json'"}
	}
	return nil
}
