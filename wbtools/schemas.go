package wbtools

// Tool names and descriptions surfaced to MCP clients.
const (
	SearchName        = "worldbank_search_documents"
	SearchDescription = "Search for documents in the World Bank Documents & Reports database. " +
		"Searches across title, abstract, report number, project name, and other fields."

	DetailsName        = "worldbank_get_document_details"
	DetailsDescription = "Retrieve detailed information for a specific World Bank document by its ID."

	FacetsName        = "worldbank_explore_facets"
	FacetsDescription = "Explore available facet values (countries, languages, document types, themes, topics) " +
		"in the World Bank Documents database. Useful for discovering valid filter values."

	ProjectName        = "worldbank_search_by_project"
	ProjectDescription = "Search for documents related to a specific World Bank project by project ID or name."
)

func responseFormatProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"enum":        []string{"markdown", "json"},
		"description": "Output format: 'markdown' for human-readable (default), 'json' for machine-readable.",
	}
}

func paginationProperties() map[string]any {
	return map[string]any{
		"limit": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     maxLimit,
			"description": "Maximum number of results to return per page (1-100). Default is 20.",
		},
		"offset": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"description": "Number of results to skip for pagination. Use 0 for the first page.",
		},
	}
}

// SearchSchema returns the JSON schema for the document search tool.
func SearchSchema() map[string]any {
	properties := map[string]any{
		"query": map[string]any{
			"type":        "string",
			"minLength":   1,
			"maxLength":   maxQueryLength,
			"description": "Search query. Examples: 'climate change', 'education reform', 'infrastructure development'.",
		},
		"countries": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"maxItems":    maxCountries,
			"description": "Filter by exact country names. Examples: ['Kenya', 'Brazil'].",
		},
		"document_types": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"maxItems":    maxDocumentTypes,
			"description": "Filter by document type. Use worldbank_explore_facets to see available types.",
		},
		"languages": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"maxItems":    maxLanguages,
			"description": "Filter by language. Use worldbank_explore_facets to see available languages.",
		},
		"date_from": map[string]any{
			"type":        "string",
			"description": "Start date (YYYY-MM-DD or MM-DD-YYYY). Example: '2020-01-01'.",
		},
		"date_to": map[string]any{
			"type":        "string",
			"description": "End date (YYYY-MM-DD or MM-DD-YYYY). Example: '2023-12-31'.",
		},
		"sort_by": map[string]any{
			"type":        "string",
			"description": "Field to sort by: 'docdt' (document date), 'repnb' (report number), 'docty' (document type). Default is 'docdt'.",
		},
		"sort_order": map[string]any{
			"type":        "string",
			"enum":        []string{"asc", "desc"},
			"description": "Sort order. Default is 'desc' (newest first).",
		},
		"response_format": responseFormatProperty(),
	}
	for k, v := range paginationProperties() {
		properties[k] = v
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             []string{"query"},
		"additionalProperties": false,
	}
}

// DetailsSchema returns the JSON schema for the document details tool.
func DetailsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"document_id": map[string]any{
				"type":        "string",
				"minLength":   1,
				"maxLength":   maxDocumentIDLength,
				"description": "Unique document identifier (ID or GUID) from search results.",
			},
			"response_format": responseFormatProperty(),
		},
		"required":             []string{"document_id"},
		"additionalProperties": false,
	}
}

// FacetsSchema returns the JSON schema for the facet exploration tool.
func FacetsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"facets": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string", "enum": []string{"count_exact", "lang_exact", "docty_exact", "majtheme_exact", "topic_exact"}},
				"minItems":    1,
				"maxItems":    maxFacets,
				"description": "Facets to explore: 'count_exact' (countries), 'lang_exact' (languages), 'docty_exact' (document types), 'majtheme_exact' (major themes), 'topic_exact' (topics).",
			},
			"query": map[string]any{
				"type":        "string",
				"maxLength":   maxQueryLength,
				"description": "Optional search query to scope facet values to matching documents.",
			},
			"response_format": responseFormatProperty(),
		},
		"required":             []string{"facets"},
		"additionalProperties": false,
	}
}

// ProjectSchema returns the JSON schema for the project search tool.
func ProjectSchema() map[string]any {
	properties := map[string]any{
		"project_id": map[string]any{
			"type":        "string",
			"maxLength":   maxProjectIDLength,
			"description": "World Bank project ID, e.g. 'P123456'. Either project_id or project_name must be provided.",
		},
		"project_name": map[string]any{
			"type":        "string",
			"maxLength":   maxProjectNameLength,
			"description": "Project name to search for. Either project_id or project_name must be provided.",
		},
		"response_format": responseFormatProperty(),
	}
	for k, v := range paginationProperties() {
		properties[k] = v
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
}
