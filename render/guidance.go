package render

import "fmt"

// Guidance texts for expected zero-result outcomes. These are user-facing
// answers, not system failures: they tell the caller what to try next.

// NoResults explains an empty search result set.
func NoResults() string {
	return "No documents found matching your query.\n\n" +
		"Suggestions:\n" +
		"- Try broader search terms\n" +
		"- Remove some filters\n" +
		"- Check spelling of country names or document types\n" +
		"- Use the worldbank_explore_facets tool to see available filter values"
}

// NotFound explains a failed document-detail lookup.
func NotFound(documentID string) string {
	return fmt.Sprintf("Document with ID '%s' not found.\n\n", documentID) +
		"This could mean:\n" +
		"- The document ID is incorrect\n" +
		"- The document has been removed from the database\n" +
		"- The ID format is invalid\n\n" +
		"Try using worldbank_search_documents to find the correct document ID."
}

// NoFacets explains an empty facet response.
func NoFacets() string {
	return "No facet data available.\n\n" +
		"This could mean:\n" +
		"- The requested facets don't exist\n" +
		"- The query returned no matching documents\n\n" +
		"Common facet names:\n" +
		"- count_exact (countries)\n" +
		"- lang_exact (languages)\n" +
		"- docty_exact (document types)\n" +
		"- majtheme_exact (major themes)\n" +
		"- topic_exact (topics)"
}

// NoProjectDocuments explains an empty project-scoped result set.
func NoProjectDocuments(searchTerm string) string {
	return fmt.Sprintf("No documents found for project: %s\n\n", searchTerm) +
		"This could mean:\n" +
		"- The project ID or name is incorrect\n" +
		"- The project has no publicly available documents\n" +
		"- The project doesn't exist in the database\n\n" +
		"Try:\n" +
		"- Check the project ID format (usually P followed by numbers)\n" +
		"- Search for the project by name using worldbank_search_documents\n" +
		"- Use broader search terms"
}
