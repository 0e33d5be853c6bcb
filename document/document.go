package document

// Defaults applied when an upstream field is absent or has an unusable type.
// The normalizer never fails on a sparse record; every field degrades to one
// of these.
const (
	DefaultTitle    = "Untitled"
	DefaultAbstract = "No abstract available"
	NotAvailable    = "N/A"
)

// Document is the canonical view over one upstream record. Upstream fields
// arrive loosely typed (string, list, or nested object depending on the
// record); that ambiguity is resolved once during normalization and never
// leaks past this package.
type Document struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Abstract     string   `json:"abstract"`
	ReportNumber string   `json:"report_number"`
	DocumentType string   `json:"document_type"`
	DocumentDate string   `json:"document_date"`
	Countries    []string `json:"countries"`
	Languages    []string `json:"languages"`
	MajorThemes  []string `json:"major_themes"`
	Topics       []string `json:"topics"`
	Sectors      []string `json:"sectors"`
	Keywords     []string `json:"keywords"`
	Authors      []string `json:"authors"`
	PDFURL       string   `json:"pdf_url"`
	URL          string   `json:"url"`
	ProjectID    string   `json:"project_id"`
	ProjectName  string   `json:"project_name"`
}
