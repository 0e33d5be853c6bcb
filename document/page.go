package document

import "github.com/tidwall/gjson"

// Reserved key mixed into the keyed documents collection by the upstream
// API. It is not a document and is filtered out before iteration.
const facetsKey = "facets"

// ResultPage is one page of normalized search results. It is constructed
// once per call from the upstream response and never mutated.
type ResultPage struct {
	Total      int        `json:"total"`
	Count      int        `json:"count"`
	Offset     int        `json:"offset"`
	HasMore    bool       `json:"has_more"`
	NextOffset int        `json:"next_offset"`
	Documents  []Document `json:"documents"`
}

// ParsePage extracts and normalizes the documents collection from a raw
// upstream response body. Two upstream shapes exist: a map keyed by document
// id alongside a top-level total, and a nested array form with docs plus
// numFound. Both produce the same page semantics. Document order is passed
// through as received.
func ParsePage(body []byte, offset int) ResultPage {
	root := gjson.ParseBytes(body)
	documents := root.Get("documents")

	var docs []Document
	var total int

	if inner := documents.Get("docs"); inner.IsArray() {
		items := inner.Array()
		docs = make([]Document, 0, len(items))
		for _, item := range items {
			if item.IsObject() {
				docs = append(docs, Normalize(item))
			}
		}
		total = int(documents.Get("numFound").Int())
	} else {
		docs = make([]Document, 0)
		documents.ForEach(func(key, value gjson.Result) bool {
			if key.Str == facetsKey || !value.IsObject() {
				return true
			}
			docs = append(docs, Normalize(value))
			return true
		})
		total = int(root.Get("total").Int())
	}

	page := ResultPage{
		Total:     total,
		Count:     len(docs),
		Offset:    offset,
		Documents: docs,
	}
	page.HasMore = page.Offset+page.Count < page.Total
	if page.HasMore {
		page.NextOffset = page.Offset + page.Count
	}
	return page
}
