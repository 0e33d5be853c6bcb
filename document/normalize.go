package document

import "github.com/tidwall/gjson"

// Upstream field keys. The abstract text historically arrives under a
// literal "cdata!" key inside the abstracts object; it must be matched
// exactly, with a plain "abstract" sub-key as fallback.
const (
	keyAbstractCData = "cdata!"
	keyAbstractPlain = "abstract"
)

// Normalize converts one raw upstream record into a Document. It never
// fails: every missing or mis-typed field degrades to its documented
// default.
func Normalize(raw gjson.Result) Document {
	return Document{
		ID:           firstString(raw, NotAvailable, "id", "guid"),
		Title:        resolveTitle(raw),
		Abstract:     resolveAbstract(raw),
		ReportNumber: firstString(raw, NotAvailable, "repnb"),
		DocumentType: firstString(raw, NotAvailable, "docty"),
		DocumentDate: firstString(raw, NotAvailable, "docdt"),
		Countries:    stringList(raw.Get("count")),
		Languages:    stringList(raw.Get("lang")),
		MajorThemes:  stringList(raw.Get("majtheme")),
		Topics:       stringList(raw.Get("topic")),
		Sectors:      stringList(raw.Get("sectr_exact")),
		Keywords:     stringList(raw.Get("keywd")),
		Authors:      stringList(raw.Get("authr")),
		PDFURL:       firstString(raw, NotAvailable, "pdfurl", "url"),
		URL:          firstString(raw, NotAvailable, "url"),
		ProjectID:    firstString(raw, NotAvailable, "proid"),
		ProjectName:  firstString(raw, NotAvailable, "projn"),
	}
}

// NormalizeJSON is a convenience wrapper over Normalize for a raw JSON
// object in byte form.
func NormalizeJSON(data []byte) Document {
	return Normalize(gjson.ParseBytes(data))
}

// resolveTitle prefers the dedicated display title, then the report name.
// The report name is sometimes a plain string and sometimes a nested object
// holding the real name under a "repnme" sub-key.
func resolveTitle(raw gjson.Result) string {
	if v := raw.Get("display_title"); v.Type == gjson.String && v.Str != "" {
		return v.Str
	}
	rep := raw.Get("repnme")
	switch {
	case rep.Type == gjson.String && rep.Str != "":
		return rep.Str
	case rep.IsObject():
		if v := rep.Get("repnme"); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	case rep.IsArray():
		for _, v := range rep.Array() {
			if v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
	}
	return DefaultTitle
}

// resolveAbstract handles the abstracts field being either a plain string or
// a nested object. For the object form the "cdata!" key wins over the
// generic "abstract" key regardless of key order.
func resolveAbstract(raw gjson.Result) string {
	a := raw.Get("abstracts")
	switch {
	case a.Type == gjson.String && a.Str != "":
		return a.Str
	case a.IsObject():
		var cdata, plain string
		a.ForEach(func(key, value gjson.Result) bool {
			if value.Type != gjson.String || value.Str == "" {
				return true
			}
			switch key.Str {
			case keyAbstractCData:
				cdata = value.Str
			case keyAbstractPlain:
				plain = value.Str
			}
			return true
		})
		if cdata != "" {
			return cdata
		}
		if plain != "" {
			return plain
		}
	}
	return DefaultAbstract
}

// firstString returns the first key whose value is a non-empty string, or a
// string representation of a non-empty number, falling back to def.
func firstString(raw gjson.Result, def string, keys ...string) string {
	for _, key := range keys {
		v := raw.Get(key)
		switch v.Type {
		case gjson.String:
			if v.Str != "" {
				return v.Str
			}
		case gjson.Number:
			return v.String()
		}
	}
	return def
}

// stringList normalizes a value that may be a list of strings, a single
// string, or absent into an ordered list. Absence yields an empty list.
func stringList(v gjson.Result) []string {
	switch {
	case v.IsArray():
		items := v.Array()
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item.Type == gjson.String && item.Str != "" {
				out = append(out, item.Str)
			}
		}
		return out
	case v.Type == gjson.String && v.Str != "":
		return []string{v.Str}
	default:
		return []string{}
	}
}
