package manifest

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
)

// Parse decodes a site manifest and returns the site with its packages in
// document order. A document with one <package> and one with a list of one
// produce identical results.
func Parse(data []byte) (*Site, error) {
	doc, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	// decode always returns exactly one key.
	rootName := slices.Collect(maps.Keys(doc))[0]
	root, ok := doc[rootName].(map[string]any)
	if !ok {
		return nil, &ValidationError{Issues: []ValidationIssue{{
			Message: fmt.Sprintf("root element <%s> has no name attribute", rootName),
			Keyword: "required",
		}}}
	}

	result, err := Validate(root)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ValidationError{Issues: result.Issues}
	}

	site := &Site{Name: stringValue(root[attrName])}
	for _, rec := range records(root[elemPackage]) {
		site.Packages = append(site.Packages, packageFromRecord(rec))
	}
	return site, nil
}

// records resolves the one-or-many shape of a repeated element into a slice.
func records(v any) []map[string]any {
	switch val := v.(type) {
	case map[string]any:
		return []map[string]any{val}
	case []any:
		out := make([]map[string]any, 0, len(val))
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

func packageFromRecord(rec map[string]any) Package {
	p := Package{
		Category:    stringValue(rec[attrCategory]),
		Name:        stringValue(rec[attrName]),
		Version:     stringValue(rec[attrVersion]),
		Description: stringValue(rec[elemDescription]),
	}
	if entries := records(rec[elemEntry]); len(entries) > 0 {
		p.URL = stringValue(entries[0][attrURL])
		if p.URL == "" {
			p.URL = stringValue(entries[0][attrHref])
		}
	}
	return p
}

// stringValue reads plain text or the #text of an element carrying attributes.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		s, _ := val[textKey].(string)
		return s
	default:
		return ""
	}
}
