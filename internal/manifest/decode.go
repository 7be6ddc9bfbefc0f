package manifest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// decode maps an XML document onto a generic object. The result holds a
// single key, the root element's local name.
//
// An element with neither attributes nor children becomes its trimmed text.
// Otherwise it becomes a map with attributes under "@_<name>", children under
// their local names and any text under "#text". A child name seen more than
// once becomes a []any in document order.
func decode(r io.Reader) (map[string]any, error) {
	d := xml.NewDecoder(r)

	type frame struct {
		name string
		obj  map[string]any
		text strings.Builder
	}
	var stack []*frame

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			f := &frame{name: t.Name.Local, obj: make(map[string]any)}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				f.obj[attrPrefix+a.Name.Local] = a.Value
			}
			stack = append(stack, f)

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}

		case xml.EndElement:
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			var value any
			text := strings.TrimSpace(f.text.String())
			if len(f.obj) == 0 {
				value = text
			} else {
				if text != "" {
					f.obj[textKey] = text
				}
				value = f.obj
			}

			if len(stack) == 0 {
				return map[string]any{f.name: value}, nil
			}
			addChild(stack[len(stack)-1].obj, f.name, value)
		}
	}
}

func addChild(parent map[string]any, name string, value any) {
	existing, ok := parent[name]
	if !ok {
		parent[name] = value
		return
	}
	if list, ok := existing.([]any); ok {
		parent[name] = append(list, value)
		return
	}
	parent[name] = []any{existing, value}
}
