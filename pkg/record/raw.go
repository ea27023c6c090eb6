package record

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-materials/kiln/pkg/types"
)

// Raw is a schema-less record backed by an arbitrary JSON document. It
// serves styles whose content needs no typed projection beyond the
// universal params: every record carries a key (a UUID, assigned at load
// when the document has none), an id (the record name), and its style.
type Raw struct {
	name    string
	style   string
	key     string
	content map[string]any
}

// LoadRaw reads and parses one JSON record file.
func LoadRaw(style, name, path string) (*Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRaw(style, name, data)
}

// ParseRaw builds a Raw record from JSON document content.
func ParseRaw(style, name string, data []byte) (*Raw, error) {
	var content map[string]any
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	key, _ := content["key"].(string)
	if key == "" {
		key = NewKey()
	}
	return &Raw{name: name, style: style, key: key, content: content}, nil
}

// RegisterRaw registers the style in the default registry with the
// generic JSON loader.
func RegisterRaw(style string) {
	Register(style, func(name, path string) (types.Record, error) {
		return LoadRaw(style, name, path)
	})
}

// Name returns the record identifier.
func (r *Raw) Name() string { return r.name }

// Style returns the record type.
func (r *Raw) Style() string { return r.style }

// Key returns the record's universal key element.
func (r *Raw) Key() string { return r.key }

// Content returns the parsed JSON document.
func (r *Raw) Content() map[string]any { return r.content }

// ToDict produces the dictionary view of the record. The universal
// params key, id, and style are always present. full=false reduces the
// document to its top-level scalar fields (the summary subset);
// full=true keeps every field. flat=true collapses nested objects to
// dotted single-level keys and drops values that are neither scalars nor
// scalar lists; flat=false preserves the nesting.
func (r *Raw) ToDict(full, flat bool) (map[string]any, error) {
	params := map[string]any{
		"key":   r.key,
		"id":    r.name,
		"style": r.style,
	}
	for k, v := range r.content {
		if k == "key" {
			continue
		}
		if !full && !isScalar(v) {
			continue
		}
		if flat {
			flatten(k, v, params)
		} else {
			params[k] = v
		}
	}
	return params, nil
}

// flatten writes v into out under key, collapsing nested objects with
// dotted keys. Scalars and scalar lists are kept; anything else is
// dropped from the flat view.
func flatten(key string, v any, out map[string]any) {
	switch val := v.(type) {
	case map[string]any:
		for k, nested := range val {
			flatten(key+"."+k, nested, out)
		}
	case []any:
		if isScalarList(val) {
			out[key] = val
		}
	default:
		if isScalar(val) {
			out[key] = val
		}
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, int, int64, json.Number:
		return true
	}
	return false
}

func isScalarList(vals []any) bool {
	for _, v := range vals {
		if !isScalar(v) {
			return false
		}
	}
	return true
}
