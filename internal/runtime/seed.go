package runtime

import (
	"fmt"
	"strings"

	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
)

// Seed pre-populates the form state from an existing external record's
// column values, keyed by external column name. Per-type coercion:
//
//   - selection fields become an array of matched option ids, matching the
//     incoming item against the known option set by value then by name;
//     items that match nothing are dropped
//   - boolean fields coerce truthiness
//   - file fields fill the preview-URL list and leave the value empty until
//     the user picks a new file
//   - everything else is carried as its string form
func (r *Runtime) Seed(record map[string]any) {
	for _, f := range r.fields {
		extName, ok := r.mapping.ExternalName[f.Name]
		if !ok {
			continue
		}
		raw, ok := record[extName]
		if !ok || raw == nil {
			continue
		}

		switch {
		case f.Type.IsSelection():
			r.values[f.Name] = r.matchSelections(f.Name, raw)
		case f.Type == schema.FieldBoolean:
			r.values[f.Name] = truthy(raw)
		case f.Type == schema.FieldFile:
			r.previews[f.Name] = previewURLs(raw)
		default:
			r.values[f.Name] = asString(raw)
		}
	}
}

// matchSelections coerces a stored selection value (single name, id, or a
// list of either) into the array of matched option ids.
func (r *Runtime) matchSelections(fieldName string, raw any) []string {
	var incoming []string
	switch v := raw.(type) {
	case string:
		incoming = []string{v}
	case []string:
		incoming = v
	case []any:
		for _, item := range v {
			incoming = append(incoming, asString(item))
		}
	default:
		incoming = []string{asString(raw)}
	}

	options := r.mapping.Options[fieldName]
	var matched []string
	for _, item := range incoming {
		for _, opt := range options {
			if opt.ID == item || opt.Name == item {
				matched = append(matched, opt.ID)
				break
			}
		}
	}
	return matched
}

// previewURLs extracts display URLs from a stored file value: a bare URL
// string or the external system's attachment-descriptor list.
func previewURLs(raw any) []string {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		var urls []string
		for _, item := range v {
			if att, ok := item.(map[string]any); ok {
				if u, ok := att["url"].(string); ok {
					urls = append(urls, u)
				}
			}
		}
		return urls
	}
	return nil
}

func truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			return true
		}
		return false
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}

func asString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		// json numbers arrive as float64; keep integers clean
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%v", raw)
}
