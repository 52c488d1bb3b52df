// Package mapping binds generic schema field names to the external system's
// column names, types, and option sets using case-insensitive label matching.
package mapping

import (
	"strings"

	"github.com/Techluminate-Academy/bsn-directory/internal/domain/metadata"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
)

// FieldMapping is the result of binding a field list against external
// metadata. A field absent from all three maps simply has no external
// counterpart; it renders normally but never reaches the submitted payload.
type FieldMapping struct {
	ExternalName map[string]string                     // field name -> external column name
	ExternalType map[string]metadata.ExternalFieldType // field name -> external column type
	Options      map[string][]metadata.ExternalOption  // field name -> external option set
}

// Build resolves every FieldDefinition against meta by case-insensitive label
// equality. The first meta entry that matches wins; duplicates are not
// defended against. Pure: safe to recompute on every schema change.
func Build(fields []schema.FieldDefinition, meta []metadata.ExternalField) FieldMapping {
	m := FieldMapping{
		ExternalName: make(map[string]string),
		ExternalType: make(map[string]metadata.ExternalFieldType),
		Options:      make(map[string][]metadata.ExternalOption),
	}

	for _, field := range fields {
		for _, ext := range meta {
			if !strings.EqualFold(field.Label, ext.FieldName) {
				continue
			}
			m.ExternalName[field.Name] = ext.FieldName
			m.ExternalType[field.Name] = ext.FieldType
			if len(ext.Options) > 0 {
				m.Options[field.Name] = ext.Options
			}
			break
		}
	}
	return m
}

// ResolveOptionName maps a selected option identifier to its display name.
// The lookup tries id first, then name, mirroring how selections are seeded.
func (m FieldMapping) ResolveOptionName(fieldName, selected string) (string, bool) {
	for _, opt := range m.Options[fieldName] {
		if opt.ID == selected || opt.Name == selected {
			return opt.Name, true
		}
	}
	return "", false
}
