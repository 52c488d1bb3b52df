package schema

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type VersionStatus string

const (
	StatusDraft     VersionStatus = "draft"
	StatusPublished VersionStatus = "published"
)

// FieldType is the closed set of input types a form may declare.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldURL      FieldType = "url"
	FieldTextarea FieldType = "textarea"
	FieldDropdown FieldType = "dropdown"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldBoolean  FieldType = "boolean"
	FieldFile     FieldType = "file"
	FieldPhone    FieldType = "phone"
	FieldAddress  FieldType = "address"
	FieldNumber   FieldType = "number"
)

// IsSelection reports whether the type carries an option list.
func (t FieldType) IsSelection() bool {
	switch t {
	case FieldDropdown, FieldSelect, FieldCheckbox:
		return true
	}
	return false
}

type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldDefinition is one declared input. Name is the form-state key; Label is
// also the matching key against the external system's column names.
type FieldDefinition struct {
	Name     string        `json:"name" binding:"required"`
	Label    string        `json:"label" binding:"required"`
	Type     FieldType     `json:"type" binding:"required"`
	Required bool          `json:"required"`
	Options  []FieldOption `json:"options,omitempty"`
	Step     int           `json:"step" binding:"required,min=1"`
}

// FormVersion is an immutable snapshot of a form definition. Edits always
// allocate a new row with an incremented version number.
type FormVersion struct {
	ID        uint           `json:"-" gorm:"primaryKey"`
	Version   int            `json:"version" gorm:"uniqueIndex"`
	Status    VersionStatus  `json:"status" gorm:"default:'draft'"`
	Fields    datatypes.JSON `json:"-" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FieldList decodes the stored JSON field list, preserving order.
func (v *FormVersion) FieldList() ([]FieldDefinition, error) {
	var fields []FieldDefinition
	if len(v.Fields) == 0 {
		return fields, nil
	}
	err := json.Unmarshal(v.Fields, &fields)
	return fields, err
}

// SetFieldList encodes fields into the JSON column.
func (v *FormVersion) SetFieldList(fields []FieldDefinition) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	v.Fields = datatypes.JSON(raw)
	return nil
}
