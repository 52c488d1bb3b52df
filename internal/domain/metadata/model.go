package metadata

// ExternalFieldType mirrors the external system's column type tags. Only the
// ones the submission pipeline branches on are named; everything else passes
// through as plain text.
type ExternalFieldType string

const (
	TypeSingleLineText  ExternalFieldType = "singleLineText"
	TypeMultilineText   ExternalFieldType = "multilineText"
	TypeEmail           ExternalFieldType = "email"
	TypeURL             ExternalFieldType = "url"
	TypePhone           ExternalFieldType = "phoneNumber"
	TypeNumber          ExternalFieldType = "number"
	TypeCheckbox        ExternalFieldType = "checkbox"
	TypeSingleSelect    ExternalFieldType = "singleSelect"
	TypeMultipleSelects ExternalFieldType = "multipleSelects"
	TypeAttachment      ExternalFieldType = "multipleAttachments"
	TypeSingleAttach    ExternalFieldType = "singleAttachment"
)

// ExternalOption is one enumerated choice of a selection-type column.
type ExternalOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExternalField is one normalized column of the external record system.
// Fetched on demand, never persisted locally.
type ExternalField struct {
	FieldName string            `json:"fieldName"`
	FieldType ExternalFieldType `json:"fieldType"`
	Options   []ExternalOption  `json:"options,omitempty"`
}
