package schema

import "time"

type CreateVersionDTO struct {
	Fields []FieldDefinition `json:"fields" binding:"required,min=1,dive"`
	Status VersionStatus     `json:"status"`
}

// VersionSummary is the list-endpoint shape: metadata without the field list.
type VersionSummary struct {
	Version    int           `json:"version"`
	Status     VersionStatus `json:"status"`
	FieldCount int           `json:"fieldCount"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// VersionView is the single-version response with the decoded field list.
type VersionView struct {
	Version   int               `json:"version"`
	Status    VersionStatus     `json:"status"`
	Fields    []FieldDefinition `json:"fields"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
