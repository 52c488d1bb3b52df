package member

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Known mirror field names. Records carry these plus whatever other columns
// the external schema declares; unknown fields pass through opaquely inside
// Fields.
const (
	FieldFullName        = "Full Name"
	FieldEmail           = "Email Address"
	FieldBio             = "Bio"
	FieldWebsite         = "Website"
	FieldPhone           = "Phone Number"
	FieldLocation        = "Location"
	FieldCountry         = "Country"
	FieldIndustryHouse   = "PRIMARY INDUSTRY HOUSE"
	FieldMembershipLevel = "Membership Level"
	FieldOrganization    = "Organization Name"
	FieldPhoto           = "Photo"
)

// SearchFields is the fixed set of text columns free-text search scans.
var SearchFields = []string{
	FieldFullName,
	FieldEmail,
	FieldOrganization,
	FieldLocation,
	FieldBio,
}

// Record is the denormalized mirror of one external record, keyed by the
// external system's stable id.
type Record struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AirtableID string             `bson:"airtableId" json:"id"`
	Fields     map[string]any     `bson:"fields" json:"fields"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Email returns the record's email column, if present.
func (r *Record) Email() string {
	if v, ok := r.Fields[FieldEmail].(string); ok {
		return v
	}
	return ""
}

// ListQuery carries pagination plus the equality filters the directory
// exposes. Zero values mean "no filter".
type ListQuery struct {
	Page            int
	Limit           int
	IndustryHouse   string
	MembershipLevel string
	Country         string
}

// Page is one page of mirror records plus the total match count.
type Page struct {
	Records []Record `json:"records"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}
