package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Techluminate-Academy/bsn-directory/internal/domain/member"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMemberNotFound means no mirror record matched the lookup.
var ErrMemberNotFound = errors.New("member record not found")

// MemberRepo is the query-side mirror of the external record system. Writes
// arrive only through Upsert after a confirmed external write; reads serve
// the directory's list, filter, and search paths.
type MemberRepo interface {
	Upsert(ctx context.Context, rec *member.Record) error
	FindByAirtableID(ctx context.Context, airtableID string) (*member.Record, error)
	FindByEmail(ctx context.Context, email string) (*member.Record, error)
	List(ctx context.Context, q member.ListQuery) (*member.Page, error)
	Search(ctx context.Context, text string, page, limit int) (*member.Page, error)
}

type MongoMemberRepo struct {
	coll *mongo.Collection
}

func NewMemberRepo(db *mongo.Database) *MongoMemberRepo {
	return &MongoMemberRepo{coll: db.Collection("members")}
}

// Upsert writes the denormalized record keyed by the external id.
func (r *MongoMemberRepo) Upsert(ctx context.Context, rec *member.Record) error {
	rec.UpdatedAt = time.Now().UTC()
	filter := bson.M{"airtableId": rec.AirtableID}
	update := bson.M{"$set": bson.M{
		"airtableId": rec.AirtableID,
		"fields":     rec.Fields,
		"updatedAt":  rec.UpdatedAt,
	}}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert member %s: %w", rec.AirtableID, err)
	}
	return nil
}

func (r *MongoMemberRepo) FindByAirtableID(ctx context.Context, airtableID string) (*member.Record, error) {
	return r.findOne(ctx, bson.M{"airtableId": airtableID})
}

func (r *MongoMemberRepo) FindByEmail(ctx context.Context, email string) (*member.Record, error) {
	filter := bson.M{"fields." + member.FieldEmail: bson.M{
		"$regex":   fmt.Sprintf("^%s$", escapeRegex(email)),
		"$options": "i",
	}}
	return r.findOne(ctx, filter)
}

func (r *MongoMemberRepo) findOne(ctx context.Context, filter bson.M) (*member.Record, error) {
	var rec member.Record
	err := r.coll.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns one page of records matching the equality filters.
func (r *MongoMemberRepo) List(ctx context.Context, q member.ListQuery) (*member.Page, error) {
	filter := bson.M{}
	if q.IndustryHouse != "" {
		filter["fields."+member.FieldIndustryHouse] = q.IndustryHouse
	}
	if q.MembershipLevel != "" {
		filter["fields."+member.FieldMembershipLevel] = q.MembershipLevel
	}
	if q.Country != "" {
		filter["fields."+member.FieldCountry] = q.Country
	}
	return r.page(ctx, filter, q.Page, q.Limit)
}

// Search matches text case-insensitively against the fixed set of text
// columns in member.SearchFields.
func (r *MongoMemberRepo) Search(ctx context.Context, text string, page, limit int) (*member.Page, error) {
	var clauses []bson.M
	for _, f := range member.SearchFields {
		clauses = append(clauses, bson.M{"fields." + f: bson.M{
			"$regex":   escapeRegex(text),
			"$options": "i",
		}})
	}
	return r.page(ctx, bson.M{"$or": clauses}, page, limit)
}

func (r *MongoMemberRepo) page(ctx context.Context, filter bson.M, page, limit int) (*member.Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]member.Record, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return &member.Page{Records: records, Total: total, Page: page, Limit: limit}, nil
}

// escapeRegex neutralizes regex metacharacters in user-provided text.
func escapeRegex(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(special); j++ {
			if s[i] == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
