package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type Repos struct {
	Schema SchemaRepo
	Member MemberRepo
}

// NewRepositories wires the schema store onto postgres and the member mirror
// onto mongo. Both handles are created once at startup and passed in.
func NewRepositories(db *gorm.DB, mongoDB *mongo.Database) *Repos {
	return &Repos{
		Schema: NewSchemaRepo(db),
		Member: NewMemberRepo(mongoDB),
	}
}
