package repository

import (
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"gorm.io/gorm"
)

// SchemaRepo persists versioned form definitions. Insert-only: editing a
// schema means creating the next version, never mutating an existing row.
type SchemaRepo interface {
	ListVersions() ([]schema.FormVersion, error)
	GetVersion(version int) (schema.FormVersion, error)
	GetLatest() (schema.FormVersion, error)
	MaxVersion() (int, error)
	Create(v *schema.FormVersion) error
}

type DBSchemaRepo struct {
	db *gorm.DB
}

func NewSchemaRepo(db *gorm.DB) *DBSchemaRepo {
	return &DBSchemaRepo{db: db}
}

func (r *DBSchemaRepo) ListVersions() ([]schema.FormVersion, error) {
	var versions []schema.FormVersion
	err := r.db.Order("version desc").Find(&versions).Error
	return versions, err
}

func (r *DBSchemaRepo) GetVersion(version int) (schema.FormVersion, error) {
	var v schema.FormVersion
	err := r.db.Where("version = ?", version).First(&v).Error
	return v, err
}

func (r *DBSchemaRepo) GetLatest() (schema.FormVersion, error) {
	var v schema.FormVersion
	err := r.db.Order("version desc").First(&v).Error
	return v, err
}

func (r *DBSchemaRepo) MaxVersion() (int, error) {
	var max *int
	err := r.db.Model(&schema.FormVersion{}).Select("max(version)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *DBSchemaRepo) Create(v *schema.FormVersion) error {
	return r.db.Create(v).Error
}
